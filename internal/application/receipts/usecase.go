package receipts

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/repository"
)

//go:embed receipt.gohtml
var receiptTemplate string

// Sin cliente asociado el recibo sale a nombre del consumidor final.
const walkInCustomer = "Consumidor Final"

// Sufijo de línea cuando el cliente devolvió el casco.
const returnedBottleSuffix = " (com casco)"

const dateLayout = "2006-01-02 15:04:05"

var tmpl = template.Must(template.New("receipt").Parse(receiptTemplate))

// UseCase genera recibos de venta en HTML (para imprimir desde la GUI) y
// en PDF (para archivar o enviar).
type UseCase struct {
	orders repository.OrderRepository
	pdf    PDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(orders repository.OrderRepository, pdf PDFGenerator) *UseCase {
	return &UseCase{orders: orders, pdf: pdf}
}

// HTML renderiza el recibo del pedido como documento HTML completo.
func (uc *UseCase) HTML(orderID int64) (string, error) {
	data, err := uc.build(orderID)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("renderizando recibo: %w", err)
	}
	return buf.String(), nil
}

// PDF renderiza el recibo del pedido como documento PDF.
func (uc *UseCase) PDF(orderID int64) ([]byte, error) {
	data, err := uc.build(orderID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Generate(data)
}

func (uc *UseCase) build(orderID int64) (*ReceiptData, error) {
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: pedido %d", domain.ErrNotFound, orderID)
	}

	customer := walkInCustomer
	if order.Order.CustomerName != nil && *order.Order.CustomerName != "" {
		customer = *order.Order.CustomerName
	}

	items := make([]ReceiptItem, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, toReceiptItem(it))
	}

	return &ReceiptData{
		OrderID:      order.Order.ID,
		Date:         formatDate(order.Order.CreatedAt),
		CustomerName: customer,
		Items:        items,
		Total:        FormatBRL(order.Order.Total),
	}, nil
}

func toReceiptItem(it entity.OrderItemWithProduct) ReceiptItem {
	label := it.ProductName
	if it.ReturnedBottle {
		label += returnedBottleSuffix
	}
	subtotal := it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
	return ReceiptItem{
		Label:     label,
		Quantity:  it.Quantity,
		UnitPrice: FormatBRL(it.UnitPrice),
		Subtotal:  FormatBRL(subtotal),
	}
}

// formatDate pasa la fecha almacenada al formato de impresión brasileño.
func formatDate(stored string) string {
	t, err := time.Parse(dateLayout, stored)
	if err != nil {
		return stored
	}
	return t.Format("02/01/2006 15:04")
}
