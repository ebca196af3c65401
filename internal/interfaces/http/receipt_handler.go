package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/receipts"
)

// ReceiptHandler recibos de venta en HTML y PDF (protegido).
type ReceiptHandler struct {
	uc *receipts.UseCase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *receipts.UseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// HTML devuelve el recibo como documento HTML listo para imprimir.
func (h *ReceiptHandler) HTML(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	out, err := h.uc.HTML(id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(out)
}

// PDF devuelve el recibo como documento PDF.
func (h *ReceiptHandler) PDF(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	out, err := h.uc.PDF(id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="recibo-%d.pdf"`, id))
	return c.Send(out)
}
