package receipts

// PDFGenerator puerto del render PDF del recibo. La implementación vive
// en infraestructura.
type PDFGenerator interface {
	Generate(data *ReceiptData) ([]byte, error)
}

// ReceiptData recibo ya resuelto y formateado, listo para renderizar en
// HTML o PDF. Los importes llegan como texto en formato pt-BR.
type ReceiptData struct {
	OrderID      int64
	Date         string
	CustomerName string
	Items        []ReceiptItem
	Total        string
}

// ReceiptItem línea del recibo. Label incluye el sufijo de casco devuelto
// cuando corresponde.
type ReceiptItem struct {
	Label     string
	Quantity  int64
	UnitPrice string
	Subtotal  string
}
