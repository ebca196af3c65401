package receipts

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formatea un importe como moneda brasileña: "R$ 1.234,56".
func FormatBRL(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return brl.Sprintf("R$ %.2f", f)
}
