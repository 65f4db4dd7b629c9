package domain

import "github.com/shopspring/decimal"

// Recognized VAT rates. STANDARD is the default for new products.
var (
	VATStandard     = decimal.New(20, -2)  // 0.20
	VATIntermediate = decimal.New(10, -2)  // 0.10
	VATReduced      = decimal.New(55, -3)  // 0.055
)

var one = decimal.NewFromInt(1)

// GrossUnitPrice returns the tax-inclusive unit price, rounded to two
// fractional digits with banker's rounding.
func GrossUnitPrice(netPrice, vatRate decimal.Decimal) decimal.Decimal {
	return netPrice.Mul(one.Add(vatRate)).RoundBank(2)
}

// SaleAmount is the amount recorded for a sale of the given quantity.
func SaleAmount(netPrice, vatRate decimal.Decimal, quantity int64) decimal.Decimal {
	return GrossUnitPrice(netPrice, vatRate).Mul(decimal.NewFromInt(quantity)).RoundBank(2)
}
