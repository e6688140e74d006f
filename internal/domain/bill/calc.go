package bill

import (
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the flat tax rate applied to every bill subtotal
var DefaultTaxRate = decimal.NewFromFloat(0.10)

// ItemAmount derives a line item's amount from its quantity and price
func ItemAmount(quantity, price decimal.Decimal) decimal.Decimal {
	return quantity.Mul(price)
}

// Subtotal sums the amounts of the given line items; zero for an empty
// sequence.
func Subtotal(items []*BillItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount)
	}
	return subtotal
}

// Tax derives the tax due on a subtotal at the given rate
func Tax(subtotal, rate decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(rate)
}

// Total derives the grand total from subtotal and tax
func Total(subtotal, tax decimal.Decimal) decimal.Decimal {
	return subtotal.Add(tax)
}

// Recalculate rederives Subtotal, Tax and Total from the current line
// items. The three fields always change together; callers must invoke
// this after any mutation of Items.
func (b *Bill) Recalculate() {
	b.Subtotal = Subtotal(b.Items)
	b.Tax = Tax(b.Subtotal, DefaultTaxRate)
	b.Total = Total(b.Subtotal, b.Tax)
}
