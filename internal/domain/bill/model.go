package bill

import (
	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/billfold/billfold/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// BillItem is a single billable entry within a bill. Amount is derived
// from Quantity and Price and is never set directly; every mutation goes
// through Bill.UpdateItem which recomputes it.
type BillItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Amount      decimal.Decimal `json:"amount"`
}

// Copy returns a detached copy of the item
func (i *BillItem) Copy() *BillItem {
	if i == nil {
		return nil
	}
	out := *i
	return &out
}

// Validate validates the bill item
func (i *BillItem) Validate() error {
	if i.Quantity.IsNegative() {
		return ierr.NewError("bill item validation failed").
			WithHint("Quantity must be non negative").
			Mark(ierr.ErrValidation)
	}

	if i.Price.IsNegative() {
		return ierr.NewError("bill item validation failed").
			WithHint("Price must be non negative").
			Mark(ierr.ErrValidation)
	}

	if !i.Amount.Equal(ItemAmount(i.Quantity, i.Price)) {
		return ierr.NewError("bill item validation failed").
			WithHint("Amount must equal quantity times price").
			WithReportableDetails(map[string]any{
				"item_id":  i.ID,
				"quantity": i.Quantity,
				"price":    i.Price,
				"amount":   i.Amount,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// Bill represents a bill/invoice with customer details, line items and
// derived totals. Subtotal, Tax and Total are recomputed together whenever
// Items changes; a bill is never persisted with stale derived fields.
type Bill struct {
	ID             string           `json:"id"`
	BillNumber     string           `json:"bill_number"`
	CustomerName   string           `json:"customer_name"`
	CustomerEmail  string           `json:"customer_email"`
	CustomerPhone  string           `json:"customer_phone"`
	BillingAddress string           `json:"billing_address"`
	Date           types.Date       `json:"date"`
	DueDate        types.Date       `json:"due_date"`
	Items          []*BillItem      `json:"items"`
	Notes          string           `json:"notes"`
	Status         types.BillStatus `json:"status"`
	Subtotal       decimal.Decimal  `json:"subtotal"`
	Tax            decimal.Decimal  `json:"tax"`
	Total          decimal.Decimal  `json:"total"`
}

// Copy returns a detached deep copy of the bill, safe to edit without
// touching the canonical collection.
func (b *Bill) Copy() *Bill {
	if b == nil {
		return nil
	}
	out := *b
	out.Items = make([]*BillItem, len(b.Items))
	for i, item := range b.Items {
		out.Items[i] = item.Copy()
	}
	return &out
}

// Item returns the line item with the given id, or nil
func (b *Bill) Item(id string) *BillItem {
	item, _ := lo.Find(b.Items, func(i *BillItem) bool {
		return i.ID == id
	})
	return item
}

// AddItem appends a fresh empty line item and recomputes totals
func (b *Bill) AddItem() *BillItem {
	item := NewEmptyItem()
	b.Items = append(b.Items, item)
	b.Recalculate()
	return item
}

// RemoveItem removes the line item with the given id and recomputes
// totals. Removing the sole remaining item is rejected and leaves the
// bill unchanged: a bill always has at least one line item.
func (b *Bill) RemoveItem(id string) error {
	if len(b.Items) <= 1 {
		return ierr.NewError("cannot remove the only line item").
			WithHint("A bill must have at least one line item").
			Mark(ierr.ErrInvalidOperation)
	}

	idx := lo.IndexOf(lo.Map(b.Items, func(i *BillItem, _ int) string { return i.ID }), id)
	if idx < 0 {
		return ierr.NewError("line item not found").
			WithHintf("No line item with id %s on bill %s", id, b.ID).
			Mark(ierr.ErrNotFound)
	}

	b.Items = append(b.Items[:idx], b.Items[idx+1:]...)
	b.Recalculate()
	return nil
}

// UpdateItem sets the description, quantity and price of the line item
// with the given id, rederiving its amount and the bill totals.
func (b *Bill) UpdateItem(id string, description string, quantity, price decimal.Decimal) error {
	item := b.Item(id)
	if item == nil {
		return ierr.NewError("line item not found").
			WithHintf("No line item with id %s on bill %s", id, b.ID).
			Mark(ierr.ErrNotFound)
	}

	item.Description = description
	item.Quantity = quantity
	item.Price = price
	item.Amount = ItemAmount(quantity, price)
	b.Recalculate()
	return nil
}

// Validate validates the bill and its derived-field invariants
func (b *Bill) Validate() error {
	if b.ID == "" {
		return ierr.NewError("bill validation failed").
			WithHint("Bill id must not be empty").
			Mark(ierr.ErrValidation)
	}

	if err := b.Status.Validate(); err != nil {
		return err
	}

	if len(b.Items) == 0 {
		return ierr.NewError("bill validation failed").
			WithHint("A bill must have at least one line item").
			Mark(ierr.ErrValidation)
	}

	for _, item := range b.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	subtotal := Subtotal(b.Items)
	tax := Tax(subtotal, DefaultTaxRate)
	if !b.Subtotal.Equal(subtotal) || !b.Tax.Equal(tax) || !b.Total.Equal(Total(subtotal, tax)) {
		return ierr.NewError("bill validation failed").
			WithHint("Derived totals are stale relative to the line items").
			WithReportableDetails(map[string]any{
				"bill_id":  b.ID,
				"subtotal": b.Subtotal,
				"tax":      b.Tax,
				"total":    b.Total,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}
