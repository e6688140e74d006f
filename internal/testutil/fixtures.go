package testutil

import (
	"github.com/billfold/billfold/internal/domain/bill"
	"github.com/billfold/billfold/internal/types"
	"github.com/shopspring/decimal"
)

// NewTestBill builds a valid bill with one priced line item for tests
func NewTestBill(customerName string, date types.Date, status types.BillStatus) *bill.Bill {
	item := bill.NewEmptyItem()
	item.Description = "Test work"
	item.Quantity = decimal.NewFromInt(2)
	item.Price = decimal.NewFromInt(50)
	item.Amount = bill.ItemAmount(item.Quantity, item.Price)

	b := &bill.Bill{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BILL),
		BillNumber:   bill.GenerateBillNumber(""),
		CustomerName: customerName,
		Date:         date,
		DueDate:      date.AddDays(30),
		Items:        []*bill.BillItem{item},
		Status:       status,
	}
	b.Recalculate()
	return b
}
