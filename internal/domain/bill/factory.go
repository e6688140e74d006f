package bill

import (
	"fmt"
	"math/rand"

	"github.com/billfold/billfold/internal/types"
	"github.com/shopspring/decimal"
)

// DefaultBillNumberPrefix is used when no prefix is configured
const DefaultBillNumberPrefix = "INV"

// GenerateBillNumber produces a pseudo-unique human-readable bill number
// of the form PREFIX-YYMMDD-NNN where NNN is a zero-padded random suffix.
// Collisions are possible but tolerated for a single-user local tool.
func GenerateBillNumber(prefix string) string {
	if prefix == "" {
		prefix = DefaultBillNumberPrefix
	}
	date := types.Today().Time().Format("060102")
	suffix := rand.Intn(1000)
	return fmt.Sprintf("%s-%s-%03d", prefix, date, suffix)
}

// NewEmptyItem returns a fresh line item with quantity 1 and zero price
func NewEmptyItem() *BillItem {
	return &BillItem{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BILL_ITEM),
		Description: "",
		Quantity:    decimal.NewFromInt(1),
		Price:       decimal.Zero,
		Amount:      decimal.Zero,
	}
}

// NewEmptyBill returns a fresh draft bill with one empty line item, the
// bill date set to today and the due date dueDays later.
func NewEmptyBill(prefix string, dueDays int) *Bill {
	today := types.Today()
	return &Bill{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BILL),
		BillNumber: GenerateBillNumber(prefix),
		Date:       today,
		DueDate:    today.AddDays(dueDays),
		Items:      []*BillItem{NewEmptyItem()},
		Status:     types.BillStatusDraft,
		Subtotal:   decimal.Zero,
		Tax:        decimal.Zero,
		Total:      decimal.Zero,
	}
}
