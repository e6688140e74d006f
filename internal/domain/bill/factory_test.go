package bill

import (
	"regexp"
	"strings"
	"testing"

	"github.com/billfold/billfold/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBillNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^INV-\d{6}-\d{3}$`)
	for i := 0; i < 20; i++ {
		number := GenerateBillNumber("INV")
		assert.Regexp(t, pattern, number)
	}

	assert.True(t, strings.HasPrefix(GenerateBillNumber(""), DefaultBillNumberPrefix+"-"))
	assert.True(t, strings.HasPrefix(GenerateBillNumber("BILL"), "BILL-"))
}

func TestNewEmptyItemDefaults(t *testing.T) {
	item := NewEmptyItem()

	assert.True(t, strings.HasPrefix(item.ID, types.UUID_PREFIX_BILL_ITEM+"_"))
	assert.Empty(t, item.Description)
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(1)))
	assert.True(t, item.Price.IsZero())
	assert.True(t, item.Amount.IsZero())
}

func TestNewEmptyBillDefaults(t *testing.T) {
	b := NewEmptyBill("INV", 30)

	assert.True(t, strings.HasPrefix(b.ID, types.UUID_PREFIX_BILL+"_"))
	assert.NotEmpty(t, b.BillNumber)
	assert.Empty(t, b.CustomerName)
	assert.Equal(t, types.BillStatusDraft, b.Status)
	require.Len(t, b.Items, 1)

	today := types.Today()
	assert.True(t, b.Date.Equal(today))
	assert.True(t, b.DueDate.Equal(today.AddDays(30)))

	assert.True(t, b.Subtotal.IsZero())
	assert.True(t, b.Tax.IsZero())
	assert.True(t, b.Total.IsZero())

	// ids are unique across bills
	other := NewEmptyBill("INV", 30)
	assert.NotEqual(t, b.ID, other.ID)
	assert.NotEqual(t, b.Items[0].ID, other.Items[0].ID)
}
