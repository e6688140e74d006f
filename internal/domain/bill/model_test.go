package bill

import (
	"testing"

	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveItemGuardsLastItem(t *testing.T) {
	b := NewEmptyBill("", 30)
	require.Len(t, b.Items, 1)
	only := b.Items[0]

	err := b.RemoveItem(only.ID)
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidOperation(err))

	// the bill is unchanged
	require.Len(t, b.Items, 1)
	assert.Equal(t, only.ID, b.Items[0].ID)
}

func TestRemoveItemUnknownID(t *testing.T) {
	b := NewEmptyBill("", 30)
	b.AddItem()

	err := b.RemoveItem("item_unknown")
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))
	assert.Len(t, b.Items, 2)
}

func TestUpdateItemRederivesAmount(t *testing.T) {
	b := NewEmptyBill("", 30)
	id := b.Items[0].ID

	require.NoError(t, b.UpdateItem(id, "Consulting", decimal.NewFromInt(20), decimal.NewFromInt(150)))

	item := b.Item(id)
	require.NotNil(t, item)
	assert.Equal(t, "Consulting", item.Description)
	assert.True(t, item.Amount.Equal(decimal.NewFromInt(3000)))
	assert.True(t, b.Total.Equal(decimal.NewFromInt(3300)))

	err := b.UpdateItem("item_unknown", "x", decimal.Zero, decimal.Zero)
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))
}

func TestBillCopyIsDetached(t *testing.T) {
	b := NewEmptyBill("", 30)
	require.NoError(t, b.UpdateItem(b.Items[0].ID, "Original", decimal.NewFromInt(1), decimal.NewFromInt(100)))

	cp := b.Copy()
	require.NoError(t, cp.UpdateItem(cp.Items[0].ID, "Edited", decimal.NewFromInt(9), decimal.NewFromInt(9)))
	cp.CustomerName = "Changed"

	assert.Equal(t, "Original", b.Items[0].Description)
	assert.Empty(t, b.CustomerName)
	assert.True(t, b.Total.Equal(decimal.NewFromInt(110)))
}

func TestBillValidate(t *testing.T) {
	t.Run("fresh bill is valid", func(t *testing.T) {
		assert.NoError(t, NewEmptyBill("", 30).Validate())
	})

	t.Run("stale derived fields rejected", func(t *testing.T) {
		b := NewEmptyBill("", 30)
		require.NoError(t, b.UpdateItem(b.Items[0].ID, "Work", decimal.NewFromInt(2), decimal.NewFromInt(50)))
		b.Total = decimal.NewFromInt(9999)

		err := b.Validate()
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("empty items rejected", func(t *testing.T) {
		b := NewEmptyBill("", 30)
		b.Items = nil
		b.Recalculate()

		err := b.Validate()
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("tampered item amount rejected", func(t *testing.T) {
		b := NewEmptyBill("", 30)
		b.Items[0].Amount = decimal.NewFromInt(42)

		err := b.Validate()
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})
}
