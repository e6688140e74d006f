package seed

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/billfold/billfold/internal/domain/bill"
	"github.com/billfold/billfold/internal/kv"
	"github.com/billfold/billfold/internal/logger"
	"github.com/billfold/billfold/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillsLiteralTotals(t *testing.T) {
	bills := Bills("INV")
	require.Len(t, bills, 3)

	tests := []struct {
		customer string
		subtotal string
		tax      string
		total    string
		status   types.BillStatus
	}{
		{"Acme Corporation", "2699", "269.90", "2968.90", types.BillStatusPaid},
		{"TechStart Inc.", "3495", "349.50", "3844.50", types.BillStatusPending},
		{"Global Enterprises LLC", "6500", "650", "7150.00", types.BillStatusOverdue},
	}

	for i, tt := range tests {
		b := bills[i]
		assert.Equal(t, tt.customer, b.CustomerName)
		assert.Equal(t, tt.status, b.Status)
		assert.True(t, b.Subtotal.Equal(decimal.RequireFromString(tt.subtotal)),
			"%s subtotal = %s, want %s", tt.customer, b.Subtotal, tt.subtotal)
		assert.True(t, b.Tax.Equal(decimal.RequireFromString(tt.tax)),
			"%s tax = %s, want %s", tt.customer, b.Tax, tt.tax)
		assert.True(t, b.Total.Equal(decimal.RequireFromString(tt.total)),
			"%s total = %s, want %s", tt.customer, b.Total, tt.total)

		assert.NoError(t, b.Validate(), "%s must satisfy the bill invariants", tt.customer)
		assert.Len(t, b.Items, 2)
	}
}

func TestEnsureSeedsOnlyWhenAbsent(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	log, err := logger.NewLogger(types.LogLevelDebug)
	require.NoError(t, err)

	require.NoError(t, Ensure(ctx, store, "INV", log))

	data, found, err := store.Get(ctx, kv.KeyBills)
	require.NoError(t, err)
	require.True(t, found)

	var bills []*bill.Bill
	require.NoError(t, json.Unmarshal(data, &bills))
	require.Len(t, bills, 3)

	// a second Ensure must not overwrite existing data
	require.NoError(t, store.Set(ctx, kv.KeyBills, []byte(`[]`)))
	require.NoError(t, Ensure(ctx, store, "INV", log))

	data, _, err = store.Get(ctx, kv.KeyBills)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}
