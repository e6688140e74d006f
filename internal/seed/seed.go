// Package seed populates the key-value store with example bills on
// first run so a first-time user sees non-empty state.
package seed

import (
	"context"
	"encoding/json"

	"github.com/billfold/billfold/internal/domain/bill"
	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/billfold/billfold/internal/kv"
	"github.com/billfold/billfold/internal/logger"
	"github.com/billfold/billfold/internal/types"
	"github.com/shopspring/decimal"
)

// Bills returns the three sample bills shipped with a fresh install
func Bills(prefix string) []*bill.Bill {
	acme := &bill.Bill{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BILL),
		BillNumber:     bill.GenerateBillNumber(prefix),
		CustomerName:   "Acme Corporation",
		CustomerEmail:  "billing@acmecorp.com",
		CustomerPhone:  "555-123-4567",
		BillingAddress: "123 Business Ave, Suite 100, New York, NY 10001",
		Date:           types.MustParseDate("2025-01-15"),
		DueDate:        types.MustParseDate("2025-02-15"),
		Status:         types.BillStatusPaid,
		Items: []*bill.BillItem{
			sampleItem("Website Development", 1, "2500"),
			sampleItem("Hosting (Annual)", 1, "199"),
		},
		Notes: "Thank you for your business!",
	}

	techstart := &bill.Bill{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BILL),
		BillNumber:     bill.GenerateBillNumber(prefix),
		CustomerName:   "TechStart Inc.",
		CustomerEmail:  "accounts@techstart.co",
		CustomerPhone:  "555-987-6543",
		BillingAddress: "456 Innovation Park, San Francisco, CA 94107",
		Date:           types.MustParseDate("2025-02-01"),
		DueDate:        types.MustParseDate("2025-03-01"),
		Status:         types.BillStatusPending,
		Items: []*bill.BillItem{
			sampleItem("Consulting Services (20 hours)", 20, "150"),
			sampleItem("Software License", 5, "99"),
		},
		Notes: "Net 30 payment terms",
	}

	global := &bill.Bill{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BILL),
		BillNumber:     bill.GenerateBillNumber(prefix),
		CustomerName:   "Global Enterprises LLC",
		CustomerEmail:  "finance@globalent.org",
		CustomerPhone:  "555-555-5555",
		BillingAddress: "789 Corporate Blvd, Chicago, IL 60601",
		Date:           types.MustParseDate("2025-01-05"),
		DueDate:        types.MustParseDate("2025-01-20"),
		Status:         types.BillStatusOverdue,
		Items: []*bill.BillItem{
			sampleItem("Marketing Campaign", 1, "5000"),
			sampleItem("Social Media Management", 1, "1500"),
		},
		Notes: "Please pay immediately",
	}

	bills := []*bill.Bill{acme, techstart, global}
	for _, b := range bills {
		b.Recalculate()
	}
	return bills
}

// Ensure writes the sample bills under the bills key if and only if the
// key is absent. It must run before the bill store's first read.
func Ensure(ctx context.Context, store kv.Store, prefix string, log *logger.Logger) error {
	_, found, err := store.Get(ctx, kv.KeyBills)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	bills := Bills(prefix)
	data, err := json.Marshal(bills)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to serialize sample bills").
			Mark(ierr.ErrSystem)
	}
	if err := store.Set(ctx, kv.KeyBills, data); err != nil {
		return err
	}

	log.Infow("seeded sample bills", "count", len(bills))
	return nil
}

func sampleItem(description string, quantity int64, price string) *bill.BillItem {
	q := decimal.NewFromInt(quantity)
	p := decimal.RequireFromString(price)
	return &bill.BillItem{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BILL_ITEM),
		Description: description,
		Quantity:    q,
		Price:       p,
		Amount:      bill.ItemAmount(q, p),
	}
}
