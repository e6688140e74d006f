package view

import (
	"testing"
	"time"

	"github.com/billfold/billfold/internal/domain/bill"
	"github.com/billfold/billfold/internal/testutil"
	"github.com/billfold/billfold/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// three bills named A, B, C with descending dates so the pipeline
// order is [A, B, C]
func threeBills() (a, b, c *bill.Bill) {
	a = testutil.NewTestBill("A", types.NewDate(2025, time.March, 3), types.BillStatusDraft)
	b = testutil.NewTestBill("B", types.NewDate(2025, time.March, 2), types.BillStatusDraft)
	c = testutil.NewTestBill("C", types.NewDate(2025, time.March, 1), types.BillStatusDraft)
	return a, b, c
}

func names(bills []*bill.Bill) []string {
	return lo.Map(bills, func(b *bill.Bill, _ int) string { return b.CustomerName })
}

func TestReconcileMirrorsPipelineUntilOverridden(t *testing.T) {
	a, b, c := threeBills()
	order := NewDisplayOrder()

	got := order.Reconcile([]*bill.Bill{a, b, c})
	assert.Equal(t, []string{"A", "B", "C"}, names(got))
	assert.False(t, order.Overridden())

	// a different pipeline order passes straight through
	got = order.Reconcile([]*bill.Bill{c, a, b})
	assert.Equal(t, []string{"C", "A", "B"}, names(got))
}

func TestMoveOverridesOrder(t *testing.T) {
	a, b, c := threeBills()
	order := NewDisplayOrder()
	order.Reconcile([]*bill.Bill{a, b, c})

	require.True(t, order.Move(b.ID, a.ID))
	assert.True(t, order.Overridden())

	got := order.Reconcile([]*bill.Bill{a, b, c})
	assert.Equal(t, []string{"B", "A", "C"}, names(got))
}

func TestMoveUnknownOrIdenticalIDsNoOp(t *testing.T) {
	a, b, c := threeBills()
	order := NewDisplayOrder()
	order.Reconcile([]*bill.Bill{a, b, c})

	assert.False(t, order.Move(a.ID, a.ID))
	assert.False(t, order.Move("bill_unknown", a.ID))
	assert.False(t, order.Move(a.ID, "bill_unknown"))
	assert.False(t, order.Overridden())
}

func TestReconcileIdempotent(t *testing.T) {
	a, b, c := threeBills()
	order := NewDisplayOrder()
	filtered := []*bill.Bill{a, b, c}
	order.Reconcile(filtered)
	order.Move(b.ID, a.ID)

	first := order.Reconcile(filtered)
	second := order.Reconcile(filtered)
	assert.Equal(t, names(first), names(second))
	assert.Equal(t, []string{"B", "A", "C"}, names(second))
}

func TestReorderSurvivesUnrelatedUpdate(t *testing.T) {
	a, b, c := threeBills()
	order := NewDisplayOrder()
	order.Reconcile([]*bill.Bill{a, b, c})
	order.Move(b.ID, a.ID) // display order [B, A, C]

	// editing A's notes keeps it in the filtered set; the pipeline
	// recomputes but the manual order must hold
	edited := a.Copy()
	edited.Notes = "payment reminder sent"

	got := order.Reconcile([]*bill.Bill{edited, b, c})
	assert.Equal(t, []string{"B", "A", "C"}, names(got))
	assert.Equal(t, "payment reminder sent", got[1].Notes)
}

func TestReorderDropsRemovedAppendsNew(t *testing.T) {
	a, b, c := threeBills()
	order := NewDisplayOrder()
	order.Reconcile([]*bill.Bill{a, b, c})
	order.Move(b.ID, a.ID) // display order [B, A, C]

	// C deleted, D newly enters the filtered set
	d := testutil.NewTestBill("D", types.NewDate(2025, time.February, 20), types.BillStatusDraft)

	got := order.Reconcile([]*bill.Bill{a, b, d})
	assert.Equal(t, []string{"B", "A", "D"}, names(got))

	// reconciling again with the same set is stable
	got = order.Reconcile([]*bill.Bill{a, b, d})
	assert.Equal(t, []string{"B", "A", "D"}, names(got))
}

func TestResetReturnsToPipelineOrder(t *testing.T) {
	a, b, c := threeBills()
	order := NewDisplayOrder()
	order.Reconcile([]*bill.Bill{a, b, c})
	order.Move(c.ID, a.ID)

	order.Reset()
	assert.False(t, order.Overridden())

	got := order.Reconcile([]*bill.Bill{a, b, c})
	assert.Equal(t, []string{"A", "B", "C"}, names(got))
}
