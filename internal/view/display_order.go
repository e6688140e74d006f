// Package view layers a user-imposed display order on top of the filter
// pipeline's natural sort. The overlay is scoped to one view instance:
// it is never persisted and a recreated view starts from the pipeline
// order again.
package view

import (
	"github.com/billfold/billfold/internal/domain/bill"
	"github.com/samber/lo"
)

// DisplayOrder reconciles the filter pipeline's output with a manual
// reordering previously applied by the user. Until Move is called it
// mirrors the pipeline order exactly.
type DisplayOrder struct {
	overridden bool
	ids        []string
}

// NewDisplayOrder returns an overlay mirroring the pipeline order
func NewDisplayOrder() *DisplayOrder {
	return &DisplayOrder{}
}

// Overridden reports whether a manual reorder is in effect
func (o *DisplayOrder) Overridden() bool {
	return o.overridden
}

// Reconcile maps the current filtered set onto the display order.
// While not overridden the pipeline order passes through unchanged.
// While overridden: ids still present keep their established order,
// newly appeared bills are appended in pipeline order, and vanished ids
// are dropped. Reconciling twice with the same input yields the same
// order.
func (o *DisplayOrder) Reconcile(filtered []*bill.Bill) []*bill.Bill {
	if !o.overridden {
		o.ids = billIDs(filtered)
		return filtered
	}

	byID := lo.KeyBy(filtered, func(b *bill.Bill) string { return b.ID })

	result := make([]*bill.Bill, 0, len(filtered))
	seen := make(map[string]bool, len(filtered))
	for _, id := range o.ids {
		if b, ok := byID[id]; ok {
			result = append(result, b)
			seen[id] = true
		}
	}
	for _, b := range filtered {
		if !seen[b.ID] {
			result = append(result, b)
		}
	}

	o.ids = billIDs(result)
	return result
}

// Move splices the bill with activeID into the position currently held
// by overID, the same semantics as dragging one row onto another. The
// overlay is overridden from then on. Unknown or identical ids are a
// no-op; the return value reports whether the order changed.
func (o *DisplayOrder) Move(activeID, overID string) bool {
	if activeID == overID {
		return false
	}

	oldIdx := lo.IndexOf(o.ids, activeID)
	newIdx := lo.IndexOf(o.ids, overID)
	if oldIdx < 0 || newIdx < 0 {
		return false
	}

	id := o.ids[oldIdx]
	o.ids = append(o.ids[:oldIdx], o.ids[oldIdx+1:]...)
	o.ids = append(o.ids[:newIdx], append([]string{id}, o.ids[newIdx:]...)...)
	o.overridden = true
	return true
}

// Reset drops the manual override; the next Reconcile mirrors the
// pipeline order again.
func (o *DisplayOrder) Reset() {
	o.overridden = false
	o.ids = nil
}

// IDs returns the established display order
func (o *DisplayOrder) IDs() []string {
	out := make([]string, len(o.ids))
	copy(out, o.ids)
	return out
}

func billIDs(bills []*bill.Bill) []string {
	return lo.Map(bills, func(b *bill.Bill, _ int) string { return b.ID })
}
