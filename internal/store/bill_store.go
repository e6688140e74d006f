// Package store owns the canonical bill collection, the current
// selection and the active filter configuration. It is the sole writer
// of the persisted collection; every read it serves is a detached,
// recomputed-on-demand snapshot.
package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/billfold/billfold/internal/config"
	"github.com/billfold/billfold/internal/domain/bill"
	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/billfold/billfold/internal/kv"
	"github.com/billfold/billfold/internal/logger"
	"github.com/billfold/billfold/internal/types"
)

// Params holds the dependencies of a BillStore
type Params struct {
	Logger *logger.Logger
	Config *config.Configuration
	KV     kv.Store
}

// BillStore is the authoritative owner of the bill collection.
// The canonical order is insertion order, newest-created first.
// Selection yields a detached working copy that is only committed back
// by an explicit Update. Unknown-id mutations are silent no-ops logged
// at warn level, uniformly across Update, Delete and Select. A failed
// persist rolls the in-memory mutation back, so the collection never
// diverges from the store.
type BillStore struct {
	logger *logger.Logger
	config *config.Configuration
	kv     kv.Store

	mu       sync.RWMutex
	bills    []*bill.Bill
	selected *bill.Bill
	opts     types.FilterOptions
}

// NewBillStore constructs an empty store; call Load before first use
func NewBillStore(params Params) *BillStore {
	return &BillStore{
		logger: params.Logger,
		config: params.Config,
		kv:     params.KV,
		bills:  []*bill.Bill{},
		opts:   types.NewDefaultFilterOptions(),
	}
}

// Load seeds the canonical collection from the key-value store. An
// absent key yields an empty collection. Malformed persisted data is
// logged and replaced by an empty collection rather than crashing.
func (s *BillStore) Load(ctx context.Context) error {
	data, found, err := s.kv.Get(ctx, kv.KeyBills)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !found {
		s.bills = []*bill.Bill{}
		return nil
	}

	var bills []*bill.Bill
	if err := json.Unmarshal(data, &bills); err != nil {
		s.logger.Warnw("persisted bills are malformed, starting from an empty collection",
			"error", err)
		s.bills = []*bill.Bill{}
		return nil
	}
	if bills == nil {
		bills = []*bill.Bill{}
	}

	s.bills = bills
	return nil
}

// Create constructs a fresh empty bill, prepends it to the canonical
// collection, selects it and persists. The returned bill is a detached
// copy.
func (s *BillStore) Create(ctx context.Context) (*bill.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prevBills, prevSelected := s.bills, s.selected

	b := bill.NewEmptyBill(s.config.Billing.BillNumberPrefix, s.config.Billing.DueDateDays)
	s.bills = append([]*bill.Bill{b}, s.bills...)
	s.selected = b.Copy()

	if err := s.persist(ctx); err != nil {
		s.bills, s.selected = prevBills, prevSelected
		return nil, err
	}

	s.logger.Debugw("created bill", "bill_id", b.ID, "bill_number", b.BillNumber)
	return b.Copy(), nil
}

// Update replaces the canonical entry matching b's id with the given
// value, rederiving totals first so stale derived fields can never be
// persisted. An unknown id is a no-op. If the updated bill is currently
// selected the working copy is refreshed to match.
func (s *BillStore) Update(ctx context.Context, b *bill.Bill) error {
	if b == nil {
		return ierr.NewError("bill is required").
			WithHint("Cannot update a nil bill").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(b.ID)
	if idx < 0 {
		s.logger.Warnw("update ignored, bill not found", "bill_id", b.ID)
		return nil
	}

	prev, prevSelected := s.bills[idx], s.selected

	committed := b.Copy()
	committed.Recalculate()
	s.bills[idx] = committed

	if s.selected != nil && s.selected.ID == committed.ID {
		s.selected = committed.Copy()
	}

	if err := s.persist(ctx); err != nil {
		s.bills[idx] = prev
		s.selected = prevSelected
		return err
	}
	return nil
}

// Delete removes the entry with the given id from the canonical
// collection. An unknown id is a no-op. A selection pointing at the
// removed bill is cleared.
func (s *BillStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Warnw("delete ignored, bill not found", "bill_id", id)
		return nil
	}

	prevBills, prevSelected := s.bills, s.selected

	remaining := make([]*bill.Bill, 0, len(s.bills)-1)
	remaining = append(remaining, s.bills[:idx]...)
	remaining = append(remaining, s.bills[idx+1:]...)
	s.bills = remaining
	if s.selected != nil && s.selected.ID == id {
		s.selected = nil
	}

	if err := s.persist(ctx); err != nil {
		s.bills, s.selected = prevBills, prevSelected
		return err
	}
	return nil
}

// Select sets the working copy to a detached copy of the canonical
// entry with the given id. An unknown id clears the selection.
func (s *BillStore) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		if id != "" {
			s.logger.Warnw("select cleared, bill not found", "bill_id", id)
		}
		s.selected = nil
		return
	}
	s.selected = s.bills[idx].Copy()
}

// Deselect clears the working copy
func (s *BillStore) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// Selected returns a copy of the working copy, or nil when nothing is
// selected. Edits to the returned bill only reach the canonical
// collection through Update.
func (s *BillStore) Selected() *bill.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected.Copy()
}

// StageSelected replaces the selected working copy with the given
// edited bill. The canonical collection is untouched; only Update
// commits a working copy. A bill whose id does not match the current
// selection is ignored.
func (s *BillStore) StageSelected(b *bill.Bill) {
	if b == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil || s.selected.ID != b.ID {
		s.logger.Warnw("stage ignored, bill is not the current selection", "bill_id", b.ID)
		return
	}
	s.selected = b.Copy()
}

// SetFilterOptions shallow-merges the patch into the active filter
// configuration; unset fields keep their previous values.
func (s *BillStore) SetFilterOptions(patch types.FilterPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts = s.opts.Merge(patch)
}

// FilterOptions returns the active filter configuration
func (s *BillStore) FilterOptions() types.FilterOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts
}

// Bill returns a detached copy of the canonical entry with the given
// id, or nil when no entry matches.
func (s *BillStore) Bill(id string) *bill.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	return s.bills[idx].Copy()
}

// Bills returns detached copies of the canonical collection in
// canonical order.
func (s *BillStore) Bills() []*bill.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyBills(s.bills)
}

// FilteredBills applies the active filter configuration to the
// canonical collection. The view is recomputed on every call, never
// cached, so it can never diverge from canonical state.
func (s *BillStore) FilteredBills() []*bill.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return bill.ApplyFilters(copyBills(s.bills), s.opts)
}

// Summary computes per-status counts and summed totals over the
// canonical collection.
func (s *BillStore) Summary() bill.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return bill.Summarize(s.bills)
}

// Count returns the canonical collection size
func (s *BillStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bills)
}

// persist writes the whole canonical collection to the key-value store.
// Callers must hold the write lock.
func (s *BillStore) persist(ctx context.Context) error {
	data, err := json.Marshal(s.bills)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to serialize the bill collection").
			Mark(ierr.ErrSystem)
	}
	return s.kv.Set(ctx, kv.KeyBills, data)
}

// indexOf returns the canonical index of the bill with the given id, or
// -1. Callers must hold the lock.
func (s *BillStore) indexOf(id string) int {
	for i, b := range s.bills {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func copyBills(bills []*bill.Bill) []*bill.Bill {
	out := make([]*bill.Bill, len(bills))
	for i, b := range bills {
		out[i] = b.Copy()
	}
	return out
}
