package types

import (
	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/samber/lo"
)

// BillStatus is the lifecycle status of a bill
type BillStatus string

const (
	BillStatusDraft   BillStatus = "draft"
	BillStatusPending BillStatus = "pending"
	BillStatusPaid    BillStatus = "paid"
	BillStatusOverdue BillStatus = "overdue"

	// BillStatusAll is the filter wildcard matching every status.
	// It is valid in FilterOptions only, never on a bill itself.
	BillStatusAll BillStatus = "all"
)

func (s BillStatus) String() string {
	return string(s)
}

func (s BillStatus) Validate() error {
	allowed := []BillStatus{
		BillStatusDraft,
		BillStatusPending,
		BillStatusPaid,
		BillStatusOverdue,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid bill status").
			WithHint("Please provide a valid bill status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ValidateFilter allows the "all" wildcard in addition to the bill statuses.
func (s BillStatus) ValidateFilter() error {
	if s == BillStatusAll {
		return nil
	}
	return s.Validate()
}
