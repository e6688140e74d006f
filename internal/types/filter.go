package types

import (
	ierr "github.com/billfold/billfold/internal/errors"
)

// DateRange is an inclusive calendar-date interval
type DateRange struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

func (r DateRange) Validate() error {
	if r.To.Before(r.From) {
		return ierr.NewError("invalid date range").
			WithHint("Range end must not be before range start").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// FilterOptions narrows the visible bill set. The zero value is not
// meaningful; use NewDefaultFilterOptions.
type FilterOptions struct {
	Status      BillStatus `json:"status"`
	DateRange   *DateRange `json:"date_range,omitempty"`
	SearchQuery string     `json:"search_query"`
}

// NewDefaultFilterOptions matches every bill: status wildcard,
// no date range, empty search.
func NewDefaultFilterOptions() FilterOptions {
	return FilterOptions{
		Status:      BillStatusAll,
		DateRange:   nil,
		SearchQuery: "",
	}
}

func (f FilterOptions) Validate() error {
	if err := f.Status.ValidateFilter(); err != nil {
		return err
	}
	if f.DateRange != nil {
		if err := f.DateRange.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FilterPatch is a partial FilterOptions for shallow merges; nil fields
// retain their previous values. ClearDateRange drops an active range
// (it wins over DateRange if both are set).
type FilterPatch struct {
	Status         *BillStatus `json:"status,omitempty"`
	DateRange      *DateRange  `json:"date_range,omitempty"`
	ClearDateRange bool        `json:"clear_date_range,omitempty"`
	SearchQuery    *string     `json:"search_query,omitempty"`
}

// Merge applies the patch on top of f and returns the result
func (f FilterOptions) Merge(p FilterPatch) FilterOptions {
	out := f
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.DateRange != nil {
		r := *p.DateRange
		out.DateRange = &r
	}
	if p.ClearDateRange {
		out.DateRange = nil
	}
	if p.SearchQuery != nil {
		out.SearchQuery = *p.SearchQuery
	}
	return out
}
