package bill

import (
	"github.com/shopspring/decimal"

	"github.com/billfold/billfold/internal/types"
)

// StatusSummary aggregates one status slice of a collection
type StatusSummary struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// Summary holds per-status counts and summed totals over a collection.
// Draft bills contribute to All only.
type Summary struct {
	All     StatusSummary `json:"all"`
	Paid    StatusSummary `json:"paid"`
	Pending StatusSummary `json:"pending"`
	Overdue StatusSummary `json:"overdue"`
}

// Summarize computes the summary statistics for the given bills. It is
// a pure function; the input is never mutated.
func Summarize(bills []*Bill) Summary {
	s := Summary{
		All:     StatusSummary{Total: decimal.Zero},
		Paid:    StatusSummary{Total: decimal.Zero},
		Pending: StatusSummary{Total: decimal.Zero},
		Overdue: StatusSummary{Total: decimal.Zero},
	}
	for _, b := range bills {
		s.All.Count++
		s.All.Total = s.All.Total.Add(b.Total)

		switch b.Status {
		case types.BillStatusPaid:
			s.Paid.Count++
			s.Paid.Total = s.Paid.Total.Add(b.Total)
		case types.BillStatusPending:
			s.Pending.Count++
			s.Pending.Total = s.Pending.Total.Add(b.Total)
		case types.BillStatusOverdue:
			s.Overdue.Count++
			s.Overdue.Total = s.Overdue.Total.Add(b.Total)
		}
	}
	return s
}
