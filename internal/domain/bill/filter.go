package bill

import (
	"sort"
	"strings"

	"github.com/billfold/billfold/internal/types"
)

// ApplyFilters narrows bills down to the set matching opts and sorts the
// result by bill date descending. The input slice is never mutated; the
// returned slice holds the same bill pointers in a fresh backing array.
// The sort is stable, so equal-date bills keep their relative input
// order and the output is deterministic for identical inputs.
func ApplyFilters(bills []*Bill, opts types.FilterOptions) []*Bill {
	result := make([]*Bill, 0, len(bills))

	query := strings.ToLower(opts.SearchQuery)
	for _, b := range bills {
		if opts.Status != types.BillStatusAll && b.Status != opts.Status {
			continue
		}
		if opts.DateRange != nil && !b.Date.Between(opts.DateRange.From, opts.DateRange.To) {
			continue
		}
		if query != "" && !matchesQuery(b, query) {
			continue
		}
		result = append(result, b)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[j].Date.Before(result[i].Date)
	})

	return result
}

// matchesQuery reports whether the lowercased query is a substring of
// the bill's customer name or bill number.
func matchesQuery(b *Bill, query string) bool {
	return strings.Contains(strings.ToLower(b.CustomerName), query) ||
		strings.Contains(strings.ToLower(b.BillNumber), query)
}
