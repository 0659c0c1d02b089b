package records

import (
	"sort"
	"strings"
)

// Sort modes for the browse view.
const (
	SortByName      = "name"
	SortByPriceLow  = "price-low"
	SortByPriceHigh = "price-high"
	SortByRating    = "rating"
)

// NurseryFilter narrows the browse list. Zero values are no-ops except
// MaxPrice, where <= 0 means unbounded.
type NurseryFilter struct {
	Query     string
	MinPrice  float64
	MaxPrice  float64
	MinRating float64
}

// Apply filters in order: substring match on name or location
// (case-insensitive), inclusive price range, rating floor.
func (f NurseryFilter) Apply(nurseries []Nursery) []Nursery {
	out := make([]Nursery, 0, len(nurseries))
	query := strings.ToLower(strings.TrimSpace(f.Query))

	for _, n := range nurseries {
		if query != "" &&
			!strings.Contains(strings.ToLower(n.Name), query) &&
			!strings.Contains(strings.ToLower(n.Location), query) {
			continue
		}
		if n.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && n.Price > f.MaxPrice {
			continue
		}
		if n.Rating < f.MinRating {
			continue
		}
		out = append(out, n)
	}
	return out
}

// SortNurseries orders the list in place. Unknown modes fall back to the
// default name ascending order.
func SortNurseries(nurseries []Nursery, mode string) {
	switch mode {
	case SortByPriceLow:
		sort.SliceStable(nurseries, func(i, j int) bool {
			return nurseries[i].Price < nurseries[j].Price
		})
	case SortByPriceHigh:
		sort.SliceStable(nurseries, func(i, j int) bool {
			return nurseries[i].Price > nurseries[j].Price
		})
	case SortByRating:
		sort.SliceStable(nurseries, func(i, j int) bool {
			return nurseries[i].Rating > nurseries[j].Rating
		})
	default:
		sort.SliceStable(nurseries, func(i, j int) bool {
			return nurseries[i].Name < nurseries[j].Name
		})
	}
}
