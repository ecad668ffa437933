package storefront

import (
	"context"
	"sort"

	"sabor-oriental/internal/domain"
)

type SortMode string

const (
	SortNewest   SortMode = "newest"
	SortTopRated SortMode = "rating"
)

// Report is the admin order-report view model: the raw collection plus a
// client-selected sort mode, recomputed locally whenever either changes.
type Report struct {
	client *Client
	orders []domain.Order
	mode   SortMode
	sorted []domain.Order

	// PrintFunc is the platform's native print capability; no export
	// format is computed server-side.
	PrintFunc func()
}

func NewReport(client *Client) *Report {
	return &Report{client: client, mode: SortNewest}
}

func (r *Report) Load(ctx context.Context) error {
	orders, err := r.client.Orders(ctx)
	if err != nil {
		return err
	}
	r.orders = orders
	r.recompute()
	return nil
}

func (r *Report) SetMode(mode SortMode) {
	r.mode = mode
	r.recompute()
}

func (r *Report) Mode() SortMode {
	return r.mode
}

func (r *Report) Orders() []domain.Order {
	return r.sorted
}

func (r *Report) Print() {
	if r.PrintFunc != nil {
		r.PrintFunc()
	}
}

func (r *Report) recompute() {
	r.sorted = SortOrders(r.orders, r.mode)
}

// SortOrders returns a sorted copy. Newest-first orders by date descending.
// Highest-rated-first places every rated order before every unrated one
// with ratings non-increasing, and is stable otherwise.
func SortOrders(orders []domain.Order, mode SortMode) []domain.Order {
	sorted := append([]domain.Order(nil), orders...)
	switch mode {
	case SortTopRated:
		sort.SliceStable(sorted, func(i, j int) bool {
			a, b := sorted[i].OrderRating, sorted[j].OrderRating
			switch {
			case a != nil && b != nil:
				return *a > *b
			case a != nil:
				return true
			default:
				return false
			}
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date.After(sorted[j].Date)
		})
	}
	return sorted
}
