package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sabor-oriental/internal/domain"
)

func ratingOf(n int) *int { return &n }

func orderIDs(orders []domain.Order) []int {
	ids := make([]int, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}
	return ids
}

func TestSortOrders_TopRated(t *testing.T) {
	orders := []domain.Order{
		{ID: 1},
		{ID: 2, OrderRating: ratingOf(3)},
		{ID: 3, OrderRating: ratingOf(5)},
		{ID: 4},
		{ID: 5, OrderRating: ratingOf(5)},
	}

	sorted := SortOrders(orders, SortTopRated)

	// Rated before unrated, ratings non-increasing, ties and the unrated
	// tail keep their arrival order.
	assert.Equal(t, []int{3, 5, 2, 1, 4}, orderIDs(sorted))

	// The input slice is left alone.
	assert.Equal(t, 1, orders[0].ID)
}

func TestSortOrders_NewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	orders := []domain.Order{
		{ID: 1, Date: base},
		{ID: 2, Date: base.Add(2 * time.Hour)},
		{ID: 3, Date: base.Add(time.Hour)},
	}

	sorted := SortOrders(orders, SortNewest)
	assert.Equal(t, []int{2, 3, 1}, orderIDs(sorted))
}

func TestReport_LoadAndSwitchMode(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	all := []domain.Order{
		{ID: 1, Date: base, OrderRating: ratingOf(5)},
		{ID: 2, Date: base.Add(time.Hour)},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(all)
	}))
	t.Cleanup(server.Close)

	report := NewReport(NewClient(server.URL))
	assert.Equal(t, SortNewest, report.Mode())

	assert.NoError(t, report.Load(context.Background()))
	assert.Equal(t, []int{2, 1}, orderIDs(report.Orders()))

	report.SetMode(SortTopRated)
	assert.Equal(t, SortTopRated, report.Mode())
	assert.Equal(t, []int{1, 2}, orderIDs(report.Orders()))
}

func TestReport_LoadFailureKeepsPreviousOrders(t *testing.T) {
	report := NewReport(NewClient("http://127.0.0.1:1"))
	assert.Error(t, report.Load(context.Background()))
	assert.Empty(t, report.Orders())
}

func TestReport_Print(t *testing.T) {
	report := NewReport(nil)

	// Without a platform hook Print is a no-op.
	report.Print()

	printed := false
	report.PrintFunc = func() { printed = true }
	report.Print()
	assert.True(t, printed)
}
