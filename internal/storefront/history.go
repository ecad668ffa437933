package storefront

import (
	"context"
	"errors"
	"sort"

	"sabor-oriental/internal/domain"
)

var ErrRatingOutOfRange = errors.New("a nota deve estar entre 1 e 5")

// OrderHistory fetches all orders, keeps the ones owned by userID and
// sorts them newest first.
func OrderHistory(ctx context.Context, client *Client, userID int) ([]domain.Order, error) {
	orders, err := client.Orders(ctx)
	if err != nil {
		return nil, err
	}

	mine := []domain.Order{}
	for _, order := range orders {
		if order.UserID == userID {
			mine = append(mine, order)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].Date.After(mine[j].Date)
	})
	return mine, nil
}

type Rating struct {
	Score    int
	Feedback string
}

func ValidateRating(score int) error {
	if score < 1 || score > 5 {
		return ErrRatingOutOfRange
	}
	return nil
}

// SubmitRating validates the form client-side, then PATCHes the order with
// the rating, feedback and the avaliado status.
func SubmitRating(ctx context.Context, client *Client, orderID int, rating Rating) (*domain.Order, error) {
	if err := ValidateRating(rating.Score); err != nil {
		return nil, err
	}
	return client.PatchOrder(ctx, orderID, OrderPatch{
		OrderRating:   rating.Score,
		OrderFeedback: rating.Feedback,
		Status:        domain.StatusRated,
	})
}

// CanEditRating reports whether the viewer may (re-)invoke the rating flow
// on an order: only the owning regular user keeps it editable; everyone
// else sees a stored rating read-only.
func CanEditRating(viewer *domain.User, order *domain.Order) bool {
	return viewer != nil && viewer.Role == domain.RoleUser && viewer.ID == order.UserID
}
