package storefront

import (
	"context"
	"errors"
	"time"

	"sabor-oriental/internal/domain"
)

var ErrEmptyCart = errors.New("o carrinho está vazio")

// Checkout builds an order document from the cart snapshot and submits it.
// An unauthenticated user gets a redirect to the login route; submission
// failure leaves the cart untouched so the user can retry. On success the
// cart is cleared and the caller is pointed at the report view.
func Checkout(ctx context.Context, client *Client, session *Session, cart *Cart) (*domain.Order, *Redirect, error) {
	items := cart.Items()
	if len(items) == 0 {
		return nil, nil, ErrEmptyCart
	}

	user := session.Current()
	if user == nil || user.ID == 0 {
		return nil, &Redirect{To: RouteLogin}, nil
	}

	order := &domain.Order{
		UserID:     user.ID,
		UserName:   user.Name,
		UserPhoto:  user.ProfilePicture,
		TotalValue: cart.Total(),
		Items:      make([]domain.OrderItem, 0, len(items)),
		Date:       time.Now(),
		Status:     domain.StatusConfirmed,
	}
	for _, item := range items {
		order.Items = append(order.Items, domain.OrderItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			ImageURL: item.ImageURL,
		})
	}

	created, err := client.CreateOrder(ctx, order)
	if err != nil {
		return nil, nil, err
	}

	cart.Clear()
	return created, &Redirect{To: RouteReports}, nil
}
