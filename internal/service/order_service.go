package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/skip2/go-qrcode"

	"sabor-oriental/internal/domain"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrEmptyOrder       = errors.New("order requires at least one item")
	ErrOrderWithoutUser = errors.New("order requires an owning user")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrNotRatable       = errors.New("order cannot be rated in its current status")
)

type OrderService struct {
	orders    OrderRepository
	cache     MenuCache
	publisher OrderPublisher
}

func NewOrderService(orders OrderRepository, cache MenuCache, publisher OrderPublisher) *OrderService {
	return &OrderService{orders: orders, cache: cache, publisher: publisher}
}

// Checkout persists a new order. Status and date are owned by the server:
// every order starts as confirmado regardless of what the client sent.
func (s *OrderService) Checkout(ctx context.Context, order *domain.Order) error {
	if len(order.Items) == 0 {
		return ErrEmptyOrder
	}
	if order.UserID == 0 {
		return ErrOrderWithoutUser
	}

	order.Status = domain.StatusConfirmed
	order.OrderRating = nil
	order.OrderFeedback = ""
	if order.Date.IsZero() {
		order.Date = time.Now()
	}

	if err := s.orders.InsertOrder(order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	s.publish(ctx, domain.OrderEvent{
		Type:      domain.EventOrderCreated,
		OrderID:   order.ID,
		UserID:    order.UserID,
		Total:     order.TotalValue,
		Timestamp: time.Now(),
	})
	return nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListOrders()
}

func (s *OrderService) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	order, err := s.orders.GetOrder(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	return order, err
}

// Rate attaches a 1-5 rating plus optional feedback and moves the order to
// avaliado. An already-rated order may be rated again by its owner; any
// other status is rejected.
func (s *OrderService) Rate(ctx context.Context, id, rating int, feedback string) (*domain.Order, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrRatingOutOfRange
	}

	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.StatusConfirmed && order.Status != domain.StatusRated {
		return nil, ErrNotRatable
	}

	if err := s.orders.SetOrderRating(id, rating, feedback); err != nil {
		return nil, fmt.Errorf("failed to store rating: %w", err)
	}

	order.OrderRating = &rating
	order.OrderFeedback = feedback
	order.Status = domain.StatusRated

	if s.cache != nil {
		if err := s.cache.MarkRated(ctx, id); err != nil {
			log.Printf("[order] failed to cache rating marker: %v", err)
		}
	}

	s.publish(ctx, domain.OrderEvent{
		Type:      domain.EventOrderRated,
		OrderID:   id,
		UserID:    order.UserID,
		Rating:    rating,
		Timestamp: time.Now(),
	})
	return order, nil
}

// Receipt returns a PNG QR code pointing at the order's detail page,
// generating and caching it on first request.
func (s *OrderService) Receipt(ctx context.Context, id int) ([]byte, error) {
	png, err := s.orders.GetOrderQRCode(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if len(png) == 0 {
		png, err = qrcode.Encode(fmt.Sprintf("http://localhost:3000/pedidos/%d", id), qrcode.Medium, 256)
		if err != nil {
			return nil, fmt.Errorf("failed to generate QR code: %w", err)
		}
		if err := s.orders.StoreOrderQRCode(id, png); err != nil {
			log.Printf("[order] failed to store QR code for pedido %d: %v", id, err)
		}
	}
	return png, nil
}

func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("[order] failed to publish %s event for pedido %d: %v", event.Type, event.OrderID, err)
	}
}
