package service

import (
	"context"

	"sabor-oriental/internal/domain"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, user *domain.User) error
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int) (*domain.User, error)
	UpdateUser(ctx context.Context, id int, user *domain.User) error
	DeleteUser(ctx context.Context, id int) error
	EnsureDefaultAdmin(ctx context.Context) error
}

type CatalogServiceInterface interface {
	ListDishes(ctx context.Context) ([]domain.Dish, error)
	GetDish(ctx context.Context, id int) (*domain.Dish, error)
	CreateDish(ctx context.Context, dish *domain.Dish) error
	UpdateDish(ctx context.Context, id int, dish *domain.Dish) error
	DeleteDish(ctx context.Context, id int) error
}

type OrderServiceInterface interface {
	Checkout(ctx context.Context, order *domain.Order) error
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	Rate(ctx context.Context, id, rating int, feedback string) (*domain.Order, error)
	Receipt(ctx context.Context, id int) ([]byte, error)
}

type UserRepository interface {
	ListUsers() ([]domain.User, error)
	GetUser(id int) (*domain.User, error)
	GetUserByEmail(email string) (*domain.User, error)
	InsertUser(user *domain.User) error
	UpdateUser(id int, user *domain.User) error
	DeleteUser(id int) error
	HasAdmin() (bool, error)
}

type DishRepository interface {
	ListDishes() ([]domain.Dish, error)
	GetDish(id int) (*domain.Dish, error)
	InsertDish(dish *domain.Dish) error
	UpdateDish(id int, dish *domain.Dish) error
	DeleteDish(id int) error
}

type OrderRepository interface {
	ListOrders() ([]domain.Order, error)
	GetOrder(id int) (*domain.Order, error)
	InsertOrder(order *domain.Order) error
	SetOrderRating(id, rating int, feedback string) error
	GetOrderQRCode(id int) ([]byte, error)
	StoreOrderQRCode(id int, png []byte) error
}

type MenuCache interface {
	GetMenu(ctx context.Context) ([]domain.Dish, bool)
	SetMenu(ctx context.Context, dishes []domain.Dish) error
	InvalidateMenu(ctx context.Context) error
	MarkRated(ctx context.Context, orderID int) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

var (
	_ AccountServiceInterface = (*AccountService)(nil)
	_ CatalogServiceInterface = (*CatalogService)(nil)
	_ OrderServiceInterface   = (*OrderService)(nil)
)
