package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sabor-oriental/internal/domain"
)

type AccountServiceInterface struct {
	mock.Mock
}

func NewAccountServiceInterface(t testingT) *AccountServiceInterface {
	m := &AccountServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AccountServiceInterface) Register(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *AccountServiceInterface) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *AccountServiceInterface) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *AccountServiceInterface) GetUser(ctx context.Context, id int) (*domain.User, error) {
	args := m.Called(ctx, id)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *AccountServiceInterface) UpdateUser(ctx context.Context, id int, user *domain.User) error {
	return m.Called(ctx, id, user).Error(0)
}

func (m *AccountServiceInterface) DeleteUser(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *AccountServiceInterface) EnsureDefaultAdmin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type CatalogServiceInterface struct {
	mock.Mock
}

func NewCatalogServiceInterface(t testingT) *CatalogServiceInterface {
	m := &CatalogServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogServiceInterface) ListDishes(ctx context.Context) ([]domain.Dish, error) {
	args := m.Called(ctx)
	var dishes []domain.Dish
	if args.Get(0) != nil {
		dishes = args.Get(0).([]domain.Dish)
	}
	return dishes, args.Error(1)
}

func (m *CatalogServiceInterface) GetDish(ctx context.Context, id int) (*domain.Dish, error) {
	args := m.Called(ctx, id)
	var dish *domain.Dish
	if args.Get(0) != nil {
		dish = args.Get(0).(*domain.Dish)
	}
	return dish, args.Error(1)
}

func (m *CatalogServiceInterface) CreateDish(ctx context.Context, dish *domain.Dish) error {
	return m.Called(ctx, dish).Error(0)
}

func (m *CatalogServiceInterface) UpdateDish(ctx context.Context, id int, dish *domain.Dish) error {
	return m.Called(ctx, id, dish).Error(0)
}

func (m *CatalogServiceInterface) DeleteDish(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderServiceInterface) Checkout(ctx context.Context, order *domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *OrderServiceInterface) ListOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderServiceInterface) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	args := m.Called(ctx, id)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderServiceInterface) Rate(ctx context.Context, id, rating int, feedback string) (*domain.Order, error) {
	args := m.Called(ctx, id, rating, feedback)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderServiceInterface) Receipt(ctx context.Context, id int) ([]byte, error) {
	args := m.Called(ctx, id)
	var png []byte
	if args.Get(0) != nil {
		png = args.Get(0).([]byte)
	}
	return png, args.Error(1)
}
