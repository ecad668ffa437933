package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sabor-oriental/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type UserRepository struct {
	mock.Mock
}

func NewUserRepository(t testingT) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserRepository) ListUsers() ([]domain.User, error) {
	args := m.Called()
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *UserRepository) GetUser(id int) (*domain.User, error) {
	args := m.Called(id)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *UserRepository) GetUserByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *UserRepository) InsertUser(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *UserRepository) UpdateUser(id int, user *domain.User) error {
	return m.Called(id, user).Error(0)
}

func (m *UserRepository) DeleteUser(id int) error {
	return m.Called(id).Error(0)
}

func (m *UserRepository) HasAdmin() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

type DishRepository struct {
	mock.Mock
}

func NewDishRepository(t testingT) *DishRepository {
	m := &DishRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *DishRepository) ListDishes() ([]domain.Dish, error) {
	args := m.Called()
	var dishes []domain.Dish
	if args.Get(0) != nil {
		dishes = args.Get(0).([]domain.Dish)
	}
	return dishes, args.Error(1)
}

func (m *DishRepository) GetDish(id int) (*domain.Dish, error) {
	args := m.Called(id)
	var dish *domain.Dish
	if args.Get(0) != nil {
		dish = args.Get(0).(*domain.Dish)
	}
	return dish, args.Error(1)
}

func (m *DishRepository) InsertDish(dish *domain.Dish) error {
	return m.Called(dish).Error(0)
}

func (m *DishRepository) UpdateDish(id int, dish *domain.Dish) error {
	return m.Called(id, dish).Error(0)
}

func (m *DishRepository) DeleteDish(id int) error {
	return m.Called(id).Error(0)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) ListOrders() ([]domain.Order, error) {
	args := m.Called()
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderRepository) GetOrder(id int) (*domain.Order, error) {
	args := m.Called(id)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderRepository) InsertOrder(order *domain.Order) error {
	return m.Called(order).Error(0)
}

func (m *OrderRepository) SetOrderRating(id, rating int, feedback string) error {
	return m.Called(id, rating, feedback).Error(0)
}

func (m *OrderRepository) GetOrderQRCode(id int) ([]byte, error) {
	args := m.Called(id)
	var png []byte
	if args.Get(0) != nil {
		png = args.Get(0).([]byte)
	}
	return png, args.Error(1)
}

func (m *OrderRepository) StoreOrderQRCode(id int, png []byte) error {
	return m.Called(id, png).Error(0)
}

type MenuCache struct {
	mock.Mock
}

func NewMenuCache(t testingT) *MenuCache {
	m := &MenuCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuCache) GetMenu(ctx context.Context) ([]domain.Dish, bool) {
	args := m.Called(ctx)
	var dishes []domain.Dish
	if args.Get(0) != nil {
		dishes = args.Get(0).([]domain.Dish)
	}
	return dishes, args.Bool(1)
}

func (m *MenuCache) SetMenu(ctx context.Context, dishes []domain.Dish) error {
	return m.Called(ctx, dishes).Error(0)
}

func (m *MenuCache) InvalidateMenu(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MenuCache) MarkRated(ctx context.Context, orderID int) error {
	return m.Called(ctx, orderID).Error(0)
}

type OrderPublisher struct {
	mock.Mock
}

func NewOrderPublisher(t testingT) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}
