package service

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"sabor-oriental/internal/domain"
)

var (
	ErrDishNotFound = errors.New("dish not found")
	ErrInvalidDish  = errors.New("dish requires a name and a non-negative price")
)

type CatalogService struct {
	dishes DishRepository
	cache  MenuCache
}

func NewCatalogService(dishes DishRepository, cache MenuCache) *CatalogService {
	return &CatalogService{dishes: dishes, cache: cache}
}

func (s *CatalogService) ListDishes(ctx context.Context) ([]domain.Dish, error) {
	if s.cache != nil {
		if dishes, ok := s.cache.GetMenu(ctx); ok {
			return dishes, nil
		}
	}

	dishes, err := s.dishes.ListDishes()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetMenu(ctx, dishes); err != nil {
			log.Printf("[catalog] failed to cache menu: %v", err)
		}
	}
	return dishes, nil
}

func (s *CatalogService) GetDish(ctx context.Context, id int) (*domain.Dish, error) {
	dish, err := s.dishes.GetDish(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDishNotFound
	}
	return dish, err
}

func (s *CatalogService) CreateDish(ctx context.Context, dish *domain.Dish) error {
	if dish.Nome == "" || dish.Preco < 0 {
		return ErrInvalidDish
	}
	if err := s.dishes.InsertDish(dish); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) UpdateDish(ctx context.Context, id int, dish *domain.Dish) error {
	if dish.Nome == "" || dish.Preco < 0 {
		return ErrInvalidDish
	}
	err := s.dishes.UpdateDish(id, dish)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrDishNotFound
	}
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) DeleteDish(ctx context.Context, id int) error {
	err := s.dishes.DeleteDish(id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrDishNotFound
	}
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateMenu(ctx); err != nil {
		log.Printf("[catalog] failed to invalidate menu cache: %v", err)
	}
}
