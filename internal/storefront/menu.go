package storefront

import (
	"context"
	"fmt"

	"sabor-oriental/internal/domain"
)

// DefaultCategory labels dishes the backend served without a category.
const DefaultCategory = "Geral"

type MenuSection struct {
	Category string
	Dishes   []domain.Dish
}

// LoadMenu fetches the dish collection once and partitions it by category
// for section rendering, preserving the backend's ordering within and
// across sections. Prices arriving as strings were already coerced during
// decoding; absent categories fall back to DefaultCategory.
func LoadMenu(ctx context.Context, client *Client) ([]MenuSection, error) {
	dishes, err := client.Dishes(ctx)
	if err != nil {
		return nil, fmt.Errorf("não foi possível carregar o cardápio: %w", err)
	}
	return GroupByCategory(dishes), nil
}

func GroupByCategory(dishes []domain.Dish) []MenuSection {
	index := map[string]int{}
	sections := []MenuSection{}
	for _, dish := range dishes {
		if dish.Category == "" {
			dish.Category = DefaultCategory
		}
		i, ok := index[dish.Category]
		if !ok {
			i = len(sections)
			index[dish.Category] = i
			sections = append(sections, MenuSection{Category: dish.Category})
		}
		sections[i].Dishes = append(sections[i].Dishes, dish)
	}
	return sections
}
