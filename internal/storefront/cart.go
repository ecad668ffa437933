package storefront

import (
	"encoding/json"
	"log"
	"sync"

	"sabor-oriental/internal/domain"
)

const cartStoreKey = "cartItems"

// Cart is the ordered collection of pending line items. At most one line
// exists per dish id; every mutation re-persists the whole collection.
type Cart struct {
	mu    sync.Mutex
	store Store
	items []domain.CartItem
	subs  []func()
}

// NewCart creates the store and rehydrates the persisted collection once.
func NewCart(store Store) *Cart {
	c := &Cart{store: store}

	data, ok, err := store.Load(cartStoreKey)
	if err == nil && ok {
		var items []domain.CartItem
		if json.Unmarshal(data, &items) == nil {
			c.items = items
		} else {
			log.Printf("[cart] discarding malformed persisted cart")
			store.Delete(cartStoreKey)
		}
	}
	return c
}

// AddItem normalizes the dish's field names into a cart line and either
// increments the existing line's quantity or appends a new one.
func (c *Cart) AddItem(dish domain.Dish) {
	c.mu.Lock()
	for i := range c.items {
		if c.items[i].ID == dish.ID {
			c.items[i].Quantity++
			c.persistLocked()
			c.mu.Unlock()
			c.notify()
			return
		}
	}

	c.items = append(c.items, domain.CartItem{
		ID:          dish.ID,
		Name:        dish.Nome,
		Price:       float64(dish.Preco),
		ImageURL:    dish.Imagem,
		Description: dish.Descricao,
		Quantity:    1,
	})
	c.persistLocked()
	c.mu.Unlock()
	c.notify()
}

func (c *Cart) RemoveItem(dishID int) {
	c.mu.Lock()
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != dishID {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.persistLocked()
	c.mu.Unlock()
	c.notify()
}

// SetQuantity replaces the line's quantity; zero or negative removes it.
func (c *Cart) SetQuantity(dishID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(dishID)
		return
	}

	c.mu.Lock()
	for i := range c.items {
		if c.items[i].ID == dishID {
			c.items[i].Quantity = quantity
			break
		}
	}
	c.persistLocked()
	c.mu.Unlock()
	c.notify()
}

func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	c.persistLocked()
	c.mu.Unlock()
	c.notify()
}

func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.CartItem(nil), c.items...)
}

func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) Subscribe(fn func()) {
	c.mu.Lock()
	c.subs = append(c.subs, fn)
	c.mu.Unlock()
}

func (c *Cart) persistLocked() {
	items := c.items
	if items == nil {
		items = []domain.CartItem{}
	}
	data, _ := json.Marshal(items)
	if err := c.store.Save(cartStoreKey, data); err != nil {
		log.Printf("[cart] failed to persist cart: %v", err)
	}
}

func (c *Cart) notify() {
	c.mu.Lock()
	subs := append([]func(){}, c.subs...)
	c.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
