package storefront

import (
	"context"
	"sync"

	"sabor-oriental/internal/domain"
)

// Management is the admin dashboard view model: the user and dish lists,
// loaded in parallel on mount, with confirm-then-delete actions that only
// touch local list state after the backend accepted the delete.
type Management struct {
	client *Client
	users  []domain.User
	dishes []domain.Dish
}

func NewManagement(client *Client) *Management {
	return &Management{client: client}
}

func (m *Management) Load(ctx context.Context) error {
	var wg sync.WaitGroup
	var usersErr, dishesErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		m.users, usersErr = m.client.Users(ctx)
	}()
	go func() {
		defer wg.Done()
		m.dishes, dishesErr = m.client.Dishes(ctx)
	}()
	wg.Wait()

	if usersErr != nil {
		return usersErr
	}
	return dishesErr
}

func (m *Management) Users() []domain.User  { return m.users }
func (m *Management) Dishes() []domain.Dish { return m.dishes }

// DeleteDish asks for confirmation, issues the delete, and removes the
// record from the local list only on success. A failed request leaves the
// list unchanged for the caller to report.
func (m *Management) DeleteDish(ctx context.Context, id int, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return nil
	}
	if err := m.client.DeleteDish(ctx, id); err != nil {
		return err
	}

	kept := m.dishes[:0]
	for _, dish := range m.dishes {
		if dish.ID != id {
			kept = append(kept, dish)
		}
	}
	m.dishes = kept
	return nil
}

func (m *Management) DeleteUser(ctx context.Context, id int, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return nil
	}
	if err := m.client.DeleteUser(ctx, id); err != nil {
		return err
	}

	kept := m.users[:0]
	for _, user := range m.users {
		if user.ID != id {
			kept = append(kept, user)
		}
	}
	m.users = kept
	return nil
}
