package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"sabor-oriental/internal/domain"
)

// Client talks to the storefront's document collections over plain JSON
// HTTP. Every view fetches its own data through it on load.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTP: http.DefaultClient}
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, bytes.TrimSpace(msg))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := c.do(ctx, http.MethodGet, "/users", nil, &users)
	return users, err
}

func (c *Client) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	var created domain.User
	if err := c.do(ctx, http.MethodPost, "/users", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int, user *domain.User) (*domain.User, error) {
	var updated domain.User
	if err := c.do(ctx, http.MethodPut, "/users/"+strconv.Itoa(id), user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/users/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) Dishes(ctx context.Context) ([]domain.Dish, error) {
	var dishes []domain.Dish
	err := c.do(ctx, http.MethodGet, "/pratos", nil, &dishes)
	return dishes, err
}

func (c *Client) Dish(ctx context.Context, id int) (*domain.Dish, error) {
	var dish domain.Dish
	if err := c.do(ctx, http.MethodGet, "/pratos/"+strconv.Itoa(id), nil, &dish); err != nil {
		return nil, err
	}
	return &dish, nil
}

func (c *Client) CreateDish(ctx context.Context, dish *domain.Dish) (*domain.Dish, error) {
	var created domain.Dish
	if err := c.do(ctx, http.MethodPost, "/pratos", dish, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateDish(ctx context.Context, id int, dish *domain.Dish) (*domain.Dish, error) {
	var updated domain.Dish
	if err := c.do(ctx, http.MethodPut, "/pratos/"+strconv.Itoa(id), dish, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteDish(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/pratos/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) Orders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := c.do(ctx, http.MethodGet, "/pedidos", nil, &orders)
	return orders, err
}

func (c *Client) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	var created domain.Order
	if err := c.do(ctx, http.MethodPost, "/pedidos", order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// OrderPatch is the rating payload PATCHed onto a pedido.
type OrderPatch struct {
	OrderRating   int    `json:"orderRating"`
	OrderFeedback string `json:"orderFeedback"`
	Status        string `json:"status"`
}

func (c *Client) PatchOrder(ctx context.Context, id int, patch OrderPatch) (*domain.Order, error) {
	var updated domain.Order
	if err := c.do(ctx, http.MethodPatch, "/pedidos/"+strconv.Itoa(id), patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
