package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Order status lifecycle: confirmado -> avaliado, one way, driven only by
// the rating action.
const (
	StatusConfirmed = "confirmado"
	StatusRated     = "avaliado"
)

// Price tolerates the document store serving preco either as a JSON number
// or as a numeric string. Unparseable values decode to zero.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*p = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", "."), 64)
		if err != nil {
			*p = 0
			return nil
		}
		*p = Price(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Price(v)
	return nil
}

type User struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profilePicture"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type Dish struct {
	ID        int    `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
	Preco     Price  `json:"preco"`
	Category  string `json:"category"`
	Imagem    string `json:"imagem"`
}

// CartItem is the cart's normalized snapshot of a dish plus a quantity.
// At most one line item exists per dish id.
type CartItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageURL"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
}

type OrderItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"imageURL"`
}

type Order struct {
	ID            int         `json:"id"`
	UserID        int         `json:"userId"`
	UserName      string      `json:"userName"`
	UserPhoto     string      `json:"userPhoto"`
	TotalValue    float64     `json:"totalValue"`
	Items         []OrderItem `json:"items"`
	Date          time.Time   `json:"date"`
	Status        string      `json:"status"`
	OrderRating   *int        `json:"orderRating"`
	OrderFeedback string      `json:"orderFeedback"`
}

func (o *Order) Rated() bool {
	return o.OrderRating != nil
}

type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   int       `json:"order_id"`
	UserID    int       `json:"user_id"`
	Total     float64   `json:"total,omitempty"`
	Rating    int       `json:"rating,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	EventOrderCreated = "order_created"
	EventOrderRated   = "order_rated"
)
