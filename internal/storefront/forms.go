package storefront

import (
	"errors"
	"strconv"
	"strings"

	"sabor-oriental/internal/domain"
)

var (
	ErrInvalidPrice     = errors.New("preço inválido")
	ErrMissingFields    = errors.New("preencha todos os campos obrigatórios")
	ErrPasswordMismatch = errors.New("as senhas não conferem")
)

// NormalizePrice turns free-text numeric entry into a float, accepting
// either comma or dot as the decimal separator. Failure blocks form
// submission before any network call.
func NormalizePrice(input string) (float64, error) {
	trimmed := strings.TrimSpace(strings.ReplaceAll(input, ",", "."))
	if trimmed == "" {
		return 0, ErrInvalidPrice
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	return value, nil
}

// DishForm carries the create/edit dish form fields as entered.
type DishForm struct {
	Nome      string
	Descricao string
	Preco     string
	Category  string
	Imagem    string
}

func (f DishForm) Dish() (*domain.Dish, error) {
	if f.Nome == "" || f.Descricao == "" || f.Preco == "" || f.Category == "" {
		return nil, ErrMissingFields
	}
	price, err := NormalizePrice(f.Preco)
	if err != nil {
		return nil, err
	}
	return &domain.Dish{
		Nome:      f.Nome,
		Descricao: f.Descricao,
		Preco:     domain.Price(price),
		Category:  f.Category,
		Imagem:    f.Imagem,
	}, nil
}

// FormFromDish pre-populates the edit form from a fetched record.
func FormFromDish(dish *domain.Dish) DishForm {
	return DishForm{
		Nome:      dish.Nome,
		Descricao: dish.Descricao,
		Preco:     strconv.FormatFloat(float64(dish.Preco), 'f', 2, 64),
		Category:  dish.Category,
		Imagem:    dish.Imagem,
	}
}

type RegistrationForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
	Address         string
	ProfilePicture  string
}

func (f RegistrationForm) User() (*domain.User, error) {
	if f.Name == "" || f.Email == "" || f.Password == "" {
		return nil, ErrMissingFields
	}
	if f.Password != f.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	return &domain.User{
		Name:           f.Name,
		Email:          f.Email,
		Password:       f.Password,
		Phone:          f.Phone,
		Address:        f.Address,
		Role:           domain.RoleUser,
		ProfilePicture: f.ProfilePicture,
	}, nil
}
