package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"sabor-oriental/internal/domain"
)

func TestLoadMenu_CoercesPricesAndDefaultsCategory(t *testing.T) {
	// preco arrives as a string for one dish and category is absent for
	// another, both of which the backend has been known to serve.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"nome":"Guioza","preco":"24.90","category":"Entradas"},
			{"id":2,"nome":"Yakissoba de Frango","preco":38.5,"category":"Yakissoba"},
			{"id":3,"nome":"Chá de Jasmim","preco":"abc"}
		]`))
	}))
	t.Cleanup(server.Close)

	sections, err := LoadMenu(context.Background(), NewClient(server.URL))
	assert.NoError(t, err)
	assert.Len(t, sections, 3)

	assert.Equal(t, "Entradas", sections[0].Category)
	assert.Equal(t, domain.Price(24.90), sections[0].Dishes[0].Preco)

	assert.Equal(t, "Yakissoba", sections[1].Category)
	assert.Equal(t, domain.Price(38.5), sections[1].Dishes[0].Preco)

	assert.Equal(t, DefaultCategory, sections[2].Category)
	assert.Equal(t, domain.Price(0), sections[2].Dishes[0].Preco)
}

func TestLoadMenu_BackendFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	sections, err := LoadMenu(context.Background(), NewClient(server.URL))
	assert.Error(t, err)
	assert.Nil(t, sections)
}

func TestGroupByCategory_PreservesOrder(t *testing.T) {
	dishes := []domain.Dish{
		{ID: 1, Nome: "Guioza", Category: "Entradas"},
		{ID: 2, Nome: "Yakissoba de Frango", Category: "Yakissoba"},
		{ID: 3, Nome: "Harumaki", Category: "Entradas"},
	}

	sections := GroupByCategory(dishes)
	assert.Len(t, sections, 2)
	assert.Equal(t, "Entradas", sections[0].Category)
	assert.Len(t, sections[0].Dishes, 2)
	assert.Equal(t, "Harumaki", sections[0].Dishes[1].Nome)
	assert.Equal(t, "Yakissoba", sections[1].Category)
}
