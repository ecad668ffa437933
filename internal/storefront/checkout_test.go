package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"sabor-oriental/internal/domain"
)

func signedInSession(t *testing.T, user domain.User) *Session {
	store := NewMemStore()
	raw, _ := json.Marshal(user)
	store.Save("user", raw)

	session := NewSession(nil, store)
	session.Rehydrate()
	return session
}

func TestCheckout_Success(t *testing.T) {
	var received domain.Order
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/pedidos", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&received)
		received.ID = 42
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(received)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL)
	session := signedInSession(t, domain.User{ID: 7, Name: "Ana", Email: "ana@example.com", ProfilePicture: "/img/ana.png", Role: "user"})

	cart := NewCart(NewMemStore())
	cart.AddItem(guioza)
	cart.AddItem(guioza)

	order, redirect, err := Checkout(context.Background(), client, session, cart)
	assert.NoError(t, err)
	assert.NotNil(t, redirect)
	assert.Equal(t, RouteReports, redirect.To)

	assert.Equal(t, 42, order.ID)
	assert.Equal(t, 7, received.UserID)
	assert.Equal(t, "Ana", received.UserName)
	assert.Equal(t, domain.StatusConfirmed, received.Status)
	assert.InDelta(t, 49.80, received.TotalValue, 1e-9)
	assert.Len(t, received.Items, 1)
	assert.Equal(t, "Guioza", received.Items[0].Name)
	assert.Equal(t, 2, received.Items[0].Quantity)

	assert.Empty(t, cart.Items())
}

func TestCheckout_RequiresSignedInUser(t *testing.T) {
	session := NewSession(nil, NewMemStore())
	session.Rehydrate()

	cart := NewCart(NewMemStore())
	cart.AddItem(guioza)

	order, redirect, err := Checkout(context.Background(), NewClient("http://127.0.0.1:1"), session, cart)
	assert.NoError(t, err)
	assert.Nil(t, order)
	assert.NotNil(t, redirect)
	assert.Equal(t, RouteLogin, redirect.To)

	// The cart survives the redirect.
	assert.Len(t, cart.Items(), 1)
}

func TestCheckout_EmptyCart(t *testing.T) {
	session := signedInSession(t, domain.User{ID: 7, Name: "Ana", Email: "ana@example.com"})
	cart := NewCart(NewMemStore())

	_, _, err := Checkout(context.Background(), NewClient("http://127.0.0.1:1"), session, cart)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckout_FailurePreservesCart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "indisponível", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	session := signedInSession(t, domain.User{ID: 7, Name: "Ana", Email: "ana@example.com"})
	cart := NewCart(NewMemStore())
	cart.AddItem(guioza)
	cart.AddItem(yakissoba)

	order, redirect, err := Checkout(context.Background(), NewClient(server.URL), session, cart)
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Nil(t, redirect)
	assert.Len(t, cart.Items(), 2)
}
