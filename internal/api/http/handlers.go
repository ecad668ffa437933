package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"sabor-oriental/internal/domain"
	"sabor-oriental/internal/service"
)

type Handler struct {
	Accounts service.AccountServiceInterface
	Catalog  service.CatalogServiceInterface
	Orders   service.OrderServiceInterface
}

func NewHandler(accounts service.AccountServiceInterface, catalog service.CatalogServiceInterface, orders service.OrderServiceInterface) *Handler {
	return &Handler{Accounts: accounts, Catalog: catalog, Orders: orders}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/login", h.login).Methods("POST")

	r.HandleFunc("/users", h.listUsers).Methods("GET")
	r.HandleFunc("/users", h.createUser).Methods("POST")
	r.HandleFunc("/users/{id}", h.getUser).Methods("GET")
	r.HandleFunc("/users/{id}", h.updateUser).Methods("PUT")
	r.HandleFunc("/users/{id}", h.deleteUser).Methods("DELETE")

	r.HandleFunc("/pratos", h.listDishes).Methods("GET")
	r.HandleFunc("/pratos", h.createDish).Methods("POST")
	r.HandleFunc("/pratos/{id}", h.getDish).Methods("GET")
	r.HandleFunc("/pratos/{id}", h.updateDish).Methods("PUT")
	r.HandleFunc("/pratos/{id}", h.deleteDish).Methods("DELETE")

	r.HandleFunc("/pedidos", h.listOrders).Methods("GET")
	r.HandleFunc("/pedidos", h.createOrder).Methods("POST")
	r.HandleFunc("/pedidos/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/pedidos/{id}", h.rateOrder).Methods("PATCH")
	r.HandleFunc("/pedidos/{id}/qrcode", h.orderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "sabor-oriental",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.Accounts.Authenticate(r.Context(), creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Accounts.ListUsers(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Accounts.Register(r.Context(), &user); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrEmailTaken):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	user, err := h.Accounts.GetUser(r.Context(), id)
	if err != nil {
		statusFromErr(w, err, service.ErrUserNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Accounts.UpdateUser(r.Context(), id, &user); err != nil {
		statusFromErr(w, err, service.ErrUserNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Accounts.DeleteUser(r.Context(), id); err != nil {
		statusFromErr(w, err, service.ErrUserNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Catalog.ListDishes(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Catalog.CreateDish(r.Context(), &dish); err != nil {
		if errors.Is(err, service.ErrInvalidDish) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, dish)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	dish, err := h.Catalog.GetDish(r.Context(), id)
	if err != nil {
		statusFromErr(w, err, service.ErrDishNotFound)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Catalog.UpdateDish(r.Context(), id, &dish); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDish):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrDishNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Catalog.DeleteDish(r.Context(), id); err != nil {
		statusFromErr(w, err, service.ErrDishNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListOrders(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Orders.Checkout(r.Context(), &order); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyOrder), errors.Is(err, service.ErrOrderWithoutUser):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	order, err := h.Orders.GetOrder(r.Context(), id)
	if err != nil {
		statusFromErr(w, err, service.ErrOrderNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) rateOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var patch struct {
		OrderRating   *int   `json:"orderRating"`
		OrderFeedback string `json:"orderFeedback"`
	}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if patch.OrderRating == nil {
		http.Error(w, "orderRating is required", http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Rate(r.Context(), id, *patch.OrderRating, patch.OrderFeedback)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRatingOutOfRange), errors.Is(err, service.ErrNotRatable):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrOrderNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	png, err := h.Orders.Receipt(r.Context(), id)
	if err != nil {
		statusFromErr(w, err, service.ErrOrderNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func statusFromErr(w http.ResponseWriter, err, notFound error) {
	if errors.Is(err, notFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
