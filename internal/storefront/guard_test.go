package storefront

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"sabor-oriental/internal/domain"
)

func sessionWith(t *testing.T, user *domain.User) *Session {
	store := NewMemStore()
	if user != nil {
		raw, _ := json.Marshal(user)
		store.Save("user", raw)
	}
	session := NewSession(nil, store)
	session.Rehydrate()
	return session
}

func TestResolve_PendingBeforeRehydration(t *testing.T) {
	session := NewSession(nil, NewMemStore())

	decision := Resolve(RouteHistory, session)
	assert.True(t, decision.Pending)
	assert.False(t, decision.Allowed)
	assert.Nil(t, decision.Redirect)

	decision = Resolve(RouteAdmin, session)
	assert.True(t, decision.Pending)
}

func TestResolve_PublicRoutes(t *testing.T) {
	// Public routes never consult the session, not even before rehydration.
	session := NewSession(nil, NewMemStore())

	for _, route := range []string{RouteHome, RouteLogin, RouteRegister, RouteMenu} {
		decision := Resolve(route, session)
		assert.True(t, decision.Allowed, route)
	}
}

func TestRequireUser(t *testing.T) {
	anonymous := sessionWith(t, nil)
	decision := RequireUser(anonymous)
	assert.False(t, decision.Allowed)
	assert.NotNil(t, decision.Redirect)
	assert.Equal(t, RouteLogin, decision.Redirect.To)

	signedIn := sessionWith(t, &domain.User{ID: 7, Email: "ana@example.com", Role: domain.RoleUser})
	decision = RequireUser(signedIn)
	assert.True(t, decision.Allowed)
	assert.Nil(t, decision.Redirect)
}

func TestRequireAdmin(t *testing.T) {
	anonymous := sessionWith(t, nil)
	decision := RequireAdmin(anonymous)
	assert.Equal(t, RouteLogin, decision.Redirect.To)

	regular := sessionWith(t, &domain.User{ID: 7, Email: "ana@example.com", Role: domain.RoleUser})
	decision = RequireAdmin(regular)
	assert.False(t, decision.Allowed)
	assert.Equal(t, RouteHome, decision.Redirect.To)

	admin := sessionWith(t, &domain.User{ID: 1, Email: "admin@sabororiental.com", Role: domain.RoleAdmin})
	decision = RequireAdmin(admin)
	assert.True(t, decision.Allowed)
}

func TestResolve_ProtectedRouteMatrix(t *testing.T) {
	admin := sessionWith(t, &domain.User{ID: 1, Email: "admin@sabororiental.com", Role: domain.RoleAdmin})
	regular := sessionWith(t, &domain.User{ID: 7, Email: "ana@example.com", Role: domain.RoleUser})

	adminOnly := []string{RouteNewDish, RouteEditDish, RouteAdmin, RouteReports}
	for _, route := range adminOnly {
		assert.True(t, Resolve(route, admin).Allowed, route)
		assert.Equal(t, RouteHome, Resolve(route, regular).Redirect.To, route)
	}

	userRoutes := []string{RouteCart, RouteProfile, RouteHistory}
	for _, route := range userRoutes {
		assert.True(t, Resolve(route, regular).Allowed, route)
		assert.True(t, Resolve(route, admin).Allowed, route)
	}
}
