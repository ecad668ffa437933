package storefront

// Navigable routes.
const (
	RouteHome     = "/"
	RouteLogin    = "/login"
	RouteRegister = "/register"
	RouteMenu     = "/cardapio"
	RouteCart     = "/carrinho"
	RouteProfile  = "/profile"
	RouteHistory  = "/historico"
	RouteNewDish  = "/criar-prato"
	RouteEditDish = "/editar-prato"
	RouteAdmin    = "/admin"
	RouteReports  = "/relatorios"
)

// Redirect tells the navigation layer to send the user elsewhere instead
// of constructing the requested view.
type Redirect struct {
	To string
}

// Decision is the result of an authorization check performed before a view
// is constructed. Pending means the session's initial rehydration has not
// finished and a loading placeholder should be shown.
type Decision struct {
	Allowed  bool
	Pending  bool
	Redirect *Redirect
}

// RequireUser gates a view on an authenticated session, redirecting to the
// login route otherwise.
func RequireUser(session *Session) Decision {
	if !session.Ready() {
		return Decision{Pending: true}
	}
	if !session.IsAuthenticated() {
		return Decision{Redirect: &Redirect{To: RouteLogin}}
	}
	return Decision{Allowed: true}
}

// RequireAdmin additionally demands the administrator role, redirecting
// non-admins to home.
func RequireAdmin(session *Session) Decision {
	if !session.Ready() {
		return Decision{Pending: true}
	}
	if !session.IsAuthenticated() {
		return Decision{Redirect: &Redirect{To: RouteLogin}}
	}
	if !session.IsAdmin() {
		return Decision{Redirect: &Redirect{To: RouteHome}}
	}
	return Decision{Allowed: true}
}

// guards maps each protected route to its check; unlisted routes are
// public.
var guards = map[string]func(*Session) Decision{
	RouteCart:     RequireUser,
	RouteProfile:  RequireUser,
	RouteHistory:  RequireUser,
	RouteNewDish:  RequireAdmin,
	RouteEditDish: RequireAdmin,
	RouteAdmin:    RequireAdmin,
	RouteReports:  RequireAdmin,
}

// Resolve runs the route's guard, if any, before the view is constructed.
func Resolve(route string, session *Session) Decision {
	if guard, ok := guards[route]; ok {
		return guard(session)
	}
	return Decision{Allowed: true}
}
