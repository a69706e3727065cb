// Package navigator names the screens of the app and moves between them.
//
// Navigation is replace-only: the previous route is discarded, there is no
// back stack.
package navigator

import (
	"log/slog"
	"sync"
)

// Route identifies a screen.
type Route string

const (
	// RouteLogin is the login entry point.
	RouteLogin Route = "/"
	// RouteRegister is the account creation screen.
	RouteRegister Route = "/register"
	// RouteHome is the authenticated area.
	RouteHome Route = "/inicio"
)

// Navigator transitions the displayed screen.
type Navigator interface {
	Replace(route Route)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route Route)

func (f NavigatorFunc) Replace(route Route) { f(route) }

// Router is an in-memory Navigator that keeps only the current route and
// tells listeners about every replacement.
type Router struct {
	mu        sync.RWMutex
	current   Route
	listeners []func(Route)
}

// NewRouter returns a router positioned at initial.
func NewRouter(initial Route) *Router {
	return &Router{current: initial}
}

// Current returns the displayed route.
func (r *Router) Current() Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// OnChange registers fn to run after each Replace. Listeners run on the
// caller's goroutine, outside the router lock.
func (r *Router) OnChange(fn func(Route)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

// Replace implements Navigator.
func (r *Router) Replace(route Route) {
	r.mu.Lock()
	from := r.current
	r.current = route
	listeners := append([]func(Route){}, r.listeners...)
	r.mu.Unlock()

	slog.Debug("Route replaced", "from", from, "to", route)
	for _, fn := range listeners {
		fn(route)
	}
}
