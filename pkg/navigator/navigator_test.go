package navigator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	r := NewRouter(RouteLogin)
	assert.Equal(t, RouteLogin, r.Current())

	var seen []Route
	r.OnChange(func(route Route) { seen = append(seen, route) })

	r.Replace(RouteRegister)
	r.Replace(RouteLogin)
	r.Replace(RouteHome)

	assert.Equal(t, RouteHome, r.Current())
	assert.Equal(t, []Route{RouteRegister, RouteLogin, RouteHome}, seen)
}

func TestNavigatorFunc(t *testing.T) {
	var got Route
	var nav Navigator = NavigatorFunc(func(route Route) { got = route })
	nav.Replace(RouteHome)
	assert.Equal(t, RouteHome, got)
}
