// Package router binds method, path, validation rules, and the auth gate to
// each handler in one static table.
package router

import (
	"net/http"

	"github.com/vedran77/devtree/internal/transport/http/handlers"
	"github.com/vedran77/devtree/internal/transport/http/middleware"
	"github.com/vedran77/devtree/pkg/validator"
)

var registerRules = []validator.Rule{
	{Field: "handle", Check: validator.NotEmpty(), Message: "El handle es requerido"},
	{Field: "name", Check: validator.NotEmpty(), Message: "El nombre es requerido"},
	{Field: "email", Check: validator.IsEmail(), Message: "Email no valido"},
	{Field: "password", Check: validator.MinLength(6), Message: "La contraseña debe tener al menos 6 caracteres"},
}

var loginRules = []validator.Rule{
	{Field: "email", Check: validator.IsEmail(), Message: "Email no valido"},
	{Field: "password", Check: validator.NotEmpty(), Message: "La contraseña es requerida"},
}

var profileRules = []validator.Rule{
	{Field: "handle", Check: validator.NotEmpty(), Message: "El handle no puede ir vacio"},
	{Field: "description", Check: validator.NotEmpty(), Message: "La descripcion no puede ir vacia"},
}

var searchRules = []validator.Rule{
	{Field: "handle", Check: validator.NotEmpty(), Message: "El handle no puede ir vacio"},
}

type route struct {
	method  string
	path    string
	rules   []validator.Rule
	auth    bool
	handler http.HandlerFunc
}

// New assembles the route table. Routes without the auth flag are public.
func New(auth *handlers.AuthHandler, users *handlers.UserHandler, authGate func(http.Handler) http.Handler) *http.ServeMux {
	routes := []route{
		{method: "POST", path: "/auth/register", rules: registerRules, handler: auth.Register},
		{method: "POST", path: "/auth/login", rules: loginRules, handler: auth.Login},
		{method: "GET", path: "/user", auth: true, handler: users.Me},
		{method: "PATCH", path: "/user", rules: profileRules, auth: true, handler: users.UpdateProfile},
		{method: "POST", path: "/user/image", auth: true, handler: users.UploadImage},
		{method: "POST", path: "/search", rules: searchRules, handler: users.Search},
		{method: "GET", path: "/{handle}", handler: users.ByHandle},
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	for _, rt := range routes {
		var h http.Handler = rt.handler
		if rt.auth {
			h = authGate(h)
		}
		// validation runs first, so bad payloads never reach the auth gate
		if len(rt.rules) > 0 {
			h = middleware.Validate(rt.rules)(h)
		}
		mux.Handle(rt.method+" "+rt.path, h)
	}

	return mux
}
