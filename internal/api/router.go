// Package api assembles the HTTP router.
package api

import (
	"people/internal/api/handlers"
	"people/internal/metrics"

	_ "people/docs" // swagger spec

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter configures the main router: the person resource, the public
// endpoints, Prometheus metrics and the Swagger UI.
func SetupRouter(h *handlers.Handlers, m *metrics.Metrics) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(accessLogMiddleware(m))

	h.RegisterRoutes(r)

	if m != nil {
		r.Handle("/metrics", m.Handler()).Methods("GET")
	}
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	return r
}
