package http

import (
	"net/http"

	"driver-tips/internal/queries"
	"driver-tips/internal/shared/loggers"
	"driver-tips/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(driverService queries.DriverService, tipQueryService queries.TipQueryService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	createDriverHandler := NewCreateDriverHandler(driverService)
	getDriverHandler := NewGetDriverHandler(driverService)
	getDriverTipsHandler := NewGetDriverTipsHandler(tipQueryService)

	// Routes
	router.Post("/drivers", errorHandlingAdapter(createDriverHandler))
	router.Get("/drivers/{driverID}", errorHandlingAdapter(getDriverHandler))
	router.Get("/drivers/{driverID}/tips", errorHandlingAdapter(getDriverTipsHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return router
}
