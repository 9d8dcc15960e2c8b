package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/quartermaster-erp/quartermaster/internal/auth"
	"github.com/quartermaster-erp/quartermaster/internal/dashboard"
	"github.com/quartermaster-erp/quartermaster/internal/observability"
	"github.com/quartermaster-erp/quartermaster/internal/procurement"
	"github.com/quartermaster-erp/quartermaster/internal/products"
	"github.com/quartermaster-erp/quartermaster/internal/shared"
	"github.com/quartermaster-erp/quartermaster/internal/suppliers"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager
	CSRFManager    *shared.CSRFManager

	AuthService *auth.Service

	AuthHandler        *auth.Handler
	SupplierHandler    *suppliers.Handler
	ProductHandler     *products.Handler
	ProcurementHandler *procurement.Handler
	DashboardHandler   *dashboard.Handler

	Metrics *observability.Metrics
}

// NewRouter constructs the chi.Router with Quartermaster defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		CSRFManager:    params.CSRFManager,
		Metrics:        params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", params.AuthHandler.MountRoutes)

	// Everything below requires an authenticated identity; unauthenticated
	// callers are redirected to the sign-in entry point before any handler
	// or store access happens.
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireUser(params.Logger, params.AuthService))

		r.Route("/dashboard", params.DashboardHandler.MountRoutes)
		r.Route("/suppliers", params.SupplierHandler.MountRoutes)
		r.Route("/products", params.ProductHandler.MountRoutes)
		r.Route("/purchase-orders", params.ProcurementHandler.MountRoutes)
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
