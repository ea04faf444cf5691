package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wellywell/orderdesk/internal/auth"
	"github.com/wellywell/orderdesk/internal/compress"
	"github.com/wellywell/orderdesk/internal/config"
	"github.com/wellywell/orderdesk/internal/handlers"
	"github.com/wellywell/orderdesk/internal/metrics"
)

const (
	compressLevel = 5
)

type Middleware interface {
	Handle(h http.Handler) http.Handler
}

type Router struct {
	server *http.Server
	router *chi.Mux
}

func NewRouter(conf *config.ServerConfig, h *handlers.HandlerSet, middlewares ...Middleware) *Router {

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	for _, m := range middlewares {
		r.Use(m.Handle)
	}
	r.Use(compress.RequestUngzipper{}.Handle)
	r.Use(middleware.Compress(compressLevel))

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/api/user/register", h.HandleRegisterUser)
	r.Post("/api/user/login", h.HandleLogin)
	r.Get("/api/statuses", h.HandleGetStatuses)

	authMiddleware := &auth.AuthenticateMiddleware{Secret: conf.Secret}

	r.Group(func(r chi.Router) {

		r.Use(authMiddleware.Handle)
		r.Post("/api/user/orders", h.HandlePostUserOrder)
		r.Get("/api/user/orders", h.HandleGetUserOrders)
		r.Post("/api/user/orders/{id}/cancel", h.HandleCancelUserOrder)

		r.Post("/api/user/payments", h.HandlePostPayment)
		r.Get("/api/user/payments", h.HandleGetPayment)
		r.Delete("/api/user/payments", h.HandleDeletePayment)

		r.Group(func(r chi.Router) {
			r.Use(h.RequireAdmin)
			r.Get("/api/admin/orders", h.HandleAdminGetOrders)
			r.Put("/api/admin/orders/{id}/status", h.HandleAdminUpdateStatus)
		})
	})

	return &Router{
		router: r,
		server: &http.Server{
			Addr:              conf.RunAddress,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (r *Router) Handler() http.Handler {
	return r.router
}

func (r *Router) ListenAndServe() error {
	return r.server.ListenAndServe()
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}
