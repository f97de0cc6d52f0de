package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/agussaepos/saepos-cms/internal/http/handlers"
	"github.com/agussaepos/saepos-cms/internal/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
//
// Сессионный гейт навешивается только на /cms/* — /auth/* доступен
// всегда, иначе с протухшей сессии было бы не войти.
func NewRouter(h *handlers.Handlers, state middleware.SessionState, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, state)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, state)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, state middleware.SessionState) {
	// auth — мимо гейта.
	r.Post("/auth/login", h.Login)
	r.Post("/auth/logout", h.Logout)
	r.Get("/auth/session", h.Session)

	// cms — только при живой сессии.
	r.Route("/cms", func(r chi.Router) {
		r.Use(middleware.SessionGate(state))

		r.Get("/dashboard", h.Dashboard)

		r.Get("/partners", h.ListPartners)
		r.Post("/partners", h.CreatePartner)
		r.Get("/partners/{id}", h.GetPartner)
		r.Put("/partners/{id}", h.UpdatePartner)
		r.Delete("/partners/{id}", h.DeletePartner)
		r.Get("/partners/{id}/stores", h.ListPartnerStores)

		r.Get("/admins", h.ListAdmins)
		r.Get("/employees", h.ListEmployees)

		r.Get("/stores", h.ListStores)
		r.Get("/products", h.ListProducts)
		r.Get("/categories", h.ListCategories)
		r.Get("/transactions", h.ListTransactions)
	})
}
