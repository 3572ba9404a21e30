package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jossainson/ticketing-backend/internal/service"
	"github.com/jossainson/ticketing-backend/internal/transport/http/handlers"
	"github.com/jossainson/ticketing-backend/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),            // счётчик и гистограмма по chi-шаблону маршрута
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, svc)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, svc)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, svc *service.Service) {
	// auth
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/refresh", h.Refresh)
	r.Post("/auth/logout", h.Logout)

	// users: сценарий восстановления пароля доступен без аутентификации.
	r.Post("/users/forget-password", h.ForgetPassword)
	r.Get("/users/validate-reset-token", h.ValidateResetToken)

	// users: всё остальное — только с валидным access-токеном из cookie.
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.AuthCookie(svc))
		pr.Get("/users/me", h.Me)
		pr.Put("/users", h.UpdateProfile)
		pr.Put("/users/password", h.ChangePassword)

		pr.Post("/events", h.CreateEvent)
		pr.Post("/events/bulk", h.CreateEvents)
		pr.Post("/offer-types", h.CreateOfferType)
	})

	// каталог: чтение публичное.
	r.Get("/events", h.ListEvents)
	r.Get("/events/active", h.ListActiveEvents)
	r.Get("/events/available", h.ListAvailableEvents)
	r.Get("/events/{id}", h.GetEvent)
	r.Get("/offer-types", h.ListOfferTypes)
}
