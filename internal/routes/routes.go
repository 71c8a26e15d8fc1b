package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/config"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/middleware"
)

// Handlers groups every HTTP handler the router mounts. Telegram is nil
// when the bot is not configured.
type Handlers struct {
	Health   *handlers.HealthHandler
	Legal    *handlers.LegalHandler
	Matrix   *handlers.MatrixHandler
	Arcana   *handlers.ArcanaHandler
	Access   *handlers.AccessHandler
	Auth     *handlers.AuthHandler
	History  *handlers.HistoryHandler
	Payment  *handlers.PaymentHandler
	Admin    *handlers.AdminHandler
	Telegram *handlers.TelegramHandler
	Content  *handlers.ContentHandler
}

// Setup mounts the API. A nil gatherer leaves /metrics unmounted.
func Setup(app *fiber.App, cfg *config.Config, h Handlers, gatherer prometheus.Gatherer) {
	if gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Login-specific rate limit: 10 req/min per IP (stricter)
	loginLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})

	optional := middleware.OptionalJWT(cfg)
	protected := middleware.JWTProtected(cfg)
	adminOnly := middleware.AdminRequired(cfg)

	api.Get("/health", h.Health.Check)

	api.Get("/legal/privacy", h.Legal.PrivacyPolicy)
	api.Get("/legal/terms", h.Legal.TermsOfService)

	api.Get("/articles", h.Content.List)
	api.Get("/articles/:id", h.Content.Get)

	// Knowledge base: full descriptions only for entitled callers
	api.Get("/arcana", optional, h.Arcana.List)
	api.Get("/arcana/:number", optional, h.Arcana.Get)

	api.Post("/matrix/calculate", optional, h.Matrix.Calculate)
	api.Post("/matrix/share", protected, h.Matrix.Share)
	api.Post("/matrix/export", protected, h.Matrix.Export)

	api.Get("/access/check", h.Access.Check)
	api.Post("/access/check", h.Access.Devices)
	api.Delete("/access/check", optional, h.Access.Logout)
	api.Post("/access/login", loginLimiter, h.Auth.SubscriberLogin)

	api.Get("/history", protected, h.History.List)
	api.Delete("/history", protected, h.History.Clear)

	api.Get("/plans", h.Payment.Plans)
	api.Post("/payments", h.Payment.Submit)

	// Admin panel: login is public, everything else needs an admin JWT
	// or X-Admin-Token
	api.Post("/admin/login", loginLimiter, h.Auth.AdminLogin)
	api.Get("/admin/requests", optional, adminOnly, h.Admin.ListRequests)
	api.Post("/admin/requests/:id/approve", optional, adminOnly, h.Admin.Approve)
	api.Post("/admin/requests/:id/reject", optional, adminOnly, h.Admin.Reject)
	api.Post("/admin/grant", optional, adminOnly, h.Admin.Grant)
	api.Delete("/admin/access/:email", optional, adminOnly, h.Admin.Revoke)

	// Webhooks: authenticated by the secret path segment (no JWT)
	if h.Telegram != nil {
		api.Post("/webhooks/telegram/:secret", h.Telegram.HandleUpdate)
	}
}
