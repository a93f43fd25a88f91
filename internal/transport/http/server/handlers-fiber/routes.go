package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"leadflow-crm/config"
	"leadflow-crm/internal/api"
	"leadflow-crm/internal/auth"
	"leadflow-crm/internal/transport/http/middleware"
)

// RegisterRoutes mounts the API surface. Everything under /api shares the
// global rate limit; /api/auth carries the stricter one on top of it.
func RegisterRoutes(app *fiber.App, h *Handler, tokens *auth.TokenManager, rl config.RateLimitConfig) {
	root := app.Group("/api", rateLimiter(rl.MaxRequests, rl))

	root.Get("/health", h.GetHealth)

	authGroup := root.Group("/auth", rateLimiter(rl.MaxAuthRequests, rl))
	authGroup.Post("/register", h.PostRegister)
	authGroup.Post("/login", h.PostLogin)
	authGroup.Get("/me", middleware.Authenticate(tokens), h.GetMe)

	leads := root.Group("/leads", middleware.Authenticate(tokens))
	leads.Get("/", h.GetLeads)
	leads.Post("/", h.PostLead)
	leads.Get("/:id", h.GetLead)
	leads.Patch("/:id", h.PatchLead)
	leads.Delete("/:id", middleware.RequireAdmin(), h.DeleteLead)
	leads.Post("/:id/notes", h.PostNote)
	leads.Delete("/:id/notes/:noteId", h.DeleteNote)

	root.Get("/analytics", middleware.Authenticate(tokens), h.GetAnalytics)
}

func rateLimiter(max int, rl config.RateLimitConfig) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        rl.Window,
		LimiterMiddleware: limiter.SlidingWindow{},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(http.StatusTooManyRequests).JSON(
				errorResponse(api.RATELIMITED, "Too many requests. Retry after the rate-limit window passes."))
		},
	})
}
