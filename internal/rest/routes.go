package rest

import (
	"net/http"
	"time"

	_ "github.com/daniilsolovey/blog-platform/docs"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/swaggo/swag"
	"golang.org/x/time/rate"
)

const (
	apiV1Prefix = "/api/v1"

	healthPath  = "/health"
	swaggerPath = "/swagger/doc.json"
	rpcPath     = "/v1/rpc/"
)

// Options configures the middleware chain of the router.
type Options struct {
	RequestTimeout time.Duration
	CORSOrigins    []string
	// RateLimit is the allowed requests per second per client, 0 disables limiting.
	RateLimit float64
}

// RegisterRoutes builds the router. rpc is mounted under /v1/rpc/ when not nil.
func (h *Handler) RegisterRoutes(auth *Authenticator, rpc http.Handler, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.loggingMiddleware)

	if len(opts.CORSOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: opts.CORSOrigins,
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		}))
	}

	if opts.RateLimit > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(opts.RateLimit))))
	}

	if opts.RequestTimeout > 0 {
		e.Use(middleware.ContextTimeout(opts.RequestTimeout))
	}

	e.GET(healthPath, h.Health)
	e.GET(swaggerPath, h.SwaggerDoc)

	if rpc != nil {
		e.Any(rpcPath, echo.WrapHandler(rpc))
	}

	h.registerAPIRoutes(e.Group(apiV1Prefix), auth)

	return e
}

func (h *Handler) registerAPIRoutes(api *echo.Group, auth *Authenticator) {
	member := auth.Require(RoleUser, RoleAdmin)
	admin := auth.Require(RoleAdmin)

	api.GET("/posts", h.Posts)
	api.GET("/posts/slug/:slug", h.PostBySlug)
	api.GET("/posts/:id", h.PostByID)
	api.GET("/posts/:id/related", h.RelatedPosts)
	api.GET("/categories", h.Categories)
	api.GET("/categories/:id", h.CategoryByID)
	api.GET("/categories/slug/:slug", h.CategoryBySlug)
	api.GET("/tags", h.Tags)

	api.POST("/posts", h.CreatePost, member)
	api.PUT("/posts/:id", h.UpdatePost, member)
	api.DELETE("/posts/:id", h.DeletePost, member)
	api.GET("/user/posts", h.UserPosts, member)

	api.GET("/admin/posts", h.AdminPosts, admin)
	api.GET("/admin/posts/:id", h.PostByID, admin)
	api.GET("/admin/dashboard/stats", h.DashboardStats, admin)
	api.POST("/categories", h.CreateCategory, admin)
	api.PUT("/categories/:id", h.UpdateCategory, admin)
	api.DELETE("/categories/:id", h.DeleteCategory, admin)
}

// SwaggerDoc handles GET /swagger/doc.json
func (h *Handler) SwaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(doc))
}

func (h *Handler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		req := c.Request()
		h.log.InfoContext(req.Context(), "HTTP request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)

		return nil
	}
}
