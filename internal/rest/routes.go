package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/swaggo/swag"

	"github.com/daniilsolovey/site-admin/internal/metrics"
)

// RegisterRoutes builds the echo instance with all REST routes, the
// JSON-RPC mount and the operational endpoints.
func (h *Handler) RegisterRoutes(rpc http.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(h.loggingMiddleware)
	e.Use(metrics.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/doc.json", func(c echo.Context) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return fail(c, http.StatusInternalServerError, "swagger doc unavailable")
		}
		return c.Blob(http.StatusOK, "application/json", []byte(doc))
	})

	e.Static("/uploads", h.uploadCfg.Dir)

	api := e.Group("/api/v1")

	// Public surface: contact form, newsletter signup, login and the
	// JSON-RPC read API.
	api.POST("/messages", h.SubmitMessage)
	api.POST("/newsletter", h.Subscribe)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	if rpc != nil {
		api.Any("/rpc", echo.WrapHandler(rpc))
	}

	admin := api.Group("", h.RequireAuth)

	admin.GET("/auth/me", h.Me)

	admin.GET("/blogposts", h.BlogPosts)
	admin.GET("/blogposts/stats", h.BlogPostStats)
	admin.GET("/blogposts/:id", h.BlogPostByID)
	admin.POST("/blogposts", h.CreateBlogPost)
	admin.PUT("/blogposts/:id", h.UpdateBlogPost)
	admin.PATCH("/blogposts/:id/publish", h.TogglePublish)
	admin.DELETE("/blogposts/:id", h.DeleteBlogPost)

	admin.GET("/projects", h.Projects)
	admin.GET("/projects/:id", h.ProjectByID)
	admin.POST("/projects", h.CreateProject)
	admin.PUT("/projects/:id", h.UpdateProject)
	admin.DELETE("/projects/:id", h.DeleteProject)

	admin.GET("/services", h.Services)
	admin.GET("/services/:id", h.ServiceByID)
	admin.POST("/services", h.CreateService)
	admin.PUT("/services/:id", h.UpdateService)
	admin.DELETE("/services/:id", h.DeleteService)

	admin.GET("/categories", h.Categories)
	admin.POST("/categories", h.CreateCategory)
	admin.PUT("/categories/:id", h.UpdateCategory)
	admin.DELETE("/categories/:id", h.DeleteCategory)

	admin.GET("/tags", h.Tags)
	admin.POST("/tags", h.CreateTag)
	admin.PUT("/tags/:id", h.UpdateTag)
	admin.DELETE("/tags/:id", h.DeleteTag)

	admin.GET("/newsletter", h.Subscribers)
	admin.GET("/newsletter/stats", h.SubscriberStats)
	admin.GET("/newsletter/export", h.ExportSubscribers)
	admin.POST("/newsletter/subscribers", h.CreateSubscriber)
	admin.PUT("/newsletter/subscribers/:id", h.UpdateSubscriber)
	admin.DELETE("/newsletter/subscribers/:id", h.DeleteSubscriber)
	admin.POST("/newsletter/import", h.ImportSubscribers)
	admin.POST("/newsletter/bulk", h.BulkSubscribers)
	admin.POST("/newsletter/send", h.SendCampaign)

	admin.GET("/messages", h.Messages)
	admin.GET("/messages/stats", h.MessageStats)
	admin.GET("/messages/export", h.ExportMessages)
	admin.GET("/messages/:id", h.MessageByID)
	admin.PATCH("/messages/:id", h.UpdateMessage)
	admin.POST("/messages/:id/reply", h.ReplyToMessage)
	admin.DELETE("/messages/:id", h.DeleteMessage)
	admin.POST("/messages/bulk", h.BulkMessages)

	admin.GET("/analytics/overview", h.AnalyticsOverview, h.RequireAdmin)

	admin.POST("/upload", h.UploadImage)
	admin.DELETE("/upload/:filename", h.DeleteImage)

	return e
}

func (h *Handler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if httpErr, ok := err.(*echo.HTTPError); ok {
			status = httpErr.Code
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)

		return err
	}
}
