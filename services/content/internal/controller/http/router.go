package http

import (
	"net/http"
	"time"

	"platina/pkg/jwt"
	"platina/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type RouterConfig struct {
	AdminEnabled bool
	JWTService   *jwt.Service
	// RateLimiter may be nil, admin requests are then never throttled.
	RateLimiter     *redis.Client
	AdminRateLimit  int
	AdminRateWindow time.Duration
}

type Handlers struct {
	Content *ContentHandler
	Auth    *AuthHandler
	Author  *AuthorHandler
	Upload  *UploadHandler
}

// RegisterRoutes mounts the health check and the /api/v1 surface on r.
func RegisterRoutes(r *gin.Engine, h Handlers, cfg RouterConfig) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/posts", h.Content.ListPosts)
		api.GET("/reviews", h.Content.ListReviews)
		api.GET("/reviews/:slug", h.Content.GetReview)
		api.GET("/news", h.Content.ListNews)
		api.GET("/news/:slug", h.Content.GetNews)
		api.GET("/guides", h.Content.ListGuides)
		api.GET("/guides/:slug", h.Content.GetGuide)
		api.GET("/articles", h.Content.ListArticles)
		api.GET("/articles/:slug", h.Content.GetArticle)
		api.GET("/platinador-tips", h.Content.ListPlatinadorTips)
		api.GET("/platinador-tips/:slug", h.Content.GetPlatinadorTip)
		api.GET("/authors", h.Content.ListAuthors)
		api.GET("/authors/:id", h.Content.GetAuthor)

		api.POST("/auth/login", h.Auth.Login)
		api.POST("/auth/logout", h.Auth.Logout)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg.JWTService))
		{
			protected.GET("/auth/me", h.Auth.Me)
			protected.PUT("/me/profile", h.Auth.UpdateMyProfile)
		}

		admin := api.Group("/admin")
		admin.Use(
			middleware.AdminGate(cfg.AdminEnabled),
			middleware.AuthMiddleware(cfg.JWTService),
			middleware.RequireRole("admin"),
			middleware.RateLimitMiddleware(cfg.RateLimiter, cfg.AdminRateLimit, cfg.AdminRateWindow),
		)
		{
			admin.GET("/reviews", h.Content.ListReviews)
			admin.POST("/reviews", h.Content.CreateReview)
			admin.GET("/reviews/:id", h.Content.AdminGetReview)
			admin.PUT("/reviews/:id", h.Content.UpdateReview)
			admin.DELETE("/reviews/:id", h.Content.DeleteReview)

			admin.GET("/news", h.Content.ListNews)
			admin.POST("/news", h.Content.CreateNews)
			admin.GET("/news/:id", h.Content.AdminGetNews)
			admin.PUT("/news/:id", h.Content.UpdateNews)
			admin.DELETE("/news/:id", h.Content.DeleteNews)

			admin.GET("/guides", h.Content.ListGuides)
			admin.POST("/guides", h.Content.CreateGuide)
			admin.GET("/guides/:id", h.Content.AdminGetGuide)
			admin.PUT("/guides/:id", h.Content.UpdateGuide)
			admin.DELETE("/guides/:id", h.Content.DeleteGuide)

			admin.GET("/articles", h.Content.ListArticles)
			admin.POST("/articles", h.Content.CreateArticle)
			admin.GET("/articles/:id", h.Content.AdminGetArticle)
			admin.PUT("/articles/:id", h.Content.UpdateArticle)
			admin.DELETE("/articles/:id", h.Content.DeleteArticle)

			admin.GET("/platinador-tips", h.Content.ListPlatinadorTips)
			admin.POST("/platinador-tips", h.Content.CreatePlatinadorTip)
			admin.GET("/platinador-tips/:id", h.Content.AdminGetPlatinadorTip)
			admin.PUT("/platinador-tips/:id", h.Content.UpdatePlatinadorTip)
			admin.DELETE("/platinador-tips/:id", h.Content.DeletePlatinadorTip)

			admin.GET("/authors", h.Content.ListAuthors)
			admin.POST("/authors", h.Author.CreateAuthor)
			admin.GET("/authors/:id", h.Content.GetAuthor)
			admin.PUT("/authors/:id", h.Author.UpdateAuthor)
			admin.DELETE("/authors/:id", h.Author.DeleteAuthor)

			admin.POST("/upload", h.Upload.Upload)
			admin.POST("/seed", h.Content.Seed)
		}
	}
}
