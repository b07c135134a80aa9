package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodgram/internal/config"
	"foodgram/internal/domain/cart"
	"foodgram/internal/domain/favorite"
	"foodgram/internal/domain/ingredient"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/subscription"
	"foodgram/internal/domain/tag"
	"foodgram/internal/domain/user"
	"foodgram/internal/metrics"
	"foodgram/internal/middleware"
	jwtsvc "foodgram/internal/pkg/jwt"
	"foodgram/internal/pkg/pagination"
	"foodgram/internal/pkg/response"
)

func newRouter(cfg *config.Config, db *gorm.DB, j *jwtsvc.Service) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.ErrorLogger(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		metrics.Middleware(),
	)

	r.GET("/healthz", healthz(db))
	r.GET("/metrics", metrics.Handler())

	paginator := pagination.New(cfg.PageSize, cfg.PageSizeMax)

	userRepo := user.NewRepository(db)
	recipeRepo := recipe.NewRepository(db)

	userHandler := user.NewHandler(user.NewService(userRepo), paginator)
	ingredientHandler := ingredient.NewHandler(ingredient.NewService(ingredient.NewRepository(db)))
	tagHandler := tag.NewHandler(tag.NewService(tag.NewRepository(db)))
	recipeHandler := recipe.NewHandler(recipe.NewService(recipeRepo, userRepo), paginator)
	favoriteHandler := favorite.NewHandler(favorite.NewService(favorite.NewRepository(db), recipeRepo))
	cartHandler := cart.NewHandler(cart.NewService(cart.NewRepository(db), recipeRepo), cfg.ShoppingListFilename)
	subscriptionHandler := subscription.NewHandler(
		subscription.NewService(subscription.NewRepository(db), userRepo, recipeRepo),
		paginator,
	)

	v1 := r.Group("/api/v1")
	{
		// anonymous allowed; a token, when sent, must be valid
		public := v1.Group("", middleware.OptionalJWTAuth(j))
		{
			user.RegisterPublicRoutes(public, userHandler)
			ingredient.RegisterPublicRoutes(public, ingredientHandler)
			tag.RegisterPublicRoutes(public, tagHandler)
			recipe.RegisterPublicRoutes(public, recipeHandler)
		}

		protected := v1.Group("", middleware.JWTAuth(j))
		{
			user.RegisterProtectedRoutes(protected, userHandler)
			recipe.RegisterProtectedRoutes(protected, recipeHandler)
			favorite.RegisterProtectedRoutes(protected, favoriteHandler)
			cart.RegisterProtectedRoutes(protected, cartHandler)
			subscription.RegisterProtectedRoutes(protected, subscriptionHandler)
		}

		admin := v1.Group("", middleware.JWTAuth(j), middleware.AdminOnly())
		{
			user.RegisterAdminRoutes(admin, userHandler)
			ingredient.RegisterAdminRoutes(admin, ingredientHandler)
			tag.RegisterAdminRoutes(admin, tagHandler)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Route not found")
	})

	return r
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			response.CustomError(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database is unreachable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	}
}
