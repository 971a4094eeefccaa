package routes

import (
	"net/http"

	"caltrack/controllers"
	"caltrack/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Controllers struct {
	Auth  *controllers.AuthController
	Users *controllers.UserController
	Meals *controllers.MealController
}

func SetupRouter(log *zap.Logger, jwtSecret string, ctl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.Metrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", ctl.Auth.Register)
		auth.POST("/login", ctl.Auth.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		user.GET("/me", ctl.Users.Me)
	}

	// Protected meal routes
	meals := r.Group("/api/meals")
	meals.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		meals.POST("", ctl.Meals.Create)
		meals.GET("", ctl.Meals.List)
		meals.GET("/:id", ctl.Meals.Get)
		meals.PUT("/:id", ctl.Meals.Update)
		meals.DELETE("/:id", ctl.Meals.Delete)
	}

	return r
}
