package main

import (
	"caltrack/config"
	"caltrack/controllers"
	"caltrack/logger"
	"caltrack/routes"
	"caltrack/services"
	"caltrack/storage"

	"go.uber.org/zap"
)

func main() {
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load(log)
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	userStore := storage.NewUserStore(db)
	mealStore := storage.NewMealStore(db)

	authSvc := services.NewAuthService(userStore, cfg.JWTSecret)
	mealSvc := services.NewMealService(mealStore, userStore)

	r := routes.SetupRouter(log, cfg.JWTSecret, routes.Controllers{
		Auth:  controllers.NewAuthController(authSvc, log),
		Users: controllers.NewUserController(userStore),
		Meals: controllers.NewMealController(mealSvc, log),
	})

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
