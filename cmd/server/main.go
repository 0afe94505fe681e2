package main

import (
	"context"
	"log"
	"net/http"

	"gympulse/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"gympulse/internal/auth"
	"gympulse/internal/cache"
	"gympulse/internal/config"
	"gympulse/internal/handler"
	"gympulse/internal/repository"
	"gympulse/internal/router"
	"gympulse/internal/seed"
	"gympulse/internal/service"
)

// @title Gympulse API
// @version 1.0
// @description Gym membership API with class bookings, workout routines, progress tracking, and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize the domain store and repositories
	store := repository.NewStore()
	userRepo := repository.NewUserRepository(store)
	classRepo := repository.NewClassRepository(store)
	bookingRepo := repository.NewBookingRepository(store)
	routineRepo := repository.NewRoutineRepository(store)
	trainerRepo := repository.NewTrainerRepository(store)
	progressRepo := repository.NewProgressRepository(store)
	nutritionRepo := repository.NewNutritionRepository(store)
	notificationRepo := repository.NewNotificationRepository(store)

	// Seed demonstration data; the store is memory-resident, so this runs on
	// every start
	if err := seed.Load(context.Background(), routineRepo, classRepo, trainerRepo); err != nil {
		log.Fatalf("seed: %v", err)
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	classService := service.NewClassService(classRepo, trainerRepo, cacheClient)
	routineService := service.NewRoutineService(routineRepo, cacheClient)
	bookingService := service.NewBookingService(classRepo, bookingRepo, notificationRepo, cacheClient)
	memberService := service.NewMemberService(progressRepo, nutritionRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	classHandler := handler.NewClassHandler(classService)
	routineHandler := handler.NewRoutineHandler(routineService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	memberHandler := handler.NewMemberHandler(memberService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		classHandler,
		routineHandler,
		bookingHandler,
		memberHandler,
		notificationHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
