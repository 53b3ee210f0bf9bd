package main

import (
	"net/http"

	_ "spendtrack/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"spendtrack/internal/auth"
	"spendtrack/internal/cache"
	"spendtrack/internal/config"
	"spendtrack/internal/db"
	"spendtrack/internal/handler"
	"spendtrack/internal/model"
	"spendtrack/internal/repository"
	"spendtrack/internal/router"
	"spendtrack/internal/service"
)

// @title Spendtrack API
// @version 1.0
// @description Personal finance tracker API: registration, login, income and expense records, dashboard summary.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()

	// Amounts go out as JSON numbers, the format the dashboard client parses.
	decimal.MarshalJSONWithoutQuotes = true

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	incomeRepo := repository.NewTransactionRepository(gormDB, model.KindIncome)
	expenseRepo := repository.NewTransactionRepository(gormDB, model.KindExpense)

	// Services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	incomeService := service.NewTransactionService(incomeRepo, cacheClient, model.KindIncome)
	expenseService := service.NewTransactionService(expenseRepo, cacheClient, model.KindExpense)
	summaryService := service.NewSummaryService(incomeRepo, expenseRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	incomeHandler := handler.NewTransactionHandler(incomeService, model.KindIncome)
	expenseHandler := handler.NewTransactionHandler(expenseService, model.KindExpense)
	summaryHandler := handler.NewSummaryHandler(summaryService)

	router.Register(e, jwtService, authHandler, incomeHandler, expenseHandler, summaryHandler)

	log.WithField("port", cfg.ServerPort).Info("starting server")
	if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
