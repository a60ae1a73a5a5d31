package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/AnthonyBalvin/chicharron-web/internal/application/board"
	"github.com/AnthonyBalvin/chicharron-web/internal/application/service"
	"github.com/AnthonyBalvin/chicharron-web/internal/config"
	"github.com/AnthonyBalvin/chicharron-web/internal/infrastructure/database"
	"github.com/AnthonyBalvin/chicharron-web/internal/infrastructure/repository"
	"github.com/AnthonyBalvin/chicharron-web/internal/presentation/http/handler"
	"github.com/AnthonyBalvin/chicharron-web/internal/presentation/http/routes"
	"github.com/AnthonyBalvin/chicharron-web/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Setup(cfg.Log.Level, cfg.Log.Format)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	orderService := service.NewOrderService(orderRepo)
	debtService := service.NewDebtService(orderRepo)
	reportService := service.NewReportService(orderRepo)

	// Initialize the order board and prime its snapshot; a failed first
	// load is not fatal, the board just starts stale.
	orderBoard := board.New(orderService, debtService, cfg.Board.NoticeTTL)
	if err := orderBoard.Refresh(context.Background()); err != nil {
		log.Warn().Err(err).Msg("initial board load failed")
	}

	// Initialize handlers
	handlers := &routes.Handlers{
		Order:  handler.NewOrderHandler(orderService),
		Debtor: handler.NewDebtorHandler(debtService),
		Report: handler.NewReportHandler(reportService),
		Board:  handler.NewBoardHandler(orderBoard),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info().
		Str("service", cfg.App.Name).
		Str("port", port).
		Str("env", cfg.App.Env).
		Msg("starting server")

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
