package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pavelromci25/nebula-server/internal/config"
	"github.com/pavelromci25/nebula-server/internal/handler"
	"github.com/pavelromci25/nebula-server/internal/middleware"
	"github.com/pavelromci25/nebula-server/internal/repository"
	"github.com/pavelromci25/nebula-server/internal/service"
	"github.com/pavelromci25/nebula-server/internal/telegram"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	repo, err := repository.New(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	// Create services
	accessSvc := service.NewAccessService(repo)
	catalogSvc := service.NewCatalogService(repo)
	donationSvc := service.NewDonationService(repo)
	promotionSvc := service.NewPromotionService(repo, cfg.Promotion)
	developerSvc := service.NewDeveloperService(repo)
	adminSvc := service.NewAdminService(repo, accessSvc)
	userSvc := service.NewUserService(repo)
	inventorySvc := service.NewInventoryService(repo)

	// Create Telegram bot
	var bot *telegram.Bot
	if cfg.Telegram.BotToken != "" {
		bot, err = telegram.NewBot(cfg, donationSvc)
		if err != nil {
			log.Printf("Warning: Failed to create Telegram bot: %v", err)
		} else {
			donationSvc.SetInvoiceCreator(bot)
			developerSvc.SetNotifier(bot)
			log.Printf("Telegram bot @%s initialized", bot.GetBotUsername())
		}
	}

	// Create handlers
	h := handler.New(catalogSvc, donationSvc, userSvc, inventorySvc)
	developerHandler := handler.NewDeveloperHandler(developerSvc, promotionSvc)
	adminHandler := handler.NewAdminHandler(adminSvc)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Health check
	app.Get("/health", h.Health)

	// Public catalog
	app.Get("/api/apps", h.GetApps)
	app.Post("/api/apps/:id/rate", h.RateApp)
	app.Post("/api/apps/:id/complain", h.ComplainApp)
	app.Post("/api/apps/:id/donate", h.DonateApp)
	app.Post("/api/apps/:id/donate/invoice", h.DonateInvoice)
	app.Post("/api/apps/:id/click", h.ClickApp)

	// Catalog users and inventories
	app.Get("/api/users/:userId", h.GetUser)
	app.Post("/api/users", h.CreateUser)
	app.Get("/api/inventory/:userId", h.GetInventory)
	app.Post("/api/inventory", h.CreateInventory)
	app.Patch("/api/inventory/:userId", h.PatchInventory)

	// Developer console (allow-list gated)
	developer := app.Group("/api/developer/:userId", middleware.DeveloperAccess(accessSvc))
	developer.Get("/", developerHandler.GetDeveloper)
	developer.Get("/balance", developerHandler.GetBalance)
	developer.Post("/apps", developerHandler.SubmitApp)
	developer.Patch("/apps/:appId", developerHandler.UpdateApp)
	developer.Get("/apps/:appId/transactions", developerHandler.GetTransactions)
	developer.Get("/stats", developerHandler.GetStats)
	developer.Post("/promote", developerHandler.Promote)

	// Admin console (allow-list gated)
	admin := app.Group("/api/admin", middleware.AdminAccess(accessSvc))
	admin.Get("/apps", adminHandler.ListApps)
	admin.Get("/stats", adminHandler.GetStats)
	admin.Patch("/apps/:appId/approve", adminHandler.ApproveApp)
	admin.Patch("/apps/:appId/reject", adminHandler.RejectApp)
	admin.Post("/add-developer", adminHandler.AddDeveloper)
	admin.Get("/developers", adminHandler.ListDevelopers)
	admin.Get("/admins", adminHandler.ListAdmins)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start Telegram bot long polling
	if bot != nil {
		go bot.StartPolling(ctx)
		log.Println("Telegram bot started with long polling")
	}

	// Start user presence sweeper
	presenceWorker := service.NewPresenceWorker(repo)
	go presenceWorker.Start(ctx)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		cancel()
		_ = app.Shutdown()
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
