package main

import (
	"log"
	"time"

	"restaurant_manager/internal/config"
	"restaurant_manager/internal/database"
	"restaurant_manager/internal/handlers"
	"restaurant_manager/internal/middleware"
	"restaurant_manager/internal/migrations"
	"restaurant_manager/internal/models"
	"restaurant_manager/internal/redis"
	"restaurant_manager/internal/repository"
	"restaurant_manager/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	tableRepo := repository.NewTableRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	menuRepo := repository.NewMenuItemRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, redisClient, cfg.JWTSecret, time.Duration(cfg.SessionTimeout)*time.Second)
	orderService := services.NewOrderService(orderRepo, redisClient)
	schedulerService := services.NewSchedulerService(orderRepo, redisClient, time.Duration(cfg.KitchenCacheTTL)*time.Second)
	tableService := services.NewTableService(tableRepo)
	customerService := services.NewCustomerService(customerRepo)
	menuService := services.NewMenuService(menuRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	orderHandler := handlers.NewOrderHandler(orderService, schedulerService)
	tableHandler := handlers.NewTableHandler(tableService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	menuHandler := handlers.NewMenuHandler(menuService)

	// Role allow-lists per endpoint group
	staff := middleware.AuthGuard(cfg.JWTSecret, redisClient,
		string(models.RoleManager), string(models.RoleChef), string(models.RoleKitchenStaff), string(models.RoleServer))
	kitchen := middleware.AuthGuard(cfg.JWTSecret, redisClient,
		string(models.RoleManager), string(models.RoleChef), string(models.RoleKitchenStaff))
	managerOnly := middleware.AuthGuard(cfg.JWTSecret, redisClient,
		string(models.RoleManager))
	floor := middleware.AuthGuard(cfg.JWTSecret, redisClient,
		string(models.RoleManager), string(models.RoleServer))

	// Setup routes
	router := gin.Default()

	router.POST("/auth/login", authHandler.Login)
	router.POST("/auth/logout", staff, authHandler.Logout)

	// Customer-facing: menu browsing and order submission
	router.GET("/menu", menuHandler.ListMenu)
	router.GET("/menu/:id", menuHandler.GetMenuItem)
	router.POST("/orders", orderHandler.CreateOrder)
	router.GET("/orders/:id", staff, orderHandler.GetOrder)

	// Kitchen and admin polling surfaces
	router.GET("/orders", kitchen, orderHandler.ListOrders)
	router.PATCH("/orders/:id/status", kitchen, orderHandler.UpdateStatus)
	router.PATCH("/orders/:id/priority", kitchen, orderHandler.UpdatePriority)
	router.PATCH("/orders/:id/estimated-time", kitchen, orderHandler.UpdateEstimatedTime)
	router.GET("/kitchen/queue", kitchen, orderHandler.KitchenQueue)

	// Floor management
	router.GET("/tables", staff, tableHandler.ListTables)
	router.POST("/tables", managerOnly, tableHandler.CreateTable)
	router.PATCH("/tables/:id", managerOnly, tableHandler.UpdateTable)
	router.DELETE("/tables/:id", managerOnly, tableHandler.DeleteTable)
	router.PATCH("/tables/:id/status", floor, tableHandler.UpdateTableStatus)
	router.GET("/tables/layout/suggestion", managerOnly, tableHandler.SuggestPlacement)

	// Returning-customer profiles
	router.POST("/customers", staff, customerHandler.UpsertCustomer)
	router.GET("/customers/search", staff, customerHandler.SearchCustomers)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
