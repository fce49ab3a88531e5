package main

import (
	"fmt"
	"log"

	"restaurant_manager/internal/config"
	"restaurant_manager/internal/database"
	"restaurant_manager/internal/migrations"
	"restaurant_manager/internal/models"
)

// Standalone database bootstrap: drops every table and rebuilds the
// schema with seed data. Never run against a live installation.
func main() {
	fmt.Println("Initializing database...")

	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.User{},
		&models.MenuItem{},
		&models.Table{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fmt.Println("Database initialized successfully!")
}
