package migrations

import (
	"log"

	"restaurant_manager/internal/models"
	"restaurant_manager/internal/repository"
	"restaurant_manager/internal/services"

	"gorm.io/gorm"
)

// RunMigrations migrates the schema and seeds default data.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Table{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}

	if err := createDefaultData(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// createDefaultData seeds a manager account, a starter menu and the
// initial floor layout.
func createDefaultData(db *gorm.DB) error {
	log.Println("Creating default data...")

	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuItemRepository(db)
	tableRepo := repository.NewTableRepository(db)
	authService := services.NewAuthService(userRepo, nil, "", 0)
	tableService := services.NewTableService(tableRepo)

	// Default manager
	if _, err := userRepo.GetByUsername("admin"); err != nil {
		log.Println("Creating default manager account...")
		if _, err := authService.CreateStaff("admin", "admin123", string(models.RoleManager)); err != nil {
			log.Printf("Warning: Failed to create default manager: %v", err)
		} else {
			log.Println("Default manager created (username: admin, password: admin123)")
		}
	} else {
		log.Println("Default manager already exists")
	}

	// Starter menu
	existing, err := menuRepo.GetAll()
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		log.Println("Seeding starter menu...")
		starters := []models.MenuItem{
			{Name: "Margherita Pizza", Category: "mains", Price: 1250, Available: true},
			{Name: "Caesar Salad", Category: "starters", Price: 850, Available: true},
			{Name: "Tomato Soup", Category: "starters", Price: 550, Available: true},
			{Name: "Grilled Salmon", Category: "mains", Price: 1890, Available: true},
			{Name: "Cheesecake", Category: "desserts", Price: 650, Available: true},
			{Name: "House Lemonade", Category: "drinks", Price: 350, Available: true},
		}
		for i := range starters {
			if err := menuRepo.Create(&starters[i]); err != nil {
				log.Printf("Warning: Failed to seed menu item %q: %v", starters[i].Name, err)
			}
		}
	}

	// Initial floor layout
	tables, err := tableRepo.GetAll()
	if err != nil {
		return err
	}
	if len(tables) == 0 {
		log.Println("Seeding initial floor layout...")
		layout := []services.CreateTableInput{
			{TableNumber: 1, Capacity: 2, Shape: string(models.ShapeSquare), PositionX: 0, PositionY: 0},
			{TableNumber: 2, Capacity: 4, Shape: string(models.ShapeRound), PositionX: 2, PositionY: 0},
			{TableNumber: 3, Capacity: 4, Shape: string(models.ShapeRound), PositionX: 4, PositionY: 0},
			{TableNumber: 4, Capacity: 6, Shape: string(models.ShapeRectangular), PositionX: 0, PositionY: 2, Width: 2},
		}
		for i := range layout {
			if _, err := tableService.CreateTable(&layout[i]); err != nil {
				log.Printf("Warning: Failed to seed table %d: %v", layout[i].TableNumber, err)
			}
		}
	}

	log.Println("Default data created successfully!")
	return nil
}
