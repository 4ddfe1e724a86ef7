package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Abhi-R-04/OIBSIP/models"
	"github.com/Abhi-R-04/OIBSIP/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Variant{},
		&models.Pizza{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Seed the catalog on first boot so the storefront is browsable
	if err := seedCatalog(db); err != nil {
		log.Fatalf("❌ Catalog seed failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	cfg := &gorm.Config{TranslateError: true}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), cfg)
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// seedCatalog inserts the default menu and ingredient variants when the
// tables are empty. Idempotent: an already-populated catalog is left alone.
func seedCatalog(db *gorm.DB) error {
	var variantCount int64
	if err := db.Model(&models.Variant{}).Count(&variantCount).Error; err != nil {
		return err
	}
	if variantCount == 0 {
		variants := []models.Variant{
			{Name: "Thin Crust", Category: models.CategoryBase, Price: 100, Stock: 50, Threshold: 20},
			{Name: "Cheese Burst", Category: models.CategoryBase, Price: 150, Stock: 50, Threshold: 20},
			{Name: "Deep Dish", Category: models.CategoryBase, Price: 120, Stock: 50, Threshold: 20},
			{Name: "Marinara", Category: models.CategorySauce, Price: 20, Stock: 60, Threshold: 20},
			{Name: "Pesto", Category: models.CategorySauce, Price: 25, Stock: 60, Threshold: 20},
			{Name: "Barbeque", Category: models.CategorySauce, Price: 25, Stock: 60, Threshold: 20},
			{Name: "Mozzarella", Category: models.CategoryCheese, Price: 30, Stock: 60, Threshold: 20},
			{Name: "Cheddar", Category: models.CategoryCheese, Price: 35, Stock: 60, Threshold: 20},
			{Name: "Olives", Category: models.CategoryVeggie, Price: 10, Stock: 80, Threshold: 20},
			{Name: "Onion", Category: models.CategoryVeggie, Price: 8, Stock: 80, Threshold: 20},
			{Name: "Capsicum", Category: models.CategoryVeggie, Price: 9, Stock: 80, Threshold: 20},
			{Name: "Mushroom", Category: models.CategoryVeggie, Price: 12, Stock: 80, Threshold: 20},
			{Name: "Jalapeno", Category: models.CategoryVeggie, Price: 15, Stock: 80, Threshold: 20},
		}
		if err := db.Create(&variants).Error; err != nil {
			return err
		}
		log.Printf("✅ Seeded %d ingredient variants", len(variants))
	}

	var pizzaCount int64
	if err := db.Model(&models.Pizza{}).Count(&pizzaCount).Error; err != nil {
		return err
	}
	if pizzaCount == 0 {
		pizzas := []models.Pizza{
			{Name: "Margherita", Description: "Classic delight with 100% real mozzarella", Price: 250, ImageURL: "/images/margherita.jpg"},
			{Name: "Farmhouse", Description: "Onion, capsicum, tomato and grilled mushroom", Price: 320, ImageURL: "/images/farmhouse.jpg"},
			{Name: "Peppy Paneer", Description: "Paneer, crisp capsicum and spicy red pepper", Price: 340, ImageURL: "/images/peppy-paneer.jpg"},
			{Name: "Veggie Supreme", Description: "Loaded with golden corn, olives and jalapeno", Price: 380, ImageURL: "/images/veggie-supreme.jpg"},
		}
		if err := db.Create(&pizzas).Error; err != nil {
			return err
		}
		log.Printf("✅ Seeded %d menu pizzas", len(pizzas))
	}

	return nil
}
