package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fastfood-pos/config"
	"fastfood-pos/middlewares"
	"fastfood-pos/models"
	"fastfood-pos/router"
	"fastfood-pos/utils"
)

func main() {
	utils.InitLogger()

	if err := godotenv.Load(); err != nil {
		// Running without a .env is fine, the environment may be set outside.
		utils.InfoLogger.Println("No .env file found, using process environment")
	}

	cfg := config.Load()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)
	seedAdmin(db)

	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db, cfg)
	r.Use(rateLimiter.RateLimit())
	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	utils.InfoLogger.Printf("Starting POS backend on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatalf("Server stopped: %v", err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Branch{},
		&models.User{},
		&models.Customer{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.Deal{},
		&models.DealItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.CashierSession{},
		&models.DailyCounter{},
		&models.Delivery{},
		&models.ExpenseCategory{},
		&models.Expense{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Auto migration failed: %v", err)
	}
}

// seedAdmin creates the main branch and an admin login on an empty database
// so a fresh install can be reached. PIN comes from ADMIN_PIN, default 1234.
func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	branch := models.Branch{Name: "Main Branch", Active: true}
	if err := db.Create(&branch).Error; err != nil {
		utils.ErrorLogger.Printf("Branch seed failed: %v", err)
		return
	}

	pin := os.Getenv("ADMIN_PIN")
	if pin == "" {
		pin = "1234"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		utils.ErrorLogger.Printf("Admin seed failed: %v", err)
		return
	}

	admin := models.User{
		Name:     "Administrator",
		Username: "admin",
		PinHash:  string(hash),
		Role:     "ADMIN",
		BranchID: &branch.ID,
		Active:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		utils.ErrorLogger.Printf("Admin seed failed: %v", err)
		return
	}
	utils.InfoLogger.Printf("Seeded admin user (username admin, branch %d)", branch.ID)
}
