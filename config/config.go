package config

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Config carries the app settings read once at startup. Charge percentages
// are the branch-wide defaults applied when a request does not override them.
type Config struct {
	Port                 string
	ServiceChargePercent float64
	TaxRatePercent       float64
}

func Load() Config {
	return Config{
		Port:                 getEnv("PORT", "8080"),
		ServiceChargePercent: getEnvFloat("SERVICE_CHARGE_PERCENT", 0.0),
		TaxRatePercent:       getEnvFloat("TAX_RATE_PERCENT", 0.0),
	}
}

// InitDB opens the MySQL connection described by the DB_* environment.
func InitDB() (*gorm.DB, error) {
	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "3306")
	user := getEnv("DB_USER", "root")
	pass := os.Getenv("DB_PASS")
	name := getEnv("DB_NAME", "fastfood_pos")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, name)

	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
