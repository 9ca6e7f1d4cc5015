package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Port        string
	BindAddress string
	DBDriver    string
	DBPath      string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	SharedDir   string
}

func Load() *Config {
	// Optional .env for local development; environment wins when both are set.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "3000"),
		BindAddress: getEnv("BIND_ADDRESS", "0.0.0.0"),
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DBPath:      getEnv("DB_PATH", "quiz.db"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "trivianight"),
		DBPassword:  getEnv("DB_PASSWORD", "trivianight123"),
		DBName:      getEnv("DB_NAME", "trivianight"),
		SharedDir:   getEnv("SHARED_DIR", "shared"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// InitDB opens the database selected by DB_DRIVER: an embedded SQLite file by
// default, or PostgreSQL when configured.
func InitDB(cfg *Config) (*gorm.DB, error) {
	if cfg.DBDriver == "postgres" {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return db, nil
	}

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database file %s: %w", cfg.DBPath, err)
	}
	return db, nil
}
