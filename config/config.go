package config

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds the runtime settings read from the environment.
type Config struct {
	Port     string
	GinMode  string
	DBDriver string // "sqlite" (default) or "mysql"
	DBPath   string // sqlite file
	DBDSN    string // mysql DSN
	// AdminPasswordHash is the bcrypt hash of the shared admin secret.
	// Only the hash is kept after Load.
	AdminPasswordHash []byte
	SessionSecret     string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "5000"),
		GinMode:       os.Getenv("GIN_MODE"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBPath:        getEnv("DB_PATH", "orders.db"),
		DBDSN:         os.Getenv("DB_DSN"),
		SessionSecret: getEnv("SESSION_SECRET", "ThemisSessionSecret1945"),
	}

	password := getEnv("ADMIN_PASSWORD", "jugnuu_admin")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing admin password: %w", err)
	}
	cfg.AdminPasswordHash = hash

	return cfg, nil
}

// InitDB opens the configured database connection.
func InitDB(cfg *Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "mysql":
		if cfg.DBDSN == "" {
			return nil, fmt.Errorf("DB_DSN is required for the mysql driver")
		}
		return gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
