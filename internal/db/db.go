package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pickwise/laptop-advisor-backend/internal/platform/envutil"
	"github.com/pickwise/laptop-advisor-backend/internal/platform/logger"
	"github.com/pickwise/laptop-advisor-backend/internal/types"
)

// Open connects the catalog store. SQLite is the default so the service runs
// self-contained; CATALOG_DB_DRIVER=postgres switches to a shared database.
func Open(log *logger.Logger) (*gorm.DB, error) {
	driver := strings.ToLower(envutil.String("CATALOG_DB_DRIVER", "sqlite"))
	switch driver {
	case "sqlite", "sqlite3":
		path := envutil.String("CATALOG_DB_PATH", "laptops.db")
		log.Info("Opening sqlite catalog store", "path", path)
		gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("open sqlite catalog store: %w", err)
		}
		return gdb, nil
	case "postgres":
		host := envutil.String("POSTGRES_HOST", "localhost")
		port := envutil.String("POSTGRES_PORT", "5432")
		user := envutil.String("POSTGRES_USER", "postgres")
		password := envutil.String("POSTGRES_PASSWORD", "")
		name := envutil.String("POSTGRES_NAME", "laptopadvisor")
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
		log.Info("Connecting to postgres catalog store", "host", host, "db", name)
		gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect postgres catalog store: %w", err)
		}
		return gdb, nil
	default:
		return nil, fmt.Errorf("unknown catalog db driver %q", driver)
	}
}

func AutoMigrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&types.Laptop{}); err != nil {
		return fmt.Errorf("automigrate catalog tables: %w", err)
	}
	return nil
}
