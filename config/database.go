package config

import (
	"Market/models"
	"fmt"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"strings"
)

// ConnectionString returns the DSN for the configured driver. An explicit dsn
// always wins over the individual fields.
func (c DatabaseConfig) ConnectionString() string {
	if c.DSN != "" {
		return c.DSN
	}

	switch c.Driver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.Username,
			c.Password,
			c.Host,
			c.Port,
			c.Database,
		)
	case DriverPostgres:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			c.Host,
			c.Username,
			c.Password,
			c.Database,
			c.Port,
		)
	default:
		// SQLite enforces foreign keys only when asked to.
		if strings.Contains(c.Database, "?") {
			return c.Database + "&_pragma=foreign_keys(1)"
		}
		return c.Database + "?_pragma=foreign_keys(1)"
	}
}

func (c DatabaseConfig) dialector() (gorm.Dialector, error) {
	dsn := c.ConnectionString()
	switch c.Driver {
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", c.Driver)
	}
}

func logLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// SetupDatabaseConnection opens the configured database.
func SetupDatabaseConnection(config DatabaseConfig) (*gorm.DB, error) {
	dialector, err := config.dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel(config.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", config.Driver, err)
	}

	// SQLite allows a single writer at a time.
	if config.Driver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates or updates the carts and items tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Cart{},
		&models.Item{},
	)
}
