package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Francesco-Napolitano/WebAppApi/config"
	"github.com/Francesco-Napolitano/WebAppApi/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the database connection and migrates the catalog schema.
func InitDB() {
	cfg := config.Load()

	db, err := Open(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated successfully")
}

// Open connects to the configured store. MySQL is the default; sqlite is
// used for local setups and tests.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Error,
			IgnoreRecordNotFoundError: true,
		},
	)

	switch cfg.Driver {
	case "sqlite":
		// Foreign keys are off by default in sqlite; the schema's
		// SET NULL / CASCADE rules need them on.
		sep := "?"
		if strings.Contains(cfg.Path, "?") {
			sep = "&"
		}
		dsn := fmt.Sprintf("%s%s_foreign_keys=on", cfg.Path, sep)
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormLogger})
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

// Migrate creates or updates the five catalog tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Brand{},
		&models.Collection{},
		&models.Product{},
		&models.File{},
		&models.ProductFile{},
	)
}
