package postgres

import (
	"log"

	"github.com/LavaJover/shvark-country-service/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MustInitDB opens the country database. The schema itself is owned by the
// SQL migrations, see internal/infrastructure/migrate.
func MustInitDB(cfg *config.CountryConfig) *gorm.DB {
	dsn := cfg.CountryDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	return db
}
