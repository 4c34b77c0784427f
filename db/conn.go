// Package db opens the database connection and keeps the schema
// migrated
package db

import (
	"fmt"

	"fstop/portfolio-api/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func New() (*gorm.DB, error) {
	var dial gorm.Dialector

	switch driver := viper.GetString("db.driver"); driver {
	case "postgres":
		dial = postgres.Open(viper.GetString("db.dsn"))
	case "sqlite":
		dial = sqlite.Open(viper.GetString("db.dsn"))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	// TranslateError so unique index violations surface as
	// gorm.ErrDuplicatedKey on both drivers. Cross-table references
	// are intentionally not enforced by the schema, handlers check
	// existence where it matters.
	db, err := gorm.Open(dial, &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database, %w", err)
	}

	err = db.AutoMigrate(&model.User{}, &model.Album{}, &model.Photo{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
