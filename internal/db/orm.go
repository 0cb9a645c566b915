package db

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"deploystack/base-services/internal/probe"
)

// OpenORM opens the template's starter GORM handle. A postgres DATABASE_URL
// is used when set; otherwise scaffolded projects start on a local sqlite
// file.
func OpenORM(databaseURL, sqlitePath string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(sqlitePath)
	}

	orm, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return orm, nil
}

// ORMCheck wraps the GORM handle in a readiness check.
func ORMCheck(orm *gorm.DB) probe.Check {
	return probe.Check{
		Name: "database",
		Run: func(ctx context.Context) error {
			sqlDB, err := orm.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
}
