package database

import (
	"context"

	"gorm.io/gorm"
)

type Database struct {
	db       *gorm.DB
	blogRepo *BlogRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:       db,
		blogRepo: NewBlogRepo(db),
	}
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

// Ping verifies store connectivity for the health endpoint.
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
