package store

import (
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"

	"github.com/biggrade/biggrade-api/schema"
)

const (
	testPostgresConn = "host=127.0.0.1 port=5432 user=postgres password=postgres dbname=test sslmode=disable"
	testMongoConn    = "mongodb://127.0.0.1:27017/?compressors=disabled"
	testMongoDB      = "test-db"
)

// openTestORM connects to the test postgres and recreates every table
func openTestORM() (*gorm.DB, error) {
	db, err := gorm.Open("postgres", testPostgresConn)
	if err != nil {
		return nil, err
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return nil, err
	}

	if err := db.DropTableIfExists(
		&schema.DirectoryOutbox{},
		&schema.Vouch{},
		&schema.SessionNotification{},
		&schema.SessionMessage{},
		&schema.HelpRequest{},
		&schema.User{},
	).Error; err != nil {
		return nil, err
	}

	return db, schema.Migrate(db)
}
