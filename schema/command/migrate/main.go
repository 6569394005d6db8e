package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/biggrade/biggrade-api/schema"
	"github.com/biggrade/biggrade-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("biggrade")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := schema.Migrate(db); err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()

	if err := migrateMongo(db); err != nil {
		panic(err)
	}
}

func migrateMongo(db *gorm.DB) error {
	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.NewClient(opts)
	if err != nil {
		return err
	}
	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	if err := setupCollectionDirectory(ctx, db, client); err != nil {
		fmt.Println("failed to set up collection `public_directory`: ", err)
		return err
	}

	return nil
}

// setupCollectionDirectory backfills a directory entry for every user that
// does not have one yet. Existing entries are left to the projector.
func setupCollectionDirectory(ctx context.Context, db *gorm.DB, client *mongo.Client) error {
	fmt.Println("initialize public_directory collection")
	c := client.Database(viper.GetString("mongo.database")).Collection(schema.DirectoryCollection)

	var users []schema.User
	if err := db.Find(&users).Error; err != nil {
		return err
	}

	if len(users) == 0 {
		return nil
	}

	now := time.Now().UTC()
	entries := make([]interface{}, 0, len(users))
	for i := range users {
		entries = append(entries, schema.NewDirectoryEntry(&users[i], now))
	}

	_, err := c.InsertMany(ctx, entries, options.InsertMany().SetOrdered(false))
	if errs, ok := err.(mongo.BulkWriteException); ok {
		for _, e := range errs.WriteErrors {
			if e.Code != store.DuplicateKeyCode {
				return err
			}
		}
		return nil
	}

	return err
}
