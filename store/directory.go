package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/biggrade/biggrade-api/consts"
	"github.com/biggrade/biggrade-api/schema"
)

// Directory - public directory read model
type Directory interface {
	UpsertDirectoryEntry(entry schema.DirectoryEntry) error
	TouchPresence(user *schema.User, at time.Time) error
	GetDirectoryEntry(email string) (*schema.DirectoryEntry, error)
	ListDirectory(userType string, limit int64) ([]schema.DirectoryEntry, error)
}

// UpsertDirectoryEntry writes the projected fields of an entry. Counters only
// ever grow, so they are applied with $max: a sync that read an older user
// record and finishes last cannot lower them. Presence is never touched.
func (m *mongoDB) UpsertDirectoryEntry(entry schema.DirectoryEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.DirectoryCollection)

	query := bson.M{"user_email": entry.UserEmail}
	update := bson.M{
		"$set": bson.M{
			"user_type":    entry.UserType,
			"display_name": entry.DisplayName,
		},
		"$max": bson.M{
			"tutor_rating":   entry.TutorRating,
			"student_rating": entry.StudentRating,
			"peer_points":    entry.PeerPoints,
			"reputation":     entry.Reputation,
			"synced_at":      entry.SyncedAt,
		},
	}

	if _, err := c.UpdateOne(ctx, query, update, options.Update().SetUpsert(true)); err != nil {
		return err
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("directory entry synced: %s", entry.UserEmail)
	return nil
}

// TouchPresence records the last heartbeat of a user. A user without a
// directory entry gets one with zero counters until the next projection.
func (m *mongoDB) TouchPresence(user *schema.User, at time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.DirectoryCollection)

	query := bson.M{"user_email": user.Email}
	update := bson.M{
		"$set": bson.M{"last_active": at},
		"$setOnInsert": bson.M{
			"user_type":      user.UserType,
			"display_name":   user.FullName,
			"tutor_rating":   0,
			"student_rating": 0,
			"peer_points":    0,
			"reputation":     0,
		},
	}

	_, err := c.UpdateOne(ctx, query, update, options.Update().SetUpsert(true))
	return err
}

// GetDirectoryEntry returns the public entry of a user
func (m *mongoDB) GetDirectoryEntry(email string) (*schema.DirectoryEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.DirectoryCollection)

	var entry schema.DirectoryEntry
	if err := c.FindOne(ctx, bson.M{"user_email": email}).Decode(&entry); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrDirectoryEntryNotFound
		}
		return nil, err
	}

	return &entry, nil
}

// ListDirectory returns the leaderboard, highest reputation first. An empty
// userType lists every role.
func (m *mongoDB) ListDirectory(userType string, limit int64) ([]schema.DirectoryEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.DirectoryCollection)

	if limit <= 0 || limit > consts.DIRECTORY_LIST_LIMIT {
		limit = consts.DIRECTORY_LIST_LIMIT
	}

	query := bson.M{}
	if userType != "" {
		query["user_type"] = userType
	}

	opts := options.Find().
		SetSort(bson.D{{"reputation", -1}, {"last_active", -1}}).
		SetLimit(limit)

	cur, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	entries := []schema.DirectoryEntry{}
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
