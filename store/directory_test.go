package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/biggrade/biggrade-api/schema"
)

type DirectoryTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewDirectoryTestSuite(connURI, dbName string) *DirectoryTestSuite {
	return &DirectoryTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *DirectoryTestSuite) SetupTest() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure every test is run with a clean environment
	if err := s.testDatabase.Drop(context.Background()); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

func (s *DirectoryTestSuite) TearDownTest() {
	_ = s.mongoClient.Disconnect(context.Background())
}

func (s *DirectoryTestSuite) TestUpsertIsIdempotentAndKeepsPresence() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	tutor := &schema.User{Email: "tara@tutors.io", FullName: "Tara", UserType: schema.UserTypeTutor, TutorRating: 10}

	seen := time.Now().UTC().Truncate(time.Millisecond)
	s.NoError(store.TouchPresence(tutor, seen))

	entry := schema.NewDirectoryEntry(tutor, time.Now().UTC())
	s.NoError(store.UpsertDirectoryEntry(entry))
	s.NoError(store.UpsertDirectoryEntry(entry))

	got, err := store.GetDirectoryEntry(tutor.Email)
	s.NoError(err)
	s.Equal(10, got.TutorRating)
	s.Equal(10, got.Reputation)
	s.Equal("Tara", got.DisplayName)
	s.True(seen.Equal(got.LastActive))

	count, err := s.testDatabase.Collection(schema.DirectoryCollection).CountDocuments(context.Background(), bson.M{})
	s.NoError(err)
	s.Equal(int64(1), count)
}

func (s *DirectoryTestSuite) TestUpsertKeepsNewerCountersWhenOlderSyncFinishesLast() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	now := time.Now().UTC()

	older := &schema.User{Email: "tara@tutors.io", FullName: "Tara", UserType: schema.UserTypeTutor, TutorRating: 5}
	newer := &schema.User{Email: "tara@tutors.io", FullName: "Tara", UserType: schema.UserTypeTutor, TutorRating: 10, StudentRating: 5}

	s.NoError(store.UpsertDirectoryEntry(schema.NewDirectoryEntry(newer, now)))
	s.NoError(store.UpsertDirectoryEntry(schema.NewDirectoryEntry(older, now.Add(-time.Second))))

	got, err := store.GetDirectoryEntry(newer.Email)
	s.NoError(err)
	s.Equal(10, got.TutorRating)
	s.Equal(5, got.StudentRating)
	s.Equal(15, got.Reputation)
}

func (s *DirectoryTestSuite) TestGetDirectoryEntryNotFound() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.GetDirectoryEntry("ghost@school.edu")
	s.Equal(ErrDirectoryEntryNotFound, err)
}

func (s *DirectoryTestSuite) TestTouchPresenceCreatesEntry() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	student := &schema.User{Email: "amy@school.edu", FullName: "Amy", UserType: schema.UserTypeStudent}

	s.NoError(store.TouchPresence(student, time.Now()))

	got, err := store.GetDirectoryEntry(student.Email)
	s.NoError(err)
	s.Equal(schema.UserTypeStudent, got.UserType)
	s.Equal(0, got.Reputation)
}

func (s *DirectoryTestSuite) TestListDirectoryOrdersByReputation() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	now := time.Now().UTC()

	s.NoError(store.UpsertDirectoryEntry(schema.NewDirectoryEntry(&schema.User{Email: "a@tutors.io", UserType: schema.UserTypeTutor, TutorRating: 5}, now)))
	s.NoError(store.UpsertDirectoryEntry(schema.NewDirectoryEntry(&schema.User{Email: "b@tutors.io", UserType: schema.UserTypeTutor, TutorRating: 15}, now)))
	s.NoError(store.UpsertDirectoryEntry(schema.NewDirectoryEntry(&schema.User{Email: "c@school.edu", UserType: schema.UserTypeStudent, PeerPoints: 50}, now)))

	tutors, err := store.ListDirectory(schema.UserTypeTutor, 0)
	s.NoError(err)
	s.Len(tutors, 2)
	s.Equal("b@tutors.io", tutors[0].UserEmail)

	everyone, err := store.ListDirectory("", 2)
	s.NoError(err)
	s.Len(everyone, 2)
	s.Equal("c@school.edu", everyone[0].UserEmail)
}

func TestDirectoryTestSuite(t *testing.T) {
	suite.Run(t, NewDirectoryTestSuite(testMongoConn, testMongoDB))
}
