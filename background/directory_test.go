package background

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/biggrade/biggrade-api/mocks"
	"github.com/biggrade/biggrade-api/schema"
)

var fixedNow = time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)

func newTestProjector(ctl *gomock.Controller) (*DirectoryProjector, *mocks.MockBigGradeCore, *mocks.MockMongoStore) {
	core := mocks.NewMockBigGradeCore(ctl)
	mongo := mocks.NewMockMongoStore(ctl)

	p := NewDirectoryProjector(core, mongo)
	p.now = func() time.Time { return fixedNow }
	return p, core, mongo
}

func TestSyncWritesAbsoluteCounters(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p, core, mongo := newTestProjector(ctl)

	rowID := uuid.New()
	tutor := &schema.User{Email: "tara@tutors.io", FullName: "Tara", UserType: schema.UserTypeTutor, TutorRating: 15, StudentRating: 5}

	gomock.InOrder(
		core.EXPECT().PendingDirectoryUpdates(tutor.Email, 0).
			Return([]schema.DirectoryOutbox{{ID: rowID, UserEmail: tutor.Email}}, nil),
		core.EXPECT().GetUser(tutor.Email).Return(tutor, nil),
		mongo.EXPECT().UpsertDirectoryEntry(schema.DirectoryEntry{
			UserEmail:     tutor.Email,
			UserType:      schema.UserTypeTutor,
			DisplayName:   "Tara",
			TutorRating:   15,
			StudentRating: 5,
			Reputation:    20,
			SyncedAt:      fixedNow,
		}).Return(nil),
		core.EXPECT().MarkDirectoryUpdated([]uuid.UUID{rowID}, fixedNow).Return(nil),
	)

	assert.NoError(t, p.Sync(tutor.Email))
}

func TestSyncLeavesOutboxPendingOnProjectionFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p, core, mongo := newTestProjector(ctl)
	tutor := &schema.User{Email: "tara@tutors.io", UserType: schema.UserTypeTutor}

	core.EXPECT().PendingDirectoryUpdates(tutor.Email, 0).
		Return([]schema.DirectoryOutbox{{ID: uuid.New(), UserEmail: tutor.Email}}, nil)
	core.EXPECT().GetUser(tutor.Email).Return(tutor, nil)
	mongo.EXPECT().UpsertDirectoryEntry(gomock.Any()).Return(errors.New("mongo down"))
	core.EXPECT().MarkDirectoryUpdated(gomock.Any(), gomock.Any()).Times(0)

	assert.Error(t, p.Sync(tutor.Email))
}

func TestSyncPendingSyncsEachUserOnce(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p, core, mongo := newTestProjector(ctl)

	amy := &schema.User{Email: "amy@school.edu", UserType: schema.UserTypeStudent}
	tara := &schema.User{Email: "tara@tutors.io", UserType: schema.UserTypeTutor}

	core.EXPECT().PendingDirectoryUpdates("", reconcileBatchSize).Return([]schema.DirectoryOutbox{
		{ID: uuid.New(), UserEmail: tara.Email},
		{ID: uuid.New(), UserEmail: amy.Email},
		{ID: uuid.New(), UserEmail: tara.Email},
	}, nil)

	core.EXPECT().PendingDirectoryUpdates(tara.Email, 0).Return(nil, nil)
	core.EXPECT().GetUser(tara.Email).Return(tara, nil)
	core.EXPECT().PendingDirectoryUpdates(amy.Email, 0).Return(nil, nil)
	core.EXPECT().GetUser(amy.Email).Return(nil, errors.New("user not found"))

	mongo.EXPECT().UpsertDirectoryEntry(gomock.Any()).Return(nil).Times(1)
	core.EXPECT().MarkDirectoryUpdated(gomock.Any(), fixedNow).Return(nil).Times(1)

	n, err := p.SyncPending()
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}
