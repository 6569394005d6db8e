package background

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/biggrade/biggrade-api/schema"
	"github.com/biggrade/biggrade-api/store"
)

const reconcileBatchSize = 500

var log = logrus.WithField("prefix", "background")

// DirectoryProjector rebuilds public directory entries from the canonical
// user records listed in the outbox
type DirectoryProjector struct {
	store     store.BigGradeCore
	directory store.Directory
	now       func() time.Time
}

func NewDirectoryProjector(core store.BigGradeCore, directory store.Directory) *DirectoryProjector {
	return &DirectoryProjector{
		store:     core,
		directory: directory,
		now:       time.Now,
	}
}

// Sync projects one user. The outbox rows are read before the user record, so
// every row marked processed is covered by the counters written. Rows added
// meanwhile stay pending for the next run.
func (p *DirectoryProjector) Sync(email string) error {
	rows, err := p.store.PendingDirectoryUpdates(email, 0)
	if err != nil {
		return err
	}

	user, err := p.store.GetUser(email)
	if err != nil {
		return err
	}

	now := p.now().UTC()
	if err := p.directory.UpsertDirectoryEntry(schema.NewDirectoryEntry(user, now)); err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	return p.store.MarkDirectoryUpdated(ids, now)
}

// SyncPending projects every user with pending outbox rows and returns how
// many users were synced. A failing user does not stop the others.
func (p *DirectoryProjector) SyncPending() (int, error) {
	rows, err := p.store.PendingDirectoryUpdates("", reconcileBatchSize)
	if err != nil {
		return 0, err
	}

	seen := map[string]struct{}{}
	synced := 0
	for _, r := range rows {
		if _, ok := seen[r.UserEmail]; ok {
			continue
		}
		seen[r.UserEmail] = struct{}{}

		if err := p.Sync(r.UserEmail); err != nil {
			log.WithError(err).WithField("email", r.UserEmail).Error("directory sync failed")
			sentry.CaptureException(err)
			continue
		}
		synced++
	}

	return synced, nil
}

// Reconcile runs SyncPending every interval until ctx is done
func (p *DirectoryProjector) Reconcile(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n, err := p.SyncPending()
			if err != nil {
				log.WithError(err).Error("directory reconciliation failed")
				sentry.CaptureException(err)
				continue
			}
			if n > 0 {
				log.WithField("users", n).Info("directory reconciled")
			}
		}
	}
}

// SyncDirectory is a background job to refresh the public directory entry
// of a user after a reputation change
func (m *BackgroundManager) SyncDirectory(email string) error {
	if err := m.projector.Sync(email); err != nil {
		log.WithError(err).WithField("email", email).Error("directory sync failed")
		sentry.CaptureException(err)
		return err
	}
	return nil
}
