package background

import (
	"errors"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/biggrade/biggrade-api/external/onesignal"
	"github.com/biggrade/biggrade-api/store"
)

const (
	TASK_NOTIFY_HELP_ACCEPTED = "notify_help_accepted"
	TASK_SYNC_DIRECTORY       = "sync_directory"
)

// BackgroundManager is a struct for biggrade background manager
type BackgroundManager struct {
	store store.BigGradeCore

	notificationCenter NotificationCenter

	projector *DirectoryProjector

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)
	bigGradeCore := store.NewBigGradeStore(ormDB, mongoStore)

	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	return &BackgroundManager{
		store:              bigGradeCore,
		notificationCenter: NewOnesignalNotificationCenter(viper.GetString("onesignal.appid"), o),
		projector:          NewDirectoryProjector(bigGradeCore, mongoStore),
		taskServer:         taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterTasks registers every task the api enqueues
func (m *BackgroundManager) RegisterTasks() error {
	return m.taskServer.RegisterTasks(map[string]interface{}{
		TASK_NOTIFY_HELP_ACCEPTED: m.NotifyHelpAccepted,
		TASK_SYNC_DIRECTORY:       m.SyncDirectory,
	})
}

// Projector returns the directory projector used by the tasks
func (m *BackgroundManager) Projector() *DirectoryProjector {
	return m.projector
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("biggrade-worker", 5)
	return m.worker.Launch()
}

// Quit stops the running worker
func (m *BackgroundManager) Quit() {
	if m.worker != nil {
		m.worker.Quit()
	}
}
