package background

import (
	"errors"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusaid-inc/campusaid-api/external/geoinfo"
	"github.com/campusaid-inc/campusaid-api/external/onesignal"
	"github.com/campusaid-inc/campusaid-api/store"
)

// BackgroundManager is a struct for campusaid background manager
type BackgroundManager struct {
	store store.CampusAidStore

	onesignal *onesignal.OneSignalClient

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(mongoClient *mongo.Client, geoClient geoinfo.GeoInfo, events store.EventPublisher, taskServer *machinery.Server) *BackgroundManager {
	campusStore := store.NewCampusAidStore(
		mongoClient,
		viper.GetString("mongo.database"),
		geoClient,
		events,
		store.ProfilePolicy{
			DefaultCollege:  viper.GetString("profile.default_college"),
			DefaultVerified: viper.GetBool("profile.default_verified"),
		},
	)

	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	return &BackgroundManager{
		store:      campusStore,
		onesignal:  o,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("campusaid-worker", 5)
	return m.worker.Launch()
}
