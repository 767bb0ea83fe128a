package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusaid-inc/campusaid-api/external/geoinfo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

const (
	DuplicateKeyCode = 11000
)

// ProfilePolicy controls the upsert-on-first-touch profile fallback. The
// mobile client historically created missing profiles as already verified;
// DefaultVerified keeps that behaviour behind an explicit switch and is off
// unless configured.
type ProfilePolicy struct {
	DefaultCollege  string
	DefaultVerified bool
}

type mongoDB struct {
	client    *mongo.Client
	database  string
	geoClient geoinfo.GeoInfo
	events    EventPublisher
	policy    ProfilePolicy
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewCampusAidStore - return campusaid db operations
func NewCampusAidStore(client *mongo.Client, database string, geoClient geoinfo.GeoInfo, events EventPublisher, policy ProfilePolicy) CampusAidStore {
	return &mongoDB{
		client:    client,
		database:  database,
		geoClient: geoClient,
		events:    events,
		policy:    policy,
	}
}

func isDuplicateKeyError(err error) bool {
	if we, ok := err.(mongo.WriteException); ok {
		if len(we.WriteErrors) == 1 && we.WriteErrors[0].Code == DuplicateKeyCode {
			return true
		}
	}
	return false
}
