package store

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"googlemaps.github.io/maps"

	"github.com/campusaid-inc/campusaid-api/external/mocks"
	"github.com/campusaid-inc/campusaid-api/schema"
)

type HelpRequestTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewHelpRequestTestSuite(connURI, dbName string) *HelpRequestTestSuite {
	return &HelpRequestTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *HelpRequestTestSuite) SetupSuite() {
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

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *HelpRequestTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	campusPoint := schema.NewGeoJSONPoint(schema.Location{Latitude: 40.7291, Longitude: -73.9965})

	if _, err := s.testDatabase.Collection(schema.ProfileCollection).InsertMany(ctx, []interface{}{
		schema.Profile{
			ID:            "profile-requester",
			AccountNumber: "account-requester",
			DisplayName:   "Riya",
			College:       "nyu",
			Verified:      true,
			LastLocation:  campusPoint,
		},
		schema.Profile{
			ID:            "profile-helper",
			AccountNumber: "account-helper",
			DisplayName:   "Sam",
			College:       "nyu",
			Verified:      true,
			LastLocation:  campusPoint,
		},
		schema.Profile{
			ID:            "profile-latecomer",
			AccountNumber: "account-latecomer",
			DisplayName:   "Dev",
			College:       "nyu",
			Verified:      true,
			LastLocation:  campusPoint,
		},
		schema.Profile{
			ID:            "profile-unverified",
			AccountNumber: "account-unverified",
			DisplayName:   "Ghost",
			College:       "nyu",
			Verified:      false,
			LastLocation:  campusPoint,
		},
		schema.Profile{
			ID:            "profile-no-location",
			AccountNumber: "account-no-location",
			DisplayName:   "Nowhere",
			College:       "nyu",
			Verified:      true,
		},
	}); err != nil {
		return err
	}

	return nil
}

// CleanMongoDB drop the whole test mongodb
func (s *HelpRequestTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *HelpRequestTestSuite) buildStore() CampusAidStore {
	ctl := gomock.NewController(s.T())
	geoClient := mocks.NewMockGeoInfo(ctl)
	geoClient.EXPECT().Get(gomock.Any()).Return([]maps.GeocodingResult{}, nil).AnyTimes()

	return NewCampusAidStore(s.mongoClient, s.testDBName, geoClient, nil, ProfilePolicy{})
}

func (s *HelpRequestTestSuite) mustCreateRequest(store CampusAidStore, requester string) *schema.HelpRequest {
	request, err := store.CreateHelpRequest(requester, HelpRequestParams{
		HelpType: schema.HelpTypePads,
		Urgency:  schema.UrgencyHigh,
	})
	s.Require().NoError(err)
	return request
}

func (s *HelpRequestTestSuite) TestCreateHelpRequest() {
	store := s.buildStore()

	request, err := store.CreateHelpRequest("account-requester", HelpRequestParams{
		HelpType:    schema.HelpTypeEmergency,
		Description: "library 3rd floor",
		Urgency:     schema.UrgencyHigh,
	})
	s.NoError(err)
	s.Equal(schema.HelpRequestActive, request.Status)
	s.Equal("nyu", request.College)
	s.Equal("Riya", request.RequesterName)
	s.NotNil(request.Location)
	s.WithinDuration(request.CreatedAt.Add(schema.HelpRequestTTL), request.ExpiresAt, time.Second)

	stats, err := store.GetUserStats("account-requester")
	s.NoError(err)
	s.GreaterOrEqual(stats.RequestsCreated, int64(1))
}

func (s *HelpRequestTestSuite) TestCreateHelpRequestUnverified() {
	store := s.buildStore()

	_, err := store.CreateHelpRequest("account-unverified", HelpRequestParams{
		HelpType: schema.HelpTypePads,
		Urgency:  schema.UrgencyLow,
	})
	s.EqualError(err, ErrProfileNotVerified.Error())
}

func (s *HelpRequestTestSuite) TestCreateHelpRequestWithoutLocation() {
	store := s.buildStore()

	_, err := store.CreateHelpRequest("account-no-location", HelpRequestParams{
		HelpType: schema.HelpTypePads,
		Urgency:  schema.UrgencyLow,
	})
	s.EqualError(err, ErrLocationUnavailable.Error())
}

func (s *HelpRequestTestSuite) TestCreateHelpRequestInvalidParams() {
	store := s.buildStore()

	_, err := store.CreateHelpRequest("account-requester", HelpRequestParams{
		HelpType: "snacks",
		Urgency:  schema.UrgencyLow,
	})
	s.EqualError(err, ErrInvalidHelpType.Error())

	_, err = store.CreateHelpRequest("account-requester", HelpRequestParams{
		HelpType: schema.HelpTypePads,
		Urgency:  "panic",
	})
	s.EqualError(err, ErrInvalidUrgency.Error())

	_, err = store.CreateHelpRequest("account-requester", HelpRequestParams{
		HelpType:    schema.HelpTypePads,
		Urgency:     schema.UrgencyLow,
		Description: strings.Repeat("x", schema.MaxDescriptionLength+1),
	})
	s.EqualError(err, ErrDescriptionTooLong.Error())
}

func (s *HelpRequestTestSuite) TestAcceptHelpRequest() {
	store := s.buildStore()
	request := s.mustCreateRequest(store, "account-requester")

	room, err := store.AcceptHelpRequest(request.ID, "account-helper", "omw")
	s.NoError(err)
	s.Equal(request.ID, room.RequestID)
	s.ElementsMatch([]string{"account-requester", "account-helper"}, room.Participants)
	s.True(room.IsActive)

	updated, err := store.GetHelpRequest(request.ID)
	s.NoError(err)
	s.Equal(schema.HelpRequestAccepted, updated.Status)
	s.Equal("account-helper", updated.AcceptedBy)
	s.Equal("omw", updated.HelperMessage)
	s.Equal(room.ID, updated.ChatRoomID)

	// the welcome message is already waiting in the room
	messages, err := store.ListChatMessages(room.ID)
	s.NoError(err)
	s.Require().Len(messages, 1)
	s.Equal(schema.SystemSender, messages[0].Sender)
	s.Equal(schema.SystemMessage, messages[0].MessageType)
}

func (s *HelpRequestTestSuite) TestAcceptOwnRequest() {
	store := s.buildStore()
	request := s.mustCreateRequest(store, "account-requester")

	_, err := store.AcceptHelpRequest(request.ID, "account-requester", "")
	s.EqualError(err, ErrRequestAlreadyHandled.Error())
}

func (s *HelpRequestTestSuite) TestAcceptRace() {
	store := s.buildStore()
	request := s.mustCreateRequest(store, "account-requester")

	errs := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for i, helper := range []string{"account-helper", "account-latecomer"} {
		go func(i int, helper string) {
			defer wg.Done()
			_, errs[i] = store.AcceptHelpRequest(request.ID, helper, "")
		}(i, helper)
	}
	wg.Wait()

	// exactly one of the two racing helpers may win
	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			s.EqualError(err, ErrRequestAlreadyHandled.Error())
		}
	}
	s.Equal(1, winners)
}

func (s *HelpRequestTestSuite) TestAcceptMissingRequest() {
	store := s.buildStore()

	_, err := store.AcceptHelpRequest("no-such-request", "account-helper", "")
	s.EqualError(err, ErrRequestNotFound.Error())
}

func (s *HelpRequestTestSuite) TestCancelHelpRequest() {
	store := s.buildStore()
	request := s.mustCreateRequest(store, "account-requester")

	s.NoError(store.CancelHelpRequest(request.ID, "account-requester"))

	updated, err := store.GetHelpRequest(request.ID)
	s.NoError(err)
	s.Equal(schema.HelpRequestCancelled, updated.Status)

	// a closed request cannot be claimed afterwards
	_, err = store.AcceptHelpRequest(request.ID, "account-helper", "")
	s.EqualError(err, ErrRequestAlreadyHandled.Error())
}

func (s *HelpRequestTestSuite) TestCancelByNonOwner() {
	store := s.buildStore()
	request := s.mustCreateRequest(store, "account-requester")

	err := store.CancelHelpRequest(request.ID, "account-helper")
	s.EqualError(err, ErrNotRequestOwner.Error())
}

func (s *HelpRequestTestSuite) TestCancelAcceptedRequest() {
	store := s.buildStore()
	request := s.mustCreateRequest(store, "account-requester")

	_, err := store.AcceptHelpRequest(request.ID, "account-helper", "")
	s.Require().NoError(err)

	// once a helper commits, only completion closes the request
	err = store.CancelHelpRequest(request.ID, "account-requester")
	s.EqualError(err, ErrRequestAlreadyHandled.Error())
}

func (s *HelpRequestTestSuite) TestCompleteHelpRequest() {
	store := s.buildStore()
	request := s.mustCreateRequest(store, "account-requester")

	room, err := store.AcceptHelpRequest(request.ID, "account-helper", "")
	s.Require().NoError(err)

	helperBefore, err := store.GetUserStats("account-helper")
	s.Require().NoError(err)
	requesterBefore, err := store.GetUserStats("account-requester")
	s.Require().NoError(err)

	completed, err := store.CompleteHelpRequest(request.ID, "account-requester")
	s.NoError(err)
	s.Equal(schema.HelpRequestCompleted, completed.Status)
	s.NotNil(completed.CompletedAt)

	// the chat room is deactivated as a side effect
	updatedRoom, err := store.GetChatRoom(room.ID)
	s.NoError(err)
	s.False(updatedRoom.IsActive)
	s.NotNil(updatedRoom.CompletedAt)

	helperAfter, err := store.GetUserStats("account-helper")
	s.NoError(err)
	s.Equal(helperBefore.PeopleHelped+1, helperAfter.PeopleHelped)

	requesterAfter, err := store.GetUserStats("account-requester")
	s.NoError(err)
	s.Equal(requesterBefore.RequestsCompleted+1, requesterAfter.RequestsCompleted)
}

func (s *HelpRequestTestSuite) TestCompleteUnacceptedRequest() {
	store := s.buildStore()
	request := s.mustCreateRequest(store, "account-requester")

	helperBefore, err := store.GetUserStats("account-helper")
	s.Require().NoError(err)

	completed, err := store.CompleteHelpRequest(request.ID, "account-requester")
	s.NoError(err)
	s.Equal(schema.HelpRequestCompleted, completed.Status)
	s.Empty(completed.ChatRoomID)

	// a self-resolved completion moves no helper counters
	helperAfter, err := store.GetUserStats("account-helper")
	s.NoError(err)
	s.Equal(helperBefore.PeopleHelped, helperAfter.PeopleHelped)
}

func (s *HelpRequestTestSuite) TestNearbyHelpRequests() {
	store := s.buildStore()
	request := s.mustCreateRequest(store, "account-requester")

	viewerLoc := schema.Location{Latitude: 40.7295, Longitude: -73.9960}

	requests, err := store.NearbyHelpRequests("nyu", viewerLoc, 2000)
	s.NoError(err)

	found := false
	for _, r := range requests {
		if r.ID == request.ID {
			found = true
			s.Greater(r.Dist, float64(0))
		}
	}
	s.True(found, "created request should be discoverable")

	// a different college sees nothing at the same spot
	requests, err = store.NearbyHelpRequests("columbia", viewerLoc, 2000)
	s.NoError(err)
	for _, r := range requests {
		s.NotEqual(request.ID, r.ID)
	}
}

func (s *HelpRequestTestSuite) TestExpireHelpRequests() {
	store := s.buildStore()
	request := s.mustCreateRequest(store, "account-requester")

	// force the request past its TTL
	_, err := s.testDatabase.Collection(schema.HelpRequestCollection).UpdateOne(
		context.Background(),
		bson.M{"id": request.ID},
		bson.M{"$set": bson.M{"expires_at": time.Now().UTC().Add(-time.Minute)}},
	)
	s.Require().NoError(err)

	// discovery hides it even before the sweep runs
	requests, err := store.NearbyHelpRequests("nyu", schema.Location{Latitude: 40.7291, Longitude: -73.9965}, 2000)
	s.NoError(err)
	for _, r := range requests {
		s.NotEqual(request.ID, r.ID)
	}

	expired, err := store.ExpireHelpRequests()
	s.NoError(err)
	s.GreaterOrEqual(expired, int64(1))

	updated, err := store.GetHelpRequest(request.ID)
	s.NoError(err)
	s.Equal(schema.HelpRequestExpired, updated.Status)

	_, err = store.AcceptHelpRequest(request.ID, "account-helper", "")
	s.EqualError(err, ErrRequestAlreadyHandled.Error())
}

func TestHelpRequestTestSuite(t *testing.T) {
	suite.Run(t, NewHelpRequestTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
