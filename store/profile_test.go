package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusaid-inc/campusaid-api/schema"
)

type ProfileTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewProfileTestSuite(connURI, dbName string) *ProfileTestSuite {
	return &ProfileTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ProfileTestSuite) SetupSuite() {
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
}

// CleanMongoDB drop the whole test mongodb
func (s *ProfileTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *ProfileTestSuite) buildStore(policy ProfilePolicy) CampusAidStore {
	return NewCampusAidStore(s.mongoClient, s.testDBName, nil, nil, policy)
}

func (s *ProfileTestSuite) TestCreateProfile() {
	store := s.buildStore(ProfilePolicy{})

	profile, err := store.CreateProfile("account-new", "deadbeef", "Asha", "nyu")
	s.NoError(err)
	s.Equal("Asha", profile.DisplayName)
	s.False(profile.Verified, "sign-ups start unverified")

	_, err = store.CreateProfile("account-new", "deadbeef", "Asha Again", "nyu")
	s.EqualError(err, ErrAccountTaken.Error())
}

func (s *ProfileTestSuite) TestGetOrCreateProfile() {
	store := s.buildStore(ProfilePolicy{DefaultCollege: "nyu"})

	profile, err := store.GetOrCreateProfile("account-first-touch-1234")
	s.NoError(err)
	s.Equal("Student 1234", profile.DisplayName)
	s.Equal("nyu", profile.College)
	s.False(profile.Verified, "policy default keeps first-touch profiles unverified")

	again, err := store.GetOrCreateProfile("account-first-touch-1234")
	s.NoError(err)
	s.Equal(profile.ID, again.ID)
}

func (s *ProfileTestSuite) TestUpdateProfileLocation() {
	store := s.buildStore(ProfilePolicy{})

	_, err := store.CreateProfile("account-mover", "", "Mover", "nyu")
	s.Require().NoError(err)

	loc := schema.Location{Latitude: 40.7295, Longitude: -73.9960, Accuracy: 12}
	s.NoError(store.UpdateProfileLocation("account-mover", loc))

	profile, err := store.GetProfile("account-mover")
	s.NoError(err)
	s.Require().NotNil(profile.LastLocation)
	s.Equal(loc.Latitude, profile.LastLocation.ToLocation().Latitude)
	s.Equal(float64(12), profile.LastAccuracy)

	s.EqualError(store.UpdateProfileLocation("account-missing", loc), ErrProfileNotFound.Error())
}

func (s *ProfileTestSuite) TestSetProfileVerified() {
	store := s.buildStore(ProfilePolicy{})

	_, err := store.CreateProfile("account-verify", "", "Pending", "nyu")
	s.Require().NoError(err)

	s.NoError(store.SetProfileVerified("account-verify", true))

	profile, err := store.GetProfile("account-verify")
	s.NoError(err)
	s.True(profile.Verified)
}

func (s *ProfileTestSuite) TestNearbyAccountNumbers() {
	store := s.buildStore(ProfilePolicy{})

	near := schema.Location{Latitude: 40.7291, Longitude: -73.9965}
	far := schema.Location{Latitude: 40.8075, Longitude: -73.9626}

	_, err := store.CreateProfile("account-near", "", "Near", "nyu")
	s.Require().NoError(err)
	s.Require().NoError(store.UpdateProfileLocation("account-near", near))

	_, err = store.CreateProfile("account-far", "", "Far", "nyu")
	s.Require().NoError(err)
	s.Require().NoError(store.UpdateProfileLocation("account-far", far))

	_, err = store.CreateProfile("account-other-college", "", "Other", "columbia")
	s.Require().NoError(err)
	s.Require().NoError(store.UpdateProfileLocation("account-other-college", near))

	accounts, err := store.NearbyAccountNumbers("nyu", near, 2000)
	s.NoError(err)
	s.Contains(accounts, "account-near")
	s.NotContains(accounts, "account-far", "uptown is outside the radius")
	s.NotContains(accounts, "account-other-college", "college scoping applies")
}

func TestProfileTestSuite(t *testing.T) {
	suite.Run(t, NewProfileTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db-profile"))
}
