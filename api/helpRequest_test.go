package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/campusaid-inc/campusaid-api/api/mocks"
	"github.com/campusaid-inc/campusaid-api/schema"
	"github.com/campusaid-inc/campusaid-api/store"
)

func testProfile() *schema.Profile {
	return &schema.Profile{
		ID:            "profile-1",
		AccountNumber: "account-viewer",
		DisplayName:   "Viewer",
		College:       "nyu",
		Verified:      true,
		LastLocation:  schema.NewGeoJSONPoint(schema.Location{Latitude: 40.7291, Longitude: -73.9965}),
	}
}

func TestNearbyRequests(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCampusAidStore(ctl)

	s := Server{
		store: m,
	}

	m.EXPECT().GetProfile(gomock.Any()).Return(testProfile(), nil).Times(1)

	now := time.Now().UTC()
	m.EXPECT().NearbyHelpRequests("nyu", gomock.Any(), 2050).Return([]schema.HelpRequest{
		{
			ID:            "request-anon",
			Requester:     "account-someone",
			RequesterName: "Riya",
			Anonymous:     true,
			Status:        schema.HelpRequestActive,
			Location:      schema.NewGeoJSONPoint(schema.Location{Latitude: 40.7300, Longitude: -73.9950}),
			CreatedAt:     now,
			ExpiresAt:     now.Add(schema.HelpRequestTTL),
		},
		{
			ID:        "request-own",
			Requester: "account-viewer",
			Status:    schema.HelpRequestActive,
			Location:  schema.NewGeoJSONPoint(schema.Location{Latitude: 40.7300, Longitude: -73.9950}),
			CreatedAt: now,
			ExpiresAt: now.Add(schema.HelpRequestTTL),
		},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("requester", "account-viewer") })
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/", s.nearbyRequests)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Requests []schema.HelpRequest `json:"requests"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp.Requests, 1, "own request filtered out")
	assert.Equal(t, "request-anon", jResp.Requests[0].ID)
	assert.Equal(t, "A friend", jResp.Requests[0].RequesterName, "anonymous requester masked")
}

func TestNearbyRequestsCustomRadius(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCampusAidStore(ctl)

	s := Server{
		store: m,
	}

	m.EXPECT().GetProfile(gomock.Any()).Return(testProfile(), nil).Times(1)
	m.EXPECT().NearbyHelpRequests("nyu", gomock.Any(), 5050).Return([]schema.HelpRequest{}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("requester", "account-viewer") })
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/", s.nearbyRequests)

	req := httptest.NewRequest("GET", "/?radius=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestNearbyRequestsWithoutLocation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCampusAidStore(ctl)

	s := Server{
		store: m,
	}

	profile := testProfile()
	profile.LastLocation = nil
	m.EXPECT().GetProfile(gomock.Any()).Return(profile, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("requester", "account-viewer") })
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/", s.nearbyRequests)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorLocationUnavailable.Code, jResp.Code)
}

func TestRequestDetailNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCampusAidStore(ctl)

	s := Server{
		store: m,
	}

	m.EXPECT().GetProfile(gomock.Any()).Return(testProfile(), nil).Times(1)
	m.EXPECT().GetHelpRequest("missing").Return(nil, store.ErrRequestNotFound).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("requester", "account-viewer") })
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/:requestID", s.requestDetail)

	req := httptest.NewRequest("GET", "/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorRequestNotFound.Code, jResp.Code)
}

func TestCancelRequestAlreadyHandled(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCampusAidStore(ctl)

	s := Server{
		store: m,
	}

	m.EXPECT().GetProfile(gomock.Any()).Return(testProfile(), nil).Times(1)
	m.EXPECT().CancelHelpRequest("request-1", gomock.Any()).Return(store.ErrRequestAlreadyHandled).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("requester", "account-viewer") })
	router.Use(s.recognizeAccountMiddleware())
	router.PATCH("/:requestID/cancel", s.cancelRequest)

	req := httptest.NewRequest("PATCH", "/request-1/cancel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorRequestAlreadyHandled.Code, jResp.Code)
}

func TestCompleteRequestWithoutChatRoom(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCampusAidStore(ctl)

	s := Server{
		store: m,
	}

	now := time.Now().UTC()
	m.EXPECT().GetProfile(gomock.Any()).Return(testProfile(), nil).Times(1)
	m.EXPECT().CompleteHelpRequest("request-1", gomock.Any()).Return(&schema.HelpRequest{
		ID:          "request-1",
		Requester:   "account-viewer",
		Status:      schema.HelpRequestCompleted,
		CompletedAt: &now,
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("requester", "account-viewer") })
	router.Use(s.recognizeAccountMiddleware())
	router.PATCH("/:requestID/complete", s.completeRequest)

	req := httptest.NewRequest("PATCH", "/request-1/complete", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}
