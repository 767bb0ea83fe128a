package feed

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campusaid-inc/campusaid-api/schema"
)

var snapshotViewerLoc = schema.Location{Latitude: 40.7291, Longitude: -73.9965}

func snapshotRequest(id, requester string, loc schema.Location, createdAt time.Time) schema.HelpRequest {
	return schema.HelpRequest{
		ID:            id,
		Requester:     requester,
		RequesterName: "Someone",
		Status:        schema.HelpRequestActive,
		Location:      schema.NewGeoJSONPoint(loc),
		CreatedAt:     createdAt,
		ExpiresAt:     createdAt.Add(schema.HelpRequestTTL),
	}
}

func TestAssembleNearbyRadiusCut(t *testing.T) {
	now := time.Now().UTC()

	nearby := snapshotRequest("r-near", "account-1", schema.Location{Latitude: 40.7300, Longitude: -73.9950}, now)
	// Columbia campus, roughly 9 km up Manhattan
	faraway := snapshotRequest("r-far", "account-2", schema.Location{Latitude: 40.8075, Longitude: -73.9626}, now)

	snapshot := AssembleNearby([]schema.HelpRequest{nearby, faraway}, "viewer", snapshotViewerLoc, 2, now)

	assert.Len(t, snapshot, 1)
	assert.Equal(t, "r-near", snapshot[0].ID)
	assert.Greater(t, snapshot[0].DistanceKm, float64(0))
	assert.Less(t, snapshot[0].DistanceKm, float64(2))
}

func TestAssembleNearbyExcludesOwnRequests(t *testing.T) {
	now := time.Now().UTC()

	own := snapshotRequest("r-own", "viewer", snapshotViewerLoc, now)
	other := snapshotRequest("r-other", "account-1", snapshotViewerLoc, now)

	snapshot := AssembleNearby([]schema.HelpRequest{own, other}, "viewer", snapshotViewerLoc, 2, now)

	assert.Len(t, snapshot, 1)
	assert.Equal(t, "r-other", snapshot[0].ID)
}

func TestAssembleNearbyExcludesNonActive(t *testing.T) {
	now := time.Now().UTC()

	accepted := snapshotRequest("r-accepted", "account-1", snapshotViewerLoc, now)
	accepted.Status = schema.HelpRequestAccepted

	expired := snapshotRequest("r-expired", "account-2", snapshotViewerLoc, now.Add(-25*time.Hour))

	active := snapshotRequest("r-active", "account-3", snapshotViewerLoc, now)

	snapshot := AssembleNearby([]schema.HelpRequest{accepted, expired, active}, "viewer", snapshotViewerLoc, 2, now)

	assert.Len(t, snapshot, 1)
	assert.Equal(t, "r-active", snapshot[0].ID)
}

func TestAssembleNearbyMasksAnonymousRequests(t *testing.T) {
	now := time.Now().UTC()

	anonymous := snapshotRequest("r-anon", "account-1", snapshotViewerLoc, now)
	anonymous.Anonymous = true
	anonymous.RequesterName = "Riya"

	named := snapshotRequest("r-named", "account-2", snapshotViewerLoc, now.Add(-time.Minute))

	snapshot := AssembleNearby([]schema.HelpRequest{anonymous, named}, "viewer", snapshotViewerLoc, 2, now)

	assert.Len(t, snapshot, 2)
	assert.Equal(t, AnonymousDisplayName, snapshot[0].RequesterName)
	assert.Equal(t, "Someone", snapshot[1].RequesterName)
}

func TestAssembleNearbyOrdersNewestFirst(t *testing.T) {
	now := time.Now().UTC()

	oldest := snapshotRequest("r-oldest", "account-1", snapshotViewerLoc, now.Add(-2*time.Hour))
	newest := snapshotRequest("r-newest", "account-2", snapshotViewerLoc, now)
	middle := snapshotRequest("r-middle", "account-3", snapshotViewerLoc, now.Add(-time.Hour))

	snapshot := AssembleNearby([]schema.HelpRequest{oldest, newest, middle}, "viewer", snapshotViewerLoc, 2, now)

	assert.Len(t, snapshot, 3)
	assert.Equal(t, "r-newest", snapshot[0].ID)
	assert.Equal(t, "r-middle", snapshot[1].ID)
	assert.Equal(t, "r-oldest", snapshot[2].ID)
}

func TestAssembleNearbyCapsSnapshot(t *testing.T) {
	now := time.Now().UTC()

	candidates := make([]schema.HelpRequest, 0, NearbyLimit+10)
	for i := 0; i < NearbyLimit+10; i++ {
		r := snapshotRequest(
			fmt.Sprintf("r-%02d", i),
			fmt.Sprintf("account-%02d", i),
			snapshotViewerLoc,
			now.Add(-time.Duration(i)*time.Minute),
		)
		candidates = append(candidates, r)
	}

	snapshot := AssembleNearby(candidates, "viewer", snapshotViewerLoc, 2, now)

	assert.Len(t, snapshot, NearbyLimit)
	// the cap keeps the newest entries
	assert.Equal(t, "r-00", snapshot[0].ID)
	assert.Equal(t, fmt.Sprintf("r-%02d", NearbyLimit-1), snapshot[NearbyLimit-1].ID)
}
