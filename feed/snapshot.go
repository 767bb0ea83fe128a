package feed

import (
	"sort"
	"time"

	"github.com/campusaid-inc/campusaid-api/geo"
	"github.com/campusaid-inc/campusaid-api/schema"
)

// NearbyLimit caps every nearby snapshot.
const NearbyLimit = 20

// AnonymousDisplayName replaces the requester name on anonymous requests
// before a snapshot leaves the service.
const AnonymousDisplayName = "A friend"

// AssembleNearby builds the discovery snapshot a single viewer sees:
// candidate requests filtered to the exact radius by great-circle distance,
// without the viewer's own requests, without anything past expiry, newest
// first, capped at NearbyLimit. Anonymous requests are masked. Each emission
// of a nearby feed is one full snapshot produced here; consumers replace
// their view entirely.
func AssembleNearby(candidates []schema.HelpRequest, viewer string, viewerLoc schema.Location, radiusKm float64, now time.Time) []schema.HelpRequest {
	result := make([]schema.HelpRequest, 0, len(candidates))

	for _, r := range candidates {
		if r.Requester == viewer {
			continue
		}
		if r.Status != schema.HelpRequestActive || r.ExpiredAt(now) {
			continue
		}
		if r.Location == nil {
			continue
		}

		distance := geo.DistanceKm(viewerLoc, r.Location.ToLocation())
		if distance > radiusKm {
			continue
		}
		r.DistanceKm = distance

		if r.Anonymous {
			r.RequesterName = AnonymousDisplayName
		}

		result = append(result, r)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if len(result) > NearbyLimit {
		result = result[:NearbyLimit]
	}
	return result
}
