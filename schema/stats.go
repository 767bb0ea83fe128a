package schema

import (
	"time"
)

const (
	UserStatsCollection = "userStats"
)

// UserStats holds the monotonic per-user counters derived from lifecycle
// transitions. Records are created lazily by the first increment and are
// only ever mutated through atomic increments; a retried increment
// double-counts, so callers fire each one at most once per logical event.
type UserStats struct {
	AccountNumber     string    `bson:"account_number" json:"account_number"`
	PeopleHelped      int64     `bson:"people_helped" json:"people_helped"`
	TimesHelped       int64     `bson:"times_helped" json:"times_helped"`
	RequestsCreated   int64     `bson:"requests_created" json:"requests_created"`
	RequestsCompleted int64     `bson:"requests_completed" json:"requests_completed"`
	RatingSum         int64     `bson:"rating_sum" json:"-"`
	TotalRatings      int64     `bson:"total_ratings" json:"total_ratings"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	LastUpdated       time.Time `bson:"last_updated" json:"last_updated"`
}

// CommunityRating is the derived average rating in [0,5], 0 when unrated.
func (s UserStats) CommunityRating() float64 {
	if s.TotalRatings == 0 {
		return 0
	}
	return float64(s.RatingSum) / float64(s.TotalRatings)
}
