package schema

import (
	"time"
)

const (
	HelpRequestCollection = "helpRequests"
)

// HelpRequestTTL is how long a request stays discoverable before it is
// treated as expired, whether or not the expiry sweep has run yet.
const HelpRequestTTL = 24 * time.Hour

// MaxDescriptionLength caps the free-form description of a help request.
const MaxDescriptionLength = 500

type HelpType string

const (
	HelpTypePads      HelpType = "pads"
	HelpTypeTampons   HelpType = "tampons"
	HelpTypeEmergency HelpType = "emergency"
	HelpTypeSafety    HelpType = "safety"
	HelpTypeOther     HelpType = "other"
)

func (t HelpType) Valid() bool {
	switch t {
	case HelpTypePads, HelpTypeTampons, HelpTypeEmergency, HelpTypeSafety, HelpTypeOther:
		return true
	}
	return false
}

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

type HelpRequestStatus string

const (
	HelpRequestActive    HelpRequestStatus = "active"
	HelpRequestAccepted  HelpRequestStatus = "accepted"
	HelpRequestCompleted HelpRequestStatus = "completed"
	HelpRequestCancelled HelpRequestStatus = "cancelled"
	HelpRequestExpired   HelpRequestStatus = "expired"
)

// Terminal reports whether no further transition is permitted out of s.
func (s HelpRequestStatus) Terminal() bool {
	switch s {
	case HelpRequestCompleted, HelpRequestCancelled, HelpRequestExpired:
		return true
	}
	return false
}

// HelpRequest is a time-bound ask for assistance, scoped to a college.
//
// Exactly one status holds at any time. AcceptedBy is set iff the request
// went through an acceptance, and ChatRoomID is set iff a chat room was
// spawned for that acceptance.
type HelpRequest struct {
	ID            string            `bson:"id" json:"id"`
	Requester     string            `bson:"requester" json:"requester"`
	RequesterName string            `bson:"requester_name" json:"requester_name"`
	College       string            `bson:"college" json:"college"`
	HelpType      HelpType          `bson:"help_type" json:"help_type"`
	Description   string            `bson:"description,omitempty" json:"description,omitempty"`
	Urgency       Urgency           `bson:"urgency" json:"urgency"`
	Anonymous     bool              `bson:"anonymous" json:"anonymous"`
	Location      *GeoJSON          `bson:"location" json:"location"`
	Accuracy      float64           `bson:"accuracy,omitempty" json:"accuracy,omitempty"`
	AreaName      string            `bson:"area_name,omitempty" json:"area_name,omitempty"`
	Status        HelpRequestStatus `bson:"status" json:"status"`
	CreatedAt     time.Time         `bson:"created_at" json:"created_at"`
	ExpiresAt     time.Time         `bson:"expires_at" json:"expires_at"`
	AcceptedBy    string            `bson:"accepted_by,omitempty" json:"accepted_by,omitempty"`
	AcceptedAt    *time.Time        `bson:"accepted_at,omitempty" json:"accepted_at,omitempty"`
	HelperMessage string            `bson:"helper_message,omitempty" json:"helper_message,omitempty"`
	ChatRoomID    string            `bson:"chat_room_id,omitempty" json:"chat_room_id,omitempty"`
	CancelledAt   *time.Time        `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
	CancelledBy   string            `bson:"cancelled_by,omitempty" json:"cancelled_by,omitempty"`
	CompletedAt   *time.Time        `bson:"completed_at,omitempty" json:"completed_at,omitempty"`

	// Dist is populated by $geoNear queries, in meters from the caller.
	Dist float64 `bson:"dist,omitempty" json:"-"`

	// DistanceKm is the precise haversine distance computed when a nearby
	// snapshot is assembled. Never stored.
	DistanceKm float64 `bson:"-" json:"distance_km,omitempty"`
}

// ExpiredAt reports whether the request should be treated as expired at the
// given instant, even if the expiry sweep has not persisted the status yet.
func (r HelpRequest) ExpiredAt(now time.Time) bool {
	return r.Status == HelpRequestActive && now.After(r.ExpiresAt)
}
