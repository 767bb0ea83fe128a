package store

import (
	"time"

	"github.com/campusaid-inc/campusaid-api/schema"
)

// CampusAidStore is the main datastore of the campusaid service.
type CampusAidStore interface {
	ProfileStore
	HelpRequestStore
	ChatStore
	StatsStore
	Pinger
	Closer
}

// ProfileStore holds the per-user records the lifecycle engine depends on.
type ProfileStore interface {
	CreateProfile(accountNumber, authPubKey, displayName, college string) (*schema.Profile, error)
	GetProfile(accountNumber string) (*schema.Profile, error)
	GetOrCreateProfile(accountNumber string) (*schema.Profile, error)
	UpdateProfileDisplayName(accountNumber, displayName string) error
	UpdateProfileLocation(accountNumber string, loc schema.Location) error
	SetProfileVerified(accountNumber string, verified bool) error
	NearbyAccountNumbers(college string, loc schema.Location, maxDistMeter int) ([]string, error)
}

// HelpRequestStore owns the help request state machine.
type HelpRequestStore interface {
	CreateHelpRequest(accountNumber string, params HelpRequestParams) (*schema.HelpRequest, error)
	GetHelpRequest(id string) (*schema.HelpRequest, error)
	ListAccountHelpRequests(accountNumber string) ([]schema.HelpRequest, error)
	NearbyHelpRequests(college string, loc schema.Location, maxDistMeter int) ([]schema.HelpRequest, error)
	AcceptHelpRequest(id, helper, message string) (*schema.ChatRoom, error)
	CancelHelpRequest(id, actor string) error
	CompleteHelpRequest(id, actor string) (*schema.HelpRequest, error)
	ExpireHelpRequests() (int64, error)
}

// ChatStore owns chat rooms and their messages.
type ChatStore interface {
	CreateChatRoom(requestID, requester, helper string) (*schema.ChatRoom, error)
	GetChatRoom(id string) (*schema.ChatRoom, error)
	AddChatMessage(roomID, sender, text string, messageType schema.MessageType) (*schema.ChatMessage, error)
	ListChatMessages(roomID string) ([]schema.ChatMessage, error)
	ListActiveChatRooms(accountNumber string) ([]schema.ChatRoom, error)
	CompleteChatRoom(roomID, completedBy string) error
	PurgeChatRoom(roomID string) error
	ListPurgeableChatRooms(completedBefore time.Time) ([]schema.ChatRoom, error)
}

// StatsStore maintains the monotonic per-user counters. Increments are
// atomic but not idempotent; each one is fired at most once per logical
// lifecycle event.
type StatsStore interface {
	GetUserStats(accountNumber string) (*schema.UserStats, error)
	IncrementRequestsCreated(accountNumber string) error
	IncrementTimesHelped(accountNumber string) error
	IncrementHelpCompleted(helper, requester string) error
	AddRating(accountNumber string, rating int64) error
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}
