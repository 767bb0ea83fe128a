package schema

import (
	"time"
)

const (
	ChatRoomCollection    = "chatRooms"
	ChatMessageCollection = "chatMessages"
)

// ChatPurgeGracePeriod is how long a completed chat room stays readable
// before the room and all of its messages are deleted. The mobile app
// historically shipped with both 24h and 5m; 5 minutes is the documented
// choice since the privacy promise shown to users depends on it.
const ChatPurgeGracePeriod = 5 * time.Minute

// SystemSender is the sentinel sender id for messages injected by the
// service itself.
const SystemSender = "system"

type MessageType string

const (
	TextMessage       MessageType = "text"
	SystemMessage     MessageType = "system"
	CompletionMessage MessageType = "completion"
)

const (
	ChatWelcomeText = "Private chat created! Please coordinate a safe meeting spot. This chat auto-deletes for privacy."
	ChatClosingText = "Request marked as completed! This chat stays open for a few minutes, then auto-deletes for privacy."
)

// ChatRoom is an ephemeral two-party channel tied 1:1 to an accepted help
// request. The participant set is immutable after creation and IsActive
// transitions true to false exactly once.
type ChatRoom struct {
	ID            string     `bson:"id" json:"id"`
	RequestID     string     `bson:"request_id" json:"request_id"`
	Requester     string     `bson:"requester" json:"requester"`
	Helper        string     `bson:"helper" json:"helper"`
	Participants  []string   `bson:"participants" json:"participants"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
	LastMessageAt time.Time  `bson:"last_message_at" json:"last_message_at"`
	IsActive      bool       `bson:"is_active" json:"is_active"`
	CompletedAt   *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	CompletedBy   string     `bson:"completed_by,omitempty" json:"completed_by,omitempty"`
}

// HasParticipant reports whether the account is one of the two participants.
func (r ChatRoom) HasParticipant(accountNumber string) bool {
	for _, p := range r.Participants {
		if p == accountNumber {
			return true
		}
	}
	return false
}

// OtherParticipant returns the participant that is not the given account.
func (r ChatRoom) OtherParticipant(accountNumber string) string {
	if accountNumber == r.Requester {
		return r.Helper
	}
	return r.Requester
}

// ChatMessage is immutable once created and belongs to exactly one room.
type ChatMessage struct {
	ID          string      `bson:"id" json:"id"`
	ChatRoomID  string      `bson:"chat_room_id" json:"chat_room_id"`
	Sender      string      `bson:"sender" json:"sender"`
	Text        string      `bson:"text" json:"text"`
	MessageType MessageType `bson:"message_type" json:"message_type"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
}
