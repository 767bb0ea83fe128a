package schema

import (
	"time"
)

const (
	ProfileCollection = "profiles"
)

// Profile is the per-user record the lifecycle engine reads and writes.
// The account number is assigned by the identity provider; the auth public
// key is an ed25519 key registered at sign-up and used to verify auth
// challenges.
type Profile struct {
	ID             string    `bson:"id" json:"id"`
	AccountNumber  string    `bson:"account_number" json:"account_number"`
	AuthPubKey     string    `bson:"auth_pub_key,omitempty" json:"-"`
	DisplayName    string    `bson:"display_name" json:"display_name"`
	College        string    `bson:"college" json:"college"`
	Verified       bool      `bson:"verified" json:"verified"`
	LastLocation   *GeoJSON  `bson:"last_location,omitempty" json:"last_location,omitempty"`
	LastAccuracy   float64   `bson:"last_accuracy,omitempty" json:"last_accuracy,omitempty"`
	LastActiveTime time.Time `bson:"last_active_time" json:"last_active_time"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}
