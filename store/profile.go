package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusaid-inc/campusaid-api/schema"
)

var (
	ErrProfileNotFound    = fmt.Errorf("profile not found")
	ErrAccountTaken       = fmt.Errorf("this account has been registered or has been taken")
	ErrProfileNotVerified = fmt.Errorf("the account has not completed verification")
)

// CreateProfile registers a profile record for an identity-provider issued
// account number. New sign-ups start unverified; the verification verdict
// arrives later through SetProfileVerified.
func (m *mongoDB) CreateProfile(accountNumber, authPubKey, displayName, college string) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	now := time.Now().UTC()
	p := schema.Profile{
		ID:             uuid.New().String(),
		AccountNumber:  accountNumber,
		AuthPubKey:     authPubKey,
		DisplayName:    displayName,
		College:        college,
		Verified:       false,
		LastActiveTime: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := c.InsertOne(ctx, &p); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	return &p, nil
}

// GetProfile returns the profile of a given account number.
func (m *mongoDB) GetProfile(accountNumber string) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	var p schema.Profile
	if err := c.FindOne(ctx, bson.M{"account_number": accountNumber}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetOrCreateProfile resolves a profile, creating a default record on first
// touch. The created profile's verified flag follows the configured policy
// rather than being granted silently.
func (m *mongoDB) GetOrCreateProfile(accountNumber string) (*schema.Profile, error) {
	p, err := m.GetProfile(accountNumber)
	if err == nil {
		return p, nil
	}
	if err != ErrProfileNotFound {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	suffix := accountNumber
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}

	now := time.Now().UTC()
	created := schema.Profile{
		ID:             uuid.New().String(),
		AccountNumber:  accountNumber,
		DisplayName:    "Student " + suffix,
		College:        m.policy.DefaultCollege,
		Verified:       m.policy.DefaultVerified,
		LastActiveTime: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := c.InsertOne(ctx, &created); err != nil {
		if isDuplicateKeyError(err) {
			// lost a concurrent first touch
			return m.GetProfile(accountNumber)
		}
		return nil, err
	}

	return &created, nil
}

// UpdateProfileDisplayName changes the name shown to other students.
func (m *mongoDB) UpdateProfileDisplayName(accountNumber, displayName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	result, err := c.UpdateOne(ctx, bson.M{"account_number": accountNumber}, bson.M{
		"$set": bson.M{
			"display_name": displayName,
			"updated_at":   time.Now().UTC(),
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// UpdateProfileLocation stores the latest device location fix for an
// account.
func (m *mongoDB) UpdateProfileLocation(accountNumber string, loc schema.Location) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	result, err := c.UpdateOne(ctx, bson.M{"account_number": accountNumber}, bson.M{
		"$set": bson.M{
			"last_location":    schema.NewGeoJSONPoint(loc),
			"last_accuracy":    loc.Accuracy,
			"last_active_time": time.Now().UTC(),
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// SetProfileVerified records the verdict of the external verification
// service.
func (m *mongoDB) SetProfileVerified(accountNumber string, verified bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	result, err := c.UpdateOne(ctx, bson.M{"account_number": accountNumber}, bson.M{
		"$set": bson.M{
			"verified":   verified,
			"updated_at": time.Now().UTC(),
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// NearbyAccountNumbers returns accounts of the same college whose last
// location fix is within maxDistMeter of the given location. Used for
// broadcasting a freshly created request to its likely helpers.
func (m *mongoDB) NearbyAccountNumbers(college string, loc schema.Location, maxDistMeter int) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	cursor, err := c.Aggregate(ctx, mongo.Pipeline{
		geoAggregate("last_location", maxDistMeter, loc),
		bson.D{{Key: "$match", Value: bson.M{"college": college}}},
	})
	if err != nil {
		return nil, err
	}

	accountNumbers := make([]string, 0)
	for cursor.Next(ctx) {
		var p schema.Profile
		if err := cursor.Decode(&p); err != nil {
			return nil, err
		}
		accountNumbers = append(accountNumbers, p.AccountNumber)
	}

	return accountNumbers, nil
}
