package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusaid-inc/campusaid-api/schema"
)

var ErrInvalidRating = fmt.Errorf("rating must be between 1 and 5")

// GetUserStats returns the counters for an account, zeroed when no
// increment has touched it yet.
func (m *mongoDB) GetUserStats(accountNumber string) (*schema.UserStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.UserStatsCollection)

	var stats schema.UserStats
	if err := c.FindOne(ctx, bson.M{"account_number": accountNumber}).Decode(&stats); err != nil {
		if err == mongo.ErrNoDocuments {
			return &schema.UserStats{AccountNumber: accountNumber}, nil
		}
		return nil, err
	}
	return &stats, nil
}

// increment applies atomic counter updates against an account's stats
// record, creating it lazily on first write.
func (m *mongoDB) increment(accountNumber string, counters bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.UserStatsCollection)

	now := time.Now().UTC()
	_, err := c.UpdateOne(ctx,
		bson.M{"account_number": accountNumber},
		bson.M{
			"$inc":         counters,
			"$set":         bson.M{"last_updated": now},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return err
	}

	m.publish(TopicUserStats(accountNumber))
	return nil
}

// IncrementRequestsCreated counts a newly opened help request.
func (m *mongoDB) IncrementRequestsCreated(accountNumber string) error {
	return m.increment(accountNumber, bson.M{"requests_created": 1})
}

// IncrementTimesHelped counts an acceptance for the helper.
func (m *mongoDB) IncrementTimesHelped(accountNumber string) error {
	return m.increment(accountNumber, bson.M{"times_helped": 1})
}

// IncrementHelpCompleted moves both sides' counters for a helped
// completion: people_helped for the helper, requests_completed for the
// requester.
func (m *mongoDB) IncrementHelpCompleted(helper, requester string) error {
	if err := m.increment(helper, bson.M{"people_helped": 1}); err != nil {
		return err
	}
	return m.increment(requester, bson.M{"requests_completed": 1})
}

// AddRating records a 1..5 community rating for an account.
func (m *mongoDB) AddRating(accountNumber string, rating int64) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	return m.increment(accountNumber, bson.M{
		"rating_sum":    rating,
		"total_ratings": 1,
	})
}
