package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusaid-inc/campusaid-api/external/geoinfo"
	"github.com/campusaid-inc/campusaid-api/schema"
)

var (
	ErrRequestNotFound       = fmt.Errorf("the request does not exist")
	ErrRequestAlreadyHandled = fmt.Errorf("the request is either closed or not open for you")
	ErrNotRequestOwner       = fmt.Errorf("only the requester may close this request")
	ErrLocationUnavailable   = fmt.Errorf("no location fix is available for this account")
	ErrDescriptionTooLong    = fmt.Errorf("description exceeds the maximum length")
	ErrInvalidHelpType       = fmt.Errorf("unknown help type")
	ErrInvalidUrgency        = fmt.Errorf("unknown urgency level")
	ErrChatCreationFailed    = fmt.Errorf("chat room could not be created for the accepted request")
)

// HelpRequestParams is the requester-supplied part of a new help request.
type HelpRequestParams struct {
	HelpType    schema.HelpType `json:"help_type"`
	Description string          `json:"description"`
	Urgency     schema.Urgency  `json:"urgency"`
	Anonymous   bool            `json:"anonymous"`
}

func (p HelpRequestParams) validate() error {
	if !p.HelpType.Valid() {
		return ErrInvalidHelpType
	}
	if !p.Urgency.Valid() {
		return ErrInvalidUrgency
	}
	if len(p.Description) > schema.MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

// CreateHelpRequest opens a new help request for a verified account. The
// request location is the account's latest device fix; without one the
// request cannot be matched to nearby helpers and creation fails.
func (m *mongoDB) CreateHelpRequest(accountNumber string, params HelpRequestParams) (*schema.HelpRequest, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	profile, err := m.GetOrCreateProfile(accountNumber)
	if err != nil {
		return nil, err
	}
	if !profile.Verified {
		return nil, ErrProfileNotVerified
	}
	if profile.LastLocation == nil {
		return nil, ErrLocationUnavailable
	}

	now := time.Now().UTC()
	request := schema.HelpRequest{
		ID:            uuid.New().String(),
		Requester:     accountNumber,
		RequesterName: profile.DisplayName,
		College:       profile.College,
		HelpType:      params.HelpType,
		Description:   params.Description,
		Urgency:       params.Urgency,
		Anonymous:     params.Anonymous,
		Location:      profile.LastLocation,
		Accuracy:      profile.LastAccuracy,
		Status:        schema.HelpRequestActive,
		CreatedAt:     now,
		ExpiresAt:     now.Add(schema.HelpRequestTTL),
	}

	if m.geoClient != nil {
		if results, err := m.geoClient.Get(profile.LastLocation.ToLocation()); err == nil {
			request.AreaName = geoinfo.AreaName(results)
		} else {
			log.WithField("prefix", mongoLogPrefix).WithError(err).Warn("resolve request area name")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	if _, err := c.InsertOne(ctx, &request); err != nil {
		return nil, err
	}

	if err := m.IncrementRequestsCreated(accountNumber); err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Warn("increment requests created")
	}

	m.publish(TopicHelpRequests(request.College))

	return &request, nil
}

// GetHelpRequest returns a help request by id.
func (m *mongoDB) GetHelpRequest(id string) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	var request schema.HelpRequest
	if err := c.FindOne(ctx, bson.M{"id": id}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

// ListAccountHelpRequests returns all requests an account has created,
// newest first.
func (m *mongoDB) ListAccountHelpRequests(accountNumber string) ([]schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	cursor, err := c.Find(ctx, bson.M{"requester": accountNumber},
		options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}

	requests := make([]schema.HelpRequest, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// NearbyHelpRequests returns discoverable requests of a college around a
// location: still active, not past expiry, within maxDistMeter. The caller
// filters to its exact radius and drops its own requests when assembling a
// snapshot.
func (m *mongoDB) NearbyHelpRequests(college string, loc schema.Location, maxDistMeter int) ([]schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	cursor, err := c.Aggregate(ctx, mongo.Pipeline{
		geoAggregate("location", maxDistMeter, loc),
		bson.D{{Key: "$match", Value: bson.M{
			"college":    college,
			"status":     schema.HelpRequestActive,
			"expires_at": bson.M{"$gt": time.Now().UTC()},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"created_at": -1}}},
	})
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("nearby help requests query")
		return nil, err
	}

	requests := make([]schema.HelpRequest, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// AcceptHelpRequest binds a helper to an active request and spawns its chat
// room. The status transition is a single conditional update so that two
// helpers racing for the same request cannot both win; the loser sees
// ErrRequestAlreadyHandled. If the chat room cannot be created the
// transition is rolled back: an accepted request without a chat room must
// never be left behind.
func (m *mongoDB) AcceptHelpRequest(id, helper, message string) (*schema.ChatRoom, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	now := time.Now().UTC()
	var request schema.HelpRequest
	err := c.FindOneAndUpdate(ctx,
		bson.M{
			"id":         id,
			"status":     schema.HelpRequestActive,
			"expires_at": bson.M{"$gt": now},
			"requester":  bson.M{"$ne": helper},
		},
		bson.M{"$set": bson.M{
			"status":         schema.HelpRequestAccepted,
			"accepted_by":    helper,
			"accepted_at":    now,
			"helper_message": message,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			if _, getErr := m.GetHelpRequest(id); getErr == ErrRequestNotFound {
				return nil, ErrRequestNotFound
			}
			return nil, ErrRequestAlreadyHandled
		}
		return nil, err
	}

	room, err := m.CreateChatRoom(request.ID, request.Requester, helper)
	if err != nil {
		m.rollbackAccept(request.ID, helper)
		return nil, ErrChatCreationFailed
	}

	if _, err := c.UpdateOne(ctx, bson.M{"id": request.ID}, bson.M{
		"$set": bson.M{"chat_room_id": room.ID},
	}); err != nil {
		log.WithFields(log.Fields{
			"prefix":  mongoLogPrefix,
			"request": request.ID,
			"room":    room.ID,
		}).WithError(err).Error("attach chat room to request")
	}

	if err := m.IncrementTimesHelped(helper); err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Warn("increment times helped")
	}

	m.publish(
		TopicHelpRequests(request.College),
		TopicUserRooms(request.Requester),
		TopicUserRooms(helper),
	)

	return room, nil
}

// rollbackAccept reverts an accept transition after a failed chat creation.
// The reverse update is guarded on the helper so it can never undo a
// different helper's later state.
func (m *mongoDB) rollbackAccept(id, helper string) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	if _, err := c.UpdateOne(ctx,
		bson.M{
			"id":          id,
			"status":      schema.HelpRequestAccepted,
			"accepted_by": helper,
		},
		bson.M{
			"$set": bson.M{"status": schema.HelpRequestActive},
			"$unset": bson.M{
				"accepted_by":    "",
				"accepted_at":    "",
				"helper_message": "",
			},
		},
	); err != nil {
		log.WithFields(log.Fields{
			"prefix":  mongoLogPrefix,
			"request": id,
			"helper":  helper,
		}).WithError(err).Error("roll back accepted request")
	}
}

// CancelHelpRequest closes an active request before anyone commits to it.
// Only the requester may cancel, and an accepted request can no longer be
// cancelled: once a helper commits, only completion closes it.
func (m *mongoDB) CancelHelpRequest(id, actor string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	now := time.Now().UTC()
	var request schema.HelpRequest
	err := c.FindOneAndUpdate(ctx,
		bson.M{
			"id":        id,
			"requester": actor,
			"status":    schema.HelpRequestActive,
		},
		bson.M{"$set": bson.M{
			"status":       schema.HelpRequestCancelled,
			"cancelled_at": now,
			"cancelled_by": actor,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return m.classifyOwnerTransitionFailure(id, actor)
		}
		return err
	}

	m.publish(TopicHelpRequests(request.College))
	return nil
}

// CompleteHelpRequest closes a request as fulfilled. Permitted from active
// (self-resolved) or accepted; only the requester may complete. When the
// request was actually helped, both sides' counters move; the dependent chat
// room is deactivated as a side effect.
func (m *mongoDB) CompleteHelpRequest(id, actor string) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	now := time.Now().UTC()
	var request schema.HelpRequest
	err := c.FindOneAndUpdate(ctx,
		bson.M{
			"id":        id,
			"requester": actor,
			"status": bson.M{"$in": bson.A{
				schema.HelpRequestActive,
				schema.HelpRequestAccepted,
			}},
		},
		bson.M{"$set": bson.M{
			"status":       schema.HelpRequestCompleted,
			"completed_at": now,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, m.classifyOwnerTransitionFailure(id, actor)
		}
		return nil, err
	}

	if request.ChatRoomID != "" {
		if err := m.CompleteChatRoom(request.ChatRoomID, actor); err != nil {
			log.WithFields(log.Fields{
				"prefix": mongoLogPrefix,
				"room":   request.ChatRoomID,
			}).WithError(err).Error("deactivate chat room on completion")
		}
	}

	// a self-resolved completion moves no counters
	if request.AcceptedBy != "" {
		if err := m.IncrementHelpCompleted(request.AcceptedBy, request.Requester); err != nil {
			log.WithField("prefix", mongoLogPrefix).WithError(err).Warn("increment completion stats")
		}
	}

	m.publish(TopicHelpRequests(request.College))
	return &request, nil
}

// classifyOwnerTransitionFailure turns a missed conditional update on a
// requester-owned transition into the precise error.
func (m *mongoDB) classifyOwnerTransitionFailure(id, actor string) error {
	request, err := m.GetHelpRequest(id)
	if err != nil {
		return err
	}
	if request.Requester != actor {
		return ErrNotRequestOwner
	}
	return ErrRequestAlreadyHandled
}

// ExpireHelpRequests persists the expired status for active requests past
// their TTL. Discovery already hides them; the sweep keeps the stored state
// honest. Returns the number of requests expired.
func (m *mongoDB) ExpireHelpRequests() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	now := time.Now().UTC()

	colleges, err := c.Distinct(ctx, "college", bson.M{
		"status":     schema.HelpRequestActive,
		"expires_at": bson.M{"$lte": now},
	})
	if err != nil {
		return 0, err
	}

	result, err := c.UpdateMany(ctx,
		bson.M{
			"status":     schema.HelpRequestActive,
			"expires_at": bson.M{"$lte": now},
		},
		bson.M{"$set": bson.M{"status": schema.HelpRequestExpired}},
	)
	if err != nil {
		return 0, err
	}

	for _, college := range colleges {
		if name, ok := college.(string); ok {
			m.publish(TopicHelpRequests(name))
		}
	}

	return result.ModifiedCount, nil
}

func geoAggregate(key string, maxDist int, loc schema.Location) bson.D {
	return bson.D{{Key: "$geoNear", Value: bson.M{
		"near":          bson.M{"type": "Point", "coordinates": bson.A{loc.Longitude, loc.Latitude}},
		"distanceField": "dist",
		"key":           key,
		"spherical":     true,
		"maxDistance":   maxDist,
	}}}
}
