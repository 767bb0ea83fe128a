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

	"github.com/campusaid-inc/campusaid-api/schema"
)

var (
	ErrChatRoomNotFound   = fmt.Errorf("chat room not found")
	ErrChatRoomClosed     = fmt.Errorf("chat room is no longer active")
	ErrNotChatParticipant = fmt.Errorf("sender is not a participant of this chat room")
	ErrEmptyMessage       = fmt.Errorf("message text is empty")
)

// CreateChatRoom creates the two-party room for an accepted request and
// injects the welcome message. The unique index on request_id makes the
// operation safe against a retried accept: the existing room is returned
// instead of a duplicate.
func (m *mongoDB) CreateChatRoom(requestID, requester, helper string) (*schema.ChatRoom, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.ChatRoomCollection)

	now := time.Now().UTC()
	room := schema.ChatRoom{
		ID:            uuid.New().String(),
		RequestID:     requestID,
		Requester:     requester,
		Helper:        helper,
		Participants:  []string{requester, helper},
		CreatedAt:     now,
		LastMessageAt: now,
		IsActive:      true,
	}

	if _, err := c.InsertOne(ctx, &room); err != nil {
		if isDuplicateKeyError(err) {
			var existing schema.ChatRoom
			if err := c.FindOne(ctx, bson.M{"request_id": requestID}).Decode(&existing); err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, err
	}

	if _, err := m.AddChatMessage(room.ID, schema.SystemSender, schema.ChatWelcomeText, schema.SystemMessage); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"room":   room.ID,
		}).WithError(err).Error("append welcome message")
	}

	return &room, nil
}

// GetChatRoom returns a chat room by id.
func (m *mongoDB) GetChatRoom(id string) (*schema.ChatRoom, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.ChatRoomCollection)

	var room schema.ChatRoom
	if err := c.FindOne(ctx, bson.M{"id": id}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrChatRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// AddChatMessage appends a message to a room and bumps its last activity
// time. User senders must be participants of an active room; system
// messages bypass both checks so completion notices can still land.
func (m *mongoDB) AddChatMessage(roomID, sender, text string, messageType schema.MessageType) (*schema.ChatMessage, error) {
	if text == "" {
		return nil, ErrEmptyMessage
	}

	room, err := m.GetChatRoom(roomID)
	if err != nil {
		return nil, err
	}

	if sender != schema.SystemSender {
		if !room.HasParticipant(sender) {
			return nil, ErrNotChatParticipant
		}
		if !room.IsActive {
			return nil, ErrChatRoomClosed
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	db := m.client.Database(m.database)

	now := time.Now().UTC()
	message := schema.ChatMessage{
		ID:          uuid.New().String(),
		ChatRoomID:  roomID,
		Sender:      sender,
		Text:        text,
		MessageType: messageType,
		CreatedAt:   now,
	}

	if _, err := db.Collection(schema.ChatMessageCollection).InsertOne(ctx, &message); err != nil {
		return nil, err
	}

	if _, err := db.Collection(schema.ChatRoomCollection).UpdateOne(ctx,
		bson.M{"id": roomID},
		bson.M{"$set": bson.M{"last_message_at": now}},
	); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"room":   roomID,
		}).WithError(err).Warn("bump last message time")
	}

	m.publish(
		TopicChatRoom(roomID),
		TopicUserRooms(room.Requester),
		TopicUserRooms(room.Helper),
	)

	return &message, nil
}

// ListChatMessages returns all messages of a room in creation order.
func (m *mongoDB) ListChatMessages(roomID string) ([]schema.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.ChatMessageCollection)

	cursor, err := c.Find(ctx, bson.M{"chat_room_id": roomID},
		options.Find().SetSort(bson.M{"created_at": 1}))
	if err != nil {
		return nil, err
	}

	messages := make([]schema.ChatMessage, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// ListActiveChatRooms returns the active rooms an account participates in,
// most recently active first.
func (m *mongoDB) ListActiveChatRooms(accountNumber string) ([]schema.ChatRoom, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.ChatRoomCollection)

	cursor, err := c.Find(ctx,
		bson.M{
			"participants": accountNumber,
			"is_active":    true,
		},
		options.Find().SetSort(bson.M{"last_message_at": -1}))
	if err != nil {
		return nil, err
	}

	rooms := make([]schema.ChatRoom, 0)
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// CompleteChatRoom deactivates a room and appends the closing notice. The
// transition is conditional on is_active so it happens exactly once; a
// second completion is a no-op.
func (m *mongoDB) CompleteChatRoom(roomID, completedBy string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.ChatRoomCollection)

	now := time.Now().UTC()
	var room schema.ChatRoom
	err := c.FindOneAndUpdate(ctx,
		bson.M{"id": roomID, "is_active": true},
		bson.M{"$set": bson.M{
			"is_active":    false,
			"completed_at": now,
			"completed_by": completedBy,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&room)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			if _, getErr := m.GetChatRoom(roomID); getErr != nil {
				return getErr
			}
			// already completed
			return nil
		}
		return err
	}

	if _, err := m.AddChatMessage(roomID, schema.SystemSender, schema.ChatClosingText, schema.CompletionMessage); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"room":   roomID,
		}).WithError(err).Error("append completion message")
	}

	m.publish(
		TopicChatRoom(roomID),
		TopicUserRooms(room.Requester),
		TopicUserRooms(room.Helper),
	)

	return nil
}

// PurgeChatRoom deletes a room together with every message it holds. This
// is the privacy teardown that runs after the grace period; purging a room
// that is already gone is not an error.
func (m *mongoDB) PurgeChatRoom(roomID string) error {
	room, err := m.GetChatRoom(roomID)
	if err != nil {
		if err == ErrChatRoomNotFound {
			return nil
		}
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	db := m.client.Database(m.database)

	if _, err := db.Collection(schema.ChatMessageCollection).DeleteMany(ctx, bson.M{
		"chat_room_id": roomID,
	}); err != nil {
		return err
	}

	if _, err := db.Collection(schema.ChatRoomCollection).DeleteOne(ctx, bson.M{
		"id": roomID,
	}); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix": mongoLogPrefix,
		"room":   roomID,
	}).Info("purged chat room")

	m.publish(
		TopicChatRoom(roomID),
		TopicUserRooms(room.Requester),
		TopicUserRooms(room.Helper),
	)

	return nil
}

// ListPurgeableChatRooms finds completed rooms whose grace period elapsed
// before the given instant but which are still present, so the housekeeping
// sweep can retry teardowns that were lost.
func (m *mongoDB) ListPurgeableChatRooms(completedBefore time.Time) ([]schema.ChatRoom, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.ChatRoomCollection)

	cursor, err := c.Find(ctx, bson.M{
		"is_active":    false,
		"completed_at": bson.M{"$lte": completedBefore},
	})
	if err != nil {
		return nil, err
	}

	rooms := make([]schema.ChatRoom, 0)
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}
