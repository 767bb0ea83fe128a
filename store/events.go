package store

import (
	log "github.com/sirupsen/logrus"
)

// EventPublisher receives a topic name whenever a collection a live feed may
// be watching has changed. Publishing is best effort: a failed publish is
// logged and never fails the triggering write.
type EventPublisher interface {
	Publish(topic string) error
}

// TopicHelpRequests is the change topic for a college's discoverable
// requests.
func TopicHelpRequests(college string) string {
	return "help-requests:" + college
}

// TopicChatRoom is the change topic for a single room's messages and state.
func TopicChatRoom(roomID string) string {
	return "chat-room:" + roomID
}

// TopicUserRooms is the change topic for the set of active rooms an account
// participates in.
func TopicUserRooms(accountNumber string) string {
	return "user-rooms:" + accountNumber
}

// TopicUserStats is the change topic for an account's stats counters.
func TopicUserStats(accountNumber string) string {
	return "user-stats:" + accountNumber
}

func (m *mongoDB) publish(topics ...string) {
	if m.events == nil {
		return
	}
	for _, topic := range topics {
		if err := m.events.Publish(topic); err != nil {
			log.WithFields(log.Fields{
				"prefix": mongoLogPrefix,
				"topic":  topic,
			}).WithError(err).Warn("publish change event")
		}
	}
}
