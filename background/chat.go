package background

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/campusaid-inc/campusaid-api/schema"
)

// PurgeChatRoom is a background job to delete a completed chat room and
// all of its messages. Purging an already purged room is a no-op, so the
// delayed task and the periodic sweep can race safely.
func (m *BackgroundManager) PurgeChatRoom(roomID string) error {
	return m.store.PurgeChatRoom(roomID)
}

// PurgeStaleChatRooms is a periodic sweep that catches completed rooms
// whose delayed purge task was lost. Anything completed longer ago than
// the grace period is fair game.
func (m *BackgroundManager) PurgeStaleChatRooms() error {
	cutoff := time.Now().Add(-schema.ChatPurgeGracePeriod)

	rooms, err := m.store.ListPurgeableChatRooms(cutoff)
	if err != nil {
		return err
	}

	for _, room := range rooms {
		if err := m.store.PurgeChatRoom(room.ID); err != nil {
			log.WithError(err).WithField("chat_room_id", room.ID).Error("unable to purge stale chat room")
		}
	}

	return nil
}
