package background

import (
	log "github.com/sirupsen/logrus"

	"github.com/campusaid-inc/campusaid-api/schema"
	"github.com/campusaid-inc/campusaid-api/store"
)

const (
	BROADCAST_NEW_HELP   = "763b85e1-0675-4277-ae33-7ba1de47b85c"
	NOTIFY_HELP_ACCEPTED = "abf98dc0-311f-4a1b-99a0-c8d4fe1cc9cf"
	NOTIFY_NEW_MESSAGE   = "4d36ad4f-13c5-4412-8640-2d5646e8ab56"
)

// BroadcastRadiusMeter is how far a new help request reaches when the
// push notification cohort is computed.
const BroadcastRadiusMeter = 2000

// BroadcastNewHelp is a background job to send notifications to the dynamic
// cohort of a user who just created a new help request. The cohort is the
// set of accounts with a recent location fix inside the broadcast radius,
// restricted to the requester's college.
func (m *BackgroundManager) BroadcastNewHelp(helpID string) error {
	request, err := m.store.GetHelpRequest(helpID)
	if err != nil {
		if err == store.ErrRequestNotFound {
			log.WithField("help_id", helpID).Warn("help request gone before broadcasting")
			return nil
		}
		return err
	}

	// the request may already be claimed or withdrawn by the time the
	// job runs
	if request.Status != schema.HelpRequestActive || request.Location == nil {
		return nil
	}

	accountNumbers, err := m.store.NearbyAccountNumbers(request.College, request.Location.ToLocation(), BroadcastRadiusMeter)
	if err != nil {
		return err
	}

	cohort := make([]string, 0, len(accountNumbers))
	for _, a := range accountNumbers {
		if a != request.Requester {
			cohort = append(cohort, a)
		}
	}

	if len(cohort) == 0 {
		return nil
	}

	return m.NotifyAccountsByTemplate(cohort, BROADCAST_NEW_HELP, map[string]interface{}{
		"notification_type": "BROADCAST_NEW_HELP",
		"help_id":           helpID,
	})
}

// NotifyHelpAccepted is a background job to send notification to the
// requester of an accepted help request
func (m *BackgroundManager) NotifyHelpAccepted(helpID string) error {
	request, err := m.store.GetHelpRequest(helpID)
	if err != nil {
		if err == store.ErrRequestNotFound {
			return nil
		}
		return err
	}

	return m.NotifyAccountsByTemplate([]string{request.Requester}, NOTIFY_HELP_ACCEPTED, map[string]interface{}{
		"notification_type": "NOTIFY_HELP_ACCEPTED",
		"help_id":           helpID,
	})
}

// NotifyNewMessage is a background job to send notification to the silent
// side of a chat room when the other side posts a message
func (m *BackgroundManager) NotifyNewMessage(roomID string, sender string) error {
	room, err := m.store.GetChatRoom(roomID)
	if err != nil {
		if err == store.ErrChatRoomNotFound {
			// purged before the worker got to it
			return nil
		}
		return err
	}

	recipient := room.OtherParticipant(sender)
	if recipient == "" {
		return nil
	}

	return m.NotifyAccountsByTemplate([]string{recipient}, NOTIFY_NEW_MESSAGE, map[string]interface{}{
		"notification_type": "NOTIFY_NEW_MESSAGE",
		"chat_room_id":      roomID,
	})
}

// ExpireHelpRequests is a background job to time out overdue active help
// requests. Queries already hide them; this persists the terminal status.
func (m *BackgroundManager) ExpireHelpRequests() error {
	expired, err := m.store.ExpireHelpRequests()
	if err != nil {
		return err
	}

	if expired > 0 {
		log.WithField("expired", expired).Info("expired overdue help requests")
	}

	return nil
}
