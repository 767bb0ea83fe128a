package feed

import (
	"context"
	"time"

	"github.com/campusaid-inc/campusaid-api/schema"
	"github.com/campusaid-inc/campusaid-api/store"
)

// refreshInterval re-emits snapshots even without a change event, so feeds
// pick up request expiry, which happens by the clock rather than by a
// write.
const refreshInterval = 30 * time.Second

// Manager builds live feeds on top of the store and the change bus. Every
// feed is a handle owning one goroutine: it emits a first snapshot
// immediately, then a fresh full snapshot whenever one of its topics
// changes. Cancel releases the goroutine and closes the update channel.
type Manager struct {
	store store.CampusAidStore
	bus   *Bus
}

func NewManager(store store.CampusAidStore, bus *Bus) *Manager {
	return &Manager{
		store: store,
		bus:   bus,
	}
}

// handle is the cancellation half shared by all feed types.
type handle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Cancel stops the feed. It blocks until the feed goroutine has exited and
// the update channel is closed. Cancelling twice is safe.
func (h *handle) Cancel() {
	h.cancel()
	<-h.done
}

// watch runs one feed goroutine: immediate first emission, then one
// emission per change event, plus a periodic refresh. A failed emission is
// skipped rather than tearing the feed down; the next event retries.
func (m *Manager) watch(ctx context.Context, h *handle, topics []string, emit func()) {
	sub := m.bus.subscribe(ctx, topics...)
	events := sub.Channel()

	defer close(h.done)
	defer sub.Close()

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	emit()
	for {
		select {
		case <-ctx.Done():
			return
		case <-events:
			emit()
		case <-ticker.C:
			emit()
		}
	}
}

// NearbyFeed is a live discovery stream. Each value on Updates is a full
// recomputed snapshot; consumers replace their view entirely per emission.
type NearbyFeed struct {
	handle
	Updates <-chan []schema.HelpRequest
}

// SubscribeNearby opens the discovery feed for a viewer at a location.
// Requests are visible only within the viewer's own college and the given
// radius in kilometers.
func (m *Manager) SubscribeNearby(accountNumber string, viewerLoc schema.Location, radiusKm float64) (*NearbyFeed, error) {
	profile, err := m.store.GetProfile(accountNumber)
	if err != nil {
		return nil, err
	}
	college := profile.College

	ctx, cancel := context.WithCancel(context.Background())
	updates := make(chan []schema.HelpRequest, 1)
	f := &NearbyFeed{
		handle:  handle{cancel: cancel, done: make(chan struct{})},
		Updates: updates,
	}

	// a little slop over the radius; the snapshot applies the precise
	// great-circle cut
	maxDistMeter := int(radiusKm*1000) + 50

	go func() {
		defer close(updates)
		m.watch(ctx, &f.handle, []string{store.TopicHelpRequests(college)}, func() {
			candidates, err := m.store.NearbyHelpRequests(college, viewerLoc, maxDistMeter)
			if err != nil {
				log.WithError(err).Warn("recompute nearby snapshot")
				return
			}
			snapshot := AssembleNearby(candidates, accountNumber, viewerLoc, radiusKm, time.Now().UTC())
			pushLatestRequests(updates, snapshot)
		})
	}()

	return f, nil
}

// MessageFeed is a live, creation-ordered stream of all messages in one
// room.
type MessageFeed struct {
	handle
	Updates <-chan []schema.ChatMessage
}

// SubscribeMessages opens the message feed of a chat room. The caller is
// responsible for checking the subscriber is a participant.
func (m *Manager) SubscribeMessages(roomID string) *MessageFeed {
	ctx, cancel := context.WithCancel(context.Background())
	updates := make(chan []schema.ChatMessage, 1)
	f := &MessageFeed{
		handle:  handle{cancel: cancel, done: make(chan struct{})},
		Updates: updates,
	}

	go func() {
		defer close(updates)
		m.watch(ctx, &f.handle, []string{store.TopicChatRoom(roomID)}, func() {
			messages, err := m.store.ListChatMessages(roomID)
			if err != nil {
				log.WithError(err).Warn("recompute message snapshot")
				return
			}
			pushLatestMessages(updates, messages)
		})
	}()

	return f
}

// RoomFeed is a live stream of the active rooms an account participates in,
// most recently active first.
type RoomFeed struct {
	handle
	Updates <-chan []schema.ChatRoom
}

// SubscribeUserRooms opens the active-rooms feed for an account.
func (m *Manager) SubscribeUserRooms(accountNumber string) *RoomFeed {
	ctx, cancel := context.WithCancel(context.Background())
	updates := make(chan []schema.ChatRoom, 1)
	f := &RoomFeed{
		handle:  handle{cancel: cancel, done: make(chan struct{})},
		Updates: updates,
	}

	go func() {
		defer close(updates)
		m.watch(ctx, &f.handle, []string{store.TopicUserRooms(accountNumber)}, func() {
			rooms, err := m.store.ListActiveChatRooms(accountNumber)
			if err != nil {
				log.WithError(err).Warn("recompute room snapshot")
				return
			}
			pushLatestRooms(updates, rooms)
		})
	}()

	return f
}

// StatsFeed is a live stream of an account's counters.
type StatsFeed struct {
	handle
	Updates <-chan schema.UserStats
}

// SubscribeUserStats opens the stats feed for an account.
func (m *Manager) SubscribeUserStats(accountNumber string) *StatsFeed {
	ctx, cancel := context.WithCancel(context.Background())
	updates := make(chan schema.UserStats, 1)
	f := &StatsFeed{
		handle:  handle{cancel: cancel, done: make(chan struct{})},
		Updates: updates,
	}

	go func() {
		defer close(updates)
		m.watch(ctx, &f.handle, []string{store.TopicUserStats(accountNumber)}, func() {
			stats, err := m.store.GetUserStats(accountNumber)
			if err != nil {
				log.WithError(err).Warn("recompute stats snapshot")
				return
			}
			pushLatestStats(updates, *stats)
		})
	}()

	return f
}

// The push helpers keep only the freshest snapshot in the buffered channel:
// a slow consumer never blocks a feed, it just skips intermediate states.

func pushLatestRequests(ch chan []schema.HelpRequest, snapshot []schema.HelpRequest) {
	for {
		select {
		case ch <- snapshot:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}

func pushLatestMessages(ch chan []schema.ChatMessage, snapshot []schema.ChatMessage) {
	for {
		select {
		case ch <- snapshot:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}

func pushLatestRooms(ch chan []schema.ChatRoom, snapshot []schema.ChatRoom) {
	for {
		select {
		case ch <- snapshot:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}

func pushLatestStats(ch chan schema.UserStats, snapshot schema.UserStats) {
	for {
		select {
		case ch <- snapshot:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}
