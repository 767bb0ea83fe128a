package feed

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "feed")
}

// Bus fans collection-change events out to live feeds through redis
// pub/sub. The payload carries no data: an event only tells a feed that its
// topic changed, and the feed re-queries the store for a fresh snapshot.
// Feeds on other instances of the service see the same events.
type Bus struct {
	client *redis.Client
}

func NewBus(client *redis.Client) *Bus {
	return &Bus{
		client: client,
	}
}

// Publish satisfies store.EventPublisher.
func (b *Bus) Publish(topic string) error {
	return b.client.Publish(context.Background(), topic, "1").Err()
}

// subscribe opens a redis subscription on the given topics. The caller owns
// the returned PubSub and must close it.
func (b *Bus) subscribe(ctx context.Context, topics ...string) *redis.PubSub {
	return b.client.Subscribe(ctx, topics...)
}
