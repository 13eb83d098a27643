// Package events carries collection change notifications from mutation
// paths to live console subscribers. Events travel through a Redis
// Pub/Sub channel so subscribers on every instance see every mutation,
// the way the original console's document-store subscriptions did.
package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/bilimtest/quizadmin-backend/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Action classifies a change event.
type Action string

const (
	ActionAdded   Action = "added"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Event is one collection change notification. It identifies what
// changed but carries no payload: clients re-fetch on their own
// schedule, so an in-flight edit draft is never clobbered by a push.
type Event struct {
	Collection string `json:"collection"`
	Action     Action `json:"action"`
	TargetID   string `json:"target_id"`
}

const subscriberBuffer = 32

// Changefeed publishes change events to Redis and fans incoming events
// out to local subscribers. Publishing never blocks on a slow
// subscriber; a subscriber whose buffer is full misses that event.
type Changefeed struct {
	rdb *redis.Client
	log zerolog.Logger

	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

// NewChangefeed creates a Changefeed. Call Run to start delivery.
func NewChangefeed(rdb *redis.Client, log zerolog.Logger) *Changefeed {
	return &Changefeed{
		rdb:  rdb,
		log:  log.With().Str("component", "changefeed").Logger(),
		subs: make(map[int]chan Event),
	}
}

// Publish sends a change event to the shared Redis channel. Failures are
// logged and swallowed: a lost notification must never fail the mutation
// that triggered it.
func (f *Changefeed) Publish(ctx context.Context, collection string, action Action, targetID string) {
	raw, err := json.Marshal(Event{Collection: collection, Action: action, TargetID: targetID})
	if err != nil {
		f.log.Error().Err(err).Msg("encode change event")
		return
	}
	if err := f.rdb.Publish(ctx, config.CacheKey.ChangefeedChannel(), raw).Err(); err != nil {
		f.log.Warn().Err(err).Str("collection", collection).Msg("publish change event failed")
	}
}

// Subscribe registers a local subscriber and returns its id and channel.
// The caller must Unsubscribe when done.
func (f *Changefeed) Subscribe() (int, <-chan Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := f.nextID
	ch := make(chan Event, subscriberBuffer)
	f.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (f *Changefeed) Unsubscribe(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ch, ok := f.subs[id]; ok {
		delete(f.subs, id)
		close(ch)
	}
}

// Run consumes the Redis channel and fans events out until ctx is done.
func (f *Changefeed) Run(ctx context.Context) {
	pubsub := f.rdb.Subscribe(ctx, config.CacheKey.ChangefeedChannel())
	defer pubsub.Close()

	f.log.Info().Msg("Changefeed started")
	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			f.log.Info().Msg("Changefeed stopped")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				f.log.Error().Err(err).Msg("invalid change event payload")
				continue
			}
			f.dispatch(ev)
		}
	}
}

func (f *Changefeed) dispatch(ev Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, sub := range f.subs {
		select {
		case sub <- ev:
		default:
			f.log.Warn().Int("subscriber", id).Msg("subscriber buffer full, event dropped")
		}
	}
}
