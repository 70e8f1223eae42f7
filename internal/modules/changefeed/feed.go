package changefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Reloader re-reads a collection from its store.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Feed publishes change events on Redis and reacts to events from other
// instances by reloading every collection. All events reach the Hub.
type Feed struct {
	rdb       *redis.Client
	channel   string
	origin    string
	hub       *Hub
	reloaders []Reloader
	log       *zap.Logger
}

// NewFeed builds a feed for the instance named origin. rdb may be nil, in
// which case events only reach local websocket clients.
func NewFeed(rdb *redis.Client, origin string, hub *Hub, log *zap.Logger) *Feed {
	if log == nil {
		log = zap.NewNop()
	}
	return &Feed{rdb: rdb, channel: DefaultChannel, origin: origin, hub: hub, log: log}
}

// Watch adds collections to reload when another instance changes data.
func (f *Feed) Watch(reloaders ...Reloader) {
	f.reloaders = append(f.reloaders, reloaders...)
}

func (f *Feed) Publish(ctx context.Context, topic string) error {
	ev := Event{Topic: topic, Origin: f.origin, At: time.Now().UTC()}
	if f.rdb == nil {
		f.deliver(ev)
		return nil
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if err := f.rdb.Publish(ctx, f.channel, payload).Err(); err != nil {
		// Local browsers still need to hear about it.
		f.deliver(ev)
		return fmt.Errorf("publish change: %w", err)
	}
	return nil
}

// Subscribe joins the channel and waits for Redis to confirm.
func (f *Feed) Subscribe(ctx context.Context) (*redis.PubSub, error) {
	if f.rdb == nil {
		return nil, errors.New("change feed has no redis client")
	}
	sub := f.rdb.Subscribe(ctx, f.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", f.channel, err)
	}
	return sub, nil
}

// Consume handles events from sub until ctx is done or sub is closed.
func (f *Feed) Consume(ctx context.Context, sub *redis.PubSub) {
	defer sub.Close()
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				f.log.Warn("invalid change event", zap.String("payload", msg.Payload), zap.Error(err))
				continue
			}
			f.handle(ctx, ev)
		}
	}
}

// Run subscribes and consumes until ctx is done.
func (f *Feed) Run(ctx context.Context) error {
	sub, err := f.Subscribe(ctx)
	if err != nil {
		return err
	}
	f.Consume(ctx, sub)
	return nil
}

func (f *Feed) handle(ctx context.Context, ev Event) {
	if ev.Origin != f.origin {
		for _, r := range f.reloaders {
			if err := r.Reload(ctx); err != nil {
				f.log.Error("reload after remote change", zap.String("topic", ev.Topic), zap.Error(err))
			}
		}
	}
	f.deliver(ev)
}

func (f *Feed) deliver(ev Event) {
	if f.hub == nil {
		return
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	f.hub.Broadcast(payload)
}
