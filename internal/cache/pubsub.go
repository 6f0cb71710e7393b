package cache

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SettingsChannel is the redis channel carrying global settings changes
const SettingsChannel = "configurator:settings"

// EventSettingsUpdated is the type of SettingsEvent
const EventSettingsUpdated = "settings.updated"

// SettingsEvent announces a new global settings version
type SettingsEvent struct {
	Type     string    `json:"type"`
	Version  int64     `json:"version"`
	Revision uuid.UUID `json:"revision"`
}

// SettingsBus fans global settings changes out to every replica
type SettingsBus interface {
	Publish(ctx context.Context, event SettingsEvent) error
	// Subscribe delivers events until ctx is cancelled; the channel is closed afterwards
	Subscribe(ctx context.Context) <-chan SettingsEvent
}

// NewSettingsBus returns a redis pub/sub bus, or an in-process bus when client is nil
func NewSettingsBus(client *redis.Client, logger *zap.Logger) SettingsBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	if client == nil {
		return NewLocalBus()
	}
	return &redisBus{client: client, logger: logger}
}

type redisBus struct {
	client *redis.Client
	logger *zap.Logger
}

func (b *redisBus) Publish(ctx context.Context, event SettingsEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, SettingsChannel, data).Err()
}

func (b *redisBus) Subscribe(ctx context.Context) <-chan SettingsEvent {
	out := make(chan SettingsEvent, 16)
	pubsub := b.client.Subscribe(ctx, SettingsChannel)

	go func() {
		defer close(out)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event SettingsEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					b.logger.Warn("Ignoring malformed settings event", zap.Error(err))
					continue
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// LocalBus delivers settings events within one process
type LocalBus struct {
	mu          sync.RWMutex
	subscribers map[chan SettingsEvent]struct{}
}

// NewLocalBus creates an in-process settings bus
func NewLocalBus() *LocalBus {
	return &LocalBus{subscribers: make(map[chan SettingsEvent]struct{})}
}

// Publish never blocks; slow subscribers miss events
func (b *LocalBus) Publish(_ context.Context, event SettingsEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}

func (b *LocalBus) Subscribe(ctx context.Context) <-chan SettingsEvent {
	ch := make(chan SettingsEvent, 16)
	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subscribers, ch)
		close(ch)
		b.mu.Unlock()
	}()
	return ch
}
