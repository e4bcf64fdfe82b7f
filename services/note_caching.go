package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"main/model"

	"github.com/redis/go-redis/v9"
)

// NoteCache keeps per-owner note lists in Redis so repeated list requests skip
// Mongo. Entries are short-lived and every write path invalidates the owner's
// keys, which is enough for a single-writer-per-identity deployment.
type NoteCache struct {
	client *redis.Client
	ttl    time.Duration
}

var GlobalNoteCache *NoteCache

// NewNoteCache connects to Redis and verifies the connection.
func NewNoteCache(redisURL string, ttl time.Duration) (*NoteCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &NoteCache{client: client, ttl: ttl}, nil
}

func listKey(owner, kind string) string {
	return fmt.Sprintf("notes:%s:%s", kind, owner)
}

// GetList returns the cached list for an owner, or nil on a miss.
func (nc *NoteCache) GetList(ctx context.Context, owner, kind string) ([]*model.Note, error) {
	data, err := nc.client.Get(ctx, listKey(owner, kind)).Bytes()
	if err == redis.Nil {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read note cache: %v", err)
	}

	var notes []*model.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached notes: %v", err)
	}
	return notes, nil
}

// SetList caches an owner's list with the configured TTL.
func (nc *NoteCache) SetList(ctx context.Context, owner, kind string, notes []*model.Note) error {
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("failed to marshal notes: %v", err)
	}
	if err := nc.client.Set(ctx, listKey(owner, kind), data, nc.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache notes: %v", err)
	}
	return nil
}

// Invalidate drops both cached lists for an owner. Called after every write.
func (nc *NoteCache) Invalidate(ctx context.Context, owners ...string) error {
	keys := make([]string, 0, len(owners)*2)
	for _, owner := range owners {
		keys = append(keys, listKey(owner, "active"), listKey(owner, "checked"))
	}
	if err := nc.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate note cache: %v", err)
	}
	return nil
}

// LoginRecord captures the last successful login per identity.
type LoginRecord struct {
	UserID   string    `json:"user_id"`
	Device   string    `json:"device"`
	LoggedAt time.Time `json:"logged_at"`
}

// RecordLogin stores the most recent login info for an identity.
func (nc *NoteCache) RecordLogin(ctx context.Context, record LoginRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal login record: %v", err)
	}
	key := fmt.Sprintf("login:%s", record.UserID)
	if err := nc.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to record login: %v", err)
	}
	return nil
}
