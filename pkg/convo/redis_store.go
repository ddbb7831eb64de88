package convo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Store backed by Redis, for deployments where more than
// one node handles the same conversation. Sessions are stored as JSON
// blobs under a key prefix with a TTL refreshed on every save.
//
// The per-session mutation lock does not travel across nodes; callers that
// shard conversations across nodes should route a given session ID to one
// node (the webhook layer does this by default).
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore wraps an existing Redis client as a session store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	return &RedisStore{
		client: client,
		prefix: "jaal:session:",
		ttl:    ttl,
	}
}

func (s *RedisStore) key(sessionID string) string {
	return s.prefix + sessionID
}

// Get loads a session. Unknown or expired sessions return (nil, nil).
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*SessionState, error) {
	raw, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session %s: %w", sessionID, err)
	}

	var state SessionState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	if state.UsedLines == nil {
		state.UsedLines = make(map[string]bool)
	}
	if state.UsedOpenings == nil {
		state.UsedOpenings = make(map[string]bool)
	}
	return &state, nil
}

// Save writes the session back and refreshes its TTL.
func (s *RedisStore) Save(ctx context.Context, state *SessionState) error {
	if state == nil {
		return fmt.Errorf("session state is nil")
	}
	if state.SessionID == "" {
		return fmt.Errorf("session ID is required")
	}
	state.LastTurnAt = time.Now()

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", state.SessionID, err)
	}
	if err := s.client.Set(ctx, s.key(state.SessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis save session %s: %w", state.SessionID, err)
	}
	return nil
}

// Delete removes a session.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete session %s: %w", sessionID, err)
	}
	return nil
}
