package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jaalhq/jaal/pkg/persona"
)

// PersonaCache keeps generated personas in Redis so every node presents
// the same decoy for a session. Persona generation is already seeded by
// session ID; the cache exists so future persona mutations (a scammer is
// told a detail we improvised) have one durable home.
type PersonaCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPersonaCache wraps a Redis client.
func NewPersonaCache(client *redis.Client, ttl time.Duration) *PersonaCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &PersonaCache{client: client, ttl: ttl}
}

func (c *PersonaCache) key(sessionID string) string {
	return "jaal:persona:" + sessionID
}

// Get returns the cached persona, or (nil, nil) when absent.
func (c *PersonaCache) Get(ctx context.Context, sessionID string) (*persona.Persona, error) {
	raw, err := c.client.Get(ctx, c.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get persona %s: %w", sessionID, err)
	}
	var p persona.Persona
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode persona %s: %w", sessionID, err)
	}
	return &p, nil
}

// Put stores the persona with the cache TTL.
func (c *PersonaCache) Put(ctx context.Context, sessionID string, p *persona.Persona) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode persona %s: %w", sessionID, err)
	}
	if err := c.client.Set(ctx, c.key(sessionID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis put persona %s: %w", sessionID, err)
	}
	return nil
}

// GetOrCreate returns the cached persona, generating and caching one when
// absent. A cache failure falls back to deterministic generation; the
// caller always gets a persona.
func (c *PersonaCache) GetOrCreate(ctx context.Context, sessionID string) *persona.Persona {
	if c != nil {
		if p, err := c.Get(ctx, sessionID); err == nil && p != nil {
			return p
		}
	}
	p := persona.Generate(sessionID)
	if c != nil {
		_ = c.Put(ctx, sessionID, p) // generation is deterministic, a miss costs nothing
	}
	return p
}
