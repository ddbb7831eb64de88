// Package storage persists engagement artifacts outside the hot path:
// per-session archives in Postgres and persona blobs in Redis. Everything
// here degrades gracefully; the engagement loop never depends on a write
// landing.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jaalhq/jaal/pkg/convo"
	"github.com/jaalhq/jaal/pkg/intel"
)

// NewPool opens a pgx connection pool and verifies it with a ping.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    session_id    TEXT PRIMARY KEY,
    persona       JSONB,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    last_seen_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    callback_sent BOOLEAN NOT NULL DEFAULT false
);

CREATE TABLE IF NOT EXISTS messages (
    id         BIGSERIAL PRIMARY KEY,
    session_id TEXT NOT NULL REFERENCES sessions(session_id),
    sender     TEXT NOT NULL,
    body       TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS intel_snapshots (
    session_id TEXT PRIMARY KEY REFERENCES sessions(session_id),
    bundle     JSONB NOT NULL,
    memory     JSONB NOT NULL,
    actionable BOOLEAN NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// ArchiveRepo records sessions, transcripts, and intelligence snapshots.
// A nil *ArchiveRepo is valid and drops every write, which is how the
// gateway runs when no Postgres DSN is configured.
type ArchiveRepo struct {
	pool *pgxpool.Pool
}

// NewArchiveRepo wraps a pool. Pass the result of NewPool, or build the
// repo as nil to disable archiving.
func NewArchiveRepo(pool *pgxpool.Pool) *ArchiveRepo {
	return &ArchiveRepo{pool: pool}
}

// EnsureSchema creates the tables if they do not exist.
func (r *ArchiveRepo) EnsureSchema(ctx context.Context) error {
	if r == nil {
		return nil
	}
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// UpsertSession registers a session and its persona, refreshing last-seen
// on repeat calls.
func (r *ArchiveRepo) UpsertSession(ctx context.Context, sessionID string, personaJSON []byte) {
	if r == nil {
		return
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sessions (session_id, persona)
		VALUES ($1, $2)
		ON CONFLICT (session_id)
		DO UPDATE SET last_seen_at = now()`,
		sessionID, personaJSON)
	if err != nil {
		log.Printf("[WARN] Archive upsert failed for %s: %v", sessionID, err)
	}
}

// AppendMessage archives one transcript line.
func (r *ArchiveRepo) AppendMessage(ctx context.Context, sessionID, sender, body string) {
	if r == nil {
		return
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO messages (session_id, sender, body) VALUES ($1, $2, $3)`,
		sessionID, sender, body)
	if err != nil {
		log.Printf("[WARN] Archive message failed for %s: %v", sessionID, err)
	}
}

// SaveSnapshot stores the latest merged bundle and scammer memory.
func (r *ArchiveRepo) SaveSnapshot(ctx context.Context, sessionID string, bundle *intel.Bundle, memory convo.ScammerMemory) {
	if r == nil {
		return
	}
	bundleJSON, err := json.Marshal(bundle)
	if err != nil {
		log.Printf("[WARN] Snapshot encode failed for %s: %v", sessionID, err)
		return
	}
	memoryJSON, err := json.Marshal(memory)
	if err != nil {
		log.Printf("[WARN] Memory encode failed for %s: %v", sessionID, err)
		return
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO intel_snapshots (session_id, bundle, memory, actionable, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (session_id)
		DO UPDATE SET bundle = $2, memory = $3, actionable = $4, updated_at = now()`,
		sessionID, bundleJSON, memoryJSON, bundle.HasActionableIntel())
	if err != nil {
		log.Printf("[WARN] Snapshot save failed for %s: %v", sessionID, err)
	}
}

// MarkCallbackSent flags the session as reported upstream.
func (r *ArchiveRepo) MarkCallbackSent(ctx context.Context, sessionID string) {
	if r == nil {
		return
	}
	_, err := r.pool.Exec(ctx, `
		UPDATE sessions SET callback_sent = true WHERE session_id = $1`,
		sessionID)
	if err != nil {
		log.Printf("[WARN] Callback flag failed for %s: %v", sessionID, err)
	}
}

// Close releases the pool. Safe on nil.
func (r *ArchiveRepo) Close() {
	if r == nil || r.pool == nil {
		return
	}
	r.pool.Close()
}
