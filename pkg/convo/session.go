package convo

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// =============================================================================
// SESSION STATE + IN-MEMORY STORE
// =============================================================================
// One SessionState per conversation identifier, created on first message and
// mutated every turn. The store owns lifecycle (creation, TTL eviction); the
// engine owns mutation and serializes it per session via the state's lock.

// ResponseRecord is one reply this system has already sent in a session.
type ResponseRecord struct {
	Text        string       `json:"text"`
	OpeningHash string       `json:"opening_hash"`
	Type        ResponseType `json:"type"`
}

// SessionState is the per-conversation mutable record.
type SessionState struct {
	SessionID string `json:"session_id"`
	Phase     Phase  `json:"phase"`
	TurnCount int    `json:"turn_count"`

	Memory ScammerMemory `json:"memory"`

	// ResponseHistory is append-only with oldest-entry eviction past
	// MaxHistory. The used-line and opening-hash sets are not evicted;
	// they live as long as the session does.
	ResponseHistory []ResponseRecord     `json:"response_history"`
	UsedLines       map[string]bool      `json:"used_lines"`
	UsedOpenings    map[string]bool      `json:"used_openings"`
	AskedCategories []ExtractionCategory `json:"asked_categories"`

	LastResponseType ResponseType `json:"last_response_type"`
	MaxHistory       int          `json:"max_history"`

	CreatedAt  time.Time `json:"created_at"`
	LastTurnAt time.Time `json:"last_turn_at"`

	// Serializes same-session mutation under concurrent webhook retries.
	mu sync.Mutex
}

// NewSessionState creates a fresh session record.
func NewSessionState(sessionID string) *SessionState {
	now := time.Now()
	return &SessionState{
		SessionID:    sessionID,
		Phase:        PhaseInitialContact,
		UsedLines:    make(map[string]bool),
		UsedOpenings: make(map[string]bool),
		MaxHistory:   defaultHistoryWindow,
		CreatedAt:    now,
		LastTurnAt:   now,
	}
}

const defaultHistoryWindow = 40

// Lock serializes mutation of this session.
func (s *SessionState) Lock() { s.mu.Lock() }

// Unlock releases the session lock.
func (s *SessionState) Unlock() { s.mu.Unlock() }

// RecordResponse appends a sent reply, updating the anti-repetition sets
// and trimming the history window.
func (s *SessionState) RecordResponse(text string, rt ResponseType) {
	if s.UsedLines == nil {
		s.UsedLines = make(map[string]bool)
	}
	if s.UsedOpenings == nil {
		s.UsedOpenings = make(map[string]bool)
	}
	hash := openingHash(text)
	s.ResponseHistory = append(s.ResponseHistory, ResponseRecord{
		Text:        text,
		OpeningHash: hash,
		Type:        rt,
	})
	if s.MaxHistory > 0 && len(s.ResponseHistory) > s.MaxHistory {
		s.ResponseHistory = s.ResponseHistory[len(s.ResponseHistory)-s.MaxHistory:]
	}
	s.UsedLines[text] = true
	s.UsedOpenings[hash] = true
	s.LastResponseType = rt
}

// markUsed registers a line in both anti-duplication sets without adding
// a history record. Used for the halves of a combined reply, which are
// recorded as one entry but must each be unplayable on their own.
func (s *SessionState) markUsed(text string) {
	if s.UsedLines == nil {
		s.UsedLines = make(map[string]bool)
	}
	if s.UsedOpenings == nil {
		s.UsedOpenings = make(map[string]bool)
	}
	s.UsedLines[text] = true
	s.UsedOpenings[openingHash(text)] = true
}

// lineUsed reports whether a candidate reply is disqualified by either
// anti-duplication axis: the exact line, or its opening hash.
func (s *SessionState) lineUsed(text string) bool {
	return s.UsedLines[text] || s.UsedOpenings[openingHash(text)]
}

// recentlyAsked reports whether the category appears in the last n entries
// of the asked-category log.
func (s *SessionState) recentlyAsked(cat ExtractionCategory, n int) bool {
	start := len(s.AskedCategories) - n
	if start < 0 {
		start = 0
	}
	for _, c := range s.AskedCategories[start:] {
		if c == cat {
			return true
		}
	}
	return false
}

// Store is the session-store contract. Get returns (nil, nil) for an
// unknown or expired session; not found is not an error.
type Store interface {
	Get(ctx context.Context, sessionID string) (*SessionState, error)
	Save(ctx context.Context, state *SessionState) error
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStore is a thread-safe in-memory Store with TTL-based cleanup.
// Suitable for single-node deployments; RedisStore covers distributed ones.
type MemoryStore struct {
	sessions map[string]*SessionState
	mu       sync.RWMutex

	maxAge     time.Duration
	cleanupTTL time.Duration

	stopCleanup chan struct{}
	cleanupOnce sync.Once
}

// StoreOption configures a MemoryStore.
type StoreOption func(*MemoryStore)

// WithMaxAge sets the session TTL.
func WithMaxAge(d time.Duration) StoreOption {
	return func(s *MemoryStore) { s.maxAge = d }
}

// WithCleanupInterval sets how often the cleanup routine runs.
func WithCleanupInterval(d time.Duration) StoreOption {
	return func(s *MemoryStore) { s.cleanupTTL = d }
}

// NewMemoryStore creates an in-memory session store and starts its
// background cleanup goroutine.
func NewMemoryStore(opts ...StoreOption) *MemoryStore {
	s := &MemoryStore{
		sessions:    make(map[string]*SessionState),
		maxAge:      1 * time.Hour,
		cleanupTTL:  5 * time.Minute,
		stopCleanup: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.cleanupLoop()
	return s
}

// Get retrieves a session by ID. Stale sessions read as not found; actual
// removal happens in the cleanup loop.
func (s *MemoryStore) Get(_ context.Context, sessionID string) (*SessionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	if time.Since(session.LastTurnAt) > s.maxAge {
		return nil, nil
	}
	return session, nil
}

// Save creates or updates a session.
func (s *MemoryStore) Save(_ context.Context, state *SessionState) error {
	if state == nil {
		return fmt.Errorf("session state is nil")
	}
	if state.SessionID == "" {
		return fmt.Errorf("session ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if state.CreatedAt.IsZero() {
		state.CreatedAt = time.Now()
	}
	state.LastTurnAt = time.Now()
	s.sessions[state.SessionID] = state
	return nil
}

// Delete removes a session.
func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Len returns the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (s *MemoryStore) Close() {
	s.cleanupOnce.Do(func() { close(s.stopCleanup) })
}

func (s *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(s.cleanupTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictStale()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *MemoryStore) evictStale() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.maxAge)
	for id, session := range s.sessions {
		if session.LastTurnAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
