package convo

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Turn is one prior message of the conversation as supplied by the caller.
type Turn struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// Result is the outcome of advancing a conversation by one scammer
// message.
type Result struct {
	Phase                     Phase         `json:"phase"`
	PrimaryIntent             Intent        `json:"primary_intent"`
	Intents                   []Intent      `json:"intents"`
	Reply                     string        `json:"reply"`
	RequestsReverseExtraction bool          `json:"requests_reverse_extraction"`
	Memory                    ScammerMemory `json:"memory"`
	TurnCount                 int           `json:"turn_count"`
}

// Engine drives the conversation state machine over a session store.
// Safe for concurrent use; mutation of a given session is serialized by
// the session lock, and the shared random source by the engine's own.
type Engine struct {
	store         Store
	responder     *Responder
	historyWindow int
	rngMu         sync.Mutex
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithReverseExtractChance overrides the probability of appending an
// opportunistic reverse-extraction tail (clamped to [0, 1] by config).
func WithReverseExtractChance(p float64) EngineOption {
	return func(e *Engine) { e.responder.reverseChance = p }
}

// WithHistoryWindow overrides how many response records each new session
// retains. Non-positive values keep the default.
func WithHistoryWindow(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.historyWindow = n
		}
	}
}

// NewEngine builds an engine over the given store. Pass a zero seed for
// time-based seeding; tests pass a fixed seed for determinism.
func NewEngine(store Store, seed int64, opts ...EngineOption) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e := &Engine{
		store:         store,
		responder:     NewResponder(rand.New(rand.NewSource(seed))),
		historyWindow: defaultHistoryWindow,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

/// Advance processes one inbound scammer message for the session: updates
// scammer memory, resolves intents and phase, and selects the next reply.
//
// The caller supplies the prior conversation history it trusts. When the
// session's own turn count disagrees with it (a fresh session against a
// long history, or a replayed webhook), the engine resets the derived
// memory counters and replays the scammer side of the history before
// folding in the current message. That reset-then-rescan order is what
// keeps the counters equal to the true per-conversation totals.
func (e *Engine) Advance(ctx context.Context, sessionID, text string, history []Turn) (*Result, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID is required")
	}

	sess, err := e.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess == nil {
		sess = NewSessionState(sessionID)
		sess.MaxHistory = e.historyWindow
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.TurnCount != len(history) {
		sess.Memory.ResetDerived()
		for _, t := range history {
			if isScammerTurn(t) {
				sess.Memory.Observe(t.Text)
			}
		}
	}
	sess.Memory.Observe(text)

	intents := DetectIntents(text)
	phase := DetectPhase(len(history), intents)
	sess.Phase = phase

	e.rngMu.Lock()
	reply, reverse := e.responder.Respond(sess, phase, intents)
	e.rngMu.Unlock()

	sess.TurnCount = len(history) + 1
	sess.LastTurnAt = time.Now()

	if err := e.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &Result{
		Phase:                     phase,
		PrimaryIntent:             PrimaryIntent(intents),
		Intents:                   intents,
		Reply:                     reply,
		RequestsReverseExtraction: reverse,
		Memory:                    sess.Memory,
		TurnCount:                 sess.TurnCount,
	}, nil
}

// Session exposes the current state for a session ID, nil when unknown.
func (e *Engine) Session(ctx context.Context, sessionID string) (*SessionState, error) {
	return e.store.Get(ctx, sessionID)
}

func isScammerTurn(t Turn) bool {
	switch strings.ToLower(t.Sender) {
	case "scammer", "caller", "user", "them":
		return true
	default:
		return false
	}
}
