package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	"github.com/jaalhq/jaal/pkg/config"
	"github.com/jaalhq/jaal/pkg/convo"
	"github.com/jaalhq/jaal/pkg/intel"
	"github.com/jaalhq/jaal/pkg/patterns"
	"github.com/jaalhq/jaal/pkg/persona"
	"github.com/jaalhq/jaal/pkg/report"
	"github.com/jaalhq/jaal/pkg/storage"
)

const Version = "0.1.0"

// Honeypot wires the engagement engine to its supporting services.
// Everything except the session store is optional and degrades gracefully
// when unavailable.
type Honeypot struct {
	cfg      *config.Config
	engine   *convo.Engine
	personas *storage.PersonaCache // Optional: falls back to deterministic generation
	archive  *storage.ArchiveRepo  // Optional: nil-safe no-op without Postgres
	reporter *report.Sender        // Optional: disabled without a callback URL
}

// chatRequest is the inbound evaluator format.
type chatRequest struct {
	SessionID string `json:"sessionId"`
	Message   struct {
		Sender    string `json:"sender"`
		Text      string `json:"text"`
		Timestamp int64  `json:"timestamp"`
	} `json:"message"`
	ConversationHistory []convo.Turn `json:"conversationHistory"`
}

// chatResponse is the outbound evaluator format.
type chatResponse struct {
	Status            string            `json:"status"`
	ScamDetected      bool              `json:"scamDetected"`
	EngagementMetrics engagementMetrics `json:"engagementMetrics"`
	ExtractedIntel    extractedIntel    `json:"extractedIntelligence"`
	AgentNotes        string            `json:"agentNotes"`
	Reply             string            `json:"reply"`
}

type engagementMetrics struct {
	EngagementDurationSeconds int `json:"engagementDurationSeconds"`
	TotalMessagesExchanged    int `json:"totalMessagesExchanged"`
}

type extractedIntel struct {
	BankAccounts       []string `json:"bankAccounts"`
	UPIIDs             []string `json:"upiIds"`
	PhishingLinks      []string `json:"phishingLinks"`
	PhoneNumbers       []string `json:"phoneNumbers"`
	SuspiciousKeywords []string `json:"suspiciousKeywords"`
}

// fallbackReplies keeps the conversation alive when processing fails.
var fallbackReplies = []string{
	"Haan ji? I am not understanding, can you say again slowly?",
	"Hello? Hello? The line is very bad, one minute please.",
	"Beta my spectacles are somewhere, let me find them first.",
}

func NewHoneypot(cfg *config.Config) *Honeypot {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	h := &Honeypot{cfg: cfg}

	// Optional lexicon override for the pattern library.
	if cfg.LexiconPath != "" {
		patterns.InstallLexicon(cfg.LexiconPath)
	}

	// Session store: Redis when configured, in-process otherwise.
	var store convo.Store
	var rdb *redis.Client
	if cfg.SessionBackend == config.BackendRedis && cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store = convo.NewRedisStore(rdb, cfg.SessionTTL)
		log.Printf("[STARTUP] Session store: redis (%s)", cfg.RedisAddr)
	} else {
		store = convo.NewMemoryStore(convo.WithMaxAge(cfg.SessionTTL))
		log.Println("[STARTUP] Session store: in-memory")
	}
	h.engine = convo.NewEngine(store, cfg.RandomSeed,
		convo.WithReverseExtractChance(cfg.ReverseExtractChance),
		convo.WithHistoryWindow(cfg.HistoryWindow),
	)

	// Persona cache shares the Redis client when present.
	if rdb != nil {
		h.personas = storage.NewPersonaCache(rdb, 0)
		log.Println("[STARTUP] Persona cache: redis")
	} else {
		log.Println("[STARTUP] Persona cache: disabled (deterministic generation only)")
	}

	// Postgres archive is best-effort.
	if cfg.PostgresDSN != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		pool, err := storage.NewPool(ctx, cfg.PostgresDSN)
		cancel()
		if err != nil {
			log.Printf("[WARN] Archive disabled (postgres connect failed: %v)", err)
		} else {
			h.archive = storage.NewArchiveRepo(pool)
			if err := h.archive.EnsureSchema(context.Background()); err != nil {
				log.Printf("[WARN] Archive schema setup failed: %v", err)
			}
			log.Println("[STARTUP] Archive: postgres")
		}
	} else {
		log.Println("[STARTUP] Archive: disabled (no DSN)")
	}

	if cfg.CallbackURL != "" {
		h.reporter = report.NewSender(cfg.CallbackURL, cfg.CallbackAPIKey)
		log.Printf("[STARTUP] Callback reporting: %s", cfg.CallbackURL)
	} else {
		h.reporter = report.NewSender("", "")
		log.Println("[STARTUP] Callback reporting: disabled (no URL)")
	}

	return h
}

// Handle processes one inbound message end to end: persona resolution,
// conversation advance, intelligence extraction, archiving, and callback.
func (h *Honeypot) Handle(ctx context.Context, req *chatRequest) (*chatResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = fmt.Sprintf("unknown_%d", time.Now().UnixNano())
	}

	decoy := h.personas.GetOrCreate(ctx, sessionID)

	result, err := h.engine.Advance(ctx, sessionID, req.Message.Text, req.ConversationHistory)
	if err != nil {
		return nil, fmt.Errorf("advance session %s: %w", sessionID, err)
	}

	// Indicators come from the whole scammer side of the conversation, not
	// just the newest message.
	bundle := intel.Extract(req.Message.Text)
	for _, t := range req.ConversationHistory {
		if strings.EqualFold(t.Sender, "scammer") {
			bundle = intel.Merge(bundle, intel.Extract(t.Text))
		}
	}

	totalMessages := len(req.ConversationHistory) + 1
	notes := report.AgentNotes(&result.Memory, bundle)
	scamDetected := bundle.HasActionableIntel() || result.Memory.ScamType != convo.ScamUnknown

	// The archived persona record carries the generation briefing alongside
	// the raw fields, so a text-generation collaborator replaying the
	// session sees the same character sheet the engagement used.
	personaRecord := struct {
		Persona  *persona.Persona `json:"persona"`
		Briefing string           `json:"briefing"`
	}{decoy, decoy.SystemPrompt()}
	if personaJSON, err := json.Marshal(personaRecord); err == nil {
		h.archive.UpsertSession(ctx, sessionID, personaJSON)
	}
	h.archive.AppendMessage(ctx, sessionID, "scammer", req.Message.Text)
	h.archive.AppendMessage(ctx, sessionID, "agent", result.Reply)
	h.archive.SaveSnapshot(ctx, sessionID, bundle, result.Memory)

	if scamDetected && bundle.HasActionableIntel() && totalMessages >= h.cfg.CallbackAfter {
		payload := report.BuildPayload(sessionID, totalMessages, bundle, notes)
		if h.reporter.Send(payload) {
			h.archive.MarkCallbackSent(ctx, sessionID)
		}
		log.Printf("[INTEL] Session %s: %d indicator(s) captured (handles=%v accounts=%v)",
			sessionID, bundle.Total(), bundle.PaymentHandles, bundle.BankAccounts)
	}

	return &chatResponse{
		Status:       "success",
		ScamDetected: scamDetected,
		EngagementMetrics: engagementMetrics{
			// Rough engagement estimate at 45s per exchanged message.
			EngagementDurationSeconds: totalMessages * 45,
			TotalMessagesExchanged:    totalMessages,
		},
		ExtractedIntel: extractedIntel{
			BankAccounts:       emptyNotNil(bundle.BankAccounts),
			UPIIDs:             emptyNotNil(bundle.PaymentHandles),
			PhishingLinks:      emptyNotNil(bundle.URLs),
			PhoneNumbers:       emptyNotNil(bundle.Phones),
			SuspiciousKeywords: emptyNotNil(bundle.Keywords),
		},
		AgentNotes: notes,
		Reply:      result.Reply,
	}, nil
}

func emptyNotNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cfg := config.NewDefaultConfig()
		if len(os.Args) > 2 {
			cfg.ListenAddr = ":" + strings.TrimPrefix(os.Args[2], ":")
		}
		runHTTPServer(cfg)
	case "analyze":
		if len(os.Args) < 3 {
			fmt.Println("Usage: jaal analyze <text>")
			os.Exit(1)
		}
		runCLIAnalyze(strings.Join(os.Args[2:], " "))
	case "version":
		fmt.Printf("jaal v%s\n", Version)
		fmt.Println("Counter-scam engagement gateway")
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("jaal v%s - Counter-scam engagement gateway\n\n", Version)
	fmt.Println("Usage:")
	fmt.Println("  jaal serve [port]     Start HTTP server (default: 8080)")
	fmt.Println("  jaal analyze <text>   Extract indicators and intents from one message")
	fmt.Println("  jaal version          Show version")
	fmt.Println("")
	fmt.Println("Examples:")
	fmt.Println("  jaal serve 3000")
	fmt.Println("  jaal analyze \"Your account is blocked, share OTP with officer Sharma\"")
	fmt.Println("")
	fmt.Println("Environment Variables:")
	fmt.Println("  JAAL_API_KEY       API key required on inbound requests")
	fmt.Println("  JAAL_REDIS_ADDR    Redis address for shared session state")
	fmt.Println("  JAAL_POSTGRES_DSN  Postgres DSN for the engagement archive")
	fmt.Println("  JAAL_CALLBACK_URL  Evaluation endpoint for intelligence reports")
}

// ============================================================================
// HTTP Server Mode
// ============================================================================

func runHTTPServer(cfg *config.Config) {
	cfg.MustValidate()
	h := NewHoneypot(cfg)

	app := fiber.New(fiber.Config{
		AppName: "jaal",
	})

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"service":   "jaal honeypot gateway",
			"version":   Version,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"callbacks": h.reporter.Stats(),
		})
	})

	app.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "jaal",
			"version": Version,
			"endpoints": []string{
				"POST /api/honeypot",
				"GET  /health",
			},
		})
	})

	handler := func(c fiber.Ctx) error {
		if cfg.APIKey != "" && c.Get("x-api-key") != cfg.APIKey {
			log.Println("[WARN] Unauthorized request - invalid API key")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Unauthorized: Invalid API Key",
			})
		}

		var req chatRequest
		if err := c.Bind().Body(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": "invalid JSON body",
			})
		}

		resp, err := h.Handle(c.Context(), &req)
		if err != nil {
			// Never drop the conversation: a processing error still gets a
			// plausible in-character reply.
			log.Printf("[WARN] Request processing failed: %v", err)
			return c.JSON(&chatResponse{
				Status:            "success",
				ScamDetected:      false,
				EngagementMetrics: engagementMetrics{TotalMessagesExchanged: 1},
				ExtractedIntel: extractedIntel{
					BankAccounts: []string{}, UPIIDs: []string{}, PhishingLinks: []string{},
					PhoneNumbers: []string{}, SuspiciousKeywords: []string{},
				},
				AgentNotes: "Error occurred, using fallback response",
				Reply:      fallbackReplies[int(time.Now().UnixNano())%len(fallbackReplies)],
			})
		}
		return c.JSON(resp)
	}

	app.Post("/api/honeypot", handler)
	// Hyphenated alias kept for older evaluator clients.
	app.Post("/api/honey-pot", handler)

	log.Printf("[STARTUP] jaal gateway v%s listening on %s", Version, cfg.ListenAddr)
	log.Printf("[STARTUP] Endpoints:")
	log.Printf("[STARTUP]   POST /api/honeypot  - Engagement endpoint")
	log.Printf("[STARTUP]   GET  /health        - Health check")

	if err := app.Listen(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}

// ============================================================================
// CLI Mode
// ============================================================================

func runCLIAnalyze(text string) {
	bundle := intel.Extract(text)
	intents := convo.DetectIntents(text)

	out := struct {
		Text          string         `json:"text"`
		PrimaryIntent convo.Intent   `json:"primary_intent"`
		Intents       []convo.Intent `json:"intents"`
		Indicators    *intel.Bundle  `json:"indicators"`
	}{
		Text:          text,
		PrimaryIntent: convo.PrimaryIntent(intents),
		Intents:       intents,
		Indicators:    bundle,
	}

	encoded, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(encoded))
}
