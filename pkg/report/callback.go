// Package report delivers final intelligence reports to the evaluation
// endpoint. Delivery is fire-and-forget: the engagement reply never waits
// on the callback, and a failed delivery is logged, not surfaced.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jaalhq/jaal/pkg/httputil"
	"github.com/jaalhq/jaal/pkg/intel"
)

// ExtractedIntelligence is the indicator section of the callback payload,
// in the field names the evaluator expects.
type ExtractedIntelligence struct {
	BankAccounts       []string `json:"bankAccounts"`
	UPIIDs             []string `json:"upiIds"`
	PhishingLinks      []string `json:"phishingLinks"`
	PhoneNumbers       []string `json:"phoneNumbers"`
	SuspiciousKeywords []string `json:"suspiciousKeywords"`
}

// Payload is the full callback body.
type Payload struct {
	ReportID               string                `json:"reportId"`
	SessionID              string                `json:"sessionId"`
	ScamDetected           bool                  `json:"scamDetected"`
	TotalMessagesExchanged int                   `json:"totalMessagesExchanged"`
	ExtractedIntelligence  ExtractedIntelligence `json:"extractedIntelligence"`
	AgentNotes             string                `json:"agentNotes"`
}

// BuildPayload shapes a merged bundle into the evaluator's format. The
// report ID is fresh per delivery so retries are distinguishable upstream.
func BuildPayload(sessionID string, totalMessages int, bundle *intel.Bundle, notes string) *Payload {
	if bundle == nil {
		bundle = intel.NewBundle()
	}
	return &Payload{
		ReportID:               uuid.NewString(),
		SessionID:              sessionID,
		ScamDetected:           bundle.HasActionableIntel(),
		TotalMessagesExchanged: totalMessages,
		ExtractedIntelligence: ExtractedIntelligence{
			BankAccounts:       emptyNotNil(bundle.BankAccounts),
			UPIIDs:             emptyNotNil(bundle.PaymentHandles),
			PhishingLinks:      emptyNotNil(bundle.URLs),
			PhoneNumbers:       emptyNotNil(bundle.Phones),
			SuspiciousKeywords: emptyNotNil(bundle.Keywords),
		},
		AgentNotes: notes,
	}
}

// emptyNotNil keeps absent fields as [] in JSON rather than null.
func emptyNotNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Sender delivers payloads asynchronously with bounded concurrency.
type Sender struct {
	url    string
	apiKey string
	client *http.Client
	sem    *httputil.Semaphore
}

// NewSender builds a sender for the given callback URL. An empty URL
// disables delivery; Send becomes a logged no-op.
func NewSender(url, apiKey string) *Sender {
	return &Sender{
		url:    url,
		apiKey: apiKey,
		client: httputil.MediumClient(),
		sem:    httputil.NewSemaphore(32),
	}
}

// DeliveryStats reports callback backpressure for the health endpoint.
type DeliveryStats struct {
	InFlight int   `json:"in_flight"`
	Capacity int   `json:"capacity"`
	Dropped  int64 `json:"dropped"`
}

// Stats snapshots the current delivery pressure.
func (s *Sender) Stats() DeliveryStats {
	return DeliveryStats{
		InFlight: s.sem.InUse(),
		Capacity: s.sem.Capacity(),
		Dropped:  s.sem.DroppedCount(),
	}
}

// Send queues one delivery in the background. Returns false when delivery
// was not even attempted (disabled, or too many in flight).
func (s *Sender) Send(p *Payload) bool {
	if s.url == "" {
		return false
	}
	if !s.sem.TryAcquire() {
		log.Printf("[WARN] Callback dropped for %s: delivery queue full", p.SessionID)
		return false
	}

	go func() {
		defer s.sem.Release()
		if err := s.deliver(context.Background(), p); err != nil {
			log.Printf("[WARN] Callback failed for %s: %v", p.SessionID, err)
			return
		}
		log.Printf("[REPORT] Callback delivered for %s (actionable=%v, messages=%d)",
			p.SessionID, p.ScamDetected, p.TotalMessagesExchanged)
	}()
	return true
}

func (s *Sender) deliver(ctx context.Context, p *Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("x-api-key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post callback: %w", err)
	}
	defer httputil.DrainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		msg, _ := httputil.ReadErrorBody(resp.Body)
		return fmt.Errorf("callback returned %d: %s", resp.StatusCode, msg)
	}
	return nil
}
