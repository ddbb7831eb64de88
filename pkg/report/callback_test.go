package report

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jaalhq/jaal/pkg/convo"
	"github.com/jaalhq/jaal/pkg/intel"
)

func sampleBundle() *intel.Bundle {
	return intel.Merge(intel.NewBundle(), intel.Extract(
		"Transfer to merchant@oksbi, account 123456789012, call +919876543210, visit http://verify-kyc.example.com urgent",
	))
}

func TestBuildPayload(t *testing.T) {
	b := sampleBundle()
	p := BuildPayload("sess-1", 12, b, "notes here")

	if p.ReportID == "" {
		t.Error("Expected non-empty report ID")
	}
	if p.SessionID != "sess-1" {
		t.Errorf("SessionID = %q", p.SessionID)
	}
	if !p.ScamDetected {
		t.Error("Expected ScamDetected with handles and accounts present")
	}
	if p.TotalMessagesExchanged != 12 {
		t.Errorf("TotalMessagesExchanged = %d", p.TotalMessagesExchanged)
	}
	if len(p.ExtractedIntelligence.UPIIDs) != 1 || p.ExtractedIntelligence.UPIIDs[0] != "merchant@oksbi" {
		t.Errorf("UPIIDs = %v", p.ExtractedIntelligence.UPIIDs)
	}
	if len(p.ExtractedIntelligence.BankAccounts) != 1 {
		t.Errorf("BankAccounts = %v", p.ExtractedIntelligence.BankAccounts)
	}
	if len(p.ExtractedIntelligence.PhoneNumbers) != 1 {
		t.Errorf("PhoneNumbers = %v", p.ExtractedIntelligence.PhoneNumbers)
	}
	if len(p.ExtractedIntelligence.PhishingLinks) != 1 {
		t.Errorf("PhishingLinks = %v", p.ExtractedIntelligence.PhishingLinks)
	}

	// Two fresh payloads never share a report ID.
	p2 := BuildPayload("sess-1", 12, b, "notes here")
	if p2.ReportID == p.ReportID {
		t.Error("Expected distinct report IDs per build")
	}
}

func TestBuildPayloadEmptyBundle(t *testing.T) {
	p := BuildPayload("sess-2", 3, nil, "")
	if p.ScamDetected {
		t.Error("Nil bundle should not flag a scam")
	}

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(raw), "null") {
		t.Errorf("Empty fields must serialize as [], got: %s", raw)
	}
	for _, key := range []string{"sessionId", "scamDetected", "totalMessagesExchanged",
		"extractedIntelligence", "bankAccounts", "upiIds", "phishingLinks",
		"phoneNumbers", "suspiciousKeywords", "agentNotes"} {
		if !strings.Contains(string(raw), `"`+key+`"`) {
			t.Errorf("Payload JSON missing %q key", key)
		}
	}
}

func TestSenderDelivers(t *testing.T) {
	received := make(chan *Payload, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %q", r.Header.Get("Content-Type"))
		}
		if r.Header.Get("x-api-key") != "secret" {
			t.Errorf("x-api-key = %q", r.Header.Get("x-api-key"))
		}
		body, _ := io.ReadAll(r.Body)
		var p Payload
		if err := json.Unmarshal(body, &p); err != nil {
			t.Errorf("Bad payload: %v", err)
		}
		received <- &p
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewSender(srv.URL, "secret")
	p := BuildPayload("sess-3", 7, sampleBundle(), "delivered")
	if !s.Send(p) {
		t.Fatal("Send returned false")
	}

	select {
	case got := <-received:
		if got.SessionID != "sess-3" {
			t.Errorf("SessionID = %q", got.SessionID)
		}
		if got.AgentNotes != "delivered" {
			t.Errorf("AgentNotes = %q", got.AgentNotes)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Callback never arrived")
	}
}

func TestSenderDisabled(t *testing.T) {
	s := NewSender("", "")
	if s.Send(BuildPayload("sess-4", 1, nil, "")) {
		t.Error("Disabled sender should report false")
	}
}

func TestSenderServerError(t *testing.T) {
	hits := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits <- struct{}{}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewSender(srv.URL, "")
	// Send must not panic or block on a failing endpoint.
	if !s.Send(BuildPayload("sess-5", 2, sampleBundle(), "")) {
		t.Fatal("Send returned false")
	}
	select {
	case <-hits:
	case <-time.After(5 * time.Second):
		t.Fatal("Endpoint never hit")
	}
}

func TestAgentNotes(t *testing.T) {
	mem := &convo.ScammerMemory{}
	mem.Observe("This is Rahul from SBI, your account is blocked, share the OTP now")
	mem.Observe("Share the OTP immediately or your account will be frozen")

	notes := AgentNotes(mem, sampleBundle())
	for _, want := range []string{"Rahul", "OTP"} {
		if !strings.Contains(notes, want) {
			t.Errorf("Notes missing %q: %s", want, notes)
		}
	}
}

func TestAgentNotesEmpty(t *testing.T) {
	notes := AgentNotes(nil, nil)
	if notes == "" {
		t.Error("Expected placeholder notes for empty session")
	}
}
