package convo

import (
	"math/rand"
	"strings"
	"testing"
)

func newTestResponder(seed int64) *Responder {
	return NewResponder(rand.New(rand.NewSource(seed)))
}

func TestFirstReplyAlwaysStalls(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		r := newTestResponder(seed)
		s := NewSessionState("s1")
		r.Respond(s, PhaseInitialContact, []Intent{IntentGreeting})

		if s.LastResponseType != TypeStall {
			t.Errorf("seed %d: first reply type = %s, want stall", seed, s.LastResponseType)
		}
	}
}

func TestPreviousTypeExcluded(t *testing.T) {
	r := newTestResponder(7)
	s := NewSessionState("s1")

	var prev ResponseType
	for i := 0; i < 20; i++ {
		r.Respond(s, PhaseExtractionAttempt, []Intent{IntentOTP})
		if i > 0 && s.LastResponseType == prev {
			t.Fatalf("turn %d repeated response type %s", i, s.LastResponseType)
		}
		prev = s.LastResponseType
	}
}

func TestFifteenDistinctReplies(t *testing.T) {
	r := newTestResponder(42)
	s := NewSessionState("s1")

	seen := make(map[string]bool)
	for i := 0; i < 15; i++ {
		phase := PhaseExtractionAttempt
		if i >= 7 {
			phase = PhasePersistence
		}
		reply, _ := r.Respond(s, phase, []Intent{IntentOTP, IntentUrgency})
		if seen[reply] {
			t.Errorf("turn %d repeated reply %q", i, reply)
		}
		seen[reply] = true
	}

	if len(seen) != 15 {
		t.Errorf("distinct replies = %d, want 15", len(seen))
	}
}

func TestOpeningHashBlocksNearDuplicates(t *testing.T) {
	s := NewSessionState("s1")
	s.RecordResponse("OTP? Let me check my phone... one minute beta.", TypeContextual)

	// Same first 8 words, different tail.
	if !s.lineUsed("OTP? Let me check my phone... one minute please sir.") {
		t.Error("opening-hash check should disqualify a near-duplicate line")
	}
	if s.lineUsed("Completely different opening that was never said before.") {
		t.Error("fresh line wrongly disqualified")
	}
}

func TestCategoryRotationSkipsKnownAndRecent(t *testing.T) {
	r := newTestResponder(3)
	s := NewSessionState("s1")
	s.Memory.PaymentHandle = "fraud@ybl" // already disclosed

	for i := 0; i < 6; i++ {
		_, cat := r.reverseLine(s, PhaseFinalPush)
		s.AskedCategories = append(s.AskedCategories, cat)
	}

	if len(s.AskedCategories) != 6 {
		t.Fatalf("asked categories = %v", s.AskedCategories)
	}
	for i, cat := range s.AskedCategories {
		if cat == CategoryPaymentHandle {
			t.Errorf("asked for payment handle at %d despite it being known", i)
		}
		// no category may repeat within a window of 3
		for j := i + 1; j < len(s.AskedCategories) && j <= i+3; j++ {
			if s.AskedCategories[j] == cat {
				t.Errorf("category %s repeated at %d and %d", cat, i, j)
			}
		}
	}
}

func TestReverseExtractionFlag(t *testing.T) {
	r := newTestResponder(11)
	s := NewSessionState("s1")

	sawReverse := false
	for i := 0; i < 25; i++ {
		_, reverse := r.Respond(s, PhaseFinalPush, []Intent{IntentOTP})
		if reverse {
			sawReverse = true
		}
	}
	if !sawReverse {
		t.Error("25 final-push replies produced no reverse-extraction ask")
	}
	if len(s.AskedCategories) == 0 {
		t.Error("asked-category log never appended")
	}
}

func TestCombinedReplyHalvesMarkedUsed(t *testing.T) {
	r := newTestResponder(5)
	r.reverseChance = 1.0
	s := NewSessionState("s1")

	sawCombined := false
	for i := 0; i < 10; i++ {
		reply, _ := r.Respond(s, PhaseFinalPush, []Intent{IntentOTP})
		for _, pool := range reversePools {
			for _, l := range pool {
				if reply == l || !strings.HasSuffix(reply, " "+l) {
					continue
				}
				sawCombined = true
				if !s.UsedLines[l] {
					t.Errorf("turn %d: appended ask %q not in used-line set", i, l)
				}
				if !s.UsedOpenings[openingHash(l)] {
					t.Errorf("turn %d: appended ask %q opening not in used set", i, l)
				}
				head := strings.TrimSuffix(reply, " "+l)
				if !s.UsedLines[head] {
					t.Errorf("turn %d: leading half %q not in used-line set", i, head)
				}
			}
		}
	}
	if !sawCombined {
		t.Fatal("no combined reply produced despite append chance 1.0")
	}
}

func TestAppendedAskNeverReplayedStandalone(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		r := newTestResponder(seed)
		r.reverseChance = 1.0
		s := NewSessionState("s1")

		var replies []string
		for i := 0; i < 10; i++ {
			reply, _ := r.Respond(s, PhaseFinalPush, []Intent{IntentAccountNumber})
			replies = append(replies, reply)
		}
		for i, early := range replies {
			for j := i + 1; j < len(replies); j++ {
				late := replies[j]
				if late == early || strings.HasSuffix(early, " "+late) || strings.HasSuffix(late, " "+early) {
					t.Errorf("seed %d: reply %d %q repeats content of reply %d %q",
						seed, j, late, i, early)
				}
			}
		}
	}
}

func TestCategoryLoggedOnlyForSentAsks(t *testing.T) {
	r := newTestResponder(9)
	r.reverseChance = 0 // no opportunistic tails
	s := NewSessionState("s1")

	reverseSent := 0
	for i := 0; i < 15; i++ {
		_, reverse := r.Respond(s, PhaseFinalPush, []Intent{IntentOTP})
		if reverse {
			reverseSent++
		}
	}
	if len(s.AskedCategories) != reverseSent {
		t.Errorf("asked-category log has %d entries, %d reverse asks were sent",
			len(s.AskedCategories), reverseSent)
	}
}

func TestRejectedTailNotLogged(t *testing.T) {
	r := newTestResponder(13)
	r.reverseChance = 1.0
	s := NewSessionState("s1")

	// Previous type reverse forces a non-reverse primary; with every ask
	// line already used, the drawn tail must be discarded.
	s.RecordResponse("warmup line", TypeReverseExtract)
	for _, pool := range reversePools {
		for _, l := range pool {
			s.markUsed(l)
		}
	}

	before := len(s.AskedCategories)
	_, reverse := r.Respond(s, PhaseFinalPush, []Intent{IntentOTP})
	if reverse {
		t.Fatal("tail should be rejected when every ask line is already used")
	}
	if len(s.AskedCategories) != before {
		t.Errorf("asked-category log grew for an ask that was never sent: %v", s.AskedCategories)
	}
}

func TestResponseHistoryWindowTrimmed(t *testing.T) {
	s := NewSessionState("s1")
	s.MaxHistory = 5
	for i := 0; i < 12; i++ {
		s.RecordResponse(string(rune('a'+i))+" unique line", TypeStall)
	}
	if len(s.ResponseHistory) != 5 {
		t.Errorf("history length = %d, want trimmed to 5", len(s.ResponseHistory))
	}
	if len(s.UsedLines) != 12 {
		t.Errorf("used-line set = %d entries, want all 12 retained", len(s.UsedLines))
	}
}
