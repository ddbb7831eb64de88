package patterns

import (
	"testing"
)

func TestRegistryInit(t *testing.T) {
	// Get should return a singleton registry
	r1 := Get()
	r2 := Get()

	if r1 != r2 {
		t.Error("Get() should return the same registry instance")
	}
}

func TestRegistryHasPatterns(t *testing.T) {
	r := Get()

	total := r.TotalPatterns()
	if total < 40 {
		t.Errorf("expected at least 40 patterns, got %d", total)
	}

	t.Logf("Registry loaded %d patterns", total)
}

func TestCategoryPatterns(t *testing.T) {
	r := Get()

	testCases := []struct {
		category    Category
		minPatterns int
	}{
		{CategoryHandleToken, 1},
		{CategoryDigitRun, 1},
		{CategoryPhonePrefixed, 2},
		{CategoryRoutingCode, 1},
		{CategoryURL, 1},
		{CategoryIntentOTP, 2},
		{CategoryIntentFear, 2},
		{CategoryIntentUrgency, 2},
		{CategoryArchBankFraud, 1},
		{CategoryArchDigitalArrest, 2},
	}

	for _, tc := range testCases {
		t.Run(string(tc.category), func(t *testing.T) {
			patterns := r.GetByCategory(tc.category)
			if len(patterns) < tc.minPatterns {
				t.Errorf("category %s: expected at least %d patterns, got %d",
					tc.category, tc.minPatterns, len(patterns))
			}
		})
	}
}

func TestMatchAny(t *testing.T) {
	r := Get()

	testCases := []struct {
		name       string
		text       string
		categories []Category
		wantMatch  bool
	}{
		{
			name:       "handle token",
			text:       "Send to winner@oksbi right now",
			categories: []Category{CategoryHandleToken},
			wantMatch:  true,
		},
		{
			name:       "routing code",
			text:       "Branch code SBIN0001234",
			categories: []Category{CategoryRoutingCode},
			wantMatch:  true,
		},
		{
			name:       "prefixed phone",
			text:       "Call +91-9876543210 immediately",
			categories: []Category{CategoryPhonePrefixed},
			wantMatch:  true,
		},
		{
			name:       "shortener",
			text:       "Click bit.ly/claim-prize to verify",
			categories: []Category{CategoryShortener},
			wantMatch:  true,
		},
		{
			name:       "otp intent",
			text:       "Share the OTP you received",
			categories: []Category{CategoryIntentOTP},
			wantMatch:  true,
		},
		{
			name:       "fear intent",
			text:       "Your account will be blocked and you will be arrested",
			categories: []Category{CategoryIntentFear},
			wantMatch:  true,
		},
		{
			name:       "digital arrest archetype",
			text:       "This is CBI. You are under digital arrest.",
			categories: []Category{CategoryArchDigitalArrest},
			wantMatch:  true,
		},
		{
			name:       "normal text",
			text:       "Hello, how has your day been?",
			categories: []Category{CategoryIntentOTP, CategoryIntentFear, CategoryRoutingCode},
			wantMatch:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			match := r.MatchAny(tc.text, tc.categories...)
			gotMatch := match != nil

			if gotMatch != tc.wantMatch {
				if tc.wantMatch {
					t.Errorf("expected match for %q, got none", tc.text)
				} else {
					t.Errorf("expected no match for %q, got %s", tc.text, match.Name)
				}
			}
		})
	}
}

func TestFindAll(t *testing.T) {
	r := Get()

	text := "Pay to fraud@ybl or helper@paytm, account 1234567890123456"
	handles := r.FindAll(text, CategoryHandleToken)
	if len(handles) != 2 {
		t.Fatalf("expected 2 handle tokens, got %d: %v", len(handles), handles)
	}

	runs := r.FindAll(text, CategoryDigitRun)
	if len(runs) != 1 || runs[0] != "1234567890123456" {
		t.Errorf("expected one 16-digit run, got %v", runs)
	}
}

func TestDigitRunBoundaries(t *testing.T) {
	r := Get()

	// Short fragments must not surface as digit runs.
	if got := r.FindAll("Last 4 digits are 3456, confirm", CategoryDigitRun); len(got) != 0 {
		t.Errorf("expected no digit runs for a 4-digit fragment, got %v", got)
	}
}

func BenchmarkMatchAnyIntents(b *testing.B) {
	r := Get()
	text := "Your SBI account is blocked. Share OTP now or face arrest. Call +91-9876543210."
	cats := []Category{
		CategoryIntentOTP, CategoryIntentAccount, CategoryIntentFear, CategoryIntentUrgency,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.MatchAny(text, cats...)
	}
}
