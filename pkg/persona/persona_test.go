package persona

import (
	"reflect"
	"strings"
	"testing"

	"github.com/jaalhq/jaal/pkg/intel"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate("session-abc")
	b := Generate("session-abc")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same session ID produced different personas:\n%+v\n%+v", a, b)
	}

	c := Generate("session-xyz")
	if a.Name == c.Name && a.Financial.AccountNumber == c.Financial.AccountNumber {
		t.Error("different session IDs produced identical personas")
	}
}

func TestGeneratedFinancialsParse(t *testing.T) {
	// The decoy's own details must survive our extractor: a scammer will
	// paste them back, and they should register as valid indicators.
	p := Generate("session-parse-check")
	f := p.Financial

	text := "My account " + f.AccountNumber + " IFSC " + f.RoutingCode +
		", UPI " + f.PaymentHandle + ", call " + f.Phone
	b := intel.Extract(text)

	if len(b.BankAccounts) == 0 {
		t.Errorf("account %s did not parse, got %v", f.AccountNumber, b.BankAccounts)
	}
	if len(b.RoutingCodes) != 1 || b.RoutingCodes[0] != f.RoutingCode {
		t.Errorf("routing code %s did not parse, got %v", f.RoutingCode, b.RoutingCodes)
	}
	if len(b.PaymentHandles) != 1 || b.PaymentHandles[0] != f.PaymentHandle {
		t.Errorf("handle %s did not parse, got %v", f.PaymentHandle, b.PaymentHandles)
	}
}

func TestGeneratedCardPassesLuhn(t *testing.T) {
	for _, id := range []string{"s1", "s2", "s3", "s4", "s5"} {
		p := Generate(id)
		if len(p.Financial.CardNumber) != 16 {
			t.Errorf("card %s length = %d", p.Financial.CardNumber, len(p.Financial.CardNumber))
		}
		if !LuhnValid(p.Financial.CardNumber) {
			t.Errorf("card %s fails checksum", p.Financial.CardNumber)
		}
	}
}

func TestLuhn(t *testing.T) {
	testCases := []struct {
		number string
		valid  bool
	}{
		{"4532015112830366", true},
		{"79927398713", true},
		{"79927398710", false},
		{"4532015112830367", false},
		{"", false},
		{"41x1", false},
	}

	for _, tc := range testCases {
		if got := LuhnValid(tc.number); got != tc.valid {
			t.Errorf("LuhnValid(%q) = %v, want %v", tc.number, got, tc.valid)
		}
	}

	if d := LuhnCheckDigit("7992739871"); d != 3 {
		t.Errorf("check digit = %d, want 3", d)
	}
}

func TestSystemPromptContainsIdentity(t *testing.T) {
	p := Generate("session-prompt")
	prompt := p.SystemPrompt()

	for _, want := range []string{p.Name, p.City, p.Financial.Bank} {
		if !strings.Contains(prompt, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}
