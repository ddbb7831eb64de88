// Package patterns is the single source of truth for every regular
// expression and lookup table the engagement engine matches against:
// financial-indicator extraction patterns, scammer-intent pattern groups,
// and scam-archetype signatures.
//
// Design principles:
// - COMPILE ONCE: All patterns compiled at package init, not per-request
// - DRY: Extraction, classification and memory code all read from here
// - CATEGORIZED: Patterns organized by category for targeted scans
// - DATA ONLY: No conversation state lives in this package
package patterns

import (
	"regexp"
	"sync"
)

// Category identifies a group of related patterns.
type Category string

const (
	// Indicator extraction categories
	CategoryHandleToken      Category = "handle_token"       // user@domain shaped tokens (payment handle OR email)
	CategoryDigitRun         Category = "digit_run"          // 10-18 digit runs (account candidates)
	CategoryPhonePrefixed    Category = "phone_prefixed"     // mobile numbers with a country-code prefix
	CategoryPhoneBare        Category = "phone_bare"         // bare 10-digit mobile candidates
	CategoryRoutingCode      Category = "routing_code"       // 4 letters + 0 + 6 alphanumeric
	CategoryNationalIDSpaced Category = "national_id_spaced" // 4-4-4 spaced 12-digit identity numbers
	CategoryNationalIDPlain  Category = "national_id_plain"  // continuous 12-digit identity numbers
	CategoryTaxID            Category = "tax_id"             // 5 letters + 4 digits + 1 letter
	CategoryURL              Category = "url"                // scheme-prefixed links
	CategoryShortener        Category = "shortener"          // scheme-less shortener links
	CategoryCredential       Category = "credential"         // employee/staff identifier fragments

	// Scammer-intent categories (one per intent, see pkg/convo)
	CategoryIntentOTP           Category = "intent_otp"
	CategoryIntentAccount       Category = "intent_account"
	CategoryIntentPaymentHandle Category = "intent_payment_handle"
	CategoryIntentTransfer      Category = "intent_transfer"
	CategoryIntentLink          Category = "intent_link"
	CategoryIntentApp           Category = "intent_app"
	CategoryIntentPersonalInfo  Category = "intent_personal_info"
	CategoryIntentCardDetails   Category = "intent_card_details"
	CategoryIntentFear          Category = "intent_fear"
	CategoryIntentUrgency       Category = "intent_urgency"
	CategoryIntentGreeting      Category = "intent_greeting"

	// Scam-archetype signature categories (see pkg/convo memory tracking)
	CategoryArchBankFraud     Category = "arch_bank_fraud"
	CategoryArchDigitalArrest Category = "arch_digital_arrest"
	CategoryArchLottery       Category = "arch_lottery"
	CategoryArchIdentity      Category = "arch_identity"
	CategoryArchSIMSwap       Category = "arch_sim_swap"
	CategoryArchCourier       Category = "arch_courier"
	CategoryArchInvestment    Category = "arch_investment"
	CategoryArchLoan          Category = "arch_loan"
	CategoryArchRefund        Category = "arch_refund"
	CategoryArchKYC           Category = "arch_kyc"
)

// Pattern holds a compiled regex with metadata.
type Pattern struct {
	Name        string         // Human-readable name for logging and tests
	Regex       *regexp.Regexp // Compiled regex (never nil after init)
	Category    Category       // Pattern category
	Description string         // What this pattern matches
}

// Registry holds all compiled patterns, organized by category.
type Registry struct {
	mu         sync.RWMutex
	byCategory map[Category][]*Pattern
	all        []*Pattern
}

// global singleton - initialized once at package load
var (
	globalRegistry *Registry
	initOnce       sync.Once
)

// Get returns the global pattern registry (singleton).
// Thread-safe and guaranteed to be initialized.
func Get() *Registry {
	initOnce.Do(func() {
		globalRegistry = newRegistry()
	})
	return globalRegistry
}

// newRegistry creates and populates the pattern registry.
func newRegistry() *Registry {
	r := &Registry{
		byCategory: make(map[Category][]*Pattern),
		all:        make([]*Pattern, 0, 128),
	}

	r.registerIndicatorPatterns()
	r.registerIntentPatterns()
	r.registerArchetypePatterns()

	return r
}

// register adds a pattern to the registry (internal use only).
func (r *Registry) register(name string, pattern string, category Category, description string) {
	compiled := regexp.MustCompile(pattern)
	p := &Pattern{
		Name:        name,
		Regex:       compiled,
		Category:    category,
		Description: description,
	}

	r.byCategory[category] = append(r.byCategory[category], p)
	r.all = append(r.all, p)
}

// GetByCategory returns all patterns for a specific category.
// Returns empty slice if category not found (never nil).
func (r *Registry) GetByCategory(cat Category) []*Pattern {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if patterns, ok := r.byCategory[cat]; ok {
		return patterns
	}
	return []*Pattern{}
}

// MatchAny checks if text matches any pattern in the given categories.
// Returns the first matching pattern or nil, optimized for early exit.
func (r *Registry) MatchAny(text string, cats ...Category) *Pattern {
	for _, cat := range cats {
		for _, p := range r.GetByCategory(cat) {
			if p.Regex.MatchString(text) {
				return p
			}
		}
	}
	return nil
}

// FindAll returns every (possibly duplicated) substring of text matched by
// any pattern in the category, in pattern declaration order. Callers own
// deduplication and normalization.
func (r *Registry) FindAll(text string, cat Category) []string {
	var out []string
	for _, p := range r.GetByCategory(cat) {
		out = append(out, p.Regex.FindAllString(text, -1)...)
	}
	return out
}

// FindAllIndex returns the byte spans of every match for the category.
// Used by extraction rules that need the surrounding context window.
func (r *Registry) FindAllIndex(text string, cat Category) [][]int {
	var out [][]int
	for _, p := range r.GetByCategory(cat) {
		out = append(out, p.Regex.FindAllStringIndex(text, -1)...)
	}
	return out
}

// TotalPatterns returns the total count of registered patterns.
func (r *Registry) TotalPatterns() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.all)
}

// CategoryCount returns the number of patterns in a category.
func (r *Registry) CategoryCount(cat Category) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byCategory[cat])
}
