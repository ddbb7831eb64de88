package patterns

import (
	"regexp"
	"strings"
	"sync"
)

// Lexicon bundles the lookup tables used by extraction and disambiguation:
// the scam-keyword list, known payment-handle suffixes, institution aliases,
// and the context-keyword sets that resolve ambiguous numbers.
//
// A Lexicon is immutable after Build; the active singleton can be replaced
// once at startup (see loader.go) but never mutated in place.
type Lexicon struct {
	// Keywords is the scam lexicon in declaration order. Single-word
	// entries match on word boundaries; multi-word entries as substrings.
	Keywords []string

	// HandleSuffixes are bank/wallet short codes that mark user@suffix
	// tokens as payment handles.
	HandleSuffixes map[string]bool

	// BankAliases maps a literal name/alias to a canonical short name.
	BankAliases map[string]string

	// RoutingPrefixes maps a 4-letter routing-code prefix to the canonical
	// short name of the institution it belongs to.
	RoutingPrefixes map[string]string

	// Context-keyword sets for the 10-digit phone/account tie-break and the
	// national-ID continuous form.
	AccountContext  []string
	PhoneContext    []string
	IdentityContext []string
	EmailContext    []string

	// TLDs is the suffix list that marks a handle-shaped token's domain as
	// an email domain.
	TLDs []string

	// compiled word-boundary matchers, one per single-word keyword
	keywordRes []*regexp.Regexp
	multiWords []bool
}

// Build compiles the per-keyword word-boundary matchers. Must be called
// after populating Keywords; DefaultLexicon and Load do this for you.
func (l *Lexicon) Build() {
	l.keywordRes = make([]*regexp.Regexp, len(l.Keywords))
	l.multiWords = make([]bool, len(l.Keywords))
	for i, kw := range l.Keywords {
		if strings.ContainsAny(kw, " /") {
			l.multiWords[i] = true
			continue
		}
		l.keywordRes[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
	}
}

// MatchKeywords returns every lexicon keyword present in text, in lexicon
// order. Single-word entries require word boundaries ("now" never matches
// inside "snow"); multi-word entries match as literal substrings.
func (l *Lexicon) MatchKeywords(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for i, kw := range l.Keywords {
		if l.multiWords[i] {
			if strings.Contains(lower, kw) {
				found = append(found, kw)
			}
			continue
		}
		if l.keywordRes[i] != nil && l.keywordRes[i].MatchString(text) {
			found = append(found, kw)
		}
	}
	return found
}

// IsHandleSuffix reports whether the given domain (lowercased, trailing
// dots stripped) is a known payment-handle suffix.
func (l *Lexicon) IsHandleSuffix(domain string) bool {
	return l.HandleSuffixes[strings.Trim(strings.ToLower(domain), ".")]
}

// HasTLD reports whether the domain ends in a recognized top-level domain.
func (l *Lexicon) HasTLD(domain string) bool {
	d := strings.ToLower(domain)
	for _, tld := range l.TLDs {
		if strings.HasSuffix(d, tld) {
			return true
		}
	}
	return false
}

// BankFromRoutingPrefix resolves the 4-letter prefix of a routing code to a
// canonical institution short name; empty string if unknown.
func (l *Lexicon) BankFromRoutingPrefix(code string) string {
	if len(code) < 4 {
		return ""
	}
	return l.RoutingPrefixes[strings.ToUpper(code[:4])]
}

// MentionedBanks returns the canonical short names of every institution
// whose name or alias appears in text, in no particular order but
// deduplicated.
func (l *Lexicon) MentionedBanks(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var out []string
	for alias, canon := range l.BankAliases {
		var hit bool
		if strings.ContainsAny(alias, " ") {
			hit = strings.Contains(lower, alias)
		} else {
			// Short aliases like "sbi" need boundaries so "sbin0001234"
			// inside a routing code does not double-count.
			hit = wordBoundaryContains(lower, alias)
		}
		if hit && !seen[canon] {
			seen[canon] = true
			out = append(out, canon)
		}
	}
	return out
}

// ContainsAnyWord reports whether any of the given context keywords appears
// in the (already lowercased) window. Multi-word entries are substring
// matched, single words on boundaries.
func ContainsAnyWord(window string, words []string) bool {
	for _, w := range words {
		if strings.ContainsAny(w, " /") {
			if strings.Contains(window, w) {
				return true
			}
			continue
		}
		if wordBoundaryContains(window, w) {
			return true
		}
	}
	return false
}

func wordBoundaryContains(lower, word string) bool {
	idx := 0
	for {
		i := strings.Index(lower[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isWordByte(lower[start-1])
		afterOK := end == len(lower) || !isWordByte(lower[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

var (
	activeLexicon *Lexicon
	lexiconOnce   sync.Once
	lexiconMu     sync.RWMutex
)

// ActiveLexicon returns the lexicon in effect: the built-in defaults unless
// SetActiveLexicon installed an override at startup.
func ActiveLexicon() *Lexicon {
	lexiconOnce.Do(func() {
		lexiconMu.Lock()
		if activeLexicon == nil {
			activeLexicon = DefaultLexicon()
		}
		lexiconMu.Unlock()
	})
	lexiconMu.RLock()
	defer lexiconMu.RUnlock()
	return activeLexicon
}

// SetActiveLexicon installs a lexicon as the process-wide active one.
// Intended to be called once during startup, before serving traffic.
func SetActiveLexicon(l *Lexicon) {
	lexiconMu.Lock()
	activeLexicon = l
	lexiconMu.Unlock()
}

// DefaultLexicon returns the built-in lookup tables.
func DefaultLexicon() *Lexicon {
	l := &Lexicon{
		Keywords: []string{
			// Urgency
			"urgent", "immediately", "now", "today only", "expires", "last chance", "limited time",
			// Fear
			"blocked", "suspended", "arrested", "police", "cbi", "fraud", "illegal", "warrant",
			"cyber crime", "seized", "compromised",
			// Action
			"verify", "confirm", "update", "kyc", "otp", "pin", "password", "verification code", "screen share",
			// Money
			"transfer", "pay", "send money", "refund", "chargeback", "cashback", "prize", "lottery",
			"won", "fine", "penalty", "processing fee", "clearance",
			// Authority
			"bank manager", "customer care", "support", "helpline", "toll free", "rbi", "government",
			"income tax", "gst", "army", "officer", "captain", "colonel", "military",
			// Technical
			"link", "click", "download", "install", "app", "apk", "remote access", "anydesk",
			"teamviewer", "quick support",
			// Channels
			"whatsapp", "telegram", "sms", "email",
			// Identity
			"aadhaar", "pan", "kyc update", "video kyc", "aadhaar number", "pan card", "pan number",
			"aeps", "biometric", "fingerprint", "uidai", "sim swap", "sim card", "deactivate",
			"reactivate", "reissue",
			// Payment tactics
			"qr", "scan", "upi collect", "payment request", "request money",
			// Delivery scams
			"courier", "parcel", "customs", "delivery charge", "fedex", "dhl",
			// Investment scams
			"crypto", "bitcoin", "investment", "invest", "trading", "profit", "loan", "emi",
			// Marketplace scams
			"deal", "offer", "coupon", "free", "buy", "sell", "marketplace", "olx",
			// Status pressure
			"claim", "pending", "approved", "eligible",
		},
		HandleSuffixes: setOf(
			"ybl", "oksbi", "okicici", "okhdfcbank", "okaxis", "okpnb", "paytm", "axl", "ibl",
			"upi", "sbi", "icici", "hdfcbank", "axis", "pnb", "kotak", "yesbank",
			"barodampay", "idfcbank", "fakeupi", "fakebank",
		),
		BankAliases: map[string]string{
			"sbi": "sbi", "state bank": "sbi", "state bank of india": "sbi",
			"hdfc": "hdfc", "hdfc bank": "hdfc",
			"icici": "icici", "icici bank": "icici",
			"axis": "axis", "axis bank": "axis",
			"pnb": "pnb", "punjab national": "pnb",
			"kotak": "kotak", "kotak mahindra": "kotak",
			"yes bank": "yesbank",
			"bank of baroda": "bob", "baroda": "bob",
			"canara": "canara", "canara bank": "canara",
			"union bank": "union",
			"idfc": "idfc", "idfc first": "idfc",
			"indusind": "indusind",
			"federal bank": "federal",
			"idbi": "idbi",
			"paytm payments bank": "paytm",
		},
		RoutingPrefixes: map[string]string{
			"SBIN": "sbi", "HDFC": "hdfc", "ICIC": "icici", "UTIB": "axis",
			"PUNB": "pnb", "KKBK": "kotak", "YESB": "yesbank", "BARB": "bob",
			"CNRB": "canara", "UBIN": "union", "IDFB": "idfc", "INDB": "indusind",
			"FDRL": "federal", "IBKL": "idbi", "PYTM": "paytm",
		},
		AccountContext: []string{
			"account", "a/c", "acc", "acct", "ifsc", "branch", "neft", "rtgs", "imps",
			"savings", "current", "passbook", "deposit",
		},
		// "number" is deliberately absent here: "account number" is the
		// most common account phrasing and would poison the tie-break.
		PhoneContext: []string{
			"call", "phone", "mobile", "whatsapp", "contact", "helpline",
			"sms", "dial", "ring", "miss call", "missed call",
		},
		IdentityContext: []string{
			"aadhaar", "aadhar", "uidai", "verification", "identity", "kyc",
		},
		EmailContext: []string{
			"email", "e-mail", "mail",
		},
		TLDs: []string{
			".com", ".in", ".org", ".net", ".co", ".info", ".io", ".gov", ".edu", ".biz", ".me",
		},
	}
	l.Build()
	return l
}

func setOf(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, it := range items {
		m[it] = true
	}
	return m
}
