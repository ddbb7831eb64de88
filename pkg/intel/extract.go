package intel

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jaalhq/jaal/pkg/patterns"
)

// Extract scans one message and returns its indicator bundle. It is a pure
// function of the text: deterministic, never fails, and returns an empty
// bundle when nothing matches.
func Extract(text string) *Bundle {
	b := NewBundle()
	if strings.TrimSpace(text) == "" {
		return b
	}

	// Fold compatibility forms (full-width digits, ligatures) so the
	// regexes see plain ASCII where the sender tried to dodge them.
	text = norm.NFKC.String(text)
	lower := lowerASCII(text)

	r := patterns.Get()
	lex := patterns.ActiveLexicon()

	extractHandlesAndEmails(b, text, lower, r, lex)

	// Phones with an explicit country code are unambiguous. Their spans
	// are recorded so the digit-run pass below does not re-classify the
	// trailing 10 digits as an account.
	consumed := extractPrefixedPhones(b, text, r)
	extractDigitRuns(b, text, lower, consumed, r, lex)
	extractSeparatedPhones(b, text, lower, consumed, r, lex)

	extractRoutingCodes(b, text, r, lex)
	extractNationalIDs(b, text, lower, r, lex)

	for _, id := range r.FindAll(text, patterns.CategoryTaxID) {
		b.TaxIDs = addUnique(b.TaxIDs, strings.ToUpper(id))
	}

	extractURLs(b, text, r)

	for _, bank := range lex.MentionedBanks(text) {
		b.Institutions = addUnique(b.Institutions, bank)
	}
	for _, kw := range lex.MatchKeywords(text) {
		b.Keywords = addUnique(b.Keywords, kw)
	}

	extractCredentials(b, text, r)
	return b
}

// extractHandlesAndEmails classifies every user@domain token as a payment
// handle or an email. The two sets stay disjoint:
//
//	known handle suffix          -> payment handle
//	recognized TLD               -> email, unless the domain base before
//	                                the first dot is itself a handle suffix
//	no TLD, "email" in message   -> email
//	anything else                -> payment handle (favor recall)
func extractHandlesAndEmails(b *Bundle, text, lower string, r *patterns.Registry, lex *patterns.Lexicon) {
	emailHint := patterns.ContainsAnyWord(lower, lex.EmailContext)

	for _, tok := range r.FindAll(text, patterns.CategoryHandleToken) {
		tok = strings.ToLower(strings.Trim(tok, ".,;:!?"))
		at := strings.LastIndex(tok, "@")
		if at <= 0 || at == len(tok)-1 {
			continue
		}
		domain := tok[at+1:]

		switch {
		case lex.IsHandleSuffix(domain):
			b.PaymentHandles = addUnique(b.PaymentHandles, tok)
		case lex.HasTLD(domain):
			base, _, _ := strings.Cut(domain, ".")
			if lex.IsHandleSuffix(base) {
				b.PaymentHandles = addUnique(b.PaymentHandles, tok)
			} else {
				b.Emails = addUnique(b.Emails, tok)
			}
		case emailHint:
			b.Emails = addUnique(b.Emails, tok)
		default:
			b.PaymentHandles = addUnique(b.PaymentHandles, tok)
		}
	}
}

func extractPrefixedPhones(b *Bundle, text string, r *patterns.Registry) [][]int {
	var consumed [][]int
	for _, cat := range []patterns.Category{patterns.CategoryPhonePrefixed} {
		for _, span := range r.FindAllIndex(text, cat) {
			b.Phones = addUnique(b.Phones, NormalizePhone(text[span[0]:span[1]]))
			consumed = append(consumed, span)
		}
	}
	return consumed
}

// extractDigitRuns handles bare digit sequences of 10 or more digits.
// Runs of 11-18 digits are always bank accounts. A bare 10-digit run
// starting 6-9 is ambiguous and goes through classifyTenDigit; other
// 10-digit runs are accounts.
func extractDigitRuns(b *Bundle, text, lower string, consumed [][]int, r *patterns.Registry, lex *patterns.Lexicon) {
	for _, span := range r.FindAllIndex(text, patterns.CategoryDigitRun) {
		if overlaps(span, consumed) {
			continue
		}
		raw := text[span[0]:span[1]]
		if len(raw) >= 11 {
			b.BankAccounts = addUnique(b.BankAccounts, raw)
			continue
		}
		if raw[0] >= '6' && raw[0] <= '9' &&
			classifyTenDigit(lower, span[0], span[1], raw, lex) == kindPhone {
			b.Phones = addUnique(b.Phones, NormalizePhone(raw))
			continue
		}
		b.BankAccounts = addUnique(b.BankAccounts, raw)
	}
}

// extractSeparatedPhones picks up 10-digit mobiles written with an inner
// space or dash ("98765 43210") that the contiguous digit-run pass cannot
// see. The shared classifier keeps the phone/account decision consistent
// with extractDigitRuns.
func extractSeparatedPhones(b *Bundle, text, lower string, consumed [][]int, r *patterns.Registry, lex *patterns.Lexicon) {
	for _, span := range r.FindAllIndex(text, patterns.CategoryPhoneBare) {
		if overlaps(span, consumed) {
			continue
		}
		raw := text[span[0]:span[1]]
		digits := digitsOnly(raw)
		if len(digits) != 10 {
			continue
		}
		if classifyTenDigit(lower, span[0], span[1], raw, lex) == kindPhone {
			b.Phones = addUnique(b.Phones, NormalizePhone(digits))
		} else if !contains(b.BankAccounts, digits) {
			b.BankAccounts = addUnique(b.BankAccounts, digits)
		}
	}
}

type numberKind int

const (
	kindPhone numberKind = iota
	kindAccount
)

// contextWindow is how far around an ambiguous number the classifier looks
// for account- or phone-context keywords.
const contextWindow = 80

// classifyTenDigit is the single tie-break for bare 10-digit numbers
// starting 6-9. Both the digit-run and separated-phone passes consult it,
// which is what keeps phone_numbers and bank_accounts mutually exclusive
// for a given span.
func classifyTenDigit(lower string, start, end int, raw string, lex *patterns.Lexicon) numberKind {
	ws := start - contextWindow
	if ws < 0 {
		ws = 0
	}
	we := end + contextWindow
	if we > len(lower) {
		we = len(lower)
	}
	window := lower[ws:we]

	accountCtx := patterns.ContainsAnyWord(window, lex.AccountContext)
	phoneCtx := patterns.ContainsAnyWord(window, lex.PhoneContext)

	switch {
	case accountCtx && !phoneCtx:
		return kindAccount
	case phoneCtx && !accountCtx:
		return kindPhone
	case strings.ContainsAny(raw, " -"):
		// Separator-formatted numbers read like phones.
		return kindPhone
	default:
		// Both contexts or neither: a bare 10-digit starting 6-9 is the
		// mobile-number shape, so phone wins.
		return kindPhone
	}
}

func extractRoutingCodes(b *Bundle, text string, r *patterns.Registry, lex *patterns.Lexicon) {
	for _, code := range r.FindAll(text, patterns.CategoryRoutingCode) {
		code = strings.ToUpper(code)
		b.RoutingCodes = addUnique(b.RoutingCodes, code)
		if bank := lex.BankFromRoutingPrefix(code); bank != "" {
			b.Institutions = addUnique(b.Institutions, bank)
		}
	}
}

// extractNationalIDs accepts the 4-4-4 spaced form unconditionally, and
// the continuous 12-digit form only when the message carries an identity
// context keyword. Without that context a continuous 12-digit run is just
// a long account number and stays out of this field.
func extractNationalIDs(b *Bundle, text, lower string, r *patterns.Registry, lex *patterns.Lexicon) {
	for _, id := range r.FindAll(text, patterns.CategoryNationalIDSpaced) {
		b.NationalIDs = addUnique(b.NationalIDs, digitsOnly(id))
	}
	if patterns.ContainsAnyWord(lower, lex.IdentityContext) {
		for _, id := range r.FindAll(text, patterns.CategoryNationalIDPlain) {
			b.NationalIDs = addUnique(b.NationalIDs, id)
		}
	}
}

func extractURLs(b *Bundle, text string, r *patterns.Registry) {
	for _, u := range r.FindAll(text, patterns.CategoryURL) {
		b.URLs = addUnique(b.URLs, NormalizeURL(u))
	}
	for _, u := range r.FindAll(text, patterns.CategoryShortener) {
		b.URLs = addUnique(b.URLs, NormalizeURL(u))
	}
}

func extractCredentials(b *Bundle, text string, r *patterns.Registry) {
	for _, p := range r.GetByCategory(patterns.CategoryCredential) {
		for _, m := range p.Regex.FindAllStringSubmatch(text, -1) {
			cred := m[0]
			if len(m) > 1 && m[1] != "" {
				cred = m[1]
			}
			b.Credentials = addUnique(b.Credentials, strings.TrimSpace(cred))
		}
	}
}

// NormalizePhone reduces a phone to canonical +91 form: strip everything
// but digits, keep the last 10, re-prefix the country code. Idempotent.
func NormalizePhone(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	return "+91" + digits
}

// NormalizeURL strips trailing punctuation a sentence leaves stuck to a
// link. Idempotent.
func NormalizeURL(raw string) string {
	return strings.TrimRight(raw, ".,;:!?)\"'")
}

// NormalizeHandle lowercases a payment handle and strips stray edge
// punctuation. Idempotent.
func NormalizeHandle(raw string) string {
	return strings.ToLower(strings.Trim(raw, ".,;:!?"))
}

// lowerASCII lowercases only A-Z, byte for byte. Full Unicode case
// folding can change byte length (e.g. U+0130), which would shift the
// span-indexed context windows taken from the lowered string.
func lowerASCII(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func digitsOnly(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

func overlaps(span []int, consumed [][]int) bool {
	for _, c := range consumed {
		if span[0] < c[1] && c[0] < span[1] {
			return true
		}
	}
	return false
}
