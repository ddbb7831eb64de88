// Package intel turns free-text scam messages into structured indicator
// bundles: payment handles, bank accounts, routing codes, phone numbers,
// links, identity numbers, institutions, and lexicon keywords.
//
// Extraction is pure and total. A message with nothing in it yields an
// empty bundle, never an error.
package intel

import "sort"

// Bundle is the structured set of indicators extracted from one message,
// or from a whole conversation after merging. Every field is a sorted,
// deduplicated slice with set semantics.
type Bundle struct {
	PaymentHandles []string `json:"payment_handles"`
	BankAccounts   []string `json:"bank_accounts"`
	RoutingCodes   []string `json:"bank_routing_codes"`
	Phones         []string `json:"phone_numbers"`
	Emails         []string `json:"emails"`
	URLs           []string `json:"urls"`
	NationalIDs    []string `json:"national_ids"`
	TaxIDs         []string `json:"tax_ids"`
	Institutions   []string `json:"claimed_institutions"`
	Keywords       []string `json:"risk_keywords"`
	Credentials    []string `json:"claimed_credentials"`
}

// NewBundle returns an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{}
}

// HasActionableIntel reports whether the bundle carries intelligence worth
// escalating: at least one payment handle, bank account, link, or routing
// code. Keywords and phone numbers alone are not actionable.
func (b *Bundle) HasActionableIntel() bool {
	return len(b.PaymentHandles) > 0 || len(b.BankAccounts) > 0 ||
		len(b.URLs) > 0 || len(b.RoutingCodes) > 0
}

// IsEmpty reports whether no indicator of any kind was found.
func (b *Bundle) IsEmpty() bool {
	return b.Total() == 0
}

// Total counts indicators across all fields.
func (b *Bundle) Total() int {
	return len(b.PaymentHandles) + len(b.BankAccounts) + len(b.RoutingCodes) +
		len(b.Phones) + len(b.Emails) + len(b.URLs) + len(b.NationalIDs) +
		len(b.TaxIDs) + len(b.Institutions) + len(b.Keywords) + len(b.Credentials)
}

// Clone returns a deep copy.
func (b *Bundle) Clone() *Bundle {
	return &Bundle{
		PaymentHandles: cloneSlice(b.PaymentHandles),
		BankAccounts:   cloneSlice(b.BankAccounts),
		RoutingCodes:   cloneSlice(b.RoutingCodes),
		Phones:         cloneSlice(b.Phones),
		Emails:         cloneSlice(b.Emails),
		URLs:           cloneSlice(b.URLs),
		NationalIDs:    cloneSlice(b.NationalIDs),
		TaxIDs:         cloneSlice(b.TaxIDs),
		Institutions:   cloneSlice(b.Institutions),
		Keywords:       cloneSlice(b.Keywords),
		Credentials:    cloneSlice(b.Credentials),
	}
}

func cloneSlice(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// addUnique inserts v into the sorted set s, keeping order and uniqueness.
func addUnique(s []string, v string) []string {
	if v == "" {
		return s
	}
	i := sort.SearchStrings(s, v)
	if i < len(s) && s[i] == v {
		return s
	}
	s = append(s, "")
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func union(a, b []string) []string {
	out := cloneSlice(a)
	for _, v := range b {
		out = addUnique(out, v)
	}
	return out
}

func contains(s []string, v string) bool {
	i := sort.SearchStrings(s, v)
	return i < len(s) && s[i] == v
}
