package intel

import "strings"

// Merge unions two bundles into a new one, re-normalizing and re-validating
// every field. Commutative and idempotent: Merge(a, a) equals a, and
// Merge(a, b) equals Merge(b, a). Neither input is mutated.
func Merge(a, b *Bundle) *Bundle {
	if a == nil {
		a = NewBundle()
	}
	if b == nil {
		b = NewBundle()
	}
	out := NewBundle()

	for _, h := range append(cloneSlice(a.PaymentHandles), b.PaymentHandles...) {
		out.PaymentHandles = addUnique(out.PaymentHandles, NormalizeHandle(h))
	}
	// Re-apply the length floor: short fragments that slipped into either
	// input (an upstream generator echoing "last 4 digits") are dropped.
	for _, acc := range append(cloneSlice(a.BankAccounts), b.BankAccounts...) {
		digits := digitsOnly(acc)
		if len(digits) >= 10 && len(digits) <= 18 {
			out.BankAccounts = addUnique(out.BankAccounts, digits)
		}
	}
	for _, c := range append(cloneSlice(a.RoutingCodes), b.RoutingCodes...) {
		out.RoutingCodes = addUnique(out.RoutingCodes, strings.ToUpper(c))
	}
	for _, p := range append(cloneSlice(a.Phones), b.Phones...) {
		if len(digitsOnly(p)) >= 10 {
			out.Phones = addUnique(out.Phones, NormalizePhone(p))
		}
	}
	for _, e := range append(cloneSlice(a.Emails), b.Emails...) {
		out.Emails = addUnique(out.Emails, strings.ToLower(e))
	}
	for _, u := range append(cloneSlice(a.URLs), b.URLs...) {
		out.URLs = addUnique(out.URLs, NormalizeURL(u))
	}
	for _, id := range append(cloneSlice(a.NationalIDs), b.NationalIDs...) {
		digits := digitsOnly(id)
		if len(digits) == 12 {
			out.NationalIDs = addUnique(out.NationalIDs, digits)
		}
	}
	for _, id := range append(cloneSlice(a.TaxIDs), b.TaxIDs...) {
		out.TaxIDs = addUnique(out.TaxIDs, strings.ToUpper(id))
	}
	out.Institutions = union(a.Institutions, b.Institutions)
	out.Keywords = union(a.Keywords, b.Keywords)
	out.Credentials = union(a.Credentials, b.Credentials)
	return out
}
