package patterns

// =============================================================================
// INDICATOR EXTRACTION PATTERNS
// Registered here and compiled once at package init. The extraction rules in
// pkg/intel consume these; keep regex changes and rule changes in sync.
// =============================================================================

func (r *Registry) registerIndicatorPatterns() {
	// Payment-handle / email shaped tokens. One permissive pattern; the
	// handle-vs-email decision happens in the extraction rules, not here.
	r.register("handle_token", `[A-Za-z0-9][A-Za-z0-9._-]*@[A-Za-z][A-Za-z0-9.-]*`, CategoryHandleToken,
		"user@domain token, payment handle or email")

	// Account-number candidates. Go's RE2 has no lookarounds, so \b does the
	// job the Python original did with (?<!\d)...(?!\d): a digit inside a
	// longer run is never at a word boundary.
	r.register("digit_run", `\b\d{10,18}\b`, CategoryDigitRun,
		"10-18 digit run, bank account candidate")

	// Mobile numbers carrying a country-code prefix are phones outright.
	r.register("phone_cc_plus", `\+91[\s-]?[6-9]\d{9}\b`, CategoryPhonePrefixed,
		"+91 prefixed mobile number")
	r.register("phone_cc_bare", `\b91[\s-][6-9]\d{9}\b`, CategoryPhonePrefixed,
		"91- prefixed mobile number")

	// Bare 10-digit mobile candidates, continuous or 5-5 split. These are
	// ambiguous with account numbers and go through the context-window rules.
	r.register("phone_bare", `\b[6-9]\d{4}[\s-]?\d{5}\b`, CategoryPhoneBare,
		"bare 10-digit mobile candidate")

	// Bank routing codes: 4 letters, a zero, 6 alphanumerics. Matched
	// case-insensitively; extraction uppercases the result.
	r.register("routing_code", `(?i)\b[A-Z]{4}0[A-Z0-9]{6}\b`, CategoryRoutingCode,
		"bank routing code")

	// National identity numbers: 12 digits, first digit 2-9. The spaced form
	// is specific enough to accept anywhere; the continuous form needs an
	// identity-context keyword (checked by the extraction rule) so it does
	// not collide with generic 12-digit account numbers.
	r.register("national_id_spaced", `\b[2-9]\d{3}\s\d{4}\s\d{4}\b`, CategoryNationalIDSpaced,
		"spaced 4-4-4 identity number")
	r.register("national_id_plain", `\b[2-9]\d{11}\b`, CategoryNationalIDPlain,
		"continuous 12-digit identity number")

	// Tax identifiers: 5 letters + 4 digits + 1 letter, case-insensitive.
	r.register("tax_id", `(?i)\b[A-Z]{5}\d{4}[A-Z]\b`, CategoryTaxID,
		"tax identification code")

	// Links. Full URLs always; shortener domains also without a scheme.
	r.register("url_scheme", `https?://[^\s<>"{}|\\^`+"`"+`\[\]]+`, CategoryURL,
		"scheme-prefixed URL")
	r.register("shortener_bitly", `\bbit\.ly/[^\s]+`, CategoryShortener, "bit.ly link without scheme")
	r.register("shortener_tinyurl", `\btinyurl\.com/[^\s]+`, CategoryShortener, "tinyurl link without scheme")
	r.register("shortener_cuttly", `\bcutt\.ly/[^\s]+`, CategoryShortener, "cutt.ly link without scheme")
	r.register("shortener_rbgy", `\brb\.gy/[^\s]+`, CategoryShortener, "rb.gy link without scheme")
	r.register("shortener_tco", `\bt\.co/[^\s]+`, CategoryShortener, "t.co link without scheme")
	r.register("shortener_wame", `\bwa\.me/\d+`, CategoryShortener, "messaging deep link")

	// Employee/staff identifier fragments the scammer volunteers about
	// themselves. Deliberately loose; recall beats precision here.
	r.register("credential_labelled",
		`(?i)\b(?:employee|emp|staff|badge|officer)\s*(?:id|no\.?|number|code)?\s*(?:is|:|-)?\s*([A-Z]{2,6}-?\d{3,8}[A-Za-z]*)`,
		CategoryCredential, "labelled employee/badge identifier")
	r.register("credential_emp_token", `(?i)\bEmp[A-Za-z]*\d{2,8}[A-Za-z]*\b`, CategoryCredential,
		"Emp-prefixed identifier token")
}
