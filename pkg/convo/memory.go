package convo

import (
	"regexp"
	"strings"

	"github.com/jaalhq/jaal/pkg/intel"
	"github.com/jaalhq/jaal/pkg/patterns"
)

// ScamType is a coarse scam archetype inferred from signature phrases.
type ScamType string

const (
	ScamUnknown       ScamType = ""
	ScamDigitalArrest ScamType = "digital_arrest"
	ScamBankFraud     ScamType = "bank_fraud"
	ScamLottery       ScamType = "lottery"
	ScamIdentity      ScamType = "identity_theft"
	ScamSIMSwap       ScamType = "sim_swap"
	ScamCourier       ScamType = "courier"
	ScamInvestment    ScamType = "investment"
	ScamLoan          ScamType = "loan"
	ScamRefund        ScamType = "refund"
	ScamKYC           ScamType = "kyc"
)

// archetypeOrder is the fixed check order for style-switch detection.
// First matching archetype claims the message.
var archetypeOrder = []struct {
	scam ScamType
	cat  patterns.Category
}{
	{ScamDigitalArrest, patterns.CategoryArchDigitalArrest},
	{ScamBankFraud, patterns.CategoryArchBankFraud},
	{ScamLottery, patterns.CategoryArchLottery},
	{ScamIdentity, patterns.CategoryArchIdentity},
	{ScamSIMSwap, patterns.CategoryArchSIMSwap},
	{ScamCourier, patterns.CategoryArchCourier},
	{ScamInvestment, patterns.CategoryArchInvestment},
	{ScamLoan, patterns.CategoryArchLoan},
	{ScamRefund, patterns.CategoryArchRefund},
	{ScamKYC, patterns.CategoryArchKYC},
}

// ScammerMemory holds everything the counterparty has claimed about
// themselves across the conversation, plus derived pressure counters.
// Claim fields follow first-match-wins: an empty field takes the first
// capture, and only an explicit restatement overwrites it.
type ScammerMemory struct {
	Name          string `json:"name,omitempty"`
	EmployeeID    string `json:"employee_id,omitempty"`
	Institution   string `json:"institution,omitempty"`
	PaymentHandle string `json:"payment_handle,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Account       string `json:"account,omitempty"`
	RoutingCode   string `json:"routing_code,omitempty"`
	Branch        string `json:"branch,omitempty"`
	Role          string `json:"role,omitempty"`
	Email         string `json:"email,omitempty"`

	LinksShared []string `json:"links_shared,omitempty"`
	AppsPushed  []string `json:"apps_pushed,omitempty"`

	OTPRequests      int `json:"otp_requests"`
	AccountRequests  int `json:"account_requests"`
	UrgencyLevel     int `json:"urgency_level"`
	StyleSwitchCount int `json:"style_switch_count"`

	ScamType         ScamType `json:"scam_type,omitempty"`
	PreviousScamType ScamType `json:"previous_scam_type,omitempty"`
}

// Derived-claim capture patterns. These run against raw scammer text; the
// indicator-backed fields (handle, phone, account, routing code, email,
// employee ID) come from pkg/intel instead.
var (
	claimNameRe = regexp.MustCompile(
		`\b(?:[Ii] am|[Ii]'m|[Mm]y name is|[Tt]his is)\s+(?:[Mm]r\.?\s+|[Mm]s\.?\s+)?([A-Z][a-z]{2,})\b`)
	claimRoleRe = regexp.MustCompile(
		`(?i)\b(bank manager|branch manager|senior officer|nodal officer|inspector|sub.?inspector|constable|manager|officer|executive|representative|agent|investigator)\b`)
	claimBranchRe = regexp.MustCompile(
		`(?i)\b([A-Za-z]{3,})\s+branch\b`)
	appNameRe = regexp.MustCompile(
		`(?i)\b(anydesk|teamviewer|quick\s*support|airdroid|rustdesk)\b`)

	branchStopwords = map[string]bool{
		"your": true, "our": true, "the": true, "this": true, "that": true,
		"any": true, "nearest": true, "which": true, "main": true, "local": true,
	}
)

// Observe folds one scammer message into the memory: claim fields,
// pressure counters, and style-switch tracking. Call it once per new
// message; before replaying a full history, call ResetDerived first or
// the counters double-count.
func (m *ScammerMemory) Observe(text string) {
	b := intel.Extract(text)
	intents := DetectIntents(text)

	m.observeClaims(text, b)
	m.observeCounters(text, intents, b)
	m.observeArchetype(text)
}

func (m *ScammerMemory) observeClaims(text string, b *intel.Bundle) {
	if match := claimNameRe.FindStringSubmatch(text); match != nil {
		m.Name = match[1]
	}
	if match := claimRoleRe.FindStringSubmatch(text); match != nil {
		m.Role = strings.ToLower(match[1])
	}
	if match := claimBranchRe.FindStringSubmatch(text); match != nil {
		if w := strings.ToLower(match[1]); !branchStopwords[w] {
			m.Branch = match[1]
		}
	}
	if banks := patterns.ActiveLexicon().MentionedBanks(text); len(banks) > 0 {
		m.Institution = strings.ToUpper(banks[0])
	}

	if len(b.Credentials) > 0 {
		m.EmployeeID = b.Credentials[0]
	}
	if len(b.PaymentHandles) > 0 {
		m.PaymentHandle = b.PaymentHandles[0]
	}
	if len(b.Phones) > 0 {
		m.Phone = b.Phones[0]
	}
	if len(b.BankAccounts) > 0 {
		m.Account = b.BankAccounts[0]
	}
	if len(b.RoutingCodes) > 0 {
		m.RoutingCode = b.RoutingCodes[0]
	}
	if len(b.Emails) > 0 {
		m.Email = b.Emails[0]
	}
}

func (m *ScammerMemory) observeCounters(text string, intents []Intent, b *intel.Bundle) {
	for _, in := range intents {
		switch in {
		case IntentOTP:
			m.OTPRequests++
		case IntentAccountNumber:
			m.AccountRequests++
		case IntentUrgency:
			if m.UrgencyLevel < 3 {
				m.UrgencyLevel++
			}
		}
	}

	for _, u := range b.URLs {
		m.LinksShared = appendUnique(m.LinksShared, u)
	}
	for _, app := range appNameRe.FindAllString(text, -1) {
		m.AppsPushed = appendUnique(m.AppsPushed, strings.ToLower(app))
	}
}

func (m *ScammerMemory) observeArchetype(text string) {
	r := patterns.Get()
	for _, a := range archetypeOrder {
		if r.MatchAny(text, a.cat) == nil {
			continue
		}
		if m.ScamType != ScamUnknown && m.ScamType != a.scam {
			m.PreviousScamType = m.ScamType
			m.StyleSwitchCount++
		}
		m.ScamType = a.scam
		return
	}
}

// Frustrated reports whether the scammer is losing patience: three or more
// OTP demands, or sustained urgency pressure.
func (m *ScammerMemory) Frustrated() bool {
	return m.OTPRequests >= 3 || m.UrgencyLevel >= 2
}

// ResetDerived zeroes every cumulative counter and derived list ahead of a
// full-history replay. Claim fields survive the reset; they are idempotent
// under replay, the counters are not.
func (m *ScammerMemory) ResetDerived() {
	m.OTPRequests = 0
	m.AccountRequests = 0
	m.UrgencyLevel = 0
	m.StyleSwitchCount = 0
	m.LinksShared = nil
	m.AppsPushed = nil
	m.ScamType = ScamUnknown
	m.PreviousScamType = ScamUnknown
}

// HasValue reports whether the memory field backing a reverse-extraction
// category is already populated, meaning there is no point asking again.
func (m *ScammerMemory) HasValue(cat ExtractionCategory) bool {
	switch cat {
	case CategoryName:
		return m.Name != ""
	case CategoryEmployeeID:
		return m.EmployeeID != ""
	case CategoryPhone:
		return m.Phone != ""
	case CategoryPaymentHandle:
		return m.PaymentHandle != ""
	case CategoryRoutingCode:
		return m.RoutingCode != ""
	case CategoryEmail:
		return m.Email != ""
	case CategoryBranch:
		return m.Branch != ""
	case CategoryAccount:
		return m.Account != ""
	case CategoryDocument:
		return false // documents are re-askable; there is no single field
	default:
		return false
	}
}

func appendUnique(s []string, v string) []string {
	for _, x := range s {
		if x == v {
			return s
		}
	}
	return append(s, v)
}
