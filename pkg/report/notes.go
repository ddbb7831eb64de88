package report

import (
	"fmt"
	"strings"

	"github.com/jaalhq/jaal/pkg/convo"
	"github.com/jaalhq/jaal/pkg/intel"
)

// AgentNotes summarizes what the engagement learned into a short
// human-readable paragraph for the callback body.
func AgentNotes(mem *convo.ScammerMemory, bundle *intel.Bundle) string {
	if mem == nil {
		mem = &convo.ScammerMemory{}
	}
	if bundle == nil {
		bundle = intel.NewBundle()
	}

	var parts []string

	if mem.ScamType != convo.ScamUnknown {
		s := fmt.Sprintf("Scam pattern: %s", scamLabel(mem.ScamType))
		if mem.PreviousScamType != convo.ScamUnknown {
			s += fmt.Sprintf(" (switched from %s)", scamLabel(mem.PreviousScamType))
		}
		parts = append(parts, s+".")
	}

	if id := identityLine(mem); id != "" {
		parts = append(parts, id)
	}

	if mem.OTPRequests > 0 {
		parts = append(parts, fmt.Sprintf("Requested OTP %d time(s).", mem.OTPRequests))
	}
	if mem.AccountRequests > 0 {
		parts = append(parts, fmt.Sprintf("Asked for account details %d time(s).", mem.AccountRequests))
	}
	if mem.StyleSwitchCount > 0 {
		parts = append(parts, fmt.Sprintf("Changed story %d time(s) mid-conversation.", mem.StyleSwitchCount))
	}
	if len(mem.AppsPushed) > 0 {
		parts = append(parts, fmt.Sprintf("Pushed remote-access apps: %s.", strings.Join(mem.AppsPushed, ", ")))
	}

	if n := bundle.Total(); n > 0 {
		parts = append(parts, fmt.Sprintf("Captured %d indicator(s) across %d categories.",
			n, populatedCategories(bundle)))
	}

	if len(parts) == 0 {
		return "No scam indicators confirmed during this session."
	}
	return strings.Join(parts, " ")
}

// identityLine renders the scammer's claimed identity, tolerating any
// subset of fields being absent.
func identityLine(mem *convo.ScammerMemory) string {
	var bits []string
	if mem.Name != "" {
		bits = append(bits, "as "+mem.Name)
	}
	if mem.Role != "" {
		bits = append(bits, "a "+mem.Role)
	}
	if mem.Institution != "" {
		bits = append(bits, "from "+mem.Institution)
	}
	if mem.EmployeeID != "" {
		bits = append(bits, "(ID "+mem.EmployeeID+")")
	}
	if len(bits) == 0 {
		return ""
	}
	return "Caller presented " + strings.Join(bits, " ") + "."
}

func scamLabel(s convo.ScamType) string {
	return strings.ReplaceAll(string(s), "_", " ")
}

func populatedCategories(b *intel.Bundle) int {
	n := 0
	for _, f := range [][]string{
		b.PaymentHandles, b.BankAccounts, b.RoutingCodes, b.Phones, b.Emails,
		b.URLs, b.NationalIDs, b.TaxIDs, b.Institutions, b.Keywords, b.Credentials,
	} {
		if len(f) > 0 {
			n++
		}
	}
	return n
}
