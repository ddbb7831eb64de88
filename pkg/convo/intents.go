// Package convo is the conversation state engine: it classifies what the
// scammer is currently asking for, tracks the phase of the conversation,
// accumulates the scammer's self-disclosed claims, and selects engagement
// replies that avoid sounding like a bot.
package convo

import (
	"github.com/jaalhq/jaal/pkg/patterns"
)

// Intent is what the scammer is currently asking for.
type Intent string

const (
	IntentOTP           Intent = "otp"
	IntentAccountNumber Intent = "account_number"
	IntentPaymentHandle Intent = "payment_handle"
	IntentMoneyTransfer Intent = "money_transfer"
	IntentClickLink     Intent = "click_link"
	IntentInstallApp    Intent = "install_app"
	IntentPersonalInfo  Intent = "personal_info"
	IntentCardDetails   Intent = "card_details"
	IntentFearTactic    Intent = "fear_tactic"
	IntentUrgency       Intent = "urgency"
	IntentGreeting      Intent = "greeting"
	IntentUnknown       Intent = "unknown"
)

// intentGroups maps each intent to its pattern group, in priority order.
// The first detected intent is the primary one downstream.
var intentGroups = []struct {
	intent Intent
	cat    patterns.Category
}{
	{IntentOTP, patterns.CategoryIntentOTP},
	{IntentAccountNumber, patterns.CategoryIntentAccount},
	{IntentPaymentHandle, patterns.CategoryIntentPaymentHandle},
	{IntentMoneyTransfer, patterns.CategoryIntentTransfer},
	{IntentClickLink, patterns.CategoryIntentLink},
	{IntentInstallApp, patterns.CategoryIntentApp},
	{IntentPersonalInfo, patterns.CategoryIntentPersonalInfo},
	{IntentCardDetails, patterns.CategoryIntentCardDetails},
	{IntentFearTactic, patterns.CategoryIntentFear},
	{IntentUrgency, patterns.CategoryIntentUrgency},
	{IntentGreeting, patterns.CategoryIntentGreeting},
}

// extractionIntents are the intents that count as an active extraction
// attempt for phase resolution.
var extractionIntents = map[Intent]bool{
	IntentOTP:           true,
	IntentAccountNumber: true,
	IntentPaymentHandle: true,
	IntentCardDetails:   true,
	IntentMoneyTransfer: true,
}

// DetectIntents returns every intent present in the message, in group
// priority order. One pattern match per group is enough. A message that
// matches nothing yields the singleton IntentUnknown.
func DetectIntents(text string) []Intent {
	r := patterns.Get()
	var detected []Intent
	for _, g := range intentGroups {
		if r.MatchAny(text, g.cat) != nil {
			detected = append(detected, g.intent)
		}
	}
	if len(detected) == 0 {
		detected = append(detected, IntentUnknown)
	}
	return detected
}

// PrimaryIntent is the first detected intent, IntentUnknown when empty.
func PrimaryIntent(intents []Intent) Intent {
	if len(intents) == 0 {
		return IntentUnknown
	}
	return intents[0]
}

// IsExtractionIntent reports whether the intent is an active attempt to
// pull payment or credential data.
func IsExtractionIntent(i Intent) bool {
	return extractionIntents[i]
}
