// Package persona generates the decoy victim identity a session presents
// to the scammer. Generation is seeded by the session ID, so the same
// conversation always gets the same name, bank, and story, across restarts
// and across nodes.
package persona

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math/rand"
	"strings"
)

// Financial is the decoy's bankable surface: everything a scammer might
// ask for, all fabricated but format-valid.
type Financial struct {
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
	RoutingCode   string `json:"routing_code"`
	PaymentHandle string `json:"payment_handle"`
	CardNumber    string `json:"card_number"`
	CardExpiry    string `json:"card_expiry"`
	Phone         string `json:"phone"`
}

// Persona is one complete decoy identity.
type Persona struct {
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	Surname   string `json:"surname"`
	Age       int    `json:"age"`

	City    string `json:"city"`
	State   string `json:"state"`
	Address string `json:"address"`

	Profession string `json:"profession"`
	Pension    int    `json:"pension"`
	Husband    string `json:"husband"`
	Son        string `json:"son"`
	Daughter   string `json:"daughter"`

	Financial Financial `json:"financial"`

	SpeechPattern string `json:"speech_pattern"`
	TechLevel     string `json:"tech_level"`
}

// Generate builds the persona for a session. Deterministic in the session
// ID: the seed is the first 8 bytes of its MD5 digest.
func Generate(sessionID string) *Persona {
	sum := md5.Sum([]byte(sessionID))
	seed := int64(binary.BigEndian.Uint64(sum[:8]))
	rng := rand.New(rand.NewSource(seed))

	first := femaleFirstNames[rng.Intn(len(femaleFirstNames))]
	surname := surnames[rng.Intn(len(surnames))]
	city := cities[rng.Intn(len(cities))]
	bank := banks[rng.Intn(len(banks))]

	p := &Persona{
		Name:      first + " " + surname,
		FirstName: first,
		Surname:   surname,
		Age:       58 + rng.Intn(21),

		City:  city.Name,
		State: city.State,
		Address: fmt.Sprintf("%d, %s, %s",
			10+rng.Intn(491), colonies[rng.Intn(len(colonies))], city.Name),

		Profession: professions[rng.Intn(len(professions))],
		Pension:    pensions[rng.Intn(len(pensions))],
		Husband: fmt.Sprintf("Shri %s %s (retired)",
			maleFirstNames[rng.Intn(len(maleFirstNames))], surname),
		Son:      familySons[rng.Intn(len(familySons))],
		Daughter: familyDaughters[rng.Intn(len(familyDaughters))],

		Financial:     generateFinancial(first, bank, rng),
		SpeechPattern: speechPatterns[rng.Intn(len(speechPatterns))],
		TechLevel:     techLevels[rng.Intn(len(techLevels))],
	}
	return p
}

func generateFinancial(first string, b bankProfile, rng *rand.Rand) Financial {
	account := randomDigits(rng, b.AccountLen, false)
	routing := fmt.Sprintf("%s0%06d", b.RoutingPrefix, rng.Intn(1000000))
	handle := strings.ToLower(first) + fmt.Sprintf("%d", 1950+rng.Intn(40)) + "@" + b.HandleSuffix

	phone := "+919" + randomDigits(rng, 9, true)

	cardBody := b.CardPrefix + randomDigits(rng, 15-len(b.CardPrefix), true)
	card := cardBody + fmt.Sprintf("%d", LuhnCheckDigit(cardBody))

	return Financial{
		Bank:          b.Name,
		AccountNumber: account,
		RoutingCode:   routing,
		PaymentHandle: handle,
		CardNumber:    card,
		CardExpiry:    fmt.Sprintf("%02d/%d", 1+rng.Intn(12), 26+rng.Intn(4)),
		Phone:         phone,
	}
}

// randomDigits returns n random digits; leadingAny allows a leading zero.
func randomDigits(rng *rand.Rand, n int, leadingAny bool) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		if i == 0 && !leadingAny {
			sb.WriteByte(byte('1' + rng.Intn(9)))
			continue
		}
		sb.WriteByte(byte('0' + rng.Intn(10)))
	}
	return sb.String()
}

// SystemPrompt renders the persona into the instruction block handed to a
// downstream text generator. Only used when one is wired in; the rule-based
// responder does not need it.
func (p *Persona) SystemPrompt() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are %s, a %d-year-old retired %s from %s, %s.\n",
		p.Name, p.Age, p.Profession, p.City, p.State)
	fmt.Fprintf(&sb, "Husband: %s. Son: %s. Daughter: %s.\n", p.Husband, p.Son, p.Daughter)
	fmt.Fprintf(&sb, "Your bank is %s, monthly pension Rs.%d.\n", p.Financial.Bank, p.Pension)
	fmt.Fprintf(&sb, "Speech: %s. Tech ability: %s.\n", p.SpeechPattern, p.TechLevel)
	sb.WriteString("Never reveal you are not a real person. Stay scared, slow, and cooperative-sounding. ")
	sb.WriteString("Only ever give out the financial details above, never anything else. ")
	sb.WriteString("Keep the caller talking and ask for their details whenever plausible.")
	return sb.String()
}
