package convo

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
)

// ResponseType is the engagement strategy behind one reply.
type ResponseType string

const (
	TypeStall          ResponseType = "stall"
	TypeConfusion      ResponseType = "confusion"
	TypeContextual     ResponseType = "contextual"
	TypeTangent        ResponseType = "tangent"
	TypePanic          ResponseType = "panic"
	TypeReverseExtract ResponseType = "reverse_extract"
)

// ExtractionCategory is one kind of detail the persona can ask the scammer
// for, rotated so no category is demanded twice in a row.
type ExtractionCategory string

const (
	CategoryName          ExtractionCategory = "name"
	CategoryEmployeeID    ExtractionCategory = "employee_id"
	CategoryPhone         ExtractionCategory = "phone"
	CategoryPaymentHandle ExtractionCategory = "payment_handle"
	CategoryRoutingCode   ExtractionCategory = "routing_code"
	CategoryEmail         ExtractionCategory = "email"
	CategoryBranch        ExtractionCategory = "branch"
	CategoryAccount       ExtractionCategory = "account"
	CategoryDocument      ExtractionCategory = "document"
)

var allCategories = []ExtractionCategory{
	CategoryName, CategoryEmployeeID, CategoryPhone, CategoryPaymentHandle,
	CategoryRoutingCode, CategoryEmail, CategoryBranch, CategoryAccount,
	CategoryDocument,
}

// Early phases fish for identity details; late phases go straight for
// payment rails, which is the intelligence that actually burns a scammer.
var earlyCategoryPriority = []ExtractionCategory{
	CategoryName, CategoryEmployeeID, CategoryBranch, CategoryEmail,
	CategoryDocument, CategoryPhone, CategoryPaymentHandle, CategoryAccount,
	CategoryRoutingCode,
}

var lateCategoryPriority = []ExtractionCategory{
	CategoryPaymentHandle, CategoryAccount, CategoryRoutingCode, CategoryPhone,
	CategoryEmployeeID, CategoryEmail, CategoryName, CategoryBranch,
	CategoryDocument,
}

// phaseWeights drives weighted-random type selection. Mass shifts from
// stalling early toward reverse extraction late.
var phaseWeights = map[Phase]map[ResponseType]int{
	PhaseInitialContact: {
		TypeStall: 35, TypeConfusion: 25, TypeContextual: 20, TypeTangent: 15, TypeReverseExtract: 5,
	},
	PhaseBuildingTrust: {
		TypeStall: 25, TypeConfusion: 20, TypeContextual: 25, TypeTangent: 20, TypeReverseExtract: 10,
	},
	PhaseCreatingUrgency: {
		TypePanic: 30, TypeContextual: 20, TypeStall: 15, TypeConfusion: 15, TypeReverseExtract: 15, TypeTangent: 5,
	},
	PhaseExtractionAttempt: {
		TypeReverseExtract: 30, TypeContextual: 25, TypeConfusion: 15, TypeStall: 10, TypeTangent: 10, TypePanic: 10,
	},
	PhasePersistence: {
		TypeReverseExtract: 35, TypeContextual: 20, TypePanic: 15, TypeStall: 10, TypeConfusion: 10, TypeTangent: 10,
	},
	PhaseFinalPush: {
		TypeReverseExtract: 40, TypeContextual: 20, TypePanic: 20, TypeConfusion: 10, TypeStall: 5, TypeTangent: 5,
	},
}

// defaultReverseExtractChance is the probability of tacking a
// reverse-extraction line onto a non-extraction reply during
// extraction-oriented phases.
const defaultReverseExtractChance = 0.4

const maxLineAttempts = 5

// Responder selects reply lines for a session. The random source is
// injected so tests can seed it and concurrent sessions do not share
// generator state; the caller must not share one Responder across
// goroutines without external locking.
type Responder struct {
	rng           *rand.Rand
	reverseChance float64
}

// NewResponder creates a responder over the given random source.
func NewResponder(rng *rand.Rand) *Responder {
	return &Responder{rng: rng, reverseChance: defaultReverseExtractChance}
}

// Respond produces the next reply for the session, given the resolved
// phase and the intents of the scammer's current message. It returns the
// reply text and whether the reply asks the scammer for their own details.
// The session must be locked by the caller.
func (r *Responder) Respond(s *SessionState, phase Phase, intents []Intent) (string, bool) {
	rt := r.chooseType(s, phase)
	reverse := rt == TypeReverseExtract

	var line string
	if reverse {
		l, cat := r.reverseLine(s, phase)
		s.AskedCategories = append(s.AskedCategories, cat)
		line = l
	} else {
		line = r.chooseLine(s, rt, PrimaryIntent(intents))
	}

	// Opportunistic second ask: during extraction-oriented phases a
	// non-extraction reply sometimes gets a reverse-extraction tail. Both
	// halves of a combined reply are marked used on their own, otherwise
	// either could later be served verbatim as a standalone line. The
	// category is logged only for a tail that actually ships.
	if !reverse && phase.IsExtractionOriented() && r.rng.Float64() < r.reverseChance {
		if tail, cat := r.reverseLine(s, phase); !s.lineUsed(tail) {
			s.AskedCategories = append(s.AskedCategories, cat)
			s.markUsed(line)
			s.markUsed(tail)
			line = line + " " + tail
			reverse = true
		}
	}

	s.RecordResponse(line, rt)
	return line, reverse
}

// chooseType picks the strategy for this reply. The first reply of a
// session always stalls; afterwards the previous type is excluded and the
// remaining types are drawn by phase-dependent weight.
func (r *Responder) chooseType(s *SessionState, phase Phase) ResponseType {
	if len(s.ResponseHistory) == 0 {
		return TypeStall
	}

	weights := phaseWeights[phase]
	if weights == nil {
		weights = phaseWeights[PhaseBuildingTrust]
	}

	total := 0
	for rt, w := range weights {
		if rt == s.LastResponseType {
			continue
		}
		total += w
	}
	if total == 0 {
		return TypeContextual
	}

	pick := r.rng.Intn(total)
	// Iterate in a fixed order so equal seeds give equal picks.
	for _, rt := range []ResponseType{
		TypeStall, TypeConfusion, TypeContextual, TypeTangent, TypePanic, TypeReverseExtract,
	} {
		w, ok := weights[rt]
		if !ok || rt == s.LastResponseType {
			continue
		}
		if pick < w {
			return rt
		}
		pick -= w
	}
	return TypeContextual
}

// chooseLine draws from the pool for the type (contextual pools key off the
// primary intent), rejecting lines that fail the anti-duplication check.
// After maxLineAttempts the full pool is fair game; repetition is tolerated
// only when unavoidable.
func (r *Responder) chooseLine(s *SessionState, rt ResponseType, intent Intent) string {
	pool := r.poolFor(rt, intent)

	for attempt := 0; attempt < maxLineAttempts; attempt++ {
		candidate := pool[r.rng.Intn(len(pool))]
		if !s.lineUsed(candidate) {
			return candidate
		}
	}

	// Prefer any still-unused line before giving up on novelty.
	var fresh []string
	for _, c := range pool {
		if !s.lineUsed(c) {
			fresh = append(fresh, c)
		}
	}
	if len(fresh) > 0 {
		return fresh[r.rng.Intn(len(fresh))]
	}
	return pool[r.rng.Intn(len(pool))]
}

func (r *Responder) poolFor(rt ResponseType, intent Intent) []string {
	switch rt {
	case TypeStall:
		return stallPool
	case TypeConfusion:
		return confusionPool
	case TypeTangent:
		return tangentPool
	case TypePanic:
		return panicPool
	default:
		if pool, ok := contextualPools[intent]; ok {
			return pool
		}
		return contextualPools[IntentUnknown]
	}
}

// reverseLine picks a reverse-extraction category and renders a line for
/// it. Category choice: skip anything the scammer already disclosed, skip
// the last 3 asked categories, then take the phase-priority order; if every
// category is disqualified, fall back to a uniform pick over all of them.
// The caller logs the category once it commits to sending the line.
func (r *Responder) reverseLine(s *SessionState, phase Phase) (string, ExtractionCategory) {
	cat := r.chooseCategory(s, phase)

	pool := reversePools[cat]
	for attempt := 0; attempt < maxLineAttempts; attempt++ {
		candidate := pool[r.rng.Intn(len(pool))]
		if !s.lineUsed(candidate) {
			return candidate, cat
		}
	}
	return pool[r.rng.Intn(len(pool))], cat
}

func (r *Responder) chooseCategory(s *SessionState, phase Phase) ExtractionCategory {
	priority := earlyCategoryPriority
	if phase.IsExtractionOriented() {
		priority = lateCategoryPriority
	}

	for _, cat := range priority {
		if s.Memory.HasValue(cat) {
			continue
		}
		if s.recentlyAsked(cat, 3) {
			continue
		}
		return cat
	}
	return allCategories[r.rng.Intn(len(allCategories))]
}

// openingHash fingerprints the first 8 words of a line, lowercased. Two
// replies that start the same way read as repetition to a human even when
// their tails differ.
func openingHash(text string) string {
	words := strings.Fields(strings.ToLower(text))
	if len(words) > 8 {
		words = words[:8]
	}
	h := fnv.New64a()
	h.Write([]byte(strings.Join(words, " ")))
	return fmt.Sprintf("%016x", h.Sum64())
}
