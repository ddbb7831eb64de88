package convo

// Phase is the current stage of the scam-conversation lifecycle. It is
// recomputed from scratch every turn out of (history length, current
// intents), never advanced by a transition table, so a later message that
// reads like an opener can move the phase backwards. Accepted trade-off.
type Phase string

const (
	PhaseInitialContact    Phase = "initial"
	PhaseBuildingTrust     Phase = "trust"
	PhaseCreatingUrgency   Phase = "urgency"
	PhaseExtractionAttempt Phase = "extraction"
	PhasePersistence       Phase = "persistence"
	PhaseFinalPush         Phase = "final"
)

// DetectPhase resolves the conversation phase from the number of prior
// turns and the intents of the current message. Rules apply in order:
//
//  1. priorTurns <= 2                      -> initial contact
//  2. any extraction intent present        -> final push past 10 turns,
//     persistence past 6, else extraction attempt
//  3. fear tactic present                  -> creating urgency
//  4. urgency pressure present             -> persistence
//  5. otherwise                            -> building trust
func DetectPhase(priorTurns int, intents []Intent) Phase {
	if priorTurns <= 2 {
		return PhaseInitialContact
	}

	for _, in := range intents {
		if IsExtractionIntent(in) {
			switch {
			case priorTurns > 10:
				return PhaseFinalPush
			case priorTurns > 6:
				return PhasePersistence
			default:
				return PhaseExtractionAttempt
			}
		}
	}

	for _, in := range intents {
		if in == IntentFearTactic {
			return PhaseCreatingUrgency
		}
	}
	for _, in := range intents {
		if in == IntentUrgency {
			return PhasePersistence
		}
	}
	return PhaseBuildingTrust
}

// IsExtractionOriented reports whether the phase is one where the scammer
// is actively pulling for data, which is when reverse extraction pays off.
func (p Phase) IsExtractionOriented() bool {
	return p == PhaseExtractionAttempt || p == PhasePersistence || p == PhaseFinalPush
}
