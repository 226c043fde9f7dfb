package domain

// Phase is one stage of the onboarding workflow. Progression is driven by
// the nextPhase tag carried in assistant replies; the stores never advance
// it on their own.
type Phase string

const (
	PhaseDiscovery    Phase = "discovery"
	PhasePackage      Phase = "package"
	PhaseDocuments    Phase = "documents"
	PhaseConfirmation Phase = "confirmation"
	PhasePayment      Phase = "payment"
	PhaseComplete     Phase = "complete"
)

// Valid reports whether p is a member of the phase enumeration.
func (p Phase) Valid() bool {
	switch p {
	case PhaseDiscovery, PhasePackage, PhaseDocuments, PhaseConfirmation, PhasePayment, PhaseComplete:
		return true
	}
	return false
}
