package order

import (
	"fmt"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/pkg/errs"
)

// RollbackChancePercent is the probability, in percent, that an order in
// Preparing hits an issue and returns to Pending.
const RollbackChancePercent = 20

// Phase represents the fulfillment state of an order.
//
// State transitions:
//
//	Started ──> Pending ──> Preparing ──> Ready ─┐
//	               ^            │           ^    │
//	               └── 20% ─────┘           └────┘
//	                                       (no-op)
type Phase int

const (
	// UnknownPhase represents an invalid or undefined phase.
	// This value (0) helps catch uninitialized Phase values.
	UnknownPhase Phase = iota

	// Started is the phase of a freshly created or cleared order.
	Started

	// Pending means the order waits for kitchen availability.
	Pending

	// Preparing means the kitchen is working on the order.
	Preparing

	// Ready is terminal: the order can be picked up.
	Ready
)

func getPhaseLabels() map[Phase]string {
	return map[Phase]string{
		Started:   "ORDER STARTED",
		Pending:   "PENDING",
		Preparing: "PREPARING",
		Ready:     "READY",
	}
}

// ParsePhase maps a canonical label such as "PREPARING" back to its Phase.
func ParsePhase(label string) (Phase, error) {
	for p, l := range getPhaseLabels() {
		if l == label {
			return p, nil
		}
	}
	return UnknownPhase, errs.NewValueIsInvalidErrorWithCause(
		"phase is invalid",
		fmt.Errorf("%q is not a valid phase label", label),
	)
}

// Validate checks if the Phase value is one of the four declared phases.
func (p Phase) Validate() error {
	if _, ok := getPhaseLabels()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("phase is invalid", fmt.Errorf("%d is not a valid phase", p))
	}
	return nil
}

// String returns the canonical label, e.g. "ORDER STARTED", or "UNKNOWN" for invalid values.
func (p Phase) String() string {
	if label, ok := getPhaseLabels()[p]; ok {
		return label
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition can change the phase.
func (p Phase) IsTerminal() bool {
	return p == Ready
}

// Next returns the phase that follows p.
//
// Only Preparing consults random: it draws one integer in [0, 100) and
// returns Pending when the draw is below RollbackChancePercent, Ready otherwise.
// Ready returns itself.
func (p Phase) Next(random kernel.Randomizer) (Phase, error) {
	switch p {
	case Started:
		return Pending, nil
	case Pending:
		return Preparing, nil
	case Preparing:
		if random == nil {
			return UnknownPhase, errs.NewValueIsRequiredError("randomizer")
		}
		if random.IntN(100) < RollbackChancePercent {
			return Pending, nil
		}
		return Ready, nil
	case Ready:
		return Ready, nil
	default:
		return UnknownPhase, errs.NewValueIsInvalidErrorWithCause(
			"phase is invalid",
			fmt.Errorf("%s is not a valid phase to process", p),
		)
	}
}
