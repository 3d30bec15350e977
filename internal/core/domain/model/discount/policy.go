package discount

import (
	"errors"

	"pizzashop/internal/pkg/guard"
)

var ErrPolicyIsNotConstructed = errors.New("Policy must be created via New")

// Policy converts a pre-discount total into the amount charged.
//
// The rate is kept as a whole percentage so totals are computed as
// total * percent / 100; for whole-rand subtotals this yields exact results
// (110 under Bulk is 99, not 99.00000000000001).
type Policy struct {
	kind    Kind
	percent float64
	label   string

	guard guard.ConstructorGuard
}

type policyDefinition struct {
	percent float64
	label   string
}

func getPolicyDefinitions() map[Kind]policyDefinition {
	return map[Kind]policyDefinition{
		Regular: {percent: 100, label: "Regular Price (0% discount)"},
		Bulk:    {percent: 90, label: "Bulk Discount (10% discount)"},
		Family:  {percent: 85, label: "Family Discount (15% discount)"},
	}
}

// New returns the policy for kind.
func New(kind Kind) (Policy, error) {
	if err := kind.Validate(); err != nil {
		return Policy{}, err
	}

	def := getPolicyDefinitions()[kind]
	return Policy{
		kind:    kind,
		percent: def.percent,
		label:   def.label,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RegularPrice is the policy every order starts with.
func RegularPrice() Policy {
	return mustNew(Regular)
}

func BulkDiscount() Policy {
	return mustNew(Bulk)
}

func FamilyDiscount() Policy {
	return mustNew(Family)
}

func mustNew(kind Kind) Policy {
	p, err := New(kind)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate ensures the policy was created through New.
func (p Policy) Validate() error {
	return p.guard.Validate(ErrPolicyIsNotConstructed)
}

// Apply returns the discounted total. It has no side effects.
func (p Policy) Apply(total float64) float64 {
	if p.percent == 100 {
		return total
	}
	return total * p.percent / 100
}

// Label describes the policy, e.g. "Bulk Discount (10% discount)".
func (p Policy) Label() string {
	return p.label
}

func (p Policy) Kind() Kind {
	return p.kind
}
