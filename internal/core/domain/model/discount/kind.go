package discount

import (
	"fmt"
	"strings"

	"pizzashop/internal/pkg/errs"
)

// Kind enumerates the available discount policies.
type Kind int

const (
	// Unknown represents an invalid or undefined kind.
	Unknown Kind = iota

	// Regular charges the full price.
	Regular

	// Bulk takes 10% off.
	Bulk

	// Family takes 15% off.
	Family
)

func getKindKeys() map[Kind]string {
	return map[Kind]string{
		Regular: "regular",
		Bulk:    "bulk",
		Family:  "family",
	}
}

// ParseKind maps "regular", "bulk" or "family" (any case) to a Kind.
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for k, key := range getKindKeys() {
		if key == normalized {
			return k, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"discount kind is invalid",
		fmt.Errorf("%q is not a known discount", s),
	)
}

// Validate checks that k is one of Regular, Bulk or Family.
func (k Kind) Validate() error {
	if _, ok := getKindKeys()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"discount kind is invalid",
			fmt.Errorf("%d is not a valid discount kind", k),
		)
	}
	return nil
}

// String returns the key accepted by ParseKind, or "unknown".
func (k Kind) String() string {
	if key, ok := getKindKeys()[k]; ok {
		return key
	}
	return "unknown"
}
