package services

import (
	"errors"

	"pizzashop/internal/core/domain/model/discount"
	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/pkg/errs"
)

// DefaultBulkThreshold is the pizza count from which the bulk discount applies.
const DefaultBulkThreshold = 5

// ErrOrderIsRequired is returned when Suggest is called without an order.
var ErrOrderIsRequired = errs.NewValueIsRequiredError("order")

// DiscountAdvisor recommends a discount policy for an order.
//
// Business rules:
//   - Family wins when the family threshold is enabled and reached
//   - Bulk applies when the pizza count reaches the bulk threshold
//   - Everything else pays the regular price
//
// A threshold of zero disables the corresponding discount.
//
// Example usage:
//
//	advisor, _ := services.NewDiscountAdvisor(5, 8)
//	policy, err := advisor.Suggest(o)
//	if err != nil {
//	    return err
//	}
//	_ = o.SetDiscount(policy)
type DiscountAdvisor struct {
	bulkThreshold   int
	familyThreshold int
}

// NewDiscountAdvisor creates an advisor. When both thresholds are enabled the
// family threshold must be greater than the bulk one.
func NewDiscountAdvisor(bulkThreshold, familyThreshold int) (DiscountAdvisor, error) {
	if err := errors.Join(
		validateThreshold("bulkThreshold", bulkThreshold),
		validateThreshold("familyThreshold", familyThreshold),
	); err != nil {
		return DiscountAdvisor{}, err
	}

	if bulkThreshold > 0 && familyThreshold > 0 && familyThreshold <= bulkThreshold {
		return DiscountAdvisor{}, errs.NewValueIsOutOfRangeError(
			"familyThreshold", familyThreshold, bulkThreshold+1, "unbounded",
		)
	}

	return DiscountAdvisor{
		bulkThreshold:   bulkThreshold,
		familyThreshold: familyThreshold,
	}, nil
}

// Suggest returns the policy the order qualifies for. The order is not modified.
func (a DiscountAdvisor) Suggest(o *order.Order) (discount.Policy, error) {
	if o == nil {
		return discount.Policy{}, ErrOrderIsRequired
	}
	if err := o.Validate(); err != nil {
		return discount.Policy{}, err
	}

	return a.SuggestForCount(o.ItemCount()), nil
}

// SuggestForCount returns the policy for an order holding count pizzas.
func (a DiscountAdvisor) SuggestForCount(count int) discount.Policy {
	switch {
	case a.familyThreshold > 0 && count >= a.familyThreshold:
		return discount.FamilyDiscount()
	case a.bulkThreshold > 0 && count >= a.bulkThreshold:
		return discount.BulkDiscount()
	default:
		return discount.RegularPrice()
	}
}

func validateThreshold(name string, value int) error {
	if value < 0 {
		return errs.NewValueIsOutOfRangeError(name, value, 0, "unbounded")
	}
	return nil
}
