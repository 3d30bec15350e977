package order

import (
	"errors"
	"fmt"
	"strings"

	"pizzashop/internal/core/domain/model/discount"
	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/pricing"
	"pizzashop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a customer's pizzas. It owns the priced items,
// the active discount policy and the fulfillment phase.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Items keep their insertion order; the same item may appear more than once
//   - Exactly one discount policy and one phase are active at any time
//   - Can only be created through NewOrder or RestoreOrder
//
// Order is not safe for concurrent use. Hosts serialize access per order.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// items are the root items placed on the order, in insertion order
	items []pricing.Item

	// discount is applied to the item subtotal
	discount discount.Policy

	// phase is the current fulfillment state
	phase Phase

	// random drives the Preparing rollback draw
	random kernel.Randomizer

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an empty order in the Started phase with the regular price policy.
//
// random is consulted once per Process call while the order is Preparing. Pass a
// seeded generator (kernel.NewRandomizer) to make fulfillment reproducible.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewRandomizer(42))
//	if err != nil {
//	    return err
//	}
//	_ = o.AddItem(pepperoni)
//	fmt.Println(o.CalculateTotal())
func NewOrder(id kernel.UUID, random kernel.Randomizer) (*Order, error) {
	o := &Order{
		discount:      discount.RegularPrice(),
		phase:         Started,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRandomizer(random),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from stored state. Repositories use it to
// hand out aggregates without bypassing validation.
func RestoreOrder(
	id kernel.UUID,
	items []pricing.Item,
	discountKind discount.Kind,
	phase Phase,
	random kernel.Randomizer,
) (*Order, error) {
	o := &Order{isConstructed: true}

	policy, policyErr := discount.New(discountKind)

	if err := errors.Join(
		o.setID(id),
		o.setRandomizer(random),
		o.setItems(items),
		policyErr,
		o.setPhase(phase),
	); err != nil {
		return nil, err
	}

	o.discount = policy
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Items returns a copy of the order's items in insertion order.
func (o *Order) Items() []pricing.Item {
	items := make([]pricing.Item, len(o.items))
	copy(items, o.items)
	return items
}

// ItemCount returns the number of root items on the order.
func (o *Order) ItemCount() int {
	return len(o.items)
}

// Discount returns the active discount policy.
func (o *Order) Discount() discount.Policy {
	return o.discount
}

// Phase returns the current fulfillment phase.
func (o *Order) Phase() Phase {
	return o.phase
}

// Status returns the canonical label of the current phase, e.g. "PREPARING".
func (o *Order) Status() string {
	return o.phase.String()
}

// AddItem appends item to the order, which takes ownership of it.
// Prices are not validated; negative prices flow into the totals.
func (o *Order) AddItem(item pricing.Item) error {
	if item == nil {
		return errs.NewValueIsRequiredError("item")
	}

	o.items = append(o.items, item)
	return nil
}

// SetDiscount replaces the active policy. It takes effect on the next CalculateTotal.
func (o *Order) SetDiscount(policy discount.Policy) error {
	if err := policy.Validate(); err != nil {
		return err
	}

	o.discount = policy
	return nil
}

// Subtotal returns the sum of item prices before the discount.
func (o *Order) Subtotal() float64 {
	var subtotal float64
	for _, item := range o.items {
		subtotal += item.Price()
	}
	return subtotal
}

// CalculateTotal returns the discounted total. It is recomputed from the
// items on every call and has no side effects.
func (o *Order) CalculateTotal() float64 {
	return o.discount.Apply(o.Subtotal())
}

// Process advances the order by one phase and returns the new phase.
// Processing a Ready order is a no-op. Items and discount are untouched.
//
// Example:
//
//	for !o.Phase().IsTerminal() {
//	    next, err := o.Process()
//	    if err != nil {
//	        return err
//	    }
//	    logger.Info("order state changed", "status", next)
//	}
func (o *Order) Process() (Phase, error) {
	if err := o.Validate(); err != nil {
		return UnknownPhase, err
	}

	next, err := o.phase.Next(o.random)
	if err != nil {
		return UnknownPhase, err
	}

	o.phase = next
	return next, nil
}

// Clear releases every item and resets the discount to regular and the phase to Started.
func (o *Order) Clear() {
	o.items = nil
	o.discount = discount.RegularPrice()
	o.phase = Started
}

// Summary renders a multi-line report of the order for receipts and logs.
//
//	Order Summary:
//	  Number of pizzas: 2
//	  Subtotal: R110.00
//	  Discount: Bulk Discount (10% discount)
//	  Total: R99.00
//	  Status: ORDER STARTED
//	  Pizzas:
//	    1. Pepperoni Pizza (Dough, Tomato Sauce, Cheese, Pepperoni) - R50.00
//	    2. Vegetarian Pizza (...) - R60.00
func (o *Order) Summary() string {
	var b strings.Builder

	b.WriteString("Order Summary:\n")
	fmt.Fprintf(&b, "  Number of pizzas: %d\n", o.ItemCount())
	fmt.Fprintf(&b, "  Subtotal: %s\n", kernel.FormatAmount(o.Subtotal()))
	fmt.Fprintf(&b, "  Discount: %s\n", o.discount.Label())
	fmt.Fprintf(&b, "  Total: %s\n", kernel.FormatAmount(o.CalculateTotal()))
	fmt.Fprintf(&b, "  Status: %s\n", o.Status())

	if len(o.items) == 0 {
		b.WriteString("  Pizzas: none\n")
		return b.String()
	}

	b.WriteString("  Pizzas:\n")
	for i, item := range o.items {
		fmt.Fprintf(&b, "    %d. %s - %s\n", i+1, item.Name(), kernel.FormatAmount(item.Price()))
	}
	return b.String()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRandomizer(random kernel.Randomizer) error {
	if random == nil {
		return errs.NewValueIsRequiredError("randomizer")
	}
	o.random = random
	return nil
}

func (o *Order) setItems(items []pricing.Item) error {
	for i, item := range items {
		if item == nil {
			return errs.NewValueIsRequiredErrorWithCause("item", fmt.Errorf("item %d is nil", i))
		}
	}
	o.items = make([]pricing.Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setPhase(phase Phase) error {
	if err := phase.Validate(); err != nil {
		return err
	}
	o.phase = phase
	return nil
}
