package pricing

import (
	"fmt"
	"strings"

	"pizzashop/internal/pkg/errs"
)

// Default surcharges, in rands.
const (
	DefaultExtraCheeseCost  = 12.00
	DefaultStuffedCrustCost = 20.00
)

// Surcharge enumerates the kinds of decoration an item can receive.
type Surcharge int

const (
	// UnknownSurcharge catches uninitialized values.
	UnknownSurcharge Surcharge = iota
	ExtraCheese
	StuffedCrust
)

type surchargeInfo struct {
	key         string
	label       string
	defaultCost float64
}

func getSurchargeInfo() map[Surcharge]surchargeInfo {
	return map[Surcharge]surchargeInfo{
		ExtraCheese:  {key: "extra_cheese", label: "Extra Cheese", defaultCost: DefaultExtraCheeseCost},
		StuffedCrust: {key: "stuffed_crust", label: "Stuffed Crust", defaultCost: DefaultStuffedCrustCost},
	}
}

// Surcharges returns every declared surcharge in declaration order.
func Surcharges() []Surcharge {
	return []Surcharge{ExtraCheese, StuffedCrust}
}

// ParseSurcharge maps a key such as "extra_cheese" to its Surcharge.
func ParseSurcharge(key string) (Surcharge, error) {
	normalized := strings.ToLower(strings.TrimSpace(key))
	for s, info := range getSurchargeInfo() {
		if info.key == normalized {
			return s, nil
		}
	}
	return UnknownSurcharge, errs.NewValueIsInvalidErrorWithCause(
		"surcharge is invalid",
		fmt.Errorf("%q is not a known surcharge", key),
	)
}

// Validate checks that s is one of the declared surcharges.
func (s Surcharge) Validate() error {
	if _, ok := getSurchargeInfo()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"surcharge is invalid",
			fmt.Errorf("%d is not a valid surcharge", s),
		)
	}
	return nil
}

// Key returns the machine name used by hosts, e.g. "stuffed_crust".
func (s Surcharge) Key() string {
	return getSurchargeInfo()[s].key
}

// Label returns the phrase appended to a decorated item's name.
func (s Surcharge) Label() string {
	return getSurchargeInfo()[s].label
}

// DefaultCost returns the surcharge applied when no override is given.
func (s Surcharge) DefaultCost() float64 {
	return getSurchargeInfo()[s].defaultCost
}

func (s Surcharge) String() string {
	if info, ok := getSurchargeInfo()[s]; ok {
		return info.label
	}
	return "Unknown"
}

// Decorator wraps exactly one item and adds a fixed surcharge to it.
type Decorator struct {
	inner     Item
	surcharge Surcharge
	extraCost float64
}

// NewDecorator wraps inner with surcharge s at the given cost.
// The decorator takes ownership of inner.
func NewDecorator(inner Item, s Surcharge, extraCost float64) (*Decorator, error) {
	if inner == nil {
		return nil, errs.NewValueIsRequiredError("inner item")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &Decorator{inner: inner, surcharge: s, extraCost: extraCost}, nil
}

// NewExtraCheese wraps inner with the default cheese surcharge.
func NewExtraCheese(inner Item) (*Decorator, error) {
	return NewDecorator(inner, ExtraCheese, DefaultExtraCheeseCost)
}

// NewExtraCheeseWithCost wraps inner with a cheese surcharge of cost.
func NewExtraCheeseWithCost(inner Item, cost float64) (*Decorator, error) {
	return NewDecorator(inner, ExtraCheese, cost)
}

// NewStuffedCrust wraps inner with the default stuffed crust surcharge.
func NewStuffedCrust(inner Item) (*Decorator, error) {
	return NewDecorator(inner, StuffedCrust, DefaultStuffedCrustCost)
}

// NewStuffedCrustWithCost wraps inner with a stuffed crust surcharge of cost.
func NewStuffedCrustWithCost(inner Item, cost float64) (*Decorator, error) {
	return NewDecorator(inner, StuffedCrust, cost)
}

// Decorate wraps item with each surcharge at its default cost, innermost first.
func Decorate(item Item, surcharges ...Surcharge) (Item, error) {
	if item == nil {
		return nil, errs.NewValueIsRequiredError("item")
	}

	decorated := item
	for _, s := range surcharges {
		d, err := NewDecorator(decorated, s, s.DefaultCost())
		if err != nil {
			return nil, err
		}
		decorated = d
	}
	return decorated, nil
}

func (d *Decorator) Price() float64 {
	return d.inner.Price() + d.extraCost
}

func (d *Decorator) Name() string {
	return d.inner.Name() + " with " + d.surcharge.Label()
}

// Inner returns the wrapped item.
func (d *Decorator) Inner() Item {
	return d.inner
}

func (d *Decorator) Surcharge() Surcharge {
	return d.surcharge
}

func (d *Decorator) ExtraCost() float64 {
	return d.extraCost
}

// Represent renders the decorated item for display. See the package-level Represent.
func (d *Decorator) Represent() string {
	return Represent(d)
}
