package commands

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/pricing"
	"pizzashop/internal/pkg/errs"
	"pizzashop/internal/pkg/guard"
)

var (
	ErrAddCustomPizzaCommandIsNotConstructed = errors.New(
		"AddCustomPizzaCommand must be created via NewAddCustomPizzaCommand constructor",
	)
	ErrPizzaNameIsRequired = errs.NewValueIsRequiredError("pizza name")
	ErrToppingsAreRequired = errs.NewValueIsRequiredError("toppings")
)

// ToppingInput is a customer-specified ingredient.
type ToppingInput struct {
	Name  string
	Price float64
}

// AddCustomPizzaCommand adds a pizza assembled from customer-specified toppings.
// Topping prices must be finite and non-negative.
//
// Example:
//
//	cmd, err := NewAddCustomPizzaCommand(orderID, "Custom Pizza", []ToppingInput{
//	    {Name: "Dough", Price: 10},
//	    {Name: "Cheese", Price: 15},
//	}, nil)
type AddCustomPizzaCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	name       string
	toppings   []ToppingInput
	surcharges []pricing.Surcharge

	guard guard.ConstructorGuard
}

func NewAddCustomPizzaCommand(
	orderID kernel.UUID,
	name string,
	toppings []ToppingInput,
	surcharges []pricing.Surcharge,
) (AddCustomPizzaCommand, error) {
	cmd := AddCustomPizzaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setName(name),
		cmd.setToppings(toppings),
		cmd.setSurcharges(surcharges),
	); err != nil {
		return AddCustomPizzaCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCustomPizzaCommand) Validate() error {
	return c.guard.Validate(ErrAddCustomPizzaCommandIsNotConstructed)
}

func (c AddCustomPizzaCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddCustomPizzaCommand) Name() string {
	return c.name
}

// Toppings returns a copy of the toppings in the order they go on the pizza.
func (c AddCustomPizzaCommand) Toppings() []ToppingInput {
	return append([]ToppingInput(nil), c.toppings...)
}

func (c AddCustomPizzaCommand) Surcharges() []pricing.Surcharge {
	return append([]pricing.Surcharge(nil), c.surcharges...)
}

func (c *AddCustomPizzaCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddCustomPizzaCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrPizzaNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddCustomPizzaCommand) setToppings(toppings []ToppingInput) error {
	if len(toppings) == 0 {
		return ErrToppingsAreRequired
	}

	var problems []error
	for i, t := range toppings {
		if strings.TrimSpace(t.Name) == "" {
			problems = append(problems, errs.NewValueIsRequiredErrorWithCause(
				"topping name", fmt.Errorf("topping %d has no name", i+1),
			))
		}
		if t.Price < 0 || math.IsNaN(t.Price) || math.IsInf(t.Price, 0) {
			problems = append(problems, errs.NewValueIsOutOfRangeErrorWithCause(
				"topping price", t.Price, 0, "unbounded", fmt.Errorf("topping %q", t.Name),
			))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	c.toppings = append([]ToppingInput(nil), toppings...)
	return nil
}

func (c *AddCustomPizzaCommand) setSurcharges(surcharges []pricing.Surcharge) error {
	if err := validateSurcharges(surcharges); err != nil {
		return err
	}

	c.surcharges = append([]pricing.Surcharge(nil), surcharges...)
	return nil
}
