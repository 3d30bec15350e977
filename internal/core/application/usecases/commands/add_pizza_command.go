package commands

import (
	"errors"
	"strings"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/pricing"
	"pizzashop/internal/pkg/errs"
	"pizzashop/internal/pkg/guard"
)

var (
	ErrAddPizzaCommandIsNotConstructed = errors.New(
		"AddPizzaCommand must be created via NewAddPizzaCommand constructor",
	)
	ErrRecipeIsRequired = errs.NewValueIsRequiredError("recipe")
)

// AddPizzaCommand adds a pizza from the recipe book to an order, optionally
// decorated with surcharges applied in the given order.
//
// Example:
//
//	cmd, err := NewAddPizzaCommand(orderID, "pepperoni", []pricing.Surcharge{pricing.ExtraCheese})
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AddPizzaCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	recipe     string
	surcharges []pricing.Surcharge

	guard guard.ConstructorGuard
}

// NewAddPizzaCommand validates the order ID, recipe key and surcharges.
func NewAddPizzaCommand(orderID kernel.UUID, recipe string, surcharges []pricing.Surcharge) (AddPizzaCommand, error) {
	cmd := AddPizzaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRecipe(recipe),
		cmd.setSurcharges(surcharges),
	); err != nil {
		return AddPizzaCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPizzaCommand) Validate() error {
	return c.guard.Validate(ErrAddPizzaCommandIsNotConstructed)
}

func (c AddPizzaCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Recipe returns the recipe key, e.g. "pepperoni".
func (c AddPizzaCommand) Recipe() string {
	return c.recipe
}

// Surcharges returns a copy of the requested surcharges, innermost first.
func (c AddPizzaCommand) Surcharges() []pricing.Surcharge {
	return append([]pricing.Surcharge(nil), c.surcharges...)
}

func (c *AddPizzaCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddPizzaCommand) setRecipe(recipe string) error {
	recipe = strings.TrimSpace(recipe)
	if recipe == "" {
		return ErrRecipeIsRequired
	}

	c.recipe = recipe
	return nil
}

func (c *AddPizzaCommand) setSurcharges(surcharges []pricing.Surcharge) error {
	if err := validateSurcharges(surcharges); err != nil {
		return err
	}

	c.surcharges = append([]pricing.Surcharge(nil), surcharges...)
	return nil
}

func validateSurcharges(surcharges []pricing.Surcharge) error {
	for _, s := range surcharges {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
