package queries

import (
	"errors"

	"pizzashop/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery lists the recipes, specials and surcharges an order can be built from.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// MenuEntry is a priced menu line. Key is what AddPizza and the specials menu accept.
type MenuEntry struct {
	Key   string
	Name  string
	Price float64
}

// SurchargeEntry describes an optional extra and its default cost.
type SurchargeEntry struct {
	Key   string
	Label string
	Cost  float64
}

// GetMenuQueryResponse is the menu read model, in catalog order.
type GetMenuQueryResponse struct {
	Pizzas     []MenuEntry
	Specials   []MenuEntry
	Surcharges []SurchargeEntry
}
