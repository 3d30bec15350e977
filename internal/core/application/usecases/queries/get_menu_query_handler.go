package queries

import (
	"context"

	"pizzashop/internal/core/domain/model/pricing"
)

// MenuCatalog is the read side of the recipe catalog.
type MenuCatalog interface {
	Keys() []string
	Build(key string) (*pricing.Group, error)
	SpecialKeys() []string
	BuildSpecial(key string) (pricing.Item, error)
}

// GetMenuQueryHandler prices every catalog entry by building it.
//
// Example:
//
//	catalog, _ := presets.Default()
//	handler := NewGetMenuQueryHandler(catalog)
//
//	menu, err := handler.Handle(ctx, NewGetMenuQuery())
//	if err != nil {
//	    return err
//	}
//	for _, p := range menu.Pizzas {
//	    fmt.Printf("%s: %.2f\n", p.Name, p.Price)
//	}
type GetMenuQueryHandler struct {
	catalog MenuCatalog
}

func NewGetMenuQueryHandler(catalog MenuCatalog) GetMenuQueryHandler {
	return GetMenuQueryHandler{catalog: catalog}
}

func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	if err := ctx.Err(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	keys := h.catalog.Keys()
	pizzas := make([]MenuEntry, 0, len(keys))
	for _, key := range keys {
		group, err := h.catalog.Build(key)
		if err != nil {
			return GetMenuQueryResponse{}, err
		}
		pizzas = append(pizzas, MenuEntry{Key: key, Name: group.Name(), Price: group.Price()})
	}

	specialKeys := h.catalog.SpecialKeys()
	specials := make([]MenuEntry, 0, len(specialKeys))
	for _, key := range specialKeys {
		item, err := h.catalog.BuildSpecial(key)
		if err != nil {
			return GetMenuQueryResponse{}, err
		}
		specials = append(specials, MenuEntry{Key: key, Name: item.Name(), Price: item.Price()})
	}

	surcharges := make([]SurchargeEntry, 0, len(pricing.Surcharges()))
	for _, s := range pricing.Surcharges() {
		surcharges = append(surcharges, SurchargeEntry{Key: s.Key(), Label: s.Label(), Cost: s.DefaultCost()})
	}

	return GetMenuQueryResponse{
		Pizzas:     pizzas,
		Specials:   specials,
		Surcharges: surcharges,
	}, nil
}
