// Package presets builds the shop's named pizzas from a YAML recipe catalog.
//
// The default catalog is embedded in the binary; LoadFile reads a replacement
// from disk. Every Build call returns a fresh item tree that the caller owns.
//
//	catalog, err := presets.Default()
//	if err != nil {
//	    return err
//	}
//	pepperoni, _ := catalog.Build(presets.Pepperoni)
//	special, _ := presets.Decorate(pepperoni, pricing.StuffedCrust)
package presets

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"pizzashop/internal/core/domain/model/pricing"
	"pizzashop/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// Keys of the recipes in the embedded catalog.
const (
	Pepperoni        = "pepperoni"
	Vegetarian       = "vegetarian"
	MeatLovers       = "meat_lovers"
	VegetarianDeluxe = "vegetarian_deluxe"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// ToppingSpec is one priced ingredient of a recipe.
type ToppingSpec struct {
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
}

// Recipe describes a named pizza as an ordered list of toppings.
type Recipe struct {
	Key      string        `yaml:"key"`
	Name     string        `yaml:"name"`
	Toppings []ToppingSpec `yaml:"toppings"`
}

// Special is a recipe sold with a fixed set of surcharges.
type Special struct {
	Key        string   `yaml:"key"`
	Recipe     string   `yaml:"recipe"`
	Surcharges []string `yaml:"surcharges"`
}

type document struct {
	Recipes  []Recipe  `yaml:"recipes"`
	Specials []Special `yaml:"specials"`
}

// Catalog is a validated, read-only set of recipes and specials.
// It is safe for concurrent use.
type Catalog struct {
	recipes      map[string]Recipe
	recipeKeys   []string
	specials     map[string]special
	specialKeys []string
}

type special struct {
	recipe     string
	surcharges []pricing.Surcharge
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// LoadFile reads and parses a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog. Keys must be unique, names
// non-empty and prices finite and non-negative; specials must reference a
// known recipe and known surcharges.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("catalog", err)
	}

	c := &Catalog{
		recipes:  make(map[string]Recipe, len(doc.Recipes)),
		specials: make(map[string]special, len(doc.Specials)),
	}

	var problems []error
	for _, r := range doc.Recipes {
		if err := c.addRecipe(r); err != nil {
			problems = append(problems, err)
		}
	}
	for _, s := range doc.Specials {
		if err := c.addSpecial(s); err != nil {
			problems = append(problems, err)
		}
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return c, nil
}

// Keys returns the recipe keys in catalog order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.recipeKeys))
	copy(keys, c.recipeKeys)
	return keys
}

// SpecialKeys returns the special keys in catalog order.
func (c *Catalog) SpecialKeys() []string {
	keys := make([]string, len(c.specialKeys))
	copy(keys, c.specialKeys)
	return keys
}

// Recipe returns the recipe stored under key.
func (c *Catalog) Recipe(key string) (Recipe, bool) {
	r, ok := c.recipes[normalizeKey(key)]
	return r, ok
}

// Build assembles a fresh group for the recipe stored under key.
func (c *Catalog) Build(key string) (*pricing.Group, error) {
	r, ok := c.recipes[normalizeKey(key)]
	if !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"recipe",
			fmt.Errorf("%q is not on the menu", key),
		)
	}

	group := pricing.NewGroup(r.Name)
	for _, t := range r.Toppings {
		if err := group.Add(pricing.NewTopping(t.Price, t.Name)); err != nil {
			return nil, err
		}
	}
	return group, nil
}

// BuildSpecial assembles a fresh decorated item for the special stored under key.
func (c *Catalog) BuildSpecial(key string) (pricing.Item, error) {
	s, ok := c.specials[normalizeKey(key)]
	if !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"special",
			fmt.Errorf("%q is not on the specials menu", key),
		)
	}

	base, err := c.Build(s.recipe)
	if err != nil {
		return nil, err
	}
	return Decorate(base, s.surcharges...)
}

// Decorate wraps item with each surcharge in turn at its default cost.
func Decorate(item pricing.Item, surcharges ...pricing.Surcharge) (pricing.Item, error) {
	return pricing.Decorate(item, surcharges...)
}

func (c *Catalog) addRecipe(r Recipe) error {
	key := normalizeKey(r.Key)
	if key == "" {
		return errs.NewValueIsRequiredErrorWithCause("recipe key", fmt.Errorf("recipe %q has no key", r.Name))
	}
	if _, exists := c.recipes[key]; exists {
		return errs.NewValueIsInvalidErrorWithCause("recipe key", fmt.Errorf("%q is declared twice", key))
	}
	if strings.TrimSpace(r.Name) == "" {
		return errs.NewValueIsRequiredErrorWithCause("recipe name", fmt.Errorf("recipe %q has no name", key))
	}

	for _, t := range r.Toppings {
		if err := validateTopping(key, t); err != nil {
			return err
		}
	}

	r.Key = key
	c.recipes[key] = r
	c.recipeKeys = append(c.recipeKeys, key)
	return nil
}

func (c *Catalog) addSpecial(s Special) error {
	key := normalizeKey(s.Key)
	if key == "" {
		return errs.NewValueIsRequiredError("special key")
	}
	if _, exists := c.specials[key]; exists {
		return errs.NewValueIsInvalidErrorWithCause("special key", fmt.Errorf("%q is declared twice", key))
	}

	recipe := normalizeKey(s.Recipe)
	if _, ok := c.recipes[recipe]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"special recipe",
			fmt.Errorf("special %q refers to unknown recipe %q", key, s.Recipe),
		)
	}

	surcharges := make([]pricing.Surcharge, 0, len(s.Surcharges))
	for _, name := range s.Surcharges {
		surcharge, err := pricing.ParseSurcharge(name)
		if err != nil {
			return err
		}
		surcharges = append(surcharges, surcharge)
	}

	c.specials[key] = special{recipe: recipe, surcharges: surcharges}
	c.specialKeys = append(c.specialKeys, key)
	return nil
}

func validateTopping(recipe string, t ToppingSpec) error {
	if strings.TrimSpace(t.Name) == "" {
		return errs.NewValueIsRequiredErrorWithCause("topping name", fmt.Errorf("recipe %q", recipe))
	}
	if t.Price < 0 || math.IsNaN(t.Price) || math.IsInf(t.Price, 0) {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"topping price", t.Price, 0, "unbounded",
			fmt.Errorf("topping %q of recipe %q", t.Name, recipe),
		)
	}
	return nil
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
