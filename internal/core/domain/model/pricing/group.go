package pricing

import (
	"strings"

	"pizzashop/internal/pkg/errs"
)

// Group is an ordered collection of items priced as their sum.
//
// The total is accumulated when a child is added and is never recomputed,
// so changes made to a child group after it was added do not reach the
// parent's price. Name, in contrast, is rebuilt on every call.
type Group struct {
	name     string
	children []Item
	total    float64
}

// NewGroup creates an empty group. An empty group is valid and costs nothing.
func NewGroup(name string) *Group {
	return &Group{name: name}
}

// Add appends child and adds its current price to the group's total.
// The group takes ownership of child.
func (g *Group) Add(child Item) error {
	if child == nil {
		return errs.NewValueIsRequiredError("child")
	}

	g.children = append(g.children, child)
	g.total += child.Price()
	return nil
}

// Children returns a copy of the group's direct children in insertion order.
func (g *Group) Children() []Item {
	children := make([]Item, len(g.children))
	copy(children, g.children)
	return children
}

// Len returns the number of direct children.
func (g *Group) Len() int {
	return len(g.children)
}

func (g *Group) Price() float64 {
	return g.total
}

// Name returns "<group> (<child>, <child>, ...)".
func (g *Group) Name() string {
	names := make([]string, len(g.children))
	for i, child := range g.children {
		names[i] = child.Name()
	}

	var b strings.Builder
	b.WriteString(g.name)
	b.WriteString(" (")
	b.WriteString(strings.Join(names, ", "))
	b.WriteString(")")
	return b.String()
}
