package pricing_test

import (
	"testing"

	"pizzashop/internal/core/domain/model/pricing"
	"pizzashop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPepperoni(t *testing.T) *pricing.Group {
	t.Helper()

	g := pricing.NewGroup("Pepperoni")
	require.NoError(t, g.Add(pricing.NewTopping(10, "Dough")))
	require.NoError(t, g.Add(pricing.NewTopping(5, "Tomato Sauce")))
	require.NoError(t, g.Add(pricing.NewTopping(15, "Cheese")))
	require.NoError(t, g.Add(pricing.NewTopping(20, "Pepperoni")))
	return g
}

func TestTopping(t *testing.T) {
	t.Run("should expose fixed price and name", func(t *testing.T) {
		topping := pricing.NewTopping(12.5, "Mushrooms")

		assert.InDelta(t, 12.5, topping.Price(), 0)
		assert.Equal(t, "Mushrooms", topping.Name())
	})

	t.Run("should carry negative prices unchanged", func(t *testing.T) {
		topping := pricing.NewTopping(-3, "Voucher")

		assert.InDelta(t, -3.0, topping.Price(), 0)
	})
}

func TestGroup_Price(t *testing.T) {
	t.Run("should sum leaf prices", func(t *testing.T) {
		g := newPepperoni(t)

		assert.InDelta(t, 50.0, g.Price(), 0)
		assert.Equal(t, 4, g.Len())
	})

	t.Run("should sum every leaf reachable through nested groups", func(t *testing.T) {
		base := pricing.NewGroup("Base")
		require.NoError(t, base.Add(pricing.NewTopping(10, "Dough")))
		require.NoError(t, base.Add(pricing.NewTopping(5, "Tomato Sauce")))

		veg := pricing.NewGroup("Veg")
		require.NoError(t, veg.Add(pricing.NewTopping(12, "Mushrooms")))
		require.NoError(t, veg.Add(pricing.NewTopping(8, "Onions")))

		pizza := pricing.NewGroup("Pizza")
		require.NoError(t, pizza.Add(base))
		require.NoError(t, pizza.Add(veg))
		require.NoError(t, pizza.Add(pricing.NewTopping(15, "Cheese")))

		assert.InDelta(t, 50.0, pizza.Price(), 0)
	})

	t.Run("should cost nothing when empty", func(t *testing.T) {
		g := pricing.NewGroup("Group")

		assert.InDelta(t, 0.0, g.Price(), 0)
	})

	t.Run("should keep the total captured at insertion time", func(t *testing.T) {
		child := pricing.NewGroup("Child")
		require.NoError(t, child.Add(pricing.NewTopping(10, "Dough")))

		parent := pricing.NewGroup("Parent")
		require.NoError(t, parent.Add(child))

		require.NoError(t, child.Add(pricing.NewTopping(5, "Sauce")))

		assert.InDelta(t, 15.0, child.Price(), 0)
		assert.InDelta(t, 10.0, parent.Price(), 0)
		assert.Equal(t, "Parent (Child (Dough, Sauce))", parent.Name())
	})

	t.Run("should reject nil child", func(t *testing.T) {
		g := pricing.NewGroup("Group")

		err := g.Add(nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, 0, g.Len())
	})
}

func TestGroup_Name(t *testing.T) {
	t.Run("should join children names", func(t *testing.T) {
		g := newPepperoni(t)

		assert.Equal(t, "Pepperoni (Dough, Tomato Sauce, Cheese, Pepperoni)", g.Name())
	})

	t.Run("should render empty parentheses when empty", func(t *testing.T) {
		assert.Equal(t, "Group ()", pricing.NewGroup("Group").Name())
	})

	t.Run("should nest empty groups", func(t *testing.T) {
		outer := pricing.NewGroup("Outer")
		require.NoError(t, outer.Add(pricing.NewGroup("A")))
		require.NoError(t, outer.Add(pricing.NewGroup("B")))

		assert.Equal(t, "Outer (A (), B ())", outer.Name())
		assert.InDelta(t, 0.0, outer.Price(), 0)
	})

	t.Run("should allow duplicate names", func(t *testing.T) {
		g := pricing.NewGroup("Double")
		require.NoError(t, g.Add(pricing.NewTopping(15, "Cheese")))
		require.NoError(t, g.Add(pricing.NewTopping(15, "Cheese")))

		assert.Equal(t, "Double (Cheese, Cheese)", g.Name())
		assert.InDelta(t, 30.0, g.Price(), 0)
	})
}

func TestGroup_Children(t *testing.T) {
	t.Run("should return a copy in insertion order", func(t *testing.T) {
		g := newPepperoni(t)

		children := g.Children()
		children[0] = pricing.NewTopping(99, "Replaced")

		assert.Equal(t, "Dough", g.Children()[0].Name())
		assert.Equal(t, "Pepperoni", g.Children()[3].Name())
	})
}
