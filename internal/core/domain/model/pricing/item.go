package pricing

import (
	"fmt"

	"pizzashop/internal/core/domain/model/kernel"
)

// Item is anything that can be priced and named: a topping, a group, or a decorated item.
type Item interface {
	Price() float64
	Name() string
}

// Topping is a leaf item with a fixed price and name.
type Topping struct {
	price float64
	name  string
}

// NewTopping creates an immutable leaf item.
func NewTopping(price float64, name string) *Topping {
	return &Topping{price: price, name: name}
}

func (t *Topping) Price() float64 {
	return t.price
}

func (t *Topping) Name() string {
	return t.name
}

// Represent renders an item the way it is printed on a receipt:
//
//	Pizza: Pepperoni Pizza (Dough, Tomato Sauce, Cheese, Pepperoni) with Extra Cheese - R62.00
func Represent(item Item) string {
	return fmt.Sprintf("Pizza: %s - %s", item.Name(), kernel.FormatAmount(item.Price()))
}
