// Package pricing provides the priced item model of the pizza shop: toppings,
// groups of items, and surcharge decorators.
//
// The package includes:
//   - Item: The capability shared by every priced thing (Price, Name)
//   - Topping: A fixed-price leaf
//   - Group: An ordered composite whose price is the sum of its children
//   - Decorator: A wrapper that adds a surcharge and a name suffix
//
// Key business rules:
//   - A Group owns its children and accumulates their prices when they are added
//   - A Group's name is rebuilt on every call from its children's names
//   - Decorators never modify the item they wrap and may nest to any depth
//   - Prices are not validated here; hosts reject negative input at their boundary
package pricing
