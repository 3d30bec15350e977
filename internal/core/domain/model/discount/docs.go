// Package discount provides the pricing policies an order applies to its subtotal.
//
// The package includes:
//   - Kind: The closed set of policies (Regular, Bulk, Family)
//   - Policy: An immutable value that turns a subtotal into a total and carries a display label
//
// Policies are selected by Kind through New; they hold no reference to any order.
package discount
