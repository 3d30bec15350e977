// Package services provides domain services that make decisions spanning
// more than a single aggregate method.
//
// The package includes:
//   - DiscountAdvisor: picks the discount policy an order qualifies for
//     based on how many pizzas it holds
package services
