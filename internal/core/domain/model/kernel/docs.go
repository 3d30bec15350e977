// Package kernel provides core domain primitives shared by the pizza shop model.
//
// The package includes:
//   - UUID: A value object for order identifiers, wrapping github.com/google/uuid
//   - Randomizer: The injectable random source used by probabilistic transitions
//   - FormatAmount: Display formatting for rand amounts
//
// Pricing arithmetic stays in float64 throughout the model; FormatAmount only
// rounds for presentation.
package kernel
