// Package order provides the Order aggregate of the pizza shop and the phase
// state machine that drives its fulfillment.
//
// The package includes:
//   - Order: The aggregate root owning priced items, a discount policy and the current phase
//   - Phase: The fulfillment state machine (Started, Pending, Preparing, Ready)
//
// Key business rules:
//   - Orders start empty, at Started, with the regular price policy
//   - The total is the discount policy applied to the sum of item prices, recomputed on every call
//   - Each Process call advances exactly one phase; Preparing may fall back to Pending
//   - Ready is terminal and processing it changes nothing
//   - Clear resets items, discount and phase together
//
// Randomness is injected through kernel.Randomizer so fulfillment can be replayed in tests.
package order
