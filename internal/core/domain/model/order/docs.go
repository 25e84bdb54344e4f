// Package order provides the Order aggregate and its status workflow for the
// nail-art order back-office.
//
// The package includes:
//   - Order: the aggregate root holding customer, style attributes, price, images and status
//   - Status: the fixed, totally ordered status sequence and its single forward transition
//   - Size, Shape: enumerated style attributes with display labels
//   - Patch: a partial-field update applied to persisted orders
//
// Key business rules:
//   - Status follows deposit_paid -> ordered -> shipped, one step at a time
//   - Advancing a shipped order is a no-op, advancing an unknown status is an error
//   - Quantity is positive, price is non-negative, customer is required
//   - A custom size should carry a custom size note (reported, never enforced)
//   - The first image is the cover image
package order
