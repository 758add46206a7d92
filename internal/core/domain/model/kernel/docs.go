// Package kernel provides shared value objects for the atelier domain model.
//
// The package includes:
//   - UUID: identity value object wrapping github.com/google/uuid
//   - Money: monetary amounts in integer minor units (cents)
//   - Actor and Role: the authenticated caller as resolved by the external
//     identity gate, consumed by the engine as a trust boundary input
//
// All kernel types are immutable value objects with validated constructors.
// The zero value of each type is invalid and rejected by Validate, which keeps
// unconstructed values from leaking into aggregates.
package kernel
