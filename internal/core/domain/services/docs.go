// Package services provides domain services that hold business rules which do
// not belong to a single aggregate.
//
// The package includes:
//   - AddressNormalizer: cleans customer addresses for display in the route list
package services
