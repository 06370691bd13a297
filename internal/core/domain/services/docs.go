// Package services provides domain services that orchestrate business
// operations across multiple collaborators.
//
// The package includes:
//   - DeliveryQuoter: prices a delivery by combining address normalization,
//     the persistent quote cache, and the external geocoding/routing
//     provider with the store's pricing configuration.
package services
