// Package services provides stateless domain services for the logistics
// platform's decision core. It implements business computations that don't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - RateCalculator: chargeable weight and per-partner quote computation
//   - PartnerSelector: weighted, normalised ranking of serviceable partners
//
// Both services are pure: they perform no I/O and are deterministic over
// their inputs, which keeps partner selection reproducible and unit-testable.
package services
