// Package services contains domain services implementing business logic that
// spans multiple aggregates or combines aggregate state with reference data.
//
// The package includes:
//   - BreakResolver: A service combining an order's stage ledger with the
//     per-department defect catalogs to list eligible attribution targets and
//     to validate and record defect attributions
//
// Domain services are stateless and operate on domain entities passed to them,
// keeping the business rules in the domain layer rather than in application
// handlers.
package services
