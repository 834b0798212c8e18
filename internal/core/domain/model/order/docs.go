// Package order provides domain entities and business logic for production
// order management. It implements the Order aggregate root with its owned
// stage ledger, lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root owning the ordered stage ledger and enforcing
//     the single-active-stage invariant on every mutation
//   - Stage: A child entity representing the order's assignment to one
//     department in pipeline order
//   - Status: A state machine for the order lifecycle
//     (New/InWork/Stop/Completed/CompletedReclamation/Hidden)
//   - ResourceStatus: The independent, non-monotonic material readiness axis
//
// Key business rules:
//   - stage positions are exactly 1..N with no gaps and are immutable after creation
//   - at most one stage is active at any point in time
//   - advancing deactivates the current stage and activates its strict
//     successor, or completes the order when the current stage was last
//   - only the claiming worker may advance a stage; claims themselves are
//     revocable and overwritable
//   - defect attribution walks the ledger backward and annotates a historical
//     stage without touching activity or status
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
