// Package shipment provides the aggregate root and lifecycle state machine
// for shipments in the logistics platform.
//
// The package includes:
//   - Shipment: the aggregate root carrying route, commercial and physical
//     facts plus the current lifecycle status
//   - Status: the lifecycle state machine, expressed as a data-driven
//     transition table over twenty-one states
//   - Role: the actor roles whose transition rights are gated before table
//     validation
//   - StatusEvent: the immutable, append-only audit record produced for
//     every successful transition
//
// Key business rules:
//   - a status only ever changes through a validated transition
//   - DELIVERED, RTO_DELIVERED, CANCELLED and LOST are terminal
//   - CANCELLED is reachable from every pre-dispatch state
//   - NDR is reachable only from OUT_FOR_DELIVERY and exits to a reattempt,
//     a return to origin, or a resolution
//   - the RTO chain is strictly linear once entered
//   - an airway bill must exist before the shipment enters any in-motion state
package shipment
