// Package ndr provides the aggregate for non-delivery report handling, the
// exception workflow that owns a shipment while it sits in the NDR lifecycle
// status.
//
// The package includes:
//   - Report: the aggregate root tracking contact attempts, customer
//     corrections, reattempt scheduling and resolution for one exception
//   - CallLog: the immutable record of a single customer contact attempt
//   - the Status, ResolutionType, CallStatus and CallOutcome enumerations
//
// Key business rules:
//   - a shipment has at most one unresolved report; repeated failed attempts
//     reuse the open one
//   - a report leaves the open states exactly once, either through a
//     resolution (delivered or cancelled) or by escalating to return-to-origin
//   - closed and escalated reports reject every further mutation
package ndr
