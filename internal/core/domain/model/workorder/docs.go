// Package workorder provides the domain model for field work orders and the
// status-transition rules technicians drive from the mobile application.
//
// The package includes:
//   - Status: a value object with a closed Kind plus the free text of unrecognized statuses
//   - WorkOrder: the aggregate root holding status, timestamps, comment and rating
//   - Patch: the set of columns a transition writes
//   - CancellationRecord: the audit row every cancellation produces
//
// Key business rules:
//   - A Completed work order is frozen: further transitions are skipped without writes
//   - StartedAt is stamped at most once, on entry into EnRoute
//   - EndedAt is stamped on every request to Cancelled or Completed
//   - Cancelled is not frozen; a cancelled order may be resumed or cancelled again
//   - Every cancellation produces exactly one CancellationRecord tied to the production id
package workorder
