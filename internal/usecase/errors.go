package usecase

import "errors"

// Error kinds shared by all lifecycle use cases. Call sites wrap these with
// the entity id and the offending status or identity, so callers can diagnose
// which rule failed; handlers map the kind to an HTTP status.
var (
	// ErrNotFound: a referenced entity id does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrForbidden: an authorization predicate failed, or a status-gated
	// precondition framed as an authorization concern failed.
	ErrForbidden = errors.New("operation not allowed")

	// ErrInvalidTransition: the current status does not permit the
	// requested transition.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrPersistenceFailure: a repository write reported no change when one
	// was expected. Not retried locally; the dispatch layer retries.
	ErrPersistenceFailure = errors.New("persistence update failed")
)
