package engine

import "errors"

// Error taxonomy for the session engine. Only ErrMissingCollaborator is
// fatal; every other failure is locally recoverable and never requires
// restarting the session.
var (
	// ErrMissingCollaborator means a required capability (transport,
	// presenter, identity) was absent at construction.
	ErrMissingCollaborator = errors.New("required collaborator missing")

	// ErrNotAuthenticated means no user is signed in.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrStaleEvent marks a server event referencing a question or room that
	// no longer matches current state. Expected under reconnect races;
	// logged, never surfaced.
	ErrStaleEvent = errors.New("stale event")

	// ErrTurnViolation marks a submission attempted out of turn. Rejected
	// before any network call.
	ErrTurnViolation = errors.New("not your turn")
)
