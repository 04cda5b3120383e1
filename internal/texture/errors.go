package texture

import "errors"

var (
	// ErrEmptyText rejects empty or whitespace-only input to Analyze.
	ErrEmptyText = errors.New("text must be non-empty")

	// ErrEmptyBatch rejects a batch with no analyzable messages.
	ErrEmptyBatch = errors.New("message batch is empty")

	// ErrProfileNotFound reports a lookup for an agent that was never
	// added to. Distinct from "profile with zero entries", which cannot
	// exist: a profile is created only by its first append.
	ErrProfileNotFound = errors.New("no profile for agent")
)
