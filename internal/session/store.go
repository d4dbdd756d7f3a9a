package session

import "context"

// Store defines how visitor sessions are stored and retrieved.
// Get returns (nil, nil) when no session exists for the given ID.
//
// The search sequence counter lives next to the state rather than inside it:
// NextSearchSeq must be atomic per session so that concurrent search
// requests get strictly increasing numbers, and SearchSeq reads the latest
// issued number. A search response is only applied while its number is still
// the latest.
type Store interface {
	Get(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, s *State) error
	Delete(ctx context.Context, id string) error
	NextSearchSeq(ctx context.Context, id string) (int64, error)
	SearchSeq(ctx context.Context, id string) (int64, error)
}
