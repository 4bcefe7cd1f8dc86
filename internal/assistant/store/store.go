// Package store keeps per-user conversation history in memory, bounded in
// both directions: at most MaxTurns entries per user, and at most maxUsers
// resident conversations (least-recently-active users are evicted).
package store

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"formation-management/internal/assistant"
)

const (
	// MaxTurns caps a single user's stored history (10 user/assistant
	// pairs); older entries are dropped oldest-first.
	MaxTurns = 20

	// DefaultMaxUsers bounds the number of resident conversations.
	DefaultMaxUsers = 4096
)

// Store owns all conversation histories. Entries for different users are
// fully independent.
type Store struct {
	histories *lru.Cache[string, []assistant.Turn]
}

// New creates a conversation store holding at most maxUsers conversations.
func New(maxUsers int) (*Store, error) {
	if maxUsers <= 0 {
		maxUsers = DefaultMaxUsers
	}
	cache, err := lru.New[string, []assistant.Turn](maxUsers)
	if err != nil {
		return nil, err
	}
	return &Store{histories: cache}, nil
}

// History returns a copy of the user's stored turns, oldest first.
func (s *Store) History(userID string) []assistant.Turn {
	turns, ok := s.histories.Get(userID)
	if !ok {
		return nil
	}
	out := make([]assistant.Turn, len(turns))
	copy(out, turns)
	return out
}

// Append adds turns to the user's history and trims it to MaxTurns,
// dropping the oldest entries first.
func (s *Store) Append(userID string, turns ...assistant.Turn) {
	existing, _ := s.histories.Get(userID)
	updated := make([]assistant.Turn, 0, len(existing)+len(turns))
	updated = append(updated, existing...)
	updated = append(updated, turns...)

	if len(updated) > MaxTurns {
		updated = updated[len(updated)-MaxTurns:]
	}

	s.histories.Add(userID, updated)
}

// Len reports the number of stored turns for a user.
func (s *Store) Len(userID string) int {
	turns, _ := s.histories.Get(userID)
	return len(turns)
}
