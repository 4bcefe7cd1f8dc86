package store_test

import (
	"fmt"
	"testing"

	"formation-management/internal/assistant"
	"formation-management/internal/assistant/store"
)

func TestStore(t *testing.T) {
	t.Run("Empty History", func(t *testing.T) {
		s, err := store.New(0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := s.History("nobody"); got != nil {
			t.Errorf("expected nil history, got %v", got)
		}
	})

	t.Run("Appends In Order", func(t *testing.T) {
		s, _ := store.New(0)
		s.Append("u1",
			assistant.Turn{Role: assistant.RoleUser, Content: "bonjour"},
			assistant.Turn{Role: assistant.RoleAssistant, Content: "bonjour!"},
		)

		turns := s.History("u1")
		if len(turns) != 2 {
			t.Fatalf("expected 2 turns, got %d", len(turns))
		}
		if turns[0].Content != "bonjour" || turns[1].Content != "bonjour!" {
			t.Errorf("unexpected order: %v", turns)
		}
	})

	t.Run("Trims Oldest First", func(t *testing.T) {
		s, _ := store.New(0)
		for i := 1; i <= 11; i++ {
			s.Append("u1",
				assistant.Turn{Role: assistant.RoleUser, Content: fmt.Sprintf("q%d", i)},
				assistant.Turn{Role: assistant.RoleAssistant, Content: fmt.Sprintf("a%d", i)},
			)
		}

		turns := s.History("u1")
		if len(turns) != store.MaxTurns {
			t.Fatalf("expected %d turns, got %d", store.MaxTurns, len(turns))
		}
		if turns[0].Content != "q2" {
			t.Errorf("oldest pair should be dropped, history starts with %q", turns[0].Content)
		}
		if turns[len(turns)-1].Content != "a11" {
			t.Errorf("most recent answer missing, history ends with %q", turns[len(turns)-1].Content)
		}
	})

	t.Run("Users Are Independent", func(t *testing.T) {
		s, _ := store.New(0)
		s.Append("u1", assistant.Turn{Role: assistant.RoleUser, Content: "mine"})
		s.Append("u2", assistant.Turn{Role: assistant.RoleUser, Content: "yours"})

		if got := s.History("u1")[0].Content; got != "mine" {
			t.Errorf("u1 history polluted: %q", got)
		}
		if s.Len("u2") != 1 {
			t.Errorf("u2 expected 1 turn, got %d", s.Len("u2"))
		}
	})

	t.Run("History Returns A Copy", func(t *testing.T) {
		s, _ := store.New(0)
		s.Append("u1", assistant.Turn{Role: assistant.RoleUser, Content: "original"})

		turns := s.History("u1")
		turns[0].Content = "mutated"

		if got := s.History("u1")[0].Content; got != "original" {
			t.Errorf("stored history was mutated through the returned slice: %q", got)
		}
	})

	t.Run("Evicts Least Recent User", func(t *testing.T) {
		s, _ := store.New(2)
		s.Append("u1", assistant.Turn{Role: assistant.RoleUser, Content: "a"})
		s.Append("u2", assistant.Turn{Role: assistant.RoleUser, Content: "b"})
		s.Append("u3", assistant.Turn{Role: assistant.RoleUser, Content: "c"})

		if s.Len("u1") != 0 {
			t.Error("expected the oldest user to be evicted")
		}
		if s.Len("u2") != 1 || s.Len("u3") != 1 {
			t.Error("recent users should survive eviction")
		}
	})
}
