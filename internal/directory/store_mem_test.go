package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestMemoryStore_ListMatchesCaseInsensitively(t *testing.T) {
	s := NewSeededStore()
	ctx := context.Background()

	got, err := s.List(ctx, "john doe")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Name != "John Doe" {
		t.Fatalf("List(john doe) = %+v, want the seeded John Doe", got)
	}

	all, err := s.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List(\"\") returned %d identities, want 2", len(all))
	}
}

func TestMemoryStore_UpdateAndDeleteRequireExistence(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	ghost := Identity{ID: uuid.New(), Name: "Ghost", Email: "g@b.c"}
	if err := s.Update(ctx, ghost); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update unknown: err = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, ghost.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete unknown: err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_ListIsStable(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	names := []string{"a", "b", "c"}
	for _, n := range names {
		if err := s.Add(ctx, Identity{ID: uuid.New(), Name: n, Email: n + "@x"}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	got, _ := s.List(ctx, "")
	for i, n := range names {
		if got[i].Name != n {
			t.Fatalf("List order %v, want insertion order %v", got, names)
		}
	}
}

func TestLevelFromLegacyBool(t *testing.T) {
	if LevelFromLegacyBool(true) != FullAccess {
		t.Fatal("legacy true must map to FullAccess")
	}
	if LevelFromLegacyBool(false) != NoAccess {
		t.Fatal("legacy false must map to NoAccess")
	}
}
