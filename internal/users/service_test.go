package users

import (
	"context"
	"errors"
	"testing"

	"github.com/gatekit/gatekit/internal/directory"
	"github.com/google/uuid"
)

func newService() (*Service, *directory.MemoryStore) {
	store := directory.NewMemoryStore()
	return NewService(store), store
}

func TestAdd_RoundTripWithServerAssignedID(t *testing.T) {
	svc, store := newService()
	ctx := context.Background()

	clientID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	created, res, err := svc.Add(ctx, directory.Identity{
		ID:    clientID, // must be discarded
		Name:  "Alice",
		Email: "alice@example.com",
		Level: directory.ReadOnly,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !res.OK {
		t.Fatalf("Add rejected: %s", res.Reason)
	}
	if created.ID == clientID {
		t.Fatal("server kept the client-supplied id")
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Alice" || got.Email != "alice@example.com" || got.Level != directory.ReadOnly {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestAdd_RequiredFields(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	if _, res, _ := svc.Add(ctx, directory.Identity{Email: "a@b.c"}); res.OK {
		t.Fatal("empty name accepted")
	}
	if _, res, _ := svc.Add(ctx, directory.Identity{Name: "Alice"}); res.OK {
		t.Fatal("empty email accepted")
	}
}

func TestAdd_NameMustBeUniqueCaseInsensitive(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	if _, res, err := svc.Add(ctx, directory.Identity{Name: "Alice", Email: "a@b.c"}); err != nil || !res.OK {
		t.Fatalf("first add failed: %v %s", err, res.Reason)
	}
	_, res, err := svc.Add(ctx, directory.Identity{Name: "aLiCe", Email: "other@b.c"})
	if err != nil {
		t.Fatalf("second add errored: %v", err)
	}
	if res.OK {
		t.Fatal("duplicate name accepted")
	}
}

func TestUpdate_NameIsImmutable(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	created, _, err := svc.Add(ctx, directory.Identity{Name: "Alice", Email: "a@b.c", Level: directory.ReadOnly})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	res, err := svc.Update(ctx, directory.Identity{ID: created.ID, Name: "Alicia", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if res.OK {
		t.Fatal("name change accepted")
	}
	if res.Reason != "cannot change user name" {
		t.Fatalf("reason = %q", res.Reason)
	}
}

func TestUpdate_EmailOnlyChangeSucceeds(t *testing.T) {
	svc, store := newService()
	ctx := context.Background()

	created, _, err := svc.Add(ctx, directory.Identity{Name: "Alice", Email: "a@b.c", Level: directory.ReadOnly})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	res, err := svc.Update(ctx, directory.Identity{ID: created.ID, Name: "Alice", Email: "new@b.c", Level: directory.ReadOnly})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !res.OK {
		t.Fatalf("email update rejected: %s", res.Reason)
	}

	got, _ := store.GetByID(ctx, created.ID)
	if got.Email != "new@b.c" {
		t.Fatalf("email = %q, want new@b.c", got.Email)
	}
}

func TestUpdate_UnknownIDIsNotFound(t *testing.T) {
	svc, _ := newService()

	res, err := svc.Update(context.Background(), directory.Identity{ID: uuid.New(), Name: "Ghost", Email: "g@b.c"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if res.OK || !res.NotFound {
		t.Fatalf("want not-found result, got %+v", res)
	}
}

func TestDelete(t *testing.T) {
	svc, store := newService()
	ctx := context.Background()

	res, err := svc.Delete(ctx, uuid.New())
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if res.OK || !res.NotFound {
		t.Fatalf("deleting unknown id: want not-found, got %+v", res)
	}

	created, _, err := svc.Add(ctx, directory.Identity{Name: "Alice", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	res, err = svc.Delete(ctx, created.ID)
	if err != nil || !res.OK {
		t.Fatalf("Delete existing: %v %+v", err, res)
	}

	if _, err := store.GetByID(ctx, created.ID); !errors.Is(err, directory.ErrNotFound) {
		t.Fatalf("deleted user still readable, err = %v", err)
	}
}
