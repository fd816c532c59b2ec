package blog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func newService() (*Service, *MemoryRepository) {
	repo := NewMemoryRepository()
	return NewService(repo), repo
}

func TestAdd_RoundTrip(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	clientID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	created, res, err := svc.Add(ctx, Article{ID: clientID, Title: "First", Content: "Hello world"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !res.OK {
		t.Fatalf("Add rejected: %s", res.Reason)
	}
	if created.ID == clientID {
		t.Fatal("server kept the client-supplied id")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "First" || got.Content != "Hello world" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestAdd_RequiredFields(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	if _, res, _ := svc.Add(ctx, Article{Content: "body"}); res.OK {
		t.Fatal("empty title accepted")
	}
	if _, res, _ := svc.Add(ctx, Article{Title: "t"}); res.OK {
		t.Fatal("empty content accepted")
	}
}

func TestUpdate(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	res, err := svc.Update(ctx, Article{ID: uuid.New(), Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if res.OK || !res.NotFound {
		t.Fatalf("updating unknown id: want not-found, got %+v", res)
	}

	created, _, err := svc.Add(ctx, Article{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if res, _ := svc.Update(ctx, Article{ID: created.ID, Title: "", Content: "c2"}); res.OK {
		t.Fatal("empty title accepted on update")
	}

	res, err = svc.Update(ctx, Article{ID: created.ID, Title: "t2", Content: "c2"})
	if err != nil || !res.OK {
		t.Fatalf("valid update rejected: %v %+v", err, res)
	}
	got, _ := repo.GetByID(ctx, created.ID)
	if got.Title != "t2" || got.Content != "c2" {
		t.Fatalf("update not persisted: %+v", got)
	}
}

func TestDelete(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	res, err := svc.Delete(ctx, uuid.New())
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if res.OK || !res.NotFound {
		t.Fatalf("deleting unknown id: want not-found, got %+v", res)
	}

	created, _, err := svc.Add(ctx, Article{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if res, err := svc.Delete(ctx, created.ID); err != nil || !res.OK {
		t.Fatalf("Delete existing: %v %+v", err, res)
	}
	if _, err := repo.GetByID(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted article still readable, err = %v", err)
	}
}
