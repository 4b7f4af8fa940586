package quiz

import (
	"context"
	"errors"
	"testing"
)

func TestMemStoreSaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	saved, err := s.Save(ctx, Record{
		Title:   "Quiz 1",
		ShareID: "abc123",
		Data:    Quiz{Title: "Quiz 1"},
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID != 1 {
		t.Errorf("first id = %d, want 1", saved.ID)
	}
	if saved.CreatedAt.IsZero() || saved.UpdatedAt.IsZero() {
		t.Errorf("timestamps should be set: %+v", saved)
	}

	byID, err := s.GetByID(ctx, saved.ID)
	if err != nil || byID.Title != "Quiz 1" {
		t.Errorf("GetByID = %+v, %v", byID, err)
	}

	byShare, err := s.GetByShareID(ctx, "abc123")
	if err != nil || byShare.ID != saved.ID {
		t.Errorf("GetByShareID = %+v, %v", byShare, err)
	}
}

func TestMemStoreNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	if _, err := s.GetByID(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID err = %v, want ErrNotFound", err)
	}
	if _, err := s.GetByShareID(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByShareID err = %v, want ErrNotFound", err)
	}
	if _, err := s.Update(ctx, 99, "t", Quiz{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update err = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete err = %v, want ErrNotFound", err)
	}
}

func TestMemStoreUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	saved, _ := s.Save(ctx, Record{Title: "Before", ShareID: "s1"})

	updated, err := s.Update(ctx, saved.ID, "After", Quiz{Title: "After"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "After" || updated.Data.Title != "After" {
		t.Errorf("updated = %+v", updated)
	}

	// Empty title keeps the stored one.
	kept, err := s.Update(ctx, saved.ID, "", Quiz{Title: "After"})
	if err != nil || kept.Title != "After" {
		t.Errorf("empty-title update = %+v, %v", kept, err)
	}
}

func TestMemStoreListAndDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	a, _ := s.Save(ctx, Record{Title: "A", ShareID: "sa"})
	s.Save(ctx, Record{Title: "B", ShareID: "sb"})

	recs, err := s.List(ctx)
	if err != nil || len(recs) != 2 {
		t.Fatalf("List = %d records, %v", len(recs), err)
	}

	if err := s.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	recs, _ = s.List(ctx)
	if len(recs) != 1 || recs[0].Title != "B" {
		t.Errorf("after delete: %+v", recs)
	}
}
