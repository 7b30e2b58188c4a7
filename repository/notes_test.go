package repository

import (
	"context"
	"errors"
	"testing"

	"main/model"
)

func TestAddNote(t *testing.T) {
	db := setupTestDB(t)
	userRepo := GetUserRepo(db)
	repo := GetNotesRepo(db)
	ctx := context.Background()

	user := mustAddUser(t, userRepo, "ann", "a@x.com")

	note := &model.Note{Title: "first", Body: "hello", OwnerID: user.ID}
	if err := repo.AddNote(ctx, note); err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}
	if note.ID == 0 {
		t.Error("Expected auto-assigned id, got 0")
	}
	if note.Created.IsZero() {
		t.Error("Expected creation timestamp to be set")
	}

	// Missing owner is caught by the foreign key
	bad := &model.Note{Title: "orphan", Body: "x", OwnerID: 999}
	if err := repo.AddNote(ctx, bad); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound for missing owner, got %v", err)
	}
}

func TestFindNote(t *testing.T) {
	db := setupTestDB(t)
	userRepo := GetUserRepo(db)
	repo := GetNotesRepo(db)
	ctx := context.Background()

	ann := mustAddUser(t, userRepo, "ann", "a@x.com")
	bob := mustAddUser(t, userRepo, "bob", "b@x.com")

	note := &model.Note{Title: "secret", Body: "x", OwnerID: bob.ID}
	if err := repo.AddNote(ctx, note); err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}

	found, err := repo.FindNote(ctx, note.ID, bob.ID)
	if err != nil {
		t.Fatalf("FindNote failed: %v", err)
	}
	if found == nil || found.Title != "secret" {
		t.Errorf("Expected note secret, got %+v", found)
	}

	// Another user's note looks absent
	crossOwner, err := repo.FindNote(ctx, note.ID, ann.ID)
	if err != nil {
		t.Fatalf("Cross-owner FindNote failed: %v", err)
	}
	if crossOwner != nil {
		t.Errorf("Expected nil for cross-owner lookup, got %+v", crossOwner)
	}
}

func TestGetNotes(t *testing.T) {
	db := setupTestDB(t)
	userRepo := GetUserRepo(db)
	repo := GetNotesRepo(db)
	ctx := context.Background()

	ann := mustAddUser(t, userRepo, "ann", "a@x.com")
	bob := mustAddUser(t, userRepo, "bob", "b@x.com")

	for _, n := range []*model.Note{
		{Title: "a1", Body: "x", OwnerID: ann.ID},
		{Title: "a2", Body: "x", OwnerID: ann.ID},
		{Title: "b1", Body: "x", OwnerID: bob.ID},
	} {
		if err := repo.AddNote(ctx, n); err != nil {
			t.Fatalf("AddNote failed: %v", err)
		}
	}

	annNotes, err := repo.GetUserNotes(ctx, ann.ID)
	if err != nil {
		t.Fatalf("GetUserNotes failed: %v", err)
	}
	if len(annNotes) != 2 {
		t.Errorf("Expected 2 notes for ann, got %d", len(annNotes))
	}

	all, err := repo.GetNotes(ctx, 0, 100)
	if err != nil {
		t.Fatalf("GetNotes failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 notes in total, got %d", len(all))
	}

	page, err := repo.GetNotes(ctx, 2, 100)
	if err != nil {
		t.Fatalf("Paged GetNotes failed: %v", err)
	}
	if len(page) != 1 || page[0].Title != "b1" {
		t.Errorf("Expected page [b1], got %+v", page)
	}
}

func TestUpdateNote(t *testing.T) {
	db := setupTestDB(t)
	userRepo := GetUserRepo(db)
	repo := GetNotesRepo(db)
	ctx := context.Background()

	ann := mustAddUser(t, userRepo, "ann", "a@x.com")
	bob := mustAddUser(t, userRepo, "bob", "b@x.com")

	note := &model.Note{Title: "draft", Body: "v1", OwnerID: ann.ID}
	if err := repo.AddNote(ctx, note); err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}

	rows, err := repo.UpdateNote(ctx, ann.ID, note.ID, map[string]interface{}{"body": "v2"})
	if err != nil {
		t.Fatalf("UpdateNote failed: %v", err)
	}
	if rows != 1 {
		t.Errorf("Expected 1 row touched, got %d", rows)
	}

	updated, err := repo.FindNote(ctx, note.ID, ann.ID)
	if err != nil || updated == nil {
		t.Fatalf("FindNote after update failed: %v", err)
	}
	if updated.Body != "v2" || updated.Title != "draft" {
		t.Errorf("Unexpected note after update: %+v", updated)
	}

	// A different owner touches nothing
	rows, err = repo.UpdateNote(ctx, bob.ID, note.ID, map[string]interface{}{"body": "stolen"})
	if err != nil {
		t.Fatalf("Cross-owner update failed: %v", err)
	}
	if rows != 0 {
		t.Errorf("Expected 0 rows for cross-owner update, got %d", rows)
	}
}

func TestDeleteNote(t *testing.T) {
	db := setupTestDB(t)
	userRepo := GetUserRepo(db)
	repo := GetNotesRepo(db)
	ctx := context.Background()

	ann := mustAddUser(t, userRepo, "ann", "a@x.com")
	bob := mustAddUser(t, userRepo, "bob", "b@x.com")

	note := &model.Note{Title: "gone", Body: "x", OwnerID: ann.ID}
	if err := repo.AddNote(ctx, note); err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}

	// A different owner deletes nothing
	rows, err := repo.DeleteNote(ctx, note.ID, bob.ID)
	if err != nil {
		t.Fatalf("Cross-owner delete failed: %v", err)
	}
	if rows != 0 {
		t.Errorf("Expected 0 rows for cross-owner delete, got %d", rows)
	}

	rows, err = repo.DeleteNote(ctx, note.ID, ann.ID)
	if err != nil {
		t.Fatalf("DeleteNote failed: %v", err)
	}
	if rows != 1 {
		t.Errorf("Expected 1 row deleted, got %d", rows)
	}

	// Missing note deletes nothing, no error
	rows, err = repo.DeleteNote(ctx, 999, ann.ID)
	if err != nil {
		t.Fatalf("Delete of missing note failed: %v", err)
	}
	if rows != 0 {
		t.Errorf("Expected 0 rows for missing note, got %d", rows)
	}
}
