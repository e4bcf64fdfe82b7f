package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"main/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// testRepo connects to the Mongo instance named by MONGO_TEST_URI and returns
// a repo over throwaway collections. Skips when no instance is configured.
func testRepo(t *testing.T) *NotesRepo {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set, skipping repository tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Fatalf("ping: %v", err)
	}

	db := client.Database("noter_test")
	repo := &NotesRepo{
		Active:  db.Collection("notes"),
		Checked: db.Collection("checked_notes"),
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		repo.Active.Drop(ctx)
		repo.Checked.Drop(ctx)
		client.Disconnect(ctx)
	})
	return repo
}

func testNote(id, owner string) *model.Note {
	return &model.Note{
		ID:        id,
		Owner:     owner,
		Title:     "handleliste",
		Color:     model.DefaultColor,
		Checklist: []model.ChecklistItem{{Text: "milk"}},
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}
}

func TestNotesRepoRoundTrip(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	note := testNote("n1", "1")
	if err := repo.InsertActive(ctx, note); err != nil {
		t.Fatalf("InsertActive: %v", err)
	}

	found, err := repo.FindActive(ctx, "n1")
	if err != nil {
		t.Fatalf("FindActive: %v", err)
	}
	if found.Title != "handleliste" || found.Owner != "1" {
		t.Errorf("unexpected note: %+v", found)
	}
	if len(found.Checklist) != 1 || found.Checklist[0].Text != "milk" {
		t.Errorf("checklist not persisted: %+v", found.Checklist)
	}

	notes, err := repo.ListActive(ctx, "1")
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("got %d notes, want 1", len(notes))
	}

	if notes, err = repo.ListActive(ctx, "2"); err != nil || len(notes) != 0 {
		t.Errorf("ListActive for other owner = %v, %v", notes, err)
	}
}

func TestNotesRepoFindMissing(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.FindActive(context.Background(), "missing")
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestNotesRepoUpdate(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	note := testNote("n1", "1")
	if err := repo.InsertActive(ctx, note); err != nil {
		t.Fatalf("InsertActive: %v", err)
	}

	now := time.Now().Truncate(time.Millisecond)
	note.Title = "oppdatert"
	note.LastClicked = &now
	if err := repo.UpdateActive(ctx, "n1", "1", note); err != nil {
		t.Fatalf("UpdateActive: %v", err)
	}

	found, err := repo.FindActive(ctx, "n1")
	if err != nil {
		t.Fatalf("FindActive: %v", err)
	}
	if found.Title != "oppdatert" {
		t.Errorf("title = %q", found.Title)
	}
	if found.LastClicked == nil {
		t.Error("last_clicked not persisted")
	}

	if err := repo.UpdateActive(ctx, "n1", "2", note); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("update as wrong owner = %v, want ErrNotFound", err)
	}
	if err := repo.UpdateActive(ctx, "missing", "1", note); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("update of missing note = %v, want ErrNotFound", err)
	}
}

func TestNotesRepoMove(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	note := testNote("n1", "1")
	clicked := time.Now().Truncate(time.Millisecond)
	note.LastClicked = &clicked
	if err := repo.InsertActive(ctx, note); err != nil {
		t.Fatalf("InsertActive: %v", err)
	}

	moved, err := repo.MoveActiveToChecked(ctx, "n1", "1")
	if err != nil {
		t.Fatalf("MoveActiveToChecked: %v", err)
	}
	if !moved.IsChecked || moved.CheckedAt == nil {
		t.Errorf("moved note not stamped: %+v", moved)
	}
	if moved.LastClicked == nil || !moved.LastClicked.Equal(clicked) {
		t.Error("move changed last_clicked")
	}

	if _, err := repo.FindActive(ctx, "n1"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("note still in active collection: %v", err)
	}
	if _, err := repo.FindChecked(ctx, "n1"); err != nil {
		t.Errorf("note missing from checked collection: %v", err)
	}

	back, err := repo.MoveCheckedToActive(ctx, "n1", "1")
	if err != nil {
		t.Fatalf("MoveCheckedToActive: %v", err)
	}
	if back.IsChecked || back.CheckedAt != nil {
		t.Errorf("checked state not cleared: %+v", back)
	}
	if _, err := repo.FindChecked(ctx, "n1"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("note still in checked collection: %v", err)
	}

	if _, err := repo.MoveActiveToChecked(ctx, "n1", "2"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("move as wrong owner = %v, want ErrNotFound", err)
	}

	count, err := repo.Active.CountDocuments(ctx, bson.M{"_id": "n1"})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("note duplicated or lost, count = %d", count)
	}
}

func TestNotesRepoDelete(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	if err := repo.InsertActive(ctx, testNote("n1", "1")); err != nil {
		t.Fatalf("InsertActive: %v", err)
	}

	if err := repo.DeleteActive(ctx, "n1", "2"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("delete as wrong owner = %v, want ErrNotFound", err)
	}
	if err := repo.DeleteActive(ctx, "n1", "1"); err != nil {
		t.Fatalf("DeleteActive: %v", err)
	}
	if err := repo.DeleteActive(ctx, "n1", "1"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}
