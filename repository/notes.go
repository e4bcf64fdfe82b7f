package repository

import (
	"context"
	"errors"
	"time"

	"main/middleware"
	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NotesRepo is the persistence gateway for notes. A note lives in exactly one
// of two collections: "notes" (active) or "checked_notes" (checked).
type NotesRepo struct {
	Active  *mongo.Collection
	Checked *mongo.Collection
}

func GetNotesRepo(client *mongo.Client) *NotesRepo {
	db := client.Database(utils.GetEnvAsString("MONGO_DB", "noter"))
	return &NotesRepo{
		Active:  db.Collection("notes"),
		Checked: db.Collection("checked_notes"),
	}
}

func persistence(op string, err error) error {
	return &model.PersistenceError{Op: op, Err: err}
}

// ListActive retrieves all active notes for a user.
func (r *NotesRepo) ListActive(ctx context.Context, owner string) ([]*model.Note, error) {
	return r.list(ctx, r.Active, owner, "list_active")
}

// ListChecked retrieves all checked notes for a user.
func (r *NotesRepo) ListChecked(ctx context.Context, owner string) ([]*model.Note, error) {
	return r.list(ctx, r.Checked, owner, "list_checked")
}

func (r *NotesRepo) list(ctx context.Context, coll *mongo.Collection, owner string, op string) ([]*model.Note, error) {
	defer middleware.TrackDBOperation("find", coll.Name()).ObserveDuration()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := coll.Find(ctx, bson.M{"user_id": owner}, opts)
	if err != nil {
		return nil, persistence(op, err)
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, persistence(op, err)
	}
	return notes, nil
}

// FindActive looks a note up by id regardless of owner, so the caller can tell
// an owner mismatch apart from a missing record.
func (r *NotesRepo) FindActive(ctx context.Context, noteID string) (*model.Note, error) {
	return r.find(ctx, r.Active, noteID, "find_active")
}

// FindChecked looks a checked note up by id regardless of owner.
func (r *NotesRepo) FindChecked(ctx context.Context, noteID string) (*model.Note, error) {
	return r.find(ctx, r.Checked, noteID, "find_checked")
}

func (r *NotesRepo) find(ctx context.Context, coll *mongo.Collection, noteID string, op string) (*model.Note, error) {
	defer middleware.TrackDBOperation("find_one", coll.Name()).ObserveDuration()
	var note model.Note
	err := coll.FindOne(ctx, bson.M{"_id": noteID}).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, persistence(op, err)
	}
	return &note, nil
}

// InsertActive stores a new note in the active collection.
func (r *NotesRepo) InsertActive(ctx context.Context, note *model.Note) error {
	defer middleware.TrackDBOperation("insert", r.Active.Name()).ObserveDuration()
	if _, err := r.Active.InsertOne(ctx, note); err != nil {
		return persistence("insert_active", err)
	}
	return nil
}

// InsertChecked stores a note in the checked collection.
func (r *NotesRepo) InsertChecked(ctx context.Context, note *model.Note) error {
	defer middleware.TrackDBOperation("insert", r.Checked.Name()).ObserveDuration()
	if _, err := r.Checked.InsertOne(ctx, note); err != nil {
		return persistence("insert_checked", err)
	}
	return nil
}

// UpdateActive replaces an active note's mutable fields for (id, owner).
func (r *NotesRepo) UpdateActive(ctx context.Context, noteID, owner string, note *model.Note) error {
	return r.update(ctx, r.Active, noteID, owner, note, "update_active")
}

// UpdateChecked replaces a checked note's mutable fields for (id, owner).
func (r *NotesRepo) UpdateChecked(ctx context.Context, noteID, owner string, note *model.Note) error {
	return r.update(ctx, r.Checked, noteID, owner, note, "update_checked")
}

func (r *NotesRepo) update(ctx context.Context, coll *mongo.Collection, noteID, owner string, note *model.Note, op string) error {
	defer middleware.TrackDBOperation("update", coll.Name()).ObserveDuration()
	filter := bson.M{
		"_id":     noteID,
		"user_id": owner,
	}

	update := bson.M{
		"$set": bson.M{
			"title":            note.Title,
			"description":      note.Description,
			"color":            note.Color,
			"image":            note.Image,
			"todo_list":        note.Checklist,
			"show_description": note.ShowDescription,
			"show_list":        note.ShowList,
			"last_clicked":     note.LastClicked,
		},
	}

	result, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return persistence(op, err)
	}
	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

// DeleteActive removes an active note for (id, owner).
func (r *NotesRepo) DeleteActive(ctx context.Context, noteID, owner string) error {
	return r.delete(ctx, r.Active, noteID, owner, "delete_active")
}

// DeleteChecked removes a checked note for (id, owner).
func (r *NotesRepo) DeleteChecked(ctx context.Context, noteID, owner string) error {
	return r.delete(ctx, r.Checked, noteID, owner, "delete_checked")
}

func (r *NotesRepo) delete(ctx context.Context, coll *mongo.Collection, noteID, owner string, op string) error {
	defer middleware.TrackDBOperation("delete", coll.Name()).ObserveDuration()
	result, err := coll.DeleteOne(ctx, bson.M{"_id": noteID, "user_id": owner})
	if err != nil {
		return persistence(op, err)
	}
	if result.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

// MoveActiveToChecked moves a note into the checked collection, stamping
// checked_at and setting is_checked while preserving last_clicked.
func (r *NotesRepo) MoveActiveToChecked(ctx context.Context, noteID, owner string) (*model.Note, error) {
	return r.move(ctx, r.Active, r.Checked, noteID, owner, true, "move_active_to_checked")
}

// MoveCheckedToActive moves a note back to the active collection, clearing
// checked_at and is_checked while preserving last_clicked.
func (r *NotesRepo) MoveCheckedToActive(ctx context.Context, noteID, owner string) (*model.Note, error) {
	return r.move(ctx, r.Checked, r.Active, noteID, owner, false, "move_checked_to_active")
}

// move is the single primitive behind both directions: read from the source,
// flip the checked state, insert into the destination, delete from the source.
// A failed source delete compensates by removing the inserted copy so the note
// never ends up in both collections.
func (r *NotesRepo) move(ctx context.Context, src, dst *mongo.Collection, noteID, owner string, checked bool, op string) (*model.Note, error) {
	defer middleware.TrackDBOperation("move", src.Name()).ObserveDuration()
	var note model.Note
	err := src.FindOne(ctx, bson.M{"_id": noteID, "user_id": owner}).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, persistence(op, err)
	}

	note.IsChecked = checked
	if checked {
		now := time.Now()
		note.CheckedAt = &now
	} else {
		note.CheckedAt = nil
	}

	if _, err := dst.InsertOne(ctx, &note); err != nil {
		return nil, persistence(op, err)
	}

	if _, err := src.DeleteOne(ctx, bson.M{"_id": noteID, "user_id": owner}); err != nil {
		// roll the insert back so the note is not in both collections
		if _, derr := dst.DeleteOne(ctx, bson.M{"_id": noteID, "user_id": owner}); derr != nil {
			return nil, persistence(op, derr)
		}
		return nil, persistence(op, err)
	}

	return &note, nil
}
