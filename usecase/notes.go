package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"main/config"
	"main/model"
	"main/utils"
)

// NotesGateway is the persistence contract the note lifecycle runs against.
// repository.NotesRepo is the production implementation.
type NotesGateway interface {
	ListActive(ctx context.Context, owner string) ([]*model.Note, error)
	ListChecked(ctx context.Context, owner string) ([]*model.Note, error)
	FindActive(ctx context.Context, noteID string) (*model.Note, error)
	FindChecked(ctx context.Context, noteID string) (*model.Note, error)
	InsertActive(ctx context.Context, note *model.Note) error
	InsertChecked(ctx context.Context, note *model.Note) error
	UpdateActive(ctx context.Context, noteID, owner string, note *model.Note) error
	UpdateChecked(ctx context.Context, noteID, owner string, note *model.Note) error
	DeleteActive(ctx context.Context, noteID, owner string) error
	DeleteChecked(ctx context.Context, noteID, owner string) error
	MoveActiveToChecked(ctx context.Context, noteID, owner string) (*model.Note, error)
	MoveCheckedToActive(ctx context.Context, noteID, owner string) (*model.Note, error)
}

// collection identifies which store currently holds a note.
type collection int

const (
	collectionActive collection = iota
	collectionChecked
)

type NotesService struct {
	Gateway NotesGateway
	Owners  config.OwnerSet
}

// SortNotesByLastClicked orders notes for display: notes never opened sort
// first in their original relative order, then the rest by last_clicked
// descending.
func SortNotesByLastClicked(notes []*model.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		a, b := notes[i].LastClicked, notes[j].LastClicked
		if a == nil || b == nil {
			return a == nil && b != nil
		}
		return a.After(*b)
	})
}

func (svc *NotesService) validateNote(note *model.Note) error {
	if strings.TrimSpace(note.Title) == "" {
		return model.NewValidationError("title", "title is required")
	}
	return nil
}

// findNote locates a note in either collection and verifies ownership. An
// existing note owned by someone else reports ErrForbidden, never ErrNotFound.
func (svc *NotesService) findNote(ctx context.Context, owner, noteID string) (*model.Note, collection, error) {
	note, err := svc.Gateway.FindActive(ctx, noteID)
	coll := collectionActive
	if errors.Is(err, model.ErrNotFound) {
		note, err = svc.Gateway.FindChecked(ctx, noteID)
		coll = collectionChecked
	}
	if err != nil {
		return nil, 0, err
	}
	if note.Owner != owner {
		return nil, 0, model.ErrForbidden
	}
	return note, coll, nil
}

func (svc *NotesService) updateIn(ctx context.Context, coll collection, noteID, owner string, note *model.Note) error {
	if coll == collectionChecked {
		return svc.Gateway.UpdateChecked(ctx, noteID, owner, note)
	}
	return svc.Gateway.UpdateActive(ctx, noteID, owner, note)
}

// ListNotes returns the owner's active notes in display order.
func (svc *NotesService) ListNotes(ctx context.Context, owner string) ([]*model.Note, error) {
	notes, err := svc.Gateway.ListActive(ctx, owner)
	if err != nil {
		return nil, err
	}
	SortNotesByLastClicked(notes)
	return notes, nil
}

// ListCheckedNotes returns the owner's checked notes in display order.
func (svc *NotesService) ListCheckedNotes(ctx context.Context, owner string) ([]*model.Note, error) {
	notes, err := svc.Gateway.ListChecked(ctx, owner)
	if err != nil {
		return nil, err
	}
	SortNotesByLastClicked(notes)
	return notes, nil
}

// CreateNote validates and defaults a new note, then stores it in the active
// collection. Validation failures happen before any gateway call.
func (svc *NotesService) CreateNote(ctx context.Context, owner string, note *model.Note) error {
	if !svc.Owners.Contains(owner) {
		return model.NewValidationError("user", "unknown user")
	}
	if err := svc.validateNote(note); err != nil {
		return err
	}

	if note.ID == "" {
		note.ID = utils.GenerateNoteID()
	}
	note.Owner = owner
	note.IsChecked = false
	note.CheckedAt = nil
	note.CreatedAt = time.Now()
	note.Normalize()

	return svc.Gateway.InsertActive(ctx, note)
}

// EditNote applies a content edit to a note in whichever collection holds it.
// Derived flags are recomputed and last_clicked is refreshed; the note never
// changes collection here.
func (svc *NotesService) EditNote(ctx context.Context, owner, noteID string, patch *model.Note) (*model.Note, error) {
	if err := svc.validateNote(patch); err != nil {
		return nil, err
	}

	existing, coll, err := svc.findNote(ctx, owner, noteID)
	if err != nil {
		return nil, err
	}

	existing.Title = patch.Title
	existing.Description = patch.Description
	existing.Color = patch.Color
	existing.Image = patch.Image
	if patch.Checklist != nil {
		existing.Checklist = patch.Checklist
	}
	existing.ShowDescription = patch.ShowDescription
	existing.Normalize()

	now := time.Now()
	existing.LastClicked = &now

	if err := svc.updateIn(ctx, coll, noteID, owner, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// UpdateChecklist replaces a note's checklist without touching last_clicked,
// so checking off items does not reshuffle the display order.
func (svc *NotesService) UpdateChecklist(ctx context.Context, owner, noteID string, list []model.ChecklistItem) (*model.Note, error) {
	if list == nil {
		list = []model.ChecklistItem{}
	}
	return svc.mutateChecklist(ctx, owner, noteID, func([]model.ChecklistItem) ([]model.ChecklistItem, error) {
		return list, nil
	})
}

// mutateChecklist applies a checklist transformation to a note. Like
// UpdateChecklist it leaves last_clicked alone.
func (svc *NotesService) mutateChecklist(ctx context.Context, owner, noteID string, fn func([]model.ChecklistItem) ([]model.ChecklistItem, error)) (*model.Note, error) {
	existing, coll, err := svc.findNote(ctx, owner, noteID)
	if err != nil {
		return nil, err
	}

	list, err := fn(existing.Checklist)
	if err != nil {
		return nil, err
	}
	existing.Checklist = list
	existing.ShowList = len(list) > 0

	if err := svc.updateIn(ctx, coll, noteID, owner, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// AddChecklistItem prepends a new unchecked item to a note's checklist.
func (svc *NotesService) AddChecklistItem(ctx context.Context, owner, noteID, text string) (*model.Note, error) {
	return svc.mutateChecklist(ctx, owner, noteID, func(list []model.ChecklistItem) ([]model.ChecklistItem, error) {
		return model.AddItem(list, text), nil
	})
}

// RemoveChecklistItem drops the item at the given index.
func (svc *NotesService) RemoveChecklistItem(ctx context.Context, owner, noteID string, index int) (*model.Note, error) {
	return svc.mutateChecklist(ctx, owner, noteID, func(list []model.ChecklistItem) ([]model.ChecklistItem, error) {
		return model.RemoveItem(list, index)
	})
}

// ToggleChecklistItem sets an item's checked state, stamping or clearing its
// completion time.
func (svc *NotesService) ToggleChecklistItem(ctx context.Context, owner, noteID string, index int, checked bool) (*model.Note, error) {
	return svc.mutateChecklist(ctx, owner, noteID, func(list []model.ChecklistItem) ([]model.ChecklistItem, error) {
		return model.ToggleItem(list, index, checked, time.Now())
	})
}

// ClearCheckedItems removes every checked item from a note's checklist.
func (svc *NotesService) ClearCheckedItems(ctx context.Context, owner, noteID string) (*model.Note, error) {
	return svc.mutateChecklist(ctx, owner, noteID, func(list []model.ChecklistItem) ([]model.ChecklistItem, error) {
		return model.ClearChecked(list), nil
	})
}

// ClearChecklist empties a note's checklist.
func (svc *NotesService) ClearChecklist(ctx context.Context, owner, noteID string) (*model.Note, error) {
	return svc.mutateChecklist(ctx, owner, noteID, func(list []model.ChecklistItem) ([]model.ChecklistItem, error) {
		return model.ClearAll(list), nil
	})
}

// RestartChecklist unchecks every item, keeping order and text.
func (svc *NotesService) RestartChecklist(ctx context.Context, owner, noteID string) (*model.Note, error) {
	return svc.mutateChecklist(ctx, owner, noteID, func(list []model.ChecklistItem) ([]model.ChecklistItem, error) {
		return model.Restart(list), nil
	})
}

// TouchNote records that a note was opened; only last_clicked changes.
func (svc *NotesService) TouchNote(ctx context.Context, owner, noteID string) (*model.Note, error) {
	existing, coll, err := svc.findNote(ctx, owner, noteID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	existing.LastClicked = &now

	if err := svc.updateIn(ctx, coll, noteID, owner, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// CheckNote moves a note from the active to the checked collection.
func (svc *NotesService) CheckNote(ctx context.Context, owner, noteID string) (*model.Note, error) {
	return svc.moveNote(ctx, owner, noteID, collectionChecked)
}

// UncheckNote moves a note from the checked collection back to active.
func (svc *NotesService) UncheckNote(ctx context.Context, owner, noteID string) (*model.Note, error) {
	return svc.moveNote(ctx, owner, noteID, collectionActive)
}

// moveNote is the single transition primitive behind check and uncheck. The
// gateway performs the actual move; here we only establish the precondition
// that the note sits in the source collection and belongs to the caller.
func (svc *NotesService) moveNote(ctx context.Context, owner, noteID string, dst collection) (*model.Note, error) {
	var (
		note *model.Note
		err  error
	)
	if dst == collectionChecked {
		note, err = svc.Gateway.FindActive(ctx, noteID)
	} else {
		note, err = svc.Gateway.FindChecked(ctx, noteID)
	}
	if err != nil {
		return nil, err
	}
	if note.Owner != owner {
		return nil, model.ErrForbidden
	}

	if dst == collectionChecked {
		return svc.Gateway.MoveActiveToChecked(ctx, noteID, owner)
	}
	return svc.Gateway.MoveCheckedToActive(ctx, noteID, owner)
}

// DeleteNote removes a note from whichever collection currently holds it.
func (svc *NotesService) DeleteNote(ctx context.Context, owner, noteID string) error {
	_, coll, err := svc.findNote(ctx, owner, noteID)
	if err != nil {
		return err
	}

	if coll == collectionChecked {
		return svc.Gateway.DeleteChecked(ctx, noteID, owner)
	}
	return svc.Gateway.DeleteActive(ctx, noteID, owner)
}

// CopyNote derives an independent note from an existing one. targetOwner equal
// to the acting owner is a self-copy (title gets a " (copy)" suffix); any other
// valid owner is a share, which also refreshes the source's last_clicked so it
// stays visible near the top of the sender's list.
func (svc *NotesService) CopyNote(ctx context.Context, owner, noteID, targetOwner string) (*model.Note, error) {
	if !svc.Owners.Contains(targetOwner) {
		return nil, model.NewValidationError("target_user", "unknown user")
	}

	source, coll, err := svc.findNote(ctx, owner, noteID)
	if err != nil {
		return nil, err
	}

	title := source.Title
	if targetOwner == owner {
		title += " (copy)"
	}

	copied := &model.Note{
		ID:              utils.GenerateNoteID(),
		Owner:           targetOwner,
		Title:           title,
		Description:     source.Description,
		Color:           source.Color,
		Image:           source.Image,
		Checklist:       source.CloneChecklist(),
		ShowDescription: source.ShowDescription,
		IsChecked:       false,
		CreatedAt:       time.Now(),
	}
	copied.Normalize()

	if err := svc.Gateway.InsertActive(ctx, copied); err != nil {
		return nil, err
	}

	if targetOwner != owner {
		now := time.Now()
		source.LastClicked = &now
		if err := svc.updateIn(ctx, coll, noteID, owner, source); err != nil {
			return nil, err
		}
	}

	return copied, nil
}
