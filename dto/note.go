package dto

import (
	"encoding/json"
	"time"

	"main/model"
)

// RawChecklist accepts the untyped wire forms a checklist has historically
// arrived in: a JSON array, a JSON-encoded string (including the legacy "0"
// marker for empty), or null. Anything that fails to decode becomes an empty
// list rather than an error, so note loading stays resilient to partial data.
type RawChecklist []model.ChecklistItem

func (r *RawChecklist) UnmarshalJSON(data []byte) error {
	*r = decodeChecklist(data)
	return nil
}

func decodeChecklist(data []byte) []model.ChecklistItem {
	var items []model.ChecklistItem
	if err := json.Unmarshal(data, &items); err == nil {
		return items
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return []model.ChecklistItem{}
	}
	if encoded == "" || encoded == "0" {
		return []model.ChecklistItem{}
	}
	if err := json.Unmarshal([]byte(encoded), &items); err != nil || items == nil {
		return []model.ChecklistItem{}
	}
	return items
}

type NoteRequest struct {
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Color           string       `json:"color" binding:"omitempty,notecolor"`
	Image           string       `json:"image"`
	Checklist       RawChecklist `json:"todo_list"`
	ShowDescription bool         `json:"show_description"`
}

// ToNote maps the request onto a model note for the given owner. Derived
// fields are recomputed downstream in the usecase layer.
func (req *NoteRequest) ToNote(owner string) *model.Note {
	checklist := []model.ChecklistItem(req.Checklist)
	if checklist == nil {
		checklist = []model.ChecklistItem{}
	}
	return &model.Note{
		Owner:           owner,
		Title:           req.Title,
		Description:     req.Description,
		Color:           req.Color,
		Image:           req.Image,
		Checklist:       checklist,
		ShowDescription: req.ShowDescription,
	}
}

type ChecklistRequest struct {
	Checklist RawChecklist `json:"todo_list"`
}

type ChecklistItemRequest struct {
	Text string `json:"text" binding:"required"`
}

type ChecklistToggleRequest struct {
	Checked *bool `json:"checked" binding:"required"`
}

type ShareRequest struct {
	TargetUser string `json:"target_user" binding:"required"`
}

type NoteResponse struct {
	ID              string                `json:"id"`
	UserID          string                `json:"user_id"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	Color           string                `json:"color"`
	Image           string                `json:"image,omitempty"`
	Checklist       []model.ChecklistItem `json:"todo_list"`
	ShowDescription bool                  `json:"show_description"`
	ShowList        bool                  `json:"show_list"`
	IsChecked       bool                  `json:"is_checked"`
	CreatedAt       time.Time             `json:"created_at"`
	CheckedAt       *time.Time            `json:"checked_at,omitempty"`
	LastClicked     *time.Time            `json:"last_clicked,omitempty"`
}

func ToNoteResponse(note *model.Note) NoteResponse {
	return NoteResponse{
		ID:              note.ID,
		UserID:          note.Owner,
		Title:           note.Title,
		Description:     note.Description,
		Color:           note.Color,
		Image:           note.Image,
		Checklist:       note.Checklist,
		ShowDescription: note.ShowDescription,
		ShowList:        note.ShowList,
		IsChecked:       note.IsChecked,
		CreatedAt:       note.CreatedAt,
		CheckedAt:       note.CheckedAt,
		LastClicked:     note.LastClicked,
	}
}

func ToNoteResponses(notes []*model.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = ToNoteResponse(note)
	}
	return responses
}
