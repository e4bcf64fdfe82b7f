package model

import (
	"strings"
	"time"
)

// DefaultColor is used whenever a note is created without a color.
const DefaultColor = "#3C8C50"

// NoteColors is the canonical tag palette. Callers are expected to pick one of
// these, but any non-empty string is stored as-is.
var NoteColors = []string{
	"#3C8C50", "#DB5461", "#663053", "#8AA29E",
	"#3D5467", "#73BB44", "#CFCB4D", "#C08122",
}

type ChecklistItem struct {
	Text        string `bson:"text" json:"text"`
	Checked     bool   `bson:"checked" json:"checked"`
	CompletedAt string `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

type Note struct {
	ID              string          `bson:"_id,omitempty" json:"id"`
	Owner           string          `bson:"user_id" json:"user_id"`
	Title           string          `bson:"title" json:"title"`
	Description     string          `bson:"description" json:"description"`
	Color           string          `bson:"color" json:"color"`
	Image           string          `bson:"image,omitempty" json:"image,omitempty"`
	Checklist       []ChecklistItem `bson:"todo_list" json:"todo_list"`
	ShowDescription bool            `bson:"show_description" json:"show_description"`
	ShowList        bool            `bson:"show_list" json:"show_list"`
	IsChecked       bool            `bson:"is_checked" json:"is_checked"`
	CreatedAt       time.Time       `bson:"created_at" json:"created_at"`
	CheckedAt       *time.Time      `bson:"checked_at,omitempty" json:"checked_at,omitempty"`
	LastClicked     *time.Time      `bson:"last_clicked,omitempty" json:"last_clicked,omitempty"`
}

// Normalize recomputes the derived display flags. ShowList is always driven by
// the checklist length; ShowDescription honors the caller's flag only while the
// description is non-blank. Runs on every create and every edit.
func (n *Note) Normalize() {
	n.Title = strings.TrimSpace(n.Title)
	if strings.TrimSpace(n.Color) == "" {
		n.Color = DefaultColor
	}
	if n.Checklist == nil {
		n.Checklist = []ChecklistItem{}
	}
	n.ShowList = len(n.Checklist) > 0
	if strings.TrimSpace(n.Description) == "" {
		n.ShowDescription = false
	}
}

// CloneChecklist returns an independent copy of the note's checklist.
func (n *Note) CloneChecklist() []ChecklistItem {
	items := make([]ChecklistItem, len(n.Checklist))
	copy(items, n.Checklist)
	return items
}
