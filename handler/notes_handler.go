package handler

import (
	"context"
	"errors"
	"strconv"

	"main/dto"
	"main/middleware"
	"main/model"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// respondNoteError maps the core error taxonomy onto HTTP responses.
func respondNoteError(c *gin.Context, err error) {
	var pe *model.PersistenceError
	switch {
	case model.IsValidation(err), errors.Is(err, model.ErrIndexOutOfRange):
		middleware.TrackError("validation")
		utils.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, model.ErrForbidden):
		utils.Forbidden(c, err.Error())
	case errors.As(err, &pe):
		middleware.TrackError("db")
		utils.InternalError(c, "Storage operation failed")
	default:
		middleware.TrackError("internal")
		utils.InternalError(c, "Unexpected error")
	}
}

func invalidateNoteCache(ctx context.Context, owners ...string) {
	if services.GlobalNoteCache == nil {
		return
	}
	_ = services.GlobalNoteCache.Invalidate(ctx, owners...)
}

// GetNotesHandler lists the acting owner's active notes in display order.
func GetNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	owner := c.GetString("user_id")

	if cache := services.GlobalNoteCache; cache != nil {
		if notes, err := cache.GetList(c, owner, "active"); err == nil && notes != nil {
			utils.Success(c, dto.ToNoteResponses(notes))
			return
		}
	}

	notes, err := notesService.ListNotes(c, owner)
	if err != nil {
		respondNoteError(c, err)
		return
	}

	if cache := services.GlobalNoteCache; cache != nil {
		_ = cache.SetList(c, owner, "active", notes)
	}

	utils.Success(c, dto.ToNoteResponses(notes))
}

// GetCheckedNotesHandler lists the acting owner's checked notes.
func GetCheckedNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	owner := c.GetString("user_id")

	if cache := services.GlobalNoteCache; cache != nil {
		if notes, err := cache.GetList(c, owner, "checked"); err == nil && notes != nil {
			utils.Success(c, dto.ToNoteResponses(notes))
			return
		}
	}

	notes, err := notesService.ListCheckedNotes(c, owner)
	if err != nil {
		respondNoteError(c, err)
		return
	}

	if cache := services.GlobalNoteCache; cache != nil {
		_ = cache.SetList(c, owner, "checked", notes)
	}

	utils.Success(c, dto.ToNoteResponses(notes))
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	owner := c.GetString("user_id")
	note := req.ToNote(owner)
	if err := notesService.CreateNote(c, owner, note); err != nil {
		respondNoteError(c, err)
		return
	}

	middleware.TrackNoteOperation("create")
	invalidateNoteCache(c, owner)
	utils.Created(c, dto.ToNoteResponse(note))
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	owner := c.GetString("user_id")

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notesService.EditNote(c, owner, noteID, req.ToNote(owner))
	if err != nil {
		respondNoteError(c, err)
		return
	}

	middleware.TrackNoteOperation("edit")
	invalidateNoteCache(c, owner)
	utils.Success(c, dto.ToNoteResponse(note))
}

// UpdateChecklistHandler replaces a note's checklist without refreshing
// last_clicked, so ticking items off keeps the display order stable.
func UpdateChecklistHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	owner := c.GetString("user_id")

	var req dto.ChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notesService.UpdateChecklist(c, owner, noteID, req.Checklist)
	if err != nil {
		respondNoteError(c, err)
		return
	}

	middleware.TrackNoteOperation("edit")
	invalidateNoteCache(c, owner)
	utils.Success(c, dto.ToNoteResponse(note))
}

// AddChecklistItemHandler prepends one item to a note's checklist.
func AddChecklistItemHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	owner := c.GetString("user_id")

	var req dto.ChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notesService.AddChecklistItem(c, owner, noteID, req.Text)
	if err != nil {
		respondNoteError(c, err)
		return
	}

	middleware.TrackNoteOperation("edit")
	invalidateNoteCache(c, owner)
	utils.Success(c, dto.ToNoteResponse(note))
}

// RemoveChecklistItemHandler drops the checklist item at the given index.
func RemoveChecklistItemHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	owner := c.GetString("user_id")

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequest(c, "Invalid item index")
		return
	}

	note, err := notesService.RemoveChecklistItem(c, owner, noteID, index)
	if err != nil {
		respondNoteError(c, err)
		return
	}

	middleware.TrackNoteOperation("edit")
	invalidateNoteCache(c, owner)
	utils.Success(c, dto.ToNoteResponse(note))
}

// ToggleChecklistItemHandler sets the checked state of one checklist item.
func ToggleChecklistItemHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	owner := c.GetString("user_id")

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequest(c, "Invalid item index")
		return
	}

	var req dto.ChecklistToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notesService.ToggleChecklistItem(c, owner, noteID, index, *req.Checked)
	if err != nil {
		respondNoteError(c, err)
		return
	}

	middleware.TrackNoteOperation("edit")
	invalidateNoteCache(c, owner)
	utils.Success(c, dto.ToNoteResponse(note))
}

// ClearCheckedItemsHandler removes all checked items from a note's checklist.
func ClearCheckedItemsHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	owner := c.GetString("user_id")

	note, err := notesService.ClearCheckedItems(c, owner, noteID)
	if err != nil {
		respondNoteError(c, err)
		return
	}

	middleware.TrackNoteOperation("edit")
	invalidateNoteCache(c, owner)
	utils.Success(c, dto.ToNoteResponse(note))
}

// ClearChecklistHandler empties a note's checklist.
func ClearChecklistHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	owner := c.GetString("user_id")

	note, err := notesService.ClearChecklist(c, owner, noteID)
	if err != nil {
		respondNoteError(c, err)
		return
	}

	middleware.TrackNoteOperation("edit")
	invalidateNoteCache(c, owner)
	utils.Success(c, dto.ToNoteResponse(note))
}

// RestartChecklistHandler unchecks every checklist item on a note.
func RestartChecklistHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	owner := c.GetString("user_id")

	note, err := notesService.RestartChecklist(c, owner, noteID)
	if err != nil {
		respondNoteError(c, err)
		return
	}

	middleware.TrackNoteOperation("edit")
	invalidateNoteCache(c, owner)
	utils.Success(c, dto.ToNoteResponse(note))
}

// TouchNoteHandler records that a note was opened.
func TouchNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	owner := c.GetString("user_id")

	note, err := notesService.TouchNote(c, owner, noteID)
	if err != nil {
		respondNoteError(c, err)
		return
	}

	invalidateNoteCache(c, owner)
	utils.Success(c, dto.ToNoteResponse(note))
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	owner := c.GetString("user_id")

	if err := notesService.DeleteNote(c, owner, noteID); err != nil {
		respondNoteError(c, err)
		return
	}

	middleware.TrackNoteOperation("delete")
	invalidateNoteCache(c, owner)
	utils.Success(c, gin.H{"message": "Note deleted successfully"})
}

func CheckNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	owner := c.GetString("user_id")

	note, err := notesService.CheckNote(c, owner, noteID)
	if err != nil {
		respondNoteError(c, err)
		return
	}

	middleware.TrackNoteOperation("check")
	invalidateNoteCache(c, owner)
	utils.Success(c, dto.ToNoteResponse(note))
}

func UncheckNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	owner := c.GetString("user_id")

	note, err := notesService.UncheckNote(c, owner, noteID)
	if err != nil {
		respondNoteError(c, err)
		return
	}

	middleware.TrackNoteOperation("uncheck")
	invalidateNoteCache(c, owner)
	utils.Success(c, dto.ToNoteResponse(note))
}

// CopyNoteHandler duplicates a note into the acting owner's active list.
func CopyNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	owner := c.GetString("user_id")

	note, err := notesService.CopyNote(c, owner, noteID, owner)
	if err != nil {
		respondNoteError(c, err)
		return
	}

	middleware.TrackNoteOperation("copy")
	invalidateNoteCache(c, owner)
	utils.Created(c, dto.ToNoteResponse(note))
}

// ShareNoteHandler copies a note into another owner's active list.
func ShareNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	owner := c.GetString("user_id")

	var req dto.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notesService.CopyNote(c, owner, noteID, req.TargetUser)
	if err != nil {
		respondNoteError(c, err)
		return
	}

	middleware.TrackNoteOperation("share")
	invalidateNoteCache(c, owner, req.TargetUser)
	utils.Created(c, dto.ToNoteResponse(note))
}
