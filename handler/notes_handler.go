package handler

import (
	"errors"
	"strconv"

	"main/dto"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type NotesHandler struct {
	notesService *usecase.NotesService
}

func NewNotesHandler(notesService *usecase.NotesService) *NotesHandler {
	return &NotesHandler{notesService: notesService}
}

// CreateNote takes the owner id as a query parameter; there is no auth
// context to derive it from. A missing owner surfaces as a 404 via the
// foreign key constraint.
func (h *NotesHandler) CreateNote(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid user id")
		return
	}

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.notesService.CreateNote(c.Request.Context(), uint(userID), req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			utils.NotFound(c, "User not found")
		case errors.Is(err, usecase.ErrInvalidInput):
			utils.BadRequest(c, "Invalid request body")
		default:
			utils.InternalError(c, "Failed to create note")
		}
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}

func (h *NotesHandler) GetNote(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		utils.BadRequest(c, "Invalid user id")
		return
	}
	noteID, ok := pathID(c, "note_id")
	if !ok {
		utils.BadRequest(c, "Invalid note id")
		return
	}

	note, err := h.notesService.GetNote(c.Request.Context(), userID, noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.InternalError(c, "Failed to fetch note")
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}

func (h *NotesHandler) GetUserNotes(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		utils.BadRequest(c, "Invalid user id")
		return
	}

	notes, err := h.notesService.GetUserNotes(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to list notes")
		return
	}

	utils.Success(c, dto.ToNoteResponses(notes))
}

func (h *NotesHandler) GetNotes(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	notes, err := h.notesService.GetNotes(c.Request.Context(), skip, limit)
	if err != nil {
		utils.InternalError(c, "Failed to list notes")
		return
	}

	utils.Success(c, dto.ToNoteResponses(notes))
}

func (h *NotesHandler) UpdateNote(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		utils.BadRequest(c, "Invalid user id")
		return
	}
	noteID, ok := pathID(c, "note_id")
	if !ok {
		utils.BadRequest(c, "Invalid note id")
		return
	}

	req := dto.UpdateNoteRequest{
		Title: c.PostForm("title"),
		Body:  c.PostForm("body"),
	}

	note, err := h.notesService.UpdateNote(c.Request.Context(), userID, noteID, req)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.InternalError(c, "Failed to update note")
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}

// DeleteNote keeps the lenient delete contract: a missing or cross-owner
// note is a 200 with a "fail" status in the body, not an HTTP error.
func (h *NotesHandler) DeleteNote(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		utils.BadRequest(c, "Invalid user id")
		return
	}
	noteID, ok := pathID(c, "note_id")
	if !ok {
		utils.BadRequest(c, "Invalid note id")
		return
	}

	deleted, err := h.notesService.DeleteNote(c.Request.Context(), noteID, userID)
	if err != nil {
		utils.InternalError(c, "Failed to delete note")
		return
	}

	status := "fail"
	if deleted {
		status = "ok"
	}
	utils.Success(c, gin.H{"status": status})
}
