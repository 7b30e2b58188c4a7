package dto

import (
	"main/model"
	"time"
)

type CreateNoteRequest struct {
	Title string `json:"title" validate:"required,max=50"`
	Body  string `json:"body" validate:"required"`
}

// UpdateNoteRequest carries the optional form fields of a partial update.
// Empty fields are dropped before the update is issued.
type UpdateNoteRequest struct {
	Title string
	Body  string
}

type NoteResponse struct {
	ID      uint      `json:"id"`
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	OwnerID uint      `json:"owner_id"`
	Created time.Time `json:"created"`
}

// Convert a single note to NoteResponse
func ToNoteResponse(note *model.Note) NoteResponse {
	return NoteResponse{
		ID:      note.ID,
		Title:   note.Title,
		Body:    note.Body,
		OwnerID: note.OwnerID,
		Created: note.Created,
	}
}

// Convert slice of notes to slice of NoteResponse
func ToNoteResponses(notes []model.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i := range notes {
		responses[i] = ToNoteResponse(&notes[i])
	}
	return responses
}
