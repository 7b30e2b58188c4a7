package usecase

import (
	"context"

	"main/dto"
	"main/model"
	"main/repository"

	"go.uber.org/multierr"
)

type NotesService struct {
	NotesRepo *repository.NotesRepo
}

// CreateNote inserts a note for the given owner. The owner id comes from the
// request, not an auth context; a missing owner is caught by the foreign key
// and reported as repository.ErrUserNotFound.
func (svc *NotesService) CreateNote(ctx context.Context, userID uint, req dto.CreateNoteRequest) (*model.Note, error) {
	if err := validate.Struct(req); err != nil {
		return nil, multierr.Append(ErrInvalidInput, err)
	}

	note := &model.Note{
		Title:   req.Title,
		Body:    req.Body,
		OwnerID: userID,
	}

	if err := svc.NotesRepo.AddNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (svc *NotesService) GetNote(ctx context.Context, userID, noteID uint) (*model.Note, error) {
	note, err := svc.NotesRepo.FindNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, repository.ErrNoteNotFound
	}
	return note, nil
}

func (svc *NotesService) GetUserNotes(ctx context.Context, userID uint) ([]model.Note, error) {
	return svc.NotesRepo.GetUserNotes(ctx, userID)
}

func (svc *NotesService) GetNotes(ctx context.Context, skip, limit int) ([]model.Note, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	return svc.NotesRepo.GetNotes(ctx, skip, limit)
}

// UpdateNote applies a partial update scoped to (note id, owner id). With
// all fields empty no write is issued and the current note is returned.
func (svc *NotesService) UpdateNote(ctx context.Context, userID, noteID uint, req dto.UpdateNoteRequest) (*model.Note, error) {
	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Body != "" {
		updates["body"] = req.Body
	}

	if len(updates) == 0 {
		return svc.GetNote(ctx, userID, noteID)
	}

	rows, err := svc.NotesRepo.UpdateNote(ctx, userID, noteID, updates)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, repository.ErrNoteNotFound
	}

	return svc.GetNote(ctx, userID, noteID)
}

func (svc *NotesService) DeleteNote(ctx context.Context, noteID, userID uint) (bool, error) {
	rows, err := svc.NotesRepo.DeleteNote(ctx, noteID, userID)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
