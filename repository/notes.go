package repository

import (
	"context"
	"errors"
	"log"

	"main/model"
	"main/utils"

	"gorm.io/gorm"
)

func GetNotesRepo(db *gorm.DB) *NotesRepo {
	return &NotesRepo{DB: db}
}

type NotesRepo struct {
	DB *gorm.DB
}

// AddNote inserts a note for the given owner. A foreign key violation means
// the owner does not exist and is reported as ErrUserNotFound.
func (r *NotesRepo) AddNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	if err := r.DB.WithContext(ctx).Create(note).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrUserNotFound
		}
		utils.TrackError("database")
		log.Println("Error inserting note:", err)
		return err
	}

	utils.TrackNoteOperation("create")
	return nil
}

// FindNote retrieves a single note scoped to its owner. A note held by a
// different user is indistinguishable from an absent one.
func (r *NotesRepo) FindNote(ctx context.Context, noteID, userID uint) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", noteID, userID).
		First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		utils.TrackError("database")
		return nil, err
	}

	return &note, nil
}

func (r *NotesRepo) GetUserNotes(ctx context.Context, userID uint) ([]model.Note, error) {
	timer := utils.TrackDBOperation("list", "notes")
	defer timer.ObserveDuration()

	var notes []model.Note
	err := r.DB.WithContext(ctx).
		Where("owner_id = ?", userID).
		Order("id").
		Find(&notes).Error
	if err != nil {
		utils.TrackError("database")
		return nil, err
	}

	return notes, nil
}

// GetNotes returns a page of notes across all users in primary key order.
func (r *NotesRepo) GetNotes(ctx context.Context, offset, limit int) ([]model.Note, error) {
	timer := utils.TrackDBOperation("list", "notes")
	defer timer.ObserveDuration()

	var notes []model.Note
	err := r.DB.WithContext(ctx).
		Order("id").
		Offset(offset).Limit(limit).
		Find(&notes).Error
	if err != nil {
		utils.TrackError("database")
		return nil, err
	}

	return notes, nil
}

// UpdateNote applies the given column updates to a note owned by userID and
// reports how many rows were touched. An empty update map issues no write.
func (r *NotesRepo) UpdateNote(ctx context.Context, userID, noteID uint, updates map[string]interface{}) (int64, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	if len(updates) == 0 {
		return 0, nil
	}

	res := r.DB.WithContext(ctx).Model(&model.Note{}).
		Where("id = ? AND owner_id = ?", noteID, userID).
		Updates(updates)
	if res.Error != nil {
		utils.TrackError("database")
		return 0, res.Error
	}

	utils.TrackNoteOperation("update")
	return res.RowsAffected, nil
}

func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, userID uint) (int64, error) {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	res := r.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", noteID, userID).
		Delete(&model.Note{})
	if res.Error != nil {
		utils.TrackError("database")
		return 0, res.Error
	}

	utils.TrackNoteOperation("delete")
	return res.RowsAffected, nil
}
