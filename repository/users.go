package repository

import (
	"context"
	"errors"
	"log"

	"main/model"
	"main/utils"

	"gorm.io/gorm"
)

func GetUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{DB: db}
}

type UserRepo struct {
	DB *gorm.DB
}

func (r *UserRepo) AddUser(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		utils.TrackError("database")
		log.Println("Error inserting user:", err)
		return err
	}

	utils.TrackUserOperation("create")
	return nil
}

func (r *UserRepo) FindUserByID(ctx context.Context, userID uint) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.DB.WithContext(ctx).Preload("Notes").First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		utils.TrackError("database")
		return nil, err
	}

	return &user, nil
}

func (r *UserRepo) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.DB.WithContext(ctx).Preload("Notes").
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		utils.TrackError("database")
		return nil, err
	}

	return &user, nil
}

func (r *UserRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.DB.WithContext(ctx).Preload("Notes").
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		utils.TrackError("database")
		return nil, err
	}

	return &user, nil
}

// GetUsers returns a page of users in primary key order.
func (r *UserRepo) GetUsers(ctx context.Context, offset, limit int) ([]model.User, error) {
	timer := utils.TrackDBOperation("list", "users")
	defer timer.ObserveDuration()

	var users []model.User
	err := r.DB.WithContext(ctx).Preload("Notes").
		Order("id").
		Offset(offset).Limit(limit).
		Find(&users).Error
	if err != nil {
		utils.TrackError("database")
		return nil, err
	}

	return users, nil
}

// UpdateUser applies the given column updates to a single user and reports
// how many rows were touched. An empty update map issues no write.
func (r *UserRepo) UpdateUser(ctx context.Context, userID uint, updates map[string]interface{}) (int64, error) {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	if len(updates) == 0 {
		return 0, nil
	}

	res := r.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return 0, ErrUserExists
		}
		utils.TrackError("database")
		return 0, res.Error
	}

	utils.TrackUserOperation("update")
	return res.RowsAffected, nil
}

func (r *UserRepo) DeleteUser(ctx context.Context, userID uint) (int64, error) {
	timer := utils.TrackDBOperation("delete", "users")
	defer timer.ObserveDuration()

	res := r.DB.WithContext(ctx).Delete(&model.User{}, userID)
	if res.Error != nil {
		utils.TrackError("database")
		return 0, res.Error
	}

	utils.TrackUserOperation("delete")
	return res.RowsAffected, nil
}
