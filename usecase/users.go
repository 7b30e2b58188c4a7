package usecase

import (
	"context"
	"errors"

	"main/dto"
	"main/model"
	"main/repository"
	"main/services"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

var ErrInvalidInput = errors.New("invalid input")

var validate = validator.New(validator.WithRequiredStructEnabled())

type UsersService struct {
	UserRepo *repository.UserRepo
}

// CreateUser hashes the submitted password and inserts the user. Duplicate
// username or email surfaces as repository.ErrUserExists via the unique
// constraints, not a pre-read.
func (svc *UsersService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*model.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, multierr.Append(ErrInvalidInput, err)
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  hashed,
	}

	if err := svc.UserRepo.AddUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (svc *UsersService) GetUserByID(ctx context.Context, userID uint) (*model.User, error) {
	user, err := svc.UserRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (svc *UsersService) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := svc.UserRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (svc *UsersService) GetUsers(ctx context.Context, skip, limit int) ([]model.User, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	return svc.UserRepo.GetUsers(ctx, skip, limit)
}

// UpdateUser applies a partial update. Empty fields are dropped first; if
// nothing remains, or no row matches, the caller sees ErrUserNotFound.
func (svc *UsersService) UpdateUser(ctx context.Context, userID uint, req dto.UpdateUserRequest) (*model.User, error) {
	updates := map[string]interface{}{}
	if req.Username != "" {
		updates["username"] = req.Username
	}
	if req.FirstName != "" {
		updates["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		updates["last_name"] = req.LastName
	}

	rows, err := svc.UserRepo.UpdateUser(ctx, userID, updates)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, repository.ErrUserNotFound
	}

	return svc.GetUserByID(ctx, userID)
}

func (svc *UsersService) DeleteUser(ctx context.Context, userID uint) (bool, error) {
	rows, err := svc.UserRepo.DeleteUser(ctx, userID)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
