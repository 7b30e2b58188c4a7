package dto

import "main/model"

type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,max=32"`
	Email     string `json:"email" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// UpdateUserRequest carries the optional form fields of a partial update.
// Email and password are not updatable through this surface.
type UpdateUserRequest struct {
	Username  string
	FirstName string
	LastName  string
}

type UserResponse struct {
	ID        uint           `json:"id"`
	Username  string         `json:"username"`
	Email     string         `json:"email"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Notes     []NoteResponse `json:"notes"`
}

func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Notes:     ToNoteResponses(user.Notes),
	}
}

func ToUserResponses(users []model.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}
