package handler

import (
	"errors"
	"strconv"
	"strings"

	"main/dto"
	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type UsersHandler struct {
	usersService *usecase.UsersService
}

func NewUsersHandler(usersService *usecase.UsersService) *UsersHandler {
	return &UsersHandler{usersService: usersService}
}

func (h *UsersHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.usersService.CreateUser(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserExists):
			utils.BadRequest(c, "Username or email already registered")
		case errors.Is(err, usecase.ErrInvalidInput):
			utils.BadRequest(c, "Invalid request body")
		default:
			utils.InternalError(c, "Failed to create user")
		}
		return
	}

	utils.Success(c, dto.ToUserResponse(user))
}

// GetUser serves both /users/u{id} and /users/{username}: a "u" prefix
// followed by digits dispatches the lookup by id, anything else by username.
func (h *UsersHandler) GetUser(c *gin.Context) {
	param := c.Param("user_id")

	if userID, ok := idFromPath(param); ok {
		user, err := h.usersService.GetUserByID(c.Request.Context(), userID)
		h.respondUser(c, user, err)
		return
	}

	user, err := h.usersService.GetUserByUsername(c.Request.Context(), param)
	h.respondUser(c, user, err)
}

func (h *UsersHandler) GetUsers(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	users, err := h.usersService.GetUsers(c.Request.Context(), skip, limit)
	if err != nil {
		utils.InternalError(c, "Failed to list users")
		return
	}

	utils.Success(c, dto.ToUserResponses(users))
}

func (h *UsersHandler) UpdateUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		utils.BadRequest(c, "Invalid user id")
		return
	}

	req := dto.UpdateUserRequest{
		Username:  c.PostForm("username"),
		FirstName: c.PostForm("first_name"),
		LastName:  c.PostForm("last_name"),
	}

	user, err := h.usersService.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			utils.NotFound(c, "User not found")
		case errors.Is(err, repository.ErrUserExists):
			utils.BadRequest(c, "Username already registered")
		default:
			utils.InternalError(c, "Failed to update user")
		}
		return
	}

	utils.Success(c, dto.ToUserResponse(user))
}

// DeleteUser keeps the lenient delete contract: a missing user is a 200
// with a "fail" status in the body, not an HTTP error.
func (h *UsersHandler) DeleteUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		utils.BadRequest(c, "Invalid user id")
		return
	}

	deleted, err := h.usersService.DeleteUser(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to delete user")
		return
	}

	status := "fail"
	if deleted {
		status = "ok"
	}
	utils.Success(c, gin.H{"status": status})
}

func (h *UsersHandler) respondUser(c *gin.Context, user *model.User, err error) {
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		utils.InternalError(c, "Failed to fetch user")
		return
	}
	utils.Success(c, dto.ToUserResponse(user))
}

func idFromPath(param string) (uint, bool) {
	rest, ok := strings.CutPrefix(param, "u")
	if !ok || rest == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(rest, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
