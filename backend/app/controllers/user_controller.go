package controllers

import (
	"net/http"
	"strconv"

	"edurev/backend/app/dto"
	"edurev/backend/app/services"
)

type UserController struct{ Users *services.UserService }

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func pathUserID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// Get GET /api/users/{id}
func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(r)
	if !ok {
		writeServiceError(w, r, services.ErrUserNotFound)
		return
	}
	u, err := c.Users.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.UserResponse{Response: dto.Response{Success: true}, User: identity(u)})
}

// Update PUT /api/users/{id}
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(r)
	if !ok {
		writeServiceError(w, r, services.ErrUserNotFound)
		return
	}
	var req dto.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	err := c.Users.UpdateProfile(r.Context(), id, services.UpdateInput{
		FullName:           req.FullName,
		CurrentPassword:    req.CurrentPassword,
		NewPassword:        req.NewPassword,
		ConfirmNewPassword: req.ConfirmNewPassword,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.Response{Success: true, Message: "User updated successfully"})
}
