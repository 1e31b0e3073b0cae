package controllers

import (
	"net/http"

	"edurev/backend/app/dto"
	"edurev/backend/app/middleware"
	"edurev/backend/app/models"
	"edurev/backend/app/services"
)

type AuthController struct {
	Users    *services.UserService
	Sessions *services.SessionService
}

func NewAuthController(users *services.UserService, sessions *services.SessionService) *AuthController {
	return &AuthController{Users: users, Sessions: sessions}
}

func identity(u *models.User) dto.Identity {
	return dto.Identity{UserID: u.ID, FullName: u.FullName, Email: u.Email, Role: string(u.Role)}
}

// Signup POST /api/signup
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if _, err := c.Users.Signup(r.Context(), services.SignupInput{FullName: req.FullName, Email: req.Email, Password: req.Password, Role: req.Role}); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.Response{Success: true, Message: "Sign-up successful"})
}

// Login POST /api/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	u, err := c.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	var token string
	if c.Sessions != nil {
		if token, err = c.Sessions.Issue(r.Context(), u); err != nil {
			writeServiceError(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Response: dto.Response{Success: true, Message: "Login successful"},
		User:     identity(u),
		Token:    token,
	})
}

// Logout POST /api/logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if c.Sessions == nil {
		writeJSON(w, http.StatusOK, dto.Response{Success: true, Message: "Logged out"})
		return
	}
	token := middleware.BearerToken(r)
	if token == "" {
		writeServiceError(w, r, services.ErrAuthRequired)
		return
	}
	if err := c.Sessions.Revoke(r.Context(), token); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.Response{Success: true, Message: "Logged out"})
}
