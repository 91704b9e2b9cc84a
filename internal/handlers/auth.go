package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"marinahub/api/internal/middleware"
	"marinahub/api/internal/models"
	"marinahub/api/internal/service"
)

type authService interface {
	Signup(ctx context.Context, input service.SignupInput) (service.AuthResult, error)
	Login(ctx context.Context, email string, password string) (service.AuthResult, error)
	EditProfile(ctx context.Context, userID int64, username *string, email *string) (models.User, error)
	ChangePassword(ctx context.Context, userID int64, currentPassword string, newPassword string) error
}

// userResponse is the public projection of a user; the password hash
// never leaves the service.
type userResponse struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url"`
}

func toUserResponse(u models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
	}
}

type signupRequest struct {
	Username  string  `json:"username" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required"`
	AvatarURL *string `json:"avatar_url"`
}

func (h HandlerSet) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "username, email and password required", "validation_failed")
		return
	}

	result, err := h.auth.Signup(c.Request.Context(), service.SignupInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			respondError(c, http.StatusConflict, "Email already registered", "email_taken")
			return
		}
		h.respondInternal(c, "Signup failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Signup successful",
		"token":   result.Token,
		"user":    toUserResponse(result.User),
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Email and password required", "validation_failed")
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials", "invalid_credentials")
			return
		}
		h.respondInternal(c, "Login failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   result.Token,
		"user":    toUserResponse(result.User),
	})
}

type editProfileRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

func (h HandlerSet) EditProfile(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		respondError(c, http.StatusUnauthorized, "User not authenticated", "invalid_token")
		return
	}

	var req editProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", "validation_failed")
		return
	}

	user, err := h.auth.EditProfile(c.Request.Context(), claims.UserID, req.Username, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNothingToUpdate):
			respondError(c, http.StatusBadRequest, "At least one of username or email is required", "validation_failed")
		case errors.Is(err, service.ErrEmailTaken):
			respondError(c, http.StatusConflict, "Email already registered", "email_taken")
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "User not found", "not_found")
		default:
			h.respondInternal(c, "Edit profile failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    toUserResponse(user),
	})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

func (h HandlerSet) ChangePassword(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		respondError(c, http.StatusUnauthorized, "User not authenticated", "invalid_token")
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Current password and new password required", "validation_failed")
		return
	}

	err := h.auth.ChangePassword(c.Request.Context(), claims.UserID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			respondError(c, http.StatusBadRequest, "New password must be at least 6 characters", "validation_failed")
		case errors.Is(err, service.ErrWrongPassword):
			respondError(c, http.StatusUnauthorized, "Current password is incorrect", "wrong_password")
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "User not found", "not_found")
		default:
			h.respondInternal(c, "Change password failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
