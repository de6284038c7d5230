package handler

import (
	"fmt"
	"net/http"

	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/session"
	"auction-marketplace/services/session/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type SessionStoreInterface interface {
	Login(email, password string) (model.User, error)
	Register(in session.RegisterInput) (model.User, error)
	Logout() error
	UpdateProfile(update session.ProfileUpdate) (model.User, error)
	Current() (model.User, bool)
	SetLanguage(code string) error
	Language() string
}

type SessionHandler struct {
	store SessionStoreInterface
}

func NewSessionHandler(store SessionStoreInterface) *SessionHandler {
	return &SessionHandler{store: store}
}

// LoginHandler handles POST /auth/login
func (h *SessionHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, err := h.store.Login(req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: login failed", map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToUserResponse(user), "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{
		"user_id": user.UserID,
		"role":    string(user.Role),
	})
}

// RegisterHandler handles POST /auth/register
func (h *SessionHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.store.Register(session.RegisterInput{
		Email:   req.Email,
		Name:    req.Name,
		Role:    model.Role(req.Role),
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RegisterHandler: registration failed", map[string]any{"email": req.Email, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToUserResponse(user), "registration successful")
	helpers.LogSuccess("RegisterHandler", "registration successful", map[string]any{
		"user_id": user.UserID,
		"role":    string(user.Role),
	})
}

// LogoutHandler handles POST /auth/logout
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	if err := h.store.Logout(); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("LogoutHandler: logout failed", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "logout successful")
}

// UpdateProfileHandler handles PATCH /auth/profile
func (h *SessionHandler) UpdateProfileHandler(c *gin.Context) {
	var req helpers.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateProfileHandler", err)
		return
	}

	user, err := h.store.UpdateProfile(session.ProfileUpdate{
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		BankAccount: req.BankAccount,
		Language:    req.Language,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateProfileHandler: update failed", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToUserResponse(user), "profile updated successfully")
	helpers.LogSuccess("UpdateProfileHandler", "profile updated successfully", map[string]any{
		"user_id": user.UserID,
	})
}

// CurrentUserHandler handles GET /auth/me
func (h *SessionHandler) CurrentUserHandler(c *gin.Context) {
	user, ok := h.store.Current()
	if !ok {
		utils.JSONResponse(c, http.StatusOK, nil, "no active session")
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToUserResponse(user), "current user retrieved successfully")
}

// SetLanguageHandler handles PUT /auth/language
func (h *SessionHandler) SetLanguageHandler(c *gin.Context) {
	var req helpers.LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetLanguageHandler", err)
		return
	}

	if err := h.store.SetLanguage(req.Code); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SetLanguageHandler: failed to persist language", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"code": req.Code}, "language preference saved")
}

// GetLanguageHandler handles GET /auth/language
func (h *SessionHandler) GetLanguageHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, gin.H{"code": h.store.Language()}, "language preference retrieved")
}
