package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps session errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, auctionerrors.ErrNoActiveSession):
		return http.StatusUnauthorized, "no active session"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ToUserResponse converts a user record to its transport shape
func ToUserResponse(u model.User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     string(u.Role),
		Phone:    u.Phone,
		Address:  u.Address,
		JoinedAt: u.JoinedAt.UTC().Format(time.RFC3339),
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
