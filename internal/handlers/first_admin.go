package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/JarodCode/gamevault/internal/logger"
	"github.com/JarodCode/gamevault/internal/models"
	"github.com/JarodCode/gamevault/internal/services"
)

// Bootstrapper defines the interface for the one-time first-admin path.
type Bootstrapper interface {
	BootstrapFirstAdmin(ctx context.Context, userID, secret string) (*models.User, error)
}

// FirstAdminRequest represents the JSON body for the first-admin bootstrap
// swagger:model FirstAdminRequest
type FirstAdminRequest struct {
	// Target user id
	// required: true
	UserID string `json:"userId"`

	// Shared bootstrap secret
	// required: true
	SecretKey string `json:"secretKey"`
}

// FirstAdminResponse represents a successful bootstrap response
// swagger:model FirstAdminResponse
type FirstAdminResponse struct {
	User    models.PublicUser `json:"user"`
	Message string            `json:"message"`
}

// NewFirstAdminHandler returns an HTTP handler for the one-time bootstrap
// of the first administrator. The path is guarded by a shared secret and
// rejected as soon as any admin exists.
// @Summary Designate the first administrator
// @Tags users
// @Accept json
// @Produce json
// @Param firstAdminRequest body handlers.FirstAdminRequest true "Bootstrap request"
// @Success 200 {object} handlers.FirstAdminResponse "First admin created"
// @Failure 403 {object} handlers.ErrorResponse "Admins already exist, bad secret, or bootstrap disabled"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/users/first-admin [post]
func NewFirstAdminHandler(svc Bootstrapper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FirstAdminRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.BootstrapFirstAdmin(r.Context(), req.UserID, req.SecretKey)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAdminExists):
				writeError(w, http.StatusForbidden, "Admin users already exist in the system")
			case errors.Is(err, services.ErrBootstrapSecret):
				writeError(w, http.StatusForbidden, "Invalid secret key")
			case errors.Is(err, services.ErrBootstrapDisabled):
				writeError(w, http.StatusForbidden, "Admin bootstrap is disabled")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("first-admin bootstrap failed", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, FirstAdminResponse{
			User:    user.Public(),
			Message: fmt.Sprintf("User %s has been made the first admin", user.Username),
		})
	}
}
