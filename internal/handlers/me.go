package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/JarodCode/gamevault/internal/logger"
	"github.com/JarodCode/gamevault/internal/middlewares"
	"github.com/JarodCode/gamevault/internal/models"
	"github.com/JarodCode/gamevault/internal/services"
)

// UserFinder defines the interface for looking up a user by id.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// MeResponse represents the current-user response
// swagger:model MeResponse
type MeResponse struct {
	User models.PublicUser `json:"user"`
}

// NewMeHandler returns an HTTP handler that resolves the authenticated
// user from their session token.
// @Summary Get the current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MeResponse "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/users/me [get]
func NewMeHandler(svc UserFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		user, err := svc.FindByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			logger.Log.Errorw("failed to resolve current user", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, MeResponse{User: user.Public()})
	}
}
