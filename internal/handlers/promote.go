package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JarodCode/gamevault/internal/logger"
	"github.com/JarodCode/gamevault/internal/middlewares"
	"github.com/JarodCode/gamevault/internal/models"
	"github.com/JarodCode/gamevault/internal/services"
)

// Promoter defines the interface for promoting a user to admin.
type Promoter interface {
	Promote(ctx context.Context, actorID, targetID string) (*models.User, error)
}

// PromoteResponse represents a successful promotion response
// swagger:model PromoteResponse
type PromoteResponse struct {
	User    models.PublicUser `json:"user"`
	Message string            `json:"message"`
}

// NewPromoteHandler returns an HTTP handler for promoting a user to admin.
// Only a current admin may promote.
// @Summary Promote a user to admin
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "Target user id"
// @Success 200 {object} handlers.PromoteResponse "User promoted"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Only administrators can promote users"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/users/{id}/promote [post]
func NewPromoteHandler(svc Promoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		targetID := chi.URLParam(r, "id")

		user, err := svc.Promote(r.Context(), claims.UserID, targetID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotAllowed):
				writeError(w, http.StatusForbidden, "Only administrators can promote users")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("promotion failed", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, PromoteResponse{
			User:    user.Public(),
			Message: fmt.Sprintf("User %s has been promoted to admin", user.Username),
		})
	}
}
