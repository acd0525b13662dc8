package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JarodCode/gamevault/internal/logger"
	"github.com/JarodCode/gamevault/internal/models"
	"github.com/JarodCode/gamevault/internal/services"
)

// UsernameFinder defines the interface for looking up a user by username.
type UsernameFinder interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// FindUserResponse carries only the id and username, nothing else leaks
// swagger:model FindUserResponse
type FindUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// NewFindUserHandler returns an HTTP handler resolving a username to an id.
// @Summary Find a user id by username
// @Tags users
// @Produce json
// @Param username path string true "Username (case-insensitive)"
// @Success 200 {object} handlers.FindUserResponse "User found"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/users/find/{username} [get]
func NewFindUserHandler(svc UsernameFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		user, err := svc.FindByUsername(r.Context(), username)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			logger.Log.Errorw("failed to find user", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, FindUserResponse{
			ID:       user.ID,
			Username: user.Username,
		})
	}
}
