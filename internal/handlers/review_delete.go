package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JarodCode/gamevault/internal/logger"
	"github.com/JarodCode/gamevault/internal/middlewares"
	"github.com/JarodCode/gamevault/internal/models"
	"github.com/JarodCode/gamevault/internal/services"
)

// ReviewDeleter defines the interface for deleting a review.
type ReviewDeleter interface {
	DeleteReview(ctx context.Context, reviewID, actorID string, actorIsAdmin bool) (*models.Review, error)
}

// ReviewDeleteResponse represents a successful deletion
// swagger:model ReviewDeleteResponse
type ReviewDeleteResponse struct {
	Success bool   `json:"success"`
	GameID  string `json:"gameId"`
}

// NewReviewDeleteHandler returns an HTTP handler deleting a review. Only
// the review's owner or an admin may delete it.
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review id"
// @Success 200 {object} handlers.ReviewDeleteResponse "Review deleted"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner and not an admin"
// @Failure 404 {object} handlers.ErrorResponse "Review not found"
// @Router /api/reviews/{id} [delete]
func NewReviewDeleteHandler(svc ReviewDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Authentication required to delete reviews")
			return
		}

		reviewID := chi.URLParam(r, "id")

		removed, err := svc.DeleteReview(r.Context(), reviewID, claims.UserID, claims.IsAdmin)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrReviewNotFound):
				writeError(w, http.StatusNotFound, "Review not found")
			case errors.Is(err, services.ErrNotAllowed):
				writeError(w, http.StatusForbidden, "You can only delete your own reviews unless you are an admin")
			default:
				logger.Log.Errorw("failed to delete review", "review", reviewID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, ReviewDeleteResponse{
			Success: true,
			GameID:  removed.GameID,
		})
	}
}
