package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JarodCode/gamevault/internal/logger"
	"github.com/JarodCode/gamevault/internal/middlewares"
	"github.com/JarodCode/gamevault/internal/models"
	"github.com/JarodCode/gamevault/internal/services"
)

// ReviewUpserter defines the interface for creating or updating a review.
type ReviewUpserter interface {
	UpsertReview(ctx context.Context, gameID, userID string, rating float64, content string) (*models.Review, bool, error)
}

// ReviewRequest represents the JSON body for submitting a review
// swagger:model ReviewRequest
type ReviewRequest struct {
	// Rating from 1 to 5
	// required: true
	// default: 4
	Rating float64 `json:"rating"`

	// Review text
	// required: true
	// default: Great game
	Content string `json:"content"`
}

// NewReviewCreateHandler returns an HTTP handler that upserts the
// authenticated user's review for a game. A repeat submission updates the
// existing review (200) instead of creating a second one (201).
// @Summary Create or update a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game id"
// @Param reviewRequest body handlers.ReviewRequest true "Review submission"
// @Success 200 {object} models.Review "Existing review updated"
// @Success 201 {object} models.Review "Review created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid rating or empty content"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/games/{id}/reviews [post]
func NewReviewCreateHandler(svc ReviewUpserter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Authentication required to post reviews")
			return
		}

		gameID := chi.URLParam(r, "id")

		var req ReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		review, created, err := svc.UpsertReview(r.Context(), gameID, claims.UserID, req.Rating, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidReview):
				writeError(w, http.StatusBadRequest, "Rating must be between 1 and 5 and content must not be empty")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("failed to save review", "gameId", gameID, "error", err)
				writeError(w, http.StatusInternalServerError, "Failed to save review")
			}
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		writeJSON(w, status, review)
	}
}
