package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JarodCode/gamevault/internal/logger"
	"github.com/JarodCode/gamevault/internal/models"
)

// ReviewLister defines the interface for reading a game's reviews.
type ReviewLister interface {
	ListReviews(ctx context.Context, gameID string) ([]models.Review, *models.RatingAggregate, error)
}

// ReviewListResponse represents a game's reviews with the derived aggregate
// swagger:model ReviewListResponse
type ReviewListResponse struct {
	Reviews       []models.Review `json:"reviews"`
	Total         int             `json:"total"`
	AverageRating float64         `json:"averageRating"`
	UniqueUsers   int             `json:"uniqueUsers"`
}

// NewReviewsListHandler returns an HTTP handler listing a game's reviews
// sorted by last update, newest first.
// @Summary List reviews for a game
// @Tags reviews
// @Produce json
// @Param id path string true "Game id"
// @Success 200 {object} handlers.ReviewListResponse "Reviews and aggregate"
// @Router /api/games/{id}/reviews [get]
func NewReviewsListHandler(svc ReviewLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "id")

		reviews, agg, err := svc.ListReviews(r.Context(), gameID)
		if err != nil {
			logger.Log.Errorw("failed to list reviews", "gameId", gameID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if reviews == nil {
			reviews = []models.Review{}
		}
		writeJSON(w, http.StatusOK, ReviewListResponse{
			Reviews:       reviews,
			Total:         agg.ReviewCount,
			AverageRating: agg.AverageRating,
			UniqueUsers:   agg.DistinctReviewerCount,
		})
	}
}
