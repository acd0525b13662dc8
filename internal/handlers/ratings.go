package handlers

import (
	"context"
	"net/http"

	"github.com/JarodCode/gamevault/internal/logger"
	"github.com/JarodCode/gamevault/internal/models"
)

// RatingsLister defines the interface for the all-games ratings listing.
type RatingsLister interface {
	GameRatings(ctx context.Context) ([]models.GameRating, error)
}

// NewRatingsHandler returns an HTTP handler listing the rating aggregate of
// every game that has at least one review.
// @Summary List rating aggregates for all reviewed games
// @Tags reviews
// @Produce json
// @Success 200 {array} models.GameRating "Per-game rating aggregates"
// @Router /games/ratings [get]
func NewRatingsHandler(svc RatingsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ratings, err := svc.GameRatings(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list game ratings", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if ratings == nil {
			ratings = []models.GameRating{}
		}
		writeJSON(w, http.StatusOK, ratings)
	}
}
