package models

// RatingAggregate is the derived rating summary for one game. It is always
// recomputed from the full review set for that game, never patched
// incrementally, so it cannot drift from the source reviews.
type RatingAggregate struct {
	AverageRating         float64 `json:"averageRating"`
	ReviewCount           int     `json:"reviewCount"`
	DistinctReviewerCount int     `json:"distinctReviewerCount"`
}

// GameRating is one entry of the all-games ratings listing.
type GameRating struct {
	GameID        string `json:"game_id"`
	AverageRating string `json:"average_rating"` // Formatted to one decimal
	RatingCount   int    `json:"rating_count"`
	UniqueUsers   int    `json:"unique_users"`
}
