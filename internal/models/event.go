package models

// Review event types published to the side channel.
const (
	ReviewCreated = "review.created"
	ReviewUpdated = "review.updated"
	ReviewDeleted = "review.deleted"
)

// ReviewEvent is a best-effort notification about a review mutation.
// Delivery is not guaranteed; consumers must not rely on it for state.
type ReviewEvent struct {
	EventID   string  `json:"event_id"`
	Type      string  `json:"type"`
	GameID    string  `json:"game_id"`
	ReviewID  string  `json:"review_id"`
	UserID    string  `json:"user_id"`
	Username  string  `json:"username"`
	Rating    float64 `json:"rating"`
	Timestamp int64   `json:"timestamp"`
}
