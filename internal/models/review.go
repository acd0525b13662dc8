package models

import "time"

// AnonymousUsername is the placeholder stored on reviews whose author could
// not be resolved at write time. Load and list paths repair it when the
// userId later resolves against the user directory.
const AnonymousUsername = "Anonymous User"

// Review is a single user's review of a game. At most one review exists per
// (GameID, UserID) pair; a repeat submission updates the record in place.
type Review struct {
	ID        string    `json:"id"`
	GameID    string    `json:"gameId"` // External catalog reference, not owned here
	UserID    string    `json:"userId"`
	Username  string    `json:"username"` // Denormalized snapshot, repaired opportunistically
	Rating    float64   `json:"rating"`   // 1..5 inclusive
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
