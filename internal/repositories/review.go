package repositories

import (
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JarodCode/gamevault/internal/logger"
	"github.com/JarodCode/gamevault/internal/models"
	"github.com/JarodCode/gamevault/internal/storage"
)

// Error variables
var (
	ErrReviewNotFound   = errors.New("review not found")
	ErrDeleteNotAllowed = errors.New("review deletion not allowed")
)

const reviewsCollection = "reviews"

// UserResolver resolves a user id to its current directory entry. The review
// repository uses it to repair denormalized usernames.
type UserResolver interface {
	FindByID(id string) (*models.User, error)
}

// ReviewRepository is the in-memory review collection backed by the file
// store. Identifiers are normalized to strings at the API boundary, so all
// matching in here uses strict string equality.
type ReviewRepository struct {
	store *storage.Store

	mu      sync.Mutex
	reviews []*models.Review
}

// NewReviewRepository creates an empty repository over the given store.
func NewReviewRepository(store *storage.Store) *ReviewRepository {
	return &ReviewRepository{store: store}
}

// Load reads the reviews collection. Records missing an id, gameId, or
// rating are skipped with a warning. Reviews whose stored username is a
// placeholder but whose userId resolves against the directory get their
// username corrected in memory.
func (r *ReviewRepository) Load(users UserResolver) error {
	records, err := r.store.Load(reviewsCollection)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.reviews = r.reviews[:0]
	skipped := 0

	for _, raw := range records {
		var review models.Review
		if err := json.Unmarshal(raw, &review); err != nil {
			logger.Log.Warnw("skipping unreadable review record", "error", err)
			skipped++
			continue
		}
		if review.ID == "" || review.GameID == "" || review.Rating == 0 {
			logger.Log.Warnw("skipping review record with missing required fields",
				"id", review.ID, "gameId", review.GameID)
			skipped++
			continue
		}

		repairUsername(&review, users)

		rv := review
		r.reviews = append(r.reviews, &rv)
	}

	if skipped > 0 {
		logger.Log.Warnw("dropped invalid review records", "skipped", skipped)
	}
	logger.Log.Infow("review ledger loaded", "reviews", len(r.reviews))
	return nil
}

// Upsert creates or updates the single review for (gameID, userID). The
// lookup and the mutation happen under one lock acquisition, so two racing
// submissions for the same slot cannot produce a duplicate or a lost update.
// The persisted state is written before returning. The second return value
// reports whether a new record was created.
func (r *ReviewRepository) Upsert(gameID, userID, username string, rating float64, content string) (*models.Review, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()

	for _, rv := range r.reviews {
		if rv.GameID == gameID && rv.UserID == userID {
			prev := *rv
			rv.Rating = rating
			rv.Content = content
			rv.Username = username
			rv.UpdatedAt = now
			if err := r.persist(); err != nil {
				*rv = prev
				return nil, false, err
			}
			out := *rv
			return &out, false, nil
		}
	}

	review := &models.Review{
		ID:        uuid.NewString(),
		GameID:    gameID,
		UserID:    userID,
		Username:  username,
		Rating:    rating,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.reviews = append(r.reviews, review)
	if err := r.persist(); err != nil {
		r.reviews = r.reviews[:len(r.reviews)-1]
		return nil, false, err
	}
	out := *review
	return &out, true, nil
}

// DeleteWhere removes the review with the given id if the allowed callback
// approves it. The check runs under the repository lock so the record cannot
// change between the authorization decision and the removal. Returns the
// removed review.
func (r *ReviewRepository) DeleteWhere(id string, allowed func(*models.Review) bool) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rv := range r.reviews {
		if rv.ID != id {
			continue
		}
		if !allowed(rv) {
			return nil, ErrDeleteNotAllowed
		}
		removed := *rv
		rest := make([]*models.Review, 0, len(r.reviews)-1)
		rest = append(rest, r.reviews[:i]...)
		rest = append(rest, r.reviews[i+1:]...)
		kept := r.reviews
		r.reviews = rest
		if err := r.persist(); err != nil {
			r.reviews = kept
			return nil, err
		}
		return &removed, nil
	}
	return nil, ErrReviewNotFound
}

// ListByGame returns the reviews for a game sorted by updatedAt descending.
// Reviews with an unresolvable placeholder username are repaired in memory
// before being returned; the repair is not persisted here.
func (r *ReviewRepository) ListByGame(gameID string, users UserResolver) []models.Review {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Review
	for _, rv := range r.reviews {
		if rv.GameID != gameID {
			continue
		}
		repairUsername(rv, users)
		out = append(out, *rv)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// GameReviews returns a snapshot of the reviews for a game, unsorted.
func (r *ReviewRepository) GameReviews(gameID string) []models.Review {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Review
	for _, rv := range r.reviews {
		if rv.GameID == gameID {
			out = append(out, *rv)
		}
	}
	return out
}

// All returns a snapshot of every review in the ledger.
func (r *ReviewRepository) All() []models.Review {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Review, 0, len(r.reviews))
	for _, rv := range r.reviews {
		out = append(out, *rv)
	}
	return out
}

// persist writes the full collection; callers must hold the lock.
func (r *ReviewRepository) persist() error {
	return r.store.Save(reviewsCollection, r.reviews, len(r.reviews))
}

func repairUsername(review *models.Review, users UserResolver) {
	if users == nil {
		return
	}
	if review.UserID == "" || review.UserID == "anonymous" {
		return
	}
	if review.Username != "" && review.Username != models.AnonymousUsername {
		return
	}
	user, err := users.FindByID(review.UserID)
	if err != nil {
		logger.Log.Warnw("could not resolve username for review",
			"review", review.ID, "userId", review.UserID)
		return
	}
	logger.Log.Infow("repaired review username",
		"review", review.ID, "username", user.Username)
	review.Username = user.Username
}
