package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/JarodCode/gamevault/internal/logger"
	"github.com/JarodCode/gamevault/internal/models"
	"github.com/JarodCode/gamevault/internal/repositories"
)

// Error variables
var (
	ErrInvalidReview  = errors.New("rating must be between 1 and 5 and content must not be empty")
	ErrReviewNotFound = errors.New("review not found")
)

// ReviewLedger defines the review collection operations the service needs.
type ReviewLedger interface {
	Upsert(gameID, userID, username string, rating float64, content string) (*models.Review, bool, error)
	DeleteWhere(id string, allowed func(*models.Review) bool) (*models.Review, error)
	ListByGame(gameID string, users repositories.UserResolver) []models.Review
	GameReviews(gameID string) []models.Review
	All() []models.Review
}

// UserLookup resolves user ids, used for username denormalization and
// repair.
type UserLookup interface {
	FindByID(id string) (*models.User, error)
}

// AggregateCache caches per-game aggregates.
type AggregateCache interface {
	Get(ctx context.Context, gameID string) (*models.RatingAggregate, error)
	Set(ctx context.Context, gameID string, agg *models.RatingAggregate) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ReviewService enforces the one-review-per-(game,user) rule, keeps the
// derived rating aggregates consistent with every mutation, and publishes
// best-effort review events.
type ReviewService struct {
	ledger      ReviewLedger
	users       UserLookup
	cache       AggregateCache
	kafkaWriter KafkaWriter

	// Per-game locks serialize persist-and-recompute across concurrent
	// mutations of the same game.
	gamesMu   sync.Mutex
	gameLocks map[string]*sync.Mutex
}

// NewReviewService creates a new ReviewService. cache and kafkaWriter may
// be nil, in which case caching and event publishing are skipped.
func NewReviewService(ledger ReviewLedger, users UserLookup, cache AggregateCache, kafkaWriter KafkaWriter) *ReviewService {
	return &ReviewService{
		ledger:      ledger,
		users:       users,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		gameLocks:   make(map[string]*sync.Mutex),
	}
}

// lockGame returns the mutex for one game, creating it on first use.
func (s *ReviewService) lockGame(gameID string) *sync.Mutex {
	s.gamesMu.Lock()
	defer s.gamesMu.Unlock()

	mu, ok := s.gameLocks[gameID]
	if !ok {
		mu = &sync.Mutex{}
		s.gameLocks[gameID] = mu
	}
	return mu
}

// UpsertReview creates or updates the requesting user's review for a game.
// The stored username is always refreshed from the user directory. Returns
// the resulting review and whether it was created rather than updated.
func (s *ReviewService) UpsertReview(ctx context.Context, gameID, userID string, rating float64, content string) (*models.Review, bool, error) {
	if rating < 1 || rating > 5 || strings.TrimSpace(content) == "" {
		return nil, false, ErrInvalidReview
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, false, ErrUserNotFound
	}

	mu := s.lockGame(gameID)
	mu.Lock()
	defer mu.Unlock()

	review, created, err := s.ledger.Upsert(gameID, userID, user.Username, rating, content)
	if err != nil {
		logger.Log.Errorw("failed to persist review", "gameId", gameID, "userId", userID, "error", err)
		return nil, false, err
	}

	s.refreshAggregate(ctx, gameID)

	eventType := models.ReviewUpdated
	if created {
		eventType = models.ReviewCreated
	}
	s.publishEvent(ctx, eventType, review)

	logger.Log.Infow("review upserted",
		"gameId", gameID, "userId", userID, "rating", rating, "created", created)
	return review, created, nil
}

// DeleteReview removes a review if the requester owns it or is an admin,
// then recomputes the affected game's aggregate.
func (s *ReviewService) DeleteReview(ctx context.Context, reviewID, actorID string, actorIsAdmin bool) (*models.Review, error) {
	removed, err := s.ledger.DeleteWhere(reviewID, func(r *models.Review) bool {
		return CanMutate(actorID, actorIsAdmin, r.UserID)
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrReviewNotFound):
			return nil, ErrReviewNotFound
		case errors.Is(err, repositories.ErrDeleteNotAllowed):
			logger.Log.Warnw("review deletion rejected",
				"review", reviewID, "actorId", actorID, "admin", actorIsAdmin)
			return nil, ErrNotAllowed
		default:
			logger.Log.Errorw("failed to delete review", "review", reviewID, "error", err)
			return nil, err
		}
	}

	s.refreshAggregate(ctx, removed.GameID)
	s.publishEvent(ctx, models.ReviewDeleted, removed)

	logger.Log.Infow("review deleted", "review", reviewID, "gameId", removed.GameID, "actorId", actorID)
	return removed, nil
}

// ListReviews returns a game's reviews sorted by updatedAt descending
// together with the current aggregate. Reviews with a resolvable missing
// username are repaired on the way out.
func (s *ReviewService) ListReviews(ctx context.Context, gameID string) ([]models.Review, *models.RatingAggregate, error) {
	reviews := s.ledger.ListByGame(gameID, s.users)
	agg := s.ComputeAggregate(ctx, gameID)
	return reviews, agg, nil
}

// ComputeAggregate derives the rating aggregate for one game from the full
// review set. A game without reviews yields zeros, never an error.
func (s *ReviewService) ComputeAggregate(ctx context.Context, gameID string) *models.RatingAggregate {
	reviews := s.ledger.GameReviews(gameID)

	agg := &models.RatingAggregate{}
	if len(reviews) == 0 {
		return agg
	}

	total := 0.0
	reviewers := make(map[string]struct{})
	for _, r := range reviews {
		total += r.Rating
		reviewers[r.UserID] = struct{}{}
	}

	agg.AverageRating = total / float64(len(reviews))
	agg.ReviewCount = len(reviews)
	agg.DistinctReviewerCount = len(reviewers)
	return agg
}

// GameRatings returns the aggregate listing for every game that currently
// has at least one review.
func (s *ReviewService) GameRatings(ctx context.Context) ([]models.GameRating, error) {
	type acc struct {
		total float64
		count int
		users map[string]struct{}
	}

	byGame := make(map[string]*acc)
	for _, r := range s.ledger.All() {
		a, ok := byGame[r.GameID]
		if !ok {
			a = &acc{users: make(map[string]struct{})}
			byGame[r.GameID] = a
		}
		a.total += r.Rating
		a.count++
		a.users[r.UserID] = struct{}{}
	}

	ratings := make([]models.GameRating, 0, len(byGame))
	for gameID, a := range byGame {
		ratings = append(ratings, models.GameRating{
			GameID:        gameID,
			AverageRating: fmt.Sprintf("%.1f", a.total/float64(a.count)),
			RatingCount:   a.count,
			UniqueUsers:   len(a.users),
		})
	}

	sort.Slice(ratings, func(i, j int) bool {
		return ratings[i].GameID < ratings[j].GameID
	})
	return ratings, nil
}

// refreshAggregate recomputes a game's aggregate and writes it through to
// the cache. Cache failures are logged, not surfaced; the ledger stays the
// source of truth.
func (s *ReviewService) refreshAggregate(ctx context.Context, gameID string) {
	agg := s.ComputeAggregate(ctx, gameID)
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, gameID, agg); err != nil {
		logger.Log.Warnw("failed to refresh aggregate cache", "gameId", gameID, "error", err)
	}
}

// publishEvent publishes a review event to Kafka, best-effort.
func (s *ReviewService) publishEvent(ctx context.Context, eventType string, review *models.Review) {
	if s.kafkaWriter == nil {
		return
	}

	event := models.ReviewEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		GameID:    review.GameID,
		ReviewID:  review.ID,
		UserID:    review.UserID,
		Username:  review.Username,
		Rating:    review.Rating,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal review event", "event", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(review.GameID),
		Value: data,
	}
	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Warnw("failed to publish review event", "event", event.EventID, "error", err)
		return
	}
	logger.Log.Infow("review event published", "event", event.EventID, "type", eventType)
}
