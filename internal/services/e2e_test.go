package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JarodCode/gamevault/internal/jwt"
	"github.com/JarodCode/gamevault/internal/repositories"
	"github.com/JarodCode/gamevault/internal/storage"
)

// Full lifecycle over real repositories and a real file store: register,
// authenticate, review a game, revise the review, and delete it again.
func TestReviewLifecycle(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.New(dir)
	require.NoError(t, err)

	userRepo := repositories.NewUserRepository(store)
	require.NoError(t, userRepo.Load())
	reviewRepo := repositories.NewReviewRepository(store)
	require.NoError(t, reviewRepo.Load(userRepo))

	tokens := jwt.New("lifecycle-secret", 24*time.Hour)
	auth := NewAuthService(userRepo, tokens, "")
	reviews := NewReviewService(reviewRepo, userRepo, nil, nil)

	ctx := context.Background()

	// Register and verify the fresh token round-trips the identity.
	alice, token, err := auth.Register(ctx, "alice", "alice@example.com", "pw123456")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.VerifyToken(ctx, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.False(t, claims.IsAdmin)

	// Login with the same credentials issues a working token too.
	_, loginToken, err := auth.Login(ctx, "alice", "pw123456")
	require.NoError(t, err)
	_, err = auth.VerifyToken(ctx, loginToken)
	require.NoError(t, err)

	// First review for the game.
	review, created, err := reviews.UpsertReview(ctx, "42", alice.ID, 5, "great")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "alice", review.Username)

	listed, agg, err := reviews.ListReviews(ctx, "42")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 5.0, agg.AverageRating)
	assert.Equal(t, 1, agg.ReviewCount)
	assert.Equal(t, 1, agg.DistinctReviewerCount)

	// A second submission revises the review in place.
	revised, created, err := reviews.UpsertReview(ctx, "42", alice.ID, 3, "rough edges after act two")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, review.ID, revised.ID)

	listed, agg, err = reviews.ListReviews(ctx, "42")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 3.0, agg.AverageRating)

	// Everything above must survive a reload from disk.
	reloadedUsers := repositories.NewUserRepository(store)
	require.NoError(t, reloadedUsers.Load())
	assert.Equal(t, 1, reloadedUsers.Count())

	reloadedReviews := repositories.NewReviewRepository(store)
	require.NoError(t, reloadedReviews.Load(reloadedUsers))
	assert.Len(t, reloadedReviews.GameReviews("42"), 1)

	// Deleting the review empties the game's aggregate again.
	removed, err := reviews.DeleteReview(ctx, review.ID, alice.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "42", removed.GameID)

	_, agg, err = reviews.ListReviews(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, 0.0, agg.AverageRating)
	assert.Equal(t, 0, agg.ReviewCount)
	assert.Equal(t, 0, agg.DistinctReviewerCount)
}

// Bootstrap and promotion over real repositories: the shared-secret path
// works exactly once, after which promotion goes through an admin session.
func TestAdminLifecycle(t *testing.T) {
	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	userRepo := repositories.NewUserRepository(store)
	require.NoError(t, userRepo.Load())

	tokens := jwt.New("lifecycle-secret", 24*time.Hour)
	auth := NewAuthService(userRepo, tokens, "s3cret")

	ctx := context.Background()

	alice, _, err := auth.Register(ctx, "alice", "", "pw123456")
	require.NoError(t, err)
	bob, _, err := auth.Register(ctx, "bob", "", "pw123456")
	require.NoError(t, err)

	// Bob cannot promote before any admin exists.
	_, err = auth.Promote(ctx, bob.ID, alice.ID)
	assert.ErrorIs(t, err, ErrNotAllowed)

	// Alice bootstraps herself with the shared secret.
	first, err := auth.BootstrapFirstAdmin(ctx, alice.ID, "s3cret")
	require.NoError(t, err)
	assert.True(t, first.IsAdmin)

	// The bootstrap path is closed from now on, even with the right secret.
	_, err = auth.BootstrapFirstAdmin(ctx, bob.ID, "s3cret")
	assert.ErrorIs(t, err, ErrAdminExists)

	// Regular promotion by the new admin works.
	promoted, err := auth.Promote(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, promoted.IsAdmin)

	// A token minted before the promotion now verifies as admin.
	stale, err := tokens.Generate(ctx, bob.ID, "bob", false)
	require.NoError(t, err)
	claims, err := auth.VerifyToken(ctx, stale)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

// An unauthorized delete must leave the stored collection byte-for-byte
// intact across a reload.
func TestUnauthorizedDeleteLeavesLedgerUnchanged(t *testing.T) {
	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	userRepo := repositories.NewUserRepository(store)
	require.NoError(t, userRepo.Load())
	reviewRepo := repositories.NewReviewRepository(store)
	require.NoError(t, reviewRepo.Load(userRepo))

	tokens := jwt.New("lifecycle-secret", time.Hour)
	auth := NewAuthService(userRepo, tokens, "")
	reviews := NewReviewService(reviewRepo, userRepo, nil, nil)

	ctx := context.Background()

	alice, _, err := auth.Register(ctx, "alice", "", "pw123456")
	require.NoError(t, err)
	mallory, _, err := auth.Register(ctx, "mallory", "", "pw123456")
	require.NoError(t, err)

	review, _, err := reviews.UpsertReview(ctx, "42", alice.ID, 5, "great")
	require.NoError(t, err)

	_, err = reviews.DeleteReview(ctx, review.ID, mallory.ID, false)
	assert.ErrorIs(t, err, ErrNotAllowed)

	reloaded := repositories.NewReviewRepository(store)
	require.NoError(t, reloaded.Load(userRepo))
	out := reloaded.GameReviews("42")
	require.Len(t, out, 1)
	assert.Equal(t, review.ID, out[0].ID)
	assert.Equal(t, 5.0, out[0].Rating)
}
