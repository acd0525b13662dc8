package repositories

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JarodCode/gamevault/internal/models"
	"github.com/JarodCode/gamevault/internal/storage"
)

func newUserRepo(t *testing.T) (*UserRepository, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.New(dir)
	require.NoError(t, err)
	return NewUserRepository(store), dir
}

func testUser(id, username, email string) *models.User {
	now := time.Now().UTC()
	return &models.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo, _ := newUserRepo(t)

	err := repo.Create(testUser("u1", "alice", "alice@example.com"))
	require.NoError(t, err)

	byID, err := repo.FindByID("u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byName, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", byName.ID)

	byEmail, err := repo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	assert.Equal(t, 1, repo.Count())
}

func TestUserRepository_CaseInsensitiveUniqueness(t *testing.T) {
	repo, _ := newUserRepo(t)

	require.NoError(t, repo.Create(testUser("u1", "Alice", "Alice@Example.com")))

	err := repo.Create(testUser("u2", "alice", "other@example.com"))
	assert.ErrorIs(t, err, ErrUsernameExists)

	err = repo.Create(testUser("u3", "bob", "ALICE@EXAMPLE.COM"))
	assert.ErrorIs(t, err, ErrEmailExists)

	// The rejected inserts must not have grown the directory.
	assert.Equal(t, 1, repo.Count())
}

func TestUserRepository_CaseInsensitiveLookup(t *testing.T) {
	repo, _ := newUserRepo(t)
	require.NoError(t, repo.Create(testUser("u1", "Alice", "alice@example.com")))

	byName, err := repo.FindByUsername("ALICE")
	require.NoError(t, err)
	assert.Equal(t, "u1", byName.ID)

	byEmail, err := repo.FindByEmail("Alice@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)
}

func TestUserRepository_EmptyEmailNotUnique(t *testing.T) {
	repo, _ := newUserRepo(t)

	require.NoError(t, repo.Create(testUser("u1", "alice", "")))
	require.NoError(t, repo.Create(testUser("u2", "bob", "")))
	assert.Equal(t, 2, repo.Count())
}

func TestUserRepository_FindMissing(t *testing.T) {
	repo, _ := newUserRepo(t)

	_, err := repo.FindByID("nope")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.FindByUsername("nope")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.FindByEmail("nope@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	repo, _ := newUserRepo(t)
	require.NoError(t, repo.Create(testUser("u1", "alice", "")))

	user, err := repo.FindByID("u1")
	require.NoError(t, err)
	user.IsAdmin = true
	user.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(user))

	stored, err := repo.FindByID("u1")
	require.NoError(t, err)
	assert.True(t, stored.IsAdmin)
	assert.True(t, repo.AdminExists())
}

func TestUserRepository_Update_Missing(t *testing.T) {
	repo, _ := newUserRepo(t)
	err := repo.Update(testUser("ghost", "ghost", ""))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_AdminExists(t *testing.T) {
	repo, _ := newUserRepo(t)
	assert.False(t, repo.AdminExists())

	admin := testUser("u1", "root", "")
	admin.IsAdmin = true
	require.NoError(t, repo.Create(admin))
	assert.True(t, repo.AdminExists())
}

func TestUserRepository_PersistenceRoundtrip(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.New(dir)
	require.NoError(t, err)

	repo := NewUserRepository(store)
	require.NoError(t, repo.Create(testUser("u1", "alice", "alice@example.com")))
	require.NoError(t, repo.Create(testUser("u2", "bob", "")))

	// A fresh repository over the same directory sees the same users and
	// rebuilds the uniqueness indices.
	reloaded := NewUserRepository(store)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 2, reloaded.Count())

	err = reloaded.Create(testUser("u3", "ALICE", ""))
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestUserRepository_Load_SkipsInvalidRecords(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.New(dir)
	require.NoError(t, err)

	records := []map[string]any{
		{"id": "u1", "username": "alice", "passwordHash": "hash1"},
		{"id": "", "username": "noid", "passwordHash": "hash2"},
		{"id": "u3", "username": "", "passwordHash": "hash3"},
		{"id": "u4", "username": "nohash"},
		{"id": "u5", "username": "bob", "passwordHash": "hash5"},
	}
	data, err := json.Marshal(records)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), data, 0o644))

	repo := NewUserRepository(store)
	require.NoError(t, repo.Load())
	assert.Equal(t, 2, repo.Count())

	_, err = repo.FindByUsername("alice")
	assert.NoError(t, err)
	_, err = repo.FindByUsername("noid")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_FindReturnsCopy(t *testing.T) {
	repo, _ := newUserRepo(t)
	require.NoError(t, repo.Create(testUser("u1", "alice", "")))

	user, err := repo.FindByID("u1")
	require.NoError(t, err)
	user.IsAdmin = true // mutate the copy only

	stored, err := repo.FindByID("u1")
	require.NoError(t, err)
	assert.False(t, stored.IsAdmin)
}
