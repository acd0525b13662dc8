package repositories

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/JarodCode/gamevault/internal/logger"
	"github.com/JarodCode/gamevault/internal/models"
	"github.com/JarodCode/gamevault/internal/storage"
)

// Error variables
var (
	ErrUsernameExists = errors.New("username is already taken")
	ErrEmailExists    = errors.New("email is already taken")
	ErrUserNotFound   = errors.New("user not found")
)

const usersCollection = "users"

// UserRepository is the in-memory user directory backed by the file store.
// Username and email indices hold lowercase keys so uniqueness checks and
// lookups are case-insensitive and O(1).
type UserRepository struct {
	store *storage.Store

	mu         sync.RWMutex
	users      []*models.User
	byUsername map[string]*models.User
	byEmail    map[string]*models.User
}

// NewUserRepository creates an empty repository over the given store.
func NewUserRepository(store *storage.Store) *UserRepository {
	return &UserRepository{
		store:      store,
		byUsername: make(map[string]*models.User),
		byEmail:    make(map[string]*models.User),
	}
}

// Load reads the users collection and rebuilds the uniqueness indices.
// Records missing an id, username, or password hash are skipped with a
// warning rather than failing the load.
func (r *UserRepository) Load() error {
	records, err := r.store.Load(usersCollection)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = r.users[:0]
	r.byUsername = make(map[string]*models.User)
	r.byEmail = make(map[string]*models.User)

	for _, raw := range records {
		var user models.User
		if err := json.Unmarshal(raw, &user); err != nil {
			logger.Log.Warnw("skipping unreadable user record", "error", err)
			continue
		}
		if user.ID == "" || user.Username == "" || user.PasswordHash == "" {
			logger.Log.Warnw("skipping user record with missing required fields",
				"id", user.ID, "username", user.Username)
			continue
		}
		u := user
		r.users = append(r.users, &u)
		r.byUsername[strings.ToLower(u.Username)] = &u
		if u.Email != "" {
			r.byEmail[strings.ToLower(u.Email)] = &u
		}
	}

	logger.Log.Infow("user directory loaded", "users", len(r.users))
	return nil
}

// Create inserts a new user after re-checking both uniqueness indices under
// the write lock, then persists the collection.
func (r *UserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[strings.ToLower(user.Username)]; ok {
		return ErrUsernameExists
	}
	if user.Email != "" {
		if _, ok := r.byEmail[strings.ToLower(user.Email)]; ok {
			return ErrEmailExists
		}
	}

	u := *user
	r.users = append(r.users, &u)
	r.byUsername[strings.ToLower(u.Username)] = &u
	if u.Email != "" {
		r.byEmail[strings.ToLower(u.Email)] = &u
	}

	if err := r.persist(); err != nil {
		// Roll the insert back so memory does not run ahead of disk.
		r.users = r.users[:len(r.users)-1]
		delete(r.byUsername, strings.ToLower(u.Username))
		if u.Email != "" {
			delete(r.byEmail, strings.ToLower(u.Email))
		}
		return err
	}
	return nil
}

// Update replaces the stored fields of an existing user and persists.
// Username and email are immutable after creation; only the mutable fields
// are copied onto the stored record.
func (r *UserRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.findByIDLocked(user.ID)
	if stored == nil {
		return ErrUserNotFound
	}

	stored.PasswordHash = user.PasswordHash
	stored.IsAdmin = user.IsAdmin
	stored.UpdatedAt = user.UpdatedAt

	return r.persist()
}

// FindByID returns the user with the given id.
func (r *UserRepository) FindByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u := r.findByIDLocked(id); u != nil {
		copy := *u
		return &copy, nil
	}
	return nil, ErrUserNotFound
}

// FindByUsername returns the user with the given username, compared
// case-insensitively.
func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.byUsername[strings.ToLower(username)]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, ErrUserNotFound
}

// FindByEmail returns the user with the given email, compared
// case-insensitively.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.byEmail[strings.ToLower(email)]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, ErrUserNotFound
}

// AdminExists reports whether any user currently holds the admin flag.
func (r *UserRepository) AdminExists() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.IsAdmin {
			return true
		}
	}
	return false
}

// Count returns the number of users in the directory.
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

func (r *UserRepository) findByIDLocked(id string) *models.User {
	for _, u := range r.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// persist writes the full collection; callers must hold the write lock.
func (r *UserRepository) persist() error {
	return r.store.Save(usersCollection, r.users, len(r.users))
}
