package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/JarodCode/gamevault/internal/jwt"
	"github.com/JarodCode/gamevault/internal/logger"
	"github.com/JarodCode/gamevault/internal/models"
	"github.com/JarodCode/gamevault/internal/repositories"
)

// Error variables
var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrEmailTaken    = errors.New("email is already taken")
	// ErrInvalidCredentials deliberately does not distinguish an unknown
	// username from a wrong password, to avoid username enumeration.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotAllowed         = errors.New("operation not allowed")
	ErrAdminExists        = errors.New("admin users already exist")
	ErrBootstrapSecret    = errors.New("invalid bootstrap secret")
	ErrBootstrapDisabled  = errors.New("admin bootstrap is disabled")
	ErrMissingFields      = errors.New("username and password are required")
)

// UserDirectory defines the credential store operations the auth service
// needs.
type UserDirectory interface {
	Create(user *models.User) error
	Update(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	AdminExists() bool
}

// TokenManager issues and parses session tokens.
type TokenManager interface {
	Generate(ctx context.Context, userID, username string, isAdmin bool) (string, error)
	Parse(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthService handles registration, login, token verification, and the
// admin promotion paths.
type AuthService struct {
	users           UserDirectory
	tokens          TokenManager
	bootstrapSecret string
}

// NewAuthService creates a new AuthService. An empty bootstrapSecret
// disables the first-admin bootstrap path entirely.
func NewAuthService(users UserDirectory, tokens TokenManager, bootstrapSecret string) *AuthService {
	return &AuthService{
		users:           users,
		tokens:          tokens,
		bootstrapSecret: bootstrapSecret,
	}
}

// Register creates a new user and returns it together with a freshly issued
// session token. The raw password is hashed with bcrypt and never stored.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	if username == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := svc.users.Create(user); err != nil {
		switch {
		case errors.Is(err, repositories.ErrUsernameExists):
			logger.Log.Infow("registration rejected, username taken", "username", username)
			return nil, "", ErrUsernameTaken
		case errors.Is(err, repositories.ErrEmailExists):
			logger.Log.Infow("registration rejected, email taken", "username", username)
			return nil, "", ErrEmailTaken
		default:
			logger.Log.Errorw("failed to save user", "username", username, "error", err)
			return nil, "", err
		}
	}

	token, err := svc.tokens.Generate(ctx, user.ID, user.Username, user.IsAdmin)
	if err != nil {
		logger.Log.Errorw("failed to generate token after registration", "username", username, "error", err)
		return nil, "", err
	}

	logger.Log.Infow("user registered", "username", username, "id", user.ID)
	return user, token, nil
}

// Login authenticates a user and returns it with a session token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := svc.users.FindByUsername(username)
	if err != nil {
		logger.Log.Infow("login failed, unknown username", "username", username)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("login failed, password mismatch", "username", username)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.ID, user.Username, user.IsAdmin)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "username", username, "error", err)
		return nil, "", err
	}

	logger.Log.Infow("user logged in", "username", username, "id", user.ID)
	return user, token, nil
}

// VerifyToken parses and validates a session token, then overrides the
// isAdmin claim with the user directory's current value. That override is
// the only mechanism by which admin revocation or promotion takes effect
// before the token expires.
func (svc *AuthService) VerifyToken(ctx context.Context, tokenString string) (*jwt.Claims, error) {
	claims, err := svc.tokens.Parse(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	user, err := svc.users.FindByID(claims.UserID)
	if err != nil {
		logger.Log.Warnw("token user not found in directory", "userId", claims.UserID)
		return claims, nil
	}
	if user.IsAdmin != claims.IsAdmin {
		logger.Log.Infow("overriding token admin claim from directory",
			"userId", claims.UserID, "claim", claims.IsAdmin, "current", user.IsAdmin)
		claims.IsAdmin = user.IsAdmin
	}

	return claims, nil
}

// FindByID returns a user by id.
func (svc *AuthService) FindByID(ctx context.Context, id string) (*models.User, error) {
	user, err := svc.users.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// FindByUsername returns a user by username.
func (svc *AuthService) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := svc.users.FindByUsername(username)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Promote grants the admin flag to target. The actor must currently be an
// admin according to the directory, not merely according to their token.
func (svc *AuthService) Promote(ctx context.Context, actorID, targetID string) (*models.User, error) {
	actor, err := svc.users.FindByID(actorID)
	if err != nil || !actor.IsAdmin {
		logger.Log.Warnw("promotion rejected, actor is not admin", "actorId", actorID)
		return nil, ErrNotAllowed
	}

	target, err := svc.users.FindByID(targetID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	target.IsAdmin = true
	target.UpdatedAt = time.Now().UTC()
	if err := svc.users.Update(target); err != nil {
		logger.Log.Errorw("failed to persist promotion", "targetId", targetID, "error", err)
		return nil, err
	}

	logger.Log.Infow("user promoted to admin", "target", target.Username, "by", actor.Username)
	return target, nil
}

// BootstrapFirstAdmin promotes a user without a session, guarded by a
// shared secret. It is rejected as soon as any admin exists, so it can
// succeed at most once per store.
func (svc *AuthService) BootstrapFirstAdmin(ctx context.Context, userID, secret string) (*models.User, error) {
	if svc.bootstrapSecret == "" {
		return nil, ErrBootstrapDisabled
	}
	if svc.users.AdminExists() {
		logger.Log.Warnw("bootstrap rejected, admin already exists")
		return nil, ErrAdminExists
	}
	if secret != svc.bootstrapSecret {
		logger.Log.Warnw("bootstrap rejected, bad secret")
		return nil, ErrBootstrapSecret
	}

	user, err := svc.users.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user.IsAdmin = true
	user.UpdatedAt = time.Now().UTC()
	if err := svc.users.Update(user); err != nil {
		logger.Log.Errorw("failed to persist first admin", "userId", userID, "error", err)
		return nil, err
	}

	logger.Log.Infow("first admin bootstrapped", "username", user.Username)
	return user, nil
}
