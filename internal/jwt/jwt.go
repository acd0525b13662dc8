package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Error variables
var (
	// ErrInvalidToken covers structurally malformed, unverifiable, and
	// claim-incomplete tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is a subtype of ErrInvalidToken for expired tokens.
	ErrTokenExpired = fmt.Errorf("%w: expired", ErrInvalidToken)
	// ErrMissingIdentity is returned by Generate when identity fields are
	// absent.
	ErrMissingIdentity = errors.New("user id and username are required for token generation")
)

// minTokenLength guards against trivially short garbage before parsing.
const minTokenLength = 10

// Claims are the identity fields carried by a session token. An absent
// isAdmin claim decodes to false, which keeps tokens minted before the
// admin flag existed verifiable.
type Claims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwtlib.RegisteredClaims
}

// Service issues and verifies HS256 session tokens. Verification is
// stateless; there is no server-side session table and no revocation list.
type Service struct {
	secret string
	exp    time.Duration
}

// New creates a Service signing with secret and issuing tokens valid for
// the given duration.
func New(secret string, expiration time.Duration) *Service {
	return &Service{
		secret: secret,
		exp:    expiration,
	}
}

// Generate builds a signed token carrying the given identity and an expiry
// of now plus the configured duration.
func (s *Service) Generate(ctx context.Context, userID, username string, isAdmin bool) (string, error) {
	if userID == "" || username == "" {
		return "", ErrMissingIdentity
	}

	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.exp)),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Parse verifies a token string and returns its claims. An optional bearer
// prefix is stripped first. The token must decompose into exactly three
// dot-separated parts, carry a valid HMAC signature, be unexpired, and
// contain at minimum the id and username claims.
func (s *Service) Parse(ctx context.Context, tokenString string) (*Claims, error) {
	tokenString = StripBearerPrefix(tokenString)

	if len(tokenString) < minTokenLength {
		return nil, fmt.Errorf("%w: too short", ErrInvalidToken)
	}
	if parts := strings.Split(tokenString, "."); len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 parts, got %d", ErrInvalidToken, len(parts))
	}

	claims := &Claims{}
	token, err := jwtlib.ParseWithClaims(tokenString, claims, func(token *jwtlib.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == "" || claims.Username == "" {
		return nil, fmt.Errorf("%w: missing required claims", ErrInvalidToken)
	}

	return claims, nil
}

// GetTokenFromRequest extracts the token string from the Authorization
// header.
func (s *Service) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}
	return StripBearerPrefix(authHeader), nil
}

// StripBearerPrefix removes a leading "Bearer " scheme if present.
func StripBearerPrefix(token string) string {
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
