package services

import (
	"errors"
	"fmt"

	"github.com/avilaj/bookwish-be/internal/auth"
	"github.com/avilaj/bookwish-be/internal/models"
	"github.com/rs/zerolog/log"
)

// UserStore is the read-only view of user persistence the auth service
// consumes. UserService satisfies it.
type UserStore interface {
	FindByUsername(username string) (models.User, error)
	FindByID(id int64) (models.User, error)
}

// TokenResponse is the login response body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthServiceProvider defines the interface for the authentication service.
type AuthServiceProvider interface {
	Login(username, password string) (TokenResponse, error)
	Authenticate(token string) (models.User, error)
}

// AuthService orchestrates credential verification and token issuance.
// Everything it holds is read-only after construction, so a single instance
// serves concurrent requests without locking.
type AuthService struct {
	users  UserStore
	hasher *auth.Hasher
	codec  *auth.Codec
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, hasher *auth.Hasher, codec *auth.Codec) *AuthService {
	return &AuthService{users: users, hasher: hasher, codec: codec}
}

// Login verifies the credentials and issues an access token. An unknown
// username and a wrong password return the identical ErrInvalidCredentials,
// so the response does not disclose whether the account exists. A store I/O
// failure is returned as ErrStoreUnavailable, never disguised as a
// credential failure.
func (s *AuthService) Login(username, password string) (TokenResponse, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Debug().Str("username", username).Msg("Login rejected: unknown username")
			return TokenResponse{}, auth.ErrInvalidCredentials
		}
		return TokenResponse{}, fmt.Errorf("%w: %v", auth.ErrStoreUnavailable, err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		log.Debug().Str("username", username).Msg("Login rejected: password mismatch")
		return TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.Username, nil)
	if err != nil {
		return TokenResponse{}, fmt.Errorf("failed to issue token: %w", err)
	}

	return TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// Authenticate resolves a bearer token to the user it was issued for. Any
// decode failure and any unresolvable subject collapse into ErrUnauthorized;
// the specific decode kind is retained in the logs only.
func (s *AuthService) Authenticate(token string) (models.User, error) {
	claims, err := s.codec.Decode(token)
	if err != nil {
		log.Warn().Err(err).Msg("Rejected bearer token")
		return models.User{}, auth.ErrUnauthorized
	}

	user, err := s.users.FindByUsername(claims.Subject)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn().Str("subject", claims.Subject).Msg("Rejected token for unknown subject")
			return models.User{}, auth.ErrUnauthorized
		}
		return models.User{}, fmt.Errorf("%w: %v", auth.ErrStoreUnavailable, err)
	}

	return user, nil
}
