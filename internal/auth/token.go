package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the claim set carried by an access token.
type Claims struct {
	Extra map[string]any `json:"extra,omitempty"`
	jwt.RegisteredClaims
}

// Codec issues and decodes signed access tokens. It holds the signing secret
// and token lifetime; both are fixed at construction and never mutated.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a Codec signing with the given secret. Tokens expire ttl
// after issuance.
func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return &Codec{secret: secret, ttl: ttl}
}

// Issue creates a signed token for the subject. Extra claims are carried
// through verbatim and returned by Decode.
func (c *Codec) Issue(subject string, extra map[string]any) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		Extra: extra,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode verifies the token signature and expiry and returns its claims.
// A token is expired from the moment now >= exp, boundary included. Failures
// are reported as ErrTokenExpired, ErrMissingSubject or ErrInvalidSignature;
// the last one covers tampered, malformed and wrongly signed tokens alike.
func (c *Codec) Decode(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidSignature
	}
	if !token.Valid {
		return nil, ErrInvalidSignature
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	return claims, nil
}
