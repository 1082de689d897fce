package api

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ericogr/duel-arena/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// actorClaims identifies a duel participant. Subject carries the numeric actor id.
type actorClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 actor tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer uses secret when set; otherwise an in-memory secret is
// generated, so tokens do not survive a restart.
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		buf := make([]byte, 32)
		if _, err := crand.Read(buf); err != nil {
			return nil, errors.New("failed to generate dev session secret")
		}
		logging.Warn("SESSION_SECRET not set; using an ephemeral signing secret", nil)
		return &TokenIssuer{secret: buf, ttl: ttl}, nil
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue mints a token for actorID with a display name.
func (ti *TokenIssuer) Issue(actorID int64, name string) (string, error) {
	now := time.Now()
	claims := actorClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(actorID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.secret)
}

// Parse validates a token and returns the actor id and display name.
func (ti *TokenIssuer) Parse(token string) (int64, string, error) {
	var claims actorClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return ti.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return 0, "", err
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid subject %q: %w", claims.Subject, err)
	}
	return id, claims.Name, nil
}
