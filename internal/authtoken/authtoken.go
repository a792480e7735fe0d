// Package authtoken issues and validates the JWTs guarding the HTTP
// surface's mutation endpoints. Unlike a user-facing auth system there is
// only one token type (access), scoped to a single agent ID.
package authtoken

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims identifies the agent a token authorizes mutation calls for.
type Claims struct {
	AgentID string `json:"agentId"`
	jwt.RegisteredClaims
}

var (
	ErrInvalid = errors.New("authtoken: invalid")
	ErrExpired = errors.New("authtoken: expired")
)

const issuer = "emotion-engine"

// Issuer signs and parses access tokens for one agent namespace.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// New builds an Issuer. A zero ttl defaults to 15 minutes; a negative ttl
// is kept as-is so callers (tests, mainly) can mint already-expired tokens.
func New(secret string, ttl time.Duration) *Issuer {
	if ttl == 0 {
		ttl = 15 * time.Minute
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a new access token scoped to agentID.
func (i *Issuer) Issue(agentID string) (string, error) {
	if len(i.secret) == 0 {
		return "", ErrInvalid
	}
	now := time.Now().UTC()
	claims := Claims{
		AgentID: agentID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   agentID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Parse validates tokenString and returns its claims.
func (i *Issuer) Parse(tokenString string) (Claims, error) {
	if len(i.secret) == 0 {
		return Claims{}, ErrInvalid
	}
	if strings.TrimSpace(tokenString) == "" {
		return Claims{}, ErrInvalid
	}

	var claims Claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrInvalid
	}
	if !isValid(claims) {
		return Claims{}, ErrInvalid
	}
	return claims, nil
}

func isValid(claims Claims) bool {
	if strings.TrimSpace(claims.AgentID) == "" {
		return false
	}
	if claims.Subject != claims.AgentID {
		return false
	}
	return claims.Issuer == issuer
}
