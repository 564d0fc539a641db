// Package token issues and validates signed bearer credentials.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired means the token was valid once but its lifetime has passed.
	ErrExpired = errors.New("token expired")
	// ErrInvalid covers malformed tokens and bad signatures.
	ErrInvalid = errors.New("token invalid")
)

type claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Issuer signs time-limited HS256 tokens carrying the user id as their only claim.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for the given user. Expiry is fixed at issuance.
func (i *Issuer) Issue(userID snowflake.ID) (string, error) {
	now := time.Now().UTC()
	c := claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.secret)
}

// Validate verifies signature and expiry and returns the embedded user id.
// Expired and malformed tokens fail with distinct errors so callers can log
// the difference even when both surface as 401.
func (i *Issuer) Validate(raw string) (snowflake.ID, error) {
	parsed, err := jwt.ParseWithClaims(raw, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpired
		}
		return 0, ErrInvalid
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return 0, ErrInvalid
	}
	id, err := snowflake.ParseString(c.UserID)
	if err != nil {
		return 0, ErrInvalid
	}
	return id, nil
}
