package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/fortune-club/internal/domain/identity"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Role  string `json:"role"`
	Staff bool   `json:"staff"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 access tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *Tokens) Issue(user *models.User) (string, error) {
	now := t.now()
	actor := identity.ActorFor(user)

	claims := Claims{
		Role:  actor.RoleName,
		Staff: actor.Privileged,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userIDString(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse verifies the token and returns the actor it was issued for.
func (t *Tokens) Parse(raw string) (identity.Actor, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil || !token.Valid {
		return identity.Actor{}, ErrInvalidToken
	}

	id, ok := parseUserID(claims.Subject)
	if !ok {
		return identity.Actor{}, ErrInvalidToken
	}

	return identity.Actor{
		UserID:     id,
		RoleName:   claims.Role,
		Privileged: claims.Staff,
	}, nil
}
