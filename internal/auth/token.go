package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Tokens issues and verifies the signed tokens the service hands out:
// access tokens for authenticated requests and short-lived family invites.
type Tokens struct {
	secret    []byte
	accessTTL time.Duration
	inviteTTL time.Duration
}

func NewTokens(secret string, accessTTL, inviteTTL time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), accessTTL: accessTTL, inviteTTL: inviteTTL}
}

type accessClaims struct {
	jwt.RegisteredClaims
}

func (t *Tokens) IssueAccess(userID uuid.UUID) (string, error) {
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("signing access token: %w", err)
	}

	return signed, nil
}

// ParseAccess returns the user id the token was issued for.
func (t *Tokens) ParseAccess(raw string) (uuid.UUID, error) {
	var claims accessClaims

	token, err := jwt.ParseWithClaims(raw, &claims, t.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return id, nil
}

type inviteClaims struct {
	FamilyID string `json:"family_id"`
	jwt.RegisteredClaims
}

// IssueInvite creates a token that lets its bearer join the given family.
func (t *Tokens) IssueInvite(familyID uuid.UUID) (string, error) {
	claims := inviteClaims{
		FamilyID: familyID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.inviteTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("signing invite token: %w", err)
	}

	return signed, nil
}

func (t *Tokens) ParseInvite(raw string) (uuid.UUID, error) {
	var claims inviteClaims

	token, err := jwt.ParseWithClaims(raw, &claims, t.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.FamilyID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return id, nil
}

func (t *Tokens) keyFunc(*jwt.Token) (any, error) {
	return t.secret, nil
}
