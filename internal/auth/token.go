package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	model "auction-backend/internal/models"
)

// Claims carries the authenticated caller's identity inside the token.
// Eligibility fields (deposit status etc.) are snapshots from login time;
// authorization decisions reload the user from the store.
type Claims struct {
	UserID        string `json:"user_id"`
	Role          string `json:"role"`
	Email         string `json:"email,omitempty"`
	CompanyName   string `json:"company_name,omitempty"`
	DepositStatus string `json:"deposit_status,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 login tokens
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer with the given signing secret and
// token lifetime
func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue creates a signed token for the given user, expiring ttl after now
func (ti *TokenIssuer) Issue(user model.User, now time.Time) (string, error) {
	claims := Claims{
		UserID:        user.UserID,
		Role:          user.Role,
		Email:         user.Email,
		CompanyName:   user.CompanyName,
		DepositStatus: user.DepositStatus,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("issue token for user %s: %w", user.UserID, err)
	}
	return signed, nil
}

// Parse verifies a token string and returns its claims
func (ti *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return ti.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("parse token: claims are invalid")
	}
	return claims, nil
}
