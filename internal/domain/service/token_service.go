package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are read from access tokens minted by the identity provider. The
// engine only accepts tokens whose Roles include the retailer role.
type Claims struct {
	AccountID uuid.UUID `json:"account_id"`
	Roles     []string  `json:"roles,omitempty"`
	Type      string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService verifies access tokens; the engine never mints them.
type TokenService interface {
	ValidateToken(tokenString string) (*Claims, error)
}
