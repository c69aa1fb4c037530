package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// RepForgeClaims represents custom JWT claims for RepForge auth
type RepForgeClaims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
