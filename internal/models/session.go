package models

import "github.com/golang-jwt/jwt/v5"

// Session is the Redis-backed record behind an issued token.
type Session struct {
	SessionID      string   `json:"sessionId"`
	UserID         string   `json:"userId"`
	Username       string   `json:"username"`
	Role           UserRole `json:"role"`
	IsValid        bool     `json:"isValid"`
	CreatedAt      int      `json:"createdAt"`
	LastActivityAt int      `json:"lastActivityAt"`
	UserAgent      string   `json:"userAgent"`
}

type Claims struct {
	jwt.RegisteredClaims
	SessionID string   `json:"sessionId"`
	UserID    string   `json:"userId"`
	Username  string   `json:"username"`
	Role      UserRole `json:"role"`
}
