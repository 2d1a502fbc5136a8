// ABOUTME: Auth request/response models for bearer token login
// ABOUTME: Defines login API contracts and the signed token claim set

package models

import "github.com/golang-jwt/jwt/v5"

// LoginRequest represents credentials for authentication
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
}

// TokenClaims is the payload embedded in every access token.
// The subject (sub) carries the username.
type TokenClaims struct {
	jwt.RegisteredClaims
}

// Username returns the token subject
func (c *TokenClaims) Username() string {
	return c.Subject
}
