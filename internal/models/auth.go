package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RegisterRequest represents the sign-up request payload
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"owner@cornerbloom.com"`
	Password string `json:"password" binding:"required,min=6"`
}

// VerifyEmailRequest confirms the one-time code sent during sign-up
type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email" example:"owner@cornerbloom.com"`
	Code  string `json:"code" binding:"required" example:"482913"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"owner@cornerbloom.com"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	User         User   `json:"user"`
}

// RegisterResponse is returned after sign-up, before email verification
type RegisterResponse struct {
	Message string `json:"message" example:"Verification code sent"`
	Email   string `json:"email" example:"owner@cornerbloom.com"`
}

// RefreshTokenRequest represents the refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the logout request
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ChangePasswordRequest represents a request to change the user's own password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// JWTClaims represents the JWT claims
type JWTClaims struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	TokenVersion uint   `json:"token_version"`
	jwt.RegisteredClaims
}

// TokenInfo represents token information
type TokenInfo struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	TokenVersion uint      `json:"token_version"`
	ExpiresAt    time.Time `json:"expires_at"`
}
