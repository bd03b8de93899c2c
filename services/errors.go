package services

import "errors"

// Common service-level errors
var (
	// Auth errors
	ErrInvalidAuthCode = errors.New("invalid authorization code")
	ErrInvalidToken    = errors.New("invalid token")
	ErrInvalidUserInfo = errors.New("invalid user information")
	ErrSessionNotFound = errors.New("session not found")
	ErrUnauthorized    = errors.New("unauthorized access")

	// Recipe errors
	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrForbidden       = errors.New("only the owner can modify this recipe")
	ErrInvalidCategory = errors.New("invalid category")
	ErrTitleRequired   = errors.New("title is required")

	// Tag errors
	ErrTagNotFound      = errors.New("tag not found")
	ErrTagAlreadyExists = errors.New("tag already exists")
)
