package usecase

import (
	"context"

	"parkpin/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshTokenInput defines the data required to refresh an access token.
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token"`
}

// LogoutInput defines the data required to log out a session.
type LogoutInput struct {
	RefreshToken string `json:"refresh_token"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User `json:"user"`
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// RefreshOutput returns the rotated token pair.
type RefreshOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	GetProfile(ctx context.Context, userID string) (*entity.User, error)
}
