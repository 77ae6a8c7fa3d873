// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	deliverycontext "parkpin/internal/delivery/context"
	"parkpin/internal/domain/entity"
	domainerrors "parkpin/internal/domain/errors"
	"parkpin/internal/domain/repository"
	"parkpin/internal/domain/service"
	"parkpin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	authRepo         repository.AuthRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		authRepo:         params.AuthRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// hashRefreshToken hashes a raw refresh token for storage and lookup.
// Raw tokens never touch the database.
func hashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// RegisterUser orchestrates the complete user registration process.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, findErr := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to find authentication")
		}

		newUser := &entity.User{
			ID:    uuid.New(),
			Name:  input.Name,
			Email: input.Email,
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			ID:             uuid.New(),
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}

		if createErr := authRepo.CreateAuthentication(ctx, newAuth); createErr != nil {
			return errors.Wrap(createErr, "failed to create authentication during registration")
		}

		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	loggedInUser, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(loggedInUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.storeRefreshToken(ctx, srv.refreshTokenRepo, loggedInUser.ID, refreshTokenString); err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

// RefreshToken rotates a valid refresh token: the presented token is consumed
// and a new token pair is issued in the same transaction, so a stolen token
// can be used at most once.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	tokenHash := hashRefreshToken(input.RefreshToken)

	stored, err := srv.refreshTokenRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	if time.Now().After(stored.ExpiresAt) {
		// Expired sessions are cleaned up lazily on their next use.
		if delErr := srv.refreshTokenRepo.DeleteByTokenHash(ctx, tokenHash); delErr != nil {
			srv.log(ctx).Warn("Failed to delete expired refresh token", slog.Any("error", delErr))
		}

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	newAccessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(stored.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		if delErr := refreshRepo.DeleteByTokenHash(ctx, tokenHash); delErr != nil {
			return errors.Wrap(delErr, "failed to consume refresh token")
		}

		return srv.storeRefreshToken(ctx, refreshRepo, stored.UserID, newRefreshToken)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute refresh token transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout invalidates a user's session by deleting their refresh token.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	tokenHash := hashRefreshToken(input.RefreshToken)

	if err := srv.refreshTokenRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// GetProfile retrieves a user's basic account information.
func (srv *userService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid user id")
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// storeRefreshToken hashes and persists a refresh token for a user session.
func (srv *userService) storeRefreshToken(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshTokenString string) error {
	newRefreshToken := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hashRefreshToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := refreshRepo.Create(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}
