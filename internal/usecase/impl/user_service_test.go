package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"parkpin/internal/domain/entity"
	domainerrors "parkpin/internal/domain/errors"
	"parkpin/internal/domain/repository"
	mockRepo "parkpin/internal/mocks/repository"
	mockService "parkpin/internal/mocks/service"
	"parkpin/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	repoFactory      *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockService.MockPasswordHasher
	tokenService     *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		AuthRepo:         authRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return userServiceFixtures{
		service:          service,
		txManager:        txManager,
		repoFactory:      repoFactory,
		userRepo:         userRepo,
		authRepo:         authRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

// expectTransaction routes txManager.Execute through the mocked factory.
func (fx userServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "secret-password",
	}

	fx.hasher.EXPECT().
		Hash("secret-password").
		Return("hashed-password", nil)

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.authRepo)

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "alex@example.com").
		Return(nil, repository.ErrAuthNotFound)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	fx.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
		Run(func(_ context.Context, auth *entity.Authentication) {
			assert.Equal(t, entity.ProviderTypeEmail, auth.Provider)
			assert.Equal(t, "alex@example.com", auth.ProviderUserID)
			assert.Equal(t, "hashed-password", auth.PasswordHash)
		}).
		Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "Alex", output.User.Name)
	assert.Equal(t, "alex@example.com", output.User.Email)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "secret-password",
	}

	fx.hasher.EXPECT().
		Hash("secret-password").
		Return("hashed-password", nil)

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.authRepo)

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "alex@example.com").
		Return(&entity.Authentication{}, nil)

	output, err := fx.service.RegisterUser(ctx, input)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_RegisterUser_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "secret-password",
	}

	fx.hasher.EXPECT().
		Hash("secret-password").
		Return("", assert.AnError)

	output, err := fx.service.RegisterUser(ctx, input)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Name: "Alex", Email: "alex@example.com"}
	authRecord := &entity.Authentication{
		ID:             uuid.New(),
		UserID:         userID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: "alex@example.com",
		PasswordHash:   "hashed-password",
	}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "alex@example.com").
		Return(authRecord, nil)

	fx.hasher.EXPECT().
		Check("secret-password", "hashed-password").
		Return(true)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	fx.tokenService.EXPECT().
		GenerateTokens(userID).
		Return("access-token", "refresh-token", nil)

	fx.tokenService.EXPECT().
		GetRefreshTokenDuration().
		Return(7 * 24 * time.Hour)

	fx.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(_ context.Context, token *entity.RefreshToken) {
			assert.Equal(t, userID, token.UserID)
			assert.Equal(t, hashRefreshToken("refresh-token"), token.TokenHash)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alex@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	authRecord := &entity.Authentication{
		UserID:       uuid.New(),
		PasswordHash: "hashed-password",
	}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "alex@example.com").
		Return(authRecord, nil)

	fx.hasher.EXPECT().
		Check("wrong-password", "hashed-password").
		Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alex@example.com",
		Password: "wrong-password",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ghost@example.com").
		Return(nil, repository.ErrAuthNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_RefreshToken_RotatesToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	oldHash := hashRefreshToken("old-refresh-token")
	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: oldHash,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.refreshTokenRepo.EXPECT().
		FindByTokenHash(ctx, oldHash).
		Return(stored, nil)

	fx.tokenService.EXPECT().
		GenerateTokens(userID).
		Return("new-access-token", "new-refresh-token", nil)

	fx.tokenService.EXPECT().
		GetRefreshTokenDuration().
		Return(7 * 24 * time.Hour)

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo)

	fx.refreshTokenRepo.EXPECT().
		DeleteByTokenHash(ctx, oldHash).
		Return(nil)

	fx.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(_ context.Context, token *entity.RefreshToken) {
			assert.Equal(t, hashRefreshToken("new-refresh-token"), token.TokenHash)
			assert.Equal(t, userID, token.UserID)
		}).
		Return(nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{
		RefreshToken: "old-refresh-token",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
	assert.Equal(t, "new-refresh-token", output.RefreshToken)
}

func TestUserService_RefreshToken_Expired(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	tokenHash := hashRefreshToken("stale-token")
	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.refreshTokenRepo.EXPECT().
		FindByTokenHash(ctx, tokenHash).
		Return(stored, nil)

	fx.refreshTokenRepo.EXPECT().
		DeleteByTokenHash(ctx, tokenHash).
		Return(nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{
		RefreshToken: "stale-token",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_RefreshToken_Unknown(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	tokenHash := hashRefreshToken("forged-token")

	fx.refreshTokenRepo.EXPECT().
		FindByTokenHash(ctx, tokenHash).
		Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{
		RefreshToken: "forged-token",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	tokenHash := hashRefreshToken("session-token")

	fx.refreshTokenRepo.EXPECT().
		DeleteByTokenHash(ctx, tokenHash).
		Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "session-token"})
	require.NoError(t, err)
}

func TestUserService_GetProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Name: "Alex", Email: "alex@example.com"}

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	got, err := fx.service.GetProfile(ctx, userID.String())
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_GetProfile_InvalidID(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.GetProfile(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, userID.String())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
