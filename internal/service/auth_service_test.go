package service_test

import (
	"context"
	"testing"

	"github.com/dom/storefront-api/internal/domain"
	"github.com/dom/storefront-api/internal/repository/postgres"
	"github.com/dom/storefront-api/internal/service"
	"github.com/dom/storefront-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, service.NewTokenIssuer(cfg), testutil.TestHasher())
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.Credentials
		setup   func()
		wantErr error
	}{
		{
			name:  "successful registration",
			input: service.Credentials{Email: "Jane.Doe@Example.com ", Password: "password123"},
		},
		{
			name:  "duplicate email",
			input: service.Credentials{Email: "taken@example.com", Password: "password123"},
			setup: func() {
				testutil.NewUserBuilder().WithEmail("taken@example.com").Build(t, testDB.DB)
			},
			wantErr: service.ErrEmailTaken,
		},
		{
			name:  "duplicate email differing in case",
			input: service.Credentials{Email: "TAKEN@example.com", Password: "password123"},
			setup: func() {
				testutil.NewUserBuilder().WithEmail("taken@example.com").Build(t, testDB.DB)
			},
			wantErr: service.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			result, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, service.ErrConflict)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "jane.doe@example.com", result.User.Email)
			assert.Equal(t, "jane.doe", result.User.Name)
			assert.Equal(t, domain.DefaultAvatarPath, result.User.AvatarPath)
			assert.False(t, result.User.IsAdmin)
			assert.NotEmpty(t, result.AccessToken)
			assert.NotEmpty(t, result.RefreshToken)

			stored, err := repos.User.GetByEmail(ctx, "jane.doe@example.com")
			require.NoError(t, err)
			assert.NotEqual(t, tt.input.Password, stored.PasswordHash)
			assert.Contains(t, stored.PasswordHash, "$argon2id$")
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, service.NewTokenIssuer(cfg), testutil.TestHasher())
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("login@example.com").
		WithPassword("correctpassword").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.Credentials
		wantErr error
	}{
		{
			name:  "successful login",
			input: service.Credentials{Email: user.Email, Password: rawPassword},
		},
		{
			name:  "email is case insensitive",
			input: service.Credentials{Email: "LOGIN@example.com", Password: rawPassword},
		},
		{
			name:    "wrong password",
			input:   service.Credentials{Email: user.Email, Password: "wrongpassword"},
			wantErr: service.ErrInvalidPassword,
		},
		{
			name:    "unknown email",
			input:   service.Credentials{Email: "nobody@example.com", Password: rawPassword},
			wantErr: service.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.Login(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, result.User.ID)

			userID, err := authService.Authenticate(result.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, user.ID, userID)
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, service.NewTokenIssuer(cfg), testutil.TestHasher())
	ctx := context.Background()

	user, password := testutil.NewUserBuilder().Build(t, testDB.DB)
	login, err := authService.Login(ctx, service.Credentials{Email: user.Email, Password: password})
	require.NoError(t, err)

	t.Run("valid refresh token", func(t *testing.T) {
		result, err := authService.Refresh(ctx, login.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, result.User.ID)
		assert.NotEqual(t, login.AccessToken, result.AccessToken)
		assert.NotEqual(t, login.RefreshToken, result.RefreshToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := authService.Refresh(ctx, "garbage")
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("user no longer exists", func(t *testing.T) {
		testDB.Truncate(t)
		_, err := authService.Refresh(ctx, login.RefreshToken)
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}
