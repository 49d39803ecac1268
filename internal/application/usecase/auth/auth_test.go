package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/stockee/backend/internal/application/adapter"
	domainerror "github.com/stockee/backend/internal/domain/error"
	"github.com/stockee/backend/internal/integration/adapters"
	"github.com/stockee/backend/internal/integration/persistence"
	"github.com/stockee/backend/internal/testutil"
)

const testPassword = "correct-horse"

type fixture struct {
	db              *gorm.DB
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	return &fixture{
		db:              db,
		userRepo:        persistence.NewUserRepository(db),
		passwordService: adapters.NewPasswordService(),
		tokenService:    adapters.NewTokenService("test-secret", persistence.NewTokenRepository(db)),
	}
}

func (f *fixture) register(t *testing.T, email string) *RegisterUserOutput {
	t.Helper()
	out, err := NewRegisterUserUseCase(f.userRepo, f.passwordService, f.tokenService).Execute(context.Background(), RegisterUserInput{
		Email:    email,
		Name:     "Alice",
		Password: testPassword,
	})
	if err != nil {
		t.Fatalf("failed to register: %v", err)
	}
	return out
}

func TestRegisterUser(t *testing.T) {
	f := newFixture(t)
	out := f.register(t, "  Alice@Example.com ")

	if out.User.Email != "alice@example.com" {
		t.Errorf("expected normalized email, got %q", out.User.Email)
	}
	if out.AccessToken == "" || out.RefreshToken == "" {
		t.Error("expected a token pair")
	}
	if out.User.PasswordHash == testPassword {
		t.Error("expected password to be hashed")
	}

	_, err := NewRegisterUserUseCase(f.userRepo, f.passwordService, f.tokenService).Execute(context.Background(), RegisterUserInput{
		Email:    "alice@example.com",
		Name:     "Other",
		Password: testPassword,
	})
	if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
	if !errors.Is(err, domainerror.ErrConflict) {
		t.Errorf("expected Conflict kind, got %v", err)
	}
}

func TestRegisterUser_Validation(t *testing.T) {
	f := newFixture(t)
	uc := NewRegisterUserUseCase(f.userRepo, f.passwordService, f.tokenService)

	tests := []struct {
		name    string
		input   RegisterUserInput
		wantErr error
	}{
		{
			name:    "invalid email",
			input:   RegisterUserInput{Email: "not-an-email", Name: "A", Password: testPassword},
			wantErr: domainerror.ErrInvalidEmail,
		},
		{
			name:    "blank name",
			input:   RegisterUserInput{Email: "a@example.com", Name: "  ", Password: testPassword},
			wantErr: domainerror.ErrUserNameRequired,
		},
		{
			name:    "long name",
			input:   RegisterUserInput{Email: "a@example.com", Name: strings.Repeat("n", 101), Password: testPassword},
			wantErr: domainerror.ErrUserNameTooLong,
		},
		{
			name:    "short password",
			input:   RegisterUserInput{Email: "a@example.com", Name: "A", Password: "short"},
			wantErr: domainerror.ErrWeakPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoginUser(t *testing.T) {
	f := newFixture(t)
	f.register(t, "bob@example.com")
	uc := NewLoginUserUseCase(f.userRepo, f.passwordService, f.tokenService)

	out, err := uc.Execute(context.Background(), LoginUserInput{Email: "BOB@example.com", Password: testPassword})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.AccessToken == "" {
		t.Error("expected access token")
	}

	// Unknown email and wrong password are indistinguishable
	_, errWrong := uc.Execute(context.Background(), LoginUserInput{Email: "bob@example.com", Password: "wrong-password"})
	_, errUnknown := uc.Execute(context.Background(), LoginUserInput{Email: "nobody@example.com", Password: testPassword})
	for _, err := range []error{errWrong, errUnknown} {
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	}
	if errWrong.Error() != errUnknown.Error() {
		t.Errorf("expected identical messages, got %q and %q", errWrong, errUnknown)
	}
}

func TestRefreshToken_Rotation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	registered := f.register(t, "carol@example.com")
	uc := NewRefreshTokenUseCase(f.tokenService)

	out, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: registered.RefreshToken})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RefreshToken == registered.RefreshToken {
		t.Error("expected a new refresh token")
	}

	// The old token is single use
	_, err = uc.Execute(ctx, RefreshTokenInput{RefreshToken: registered.RefreshToken})
	if !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken on reuse, got %v", err)
	}

	// Access tokens are not accepted as refresh tokens
	_, err = uc.Execute(ctx, RefreshTokenInput{RefreshToken: out.AccessToken})
	if !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for access token, got %v", err)
	}
}

func TestLogoutUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	registered := f.register(t, "dan@example.com")

	logout := NewLogoutUserUseCase(f.tokenService)
	if err := logout.Execute(ctx, LogoutUserInput{RefreshToken: registered.RefreshToken}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := logout.Execute(ctx, LogoutUserInput{RefreshToken: registered.RefreshToken}); err != nil {
		t.Errorf("expected second logout to succeed, got %v", err)
	}

	_, err := NewRefreshTokenUseCase(f.tokenService).Execute(ctx, RefreshTokenInput{RefreshToken: registered.RefreshToken})
	if !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken after logout, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	registered := f.register(t, "erin@example.com")

	uc := NewUpdateProfileUseCase(f.userRepo)
	user, err := uc.Execute(ctx, UpdateProfileInput{UserID: registered.User.ID, Name: "  Erin  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Name != "Erin" {
		t.Errorf("expected trimmed name, got %q", user.Name)
	}

	stored, err := NewGetProfileUseCase(f.userRepo).Execute(ctx, registered.User.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Name != "Erin" || stored.PasswordHash != registered.User.PasswordHash {
		t.Errorf("expected only the name to change")
	}

	if _, err := uc.Execute(ctx, UpdateProfileInput{UserID: registered.User.ID, Name: ""}); !errors.Is(err, domainerror.ErrUserNameRequired) {
		t.Errorf("expected ErrUserNameRequired, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	registered := f.register(t, "frank@example.com")
	uc := NewChangePasswordUseCase(f.userRepo, f.passwordService, f.tokenService)

	err := uc.Execute(ctx, ChangePasswordInput{
		UserID:          registered.User.ID,
		CurrentPassword: "not-my-password",
		NewPassword:     "new-password-1",
	})
	if !errors.Is(err, domainerror.ErrWrongCurrentPassword) {
		t.Fatalf("expected ErrWrongCurrentPassword, got %v", err)
	}

	err = uc.Execute(ctx, ChangePasswordInput{
		UserID:          registered.User.ID,
		CurrentPassword: testPassword,
		NewPassword:     "new-password-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Existing sessions are revoked
	_, err = NewRefreshTokenUseCase(f.tokenService).Execute(ctx, RefreshTokenInput{RefreshToken: registered.RefreshToken})
	if !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken after password change, got %v", err)
	}

	login := NewLoginUserUseCase(f.userRepo, f.passwordService, f.tokenService)
	if _, err := login.Execute(ctx, LoginUserInput{Email: "frank@example.com", Password: "new-password-1"}); err != nil {
		t.Errorf("expected login with new password, got %v", err)
	}
}
