package adapters

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/stockee/backend/internal/domain/error"
	"github.com/stockee/backend/internal/integration/persistence"
	"github.com/stockee/backend/internal/testutil"
)

func TestPasswordService(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.HashPassword("pantry-staples")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.VerifyPassword(hash, "pantry-staples"); err != nil {
		t.Errorf("expected password to verify, got %v", err)
	}
	if err := svc.VerifyPassword(hash, "wrong"); err == nil {
		t.Error("expected mismatch")
	}
}

func TestPasswordService_Strength(t *testing.T) {
	svc := NewPasswordService()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "too short", password: "1234567", wantErr: true},
		{name: "minimum", password: "12345678", wantErr: false},
		{name: "bcrypt limit", password: strings.Repeat("a", 72), wantErr: false},
		{name: "over bcrypt limit", password: strings.Repeat("a", 73), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ValidatePasswordStrength(tt.password)
			if tt.wantErr && !errors.Is(err, domainerror.ErrWeakPassword) {
				t.Errorf("expected ErrWeakPassword, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "token")
	svc := NewTokenServiceWithDurations("secret", persistence.NewTokenRepository(db), time.Minute, time.Hour)

	pair, err := svc.GenerateTokenPair(ctx, user.ID, user.Email, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.ExpiresIn != time.Minute {
		t.Errorf("expected configured access lifetime, got %v", pair.ExpiresIn)
	}

	claims, err := svc.ValidateAccessToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Errorf("unexpected claims %+v", claims)
	}

	if _, err := svc.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
		t.Error("expected refresh token to be rejected as access token")
	}
	if _, err := svc.ValidateRefreshToken(ctx, pair.RefreshToken); err != nil {
		t.Errorf("expected refresh token to validate, got %v", err)
	}

	if err := svc.InvalidateAllUserTokens(ctx, user.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.ValidateRefreshToken(ctx, pair.RefreshToken); err == nil {
		t.Error("expected revoked refresh token to be rejected")
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := persistence.NewTokenRepository(db)

	pair, err := NewTokenService("one", repo).GenerateTokenPair(ctx, uuid.New(), "a@example.com", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewTokenService("two", repo).ValidateAccessToken(ctx, pair.AccessToken); err == nil {
		t.Error("expected signature mismatch to be rejected")
	}
}
