// Package group contains group-related use cases.
package group

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/stockee/backend/internal/application/adapter"
	domainerror "github.com/stockee/backend/internal/domain/error"
)

const (
	// maxGroupNameLength is the longest group name accepted, in characters.
	maxGroupNameLength = 50
	// inviteCodeBytes yields a 16 character hex invite code.
	inviteCodeBytes = 8
	// maxInviteCodeAttempts bounds collision retries when generating a code.
	maxInviteCodeAttempts = 5
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// validateGroupName trims and validates a group name.
func validateGroupName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewGroupError(
			domainerror.ErrCodeGroupNameRequired,
			"group name is required",
			domainerror.ErrGroupNameRequired,
		)
	}
	if utf8.RuneCountInString(name) > maxGroupNameLength {
		return "", domainerror.NewGroupError(
			domainerror.ErrCodeGroupNameTooLong,
			fmt.Sprintf("group name must be %d characters or less", maxGroupNameLength),
			domainerror.ErrGroupNameTooLong,
		)
	}
	return name, nil
}

// generateInviteCode returns a random invite code no group currently holds.
func generateInviteCode(ctx context.Context, groupRepo adapter.GroupRepository) (string, error) {
	for attempt := 0; attempt < maxInviteCodeAttempts; attempt++ {
		buf := make([]byte, inviteCodeBytes)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate invite code: %w", err)
		}
		code := hex.EncodeToString(buf)

		exists, err := groupRepo.InviteCodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check invite code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique invite code after %d attempts", maxInviteCodeAttempts)
}
