// Package auth contains authentication and account use cases.
package auth

import (
	"regexp"
	"strings"
	"unicode/utf8"

	domainerror "github.com/stockee/backend/internal/domain/error"
)

const maxUserNameLength = 100

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// normalizeEmail lowercases and trims an email address.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}
	return nil
}

func validateUserName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewAuthError(
			domainerror.ErrCodeNameRequired,
			"name is required",
			domainerror.ErrUserNameRequired,
		)
	}
	if utf8.RuneCountInString(name) > maxUserNameLength {
		return "", domainerror.NewAuthError(
			domainerror.ErrCodeNameTooLong,
			"name must be at most 100 characters",
			domainerror.ErrUserNameTooLong,
		)
	}
	return name, nil
}

func invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)
}

func invalidToken(message string) error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidToken,
		message,
		domainerror.ErrInvalidToken,
	)
}
