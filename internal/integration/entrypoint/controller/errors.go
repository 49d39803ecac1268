// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/stockee/backend/internal/domain/error"
	"github.com/stockee/backend/internal/integration/entrypoint/dto"
	"github.com/stockee/backend/internal/integration/entrypoint/middleware"
)

// codedError is implemented by every domain error type carrying a stable code.
type codedError interface {
	error
	ErrorCode() string
}

// statusForError maps an error kind to its HTTP status.
func statusForError(err error) int {
	// Credential and token failures are authentication, not authorization
	if errors.Is(err, domainerror.ErrInvalidCredentials) || errors.Is(err, domainerror.ErrInvalidToken) {
		return http.StatusUnauthorized
	}

	switch domainerror.Kind(err) {
	case domainerror.ErrAccessDenied:
		return http.StatusForbidden
	case domainerror.ErrNotFound:
		return http.StatusNotFound
	case domainerror.ErrConflict:
		return http.StatusConflict
	case domainerror.ErrInvalidInput:
		return http.StatusBadRequest
	case domainerror.ErrInvariantViolation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error response for err.
func respondError(ctx *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(ctx.Request.Context(), "Request failed",
			"error", err,
			"path", ctx.FullPath(),
			"request_id", ctx.GetString(string(middleware.RequestIDKey)),
		)
		ctx.JSON(status, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	response := dto.ErrorResponse{Error: err.Error()}
	var coded codedError
	if errors.As(err, &coded) {
		response.Code = coded.ErrorCode()
		response.Error, response.Details = splitMessage(coded)
	}
	ctx.JSON(status, response)
}

// splitMessage separates a coded error's message from the sentinel it wraps.
func splitMessage(coded codedError) (message, details string) {
	full := coded.Error()
	if inner := errors.Unwrap(coded); inner != nil {
		suffix := ": " + inner.Error()
		if len(full) > len(suffix) && full[len(full)-len(suffix):] == suffix {
			return full[:len(full)-len(suffix)], inner.Error()
		}
	}
	return full, ""
}

// requireUserID returns the authenticated user or writes 401.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// parseUUIDParam parses a path parameter or writes 400.
func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		badRequest(ctx, "Invalid "+name, "")
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalUUIDQuery parses an optional query parameter or writes 400.
func parseOptionalUUIDQuery(ctx *gin.Context, name string) (*uuid.UUID, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		badRequest(ctx, "Invalid "+name, "")
		return nil, false
	}
	return &id, true
}

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func badRequest(ctx *gin.Context, message, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
