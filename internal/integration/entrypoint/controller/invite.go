// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stockee/backend/internal/application/usecase/group"
	"github.com/stockee/backend/internal/infra/metrics"
	"github.com/stockee/backend/internal/integration/entrypoint/dto"
)

// InviteController handles invite-code endpoints.
type InviteController struct {
	previewUseCase *group.GetInvitePreviewUseCase
	joinUseCase    *group.JoinGroupUseCase
}

// NewInviteController creates a new invite controller instance.
func NewInviteController(previewUseCase *group.GetInvitePreviewUseCase, joinUseCase *group.JoinGroupUseCase) *InviteController {
	return &InviteController{
		previewUseCase: previewUseCase,
		joinUseCase:    joinUseCase,
	}
}

// Preview handles GET /invites/:code requests.
func (c *InviteController) Preview(ctx *gin.Context) {
	if _, ok := requireUserID(ctx); !ok {
		return
	}

	preview, err := c.previewUseCase.Execute(ctx.Request.Context(), group.GetInvitePreviewInput{
		InviteCode: ctx.Param("code"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvitePreviewResponse(preview))
}

// Join handles POST /invites/:code/join requests.
func (c *InviteController) Join(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.joinUseCase.Execute(ctx.Request.Context(), group.JoinGroupInput{
		InviteCode: ctx.Param("code"),
		UserID:     userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	metrics.GroupJoins.Inc()

	ctx.JSON(http.StatusOK, dto.JoinGroupResponse{
		Group:  dto.ToGroupResponse(output.Group),
		Member: dto.ToGroupMemberResponse(output.Member),
	})
}
