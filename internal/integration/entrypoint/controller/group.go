// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stockee/backend/internal/application/usecase/group"
	domainerror "github.com/stockee/backend/internal/domain/error"
	"github.com/stockee/backend/internal/integration/entrypoint/dto"
)

// GroupController handles group endpoints.
type GroupController struct {
	createUseCase         *group.CreateGroupUseCase
	listUseCase           *group.ListGroupsUseCase
	getUseCase            *group.GetGroupUseCase
	deleteUseCase         *group.DeleteGroupUseCase
	leaveUseCase          *group.LeaveGroupUseCase
	removeMemberUseCase   *group.RemoveMemberUseCase
	regenerateCodeUseCase *group.RegenerateInviteCodeUseCase
	sendInvitationUseCase *group.SendInvitationUseCase
}

// NewGroupController creates a new group controller instance.
func NewGroupController(
	createUseCase *group.CreateGroupUseCase,
	listUseCase *group.ListGroupsUseCase,
	getUseCase *group.GetGroupUseCase,
	deleteUseCase *group.DeleteGroupUseCase,
	leaveUseCase *group.LeaveGroupUseCase,
	removeMemberUseCase *group.RemoveMemberUseCase,
	regenerateCodeUseCase *group.RegenerateInviteCodeUseCase,
	sendInvitationUseCase *group.SendInvitationUseCase,
) *GroupController {
	return &GroupController{
		createUseCase:         createUseCase,
		listUseCase:           listUseCase,
		getUseCase:            getUseCase,
		deleteUseCase:         deleteUseCase,
		leaveUseCase:          leaveUseCase,
		removeMemberUseCase:   removeMemberUseCase,
		regenerateCodeUseCase: regenerateCodeUseCase,
		sendInvitationUseCase: sendInvitationUseCase,
	}
}

// Create handles POST /groups requests.
func (c *GroupController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingGroupFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), group.CreateGroupInput{
		Name:    req.Name,
		OwnerID: userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGroupResponse(output.Group))
}

// List handles GET /groups requests.
func (c *GroupController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), group.ListGroupsInput{
		UserID: userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GroupListResponse{
		Owned:  dto.ToGroupSummaryResponses(output.Owned),
		Joined: dto.ToGroupSummaryResponses(output.Joined),
	})
}

// Get handles GET /groups/:id requests.
func (c *GroupController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), group.GetGroupInput{
		GroupID: groupID,
		UserID:  userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGroupDetailResponse(output.Detail, output.IsOwner))
}

// Delete handles DELETE /groups/:id requests.
func (c *GroupController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), group.DeleteGroupInput{
		GroupID:     groupID,
		RequesterID: userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Leave handles POST /groups/:id/leave requests.
func (c *GroupController) Leave(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	err := c.leaveUseCase.Execute(ctx.Request.Context(), group.LeaveGroupInput{
		GroupID: groupID,
		UserID:  userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// RemoveMember handles DELETE /groups/:id/members/:member_id requests.
func (c *GroupController) RemoveMember(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	memberID, ok := parseUUIDParam(ctx, "member_id")
	if !ok {
		return
	}

	err := c.removeMemberUseCase.Execute(ctx.Request.Context(), group.RemoveMemberInput{
		GroupID:     groupID,
		MemberID:    memberID,
		RequesterID: userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// RegenerateInviteCode handles POST /groups/:id/invite-code requests.
func (c *GroupController) RegenerateInviteCode(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.regenerateCodeUseCase.Execute(ctx.Request.Context(), group.RegenerateInviteCodeInput{
		GroupID:     groupID,
		RequesterID: userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InviteCodeResponse{
		InviteCode: output.InviteCode,
	})
}

// SendInvitation handles POST /groups/:id/invite-email requests.
func (c *GroupController) SendInvitation(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.InviteEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingGroupFields))
		return
	}

	err := c.sendInvitationUseCase.Execute(ctx.Request.Context(), group.SendInvitationInput{
		GroupID:     groupID,
		RequesterID: userID,
		Email:       req.Email,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.MessageResponse{
		Message: "Invitation queued",
	})
}
