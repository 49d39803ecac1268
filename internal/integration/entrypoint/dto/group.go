// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/stockee/backend/internal/domain/entity"
)

// CreateGroupRequest represents the request body for creating a group.
type CreateGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

// InviteEmailRequest represents the request body for emailing an invite link.
type InviteEmailRequest struct {
	Email string `json:"email" binding:"required"`
}

// GroupResponse represents a group in API responses. InviteCode is only
// present for the owner.
type GroupResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	OwnerID    string    `json:"owner_id"`
	InviteCode string    `json:"invite_code,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// GroupSummaryResponse represents a group in list views.
type GroupSummaryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	OwnerID     string    `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	InviteCode  string    `json:"invite_code,omitempty"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// GroupListResponse separates owned groups from joined ones.
type GroupListResponse struct {
	Owned  []GroupSummaryResponse `json:"owned"`
	Joined []GroupSummaryResponse `json:"joined"`
}

// GroupMemberResponse represents a group member in API responses.
type GroupMemberResponse struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joined_at"`
}

// GroupDetailResponse is the full view of a group.
type GroupDetailResponse struct {
	Group      GroupResponse         `json:"group"`
	Owner      UserResponse          `json:"owner"`
	IsOwner    bool                  `json:"is_owner"`
	Members    []GroupMemberResponse `json:"members"`
	Categories []CategoryResponse    `json:"categories"`
}

// JoinGroupResponse represents the response to joining a group.
type JoinGroupResponse struct {
	Group  GroupResponse       `json:"group"`
	Member GroupMemberResponse `json:"member"`
}

// InviteCodeResponse carries a freshly generated invite code.
type InviteCodeResponse struct {
	InviteCode string `json:"invite_code"`
}

// InvitePreviewResponse is shown before joining through an invite code.
type InvitePreviewResponse struct {
	GroupID     string `json:"group_id"`
	GroupName   string `json:"group_name"`
	OwnerName   string `json:"owner_name"`
	MemberCount int    `json:"member_count"`
}

// ToGroupResponse converts a domain Group to a GroupResponse DTO.
func ToGroupResponse(group *entity.Group) GroupResponse {
	return GroupResponse{
		ID:         group.ID.String(),
		Name:       group.Name,
		OwnerID:    group.OwnerID.String(),
		InviteCode: group.InviteCode,
		CreatedAt:  group.CreatedAt,
	}
}

// ToGroupSummaryResponses converts group summaries to DTOs.
func ToGroupSummaryResponses(groups []*entity.GroupSummary) []GroupSummaryResponse {
	responses := make([]GroupSummaryResponse, len(groups))
	for i, g := range groups {
		responses[i] = GroupSummaryResponse{
			ID:          g.ID.String(),
			Name:        g.Name,
			OwnerID:     g.OwnerID.String(),
			OwnerName:   g.OwnerName,
			InviteCode:  g.InviteCode,
			MemberCount: g.MemberCount,
			CreatedAt:   g.CreatedAt,
		}
	}
	return responses
}

// ToGroupMemberResponse converts a domain GroupMember to a DTO.
func ToGroupMemberResponse(member *entity.GroupMember) GroupMemberResponse {
	return GroupMemberResponse{
		ID:       member.ID.String(),
		UserID:   member.UserID.String(),
		Name:     member.UserName,
		Email:    member.UserEmail,
		JoinedAt: member.CreatedAt,
	}
}

// ToGroupDetailResponse converts a domain GroupDetail to a DTO.
func ToGroupDetailResponse(detail *entity.GroupDetail, isOwner bool) GroupDetailResponse {
	members := make([]GroupMemberResponse, len(detail.Members))
	for i, m := range detail.Members {
		members[i] = ToGroupMemberResponse(m)
	}

	return GroupDetailResponse{
		Group:      ToGroupResponse(detail.Group),
		Owner:      ToUserResponse(detail.Owner),
		IsOwner:    isOwner,
		Members:    members,
		Categories: ToCategoryResponses(detail.Categories),
	}
}

// ToInvitePreviewResponse converts a domain InvitePreview to a DTO.
func ToInvitePreviewResponse(preview *entity.InvitePreview) InvitePreviewResponse {
	return InvitePreviewResponse{
		GroupID:     preview.GroupID.String(),
		GroupName:   preview.GroupName,
		OwnerName:   preview.OwnerName,
		MemberCount: preview.MemberCount,
	}
}
