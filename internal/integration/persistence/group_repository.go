// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/domain/entity"
	domainerror "github.com/stockee/backend/internal/domain/error"
	"github.com/stockee/backend/internal/integration/persistence/model"
)

// groupRepository implements the adapter.GroupRepository interface.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository instance.
func NewGroupRepository(db *gorm.DB) adapter.GroupRepository {
	return &groupRepository{
		db: db,
	}
}

// CreateGroup creates a new group in the database.
func (r *groupRepository) CreateGroup(ctx context.Context, group *entity.Group) error {
	return r.db.WithContext(ctx).Create(model.GroupFromEntity(group)).Error
}

// FindGroupByID retrieves a group by its ID.
func (r *groupRepository) FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	return r.findGroup(ctx, "id = ?", id)
}

// FindGroupByInviteCode retrieves the group currently holding an invite code.
func (r *groupRepository) FindGroupByInviteCode(ctx context.Context, code string) (*entity.Group, error) {
	return r.findGroup(ctx, "invite_code = ?", code)
}

func (r *groupRepository) findGroup(ctx context.Context, query string, arg any) (*entity.Group, error) {
	var groupModel model.GroupModel
	result := r.db.WithContext(ctx).Where(query, arg).First(&groupModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return groupModel.ToEntity(), nil
}

// InviteCodeExists reports whether any group holds the code.
func (r *groupRepository) InviteCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.GroupModel{}).Where("invite_code = ?", code).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// UpdateInviteCode replaces the invite code of a group.
func (r *groupRepository) UpdateInviteCode(ctx context.Context, groupID uuid.UUID, code string) error {
	return r.db.WithContext(ctx).
		Model(&model.GroupModel{}).
		Where("id = ?", groupID).
		Updates(map[string]any{
			"invite_code": code,
			"updated_at":  time.Now().UTC(),
		}).Error
}

// DeleteGroup removes a group together with its members, categories and items.
func (r *groupRepository) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&model.ItemModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", id).Delete(&model.CategoryModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", id).Delete(&model.GroupMemberModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.GroupModel{}).Error
	})
}

// groupSummaryRow is the scan target of the group list queries.
type groupSummaryRow struct {
	ID          uuid.UUID
	Name        string
	OwnerID     uuid.UUID
	OwnerName   string
	InviteCode  string
	MemberCount int
	CreatedAt   time.Time
}

func (row groupSummaryRow) toEntity() *entity.GroupSummary {
	return &entity.GroupSummary{
		ID:          row.ID,
		Name:        row.Name,
		OwnerID:     row.OwnerID,
		OwnerName:   row.OwnerName,
		InviteCode:  row.InviteCode,
		MemberCount: row.MemberCount,
		CreatedAt:   row.CreatedAt,
	}
}

// FindOwnedGroups lists groups owned by the user, newest first.
func (r *groupRepository) FindOwnedGroups(ctx context.Context, userID uuid.UUID) ([]*entity.GroupSummary, error) {
	var results []groupSummaryRow

	query := `
		SELECT
			g.id,
			g.name,
			g.owner_id,
			u.name AS owner_name,
			g.invite_code,
			(SELECT COUNT(*) FROM group_members gm WHERE gm.group_id = g.id) + 1 AS member_count,
			g.created_at
		FROM groups g
		INNER JOIN users u ON u.id = g.owner_id
		WHERE g.owner_id = ?
		ORDER BY g.created_at DESC
	`

	if err := r.db.WithContext(ctx).Raw(query, userID).Scan(&results).Error; err != nil {
		return nil, err
	}

	groups := make([]*entity.GroupSummary, len(results))
	for i, res := range results {
		groups[i] = res.toEntity()
	}
	return groups, nil
}

// FindJoinedGroups lists groups the user joined as a member, most recently joined first.
func (r *groupRepository) FindJoinedGroups(ctx context.Context, userID uuid.UUID) ([]*entity.GroupSummary, error) {
	var results []groupSummaryRow

	query := `
		SELECT
			g.id,
			g.name,
			g.owner_id,
			u.name AS owner_name,
			g.invite_code,
			(SELECT COUNT(*) FROM group_members gm2 WHERE gm2.group_id = g.id) + 1 AS member_count,
			g.created_at
		FROM groups g
		INNER JOIN group_members gm ON gm.group_id = g.id
		INNER JOIN users u ON u.id = g.owner_id
		WHERE gm.user_id = ?
		ORDER BY gm.created_at DESC
	`

	if err := r.db.WithContext(ctx).Raw(query, userID).Scan(&results).Error; err != nil {
		return nil, err
	}

	groups := make([]*entity.GroupSummary, len(results))
	for i, res := range results {
		groups[i] = res.toEntity()
	}
	return groups, nil
}

// CountMembers counts membership rows of a group.
func (r *groupRepository) CountMembers(ctx context.Context, groupID uuid.UUID) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.GroupMemberModel{}).Where("group_id = ?", groupID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// CreateMember adds a new member to a group. The (group_id, user_id) unique
// index turns a concurrent second join into domainerror.ErrUserAlreadyMember.
func (r *groupRepository) CreateMember(ctx context.Context, member *entity.GroupMember) error {
	err := r.db.WithContext(ctx).Create(model.GroupMemberFromEntity(member)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerror.ErrUserAlreadyMember
	}
	return err
}

// FindMemberByID retrieves a group member by its ID.
func (r *groupRepository) FindMemberByID(ctx context.Context, id uuid.UUID) (*entity.GroupMember, error) {
	var memberModel model.GroupMemberModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&memberModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return memberModel.ToEntity(), nil
}

// FindMemberByGroupAndUser retrieves a member by group and user ID.
func (r *groupRepository) FindMemberByGroupAndUser(ctx context.Context, groupID, userID uuid.UUID) (*entity.GroupMember, error) {
	var memberModel model.GroupMemberModel
	result := r.db.WithContext(ctx).Where("group_id = ? AND user_id = ?", groupID, userID).First(&memberModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return memberModel.ToEntity(), nil
}

// FindMembersByGroupID retrieves all members of a group with user information.
func (r *groupRepository) FindMembersByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.GroupMember, error) {
	var results []struct {
		ID        uuid.UUID
		GroupID   uuid.UUID
		UserID    uuid.UUID
		CreatedAt time.Time
		UserName  string
		UserEmail string
	}

	query := `
		SELECT
			gm.id,
			gm.group_id,
			gm.user_id,
			gm.created_at,
			u.name AS user_name,
			u.email AS user_email
		FROM group_members gm
		INNER JOIN users u ON u.id = gm.user_id
		WHERE gm.group_id = ?
		ORDER BY gm.created_at ASC
	`

	if err := r.db.WithContext(ctx).Raw(query, groupID).Scan(&results).Error; err != nil {
		return nil, err
	}

	members := make([]*entity.GroupMember, len(results))
	for i, res := range results {
		members[i] = &entity.GroupMember{
			ID:        res.ID,
			GroupID:   res.GroupID,
			UserID:    res.UserID,
			CreatedAt: res.CreatedAt,
			UserName:  res.UserName,
			UserEmail: res.UserEmail,
		}
	}
	return members, nil
}

// DeleteMember removes a membership row.
func (r *groupRepository) DeleteMember(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GroupMemberModel{}).Error
}

// IsUserMemberOfGroup checks if a user has a membership row in a group.
func (r *groupRepository) IsUserMemberOfGroup(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.GroupMemberModel{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
