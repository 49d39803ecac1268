// Package authz resolves which scope a caller may act in and re-verifies
// access to stored categories, items and groups.
package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/domain/entity"
	domainerror "github.com/stockee/backend/internal/domain/error"
)

// Authorizer answers access questions for personal and group scopes.
// Denials never reveal whether the underlying resource exists.
type Authorizer struct {
	groupRepo    adapter.GroupRepository
	categoryRepo adapter.CategoryRepository
	itemRepo     adapter.ItemRepository
}

// NewAuthorizer creates a new Authorizer instance.
func NewAuthorizer(
	groupRepo adapter.GroupRepository,
	categoryRepo adapter.CategoryRepository,
	itemRepo adapter.ItemRepository,
) *Authorizer {
	return &Authorizer{
		groupRepo:    groupRepo,
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
	}
}

// CanAccessGroup reports whether the user owns the group or holds a membership row in it.
func (a *Authorizer) CanAccessGroup(ctx context.Context, userID, groupID uuid.UUID) (bool, error) {
	group, err := a.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		return false, fmt.Errorf("failed to find group: %w", err)
	}
	if group == nil {
		return false, nil
	}
	if group.IsOwner(userID) {
		return true, nil
	}

	isMember, err := a.groupRepo.IsUserMemberOfGroup(ctx, groupID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to verify membership: %w", err)
	}
	return isMember, nil
}

// CanAccessScope reports whether the user may act within scope.
func (a *Authorizer) CanAccessScope(ctx context.Context, userID uuid.UUID, scope entity.Scope) (bool, error) {
	if !scope.IsValid() {
		return false, nil
	}
	if scope.IsGroup() {
		return a.CanAccessGroup(ctx, userID, scope.OwnerID)
	}
	return scope.OwnerID == userID, nil
}

// ResolveScope returns the personal scope when groupID is nil, otherwise the
// group scope after verifying access.
func (a *Authorizer) ResolveScope(ctx context.Context, userID uuid.UUID, groupID *uuid.UUID) (entity.Scope, error) {
	if groupID == nil {
		return entity.PersonalScope(userID), nil
	}

	ok, err := a.CanAccessGroup(ctx, userID, *groupID)
	if err != nil {
		return entity.Scope{}, err
	}
	if !ok {
		return entity.Scope{}, notGroupMember()
	}
	return entity.GroupScope(*groupID), nil
}

// RequireGroupAccess loads a group the user owns or belongs to.
func (a *Authorizer) RequireGroupAccess(ctx context.Context, userID, groupID uuid.UUID) (*entity.Group, error) {
	group, err := a.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to find group: %w", err)
	}
	if group == nil {
		return nil, notGroupMember()
	}
	if group.IsOwner(userID) {
		return group, nil
	}

	isMember, err := a.groupRepo.IsUserMemberOfGroup(ctx, groupID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify membership: %w", err)
	}
	if !isMember {
		return nil, notGroupMember()
	}
	return group, nil
}

// RequireGroupOwner loads a group and verifies the user owns it.
func (a *Authorizer) RequireGroupOwner(ctx context.Context, userID, groupID uuid.UUID) (*entity.Group, error) {
	group, err := a.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to find group: %w", err)
	}
	if group == nil || !group.IsOwner(userID) {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeNotGroupOwner,
			"only the group owner can perform this action",
			domainerror.ErrNotGroupOwner,
		)
	}
	return group, nil
}

// LoadCategory loads a category and verifies access against its stored scope.
func (a *Authorizer) LoadCategory(ctx context.Context, userID, categoryID uuid.UUID) (*entity.Category, error) {
	category, err := a.categoryRepo.FindByID(ctx, categoryID)
	if errors.Is(err, domainerror.ErrCategoryNotFound) {
		return nil, categoryNotFound()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	ok, err := a.CanAccessScope(ctx, userID, category.Scope)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, categoryNotFound()
	}
	return category, nil
}

// LoadItem loads an item and verifies access against its stored scope.
func (a *Authorizer) LoadItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.Item, error) {
	item, err := a.itemRepo.FindByID(ctx, itemID)
	if errors.Is(err, domainerror.ErrItemNotFound) {
		return nil, itemAccessDenied()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find item: %w", err)
	}

	ok, err := a.CanAccessScope(ctx, userID, item.Scope)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, itemAccessDenied()
	}
	return item, nil
}

func notGroupMember() error {
	return domainerror.NewGroupError(
		domainerror.ErrCodeNotGroupMember,
		"group not found or access denied",
		domainerror.ErrNotGroupMember,
	)
}

func categoryNotFound() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNotFound,
		"category not found",
		domainerror.ErrCategoryNotFound,
	)
}

func itemAccessDenied() error {
	return domainerror.NewItemError(
		domainerror.ErrCodeItemAccess,
		"item not found",
		domainerror.ErrItemAccessDenied,
	)
}
