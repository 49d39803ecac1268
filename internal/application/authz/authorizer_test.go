package authz

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/domain/entity"
	domainerror "github.com/stockee/backend/internal/domain/error"
	"github.com/stockee/backend/internal/integration/persistence"
	"github.com/stockee/backend/internal/testutil"
)

func TestAuthorizer_Scopes(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	authorizer := NewAuthorizer(
		persistence.NewGroupRepository(db),
		persistence.NewCategoryRepository(db),
		persistence.NewItemRepository(db),
	)

	owner := testutil.CreateUser(t, db, "owner")
	member := testutil.CreateUser(t, db, "member")
	stranger := testutil.CreateUser(t, db, "stranger")
	group := testutil.CreateGroup(t, db, owner, "Flat")
	testutil.AddMember(t, db, group, member)

	tests := []struct {
		name   string
		userID uuid.UUID
		scope  entity.Scope
		want   bool
	}{
		{"own personal scope", owner.ID, entity.PersonalScope(owner.ID), true},
		{"someone else's personal scope", stranger.ID, entity.PersonalScope(owner.ID), false},
		{"group owner", owner.ID, entity.GroupScope(group.ID), true},
		{"group member", member.ID, entity.GroupScope(group.ID), true},
		{"stranger", stranger.ID, entity.GroupScope(group.ID), false},
		{"unknown group", owner.ID, entity.GroupScope(uuid.New()), false},
		{"invalid scope", owner.ID, entity.Scope{OwnerType: "team", OwnerID: owner.ID}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := authorizer.CanAccessScope(ctx, tt.userID, tt.scope)
			if err != nil {
				t.Fatalf("CanAccessScope returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("CanAccessScope = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAuthorizer_ResolveScope(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	authorizer := NewAuthorizer(
		persistence.NewGroupRepository(db),
		persistence.NewCategoryRepository(db),
		persistence.NewItemRepository(db),
	)

	owner := testutil.CreateUser(t, db, "owner")
	stranger := testutil.CreateUser(t, db, "stranger")
	group := testutil.CreateGroup(t, db, owner, "Flat")

	scope, err := authorizer.ResolveScope(ctx, owner.ID, nil)
	if err != nil || scope != entity.PersonalScope(owner.ID) {
		t.Fatalf("expected personal scope, got %+v (err %v)", scope, err)
	}

	scope, err = authorizer.ResolveScope(ctx, owner.ID, &group.ID)
	if err != nil || scope != entity.GroupScope(group.ID) {
		t.Fatalf("expected group scope, got %+v (err %v)", scope, err)
	}

	_, err = authorizer.ResolveScope(ctx, stranger.ID, &group.ID)
	if !errors.Is(err, domainerror.ErrNotGroupMember) {
		t.Errorf("expected ErrNotGroupMember, got %v", err)
	}
	if !errors.Is(err, domainerror.ErrAccessDenied) {
		t.Errorf("expected access denied kind, got %v", err)
	}
}

func TestAuthorizer_LoadItemHidesExistence(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	itemRepo := persistence.NewItemRepository(db)
	authorizer := NewAuthorizer(persistence.NewGroupRepository(db), persistence.NewCategoryRepository(db), itemRepo)

	owner := testutil.CreateUser(t, db, "owner")
	stranger := testutil.CreateUser(t, db, "stranger")
	item := entity.NewItem("Milk", "l", 1, entity.PersonalScope(owner.ID))
	if err := itemRepo.Create(ctx, item); err != nil {
		t.Fatalf("failed to create item: %v", err)
	}

	if _, err := authorizer.LoadItem(ctx, owner.ID, item.ID); err != nil {
		t.Fatalf("owner should load own item: %v", err)
	}

	_, foreignErr := authorizer.LoadItem(ctx, stranger.ID, item.ID)
	_, missingErr := authorizer.LoadItem(ctx, stranger.ID, uuid.New())
	for _, err := range []error{foreignErr, missingErr} {
		if !errors.Is(err, domainerror.ErrItemAccessDenied) {
			t.Errorf("expected ErrItemAccessDenied, got %v", err)
		}
	}
}

func TestAuthorizer_RequireGroupOwner(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	authorizer := NewAuthorizer(
		persistence.NewGroupRepository(db),
		persistence.NewCategoryRepository(db),
		persistence.NewItemRepository(db),
	)

	owner := testutil.CreateUser(t, db, "owner")
	member := testutil.CreateUser(t, db, "member")
	group := testutil.CreateGroup(t, db, owner, "Flat")
	testutil.AddMember(t, db, group, member)

	if _, err := authorizer.RequireGroupOwner(ctx, owner.ID, group.ID); err != nil {
		t.Errorf("owner rejected: %v", err)
	}
	if _, err := authorizer.RequireGroupOwner(ctx, member.ID, group.ID); !errors.Is(err, domainerror.ErrNotGroupOwner) {
		t.Errorf("expected ErrNotGroupOwner for member, got %v", err)
	}
}
