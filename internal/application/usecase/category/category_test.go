package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/application/authz"
	"github.com/stockee/backend/internal/domain/entity"
	domainerror "github.com/stockee/backend/internal/domain/error"
	"github.com/stockee/backend/internal/integration/persistence"
	"github.com/stockee/backend/internal/testutil"
)

type fixture struct {
	db           *gorm.DB
	categoryRepo adapter.CategoryRepository
	itemRepo     adapter.ItemRepository
	authorizer   *authz.Authorizer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	groupRepo := persistence.NewGroupRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	itemRepo := persistence.NewItemRepository(db)

	return &fixture{
		db:           db,
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		authorizer:   authz.NewAuthorizer(groupRepo, categoryRepo, itemRepo),
	}
}

func (f *fixture) create(t *testing.T, userID uuid.UUID, groupID *uuid.UUID, name string) *entity.Category {
	t.Helper()
	out, err := NewCreateCategoryUseCase(f.categoryRepo, f.authorizer).Execute(context.Background(), CreateCategoryInput{
		UserID:  userID,
		GroupID: groupID,
		Name:    name,
	})
	if err != nil {
		t.Fatalf("failed to create category %q: %v", name, err)
	}
	return out.Category
}

func TestCreateCategory_SortOrder(t *testing.T) {
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, "user")

	first := f.create(t, user.ID, nil, "Fridge")
	second := f.create(t, user.ID, nil, "Pantry")
	if first.SortOrder != 0 || second.SortOrder != 1 {
		t.Fatalf("expected sort orders 0 and 1, got %d and %d", first.SortOrder, second.SortOrder)
	}

	// New rows take max+1, so a freed trailing position is handed out again
	if err := NewDeleteCategoryUseCase(f.categoryRepo, f.authorizer).Execute(context.Background(), DeleteCategoryInput{
		CategoryID: second.ID,
		UserID:     user.ID,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	third := f.create(t, user.ID, nil, "Freezer")
	if third.SortOrder != 1 {
		t.Errorf("expected sort order max+1 = 1, got %d", third.SortOrder)
	}
}

func TestCreateCategory_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, "user")
	uc := NewCreateCategoryUseCase(f.categoryRepo, f.authorizer)

	tests := []struct {
		name    string
		input   CreateCategoryInput
		wantErr error
	}{
		{
			name:    "empty name",
			input:   CreateCategoryInput{UserID: user.ID, Name: " "},
			wantErr: domainerror.ErrCategoryNameRequired,
		},
		{
			name:    "name too long",
			input:   CreateCategoryInput{UserID: user.ID, Name: "123456789012345678901234567890123456789012345678901"},
			wantErr: domainerror.ErrCategoryNameTooLong,
		},
		{
			name:    "malformed color",
			input:   CreateCategoryInput{UserID: user.ID, Name: "Fridge", Color: testutil.Ptr("#12345")},
			wantErr: domainerror.ErrInvalidColorFormat,
		},
		{
			name:    "named color",
			input:   CreateCategoryInput{UserID: user.ID, Name: "Fridge", Color: testutil.Ptr("red")},
			wantErr: domainerror.ErrInvalidColorFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, domainerror.ErrInvalidInput) {
				t.Errorf("expected invalid input kind, got %v", err)
			}
		})
	}

	out, err := uc.Execute(ctx, CreateCategoryInput{UserID: user.ID, Name: "Fridge", Color: testutil.Ptr("#1a2B3c")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Category.Color == nil || *out.Category.Color != "#1a2B3c" {
		t.Errorf("expected color to be stored, got %v", out.Category.Color)
	}
}

func TestCreateCategory_NameUniquePerScope(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := testutil.CreateUser(t, f.db, "alice")
	bob := testutil.CreateUser(t, f.db, "bob")
	groupA := testutil.CreateGroup(t, f.db, alice, "A")
	groupB := testutil.CreateGroup(t, f.db, alice, "B")
	uc := NewCreateCategoryUseCase(f.categoryRepo, f.authorizer)

	f.create(t, alice.ID, nil, "Fridge")

	_, err := uc.Execute(ctx, CreateCategoryInput{UserID: alice.ID, Name: "Fridge"})
	if !errors.Is(err, domainerror.ErrCategoryNameExists) || !errors.Is(err, domainerror.ErrConflict) {
		t.Errorf("expected duplicate name conflict, got %v", err)
	}

	// Same name in other scopes succeeds
	f.create(t, bob.ID, nil, "Fridge")
	f.create(t, alice.ID, &groupA.ID, "Fridge")
	f.create(t, alice.ID, &groupB.ID, "Fridge")

	_, err = uc.Execute(ctx, CreateCategoryInput{UserID: alice.ID, GroupID: &groupA.ID, Name: "Fridge"})
	if !errors.Is(err, domainerror.ErrConflict) {
		t.Errorf("expected duplicate name conflict in group, got %v", err)
	}
}

func TestCategory_AccessDeniedOutsideGroup(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := testutil.CreateUser(t, f.db, "owner")
	member := testutil.CreateUser(t, f.db, "member")
	stranger := testutil.CreateUser(t, f.db, "stranger")
	group := testutil.CreateGroup(t, f.db, owner, "Home")
	testutil.AddMember(t, f.db, group, member)

	category := f.create(t, member.ID, &group.ID, "Fridge")

	if _, err := NewListCategoriesUseCase(f.categoryRepo, f.authorizer).Execute(ctx, ListCategoriesInput{UserID: stranger.ID, GroupID: &group.ID}); !errors.Is(err, domainerror.ErrAccessDenied) {
		t.Errorf("list: expected access denied, got %v", err)
	}
	if _, err := NewCreateCategoryUseCase(f.categoryRepo, f.authorizer).Execute(ctx, CreateCategoryInput{UserID: stranger.ID, GroupID: &group.ID, Name: "X"}); !errors.Is(err, domainerror.ErrAccessDenied) {
		t.Errorf("create: expected access denied, got %v", err)
	}
	if _, err := NewUpdateCategoryUseCase(f.categoryRepo, f.authorizer).Execute(ctx, UpdateCategoryInput{CategoryID: category.ID, UserID: stranger.ID, Name: testutil.Ptr("X")}); !errors.Is(err, domainerror.ErrAccessDenied) {
		t.Errorf("update: expected access denied, got %v", err)
	}
	if err := NewDeleteCategoryUseCase(f.categoryRepo, f.authorizer).Execute(ctx, DeleteCategoryInput{CategoryID: category.ID, UserID: stranger.ID}); !errors.Is(err, domainerror.ErrAccessDenied) {
		t.Errorf("delete: expected access denied, got %v", err)
	}
	if err := NewReorderCategoriesUseCase(f.categoryRepo, f.authorizer).Execute(ctx, ReorderCategoriesInput{
		UserID:  stranger.ID,
		GroupID: &group.ID,
		Orders:  []entity.SortOrderUpdate{{ID: category.ID, SortOrder: 3}},
	}); !errors.Is(err, domainerror.ErrAccessDenied) {
		t.Errorf("reorder: expected access denied, got %v", err)
	}

	// Absent ids look the same as forbidden ones
	if err := NewDeleteCategoryUseCase(f.categoryRepo, f.authorizer).Execute(ctx, DeleteCategoryInput{CategoryID: uuid.New(), UserID: owner.ID}); !errors.Is(err, domainerror.ErrAccessDenied) {
		t.Errorf("delete absent: expected access denied, got %v", err)
	}

	// The owner can use a category created by a member
	if _, err := NewUpdateCategoryUseCase(f.categoryRepo, f.authorizer).Execute(ctx, UpdateCategoryInput{CategoryID: category.ID, UserID: owner.ID, Name: testutil.Ptr("Freezer")}); err != nil {
		t.Errorf("owner update: unexpected error %v", err)
	}
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, "user")
	fridge := f.create(t, user.ID, nil, "Fridge")
	f.create(t, user.ID, nil, "Pantry")
	uc := NewUpdateCategoryUseCase(f.categoryRepo, f.authorizer)

	t.Run("renaming to an existing name conflicts", func(t *testing.T) {
		_, err := uc.Execute(ctx, UpdateCategoryInput{CategoryID: fridge.ID, UserID: user.ID, Name: testutil.Ptr("Pantry")})
		if !errors.Is(err, domainerror.ErrCategoryNameExists) {
			t.Errorf("expected duplicate name, got %v", err)
		}
	})

	t.Run("keeping its own name is allowed", func(t *testing.T) {
		out, err := uc.Execute(ctx, UpdateCategoryInput{CategoryID: fridge.ID, UserID: user.ID, Name: testutil.Ptr("Fridge"), Color: testutil.Ptr("#00FF00")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Category.Color == nil || *out.Category.Color != "#00FF00" {
			t.Errorf("expected color update, got %v", out.Category.Color)
		}
	})

	t.Run("clear color", func(t *testing.T) {
		if _, err := uc.Execute(ctx, UpdateCategoryInput{CategoryID: fridge.ID, UserID: user.ID, ClearColor: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stored, err := f.categoryRepo.FindByID(ctx, fridge.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Color != nil {
			t.Errorf("expected color to be cleared, got %q", *stored.Color)
		}
	})
}

func TestDeleteCategory_KeepsItems(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, "user")
	category := f.create(t, user.ID, nil, "Fridge")
	scope := entity.PersonalScope(user.ID)

	var itemIDs []uuid.UUID
	for _, name := range []string{"Milk", "Eggs", "Butter"} {
		item := entity.NewItem(name, "pcs", 1, scope)
		item.CategoryID = &category.ID
		if err := f.itemRepo.Create(ctx, item); err != nil {
			t.Fatalf("failed to create item: %v", err)
		}
		itemIDs = append(itemIDs, item.ID)
	}

	list, err := NewListCategoriesUseCase(f.categoryRepo, f.authorizer).Execute(ctx, ListCategoriesInput{UserID: user.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Categories) != 1 || list.Categories[0].ItemCount != 3 {
		t.Fatalf("expected one category with 3 items, got %+v", list.Categories)
	}

	if err := NewDeleteCategoryUseCase(f.categoryRepo, f.authorizer).Execute(ctx, DeleteCategoryInput{CategoryID: category.ID, UserID: user.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, id := range itemIDs {
		item, err := f.itemRepo.FindByID(ctx, id)
		if err != nil {
			t.Fatalf("expected item %s to survive, got %v", id, err)
		}
		if item.CategoryID != nil {
			t.Errorf("expected item %s to be uncategorized", id)
		}
	}
}

func TestReorderCategories(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, "user")
	other := testutil.CreateUser(t, f.db, "other")
	a := f.create(t, user.ID, nil, "A")
	b := f.create(t, user.ID, nil, "B")
	foreign := f.create(t, other.ID, nil, "Foreign")
	uc := NewReorderCategoriesUseCase(f.categoryRepo, f.authorizer)

	t.Run("foreign id aborts the whole reorder", func(t *testing.T) {
		err := uc.Execute(ctx, ReorderCategoriesInput{
			UserID: user.ID,
			Orders: []entity.SortOrderUpdate{{ID: a.ID, SortOrder: 5}, {ID: foreign.ID, SortOrder: 6}},
		})
		if !errors.Is(err, domainerror.ErrAccessDenied) {
			t.Fatalf("expected access denied, got %v", err)
		}
		stored, _ := f.categoryRepo.FindByID(ctx, a.ID)
		if stored.SortOrder != 0 {
			t.Errorf("expected sort order unchanged, got %d", stored.SortOrder)
		}
	})

	t.Run("negative positions are rejected", func(t *testing.T) {
		err := uc.Execute(ctx, ReorderCategoriesInput{
			UserID: user.ID,
			Orders: []entity.SortOrderUpdate{{ID: a.ID, SortOrder: -1}},
		})
		if !errors.Is(err, domainerror.ErrInvalidInput) {
			t.Errorf("expected invalid input, got %v", err)
		}
	})

	t.Run("swaps positions", func(t *testing.T) {
		err := uc.Execute(ctx, ReorderCategoriesInput{
			UserID: user.ID,
			Orders: []entity.SortOrderUpdate{{ID: a.ID, SortOrder: 1}, {ID: b.ID, SortOrder: 0}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		list, err := NewListCategoriesUseCase(f.categoryRepo, f.authorizer).Execute(ctx, ListCategoriesInput{UserID: user.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list.Categories[0].Category.ID != b.ID || list.Categories[1].Category.ID != a.ID {
			t.Error("expected B before A after reorder")
		}
	})
}
