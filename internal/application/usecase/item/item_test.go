package item

import (
	"context"
	"errors"
	"sync"
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
	itemRepo     adapter.ItemRepository
	categoryRepo adapter.CategoryRepository
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
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		authorizer:   authz.NewAuthorizer(groupRepo, categoryRepo, itemRepo),
	}
}

func (f *fixture) create(t *testing.T, input CreateItemInput) *entity.Item {
	t.Helper()
	if input.Unit == "" {
		input.Unit = "pcs"
	}
	out, err := NewCreateItemUseCase(f.itemRepo, f.categoryRepo, f.authorizer).Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("failed to create item %q: %v", input.Name, err)
	}
	return out.Item
}

func (f *fixture) category(t *testing.T, scope entity.Scope, name string) *entity.Category {
	t.Helper()
	category := entity.NewCategory(name, testutil.Ptr("#AABBCC"), scope)
	if err := f.categoryRepo.Create(context.Background(), category); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return category
}

func (f *fixture) adjust(userID, itemID uuid.UUID, direction StockDirection) (*entity.Item, error) {
	out, err := NewAdjustStockUseCase(f.itemRepo, f.authorizer).Execute(context.Background(), AdjustStockInput{
		ItemID:    itemID,
		UserID:    userID,
		Direction: direction,
	})
	if err != nil {
		return nil, err
	}
	return out.Item, nil
}

func TestCreateItem_SortOrderAndDefaults(t *testing.T) {
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, "user")

	first := f.create(t, CreateItemInput{UserID: user.ID, Name: "Milk", Quantity: 3})
	second := f.create(t, CreateItemInput{UserID: user.ID, Name: "  Eggs  ", ProductName: testutil.Ptr("   ")})

	if first.SortOrder != 0 || second.SortOrder != 1 {
		t.Errorf("expected sort orders 0 and 1, got %d and %d", first.SortOrder, second.SortOrder)
	}
	if second.Name != "Eggs" {
		t.Errorf("expected trimmed name, got %q", second.Name)
	}
	if second.ProductName != nil {
		t.Errorf("expected blank product name to be stored as nil")
	}
	if first.Scope != entity.PersonalScope(user.ID) {
		t.Errorf("expected personal scope, got %+v", first.Scope)
	}
}

func TestCreateItem_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, "user")

	tests := []struct {
		name    string
		input   CreateItemInput
		wantErr error
	}{
		{
			name:    "empty name",
			input:   CreateItemInput{Name: " ", Unit: "pcs"},
			wantErr: domainerror.ErrItemNameRequired,
		},
		{
			name:    "empty unit",
			input:   CreateItemInput{Name: "Milk"},
			wantErr: domainerror.ErrItemUnitRequired,
		},
		{
			name:    "negative quantity",
			input:   CreateItemInput{Name: "Milk", Unit: "l", Quantity: -1},
			wantErr: domainerror.ErrNegativeQuantity,
		},
		{
			name:    "negative price",
			input:   CreateItemInput{Name: "Milk", Unit: "l", Price: testutil.Ptr(-5)},
			wantErr: domainerror.ErrNegativePrice,
		},
		{
			name:    "negative threshold",
			input:   CreateItemInput{Name: "Milk", Unit: "l", Threshold: testutil.Ptr(-1)},
			wantErr: domainerror.ErrNegativeThreshold,
		},
	}

	uc := NewCreateItemUseCase(f.itemRepo, f.categoryRepo, f.authorizer)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.UserID = user.ID
			_, err := uc.Execute(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, domainerror.ErrInvalidInput) {
				t.Errorf("expected InvalidInput kind, got %v", err)
			}
		})
	}
}

func TestCreateItem_CategoryMustShareScope(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := testutil.CreateUser(t, f.db, "owner")
	group := testutil.CreateGroup(t, f.db, owner, "Home")

	personal := f.category(t, entity.PersonalScope(owner.ID), "Mine")
	shared := f.category(t, entity.GroupScope(group.ID), "Ours")

	uc := NewCreateItemUseCase(f.itemRepo, f.categoryRepo, f.authorizer)
	_, err := uc.Execute(ctx, CreateItemInput{
		UserID:     owner.ID,
		GroupID:    &group.ID,
		Name:       "Rice",
		Unit:       "kg",
		CategoryID: &personal.ID,
	})
	if !errors.Is(err, domainerror.ErrCategoryOutsideItemScope) {
		t.Fatalf("expected ErrCategoryOutsideItemScope, got %v", err)
	}

	unknown := uuid.New()
	_, err = uc.Execute(ctx, CreateItemInput{UserID: owner.ID, Name: "Rice", Unit: "kg", CategoryID: &unknown})
	if !errors.Is(err, domainerror.ErrCategoryOutsideItemScope) {
		t.Fatalf("expected ErrCategoryOutsideItemScope for unknown category, got %v", err)
	}

	item := f.create(t, CreateItemInput{
		UserID:     owner.ID,
		GroupID:    &group.ID,
		Name:       "Rice",
		Unit:       "kg",
		CategoryID: &shared.ID,
	})
	if item.CategoryName == nil || *item.CategoryName != "Ours" {
		t.Errorf("expected category display name after reload")
	}
}

func TestAdjustStock_LowStockExample(t *testing.T) {
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, "user")

	milk := f.create(t, CreateItemInput{
		UserID:    user.ID,
		Name:      "Milk",
		Unit:      "l",
		Quantity:  3,
		Threshold: testutil.Ptr(2),
	})
	if milk.IsLowStock() {
		t.Fatal("expected 3 of threshold 2 not to be low")
	}

	item, err := f.adjust(user.ID, milk.ID, StockDecrement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Quantity != 2 || item.IsLowStock() {
		t.Fatalf("expected quantity 2 and not low, got %d low=%v", item.Quantity, item.IsLowStock())
	}

	item, err = f.adjust(user.ID, milk.ID, StockDecrement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Quantity != 1 || !item.IsLowStock() {
		t.Fatalf("expected quantity 1 and low, got %d low=%v", item.Quantity, item.IsLowStock())
	}

	out, err := NewListItemsUseCase(f.itemRepo, f.authorizer).Execute(context.Background(), ListItemsInput{
		UserID:       user.ID,
		LowStockOnly: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Items) != 1 || out.Items[0].ID != milk.ID {
		t.Errorf("expected milk in low stock listing, got %d items", len(out.Items))
	}
}

func TestAdjustStock_DecrementAtZero(t *testing.T) {
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, "user")
	item := f.create(t, CreateItemInput{UserID: user.ID, Name: "Salt", Quantity: 0})

	_, err := f.adjust(user.ID, item.ID, StockDecrement)
	if !errors.Is(err, domainerror.ErrOutOfStock) {
		t.Fatalf("expected ErrOutOfStock, got %v", err)
	}
	if !errors.Is(err, domainerror.ErrInvariantViolation) {
		t.Errorf("expected InvariantViolation kind, got %v", err)
	}

	stored, err := f.itemRepo.FindByID(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Quantity != 0 {
		t.Errorf("expected quantity to stay 0, got %d", stored.Quantity)
	}
}

func TestAdjustStock_RoundTrip(t *testing.T) {
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, "user")
	item := f.create(t, CreateItemInput{UserID: user.ID, Name: "Bread", Quantity: 4})

	if _, err := f.adjust(user.ID, item.ID, StockIncrement); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after, err := f.adjust(user.ID, item.ID, StockDecrement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after.Quantity != 4 {
		t.Errorf("expected quantity to return to 4, got %d", after.Quantity)
	}
}

func TestAdjustStock_ConcurrentIncrements(t *testing.T) {
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, "user")
	item := f.create(t, CreateItemInput{UserID: user.ID, Name: "Tea", Quantity: 0})

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.adjust(user.ID, item.ID, StockIncrement); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	stored, err := f.itemRepo.FindByID(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Quantity != n {
		t.Errorf("expected quantity %d, got %d", n, stored.Quantity)
	}
}

func TestItemAccess_Stranger(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := testutil.CreateUser(t, f.db, "owner")
	stranger := testutil.CreateUser(t, f.db, "stranger")
	item := f.create(t, CreateItemInput{UserID: owner.ID, Name: "Coffee", Quantity: 1})

	_, err := NewGetItemUseCase(f.authorizer).Execute(ctx, GetItemInput{ItemID: item.ID, UserID: stranger.ID})
	if !errors.Is(err, domainerror.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound on get, got %v", err)
	}

	_, err = f.adjust(stranger.ID, item.ID, StockIncrement)
	if !errors.Is(err, domainerror.ErrAccessDenied) {
		t.Errorf("expected AccessDenied on increment, got %v", err)
	}

	err = NewDeleteItemUseCase(f.itemRepo, f.authorizer).Execute(ctx, DeleteItemInput{ItemID: item.ID, UserID: stranger.ID})
	if !errors.Is(err, domainerror.ErrAccessDenied) {
		t.Errorf("expected AccessDenied on delete, got %v", err)
	}

	// An unknown id looks the same as a foreign one
	_, err = NewGetItemUseCase(f.authorizer).Execute(ctx, GetItemInput{ItemID: uuid.New(), UserID: owner.ID})
	if !errors.Is(err, domainerror.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound for unknown id, got %v", err)
	}
}

func TestItemAccess_GroupMember(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := testutil.CreateUser(t, f.db, "owner")
	member := testutil.CreateUser(t, f.db, "member")
	group := testutil.CreateGroup(t, f.db, owner, "Flat")
	testutil.AddMember(t, f.db, group, member)

	item := f.create(t, CreateItemInput{UserID: owner.ID, GroupID: &group.ID, Name: "Soap", Quantity: 2})

	got, err := NewGetItemUseCase(f.authorizer).Execute(ctx, GetItemInput{ItemID: item.ID, UserID: member.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Scope != entity.GroupScope(group.ID) {
		t.Errorf("expected group scope, got %+v", got.Scope)
	}

	out, err := NewListItemsUseCase(f.itemRepo, f.authorizer).Execute(ctx, ListItemsInput{UserID: member.ID, GroupID: &group.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Items) != 1 {
		t.Errorf("expected 1 group item, got %d", len(out.Items))
	}

	// Group items never leak into the personal listing
	personal, err := NewListItemsUseCase(f.itemRepo, f.authorizer).Execute(ctx, ListItemsInput{UserID: owner.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(personal.Items) != 0 {
		t.Errorf("expected empty personal listing, got %d", len(personal.Items))
	}
}

func TestListItems_CategoryFilters(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, "user")
	fridge := f.category(t, entity.PersonalScope(user.ID), "Fridge")

	f.create(t, CreateItemInput{UserID: user.ID, Name: "Butter", CategoryID: &fridge.ID})
	f.create(t, CreateItemInput{UserID: user.ID, Name: "Flour"})

	uc := NewListItemsUseCase(f.itemRepo, f.authorizer)
	byCategory, err := uc.Execute(ctx, ListItemsInput{UserID: user.ID, CategoryID: &fridge.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byCategory.Items) != 1 || byCategory.Items[0].Name != "Butter" {
		t.Errorf("expected only Butter, got %d items", len(byCategory.Items))
	}
	if byCategory.Items[0].CategoryColor == nil || *byCategory.Items[0].CategoryColor != "#AABBCC" {
		t.Errorf("expected category color on listed item")
	}

	uncategorized, err := uc.Execute(ctx, ListItemsInput{UserID: user.ID, Uncategorized: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(uncategorized.Items) != 1 || uncategorized.Items[0].Name != "Flour" {
		t.Errorf("expected only Flour, got %d items", len(uncategorized.Items))
	}
}

func TestUpdateItem_Partial(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, "user")
	pantry := f.category(t, entity.PersonalScope(user.ID), "Pantry")
	item := f.create(t, CreateItemInput{
		UserID:     user.ID,
		Name:       "Pasta",
		Quantity:   5,
		Price:      testutil.Ptr(199),
		Threshold:  testutil.Ptr(2),
		Note:       testutil.Ptr("whole wheat"),
		CategoryID: &pantry.ID,
	})

	uc := NewUpdateItemUseCase(f.itemRepo, f.categoryRepo, f.authorizer)
	out, err := uc.Execute(ctx, UpdateItemInput{
		ItemID:         item.ID,
		UserID:         user.ID,
		Name:           testutil.Ptr("Penne"),
		ClearThreshold: true,
		Note:           testutil.Ptr(""),
		ClearCategory:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated := out.Item
	if updated.Name != "Penne" {
		t.Errorf("expected name Penne, got %q", updated.Name)
	}
	if updated.Quantity != 5 || updated.Price == nil || *updated.Price != 199 {
		t.Errorf("expected untouched quantity and price")
	}
	if updated.Threshold != nil || updated.Note != nil || updated.CategoryID != nil {
		t.Errorf("expected threshold, note and category to be cleared")
	}

	_, err = uc.Execute(ctx, UpdateItemInput{ItemID: item.ID, UserID: user.ID, Quantity: testutil.Ptr(-1)})
	if !errors.Is(err, domainerror.ErrNegativeQuantity) {
		t.Errorf("expected ErrNegativeQuantity, got %v", err)
	}
}

func TestReorderItems(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, "user")
	other := testutil.CreateUser(t, f.db, "other")

	a := f.create(t, CreateItemInput{UserID: user.ID, Name: "A"})
	b := f.create(t, CreateItemInput{UserID: user.ID, Name: "B"})
	foreign := f.create(t, CreateItemInput{UserID: other.ID, Name: "X"})

	uc := NewReorderItemsUseCase(f.itemRepo, f.authorizer)

	// Any foreign id aborts the whole batch
	err := uc.Execute(ctx, ReorderItemsInput{
		UserID: user.ID,
		Orders: []entity.SortOrderUpdate{
			{ID: a.ID, SortOrder: 5},
			{ID: foreign.ID, SortOrder: 6},
		},
	})
	if !errors.Is(err, domainerror.ErrItemNotInScope) {
		t.Fatalf("expected ErrItemNotInScope, got %v", err)
	}
	stored, _ := f.itemRepo.FindByID(ctx, a.ID)
	if stored.SortOrder != 0 {
		t.Errorf("expected sort order to be unchanged, got %d", stored.SortOrder)
	}

	err = uc.Execute(ctx, ReorderItemsInput{
		UserID: user.ID,
		Orders: []entity.SortOrderUpdate{{ID: a.ID, SortOrder: -1}},
	})
	if !errors.Is(err, domainerror.ErrInvalidSortOrder) {
		t.Errorf("expected ErrInvalidSortOrder, got %v", err)
	}

	err = uc.Execute(ctx, ReorderItemsInput{
		UserID: user.ID,
		Orders: []entity.SortOrderUpdate{
			{ID: a.ID, SortOrder: 1},
			{ID: b.ID, SortOrder: 0},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := NewListItemsUseCase(f.itemRepo, f.authorizer).Execute(ctx, ListItemsInput{UserID: user.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Items) != 2 || out.Items[0].ID != b.ID {
		t.Errorf("expected B to be listed first after reorder")
	}
}
