package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/packwise/api/internal/database"
	"github.com/packwise/api/internal/model"
)

// ItemRepository defines the interface for catalog item storage
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	GetByID(ctx context.Context, id string) (*model.Item, error)
	GetByName(ctx context.Context, name string) (*model.Item, error)
	List(ctx context.Context) ([]*model.Item, error)
	ListByCondition(ctx context.Context, condition string) ([]*model.Item, error)
	ListByNames(ctx context.Context, names []string) ([]*model.Item, error)
	Update(ctx context.Context, id string, updates *model.UpdateItemRequest) (*model.Item, error)
	Delete(ctx context.Context, id string) error
}

// ItemService handles catalog item business logic, including resolution
// of incoming item references against the shared catalog
type ItemService struct {
	itemRepo      ItemRepository
	categoryRepo  CategoryRepository
	conditionRepo ConditionRepository
}

// ItemServiceConfig holds configuration for the item service
type ItemServiceConfig struct {
	ItemRepo      ItemRepository
	CategoryRepo  CategoryRepository
	ConditionRepo ConditionRepository
}

// NewItemService creates a new item service
func NewItemService(cfg ItemServiceConfig) *ItemService {
	return &ItemService{
		itemRepo:      cfg.ItemRepo,
		categoryRepo:  cfg.CategoryRepo,
		conditionRepo: cfg.ConditionRepo,
	}
}

// Resolve maps one item reference to a catalog row.
//
// A reference flagged as suggested must already exist in the catalog;
// resolution never creates catalog rows on behalf of the suggestion
// flow. A free-form reference reuses the catalog row with the same name
// when one exists, whatever its category or condition, and otherwise
// mints a new user-defined row. Resolving the same reference twice
// yields the same catalog row.
func (s *ItemService) Resolve(ctx context.Context, ref *model.ItemRequest) (*model.Item, error) {
	if errs := ref.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	existing, err := s.itemRepo.GetByName(ctx, ref.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up item: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	if ref.Suggested {
		return nil, fmt.Errorf("%w: %s", ErrSuggestedItemUnknown, ref.Name)
	}

	item := &model.Item{
		Name:      ref.Name,
		Category:  model.CategoryUser,
		Condition: model.ConditionUser,
		Suggested: false,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		// A concurrent request minted the same name first. The unique
		// index rejected ours; the winner's row is the one to use.
		if errors.Is(err, database.ErrDuplicate) {
			winner, lookupErr := s.itemRepo.GetByName(ctx, ref.Name)
			if lookupErr != nil {
				return nil, fmt.Errorf("failed to look up item after duplicate: %w", lookupErr)
			}
			if winner == nil {
				return nil, fmt.Errorf("item %q vanished after duplicate create", ref.Name)
			}
			return winner, nil
		}
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

// ResolveBatch resolves every reference in order, failing on the first
// reference that cannot be resolved. Catalog rows minted before the
// failure remain; they are ordinary user items and harmless to keep.
func (s *ItemService) ResolveBatch(ctx context.Context, refs []model.ItemRequest) ([]*model.Item, error) {
	resolved := make([]*model.Item, 0, len(refs))
	for i := range refs {
		item, err := s.Resolve(ctx, &refs[i])
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, item)
	}
	return resolved, nil
}

// Catalog CRUD operations

// CreateItem creates a catalog item
func (s *ItemService) CreateItem(ctx context.Context, req *model.CreateItemRequest) (*model.Item, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}
	if err := s.checkTagRefs(ctx, &req.Category, &req.Condition); err != nil {
		return nil, err
	}

	item := &model.Item{
		Name:      req.Name,
		Category:  req.Category,
		Condition: req.Condition,
		Suggested: req.Suggested,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrItemNameExists
		}
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return item, nil
}

// GetItem retrieves a catalog item by ID
func (s *ItemService) GetItem(ctx context.Context, id string) (*model.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// ListItems retrieves all catalog items
func (s *ItemService) ListItems(ctx context.Context) ([]*model.Item, error) {
	return s.itemRepo.List(ctx)
}

// UpdateItem updates a catalog item
func (s *ItemService) UpdateItem(ctx context.Context, id string, req *model.UpdateItemRequest) (*model.Item, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}
	if err := s.checkTagRefs(ctx, req.Category, req.Condition); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrItemNameExists
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// DeleteItem deletes a catalog item
func (s *ItemService) DeleteItem(ctx context.Context, id string) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil {
		return ErrItemNotFound
	}
	return s.itemRepo.Delete(ctx, id)
}

// checkTagRefs verifies that the named category and condition exist in
// the catalog before an item may reference them
func (s *ItemService) checkTagRefs(ctx context.Context, category, condition *string) error {
	if category != nil {
		c, err := s.categoryRepo.GetByName(ctx, *category)
		if err != nil {
			return fmt.Errorf("failed to look up category: %w", err)
		}
		if c == nil {
			return fmt.Errorf("%w: %s", ErrCategoryNotFound, *category)
		}
	}
	if condition != nil {
		c, err := s.conditionRepo.GetByName(ctx, *condition)
		if err != nil {
			return fmt.Errorf("failed to look up condition: %w", err)
		}
		if c == nil {
			return fmt.Errorf("%w: %s", ErrConditionNotFound, *condition)
		}
	}
	return nil
}
