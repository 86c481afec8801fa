package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/packwise/api/internal/database"
	"github.com/packwise/api/internal/model"
)

// ItemRepository handles catalog item data access
type ItemRepository struct {
	db database.Database
}

// NewItemRepository creates a new item repository
func NewItemRepository(db database.Database) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create creates a new catalog item. Item names are unique across the
// catalog; a violation of the unique index surfaces as database.ErrDuplicate.
func (r *ItemRepository) Create(ctx context.Context, item *model.Item) error {
	query := `
		CREATE item CONTENT {
			name: $name,
			category: $category,
			condition: $condition,
			suggested: $suggested,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"name":      item.Name,
		"category":  item.Category,
		"condition": item.Condition,
		"suggested": item.Suggested,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: item name already exists", database.ErrDuplicate)
		}
		return fmt.Errorf("failed to create item: %w", err)
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return fmt.Errorf("failed to extract created item: %w", err)
	}

	item.ID = created.ID
	item.CreatedOn = created.CreatedOn
	item.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID retrieves an item by ID
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*model.Item, error) {
	query := `SELECT * FROM type::record($id)`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return parseItem(result), nil
}

// GetByName retrieves an item by its unique name
func (r *ItemRepository) GetByName(ctx context.Context, name string) (*model.Item, error) {
	query := `SELECT * FROM item WHERE name = $name LIMIT 1`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"name": name})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item by name: %w", err)
	}

	return parseItem(result), nil
}

// List retrieves all catalog items ordered by name
func (r *ItemRepository) List(ctx context.Context) ([]*model.Item, error) {
	query := `SELECT * FROM item ORDER BY name ASC`
	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return collectItems(result), nil
}

// ListByCondition retrieves every catalog item tagged with the given
// condition name, ordered by name
func (r *ItemRepository) ListByCondition(ctx context.Context, condition string) ([]*model.Item, error) {
	query := `
		SELECT * FROM item
		WHERE condition = $condition
		ORDER BY name ASC
	`
	result, err := r.db.Query(ctx, query, map[string]interface{}{"condition": condition})
	if err != nil {
		return nil, fmt.Errorf("failed to list items by condition: %w", err)
	}

	return collectItems(result), nil
}

// ListByNames retrieves catalog items whose names are in the given set,
// ordered by name
func (r *ItemRepository) ListByNames(ctx context.Context, names []string) ([]*model.Item, error) {
	if len(names) == 0 {
		return []*model.Item{}, nil
	}

	query := `SELECT * FROM item WHERE name IN $names ORDER BY name ASC`
	result, err := r.db.Query(ctx, query, map[string]interface{}{"names": names})
	if err != nil {
		return nil, fmt.Errorf("failed to list items by names: %w", err)
	}

	return collectItems(result), nil
}

// Update updates an item's mutable fields
func (r *ItemRepository) Update(ctx context.Context, id string, updates *model.UpdateItemRequest) (*model.Item, error) {
	query := `UPDATE type::record($id) SET updated_on = time::now()`
	vars := map[string]interface{}{"id": id}

	if updates.Name != nil {
		query += `, name = $name`
		vars["name"] = *updates.Name
	}
	if updates.Category != nil {
		query += `, category = $category`
		vars["category"] = *updates.Category
	}
	if updates.Condition != nil {
		query += `, condition = $condition`
		vars["condition"] = *updates.Condition
	}
	if updates.Suggested != nil {
		query += `, suggested = $suggested`
		vars["suggested"] = *updates.Suggested
	}

	query += ` RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, fmt.Errorf("%w: item name already exists", database.ErrDuplicate)
		}
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return parseItem(result), nil
}

// Delete deletes an item
func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	if err := r.db.Execute(ctx, query, map[string]interface{}{"id": id}); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

func collectItems(result []interface{}) []*model.Item {
	items := make([]*model.Item, 0)
	forEachRecord(result, func(data map[string]interface{}) {
		if item := parseItem(data); item != nil {
			items = append(items, item)
		}
	})
	return items
}

func parseItem(result interface{}) *model.Item {
	data := unwrapRecord(result)
	if data == nil {
		return nil
	}

	item := &model.Item{
		ID:        convertSurrealID(data["id"]),
		Name:      getString(data, "name"),
		Category:  getString(data, "category"),
		Condition: getString(data, "condition"),
		Suggested: getBool(data, "suggested"),
	}
	if t := getTime(data, "created_on"); t != nil {
		item.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		item.UpdatedOn = *t
	}
	return item
}
