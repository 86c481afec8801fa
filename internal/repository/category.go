package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/packwise/api/internal/database"
	"github.com/packwise/api/internal/model"
)

// CategoryRepository handles category data access
type CategoryRepository struct {
	db database.Database
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db database.Database) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	query := `
		CREATE category CONTENT {
			name: $name,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{"name": category.Name}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: category name already exists", database.ErrDuplicate)
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return fmt.Errorf("failed to extract created category: %w", err)
	}

	category.ID = created.ID
	category.CreatedOn = created.CreatedOn
	category.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*model.Category, error) {
	query := `SELECT * FROM type::record($id)`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return parseCategory(result), nil
}

// GetByName retrieves a category by its unique name
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*model.Category, error) {
	query := `SELECT * FROM category WHERE name = $name LIMIT 1`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"name": name})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}

	return parseCategory(result), nil
}

// List retrieves all categories ordered by name
func (r *CategoryRepository) List(ctx context.Context) ([]*model.Category, error) {
	query := `SELECT * FROM category ORDER BY name ASC`
	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*model.Category, 0)
	forEachRecord(result, func(data map[string]interface{}) {
		if c := parseCategory(data); c != nil {
			categories = append(categories, c)
		}
	})
	return categories, nil
}

// Update renames a category
func (r *CategoryRepository) Update(ctx context.Context, id string, updates *model.UpdateTagRequest) (*model.Category, error) {
	query := `UPDATE type::record($id) SET updated_on = time::now()`
	vars := map[string]interface{}{"id": id}

	if updates.Name != nil {
		query += `, name = $name`
		vars["name"] = *updates.Name
	}

	query += ` RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, fmt.Errorf("%w: category name already exists", database.ErrDuplicate)
		}
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return parseCategory(result), nil
}

// Delete deletes a category
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	if err := r.db.Execute(ctx, query, map[string]interface{}{"id": id}); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func parseCategory(result interface{}) *model.Category {
	data := unwrapRecord(result)
	if data == nil {
		return nil
	}

	category := &model.Category{
		ID:   convertSurrealID(data["id"]),
		Name: getString(data, "name"),
	}
	if t := getTime(data, "created_on"); t != nil {
		category.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		category.UpdatedOn = *t
	}
	return category
}
