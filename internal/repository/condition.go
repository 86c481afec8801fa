package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/packwise/api/internal/database"
	"github.com/packwise/api/internal/model"
)

// ConditionRepository handles condition data access
type ConditionRepository struct {
	db database.Database
}

// NewConditionRepository creates a new condition repository
func NewConditionRepository(db database.Database) *ConditionRepository {
	return &ConditionRepository{db: db}
}

// Create creates a new condition
func (r *ConditionRepository) Create(ctx context.Context, condition *model.Condition) error {
	query := `
		CREATE condition CONTENT {
			name: $name,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{"name": condition.Name}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: condition name already exists", database.ErrDuplicate)
		}
		return fmt.Errorf("failed to create condition: %w", err)
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return fmt.Errorf("failed to extract created condition: %w", err)
	}

	condition.ID = created.ID
	condition.CreatedOn = created.CreatedOn
	condition.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID retrieves a condition by ID
func (r *ConditionRepository) GetByID(ctx context.Context, id string) (*model.Condition, error) {
	query := `SELECT * FROM type::record($id)`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get condition: %w", err)
	}

	return parseCondition(result), nil
}

// GetByName retrieves a condition by its unique name
func (r *ConditionRepository) GetByName(ctx context.Context, name string) (*model.Condition, error) {
	query := `SELECT * FROM condition WHERE name = $name LIMIT 1`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"name": name})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get condition by name: %w", err)
	}

	return parseCondition(result), nil
}

// List retrieves all conditions ordered by name
func (r *ConditionRepository) List(ctx context.Context) ([]*model.Condition, error) {
	query := `SELECT * FROM condition ORDER BY name ASC`
	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list conditions: %w", err)
	}

	conditions := make([]*model.Condition, 0)
	forEachRecord(result, func(data map[string]interface{}) {
		if c := parseCondition(data); c != nil {
			conditions = append(conditions, c)
		}
	})
	return conditions, nil
}

// Update renames a condition
func (r *ConditionRepository) Update(ctx context.Context, id string, updates *model.UpdateTagRequest) (*model.Condition, error) {
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
			return nil, fmt.Errorf("%w: condition name already exists", database.ErrDuplicate)
		}
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update condition: %w", err)
	}

	return parseCondition(result), nil
}

// Delete deletes a condition
func (r *ConditionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	if err := r.db.Execute(ctx, query, map[string]interface{}{"id": id}); err != nil {
		return fmt.Errorf("failed to delete condition: %w", err)
	}
	return nil
}

func parseCondition(result interface{}) *model.Condition {
	data := unwrapRecord(result)
	if data == nil {
		return nil
	}

	condition := &model.Condition{
		ID:   convertSurrealID(data["id"]),
		Name: getString(data, "name"),
	}
	if t := getTime(data, "created_on"); t != nil {
		condition.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		condition.UpdatedOn = *t
	}
	return condition
}
