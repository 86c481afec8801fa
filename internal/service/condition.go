package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/packwise/api/internal/database"
	"github.com/packwise/api/internal/model"
)

// ConditionRepository defines the interface for condition storage
type ConditionRepository interface {
	Create(ctx context.Context, condition *model.Condition) error
	GetByID(ctx context.Context, id string) (*model.Condition, error)
	GetByName(ctx context.Context, name string) (*model.Condition, error)
	List(ctx context.Context) ([]*model.Condition, error)
	Update(ctx context.Context, id string, updates *model.UpdateTagRequest) (*model.Condition, error)
	Delete(ctx context.Context, id string) error
}

// ConditionService handles condition business logic
type ConditionService struct {
	conditionRepo ConditionRepository
}

// NewConditionService creates a new condition service
func NewConditionService(conditionRepo ConditionRepository) *ConditionService {
	return &ConditionService{conditionRepo: conditionRepo}
}

// CreateCondition creates a condition
func (s *ConditionService) CreateCondition(ctx context.Context, req *model.CreateTagRequest) (*model.Condition, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	condition := &model.Condition{Name: req.Name}
	if err := s.conditionRepo.Create(ctx, condition); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrConditionNameExists
		}
		return nil, fmt.Errorf("failed to create condition: %w", err)
	}
	return condition, nil
}

// GetCondition retrieves a condition by ID
func (s *ConditionService) GetCondition(ctx context.Context, id string) (*model.Condition, error) {
	condition, err := s.conditionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get condition: %w", err)
	}
	if condition == nil {
		return nil, ErrConditionNotFound
	}
	return condition, nil
}

// ListConditions retrieves all conditions
func (s *ConditionService) ListConditions(ctx context.Context) ([]*model.Condition, error) {
	return s.conditionRepo.List(ctx)
}

// UpdateCondition renames a condition
func (s *ConditionService) UpdateCondition(ctx context.Context, id string, req *model.UpdateTagRequest) (*model.Condition, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	condition, err := s.conditionRepo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrConditionNameExists
		}
		return nil, fmt.Errorf("failed to update condition: %w", err)
	}
	if condition == nil {
		return nil, ErrConditionNotFound
	}
	return condition, nil
}

// DeleteCondition deletes a condition
func (s *ConditionService) DeleteCondition(ctx context.Context, id string) error {
	condition, err := s.conditionRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get condition: %w", err)
	}
	if condition == nil {
		return ErrConditionNotFound
	}
	return s.conditionRepo.Delete(ctx, id)
}
