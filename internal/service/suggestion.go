package service

import (
	"context"
	"fmt"

	"github.com/packwise/api/internal/model"
)

// FavoriteSource supplies the names of items a user has packed before
type FavoriteSource interface {
	DistinctItemNamesByOwner(ctx context.Context, owner string) ([]string, error)
}

// SuggestionService assembles packing suggestions for a trip condition
type SuggestionService struct {
	itemRepo      ItemRepository
	conditionRepo ConditionRepository
	favorites     FavoriteSource
}

// SuggestionServiceConfig holds configuration for the suggestion service
type SuggestionServiceConfig struct {
	ItemRepo      ItemRepository
	ConditionRepo ConditionRepository
	Favorites     FavoriteSource
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(cfg SuggestionServiceConfig) *SuggestionService {
	return &SuggestionService{
		itemRepo:      cfg.ItemRepo,
		conditionRepo: cfg.ConditionRepo,
		favorites:     cfg.Favorites,
	}
}

// GetSuggestions builds the three suggestion groups for a condition.
//
// Conditional items are all catalog items tagged with the named
// condition, whether system suggestions or user-created; the reserved
// name "any" skips that group rather than matching a condition
// literally. General items are the ones tagged "any", offered on every
// trip. Favorites are items the user has
// packed before, minus anything already present in the first two groups
// and minus repeats; an anonymous caller gets an empty favorites group.
//
// The catalog must define the "any" condition. When it is missing, or
// the named condition is unknown, the whole request fails rather than
// returning partial groups.
func (s *SuggestionService) GetSuggestions(ctx context.Context, conditionName, userID string) (*model.Suggestions, error) {
	conditional := make([]*model.Item, 0)
	if conditionName != model.ConditionAny {
		condition, err := s.conditionRepo.GetByName(ctx, conditionName)
		if err != nil {
			return nil, fmt.Errorf("failed to look up condition: %w", err)
		}
		if condition == nil {
			return nil, unknownConditionError(conditionName)
		}
		conditional, err = s.itemRepo.ListByCondition(ctx, conditionName)
		if err != nil {
			return nil, fmt.Errorf("failed to list conditional items: %w", err)
		}
	}

	anyCondition, err := s.conditionRepo.GetByName(ctx, model.ConditionAny)
	if err != nil {
		return nil, fmt.Errorf("failed to look up condition: %w", err)
	}
	if anyCondition == nil {
		return nil, unknownConditionError(conditionName)
	}
	general, err := s.itemRepo.ListByCondition(ctx, model.ConditionAny)
	if err != nil {
		return nil, fmt.Errorf("failed to list general items: %w", err)
	}

	favorites, err := s.userFavorites(ctx, userID, conditional, general)
	if err != nil {
		return nil, err
	}

	// Groups always marshal as arrays, never null.
	if conditional == nil {
		conditional = []*model.Item{}
	}
	if general == nil {
		general = []*model.Item{}
	}

	return &model.Suggestions{
		Conditional: conditional,
		General:     general,
		Favorites:   favorites,
	}, nil
}

// userFavorites collects the items the user has packed before, skipping
// anything already suggested and collapsing repeats by name
func (s *SuggestionService) userFavorites(ctx context.Context, userID string, conditional, general []*model.Item) ([]*model.Item, error) {
	favorites := make([]*model.Item, 0)
	if userID == "" {
		return favorites, nil
	}

	suggested := make(map[string]bool)
	for _, item := range conditional {
		suggested[item.Name] = true
	}
	for _, item := range general {
		suggested[item.Name] = true
	}

	names, err := s.favorites.DistinctItemNamesByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list packed item names: %w", err)
	}

	candidates := make([]string, 0, len(names))
	for _, name := range names {
		if !suggested[name] {
			candidates = append(candidates, name)
		}
	}

	items, err := s.itemRepo.ListByNames(ctx, candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite items: %w", err)
	}
	return append(favorites, items...), nil
}

func unknownConditionError(conditionName string) error {
	return fmt.Errorf("%w: %q may be an invalid condition; make sure the %q condition exists",
		ErrUnknownCondition, conditionName, model.ConditionAny)
}
