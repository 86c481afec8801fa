package service

import (
	"context"
	"fmt"

	"github.com/packwise/api/internal/model"
)

// PackingListRepository defines the interface for packing list storage
type PackingListRepository interface {
	Create(ctx context.Context, list *model.PackingList) error
	GetByID(ctx context.Context, id string) (*model.PackingList, error)
	ListByOwner(ctx context.Context, owner string) ([]*model.PackingList, error)
	Update(ctx context.Context, id string, updates *model.UpdatePackingListRequest) (*model.PackingList, error)
	Delete(ctx context.Context, id string) error
}

// PackingListItemRepository defines the interface for list entry storage
type PackingListItemRepository interface {
	CreateBatch(ctx context.Context, entries []*model.PackingListItem) error
	ReplaceForList(ctx context.Context, listID string, entries []*model.PackingListItem) error
	GetByID(ctx context.Context, id string) (*model.PackingListItem, error)
	ListForList(ctx context.Context, listID string) ([]*model.PackingListItem, error)
	Update(ctx context.Context, id string, quantity *int, packed *bool) (*model.PackingListItem, error)
	Delete(ctx context.Context, id string) error
}

// ItemResolver resolves item references against the shared catalog
type ItemResolver interface {
	ResolveBatch(ctx context.Context, refs []model.ItemRequest) ([]*model.Item, error)
}

// PackingListService handles packing list business logic
type PackingListService struct {
	listRepo  PackingListRepository
	entryRepo PackingListItemRepository
	resolver  ItemResolver
}

// PackingListServiceConfig holds configuration for the packing list service
type PackingListServiceConfig struct {
	ListRepo  PackingListRepository
	EntryRepo PackingListItemRepository
	Resolver  ItemResolver
}

// NewPackingListService creates a new packing list service
func NewPackingListService(cfg PackingListServiceConfig) *PackingListService {
	return &PackingListService{
		listRepo:  cfg.ListRepo,
		entryRepo: cfg.EntryRepo,
		resolver:  cfg.Resolver,
	}
}

// List operations

// CreateList creates a packing list for a user
func (s *PackingListService) CreateList(ctx context.Context, ownerID string, req *model.CreatePackingListRequest) (*model.PackingList, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	departure, _ := req.ParseDepartureDate()
	ret, _ := req.ParseReturnDate()

	list := &model.PackingList{
		Title:              req.Title,
		DepartureDate:      departure,
		ReturnDate:         ret,
		OriginCountry:      req.OriginCountry,
		DestinationCountry: req.DestinationCountry,
		DestinationCity:    req.DestinationCity,
		Owner:              ownerID,
	}
	if err := s.listRepo.Create(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to create packing list: %w", err)
	}
	return list, nil
}

// GetList retrieves a packing list owned by the user
func (s *PackingListService) GetList(ctx context.Context, listID, ownerID string) (*model.PackingList, error) {
	return s.ownedList(ctx, listID, ownerID)
}

// ListLists retrieves all packing lists owned by the user
func (s *PackingListService) ListLists(ctx context.Context, ownerID string) ([]*model.PackingList, error) {
	return s.listRepo.ListByOwner(ctx, ownerID)
}

// UpdateList updates a packing list owned by the user
func (s *PackingListService) UpdateList(ctx context.Context, listID, ownerID string, req *model.UpdatePackingListRequest) (*model.PackingList, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}
	if _, err := s.ownedList(ctx, listID, ownerID); err != nil {
		return nil, err
	}

	list, err := s.listRepo.Update(ctx, listID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update packing list: %w", err)
	}
	if list == nil {
		return nil, ErrListNotFound
	}
	return list, nil
}

// DeleteList deletes a packing list owned by the user, along with its entries
func (s *PackingListService) DeleteList(ctx context.Context, listID, ownerID string) error {
	if _, err := s.ownedList(ctx, listID, ownerID); err != nil {
		return err
	}
	return s.listRepo.Delete(ctx, listID)
}

// Entry operations

// GetItems retrieves the entries of a packing list owned by the user
func (s *PackingListService) GetItems(ctx context.Context, listID, ownerID string) ([]*model.PackingListItem, error) {
	if _, err := s.ownedList(ctx, listID, ownerID); err != nil {
		return nil, err
	}
	return s.entryRepo.ListForList(ctx, listID)
}

// AddItems resolves a batch of item references and appends an entry for
// each to the list. Resolution happens up front: if any reference fails
// to resolve, no entries are created. Once every reference has a catalog
// row, the entries land in a single transaction.
func (s *PackingListService) AddItems(ctx context.Context, listID, ownerID string, req *model.ListItemsRequest) ([]*model.PackingListItem, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}
	if _, err := s.ownedList(ctx, listID, ownerID); err != nil {
		return nil, err
	}

	entries, err := s.materialize(ctx, listID, ownerID, req.Items)
	if err != nil {
		return nil, err
	}
	if err := s.entryRepo.CreateBatch(ctx, entries); err != nil {
		return nil, fmt.Errorf("failed to add packing list items: %w", err)
	}

	return s.entryRepo.ListForList(ctx, listID)
}

// ReplaceItems swaps the full contents of the list for the given batch.
// The delete and the creates share one transaction, so the list is never
// observable half-replaced. Replaying the same batch is idempotent.
func (s *PackingListService) ReplaceItems(ctx context.Context, listID, ownerID string, req *model.ListItemsRequest) ([]*model.PackingListItem, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}
	if _, err := s.ownedList(ctx, listID, ownerID); err != nil {
		return nil, err
	}

	entries, err := s.materialize(ctx, listID, ownerID, req.Items)
	if err != nil {
		return nil, err
	}
	if err := s.entryRepo.ReplaceForList(ctx, listID, entries); err != nil {
		return nil, fmt.Errorf("failed to replace packing list items: %w", err)
	}

	return s.entryRepo.ListForList(ctx, listID)
}

// UpdateItem updates the quantity or packed flag of a single entry
func (s *PackingListService) UpdateItem(ctx context.Context, listID, entryID, ownerID string, quantity *int, packed *bool) (*model.PackingListItem, error) {
	if quantity != nil && *quantity <= 0 {
		return nil, model.NewValidationError([]model.FieldError{
			{Field: "quantity", Message: "quantity must be a positive integer"},
		})
	}
	if _, err := s.ownedEntry(ctx, listID, entryID, ownerID); err != nil {
		return nil, err
	}

	entry, err := s.entryRepo.Update(ctx, entryID, quantity, packed)
	if err != nil {
		return nil, fmt.Errorf("failed to update packing list item: %w", err)
	}
	if entry == nil {
		return nil, ErrListItemNotFound
	}
	return entry, nil
}

// DeleteItem deletes a single entry from the list
func (s *PackingListService) DeleteItem(ctx context.Context, listID, entryID, ownerID string) error {
	if _, err := s.ownedEntry(ctx, listID, entryID, ownerID); err != nil {
		return err
	}
	return s.entryRepo.Delete(ctx, entryID)
}

// materialize resolves every reference and builds the entries to store.
// Entry names come from the resolved catalog rows, so casing and
// whitespace normalize to whatever the catalog holds.
func (s *PackingListService) materialize(ctx context.Context, listID, ownerID string, refs []model.ItemRequest) ([]*model.PackingListItem, error) {
	resolved, err := s.resolver.ResolveBatch(ctx, refs)
	if err != nil {
		return nil, err
	}

	entries := make([]*model.PackingListItem, len(refs))
	for i := range refs {
		quantity, _ := refs[i].ParseQuantity()
		entries[i] = &model.PackingListItem{
			ItemName:      resolved[i].Name,
			Quantity:      quantity,
			Packed:        refs[i].IsPacked(),
			PackingListID: listID,
			Owner:         ownerID,
		}
	}
	return entries, nil
}

func (s *PackingListService) ownedList(ctx context.Context, listID, ownerID string) (*model.PackingList, error) {
	list, err := s.listRepo.GetByID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get packing list: %w", err)
	}
	if list == nil {
		return nil, ErrListNotFound
	}
	if list.Owner != ownerID {
		return nil, ErrNotListOwner
	}
	return list, nil
}

func (s *PackingListService) ownedEntry(ctx context.Context, listID, entryID, ownerID string) (*model.PackingListItem, error) {
	if _, err := s.ownedList(ctx, listID, ownerID); err != nil {
		return nil, err
	}

	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get packing list item: %w", err)
	}
	if entry == nil || entry.PackingListID != listID {
		return nil, ErrListItemNotFound
	}
	return entry, nil
}
