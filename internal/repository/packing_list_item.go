package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/packwise/api/internal/database"
	"github.com/packwise/api/internal/model"
)

// PackingListItemRepository handles packing list entry data access
type PackingListItemRepository struct {
	db database.Database
}

// NewPackingListItemRepository creates a new packing list item repository
func NewPackingListItemRepository(db database.Database) *PackingListItemRepository {
	return &PackingListItemRepository{db: db}
}

const createListItemQuery = `
	CREATE packing_list_item CONTENT {
		item_name: $item_name,
		quantity: $quantity,
		packed: $packed,
		packing_list: $packing_list,
		owner: $owner,
		created_on: time::now()
	}
`

// CreateBatch creates all given entries in a single transaction. Either
// every entry lands or none do; a reader never observes a partial batch.
func (r *PackingListItemRepository) CreateBatch(ctx context.Context, entries []*model.PackingListItem) error {
	if len(entries) == 0 {
		return nil
	}

	batch := database.NewAtomicBatch(r.db)
	for _, entry := range entries {
		batch.Add(createListItemQuery, map[string]interface{}{
			"item_name":    entry.ItemName,
			"quantity":     entry.Quantity,
			"packed":       entry.Packed,
			"packing_list": entry.PackingListID,
			"owner":        entry.Owner,
		})
	}

	if err := batch.Execute(ctx); err != nil {
		return fmt.Errorf("failed to create packing list items: %w", err)
	}
	return nil
}

// ReplaceForList deletes every entry of a list and creates the given
// entries in the same transaction, so concurrent readers see either the
// old contents or the new contents, never a mix.
func (r *PackingListItemRepository) ReplaceForList(ctx context.Context, listID string, entries []*model.PackingListItem) error {
	batch := database.NewAtomicBatch(r.db)
	batch.Add(`DELETE packing_list_item WHERE packing_list = $list`, map[string]interface{}{"list": listID})
	for _, entry := range entries {
		batch.Add(createListItemQuery, map[string]interface{}{
			"item_name":    entry.ItemName,
			"quantity":     entry.Quantity,
			"packed":       entry.Packed,
			"packing_list": entry.PackingListID,
			"owner":        entry.Owner,
		})
	}

	if err := batch.Execute(ctx); err != nil {
		return fmt.Errorf("failed to replace packing list items: %w", err)
	}
	return nil
}

// GetByID retrieves a single list entry by ID
func (r *PackingListItemRepository) GetByID(ctx context.Context, id string) (*model.PackingListItem, error) {
	query := `SELECT * FROM type::record($id)`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get packing list item: %w", err)
	}

	return parsePackingListItem(result), nil
}

// ListForList retrieves all entries of a packing list in creation order
func (r *PackingListItemRepository) ListForList(ctx context.Context, listID string) ([]*model.PackingListItem, error) {
	query := `
		SELECT * FROM packing_list_item
		WHERE packing_list = $list
		ORDER BY created_on ASC
	`
	result, err := r.db.Query(ctx, query, map[string]interface{}{"list": listID})
	if err != nil {
		return nil, fmt.Errorf("failed to list packing list items: %w", err)
	}

	entries := make([]*model.PackingListItem, 0)
	forEachRecord(result, func(data map[string]interface{}) {
		if e := parsePackingListItem(data); e != nil {
			entries = append(entries, e)
		}
	})
	return entries, nil
}

// DistinctItemNamesByOwner retrieves the distinct names of items the
// user has ever put on a packing list, ordered by name
func (r *PackingListItemRepository) DistinctItemNamesByOwner(ctx context.Context, owner string) ([]string, error) {
	query := `
		SELECT item_name FROM packing_list_item
		WHERE owner = $owner
		ORDER BY item_name ASC
	`
	result, err := r.db.Query(ctx, query, map[string]interface{}{"owner": owner})
	if err != nil {
		return nil, fmt.Errorf("failed to list item names: %w", err)
	}

	seen := make(map[string]bool)
	names := make([]string, 0)
	forEachRecord(result, func(data map[string]interface{}) {
		name := getString(data, "item_name")
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	})
	return names, nil
}

// Update updates a single list entry's mutable fields
func (r *PackingListItemRepository) Update(ctx context.Context, id string, quantity *int, packed *bool) (*model.PackingListItem, error) {
	vars := map[string]interface{}{"id": id}
	clauses := make([]string, 0, 2)

	if quantity != nil {
		clauses = append(clauses, `quantity = $quantity`)
		vars["quantity"] = *quantity
	}
	if packed != nil {
		clauses = append(clauses, `packed = $packed`)
		vars["packed"] = *packed
	}
	if len(clauses) == 0 {
		return r.GetByID(ctx, id)
	}

	query := `UPDATE type::record($id) SET ` + strings.Join(clauses, ", ") + ` RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update packing list item: %w", err)
	}

	return parsePackingListItem(result), nil
}

// Delete deletes a single list entry
func (r *PackingListItemRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	if err := r.db.Execute(ctx, query, map[string]interface{}{"id": id}); err != nil {
		return fmt.Errorf("failed to delete packing list item: %w", err)
	}
	return nil
}

func parsePackingListItem(result interface{}) *model.PackingListItem {
	data := unwrapRecord(result)
	if data == nil {
		return nil
	}

	entry := &model.PackingListItem{
		ID:            convertSurrealID(data["id"]),
		ItemName:      getString(data, "item_name"),
		Quantity:      getInt(data, "quantity"),
		Packed:        getBool(data, "packed"),
		PackingListID: convertSurrealID(data["packing_list"]),
		Owner:         convertSurrealID(data["owner"]),
	}
	if t := getTime(data, "created_on"); t != nil {
		entry.CreatedOn = *t
	}
	return entry
}
