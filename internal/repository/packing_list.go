package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/packwise/api/internal/database"
	"github.com/packwise/api/internal/model"
)

// PackingListRepository handles packing list data access
type PackingListRepository struct {
	db database.Database
}

// NewPackingListRepository creates a new packing list repository
func NewPackingListRepository(db database.Database) *PackingListRepository {
	return &PackingListRepository{db: db}
}

// Create creates a new packing list
func (r *PackingListRepository) Create(ctx context.Context, list *model.PackingList) error {
	query := `
		CREATE packing_list CONTENT {
			title: $title,
			departure_date: $departure_date,
			return_date: $return_date,
			origin_country: $origin_country,
			destination_country: $destination_country,
			destination_city: $destination_city,
			owner: $owner,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"title":               list.Title,
		"departure_date":      list.DepartureDate.Format(model.DateFormat),
		"return_date":         list.ReturnDate.Format(model.DateFormat),
		"origin_country":      list.OriginCountry,
		"destination_country": list.DestinationCountry,
		"destination_city":    list.DestinationCity,
		"owner":               list.Owner,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return fmt.Errorf("failed to create packing list: %w", err)
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return fmt.Errorf("failed to extract created packing list: %w", err)
	}

	list.ID = created.ID
	list.CreatedOn = created.CreatedOn
	list.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID retrieves a packing list by ID
func (r *PackingListRepository) GetByID(ctx context.Context, id string) (*model.PackingList, error) {
	query := `SELECT * FROM type::record($id)`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get packing list: %w", err)
	}

	return parsePackingList(result), nil
}

// ListByOwner retrieves all packing lists owned by a user, most
// recently created first
func (r *PackingListRepository) ListByOwner(ctx context.Context, owner string) ([]*model.PackingList, error) {
	query := `SELECT * FROM packing_list WHERE owner = $owner ORDER BY created_on DESC`
	result, err := r.db.Query(ctx, query, map[string]interface{}{"owner": owner})
	if err != nil {
		return nil, fmt.Errorf("failed to list packing lists: %w", err)
	}

	lists := make([]*model.PackingList, 0)
	forEachRecord(result, func(data map[string]interface{}) {
		if l := parsePackingList(data); l != nil {
			lists = append(lists, l)
		}
	})
	return lists, nil
}

// Update updates a packing list's mutable fields
func (r *PackingListRepository) Update(ctx context.Context, id string, updates *model.UpdatePackingListRequest) (*model.PackingList, error) {
	query := `UPDATE type::record($id) SET updated_on = time::now()`
	vars := map[string]interface{}{"id": id}

	if updates.Title != nil {
		query += `, title = $title`
		vars["title"] = *updates.Title
	}
	if updates.DepartureDate != nil {
		query += `, departure_date = $departure_date`
		vars["departure_date"] = *updates.DepartureDate
	}
	if updates.ReturnDate != nil {
		query += `, return_date = $return_date`
		vars["return_date"] = *updates.ReturnDate
	}
	if updates.OriginCountry != nil {
		query += `, origin_country = $origin_country`
		vars["origin_country"] = *updates.OriginCountry
	}
	if updates.DestinationCountry != nil {
		query += `, destination_country = $destination_country`
		vars["destination_country"] = *updates.DestinationCountry
	}
	if updates.DestinationCity != nil {
		query += `, destination_city = $destination_city`
		vars["destination_city"] = *updates.DestinationCity
	}

	query += ` RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update packing list: %w", err)
	}

	return parsePackingList(result), nil
}

// Delete deletes a packing list and all of its items
func (r *PackingListRepository) Delete(ctx context.Context, id string) error {
	batch := database.NewAtomicBatch(r.db)
	batch.Add(`DELETE packing_list_item WHERE packing_list = $list`, map[string]interface{}{"list": id})
	batch.Add(`DELETE type::record($id)`, map[string]interface{}{"id": id})
	if err := batch.Execute(ctx); err != nil {
		return fmt.Errorf("failed to delete packing list: %w", err)
	}
	return nil
}

func parsePackingList(result interface{}) *model.PackingList {
	data := unwrapRecord(result)
	if data == nil {
		return nil
	}

	list := &model.PackingList{
		ID:                 convertSurrealID(data["id"]),
		Title:              getString(data, "title"),
		OriginCountry:      getString(data, "origin_country"),
		DestinationCountry: getString(data, "destination_country"),
		DestinationCity:    getString(data, "destination_city"),
		Owner:              convertSurrealID(data["owner"]),
	}
	if t := getTime(data, "departure_date"); t != nil {
		list.DepartureDate = *t
	}
	if t := getTime(data, "return_date"); t != nil {
		list.ReturnDate = *t
	}
	if t := getTime(data, "created_on"); t != nil {
		list.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		list.UpdatedOn = *t
	}
	return list
}
