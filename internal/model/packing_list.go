package model

import (
	"encoding/json"
	"strconv"
	"time"
)

// Business constraints
const (
	MaxListTitleLength = 100
	MaxItemsPerRequest = 200
)

// DateFormat is the wire format for trip dates.
const DateFormat = "2006-01-02"

// PackingList is a traveler's list for one trip, owned exclusively by one user.
type PackingList struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	DepartureDate      time.Time `json:"departure_date"`
	ReturnDate         time.Time `json:"return_date"`
	OriginCountry      string    `json:"origin_country"`
	DestinationCountry string    `json:"destination_country"`
	DestinationCity    string    `json:"destination_city"`
	Owner              string    `json:"owner"`
	CreatedOn          time.Time `json:"created_on"`
	UpdatedOn          time.Time `json:"updated_on"`
}

// PackingListItem is the materialized, quantified association between a
// catalog Item and a PackingList. ItemName carries the catalog item's
// canonical name, matching what the API returns to clients. Rows are value
// objects: an update to a list's item set replaces every row wholesale
// rather than patching fields in place.
type PackingListItem struct {
	ID            string    `json:"id"`
	ItemName      string    `json:"item_name"`
	Quantity      int       `json:"quantity"`
	Packed        bool      `json:"packed"`
	PackingListID string    `json:"packing_list"`
	Owner         string    `json:"owner"`
	CreatedOn     time.Time `json:"created_on"`
}

// CreatePackingListRequest represents a request to create a packing list
type CreatePackingListRequest struct {
	Title              string `json:"title"`
	DepartureDate      string `json:"departure_date"`
	ReturnDate         string `json:"return_date"`
	OriginCountry      string `json:"origin_country"`
	DestinationCountry string `json:"destination_country"`
	DestinationCity    string `json:"destination_city"`
}

// Validate checks if the create request is valid
func (r *CreatePackingListRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Title == "" {
		errors = append(errors, FieldError{Field: "title", Message: "title is required"})
	} else if len(r.Title) > MaxListTitleLength {
		errors = append(errors, FieldError{Field: "title", Message: "title must be 100 characters or less"})
	}
	if r.DepartureDate == "" {
		errors = append(errors, FieldError{Field: "departure_date", Message: "departure_date is required"})
	} else if _, err := time.Parse(DateFormat, r.DepartureDate); err != nil {
		errors = append(errors, FieldError{Field: "departure_date", Message: "departure_date must be YYYY-MM-DD"})
	}
	if r.ReturnDate == "" {
		errors = append(errors, FieldError{Field: "return_date", Message: "return_date is required"})
	} else if _, err := time.Parse(DateFormat, r.ReturnDate); err != nil {
		errors = append(errors, FieldError{Field: "return_date", Message: "return_date must be YYYY-MM-DD"})
	}
	if r.DestinationCountry == "" {
		errors = append(errors, FieldError{Field: "destination_country", Message: "destination_country is required"})
	}

	return errors
}

// ParseDepartureDate returns the departure date as a time value
func (r *CreatePackingListRequest) ParseDepartureDate() (time.Time, error) {
	return time.Parse(DateFormat, r.DepartureDate)
}

// ParseReturnDate returns the return date as a time value
func (r *CreatePackingListRequest) ParseReturnDate() (time.Time, error) {
	return time.Parse(DateFormat, r.ReturnDate)
}

// UpdatePackingListRequest represents a request to update a packing list's
// trip fields. The list's item set is mutated only through the items
// sub-resource, never here.
type UpdatePackingListRequest struct {
	Title              *string `json:"title,omitempty"`
	DepartureDate      *string `json:"departure_date,omitempty"`
	ReturnDate         *string `json:"return_date,omitempty"`
	OriginCountry      *string `json:"origin_country,omitempty"`
	DestinationCountry *string `json:"destination_country,omitempty"`
	DestinationCity    *string `json:"destination_city,omitempty"`
}

// Validate checks if the update request is valid
func (r *UpdatePackingListRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Title != nil {
		if *r.Title == "" {
			errors = append(errors, FieldError{Field: "title", Message: "title cannot be empty"})
		} else if len(*r.Title) > MaxListTitleLength {
			errors = append(errors, FieldError{Field: "title", Message: "title must be 100 characters or less"})
		}
	}
	if r.DepartureDate != nil {
		if _, err := time.Parse(DateFormat, *r.DepartureDate); err != nil {
			errors = append(errors, FieldError{Field: "departure_date", Message: "departure_date must be YYYY-MM-DD"})
		}
	}
	if r.ReturnDate != nil {
		if _, err := time.Parse(DateFormat, *r.ReturnDate); err != nil {
			errors = append(errors, FieldError{Field: "return_date", Message: "return_date must be YYYY-MM-DD"})
		}
	}

	return errors
}

// ItemRequest is one raw item descriptor submitted by a client when adding
// items to a list. Quantity is a json.Number because clients send it as
// either a string ("2") or a number (2); both must parse to a positive
// integer. Suggested is the caller's assertion that Name refers to an
// existing catalog suggestion rather than a new private item.
type ItemRequest struct {
	Name      string      `json:"name"`
	Quantity  json.Number `json:"quantity"`
	Suggested bool        `json:"suggested"`
	Packed    *bool       `json:"packed,omitempty"`
}

// ParseQuantity returns the quantity as a positive integer, or false when
// the raw value is non-numeric, fractional, or not positive.
func (r *ItemRequest) ParseQuantity() (int, bool) {
	if r.Quantity == "" {
		return 0, false
	}
	n, err := strconv.Atoi(r.Quantity.String())
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// IsPacked returns the packed flag, defaulting to false when absent.
func (r *ItemRequest) IsPacked() bool {
	return r.Packed != nil && *r.Packed
}

// Validate checks if the raw item descriptor is valid
func (r *ItemRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Name == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > MaxItemNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "name must be 100 characters or less"})
	}
	if _, ok := r.ParseQuantity(); !ok {
		errors = append(errors, FieldError{Field: "quantity", Message: "quantity must be a positive integer"})
	}

	return errors
}

// ListItemsRequest is a batch of raw item descriptors for a list's items
// sub-resource. POST appends the batch; PUT replaces the list's entire item
// set with it.
type ListItemsRequest struct {
	Items []ItemRequest `json:"items"`
}

// Validate checks the batch shape. Per-entry failures are reported with the
// entry's index so the caller can identify the offending descriptor.
func (r *ListItemsRequest) Validate() []FieldError {
	var errors []FieldError

	if len(r.Items) > MaxItemsPerRequest {
		errors = append(errors, FieldError{Field: "items", Message: "too many items in one request"})
		return errors
	}
	for i := range r.Items {
		for _, fe := range r.Items[i].Validate() {
			errors = append(errors, FieldError{
				Field:   "items[" + strconv.Itoa(i) + "]." + fe.Field,
				Message: fe.Message,
			})
		}
	}

	return errors
}
