package model

import "time"

// Reserved catalog tag values.
const (
	// ConditionAny marks items that apply regardless of trip condition.
	// It must exist as a condition row; suggestion queries depend on it.
	ConditionAny = "any"

	// CategoryUser and ConditionUser tag items minted ad hoc by a traveler
	// rather than curated catalog suggestions.
	CategoryUser  = "user"
	ConditionUser = "user"
)

// Business constraints
const (
	MaxItemNameLength = 100
	MaxTagNameLength  = 50
)

// Category is a grouping label for catalog items, unique by name.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// Condition is a trip-characteristic tag used to filter suggestions,
// unique by name.
type Condition struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// Item is a catalog entry. Name is the identity key: the catalog holds at
// most one row per distinct name, enforced by a unique index so concurrent
// creations cannot slip a duplicate past the resolver's read-then-create.
// Category and Condition carry the referenced tag names, matching what the
// API returns to clients.
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Condition string    `json:"condition"`
	Suggested bool      `json:"suggested"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// IsUserDefined returns true for items minted ad hoc by a traveler.
func (i *Item) IsUserDefined() bool {
	return i.Category == CategoryUser && i.Condition == ConditionUser
}

// Suggestions is the Suggestion Engine's response: condition-specific items,
// general ("any") items, and the caller's personal favorites, deduplicated
// across the three sets by catalog-item name.
type Suggestions struct {
	Conditional []*Item `json:"conditional_items"`
	General     []*Item `json:"general_items"`
	Favorites   []*Item `json:"user_favorite_items"`
}

// CreateTagRequest represents a request to create a category or condition
type CreateTagRequest struct {
	Name string `json:"name"`
}

// Validate checks if the tag create request is valid
func (r *CreateTagRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Name == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > MaxTagNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "name must be 50 characters or less"})
	}

	return errors
}

// UpdateTagRequest represents a request to rename a category or condition
type UpdateTagRequest struct {
	Name *string `json:"name,omitempty"`
}

// Validate checks if the tag update request is valid
func (r *UpdateTagRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Name != nil {
		if *r.Name == "" {
			errors = append(errors, FieldError{Field: "name", Message: "name cannot be empty"})
		} else if len(*r.Name) > MaxTagNameLength {
			errors = append(errors, FieldError{Field: "name", Message: "name must be 50 characters or less"})
		}
	}

	return errors
}

// CreateItemRequest represents a request to create a catalog item directly.
// Category and condition reference existing tags by name.
type CreateItemRequest struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Condition string `json:"condition"`
	Suggested bool   `json:"suggested"`
}

// Validate checks if the item create request is valid
func (r *CreateItemRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Name == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > MaxItemNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "name must be 100 characters or less"})
	}
	if r.Category == "" {
		errors = append(errors, FieldError{Field: "category", Message: "category is required"})
	}
	if r.Condition == "" {
		errors = append(errors, FieldError{Field: "condition", Message: "condition is required"})
	}

	return errors
}

// UpdateItemRequest represents a request to update a catalog item
type UpdateItemRequest struct {
	Name      *string `json:"name,omitempty"`
	Category  *string `json:"category,omitempty"`
	Condition *string `json:"condition,omitempty"`
	Suggested *bool   `json:"suggested,omitempty"`
}

// Validate checks if the item update request is valid
func (r *UpdateItemRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Name != nil {
		if *r.Name == "" {
			errors = append(errors, FieldError{Field: "name", Message: "name cannot be empty"})
		} else if len(*r.Name) > MaxItemNameLength {
			errors = append(errors, FieldError{Field: "name", Message: "name must be 100 characters or less"})
		}
	}
	if r.Category != nil && *r.Category == "" {
		errors = append(errors, FieldError{Field: "category", Message: "category cannot be empty"})
	}
	if r.Condition != nil && *r.Condition == "" {
		errors = append(errors, FieldError{Field: "condition", Message: "condition cannot be empty"})
	}

	return errors
}
