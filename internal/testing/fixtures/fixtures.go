// Package fixtures provides test data factories for e2e testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories handle database insertion
// and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	user := f.CreateUser(t)
//	list := f.CreatePackingList(t, user)
//	entry := f.CreateListEntry(t, list, "Sunscreen")
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/packwise/api/internal/database"
	"github.com/packwise/api/internal/model"
	"github.com/packwise/api/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Factory creates test entities in the database
type Factory struct {
	users      *repository.UserRepository
	categories *repository.CategoryRepository
	conditions *repository.ConditionRepository
	items      *repository.ItemRepository
	lists      *repository.PackingListRepository
	entries    *repository.PackingListItemRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		users:      repository.NewUserRepository(db),
		categories: repository.NewCategoryRepository(db),
		conditions: repository.NewConditionRepository(db),
		items:      repository.NewItemRepository(db),
		lists:      repository.NewPackingListRepository(db),
		entries:    repository.NewPackingListItemRepository(db),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with a timeout tied to the test lifetime
func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return c
}

// mustDate parses a date-only value or fails the test
func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(model.DateFormat, value)
	if err != nil {
		t.Fatalf("fixtures: failed to parse date %q: %v", value, err)
	}
	return parsed
}

// ============================================================================
// User Fixtures
// ============================================================================

// UserOpts customizes user creation
type UserOpts struct {
	Email    string
	Username string
	Password string
}

// CreateUser creates a user with optional customizations
func (f *Factory) CreateUser(t *testing.T, opts ...func(*UserOpts)) *model.User {
	t.Helper()

	o := &UserOpts{
		Email:    fmt.Sprintf("user_%s@test.local", randomID()),
		Username: fmt.Sprintf("user_%s", randomID()),
		Password: "testpass123",
	}
	for _, fn := range opts {
		fn(o)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(o.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: failed to hash password: %v", err)
	}
	hashStr := string(hash)

	user := &model.User{
		Email:    o.Email,
		Username: &o.Username,
		Hash:     &hashStr,
	}
	if err := f.users.Create(ctx(t), user); err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}
	return user
}

// ============================================================================
// Catalog Fixtures
// ============================================================================

// CreateCategory creates a category tag
func (f *Factory) CreateCategory(t *testing.T, name string) *model.Category {
	t.Helper()

	category := &model.Category{Name: name}
	if err := f.categories.Create(ctx(t), category); err != nil {
		t.Fatalf("fixtures: failed to create category %q: %v", name, err)
	}
	return category
}

// CreateCondition creates a condition tag
func (f *Factory) CreateCondition(t *testing.T, name string) *model.Condition {
	t.Helper()

	condition := &model.Condition{Name: name}
	if err := f.conditions.Create(ctx(t), condition); err != nil {
		t.Fatalf("fixtures: failed to create condition %q: %v", name, err)
	}
	return condition
}

// ItemOpts customizes catalog item creation
type ItemOpts struct {
	Category  string
	Condition string
	Suggested bool
}

// CreateItem creates a catalog item. Defaults to a user-minted item;
// use the option to mark it as a curated suggestion.
func (f *Factory) CreateItem(t *testing.T, name string, opts ...func(*ItemOpts)) *model.Item {
	t.Helper()

	o := &ItemOpts{
		Category:  model.CategoryUser,
		Condition: model.ConditionUser,
	}
	for _, fn := range opts {
		fn(o)
	}

	item := &model.Item{
		Name:      name,
		Category:  o.Category,
		Condition: o.Condition,
		Suggested: o.Suggested,
	}
	if err := f.items.Create(ctx(t), item); err != nil {
		t.Fatalf("fixtures: failed to create item %q: %v", name, err)
	}
	return item
}

// CreateSuggestedItem creates a curated suggestion for the given condition
func (f *Factory) CreateSuggestedItem(t *testing.T, name, category, condition string) *model.Item {
	return f.CreateItem(t, name, func(o *ItemOpts) {
		o.Category = category
		o.Condition = condition
		o.Suggested = true
	})
}

// ============================================================================
// Packing List Fixtures
// ============================================================================

// ListOpts customizes packing list creation
type ListOpts struct {
	Title              string
	DepartureDate      string
	ReturnDate         string
	OriginCountry      string
	DestinationCountry string
	DestinationCity    string
}

// CreatePackingList creates a packing list owned by the given user
func (f *Factory) CreatePackingList(t *testing.T, owner *model.User, opts ...func(*ListOpts)) *model.PackingList {
	t.Helper()

	o := &ListOpts{
		Title:              fmt.Sprintf("Trip %s", randomID()),
		DepartureDate:      "2026-10-01",
		ReturnDate:         "2026-10-14",
		OriginCountry:      "NL",
		DestinationCountry: "PT",
		DestinationCity:    "Lisbon",
	}
	for _, fn := range opts {
		fn(o)
	}

	departure := mustDate(t, o.DepartureDate)
	ret := mustDate(t, o.ReturnDate)

	list := &model.PackingList{
		Title:              o.Title,
		DepartureDate:      departure,
		ReturnDate:         ret,
		OriginCountry:      o.OriginCountry,
		DestinationCountry: o.DestinationCountry,
		DestinationCity:    o.DestinationCity,
		Owner:              owner.ID,
	}
	if err := f.lists.Create(ctx(t), list); err != nil {
		t.Fatalf("fixtures: failed to create packing list: %v", err)
	}
	return list
}

// EntryOpts customizes packing list entry creation
type EntryOpts struct {
	Quantity int
	Packed   bool
}

// CreateListEntry creates a single materialized entry on the given list
func (f *Factory) CreateListEntry(t *testing.T, list *model.PackingList, itemName string, opts ...func(*EntryOpts)) *model.PackingListItem {
	t.Helper()

	o := &EntryOpts{Quantity: 1}
	for _, fn := range opts {
		fn(o)
	}

	entry := &model.PackingListItem{
		ItemName:      itemName,
		Quantity:      o.Quantity,
		Packed:        o.Packed,
		PackingListID: list.ID,
		Owner:         list.Owner,
	}
	if err := f.entries.CreateBatch(ctx(t), []*model.PackingListItem{entry}); err != nil {
		t.Fatalf("fixtures: failed to create list entry %q: %v", itemName, err)
	}

	// CreateBatch does not echo created records; re-read for the ID
	created, err := f.entries.ListForList(ctx(t), list.ID)
	if err != nil {
		t.Fatalf("fixtures: failed to re-read list entries: %v", err)
	}
	for _, e := range created {
		if e.ItemName == itemName {
			return e
		}
	}
	t.Fatalf("fixtures: created entry %q not found on list %s", itemName, list.ID)
	return nil
}
