package tests

import (
	"context"
	"testing"

	"github.com/packwise/api/internal/model"
	"github.com/packwise/api/internal/repository"
	"github.com/packwise/api/internal/service"
	"github.com/packwise/api/internal/testing/fixtures"
	"github.com/packwise/api/internal/testing/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
FEATURE: Packing Lists and Item Materialization
DOMAIN: Packing Lists

ACCEPTANCE CRITERIA:
===================

AC-LIST-001: Create and Read List
  GIVEN an authenticated user
  WHEN they create a packing list
  THEN the list is stored with their ownership
  AND appears in their list index

AC-LIST-002: Add Items Appends Materialized Entries
  GIVEN a list and a batch of raw item references
  WHEN the batch is added
  THEN each reference is resolved against the catalog
  AND entries carry the canonical catalog names
  AND existing entries are untouched

AC-LIST-003: Replace Swaps the Entire Item Set
  GIVEN a list with existing entries
  WHEN a replace batch is submitted
  THEN the old entries are gone
  AND only the new batch remains

AC-LIST-004: Failed Resolution Materializes Nothing
  GIVEN a batch containing an unknown suggested reference
  WHEN the batch is added
  THEN the request fails
  AND no entries are created

AC-LIST-005: Ownership Is Enforced
  GIVEN a list owned by user A
  WHEN user B reads or mutates it
  THEN the request fails

AC-LIST-006: Deleting a List Removes Its Entries
  GIVEN a list with entries
  WHEN the list is deleted
  THEN its entries are deleted with it
*/

// createPackingListService creates a PackingListService backed by the real database
func createPackingListService(tdb *testdb.TestDB) *service.PackingListService {
	return service.NewPackingListService(service.PackingListServiceConfig{
		ListRepo:  repository.NewPackingListRepository(tdb.DB),
		EntryRepo: repository.NewPackingListItemRepository(tdb.DB),
		Resolver:  createItemService(tdb),
	})
}

func TestPackingLists_CreateAndRead(t *testing.T) {
	// AC-LIST-001: Create and Read List
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	user := f.CreateUser(t)

	svc := createPackingListService(tdb)
	ctx := context.Background()

	list, err := svc.CreateList(ctx, user.ID, &model.CreatePackingListRequest{
		Title:              "Lisbon in October",
		DepartureDate:      "2026-10-01",
		ReturnDate:         "2026-10-14",
		OriginCountry:      "NL",
		DestinationCountry: "PT",
		DestinationCity:    "Lisbon",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, list.ID)
	assert.Equal(t, user.ID, list.Owner)

	lists, err := svc.ListLists(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "Lisbon in October", lists[0].Title)
}

func TestPackingLists_AddItemsAppendsMaterializedEntries(t *testing.T) {
	// AC-LIST-002: Add Items Appends Materialized Entries
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	user := f.CreateUser(t)
	list := f.CreatePackingList(t, user)
	f.CreateCategory(t, "toiletries")
	f.CreateCondition(t, "beach")
	f.CreateSuggestedItem(t, "Sunscreen", "toiletries", "beach")

	svc := createPackingListService(tdb)
	ctx := context.Background()

	entries, err := svc.AddItems(ctx, list.ID, user.ID, &model.ListItemsRequest{
		Items: []model.ItemRequest{
			{Name: "Sunscreen", Quantity: "1", Suggested: true},
			{Name: "Lucky hat", Quantity: "2"},
		},
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byName := map[string]*model.PackingListItem{}
	for _, e := range entries {
		byName[e.ItemName] = e
	}
	require.Contains(t, byName, "Sunscreen")
	require.Contains(t, byName, "Lucky hat")
	assert.Equal(t, 2, byName["Lucky hat"].Quantity)
	assert.Equal(t, list.ID, byName["Sunscreen"].PackingListID)
	assert.Equal(t, user.ID, byName["Sunscreen"].Owner)

	// A second batch appends without disturbing the first
	more, err := svc.AddItems(ctx, list.ID, user.ID, &model.ListItemsRequest{
		Items: []model.ItemRequest{{Name: "Toothbrush", Quantity: "1"}},
	})
	require.NoError(t, err)
	assert.Len(t, more, 3)
}

func TestPackingLists_ReplaceSwapsEntireItemSet(t *testing.T) {
	// AC-LIST-003: Replace Swaps the Entire Item Set
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	user := f.CreateUser(t)
	list := f.CreatePackingList(t, user)
	f.CreateListEntry(t, list, "Old thing")
	f.CreateItem(t, "Old thing")

	svc := createPackingListService(tdb)
	ctx := context.Background()

	entries, err := svc.ReplaceItems(ctx, list.ID, user.ID, &model.ListItemsRequest{
		Items: []model.ItemRequest{
			{Name: "New thing", Quantity: "1"},
		},
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "New thing", entries[0].ItemName)

	// Empty replace clears the list
	entries, err = svc.ReplaceItems(ctx, list.ID, user.ID, &model.ListItemsRequest{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPackingLists_FailedResolutionMaterializesNothing(t *testing.T) {
	// AC-LIST-004: Failed Resolution Materializes Nothing
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	user := f.CreateUser(t)
	list := f.CreatePackingList(t, user)

	svc := createPackingListService(tdb)
	ctx := context.Background()

	_, err := svc.AddItems(ctx, list.ID, user.ID, &model.ListItemsRequest{
		Items: []model.ItemRequest{
			{Name: "Phantom gadget", Quantity: "1", Suggested: true},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrSuggestedItemUnknown)

	entries, err := svc.GetItems(ctx, list.ID, user.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPackingLists_OwnershipIsEnforced(t *testing.T) {
	// AC-LIST-005: Ownership Is Enforced
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	owner := f.CreateUser(t)
	intruder := f.CreateUser(t)
	list := f.CreatePackingList(t, owner)

	svc := createPackingListService(tdb)
	ctx := context.Background()

	_, err := svc.GetList(ctx, list.ID, intruder.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotListOwner)

	err = svc.DeleteList(ctx, list.ID, intruder.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotListOwner)

	// The owner still sees the list
	got, err := svc.GetList(ctx, list.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, list.ID, got.ID)
}

func TestPackingLists_DeleteRemovesEntries(t *testing.T) {
	// AC-LIST-006: Deleting a List Removes Its Entries
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	user := f.CreateUser(t)
	list := f.CreatePackingList(t, user)
	f.CreateListEntry(t, list, "Socks")
	f.CreateListEntry(t, list, "Charger")

	svc := createPackingListService(tdb)
	ctx := context.Background()

	require.NoError(t, svc.DeleteList(ctx, list.ID, user.ID))

	entryRepo := repository.NewPackingListItemRepository(tdb.DB)
	remaining, err := entryRepo.ListForList(ctx, list.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
