package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/packwise/api/internal/handler"
	"github.com/packwise/api/internal/middleware"
	"github.com/packwise/api/internal/model"
	"github.com/packwise/api/internal/repository"
	"github.com/packwise/api/internal/service"
	"github.com/packwise/api/internal/testing/fixtures"
	"github.com/packwise/api/internal/testing/helpers"
	"github.com/packwise/api/internal/testing/testdb"
	"github.com/packwise/api/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
FEATURE: HTTP API Surface
DOMAIN: Transport

ACCEPTANCE CRITERIA:
===================

AC-HTTP-001: Register and Login over HTTP
  GIVEN the wired router
  WHEN a client registers and logs in
  THEN both round-trips succeed with tokens in the data envelope

AC-HTTP-002: Protected Endpoints Reject Anonymous Callers
  GIVEN a route behind auth middleware
  WHEN called without a token
  THEN a 401 problem document is returned

AC-HTTP-003: Suggestions Endpoint Serves Anonymous and Authenticated
  GIVEN curated suggestions
  WHEN the conditions endpoint is called without a token
  THEN groups are returned with empty favorites
  WHEN called with a valid token by a user with packing history
  THEN favorites are populated

AC-HTTP-004: List Item Batches over HTTP
  GIVEN an owned packing list
  WHEN a batch is POSTed to its items sub-resource
  THEN materialized entries are returned with 201
*/

// testAPI bundles the wired router and the JWT service that signs for it
type testAPI struct {
	router http.Handler
	jwtSvc *jwt.Service
}

// newTestAPI wires repositories, services, handlers and routes the way
// the server binary does, minus the global middleware chain.
func newTestAPI(t *testing.T, tdb *testdb.TestDB) *testAPI {
	t.Helper()

	jwtSvc := helpers.NewTestJWTService(t)

	userRepo := repository.NewUserRepository(tdb.DB)
	categoryRepo := repository.NewCategoryRepository(tdb.DB)
	conditionRepo := repository.NewConditionRepository(tdb.DB)
	itemRepo := repository.NewItemRepository(tdb.DB)
	listRepo := repository.NewPackingListRepository(tdb.DB)
	listItemRepo := repository.NewPackingListItemRepository(tdb.DB)

	authService := service.NewAuthService(userRepo, jwtSvc)
	itemService := service.NewItemService(service.ItemServiceConfig{
		ItemRepo:      itemRepo,
		CategoryRepo:  categoryRepo,
		ConditionRepo: conditionRepo,
	})
	packingListService := service.NewPackingListService(service.PackingListServiceConfig{
		ListRepo:  listRepo,
		EntryRepo: listItemRepo,
		Resolver:  itemService,
	})
	suggestionService := service.NewSuggestionService(service.SuggestionServiceConfig{
		ItemRepo:      itemRepo,
		ConditionRepo: conditionRepo,
		Favorites:     listItemRepo,
	})

	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(itemService, suggestionService)
	packingListHandler := handler.NewPackingListHandler(packingListService)

	authMiddleware := middleware.Auth(jwtSvc)
	optionalAuthMiddleware := middleware.OptionalAuth(jwtSvc)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)
	mux.Handle("GET /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.Me)))
	mux.Handle("GET /v1/items/conditions/{condition}", optionalAuthMiddleware(http.HandlerFunc(itemHandler.Suggestions)))
	mux.Handle("GET /v1/packing-lists", authMiddleware(http.HandlerFunc(packingListHandler.List)))
	mux.Handle("POST /v1/packing-lists/{id}/items", authMiddleware(http.HandlerFunc(packingListHandler.AddItems)))

	return &testAPI{router: mux, jwtSvc: jwtSvc}
}

// tokenFor signs an access token that the test router accepts
func (api *testAPI) tokenFor(t *testing.T, user *model.User) string {
	t.Helper()

	token, err := api.jwtSvc.Sign(jwt.Claims{
		Subject:   user.ID,
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func (api *testAPI) do(req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	api.router.ServeHTTP(resp, req)
	return resp
}

func TestHTTP_RegisterAndLogin(t *testing.T) {
	// AC-HTTP-001: Register and Login over HTTP
	tdb := testdb.New(t)
	defer tdb.Close()

	api := newTestAPI(t, tdb)

	resp := api.do(helpers.NewRequest(t, "POST", "/v1/auth/register").
		WithBody(map[string]any{
			"email":    "wire@test.local",
			"password": "password123",
		}).
		Build())
	helpers.AssertStatus(t, resp, http.StatusCreated)

	data := helpers.GetDataFromResponse(t, resp)
	assert.NotEmpty(t, data["access_token"])
	assert.Equal(t, "Bearer", data["token_type"])

	resp = api.do(helpers.NewRequest(t, "POST", "/v1/auth/login").
		WithBody(map[string]any{
			"email":    "wire@test.local",
			"password": "password123",
		}).
		Build())
	helpers.AssertStatus(t, resp, http.StatusOK)
}

func TestHTTP_ProtectedEndpointsRejectAnonymous(t *testing.T) {
	// AC-HTTP-002: Protected Endpoints Reject Anonymous Callers
	tdb := testdb.New(t)
	defer tdb.Close()

	api := newTestAPI(t, tdb)

	resp := api.do(helpers.NewRequest(t, "GET", "/v1/packing-lists").Build())
	helpers.AssertStatus(t, resp, http.StatusUnauthorized)

	resp = api.do(helpers.NewRequest(t, "GET", "/v1/auth/me").
		WithHeader("Authorization", "Bearer not-a-token").
		Build())
	helpers.AssertStatus(t, resp, http.StatusUnauthorized)
}

func TestHTTP_SuggestionsEndpoint(t *testing.T) {
	// AC-HTTP-003: Suggestions Endpoint Serves Anonymous and Authenticated
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	seedSuggestionCatalog(t, f)

	user := f.CreateUser(t)
	list := f.CreatePackingList(t, user)
	f.CreateListEntry(t, list, "Lucky hat")
	f.CreateItem(t, "Lucky hat")

	api := newTestAPI(t, tdb)

	// Anonymous: groups without favorites
	resp := api.do(helpers.NewRequest(t, "GET", "/v1/items/conditions/beach").Build())
	helpers.AssertStatus(t, resp, http.StatusOK)

	var anon struct {
		Data model.Suggestions `json:"data"`
	}
	helpers.DecodeResponse(t, resp, &anon)
	assert.NotEmpty(t, anon.Data.Conditional)
	assert.NotEmpty(t, anon.Data.General)
	assert.Empty(t, anon.Data.Favorites)

	// Authenticated: favorites from packing history
	resp = api.do(helpers.NewRequest(t, "GET", "/v1/items/conditions/beach").
		WithHeader("Authorization", "Bearer "+api.tokenFor(t, user)).
		Build())
	helpers.AssertStatus(t, resp, http.StatusOK)

	var authed struct {
		Data model.Suggestions `json:"data"`
	}
	helpers.DecodeResponse(t, resp, &authed)
	assert.ElementsMatch(t, []string{"Lucky hat"}, itemNames(authed.Data.Favorites))

	// Unknown condition: 404 problem document naming the precondition
	resp = api.do(helpers.NewRequest(t, "GET", "/v1/items/conditions/volcano").Build())
	helpers.AssertStatus(t, resp, http.StatusNotFound)
	assert.Contains(t, resp.Body.String(), "any")
}

func TestHTTP_ListItemBatches(t *testing.T) {
	// AC-HTTP-004: List Item Batches over HTTP
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	user := f.CreateUser(t)
	list := f.CreatePackingList(t, user)

	api := newTestAPI(t, tdb)

	resp := api.do(helpers.NewRequest(t, "POST", "/v1/packing-lists/"+list.ID+"/items").
		WithHeader("Authorization", "Bearer "+api.tokenFor(t, user)).
		WithBody(map[string]any{
			"items": []map[string]any{
				{"name": "Lucky hat", "quantity": 2},
				{"name": "Socks", "quantity": 4, "packed": true},
			},
		}).
		Build())
	helpers.AssertStatus(t, resp, http.StatusCreated)

	var created struct {
		Data []*model.PackingListItem `json:"data"`
	}
	helpers.DecodeResponse(t, resp, &created)
	require.Len(t, created.Data, 2)

	names := make([]string, 0, len(created.Data))
	for _, e := range created.Data {
		names = append(names, e.ItemName)
	}
	assert.ElementsMatch(t, []string{"Lucky hat", "Socks"}, names)
}
