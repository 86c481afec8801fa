// Package service implements Packwise business logic.
//
// Services sit between handlers and repositories. Each service declares
// the repository interfaces it depends on, so unit tests can substitute
// mocks without touching the database layer. All business errors are
// sentinel values defined in errors.go; handlers translate them to HTTP
// problem responses via the error mapper.
//
// The core of the package is the item resolution pipeline: ItemService
// resolves incoming item references against the shared catalog (minting
// user-defined catalog entries on first use), PackingListService
// materializes resolved batches into list entries atomically, and
// SuggestionService assembles condition-based packing suggestions.
package service
