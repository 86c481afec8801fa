// Package repository implements the data access layer for the Packwise API.
//
// The repository package contains all database operations using SurrealDB.
// Each repository struct handles CRUD operations for a specific domain entity.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database connection
//   - Methods implement specific data operations (Create, GetByID, GetByName, etc.)
//   - SurrealQL queries are used for all database interactions
//   - Results are parsed and mapped to model structs
//
// # Found-or-Not Lookups
//
// Single-record lookups return (nil, nil) when no record matches, so the
// service layer branches on the returned entity rather than on driver
// errors. Only genuine failures surface as errors.
//
// # Uniqueness
//
// The catalog's one-row-per-item-name invariant is enforced by a UNIQUE
// index in the schema (see migrations/), not by repository-side checks.
// Create methods translate the index violation into database.ErrDuplicate
// so callers can recover from concurrent-creation races.
//
// # Query Patterns
//
// Common query patterns used:
//
//   - Parameterized queries with $variable syntax for security
//   - type::record() for safe ID handling
//   - time::now() for automatic timestamps
//
// # Example Usage
//
//	repo := NewItemRepository(db)
//	item, err := repo.GetByName(ctx, "wool socks")
//	if err != nil {
//	    return err
//	}
//	if item == nil {
//	    // No catalog row with that name
//	}
package repository
