// Package testdb provides test database utilities for the Packwise API.
//
// Each call to New spins up a connection to a running SurrealDB instance,
// claims a unique namespace, and applies the schema migrations, so every
// test sees a fresh catalog with only the baseline tags (the "any"
// condition and the "user" tags).
//
// # Test Database Setup
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    // Use tdb.DB for database operations
//	}
//
// # Isolation
//
// Namespaces are derived from a process-wide counter and the clock, so
// parallel tests never collide. Close removes the namespace.
//
// # Shared Database
//
// For subtests that can share schema setup:
//
//	tdb := testdb.NewShared(t)
//	t.Run("create", func(t *testing.T) {
//	    db := tdb.SetupSubtest(t) // resets table data
//	    ...
//	})
package testdb
