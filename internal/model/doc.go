// Package model defines domain entities and data structures for the Packwise API.
//
// The model package contains all struct definitions for domain objects, request/response
// types, and error definitions. Models are used across all layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - Category: grouping label for catalog items ("clothing", "documents")
//   - Condition: trip-characteristic tag used to filter suggestions ("cold", "beach", "any")
//   - Item: catalog entry, unique by name, tagged with a category and condition
//   - PackingList: a traveler's list for one trip, owned by a single user
//   - PackingListItem: the quantified association between an Item and a PackingList
//   - User: application user with authentication credentials
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Item struct {
//	    ID        string `json:"id"`
//	    Name      string `json:"name"`
//	    Category  string `json:"category"`
//	    Condition string `json:"condition"`
//	    Suggested bool   `json:"suggested"`
//	}
//
// # Reserved Catalog Tags
//
// Two tag values are reserved: the "any" condition marks items that apply
// regardless of trip condition, and the "user" category/condition pair marks
// items minted ad hoc by a traveler rather than curated catalog suggestions.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string `json:"type"`
//	    Title   string `json:"title"`
//	    Status  int    `json:"status"`
//	    Detail  string `json:"detail"`
//	}
package model
