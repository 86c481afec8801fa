// Package helpers provides test utility functions for the Packwise API.
//
// The helpers package contains HTTP request builders, response assertion
// helpers, JWT utilities, and pointer helpers for acceptance tests.
//
// # HTTP Helpers
//
// Build and inspect requests against a wired router:
//
//	req := helpers.NewRequest(t, "POST", "/v1/packing-lists").
//	    WithBody(payload).
//	    WithAuth(jwtHelper, user).
//	    Build()
//
//	helpers.AssertStatus(t, resp, http.StatusCreated)
//	data := helpers.GetDataFromResponse(t, resp)
//
// # JWT Helpers
//
// Sign tokens without key files:
//
//	jwtSvc := helpers.NewTestJWTService(t)
//	h := helpers.NewJWTHelper(t)
//	token := h.GenerateToken(user)
//
// # Assertion Helpers
//
//	helpers.AssertRecordExists(t, db, "item", item.ID)
//	helpers.AssertValidationError(t, resp, "quantity")
package helpers
