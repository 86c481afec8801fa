// Package middleware provides HTTP middleware for the Packwise API.
//
// The middleware package contains reusable middleware components for
// authentication, rate limiting, idempotency, and request processing.
//
// # Authentication
//
// Auth validates bearer tokens and puts the caller's identity in the
// request context; OptionalAuth does the same but lets anonymous
// requests through, which the suggestions endpoint relies on.
//
// After authentication, handlers can access user info:
//
//	userID := middleware.GetUserID(r.Context())
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetUserID(ctx): Returns authenticated user ID
//   - GetUserEmail(ctx): Returns authenticated user email
//   - GetClaims(ctx): Returns the full token claims
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
