// Package handler exposes the Packwise HTTP API.
//
// Handlers decode requests, delegate to the service layer, and encode
// responses. Routing uses Go 1.22 method+path patterns registered in
// cmd/server. Successful responses wrap payloads in a data envelope;
// errors are RFC 9457 problem documents produced by MapServiceError.
package handler
