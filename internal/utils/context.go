// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TenantIDCtxKey is the key used to store the tenant identifier in the context.
// The auth middleware writes it, handlers read it via GetTenantIDFromContext.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.TenantIDCtxKey, "acme")
var TenantIDCtxKey = contextKey("tenantID")

// SessionIDCtxKey is the key used to store the identifier of the running sync
// session in the context.
var SessionIDCtxKey = contextKey("sessionID")

// GetTenantIDFromContext retrieves the tenant identifier from the context.
//
// Returns the tenant ID and an ok flag:
//   - ok == true : value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
//
// Example usage:
//
//	tenantID, ok := utils.GetTenantIDFromContext(ctx)
//	if !ok {
//	    // handle unauthenticated request
//	}
func GetTenantIDFromContext(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(TenantIDCtxKey).(string)
	return tenantID, ok && tenantID != ""
}

// WithSessionID returns a copy of ctx carrying the sync session identifier.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDCtxKey, sessionID)
}

// GetSessionIDFromContext retrieves the sync session identifier from the
// context.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok
}
