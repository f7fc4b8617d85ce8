// Package utils provides general-purpose helper utilities
// used across different parts of docsync.
// Includes tools for working with context, type-safe keys, revision hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
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

// ReplicaIDCtxKey is the key used to store the authenticated replica
// identifier in the context. Used together with GetReplicaIDFromContext for
// type-safe retrieval of the replica ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ReplicaIDCtxKey, "laptop-7f3a")
var ReplicaIDCtxKey = contextKey("replicaID")

// GetReplicaIDFromContext retrieves the replica identifier from the context.
//
// Returns the replica ID and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetReplicaIDFromContext(ctx context.Context) (string, bool) {
	replicaID, ok := ctx.Value(ReplicaIDCtxKey).(string)
	return replicaID, ok
}
