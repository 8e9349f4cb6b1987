// Package requestid carries the request correlation id on a context so code
// below the HTTP layer can log it.
package requestid

import "context"

type key struct{}

// NewContext returns a copy of ctx carrying id.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, key{}, id)
}

// FromContext extracts the request id, or "" when ctx has none.
func FromContext(ctx context.Context) string {
	if rid, ok := ctx.Value(key{}).(string); ok {
		return rid
	}
	return ""
}
