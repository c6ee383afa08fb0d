// Package ctxutil provides context utility functions.
package ctxutil

import "context"

// Canceled returns the context error if ctx is already done, nil otherwise.
// git operations call it on entry so a canceled caller never spawns a git process.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}
