package test

import "github.com/google/uuid"

// RandomLogin returns a login that is unique across test runs.
func RandomLogin(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}
