// Package toolutil provides shared helper functions for the lookup surfaces
// (MCP tools and the HTTP proxy).
package toolutil

import (
	"fmt"
	"strings"
)

// RequireParam trims value and returns an error naming param when it is empty.
func RequireParam(param, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", fmt.Errorf("%s is required", param)
	}
	return v, nil
}

// NonNil returns s, or an empty slice when s is nil, so JSON encodes [] not null.
func NonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
