// Package pagination issues and reads the opaque NextToken values served by
// the fake endpoint's list operations.
package pagination

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strings"
)

const (
	// DefaultLimit is the page size when a limit is not provided.
	DefaultLimit = 25
	// MaxLimit caps how many items a single page may return.
	MaxLimit = 100
)

const tokenPrefix = "after|"

// Cursor marks the last key returned on the previous page.
type Cursor struct {
	After string
}

// NormalizeLimit enforces the default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// EncodeCursor builds a base64 token from the cursor.
func EncodeCursor(cursor Cursor) string {
	return base64.RawURLEncoding.EncodeToString([]byte(tokenPrefix + cursor.After))
}

// ParseCursor decodes a token produced by EncodeCursor. An empty token yields nil.
func ParseCursor(value string) (*Cursor, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}
	after, ok := strings.CutPrefix(string(decoded), tokenPrefix)
	if !ok || after == "" {
		return nil, fmt.Errorf("invalid cursor format")
	}
	return &Cursor{After: after}, nil
}

// Page returns up to limit keys following the token's cursor. keys must be
// sorted. next is empty on the last page.
func Page(keys []string, token string, limit int) (page []string, next string, err error) {
	cursor, err := ParseCursor(token)
	if err != nil {
		return nil, "", err
	}
	start := 0
	if cursor != nil {
		start = sort.SearchStrings(keys, cursor.After)
		if start < len(keys) && keys[start] == cursor.After {
			start++
		}
	}
	end := start + NormalizeLimit(limit)
	if end >= len(keys) {
		return keys[start:], "", nil
	}
	page = keys[start:end]
	return page, EncodeCursor(Cursor{After: page[len(page)-1]}), nil
}
