// Package cursor provides opaque pagination token encoding/decoding.
package cursor

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidToken indicates a page token that was not produced by Encode.
var ErrInvalidToken = errors.New("invalid page token")

// Cursor is the keyset position after the last row of a page. Rows are
// ordered by UpdatedAt descending, then ID descending.
type Cursor struct {
	// UpdatedAt is the last row's update time in Unix milliseconds.
	UpdatedAt int64 `json:"u"`
	// ID breaks ties between rows updated in the same millisecond.
	ID string `json:"i"`
}

// Encode encodes a cursor to an opaque base64 string.
func Encode(c Cursor) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal cursor: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode decodes an opaque base64 string to a cursor.
func Decode(token string) (Cursor, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Cursor{}, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: decode base64: %v", ErrInvalidToken, err)
	}

	var c Cursor
	if err := json.Unmarshal(data, &c); err != nil {
		return Cursor{}, fmt.Errorf("%w: unmarshal cursor: %v", ErrInvalidToken, err)
	}
	if c.ID == "" {
		return Cursor{}, fmt.Errorf("%w: missing id", ErrInvalidToken)
	}
	return c, nil
}
