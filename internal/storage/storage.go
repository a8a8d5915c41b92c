package storage

import (
	"context"

	"github.com/louisbranch/tnl-dmg-calc/internal/session/domain"
)

// DefaultPageSize is used when a list request does not set one.
const DefaultPageSize = 20

// MaxPageSize caps a single page of saved sessions.
const MaxPageSize = 100

// SessionPage is one page of saved sessions, most recently updated first.
type SessionPage struct {
	Sessions      []domain.Saved
	NextPageToken string
}

// SessionStore persists saved sessions.
type SessionStore interface {
	PutSession(ctx context.Context, saved domain.Saved) error
	GetSession(ctx context.Context, id string) (domain.Saved, error)
	ListSessions(ctx context.Context, pageSize int, pageToken string) (SessionPage, error)
	DeleteSession(ctx context.Context, id string) error
}

// Store is a composite interface for calculator storage concerns.
type Store interface {
	SessionStore
	Close() error
}

// ClampPageSize applies the default and maximum page sizes.
func ClampPageSize(pageSize int) int {
	switch {
	case pageSize <= 0:
		return DefaultPageSize
	case pageSize > MaxPageSize:
		return MaxPageSize
	default:
		return pageSize
	}
}
