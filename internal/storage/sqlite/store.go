package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/tnl-dmg-calc/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/tnl-dmg-calc/internal/session/domain"
	"github.com/louisbranch/tnl-dmg-calc/internal/storage"
	"github.com/louisbranch/tnl-dmg-calc/internal/storage/cursor"
	"github.com/louisbranch/tnl-dmg-calc/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides a SQLite-backed saved-session store.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at the provided path and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// DB exposes the underlying handle.
func (s *Store) DB() *sql.DB {
	if s == nil {
		return nil
	}
	return s.sqlDB
}

// PutSession inserts or replaces a saved session. CreatedAt is kept from the
// first write.
func (s *Store) PutSession(ctx context.Context, saved domain.Saved) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(saved.ID) == "" {
		return fmt.Errorf("session id is required")
	}
	if strings.TrimSpace(saved.Token) == "" {
		return domain.ErrEmptyToken
	}
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = time.Now().UTC()
	}
	if saved.UpdatedAt.IsZero() {
		saved.UpdatedAt = saved.CreatedAt
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO sessions (id, name, token, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    token = excluded.token,
    updated_at = excluded.updated_at
`, saved.ID, saved.Name, saved.Token, toMillis(saved.CreatedAt), toMillis(saved.UpdatedAt))
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// GetSession fetches a saved session by ID.
func (s *Store) GetSession(ctx context.Context, id string) (domain.Saved, error) {
	if err := s.ready(ctx); err != nil {
		return domain.Saved{}, err
	}
	if strings.TrimSpace(id) == "" {
		return domain.Saved{}, fmt.Errorf("session id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT id, name, token, created_at, updated_at FROM sessions WHERE id = ?", id)
	saved, err := scanSaved(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Saved{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.Saved{}, fmt.Errorf("get session: %w", err)
	}
	return saved, nil
}

// ListSessions returns saved sessions, most recently updated first.
func (s *Store) ListSessions(ctx context.Context, pageSize int, pageToken string) (storage.SessionPage, error) {
	if err := s.ready(ctx); err != nil {
		return storage.SessionPage{}, err
	}
	pageSize = storage.ClampPageSize(pageSize)

	query := "SELECT id, name, token, created_at, updated_at FROM sessions"
	args := []any{}
	if strings.TrimSpace(pageToken) != "" {
		c, err := cursor.Decode(pageToken)
		if err != nil {
			return storage.SessionPage{}, err
		}
		query += " WHERE updated_at < ? OR (updated_at = ? AND id < ?)"
		args = append(args, c.UpdatedAt, c.UpdatedAt, c.ID)
	}
	query += " ORDER BY updated_at DESC, id DESC LIMIT ?"
	args = append(args, pageSize+1)

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return storage.SessionPage{}, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	page := storage.SessionPage{Sessions: make([]domain.Saved, 0, pageSize)}
	for rows.Next() {
		saved, err := scanSaved(rows)
		if err != nil {
			return storage.SessionPage{}, fmt.Errorf("scan session: %w", err)
		}
		page.Sessions = append(page.Sessions, saved)
	}
	if err := rows.Err(); err != nil {
		return storage.SessionPage{}, fmt.Errorf("list sessions: %w", err)
	}

	if len(page.Sessions) > pageSize {
		page.Sessions = page.Sessions[:pageSize]
		last := page.Sessions[pageSize-1]
		token, err := cursor.Encode(cursor.Cursor{UpdatedAt: toMillis(last.UpdatedAt), ID: last.ID})
		if err != nil {
			return storage.SessionPage{}, err
		}
		page.NextPageToken = token
	}
	return page, nil
}

// DeleteSession removes a saved session.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("session id is required")
	}

	res, err := s.sqlDB.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSaved(row rowScanner) (domain.Saved, error) {
	var (
		saved     domain.Saved
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(&saved.ID, &saved.Name, &saved.Token, &createdAt, &updatedAt); err != nil {
		return domain.Saved{}, err
	}
	saved.CreatedAt = fromMillis(createdAt)
	saved.UpdatedAt = fromMillis(updatedAt)
	return saved, nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

var _ storage.Store = (*Store)(nil)
