package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/tnl-dmg-calc/internal/session/domain"
	"github.com/louisbranch/tnl-dmg-calc/internal/storage/cursor"
)

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestStoreDBNilSafe(t *testing.T) {
	var store *Store
	if store.DB() != nil {
		t.Fatal("expected nil DB for nil store")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close nil store: %v", err)
	}
	if err := store.PutSession(context.Background(), domain.Saved{ID: "x", Token: "t"}); err == nil {
		t.Fatal("expected unconfigured store error")
	}
}

func TestPutGetSessionRoundTrip(t *testing.T) {
	store := openTempStore(t)

	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	input := domain.Saved{
		ID:        "session-1",
		Name:      "Greatsword vs Dummy",
		Token:     "abc123",
		CreatedAt: created,
		UpdatedAt: created.Add(time.Hour),
	}
	if err := store.PutSession(context.Background(), input); err != nil {
		t.Fatalf("put session: %v", err)
	}

	got, err := store.GetSession(context.Background(), "session-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.ID != input.ID || got.Name != input.Name || got.Token != input.Token ||
		!got.CreatedAt.Equal(input.CreatedAt) || !got.UpdatedAt.Equal(input.UpdatedAt) {
		t.Fatalf("GetSession = %+v, want %+v", got, input)
	}
}

func TestPutSessionKeepsCreatedAt(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	first := domain.Saved{ID: "s", Name: "first", Token: "t1", CreatedAt: created, UpdatedAt: created}
	if err := store.PutSession(ctx, first); err != nil {
		t.Fatalf("put session: %v", err)
	}
	second := domain.Saved{ID: "s", Name: "second", Token: "t2", CreatedAt: created.Add(48 * time.Hour), UpdatedAt: created.Add(time.Hour)}
	if err := store.PutSession(ctx, second); err != nil {
		t.Fatalf("update session: %v", err)
	}

	got, err := store.GetSession(ctx, "s")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.Name != "second" || got.Token != "t2" {
		t.Fatalf("expected updated fields, got %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("expected created_at to be kept, got %v", got.CreatedAt)
	}
	if !got.UpdatedAt.Equal(created.Add(time.Hour)) {
		t.Fatalf("expected updated_at to change, got %v", got.UpdatedAt)
	}
}

func TestPutSessionValidates(t *testing.T) {
	store := openTempStore(t)

	if err := store.PutSession(context.Background(), domain.Saved{ID: " ", Token: "t"}); err == nil {
		t.Fatal("expected error for empty id")
	}
	if err := store.PutSession(context.Background(), domain.Saved{ID: "s"}); !errors.Is(err, domain.ErrEmptyToken) {
		t.Fatalf("expected ErrEmptyToken, got %v", err)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	store := openTempStore(t)

	_, err := store.GetSession(context.Background(), "missing")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteSession(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	if err := store.PutSession(ctx, domain.Saved{ID: "s", Name: "n", Token: "t"}); err != nil {
		t.Fatalf("put session: %v", err)
	}
	if err := store.DeleteSession(ctx, "s"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, err := store.GetSession(ctx, "s"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected deleted session to be gone, got %v", err)
	}
	if err := store.DeleteSession(ctx, "s"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestListSessionsPaginates(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		at := base.Add(time.Duration(i) * time.Minute)
		saved := domain.Saved{ID: fmt.Sprintf("s%d", i), Name: "n", Token: "t", CreatedAt: at, UpdatedAt: at}
		if err := store.PutSession(ctx, saved); err != nil {
			t.Fatalf("put session %d: %v", i, err)
		}
	}

	first, err := store.ListSessions(ctx, 2, "")
	if err != nil {
		t.Fatalf("list first page: %v", err)
	}
	if ids(first.Sessions) != "s4,s3" || first.NextPageToken == "" {
		t.Fatalf("unexpected first page %s token %q", ids(first.Sessions), first.NextPageToken)
	}

	second, err := store.ListSessions(ctx, 2, first.NextPageToken)
	if err != nil {
		t.Fatalf("list second page: %v", err)
	}
	if ids(second.Sessions) != "s2,s1" {
		t.Fatalf("unexpected second page %s", ids(second.Sessions))
	}

	last, err := store.ListSessions(ctx, 2, second.NextPageToken)
	if err != nil {
		t.Fatalf("list last page: %v", err)
	}
	if ids(last.Sessions) != "s0" || last.NextPageToken != "" {
		t.Fatalf("unexpected last page %s token %q", ids(last.Sessions), last.NextPageToken)
	}
}

func TestListSessionsTieBreaksByID(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, id := range []string{"a", "b", "c"} {
		if err := store.PutSession(ctx, domain.Saved{ID: id, Name: "n", Token: "t", CreatedAt: at, UpdatedAt: at}); err != nil {
			t.Fatalf("put session %s: %v", id, err)
		}
	}

	first, err := store.ListSessions(ctx, 2, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	second, err := store.ListSessions(ctx, 2, first.NextPageToken)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if ids(first.Sessions) != "c,b" || ids(second.Sessions) != "a" {
		t.Fatalf("unexpected pages %s / %s", ids(first.Sessions), ids(second.Sessions))
	}
}

func TestListSessionsRejectsBadToken(t *testing.T) {
	store := openTempStore(t)

	if _, err := store.ListSessions(context.Background(), 10, "garbage!"); !errors.Is(err, cursor.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestCanceledContext(t *testing.T) {
	store := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.GetSession(ctx, "s"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func ids(sessions []domain.Saved) string {
	out := ""
	for i, s := range sessions {
		if i > 0 {
			out += ","
		}
		out += s.ID
	}
	return out
}

func openTempStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calc.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
