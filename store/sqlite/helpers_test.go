package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	_ "modernc.org/sqlite"

	dbpkg "github.com/kofasentinel/atlas/internal/db"
	"github.com/kofasentinel/atlas/store/sqlite"
)

// openTestStore returns a Store over a unique in-memory database with
// the production PRAGMAs and schema.  Everything is torn down when the
// test finishes.
func openTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	// Shared-cache keeps the in-memory database alive while sql.DB
	// cycles its underlying connection.
	dsn := fmt.Sprintf(
		"file:test_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)",
		t.Name(),
	)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("openTestStore: sql.Open: %v", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	if err := conn.Ping(); err != nil {
		conn.Close()
		t.Fatalf("openTestStore: ping: %v", err)
	}

	if err := dbpkg.Migrate(context.Background(), conn); err != nil {
		conn.Close()
		t.Fatalf("openTestStore: migrate: %v", err)
	}

	writer := dbpkg.NewWorker(conn)
	t.Cleanup(func() {
		writer.Close()
		conn.Close()
	})

	return sqlite.New(conn, writer)
}
