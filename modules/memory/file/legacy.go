package file

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/mnemo-chat/mnemo/internal/memory"

	_ "modernc.org/sqlite" // SQLite driver registration
)

// readLegacyDB recovers entries from a previous-generation SQLite
// database. It is read-only: the database is a migration source, never a
// write target.
func (s *Store) readLegacyDB(ctx context.Context) ([]memory.Entry, bool, error) {
	if _, err := os.Stat(s.cfg.LegacyDBPath); errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}

	db, err := sql.Open("sqlite", "file:"+s.cfg.LegacyDBPath+"?mode=ro")
	if err != nil {
		return nil, false, fmt.Errorf("file: open legacy db %s: %w", s.cfg.LegacyDBPath, err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, `SELECT id, content, created_at FROM facts ORDER BY rowid`)
	if err != nil {
		return nil, false, fmt.Errorf("file: query legacy db: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []memory.Entry
	for rows.Next() {
		var (
			id, content string
			createdAt   sql.NullString
		)
		if err := rows.Scan(&id, &content, &createdAt); err != nil {
			return nil, false, fmt.Errorf("file: scan legacy row: %w", err)
		}

		e := memory.Entry{
			ID:      "legacy-db-" + id,
			Speaker: memory.SpeakerUser,
			Content: content,
			Context: "legacy_db",
		}
		if createdAt.Valid {
			e.Timestamp = parseLegacyTime(createdAt.String)
		}
		if e.Validate() != nil {
			continue
		}
		e.Seal()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("file: iterate legacy db: %w", err)
	}

	return entries, true, nil
}
