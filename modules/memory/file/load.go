package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mnemo-chat/mnemo/internal/memory"
)

// loadLocked walks the source chain in priority order and returns the
// first usable result. Callers hold s.mu. The chain never hard-fails: an
// empty store is a valid final state, so Success is false only when a
// source that should exist errored and nothing after it recovered.
func (s *Store) loadLocked(ctx context.Context) memory.LoadResult {
	var firstErr error
	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	// Primary snapshot. A parse failure moves the file into quarantine
	// before falling through, so nothing is lost and the next successful
	// append writes a clean primary.
	entries, found, err := s.readSnapshot(s.cfg.Path)
	if err != nil {
		record(err)
		if qpath, qerr := s.quarantine(s.cfg.Path); qerr != nil {
			s.logger.Error("failed to quarantine corrupt store", "path", s.cfg.Path, "error", qerr)
		} else {
			s.logger.Warn("corrupt memory store quarantined", "path", s.cfg.Path, "quarantined", qpath)
		}
	} else if found {
		return memory.LoadResult{Entries: entries, Success: true, Source: "primary"}
	}

	for _, path := range s.cfg.BackupPaths {
		entries, found, err := s.readSnapshot(path)
		if err != nil {
			record(err)
			continue
		}
		if found {
			return memory.LoadResult{Entries: entries, Success: true, Source: "backup", Err: firstErr}
		}
	}

	if entries, found, err := s.readLegacyExport(); err != nil {
		record(err)
	} else if found {
		return memory.LoadResult{Entries: entries, Success: true, Source: "legacy_export", Err: firstErr}
	}

	if entries, found, err := s.readLegacyDB(ctx); err != nil {
		record(err)
	} else if found {
		return memory.LoadResult{Entries: entries, Success: true, Source: "legacy_db", Err: firstErr}
	}

	if entries, found, err := s.readNotes(); err != nil {
		record(err)
	} else if found {
		return memory.LoadResult{Entries: entries, Success: true, Source: "notes", Err: firstErr}
	}

	if entries, found, err := s.readKnowledge(); err != nil {
		record(err)
	} else if found {
		return memory.LoadResult{Entries: entries, Success: true, Source: "knowledge", Err: firstErr}
	}

	// Every source absent (or broken): start empty. Only a broken source
	// with nothing recovered after it marks the load degraded.
	return memory.LoadResult{Success: true, Source: "empty", Err: firstErr}
}

// readSnapshot reads a JSON entry array. found is false when the file does
// not exist or holds no bytes yet — both mean "no entries", not corruption.
// Structurally invalid records are skipped, not fatal; a non-empty file
// that does not parse at all is an error.
func (s *Store) readSnapshot(path string) (entries []memory.Entry, found bool, err error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("file: read %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, false, nil
	}

	var records []memory.Entry
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, false, fmt.Errorf("file: parse %s: %w", path, err)
	}

	entries = make([]memory.Entry, 0, len(records))
	for i := range records {
		if verr := records[i].Validate(); verr != nil {
			s.logger.Warn("skipping invalid memory record", "path", path, "index", i, "reason", verr)
			continue
		}
		records[i].Seal()
		entries = append(entries, records[i])
	}
	return entries, true, nil
}

// quarantine moves the unreadable file to a timestamped sibling. The bytes
// survive for inspection, and because the primary is gone afterward,
// repeated loads over the same corruption cannot mint further copies.
func (s *Store) quarantine(path string) (string, error) {
	qpath := fmt.Sprintf("%s.corrupt.%s", path, time.Now().UTC().Format("20060102T150405Z"))
	if err := os.Rename(path, qpath); err != nil {
		return "", err
	}
	return qpath, nil
}

// legacyExport matches the export format of the previous app generation.
type legacyExport struct {
	Memories []struct {
		ID        string `json:"id"`
		Text      string `json:"text"`
		Timestamp string `json:"timestamp"`
		Category  string `json:"category"`
	} `json:"memories"`
}

func (s *Store) readLegacyExport() ([]memory.Entry, bool, error) {
	raw, err := os.ReadFile(s.cfg.LegacyExportPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("file: read %s: %w", s.cfg.LegacyExportPath, err)
	}

	var export legacyExport
	if err := json.Unmarshal(raw, &export); err != nil {
		return nil, false, fmt.Errorf("file: parse %s: %w", s.cfg.LegacyExportPath, err)
	}

	entries := make([]memory.Entry, 0, len(export.Memories))
	for i, rec := range export.Memories {
		if strings.TrimSpace(rec.Text) == "" {
			continue
		}
		e := memory.Entry{
			ID:        rec.ID,
			Speaker:   memory.SpeakerUser,
			Content:   rec.Text,
			Context:   "legacy_export",
			Timestamp: parseLegacyTime(rec.Timestamp),
		}
		if e.ID == "" {
			e.ID = fmt.Sprintf("legacy-export-%d", i)
		}
		if rec.Category != "" {
			e.Context = "legacy_" + strings.ToLower(rec.Category)
		}
		e.Seal()
		entries = append(entries, e)
	}
	return entries, true, nil
}

// parseLegacyTime accepts the timestamp shapes legacy exports used; an
// unparseable value degrades to the zero time rather than dropping the
// record.
func parseLegacyTime(v string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, v); err == nil {
			return ts.UTC()
		}
	}
	return time.Time{}
}

// readNotes turns a plain-text notes file into one entry per non-empty
// line, tagged memory_file. IDs are positional so repeated loads of the
// same file produce identical entries.
func (s *Store) readNotes() ([]memory.Entry, bool, error) {
	entries, err := s.readLines(s.cfg.NotesPath, "memory-file", "memory_file")
	if err != nil || entries == nil {
		return nil, false, err
	}
	return entries, true, nil
}

// readKnowledge loads knowledge/<category>.txt files, one entry per line,
// tagged knowledge_<category>.
func (s *Store) readKnowledge() ([]memory.Entry, bool, error) {
	dirents, err := os.ReadDir(s.cfg.KnowledgeDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("file: read %s: %w", s.cfg.KnowledgeDir, err)
	}

	var entries []memory.Entry
	for _, d := range dirents {
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			continue
		}
		category := strings.ToLower(strings.TrimSuffix(d.Name(), ".txt"))
		lines, err := s.readLines(
			filepath.Join(s.cfg.KnowledgeDir, d.Name()),
			"knowledge-"+category,
			"knowledge_"+category,
		)
		if err != nil {
			return nil, false, err
		}
		entries = append(entries, lines...)
	}
	if entries == nil {
		return nil, false, nil
	}
	return entries, true, nil
}

// readLines reads one entry per non-blank line. Entries carry positional
// IDs under the given prefix and the file's modification time.
func (s *Store) readLines(path, idPrefix, context string) ([]memory.Entry, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("file: read %s: %w", path, err)
	}

	ts := time.Time{}
	if info, err := os.Stat(path); err == nil {
		ts = info.ModTime().UTC()
	}

	var entries []memory.Entry
	for i, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e := memory.Entry{
			ID:        fmt.Sprintf("%s-%d", idPrefix, i),
			Timestamp: ts,
			Speaker:   memory.SpeakerUser,
			Content:   line,
			Context:   context,
		}
		e.Seal()
		entries = append(entries, e)
	}
	return entries, nil
}
