// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package tsv

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/poiesic/retrace/core"
	"github.com/poiesic/retrace/store"
)

// fieldCount is the number of tab-separated columns per row:
// session_id, timestamp, role, text, normalized_text, origin_path.
const fieldCount = 6

// Store is the file-backed append-only index store. One row per line,
// tab-separated, text columns escaped. The store is single-writer;
// readers tolerate a write interrupted mid-row by skipping rows that do
// not decode.
type Store struct {
	path   string
	logger *slog.Logger
}

var _ store.IndexStore = (*Store)(nil)

// Open creates a Store at the given file path, creating parent
// directories as needed. The file itself is created on first append.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	return &Store{
		path:   path,
		logger: slog.Default().With("component", "tsv-store"),
	}, nil
}

// Path returns the location of the index file.
func (s *Store) Path() string {
	return s.path
}

// Append writes rows to the end of the store in the given order.
func (s *Store) Append(ctx context.Context, rows ...*core.Row) error {
	if len(rows) == 0 {
		return nil
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening index for append: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := w.WriteString(encodeRow(row)); err != nil {
			return fmt.Errorf("appending index row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing index: %w", err)
	}
	return f.Sync()
}

// Scan calls fn for every decodable row in append order. A store whose
// file does not exist yet scans as empty. Rows that fail to decode are
// skipped.
func (s *Store) Scan(ctx context.Context, fn func(*core.Row) error) error {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening index for scan: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		row, err := decodeRow(line)
		if err != nil {
			s.logger.Debug("skipping malformed index row", "err", err)
			continue
		}

		if err := fn(row); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Count returns the number of decodable rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	count := 0
	err := s.Scan(ctx, func(*core.Row) error {
		count++
		return nil
	})
	return count, err
}

// Close is a no-op; files are opened per operation.
func (s *Store) Close() error {
	return nil
}

// encodeRow renders one row as a tab-separated line. An empty origin
// path serializes as "unknown".
func encodeRow(row *core.Row) string {
	origin := row.OriginPath
	if origin == "" {
		origin = "unknown"
	}
	return strings.Join([]string{
		string(row.SessionID),
		row.Timestamp.UTC().Format(time.RFC3339),
		string(row.Role),
		escape(row.Text),
		escape(row.NormalizedText),
		escape(origin),
	}, "\t") + "\n"
}

// decodeRow parses one line back into a row.
func decodeRow(line string) (*core.Row, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != fieldCount {
		return nil, fmt.Errorf("%w: %d fields", store.ErrMalformedRow, len(fields))
	}

	ts, err := time.Parse(time.RFC3339, fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: bad timestamp %q", store.ErrMalformedRow, fields[1])
	}

	role := core.Role(fields[2])
	if core.ValidateRole(role) != nil {
		return nil, fmt.Errorf("%w: bad role %q", store.ErrMalformedRow, fields[2])
	}

	return &core.Row{
		SessionID:      core.SessionID(fields[0]),
		Timestamp:      ts,
		Role:           role,
		Text:           unescape(fields[3]),
		NormalizedText: unescape(fields[4]),
		OriginPath:     unescape(fields[5]),
	}, nil
}

var (
	escaper   = strings.NewReplacer("\\", "\\\\", "\t", "\\t", "\n", "\\n", "\r", "\\r")
	unescaper = strings.NewReplacer("\\t", "\t", "\\n", "\n", "\\r", "\r", "\\\\", "\\")
)

func escape(s string) string {
	return escaper.Replace(s)
}

func unescape(s string) string {
	return unescaper.Replace(s)
}
