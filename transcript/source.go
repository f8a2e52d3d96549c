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


package transcript

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/poiesic/retrace/core"
)

// Unit is one discovered transcript file: a single session's log.
type Unit struct {
	SessionID core.SessionID
	Path      string
	ModTime   time.Time
}

// Message is one parsed transcript message with its extraction inputs.
type Message struct {
	SessionID  core.SessionID
	Timestamp  time.Time
	Role       core.Role
	Body       Body
	OriginPath string
}

// record mirrors the shape of one JSONL transcript line. Fields not
// needed for indexing are ignored by the decoder.
type record struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Cwd       string `json:"cwd"`
	Message   struct {
		Role    string `json:"role"`
		Content Body   `json:"content"`
	} `json:"message"`
}

// Source reads session transcripts from a directory tree of per-project
// subdirectories containing one JSONL file per session.
type Source struct {
	root   string
	logger *slog.Logger
}

// Option configures a Source.
type Option func(*Source)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewSource creates a transcript source rooted at dir.
// Returns ErrSourceNotFound if the directory does not exist.
func NewSource(root string, opts ...Option) (*Source, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, root)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrSourceNotFound, root)
	}

	s := &Source{
		root:   root,
		logger: slog.Default().With("component", "transcript-source"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Units discovers every transcript unit under the source root.
// Files whose stem is not a recognizable session id are skipped.
func (s *Source) Units() ([]Unit, error) {
	return s.UnitsSince(time.Time{})
}

// UnitsSince discovers transcript units modified strictly after since.
// A zero since returns everything.
func (s *Source) UnitsSince(since time.Time) ([]Unit, error) {
	projects, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("reading transcript root: %w", err)
	}

	var units []Unit
	for _, project := range projects {
		if !project.IsDir() {
			continue
		}

		dir := filepath.Join(s.root, project.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			s.logger.Debug("skipping unreadable project directory", "dir", dir, "err", err)
			continue
		}

		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), ".jsonl") {
				continue
			}

			stem := strings.TrimSuffix(file.Name(), ".jsonl")
			if !validSessionStem(stem) {
				s.logger.Debug("skipping file with unrecognized session id", "file", file.Name())
				continue
			}

			info, err := file.Info()
			if err != nil {
				continue
			}
			if !since.IsZero() && !info.ModTime().After(since) {
				continue
			}

			units = append(units, Unit{
				SessionID: core.SessionID(stem),
				Path:      filepath.Join(dir, file.Name()),
				ModTime:   info.ModTime(),
			})
		}
	}

	return units, nil
}

// Messages parses the unit's JSONL file into messages.
// Malformed lines are skipped silently; only a failure to open the file
// is an error.
func (s *Source) Messages(unit Unit) ([]Message, error) {
	f, err := os.Open(unit.Path)
	if err != nil {
		return nil, fmt.Errorf("opening transcript unit: %w", err)
	}
	defer f.Close()

	var messages []Message
	origin := "unknown"

	scanner := bufio.NewScanner(f)
	// Transcript lines holding tool output can be large.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec record
		if err := json.Unmarshal(line, &rec); err != nil {
			s.logger.Debug("skipping malformed transcript line", "unit", unit.Path, "err", err)
			continue
		}

		if rec.Cwd != "" && origin == "unknown" {
			origin = rec.Cwd
		}

		if rec.Type != string(core.RoleUser) && rec.Type != string(core.RoleAssistant) {
			continue
		}

		ts, err := time.Parse(time.RFC3339, rec.Timestamp)
		if err != nil {
			s.logger.Debug("skipping line with unparseable timestamp", "unit", unit.Path, "timestamp", rec.Timestamp)
			continue
		}

		role := core.Role(rec.Message.Role)
		if role == "" {
			role = core.Role(rec.Type)
		}
		if core.ValidateRole(role) != nil {
			continue
		}

		messages = append(messages, Message{
			SessionID:  unit.SessionID,
			Timestamp:  ts,
			Role:       role,
			Body:       rec.Message.Content,
			OriginPath: origin,
		})
	}

	if err := scanner.Err(); err != nil {
		s.logger.Warn("transcript unit truncated", "unit", unit.Path, "err", err)
	}

	return messages, nil
}

// SessionText renders a session's full conversation as plain text, one
// message per line prefixed with its role. This is the content handed to
// the answering capability during recall.
func (s *Source) SessionText(id core.SessionID) (string, error) {
	units, err := s.Units()
	if err != nil {
		return "", err
	}

	for _, unit := range units {
		if unit.SessionID != id {
			continue
		}

		messages, err := s.Messages(unit)
		if err != nil {
			return "", err
		}

		var b strings.Builder
		for _, msg := range messages {
			text := msg.Body.Text()
			if text == "" {
				continue
			}
			b.WriteString(string(msg.Role))
			b.WriteString(": ")
			b.WriteString(text)
			b.WriteByte('\n')
		}
		return b.String(), nil
	}

	return "", fmt.Errorf("%w: %s", ErrSessionNotFound, id)
}

// validSessionStem reports whether a file stem looks like a session id:
// a UUID, optionally carrying the sub-agent prefix. Sub-agent sessions
// are discovered here and excluded later by the index builder.
func validSessionStem(stem string) bool {
	trimmed := strings.TrimPrefix(stem, "agent-")
	_, err := uuid.Parse(trimmed)
	return err == nil
}
