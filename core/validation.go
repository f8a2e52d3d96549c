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


package core

import (
	"fmt"
	"time"
)

// ValidateRow validates a Row according to domain rules.
//
// Validation rules:
//   - SessionID must not be empty
//   - Text must not be empty
//   - Role must be valid (user or assistant)
//   - Timestamp must be non-zero and not in the future
//
// NOT validated:
//   - NormalizedText (may be empty until the normalizer runs)
//   - OriginPath (falls back to "unknown" at serialization time)
func ValidateRow(row *Row) error {
	if row == nil {
		return fmt.Errorf("%w: row is nil", ErrInvalidRow)
	}

	if row.SessionID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRow, ErrEmptySessionID)
	}

	if row.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRow, ErrEmptyText)
	}

	if err := ValidateRole(row.Role); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRow, err)
	}

	if !IsValidTimestamp(row.Timestamp) {
		return fmt.Errorf("%w: %w", ErrInvalidRow, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateDictionaryEntry validates a DictionaryEntry according to domain rules.
func ValidateDictionaryEntry(entry *DictionaryEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrEmptyTerm)
	}

	if entry.Term == "" {
		return ErrEmptyTerm
	}

	return nil
}

// ValidateRole validates that a Role has a valid value.
func ValidateRole(role Role) error {
	if role != RoleUser && role != RoleAssistant {
		return fmt.Errorf("%w: value %q", ErrInvalidRole, string(role))
	}
	return nil
}

// IsValidTimestamp checks if a timestamp is valid (non-zero, not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.IsZero() && !ts.After(time.Now())
}
