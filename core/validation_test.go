package core

import (
	"errors"
	"testing"
	"time"
)

func validRow() *Row {
	return &Row{
		SessionID:  "0a1b2c3d-4e5f-6789-abcd-ef0123456789",
		Timestamp:  time.Now().Add(-time.Hour),
		Role:       RoleUser,
		Text:       "we fixed the browser automation bug",
		OriginPath: "/home/dev/project",
	}
}

func TestValidateRow(t *testing.T) {
	t.Run("valid row", func(t *testing.T) {
		if err := ValidateRow(validRow()); err != nil {
			t.Errorf("ValidateRow() = %v, want nil", err)
		}
	})

	t.Run("nil row", func(t *testing.T) {
		err := ValidateRow(nil)
		if !errors.Is(err, ErrInvalidRow) {
			t.Errorf("ValidateRow(nil) = %v, want ErrInvalidRow", err)
		}
	})

	t.Run("empty session id", func(t *testing.T) {
		row := validRow()
		row.SessionID = ""
		err := ValidateRow(row)
		if !errors.Is(err, ErrEmptySessionID) {
			t.Errorf("ValidateRow() = %v, want ErrEmptySessionID", err)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		row := validRow()
		row.Text = ""
		err := ValidateRow(row)
		if !errors.Is(err, ErrEmptyText) {
			t.Errorf("ValidateRow() = %v, want ErrEmptyText", err)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		row := validRow()
		row.Role = "system"
		err := ValidateRow(row)
		if !errors.Is(err, ErrInvalidRole) {
			t.Errorf("ValidateRow() = %v, want ErrInvalidRole", err)
		}
	})

	t.Run("zero timestamp", func(t *testing.T) {
		row := validRow()
		row.Timestamp = time.Time{}
		err := ValidateRow(row)
		if !errors.Is(err, ErrInvalidTimestamp) {
			t.Errorf("ValidateRow() = %v, want ErrInvalidTimestamp", err)
		}
	})

	t.Run("future timestamp", func(t *testing.T) {
		row := validRow()
		row.Timestamp = time.Now().Add(time.Hour)
		err := ValidateRow(row)
		if !errors.Is(err, ErrInvalidTimestamp) {
			t.Errorf("ValidateRow() = %v, want ErrInvalidTimestamp", err)
		}
	})
}

func TestValidateDictionaryEntry(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		entry := &DictionaryEntry{Term: "webhook", Related: []string{"endpoint", "callback"}}
		if err := ValidateDictionaryEntry(entry); err != nil {
			t.Errorf("ValidateDictionaryEntry() = %v, want nil", err)
		}
	})

	t.Run("empty term", func(t *testing.T) {
		err := ValidateDictionaryEntry(&DictionaryEntry{})
		if !errors.Is(err, ErrEmptyTerm) {
			t.Errorf("ValidateDictionaryEntry() = %v, want ErrEmptyTerm", err)
		}
	})
}

func TestValidateRole(t *testing.T) {
	if err := ValidateRole(RoleUser); err != nil {
		t.Errorf("ValidateRole(user) = %v", err)
	}
	if err := ValidateRole(RoleAssistant); err != nil {
		t.Errorf("ValidateRole(assistant) = %v", err)
	}
	if err := ValidateRole("tool"); err == nil {
		t.Error("ValidateRole(tool) = nil, want error")
	}
}
