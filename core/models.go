package core

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for derived entities such as dictionary terms.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Role identifies the author of a transcript message.
type Role string

const (
	// RoleUser marks a message authored by the human user.
	RoleUser Role = "user"
	// RoleAssistant marks a message authored by the assistant.
	RoleAssistant Role = "assistant"
)

// SessionID identifies one continuous transcript.
type SessionID string

// subAgentPrefix marks internal forked sub-sessions that are excluded
// from indexing.
const subAgentPrefix = "agent-"

// ShortIDLength is the number of leading characters shown in reports.
// Short IDs are long enough to resolve back to full IDs during recall.
const ShortIDLength = 8

// Short returns the leading characters of the session id used in reports.
func (s SessionID) Short() string {
	if len(s) <= ShortIDLength {
		return string(s)
	}
	return string(s[:ShortIDLength])
}

// IsSubAgent reports whether the session is an internal forked sub-session.
func (s SessionID) IsSubAgent() bool {
	return strings.HasPrefix(string(s), subAgentPrefix)
}

// Row is one indexed transcript message. Rows are immutable once written;
// the store they live in is append-only.
type Row struct {
	SessionID      SessionID
	Timestamp      time.Time
	Role           Role
	Text           string
	NormalizedText string
	OriginPath     string
}

// DictionaryEntry maps a domain term to terms that frequently co-occur
// with it. Entries are advisory: search correctness never depends on them.
type DictionaryEntry struct {
	Term      string
	Related   []string
	UpdatedAt time.Time
}

// Checkpoint records the high-water mark of the last index build.
// Incremental updates only consider transcript units modified after it.
type Checkpoint struct {
	LastBuild time.Time
	RowCount  uint64
}

// Classification is the outcome category of one recall dispatch.
type Classification int

const (
	// ClassificationAnswered means the session produced substantive text.
	ClassificationAnswered Classification = iota + 1
	// ClassificationNoInformation means the answer matched the
	// "no information" sentinel.
	ClassificationNoInformation
	// ClassificationError means the call failed, timed out, or produced
	// empty output.
	ClassificationError
)

// String returns the display name of the classification.
func (c Classification) String() string {
	switch c {
	case ClassificationAnswered:
		return "answered"
	case ClassificationNoInformation:
		return "no-information"
	case ClassificationError:
		return "error"
	default:
		return "unknown"
	}
}

// RecallOutcome is the classified result of dispatching a question to one
// session. Date is derived from the session's earliest indexed row.
type RecallOutcome struct {
	SessionID      SessionID
	Classification Classification
	Text           string
	Date           time.Time
}
