package store

import (
	"testing"
	"time"

	"github.com/poiesic/retrace/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	ids := []core.ID{0, 1, 42, core.IDFromContent("webhook")}
	for _, id := range ids {
		data := MarshalID(id)
		got, err := UnmarshalID(data)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestMarshalUnmarshalDictionaryEntry(t *testing.T) {
	entry := &core.DictionaryEntry{
		Term:      "webhook",
		Related:   []string{"endpoint", "callback", "signature"},
		UpdatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	data := MarshalDictionaryEntry(entry)
	got, err := UnmarshalDictionaryEntry(data)
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestMarshalUnmarshalDictionaryEntry_NoRelated(t *testing.T) {
	entry := &core.DictionaryEntry{
		Term:      "solo",
		UpdatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	data := MarshalDictionaryEntry(entry)
	got, err := UnmarshalDictionaryEntry(data)
	require.NoError(t, err)
	assert.Equal(t, entry.Term, got.Term)
	assert.Empty(t, got.Related)
}

func TestMarshalUnmarshalCheckpoint(t *testing.T) {
	checkpoint := &core.Checkpoint{
		LastBuild: time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC),
		RowCount:  12345,
	}

	data := MarshalCheckpoint(checkpoint)
	got, err := UnmarshalCheckpoint(data)
	require.NoError(t, err)
	assert.Equal(t, checkpoint, got)
}

func TestUnmarshalDictionaryEntry_Truncated(t *testing.T) {
	entry := &core.DictionaryEntry{Term: "webhook", Related: []string{"endpoint"}, UpdatedAt: time.Now().UTC()}
	data := MarshalDictionaryEntry(entry)

	_, err := UnmarshalDictionaryEntry(data[:2])
	assert.Error(t, err)
}
