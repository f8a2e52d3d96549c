package tsv

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/poiesic/retrace/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "index.tsv"))
	require.NoError(t, err)
	return s
}

func row(session string, ts time.Time, role core.Role, text string) *core.Row {
	return &core.Row{
		SessionID:      core.SessionID(session),
		Timestamp:      ts,
		Role:           role,
		Text:           text,
		NormalizedText: text,
		OriginPath:     "/home/dev/proj",
	}
}

func TestStore_AppendAndScan(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)
	ts := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	rows := []*core.Row{
		row("abc1234-0000", ts, core.RoleUser, "we fixed the browser automation bug"),
		row("abc1234-0000", ts.Add(time.Minute), core.RoleAssistant, "deployed the fix"),
	}
	require.NoError(t, s.Append(ctx, rows...))

	var got []*core.Row
	require.NoError(t, s.Scan(ctx, func(r *core.Row) error {
		got = append(got, r)
		return nil
	}))

	require.Len(t, got, 2)
	assert.Equal(t, rows[0].Text, got[0].Text)
	assert.Equal(t, rows[1].Role, got[1].Role)
	assert.True(t, got[0].Timestamp.Equal(ts))
}

func TestStore_AppendOnly(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)
	ts := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, s.Append(ctx, row("aaaa", ts, core.RoleUser, "first message")))
	require.NoError(t, s.Append(ctx, row("bbbb", ts, core.RoleUser, "second message")))

	var texts []string
	require.NoError(t, s.Scan(ctx, func(r *core.Row) error {
		texts = append(texts, r.Text)
		return nil
	}))

	// Prior rows keep their order; the count never decreases.
	assert.Equal(t, []string{"first message", "second message"}, texts)
}

func TestStore_EscapedText(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)
	ts := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	text := "line one\nline\ttwo with \\backslash"
	require.NoError(t, s.Append(ctx, row("aaaa", ts, core.RoleUser, text)))

	var got *core.Row
	require.NoError(t, s.Scan(ctx, func(r *core.Row) error {
		got = r
		return nil
	}))
	require.NotNil(t, got)
	assert.Equal(t, text, got.Text)
}

func TestStore_EmptyOriginSerializesAsUnknown(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	r := row("aaaa", time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC), core.RoleUser, "text")
	r.OriginPath = ""
	require.NoError(t, s.Append(ctx, r))

	var got *core.Row
	require.NoError(t, s.Scan(ctx, func(r *core.Row) error {
		got = r
		return nil
	}))
	assert.Equal(t, "unknown", got.OriginPath)
}

func TestStore_SkipsMalformedTrailingRow(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)
	ts := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, s.Append(ctx, row("aaaa", ts, core.RoleUser, "intact row")))

	// Simulate a write interrupted mid-row.
	f, err := os.OpenFile(s.Path(), os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("bbbb\t2026-08-01T1")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_ScanMissingFileIsEmpty(t *testing.T) {
	s := testStore(t)
	count, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStore_RebuildIsStable(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	rows := []*core.Row{
		row("aaaa", ts, core.RoleUser, "first"),
		row("bbbb", ts.Add(time.Minute), core.RoleAssistant, "second"),
	}

	build := func() []byte {
		s, err := Open(filepath.Join(t.TempDir(), "index.tsv"))
		require.NoError(t, err)
		require.NoError(t, s.Append(ctx, rows...))
		data, err := os.ReadFile(s.Path())
		require.NoError(t, err)
		return data
	}

	// Building twice from the same source yields identical bytes.
	assert.Equal(t, build(), build())
}
