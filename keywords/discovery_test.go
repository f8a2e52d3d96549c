package keywords

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/poiesic/retrace/core"
	badgerstore "github.com/poiesic/retrace/store/badger"
	"github.com/poiesic/retrace/store/tsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedIndex(t *testing.T, texts []string) *tsv.Store {
	t.Helper()
	s, err := tsv.Open(filepath.Join(t.TempDir(), "index.tsv"))
	require.NoError(t, err)

	ts := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	rows := make([]*core.Row, len(texts))
	for i, text := range texts {
		rows[i] = &core.Row{
			SessionID:      core.SessionID(fmt.Sprintf("session-%d", i)),
			Timestamp:      ts.Add(time.Duration(i) * time.Minute),
			Role:           core.RoleUser,
			Text:           text,
			NormalizedText: text,
		}
	}
	require.NoError(t, s.Append(context.Background(), rows...))
	return s
}

func TestDiscovery_FindsCooccurringVocabulary(t *testing.T) {
	// "scraper" rides along with the playwright seed in every message,
	// clearing both frequency floors.
	var texts []string
	for i := 0; i < 6; i++ {
		texts = append(texts, "the playwright scraper hit a selector timeout again")
	}
	// Background noise so corpus probabilities are not degenerate.
	for i := 0; i < 6; i++ {
		texts = append(texts, "unrelated discussion of lunch plans and weather today")
	}

	index := seedIndex(t, texts)
	dictRepo, _, backend, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		dictRepo.Close()
		backend.Close()
	}()

	d := NewDiscovery(index, dictRepo)
	written, err := d.Run(context.Background())
	require.NoError(t, err)
	require.Greater(t, written, 0)

	entry, err := dictRepo.GetEntry(context.Background(), "scraper")
	require.NoError(t, err)
	assert.Equal(t, []string{"playwright"}, entry.Related)

	_, err = dictRepo.GetEntry(context.Background(), "selector")
	assert.NoError(t, err)
}

func TestDiscovery_SkipsStopwordsAndSeeds(t *testing.T) {
	var texts []string
	for i := 0; i < 6; i++ {
		texts = append(texts, "playwright error error error message config value")
	}

	index := seedIndex(t, texts)
	dictRepo, _, backend, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		dictRepo.Close()
		backend.Close()
	}()

	d := NewDiscovery(index, dictRepo)
	_, err = d.Run(context.Background())
	require.NoError(t, err)

	all, err := dictRepo.AllEntries(context.Background())
	require.NoError(t, err)
	for _, e := range all {
		assert.NotEqual(t, "error", e.Term)
		assert.NotEqual(t, "config", e.Term)
		assert.NotEqual(t, "playwright", e.Term, "seeds are not candidates")
	}
}

func TestDiscovery_EmptyIndex(t *testing.T) {
	index := seedIndex(t, nil)
	dictRepo, _, backend, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		dictRepo.Close()
		backend.Close()
	}()

	written, err := NewDiscovery(index, dictRepo).Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, written)
}

func TestRefresher_GatedOnStaleness(t *testing.T) {
	var texts []string
	for i := 0; i < 6; i++ {
		texts = append(texts, "the playwright scraper hit a selector timeout again")
	}
	index := seedIndex(t, texts)

	dictRepo, _, backend, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		dictRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	flag, err := badgerstore.NewStalenessFlag(backend, "dictionary")
	require.NoError(t, err)
	require.NoError(t, flag.Init(ctx))

	r, err := NewRefresher(NewDiscovery(index, dictRepo), flag)
	require.NoError(t, err)
	defer r.Release()

	// Clear flag means nothing to do.
	scheduled, err := r.ScheduleIfStale(ctx)
	require.NoError(t, err)
	assert.False(t, scheduled)

	_, err = flag.MarkStale(ctx)
	require.NoError(t, err)

	written, err := r.RunNow(ctx)
	require.NoError(t, err)
	assert.Greater(t, written, 0)

	stale, err := flag.IsStale(ctx)
	require.NoError(t, err)
	assert.False(t, stale, "RunNow clears the flag")
}
