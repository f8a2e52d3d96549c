package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/retrace/core"
	"github.com/poiesic/retrace/store"
)

func TestDictionaryRepository(t *testing.T) {
	dictRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() {
		dictRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	entry := &core.DictionaryEntry{
		Term:    "Deploy",
		Related: []string{"release", "rollout"},
	}
	if err := dictRepo.PutEntries(ctx, entry); err != nil {
		t.Fatalf("Failed to put entry: %v", err)
	}

	// Lookup is case-insensitive; terms are stored lowercased.
	got, err := dictRepo.GetEntry(ctx, "deploy")
	if err != nil {
		t.Fatalf("Failed to get entry: %v", err)
	}
	if got.Term != "deploy" {
		t.Errorf("Expected term 'deploy', got %q", got.Term)
	}
	if len(got.Related) != 2 || got.Related[0] != "release" {
		t.Errorf("Unexpected related terms: %v", got.Related)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("Expected UpdatedAt to be set on put")
	}

	// Putting again replaces the entry.
	entry.Related = []string{"ship"}
	if err := dictRepo.PutEntries(ctx, entry); err != nil {
		t.Fatalf("Failed to replace entry: %v", err)
	}
	got, err = dictRepo.GetEntry(ctx, "DEPLOY")
	if err != nil {
		t.Fatalf("Failed to get replaced entry: %v", err)
	}
	if len(got.Related) != 1 || got.Related[0] != "ship" {
		t.Errorf("Expected replaced related terms, got %v", got.Related)
	}
}

func TestDictionaryRepository_GetMissing(t *testing.T) {
	dictRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() {
		dictRepo.Close()
		backend.Close()
	}()

	_, err = dictRepo.GetEntry(context.Background(), "absent")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDictionaryRepository_AllEntries(t *testing.T) {
	dictRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() {
		dictRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	entries := []*core.DictionaryEntry{
		{Term: "cache", Related: []string{"memoize"}},
		{Term: "database", Related: []string{"postgres", "sqlite"}},
		{Term: "deploy", Related: []string{"release"}},
	}
	if err := dictRepo.PutEntries(ctx, entries...); err != nil {
		t.Fatalf("Failed to put entries: %v", err)
	}

	all, err := dictRepo.AllEntries(ctx)
	if err != nil {
		t.Fatalf("Failed to list entries: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 entries, got %d", len(all))
	}

	terms := make(map[string]bool)
	for _, e := range all {
		terms[e.Term] = true
	}
	for _, want := range []string{"cache", "database", "deploy"} {
		if !terms[want] {
			t.Errorf("Missing term %q in listing", want)
		}
	}
}

func TestCheckpointRepository(t *testing.T) {
	_, checkpointRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	// No build has run yet.
	cp, err := checkpointRepo.LoadCheckpoint(ctx)
	if err != nil {
		t.Fatalf("Failed to load checkpoint: %v", err)
	}
	if cp != nil {
		t.Errorf("Expected nil checkpoint before first save, got %+v", cp)
	}

	saved := &core.Checkpoint{
		LastBuild: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		RowCount:  42,
	}
	if err := checkpointRepo.SaveCheckpoint(ctx, saved); err != nil {
		t.Fatalf("Failed to save checkpoint: %v", err)
	}

	cp, err = checkpointRepo.LoadCheckpoint(ctx)
	if err != nil {
		t.Fatalf("Failed to load checkpoint: %v", err)
	}
	if cp == nil {
		t.Fatal("Expected checkpoint after save")
	}
	if !cp.LastBuild.Equal(saved.LastBuild) {
		t.Errorf("Expected LastBuild %v, got %v", saved.LastBuild, cp.LastBuild)
	}
	if cp.RowCount != 42 {
		t.Errorf("Expected RowCount 42, got %d", cp.RowCount)
	}
}

func TestStalenessFlag(t *testing.T) {
	_, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	flag, err := NewStalenessFlag(backend, "dictionary")
	if err != nil {
		t.Fatalf("Failed to create flag: %v", err)
	}
	if err := flag.Init(ctx); err != nil {
		t.Fatalf("Failed to init flag: %v", err)
	}

	stale, err := flag.IsStale(ctx)
	if err != nil {
		t.Fatalf("Failed to read flag: %v", err)
	}
	if stale {
		t.Error("Expected flag to start clear")
	}

	// First mark transitions, second does not.
	transitioned, err := flag.MarkStale(ctx)
	if err != nil {
		t.Fatalf("Failed to mark stale: %v", err)
	}
	if !transitioned {
		t.Error("Expected first MarkStale to transition")
	}
	transitioned, err = flag.MarkStale(ctx)
	if err != nil {
		t.Fatalf("Failed to mark stale twice: %v", err)
	}
	if transitioned {
		t.Error("Expected second MarkStale not to transition")
	}

	stale, err = flag.IsStale(ctx)
	if err != nil {
		t.Fatalf("Failed to read flag: %v", err)
	}
	if !stale {
		t.Error("Expected flag to be stale after mark")
	}

	if err := flag.Clear(ctx); err != nil {
		t.Fatalf("Failed to clear flag: %v", err)
	}
	stale, err = flag.IsStale(ctx)
	if err != nil {
		t.Fatalf("Failed to read flag: %v", err)
	}
	if stale {
		t.Error("Expected flag to be clear after Clear")
	}
}
