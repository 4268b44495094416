package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/match-league/internal/engine"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSaveResultRanking(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	tests := []struct {
		score       int
		wantRanking int
	}{
		{500, 1},
		{300, 2},  // 500 is higher
		{800, 1},  // nothing higher
		{500, 2},  // only 800 is strictly higher
		{100, 5},  // 800, 500, 500, 300
		{1000, 1}, // new best
	}

	for i, tc := range tests {
		id, ranking, err := store.SaveResult(ctx, Record{Player: "p", Score: tc.score})
		if err != nil {
			t.Fatalf("SaveResult(%d) failed: %v", tc.score, err)
		}
		if id != int64(i+1) {
			t.Errorf("result %d: id = %d", i, id)
		}
		if ranking != tc.wantRanking {
			t.Errorf("SaveResult(%d) ranking = %d, expected %d", tc.score, ranking, tc.wantRanking)
		}
	}
}

func TestTopResultsOrdering(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	entries := []Record{
		{Player: "slow", Score: 900, Elapsed: 300, Completed: true},
		{Player: "fast", Score: 900, Elapsed: 120, Completed: true},
		{Player: "best", Score: 1500, Elapsed: 400, Completed: true},
		{Player: "quit", Score: 5000, Elapsed: 60, Completed: false},
		{Player: "low", Score: 100, Elapsed: 50, Completed: true},
	}
	for _, e := range entries {
		if _, _, err := store.SaveResult(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	top, err := store.TopResults(ctx, 0)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	want := []string{"best", "fast", "slow", "low"}
	if len(top) != len(want) {
		t.Fatalf("TopResults() returned %d records, expected %d", len(top), len(want))
	}
	for i, name := range want {
		if top[i].Player != name {
			t.Errorf("rank %d = %q, expected %q", i+1, top[i].Player, name)
		}
		if !top[i].Completed {
			t.Errorf("rank %d should be a completed game", i+1)
		}
	}

	limited, err := store.TopResults(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("TopResults(2) returned %d records", len(limited))
	}
}

func TestTopResultsDefaultLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		store.SaveResult(ctx, Record{Score: i * 10, Completed: true})
	}

	top, err := store.TopResults(ctx, -1)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != DefaultRankingSize {
		t.Errorf("expected %d records, got %d", DefaultRankingSize, len(top))
	}
	if top[0].Score != 140 {
		t.Errorf("top score = %d, expected 140", top[0].Score)
	}
}

func TestCreatedAtRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	at := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	store.SaveResult(ctx, Record{Score: 10, Completed: true, CreatedAt: at})

	top, err := store.TopResults(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !top[0].CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, expected %v", top[0].CreatedAt, at)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.SaveResult(ctx, Record{Player: "ana", Score: 300, Completed: true})
	store.SaveResult(ctx, Record{Player: "ana", Score: 700, Completed: false})
	store.SaveResult(ctx, Record{Player: "bob", Score: 9000, Completed: true})

	stats, err := store.Stats(ctx, "ana")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesPlayed != 2 || stats.BestScore != 700 || stats.TotalScore != 1000 || stats.Completed != 1 {
		t.Errorf("Stats(ana) = %+v", stats)
	}

	empty, err := store.Stats(ctx, "nobody")
	if err != nil {
		t.Fatal(err)
	}
	if empty.GamesPlayed != 0 || empty.BestScore != 0 || empty.TotalScore != 0 {
		t.Errorf("Stats(nobody) = %+v, expected zeros", empty)
	}
}

func TestHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	high, err := store.HighScore(ctx)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for an empty store, got %d", high)
	}

	store.SaveResult(ctx, Record{Score: 100, Completed: true})
	store.SaveResult(ctx, Record{Score: 900, Completed: false})
	store.SaveResult(ctx, Record{Score: 300, Completed: true})

	high, _ = store.HighScore(ctx)
	if high != 300 {
		t.Errorf("HighScore() = %d, expected 300 (incomplete games excluded)", high)
	}

	if err := store.ClearResults(ctx); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}
	top, _ := store.TopResults(ctx, 10)
	if len(top) != 0 {
		t.Errorf("expected no results after clear, got %d", len(top))
	}
}

func TestSubmitAdapter(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	r := engine.Result{
		Summary: engine.Summary{Score: 450, ElapsedSeconds: 80, Moves: 40, Completed: true},
		Player:  "ana",
		Tier:    engine.TierHard,
		BatchID: 2,
	}
	receipt, err := store.Submit(ctx, r)
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if receipt.Ranking != 1 || receipt.ResultID != 1 {
		t.Errorf("receipt = %+v", receipt)
	}

	top, _ := store.TopResults(ctx, 1)
	if len(top) != 1 || top[0].Tier != "hard" || top[0].BatchID != 2 || top[0].Moves != 40 {
		t.Errorf("stored record = %+v", top)
	}
}
