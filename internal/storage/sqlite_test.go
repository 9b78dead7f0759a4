package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("tetris", Result{Score: 40}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	// Migrations are idempotent and data survives
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("tetris"); high != 40 {
		t.Errorf("HighScore() = %d, expected 40", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{Score: 100, Level: 0, Rows: 2},
		{Score: 50, Level: 0, Rows: 1},
		{Score: 1240, Level: 1, Rows: 12},
	}
	for _, r := range results {
		if _, err := store.SaveScore("tetris", r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different game
	if _, err := store.SaveScore("other", Result{Score: 5000}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{1240, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d].Score = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Level != 1 || scores[0].Rows != 12 {
		t.Errorf("top entry = %+v, expected level 1 rows 12", scores[0])
	}
	if scores[0].GameID != "tetris" {
		t.Errorf("GameID = %q, expected tetris", scores[0].GameID)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("tetris", Result{Score: (i + 1) * 100})
	}

	// Request only top 3
	scores, err := store.TopScores("tetris", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	for i := 0; i < 10; i++ {
		store.SaveScore("tetris", Result{Score: i})
	}
	if scores, _ := store.TopScores("tetris", 0); len(scores) != 10 {
		t.Errorf("TopScores(0) returned %d entries, expected 10", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("tetris", Result{Score: 100})
	store.SaveScore("tetris", Result{Score: 300})
	store.SaveScore("tetris", Result{Score: 200})

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", Result{Score: 100})
	store.SaveScore("tetris", Result{Score: 200})
	store.SaveScore("other", Result{Score: 300})

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("tetris", 10); len(scores) != 0 {
		t.Errorf("Expected 0 tetris scores after clear, got %d", len(scores))
	}

	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Errorf("Other scores should not be affected by clearing tetris")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("tetris", Result{Score: 100, Level: 1, Rows: 10})
	store.SaveScore("tetris", Result{Score: 300, Level: 3, Rows: 30})

	stats, err = store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.BestLevel != 3 {
		t.Errorf("BestLevel = %d, expected 3", stats.BestLevel)
	}
	if stats.TotalRows != 40 {
		t.Errorf("TotalRows = %d, expected 40", stats.TotalRows)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not populated")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"home prefix", "~/scores/home.db", filepath.Join(home, "scores", "home.db")},
		{"tilde name is relative", "~data/other.db", filepath.Join(work, "~data", "other.db")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store, err := Open(tc.path)
			if err != nil {
				t.Fatalf("Open(%q) failed: %v", tc.path, err)
			}
			store.Close()

			if _, err := os.Stat(tc.expected); err != nil {
				t.Errorf("Open(%q) did not create %s: %v", tc.path, tc.expected, err)
			}
		})
	}
}
