package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func lost(difficulty string, level, score int) Result {
	return Result{Difficulty: difficulty, Buttons: 4, MaxLevel: 10, Level: level, Score: score, Outcome: OutcomeLost}
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Result{lost("easy", 3, 2), lost("easy", 6, 5), lost("easy", 2, 1), lost("hard", 9, 8)} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	scores, err := store.TopScores("easy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 5 || scores[1].Score != 2 || scores[2].Score != 1 {
		t.Errorf("Scores not in expected order: %+v", scores)
	}
	if scores[0].Level != 6 || scores[0].Buttons != 4 || scores[0].MaxLevel != 10 {
		t.Errorf("Result fields not round-tripped: %+v", scores[0])
	}
	if scores[0].Outcome != OutcomeLost {
		t.Errorf("Outcome = %q, expected lost", scores[0].Outcome)
	}
	if _, err := uuid.Parse(scores[0].SessionID); err != nil {
		t.Errorf("Generated session id %q is not a UUID: %v", scores[0].SessionID, err)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	hard, err := store.TopScores("hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(hard) != 1 {
		t.Errorf("Expected 1 hard score, got %d", len(hard))
	}
}

func TestStoreKeepsSessionIDAndFlags(t *testing.T) {
	store := openTestStore(t)

	r := Result{
		SessionID:  "ssh-alice-1",
		Difficulty: "custom",
		Buttons:    3,
		MaxLevel:   10,
		Unlimited:  true,
		Level:      12,
		Score:      11,
		Outcome:    OutcomeLost,
	}
	if _, err := store.SaveResult(r); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	scores, err := store.TopScores("custom", 1)
	if err != nil || len(scores) != 1 {
		t.Fatalf("TopScores() = %v, %v", scores, err)
	}
	if scores[0].SessionID != "ssh-alice-1" || !scores[0].Unlimited {
		t.Errorf("Result = %+v, expected session id and unlimited flag kept", scores[0])
	}
}

func TestStoreRejectsUnknownOutcome(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(Result{Difficulty: "easy", Outcome: "draw"}); err == nil {
		t.Error("SaveResult() should reject an unknown outcome")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveResult(lost("easy", i+2, i+1)); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	// Request only top 3
	scores, err := store.TopScores("easy", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 5 || scores[1].Score != 4 || scores[2].Score != 3 {
		t.Errorf("Scores not in expected order: %+v", scores)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("easy", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected all 5 scores with default limit, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("medium")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty difficulty, got %d", high)
	}

	for _, s := range []int{4, 9, 2} {
		if _, err := store.SaveResult(lost("medium", s+1, s)); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	high, err = store.HighScore("medium")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 9 {
		t.Errorf("Expected high score of 9, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(lost("easy", 2, 1))
	store.SaveResult(lost("easy", 3, 2))
	store.SaveResult(lost("hard", 4, 3))

	if err := store.ClearScores("easy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	easy, _ := store.TopScores("easy", 10)
	if len(easy) != 0 {
		t.Errorf("Expected 0 easy scores after clear, got %d", len(easy))
	}

	hard, _ := store.TopScores("hard", 10)
	if len(hard) != 1 {
		t.Errorf("Hard scores should not be affected by clearing easy")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("easy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Games != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty difficulty = %+v", empty)
	}

	store.SaveResult(lost("easy", 3, 2))
	store.SaveResult(lost("easy", 5, 4))
	store.SaveResult(Result{Difficulty: "easy", Buttons: 4, MaxLevel: 10, Level: 10, Score: 9, Outcome: OutcomeWon})
	store.SaveResult(lost("hard", 2, 1))

	st, err := store.Stats("easy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Games != 3 || st.Wins != 1 || st.HighScore != 9 || st.BestLevel != 10 {
		t.Errorf("Stats() = %+v", st)
	}
	if st.AvgScore != 5 {
		t.Errorf("AvgScore = %v, expected 5", st.AvgScore)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("AllStats() returned %d difficulties, expected 2", len(all))
	}
	if all["hard"].Games != 1 || all["easy"].Wins != 1 {
		t.Errorf("AllStats() = easy %+v, hard %+v", all["easy"], all["hard"])
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

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
