package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

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

// stepClock returns strictly increasing times one second apart.
func stepClock() func() time.Time {
	t := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	saved, err := store.SaveResult(Result{BoardSize: 16, TimeLimit: 60, Pairs: 8, Matches: 8, Outcome: OutcomeCleared})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got, err := store.ResultByID(saved.ID)
	if err != nil || got == nil {
		t.Fatalf("ResultByID() = %v, %v", got, err)
	}
}

func TestSaveResultRoundTrip(t *testing.T) {
	store := openTestStore(t)

	in := Result{
		Player:    "alice",
		BoardSize: 36,
		TimeLimit: 120,
		Matches:   11,
		Pairs:     18,
		Elapsed:   95*time.Second + 250*time.Millisecond,
		Outcome:   OutcomeTimeout,
		CreatedAt: time.Date(2024, 3, 2, 10, 30, 0, 0, time.UTC),
	}
	saved, err := store.SaveResult(in)
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := uuid.Parse(saved.ID); err != nil {
		t.Errorf("ID %q is not a uuid: %v", saved.ID, err)
	}

	got, err := store.ResultByID(saved.ID)
	if err != nil {
		t.Fatalf("ResultByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("result not found")
	}
	if !got.CreatedAt.Equal(in.CreatedAt) {
		t.Errorf("created at = %v, want %v", got.CreatedAt, in.CreatedAt)
	}
	got.CreatedAt = saved.CreatedAt
	if *got != saved {
		t.Errorf("round trip = %+v, want %+v", *got, saved)
	}
}

func TestResultByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.ResultByID(uuid.NewString())
	if err != nil {
		t.Fatalf("ResultByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown id, got %+v", got)
	}
}

func TestBestTimes(t *testing.T) {
	store := openTestStore(t)
	store.now = stepClock()

	results := []Result{
		{BoardSize: 16, Pairs: 8, Matches: 8, Elapsed: 40 * time.Second, Outcome: OutcomeCleared},
		{BoardSize: 16, Pairs: 8, Matches: 8, Elapsed: 25 * time.Second, Outcome: OutcomeCleared},
		{BoardSize: 16, Pairs: 8, Matches: 3, Elapsed: 10 * time.Second, Outcome: OutcomeAbandoned},
		{BoardSize: 16, Pairs: 8, Matches: 5, Elapsed: 60 * time.Second, Outcome: OutcomeTimeout},
		{BoardSize: 36, Pairs: 18, Matches: 18, Elapsed: 20 * time.Second, Outcome: OutcomeCleared},
	}
	for _, r := range results {
		r.TimeLimit = 60
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	best, err := store.BestTimes(16, 10)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("Expected 2 cleared games, got %d", len(best))
	}
	if best[0].Elapsed != 25*time.Second || best[1].Elapsed != 40*time.Second {
		t.Errorf("order = %v, %v, want 25s then 40s", best[0].Elapsed, best[1].Elapsed)
	}

	large, err := store.BestTimes(36, 10)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(large) != 1 {
		t.Errorf("Expected 1 result for 36, got %d", len(large))
	}
}

func TestRecentResults(t *testing.T) {
	store := openTestStore(t)
	store.now = stepClock()

	for i := 1; i <= 5; i++ {
		if _, err := store.SaveResult(Result{BoardSize: 16, TimeLimit: 60, Pairs: 8, Matches: i, Outcome: OutcomeTimeout}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	recent, err := store.RecentResults(3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(recent))
	}
	for i, want := range []int{5, 4, 3} {
		if recent[i].Matches != want {
			t.Errorf("recent[%d].Matches = %d, want %d", i, recent[i].Matches, want)
		}
	}
	if !recent[0].CreatedAt.After(recent[1].CreatedAt) {
		t.Error("results should be newest first")
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)
	store.now = stepClock()

	for _, r := range []Result{
		{BoardSize: 16, Pairs: 8, Matches: 8, Elapsed: 30 * time.Second, Outcome: OutcomeCleared},
		{BoardSize: 16, Pairs: 8, Matches: 8, Elapsed: 45 * time.Second, Outcome: OutcomeCleared},
		{BoardSize: 16, Pairs: 8, Matches: 2, Elapsed: 60 * time.Second, Outcome: OutcomeTimeout},
		{BoardSize: 16, Pairs: 8, Matches: 0, Elapsed: 5 * time.Second, Outcome: OutcomeAbandoned},
	} {
		r.TimeLimit = 60
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	st, err := store.Stats(16)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Games != 4 || st.Cleared != 2 || st.Timeouts != 1 || st.Abandoned != 1 {
		t.Errorf("counts = %+v", st)
	}
	if st.Best != 30*time.Second {
		t.Errorf("best = %v, want 30s", st.Best)
	}
	if st.AvgMatches != 4.5 {
		t.Errorf("avg matches = %v, want 4.5", st.AvgMatches)
	}
	if st.LastPlayed.IsZero() {
		t.Error("last played should be set")
	}

	empty, err := store.Stats(36)
	if err != nil {
		t.Fatalf("Stats(36) failed: %v", err)
	}
	if empty.Games != 0 || empty.Best != 0 {
		t.Errorf("unplayed board stats = %+v", empty)
	}
}

func TestClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{BoardSize: 16, Pairs: 8, Outcome: OutcomeTimeout})
	store.SaveResult(Result{BoardSize: 36, Pairs: 18, Outcome: OutcomeTimeout})

	if err := store.ClearResults(16); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if _, ok := all[16]; ok {
		t.Error("16-card results should be cleared")
	}
	if all[36] == nil || all[36].Games != 1 {
		t.Error("36-card results should remain")
	}
}
