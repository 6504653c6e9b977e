package storage

import "testing"

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openStore(t)

	for _, run := range []struct {
		player string
		score  int
	}{
		{"alice", 100},
		{"bob", 50},
		{"alice", 200},
	} {
		if _, err := store.SaveRun(run.player, run.score); err != nil {
			t.Fatalf("SaveRun(%q, %d) failed: %v", run.player, run.score, err)
		}
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Sorted by score descending.
	if runs[0].Score != 200 || runs[0].Player != "alice" {
		t.Errorf("Expected alice/200 first, got %s/%d", runs[0].Player, runs[0].Score)
	}
	if runs[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", runs[1].Score)
	}
	if runs[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", runs[2].Score)
	}

	if runs[0].RecordedAt.IsZero() {
		t.Error("RecordedAt not populated on saved runs")
	}
}

func TestStoreTiesGoToTheEarlierRun(t *testing.T) {
	store := openStore(t)

	store.SaveRun("first", 300)
	store.SaveRun("second", 300)

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 2 || runs[0].Player != "first" || runs[1].Player != "second" {
		t.Errorf("Tie not broken by insertion order: %v", runs)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun("skier", (i+1)*100)
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	// Non-positive limit falls back to the default of 10.
	runs, err = store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns(0) failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected all 5 runs with default limit, got %d", len(runs))
	}
}

func TestStoreBest(t *testing.T) {
	store := openStore(t)

	// No runs yet
	best, err := store.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best of 0 for an empty board, got %d", best)
	}

	store.SaveRun("alice", 100)
	store.SaveRun("bob", 300)
	store.SaveRun("alice", 200)

	best, err = store.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best of 300, got %d", best)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openStore(t)
	b := openStore(t)

	a.SaveRun("alice", 100)

	runs, err := b.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Separate stores share state: %v", runs)
	}
}
