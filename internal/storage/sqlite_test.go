package storage

import (
	"bytes"
	"errors"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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
	id, err := store.SaveReplay(Replay{Seed: 1, TickRate: 60, Config: []byte("a"), Inputs: []byte{0, 1}})
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if _, err := store.Replay(id); err != nil {
		t.Errorf("replay lost after reopen: %v", err)
	}
}

func TestSaveAndLoadReplay(t *testing.T) {
	store := openTestStore(t)

	in := Replay{
		Seed:     42,
		TickRate: 60,
		Config:   []byte("world:\n  width: 800\n"),
		Inputs:   []byte{0x01, 0x05, 0x00, 0x80, 0x01},
		Frames:   133,
		Score:    260,
		Source:   "tui",
	}
	id, err := store.SaveReplay(in)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive ID, got %d", id)
	}

	got, err := store.Replay(id)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if got.ID != id || got.Seed != 42 || got.TickRate != 60 || got.Frames != 133 || got.Score != 260 || got.Source != "tui" {
		t.Errorf("unexpected replay %+v", got)
	}
	if !bytes.Equal(got.Config, in.Config) {
		t.Errorf("config = %q, want %q", got.Config, in.Config)
	}
	if !bytes.Equal(got.Inputs, in.Inputs) {
		t.Errorf("inputs = %v, want %v", got.Inputs, in.Inputs)
	}
	if got.CreatedAt.IsZero() {
		t.Errorf("created_at not populated")
	}
}

func TestReplayNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Replay(99)
	if !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("expected ErrReplayNotFound, got %v", err)
	}

	if err := store.DeleteReplay(99); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("expected ErrReplayNotFound on delete, got %v", err)
	}
}

func TestListReplaysNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		if _, err := store.SaveReplay(Replay{Seed: int64(i), TickRate: 60, Config: []byte{}, Inputs: []byte{}, Score: i * 10}); err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
	}

	list, err := store.ListReplays(3)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 replays, got %d", len(list))
	}
	for i, want := range []int64{5, 4, 3} {
		if list[i].Seed != want {
			t.Errorf("entry %d: seed %d, want %d", i, list[i].Seed, want)
		}
		if list[i].Inputs != nil {
			t.Errorf("entry %d: list should not carry inputs", i)
		}
	}

	all, err := store.ListReplays(0)
	if err != nil {
		t.Fatalf("ListReplays(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("default limit should cover all 5, got %d", len(all))
	}
}

func TestDeleteReplay(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveReplay(Replay{Seed: 7, TickRate: 30, Config: []byte{}, Inputs: []byte{}})
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if err := store.DeleteReplay(id); err != nil {
		t.Fatalf("DeleteReplay() failed: %v", err)
	}
	if _, err := store.Replay(id); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("deleted replay still readable: %v", err)
	}
}
