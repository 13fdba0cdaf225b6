package sqlite

import (
	"path/filepath"
	"testing"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	b := New(filepath.Join(t.TempDir(), "moodlog.db"))
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b
}

func TestReadEmpty(t *testing.T) {
	b := newTestBackend(t)

	data, err := b.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil for a fresh database, got %q", data)
	}
}

func TestWriteReplaces(t *testing.T) {
	b := newTestBackend(t)

	for _, payload := range []string{`{"moods":[],"reflections":[]}`, `{"moods":[{"id":"x"}],"reflections":[]}`} {
		if err := b.Write([]byte(payload)); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		got, err := b.Read()
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if string(got) != payload {
			t.Errorf("Read = %q, want %q", got, payload)
		}
	}

	var rows int
	if err := b.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&rows); err != nil {
		t.Fatal(err)
	}
	if rows != 1 {
		t.Errorf("expected a single record row, got %d", rows)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moodlog.db")
	b := New(path)
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	if err := b.Write([]byte(`{"moods":[],"reflections":[]}`)); err != nil {
		t.Fatal(err)
	}
	b.Close()

	reopened := New(path)
	if err := reopened.Init(); err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	if err := reopened.CheckSchema(); err != nil {
		t.Errorf("CheckSchema: %v", err)
	}
	got, err := reopened.Read()
	if err != nil || string(got) != `{"moods":[],"reflections":[]}` {
		t.Errorf("Read after reopen = (%q, %v)", got, err)
	}
}

func TestClosedBackend(t *testing.T) {
	b := New(filepath.Join(t.TempDir(), "moodlog.db"))
	if _, err := b.Read(); err == nil {
		t.Error("expected Read on an unopened backend to fail")
	}
	if err := b.Write([]byte("{}")); err == nil {
		t.Error("expected Write on an unopened backend to fail")
	}
}
