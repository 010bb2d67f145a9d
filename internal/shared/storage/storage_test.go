package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func backends(t *testing.T) map[string]Backend {
	t.Helper()

	dir := t.TempDir()
	file, err := NewFile(filepath.Join(dir, "json"))
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	db, err := NewSQLite(filepath.Join(dir, "db", "state.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return map[string]Backend{
		"memory": NewMemory(),
		"file":   file,
		"sqlite": db,
	}
}

func TestBackend_ReadMissingTable(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			var got map[string]record
			found, err := b.Read("groups", &got)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if found {
				t.Error("Expected missing table to report not found")
			}
		})
	}
}

func TestBackend_WriteReplacesTable(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			first := map[string]record{"a": {Name: "a", Count: 1}, "b": {Name: "b", Count: 2}}
			if err := b.Write("warnings", first); err != nil {
				t.Fatalf("Write: %v", err)
			}
			second := map[string]record{"c": {Name: "c", Count: 3}}
			if err := b.Write("warnings", second); err != nil {
				t.Fatalf("Write: %v", err)
			}

			var got map[string]record
			found, err := b.Read("warnings", &got)
			if err != nil || !found {
				t.Fatalf("Read: found=%v err=%v", found, err)
			}
			if len(got) != 1 || got["c"].Count != 3 {
				t.Errorf("Expected table to be replaced wholesale, got %+v", got)
			}
		})
	}
}

func TestFile_WritesReadableDocument(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if err := b.Write("scheduled", []record{{Name: "x"}}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "scheduled.json"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if want := "[\n  {\n    \"name\": \"x\",\n    \"count\": 0\n  }\n]"; string(data) != want {
		t.Errorf("Unexpected document:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "scheduled.json.tmp")); !os.IsNotExist(err) {
		t.Error("Expected temp file to be renamed away")
	}
}

func TestOpen_UnknownKind(t *testing.T) {
	if _, err := Open(Kind("redis"), t.TempDir()); err == nil {
		t.Fatal("Expected error for unknown backend kind")
	}
	if k, err := ParseKind("SQLite"); err != nil || k != KindSqlite {
		t.Errorf("ParseKind(SQLite) = %q, %v", k, err)
	}
}

type fakeFlushable struct {
	calls int
	err   error
}

func (f *fakeFlushable) Flush() error {
	f.calls++
	return f.err
}

func TestFlusher_ContinuesPastFailures(t *testing.T) {
	f := NewFlusher()
	failing := &fakeFlushable{err: errors.New("disk full")}
	ok := &fakeFlushable{}
	f.Register("chats", failing)
	f.Register("polls", ok)

	if err := f.FlushAll(); err == nil {
		t.Fatal("Expected joined error")
	}
	if failing.calls != 1 || ok.calls != 1 {
		t.Errorf("Expected both components flushed once, got %d and %d", failing.calls, ok.calls)
	}
}
