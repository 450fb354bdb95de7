package atomicfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteCreatesParentsAndReplaces(t *testing.T) {
	target := filepath.Join(t.TempDir(), "team_101", "history.csv")

	if err := Write(target, []byte("first")); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := Write(target, []byte("second")); err != nil {
		t.Fatalf("second write: %v", err)
	}

	raw, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	if string(raw) != "second" {
		t.Fatalf("unexpected contents: %q", raw)
	}

	entries, err := os.ReadDir(filepath.Dir(target))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}

func TestWriteFailsWhenParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "state")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	if err := Write(filepath.Join(blocker, "data_gw"), []byte("3")); err == nil {
		t.Fatalf("expected error when parent path is a file")
	}
}
