package fswalk

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeFiles(t *testing.T, root string, paths []string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, p)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte("x"), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
}

func TestDiscover_NonRecursiveOnlyTopLevel(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{"a.sas", "b.log", "sub/c.sas"})

	files, err := Discover(root, ScriptMode, false)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "a.sas" {
		t.Errorf("expected only a.sas, got %v", files)
	}
}

func TestDiscover_RecursiveFindsNestedFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{"a.sas", "sub/c.sas", "sub/d.log"})

	files, err := Discover(root, ScriptMode, true)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	sort.Strings(names)
	if len(names) != 2 || names[0] != "a.sas" || names[1] != "c.sas" {
		t.Errorf("expected [a.sas c.sas], got %v", names)
	}
}

func TestBaseName_StripsExtension(t *testing.T) {
	if got := BaseName("/x/y/mixed.sas"); got != "mixed" {
		t.Errorf("expected mixed, got %q", got)
	}
}
