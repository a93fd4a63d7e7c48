package stockplay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCSVFile_LoadMissing(t *testing.T) {
	f := tempFile(t)
	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load() = %v, want an empty portfolio", got)
	}
}

func TestCSVFile_SaveLoad(t *testing.T) {
	f := tempFile(t)
	want := []Holding{h("AAPL", 150, 10), h("MSFT", 300, 5), h("AAPL", 155.5, 1)}
	if err := f.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(want, got, moneyEqual); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	// Overwriting leaves no temporary file behind.
	if err := f.Save(want[:1]); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	entries, err := os.ReadDir(filepath.Dir(f.Path()))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != DefaultFile {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("folder content = %v, want only %s", names, DefaultFile)
	}
	got, err = f.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(want[:1], got, moneyEqual); diff != "" {
		t.Errorf("Load() after overwrite mismatch (-want +got):\n%s", diff)
	}
}

func TestCSVFile_SaveEmptyRemovesFile(t *testing.T) {
	f := tempFile(t)
	if err := f.Save([]Holding{h("AAPL", 150, 10)}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := f.Save(nil); err != nil {
		t.Fatalf("Save(nil) error = %v", err)
	}
	if exists(t, f.Path()) {
		t.Errorf("file %q exists after saving an empty portfolio", f.Path())
	}
	got, err := f.Load()
	if err != nil || len(got) != 0 {
		t.Errorf("Load() = %v, %v; want empty, nil", got, err)
	}
}

func TestCSVFile_ClearIsIdempotent(t *testing.T) {
	f := tempFile(t)
	if err := f.Clear(); err != nil {
		t.Errorf("Clear() on a missing file error = %v", err)
	}
	if err := f.Save([]Holding{h("A", 1, 1)}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := f.Clear(); err != nil {
		t.Errorf("Clear() error = %v", err)
	}
	if exists(t, f.Path()) {
		t.Errorf("file %q exists after Clear", f.Path())
	}
}

func TestCSVFile_SaveCreatesFolder(t *testing.T) {
	f := NewCSVFile(filepath.Join(t.TempDir(), "nested", "dir", DefaultFile))
	if err := f.Save([]Holding{h("A", 1, 1)}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !exists(t, f.Path()) {
		t.Errorf("file %q was not created", f.Path())
	}
}
