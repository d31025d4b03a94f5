package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewCreatesProjectLayout(t *testing.T) {
	dir := t.TempDir()
	root, err := New(dir, "demo")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, rel := range []string{
		ManifestFile,
		LockFile,
		filepath.Join(SrcDir, MainFile),
		filepath.Join(TestsDir, "basic.jalm"),
	} {
		path := filepath.Join(root, rel)
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s to exist: %v", path, err)
		}
	}
}

func TestNewRefusesToOverwriteExistingProject(t *testing.T) {
	dir := t.TempDir()
	if _, err := New(dir, "demo"); err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := New(dir, "demo"); err == nil {
		t.Fatal("expected New to refuse an existing project directory")
	}
}

func TestManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := DefaultManifest("widgets")
	if err := WriteManifest(dir, want); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	got, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("manifest round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLockfileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := DefaultLockfile()
	if err := WriteLockfile(dir, want); err != nil {
		t.Fatalf("WriteLockfile: %v", err)
	}
	got, err := LoadLockfile(dir)
	if err != nil {
		t.Fatalf("LoadLockfile: %v", err)
	}
	if got.Version != want.Version {
		t.Fatalf("got version %d, want %d", got.Version, want.Version)
	}
}

func TestTestFilesListsJalmFilesOnly(t *testing.T) {
	dir := t.TempDir()
	root, err := New(dir, "demo")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, TestsDir, "README.md"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	files, err := TestFiles(root)
	if err != nil {
		t.Fatalf("TestFiles: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "basic.jalm" {
		t.Fatalf("got %v, want exactly [basic.jalm]", files)
	}
}

func TestTestFilesOnMissingDirReturnsEmpty(t *testing.T) {
	dir := t.TempDir()
	files, err := TestFiles(dir)
	if err != nil {
		t.Fatalf("TestFiles: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no test files, got %v", files)
	}
}
