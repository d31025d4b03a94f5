package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LockFile is jalm.lock's conventional filename.
const LockFile = "jalm.lock"

// Lockfile is jalm.lock's contents: a placeholder, since jalmgo has no
// package registry or dependency resolution. It records a lockfile
// format version and a package list, which `new` writes empty.
type Lockfile struct {
	Version  int      `yaml:"version"`
	Packages []string `yaml:"packages"`
}

// DefaultLockfile is what `new` writes: no dependencies, lockfile
// format version 1.
func DefaultLockfile() Lockfile {
	return Lockfile{Version: 1, Packages: []string{}}
}

// LoadLockfile reads and parses jalm.lock from dir.
func LoadLockfile(dir string) (Lockfile, error) {
	path := filepath.Join(dir, LockFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return Lockfile{}, fmt.Errorf("read %s: %w", path, err)
	}
	var l Lockfile
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Lockfile{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return l, nil
}

// WriteLockfile encodes l as YAML and writes it to dir/jalm.lock.
func WriteLockfile(dir string, l Lockfile) error {
	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("encode %s: %w", LockFile, err)
	}
	path := filepath.Join(dir, LockFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
