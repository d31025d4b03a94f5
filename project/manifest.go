// Package project implements the jalm project layout the CLI's
// new/build/test/run subcommands operate on: a manifest (jalm.toml), a
// lockfile (jalm.lock), and the conventional src/ and tests/
// directories.
package project

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestFile is jalm.toml's conventional filename.
const ManifestFile = "jalm.toml"

// Manifest is the parsed contents of jalm.toml: just a name and version.
type Manifest struct {
	Package PackageInfo `toml:"package"`
}

// PackageInfo is the `[package]` table.
type PackageInfo struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// DefaultManifest builds the manifest `new` writes for a freshly
// scaffolded project.
func DefaultManifest(name string) Manifest {
	return Manifest{Package: PackageInfo{Name: name, Version: "0.1.0"}}
}

// LoadManifest reads and parses jalm.toml from dir.
func LoadManifest(dir string) (Manifest, error) {
	path := filepath.Join(dir, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read %s: %w", path, err)
	}
	var m Manifest
	if _, err := toml.Decode(string(data), &m); err != nil {
		return Manifest{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

// WriteManifest encodes m as TOML and writes it to dir/jalm.toml.
func WriteManifest(dir string, m Manifest) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return fmt.Errorf("encode %s: %w", ManifestFile, err)
	}
	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
