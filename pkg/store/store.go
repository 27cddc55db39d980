// Package store writes rendered icons into an output directory.
//
// Files are written atomically (temp file + rename) and identified by the
// SHA-256 of their content, which lets callers skip rewriting identical
// files and lets check mode compare a fresh render against what is on disk
// without touching it.
package store

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/save2md/iconkit/pkg/errors"
)

// Dir is an output directory.
type Dir struct {
	path string
}

// Entry describes one file in a Dir.
type Entry struct {
	Path string
	Hash string
	// Unchanged is set when the file on disk already held the same bytes.
	Unchanged bool
}

// New returns a Dir rooted at path. It does not touch the filesystem.
func New(path string) (*Dir, error) {
	if err := errors.ValidateOutputDir(path); err != nil {
		return nil, err
	}
	return &Dir{path: filepath.Clean(path)}, nil
}

// Path returns the directory path.
func (d *Dir) Path() string {
	return d.path
}

// Join returns the path of name inside the directory.
func (d *Dir) Join(name string) string {
	return filepath.Join(d.path, name)
}

// Ensure creates the directory and any parents. It is safe to call when the
// directory already exists.
func (d *Dir) Ensure() error {
	if err := os.MkdirAll(d.path, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", d.path)
	}
	return nil
}

// Write stores data under name. An existing file with identical content is
// left alone and reported as Unchanged.
func (d *Dir) Write(name string, data []byte) (Entry, error) {
	entry := Entry{Path: d.Join(name), Hash: Hash(data)}

	if existing, err := os.ReadFile(entry.Path); err == nil && bytes.Equal(existing, data) {
		entry.Unchanged = true
		return entry, nil
	}

	tmp, err := os.CreateTemp(d.path, "."+name+".*.tmp")
	if err != nil {
		return entry, errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", entry.Path)
	}
	// Removing after a successful rename fails harmlessly.
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return entry, errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", entry.Path)
	}
	if err := tmp.Close(); err != nil {
		return entry, errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", entry.Path)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return entry, errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", entry.Path)
	}
	if err := os.Rename(tmp.Name(), entry.Path); err != nil {
		return entry, errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", entry.Path)
	}
	return entry, nil
}

// Compare reports whether the file stored under name holds exactly data.
// A missing file is a mismatch, not an error.
func (d *Dir) Compare(name string, data []byte) (Entry, bool, error) {
	entry := Entry{Path: d.Join(name), Hash: Hash(data)}

	existing, err := os.ReadFile(entry.Path)
	if os.IsNotExist(err) {
		return entry, false, nil
	}
	if err != nil {
		return entry, false, errors.Wrap(errors.ErrCodeWriteFailed, err, "read %s", entry.Path)
	}

	match := Hash(existing) == entry.Hash
	entry.Unchanged = match
	return entry, match, nil
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
