package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateOutputDir checks that dir is usable as an output directory name.
// It rejects empty names, control characters and null bytes. Relative and
// absolute paths are both accepted; the directory need not exist yet.
func ValidateOutputDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}

	if len(dir) > 4096 {
		return New(ErrCodeInvalidPath, "output directory too long (max 4096 characters)")
	}

	for _, r := range dir {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output directory contains invalid control characters")
		}
	}

	if filepath.Clean(dir) == string(filepath.Separator) {
		return New(ErrCodeInvalidPath, "refusing to write icons into the filesystem root")
	}

	return nil
}
