// Package pipeline runs icon generation end to end: render, encode, store.
//
// Sizes are processed one at a time in increasing order, each drawn, encoded
// and written before the next begins. The output directory is created once
// up front. In check mode nothing is written; each fresh render is compared
// with the file already on disk instead.
//
// # Usage
//
//	renderer := icon.NewRenderer(icon.DefaultPalette(), fonts.NewLoader(logger), logger)
//	runner := pipeline.NewRunner(renderer, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{OutDir: "icons"})
package pipeline

import (
	"slices"
	"time"

	"github.com/save2md/iconkit/pkg/errors"
	"github.com/save2md/iconkit/pkg/icon"
)

// DefaultOutDir is the output directory used when Options leaves it empty.
const DefaultOutDir = "icons"

// Options controls a pipeline run.
type Options struct {
	OutDir  string
	Sizes   []int
	Check   bool // compare against disk instead of writing
	Preview bool // also produce a contact sheet of all sizes
}

// ValidateAndSetDefaults fills empty fields and validates the rest. Sizes
// are sorted ascending and deduplicated.
func (o *Options) ValidateAndSetDefaults() error {
	if o.OutDir == "" {
		o.OutDir = DefaultOutDir
	}
	if err := errors.ValidateOutputDir(o.OutDir); err != nil {
		return err
	}

	if len(o.Sizes) == 0 {
		o.Sizes = append([]int(nil), icon.DefaultSizes...)
	}
	for _, size := range o.Sizes {
		if _, err := icon.NewSpec(size); err != nil {
			return err
		}
	}
	o.Sizes = slices.Compact(slices.Sorted(slices.Values(o.Sizes)))
	return nil
}

// IconResult describes one generated icon.
type IconResult struct {
	Size       int
	Path       string
	Hash       string
	Unchanged  bool
	Label      icon.LabelMode
	FontSource string
}

// Result is the outcome of a pipeline run.
type Result struct {
	Icons       []IconResult
	PreviewPath string
	// Drift lists files that differ from a fresh render (check mode only).
	Drift    []string
	Duration time.Duration
}
