package pipeline

import (
	"context"
	"image"
	"time"

	"github.com/charmbracelet/log"

	"github.com/save2md/iconkit/pkg/errors"
	"github.com/save2md/iconkit/pkg/icon"
	"github.com/save2md/iconkit/pkg/observability"
	"github.com/save2md/iconkit/pkg/preview"
	"github.com/save2md/iconkit/pkg/store"
)

// Runner executes the pipeline with a fixed renderer.
type Runner struct {
	Renderer *icon.Renderer
	Hooks    observability.IconHooks
	Logger   *log.Logger
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(r *icon.Renderer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Renderer: r,
		Hooks:    observability.NoopIconHooks{},
		Logger:   logger,
	}
}

// Execute renders every requested size and stores or checks the results.
// The context is checked between sizes. On failure, icons already written
// stay on disk.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	hooks := r.Hooks
	if hooks == nil {
		hooks = observability.NoopIconHooks{}
	}

	dir, err := store.New(opts.OutDir)
	if err != nil {
		return nil, err
	}
	if !opts.Check {
		if err := dir.Ensure(); err != nil {
			return nil, err
		}
	}

	result := &Result{}
	var images []image.Image

	for _, size := range opts.Sizes {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		hooks.OnRenderStart(ctx, size)
		renderStart := time.Now()
		ic, data, err := r.render(size)
		hooks.OnRenderComplete(ctx, size, time.Since(renderStart), err)
		if err != nil {
			return result, err
		}
		if opts.Preview {
			images = append(images, ic.Image)
		}

		entry, err := r.store(ctx, dir, icon.FileName(size), data, opts.Check, hooks, result)
		if err != nil {
			return result, err
		}
		result.Icons = append(result.Icons, IconResult{
			Size:       size,
			Path:       entry.Path,
			Hash:       entry.Hash,
			Unchanged:  entry.Unchanged,
			Label:      ic.Spec.Label(),
			FontSource: ic.FontSource,
		})
	}

	if opts.Preview {
		data, err := icon.Encode(preview.Sheet(images))
		if err != nil {
			return result, err
		}
		entry, err := r.store(ctx, dir, preview.FileName, data, opts.Check, hooks, result)
		if err != nil {
			return result, err
		}
		result.PreviewPath = entry.Path
	}

	result.Duration = time.Since(start)
	if len(result.Drift) > 0 {
		return result, errors.Wrap(errors.ErrCodeOutputDrift, &errors.DriftError{Paths: result.Drift}, "icons in %s do not match a fresh render", dir.Path())
	}

	r.Logger.Debug("pipeline complete",
		"icons", len(result.Icons),
		"dir", dir.Path(),
		"check", opts.Check,
		"duration", result.Duration)
	return result, nil
}

func (r *Runner) render(size int) (*icon.Icon, []byte, error) {
	ic, err := r.Renderer.Render(size)
	if err != nil {
		return nil, nil, err
	}
	data, err := icon.Encode(ic.Image)
	if err != nil {
		return nil, nil, err
	}
	return ic, data, nil
}

// store writes data, or in check mode compares it and records drift.
func (r *Runner) store(ctx context.Context, dir *store.Dir, name string, data []byte, check bool, hooks observability.IconHooks, result *Result) (store.Entry, error) {
	if check {
		entry, match, err := dir.Compare(name, data)
		if err != nil {
			return entry, err
		}
		if !match {
			result.Drift = append(result.Drift, entry.Path)
		}
		r.Logger.Debug("checked icon", "path", entry.Path, "match", match)
		hooks.OnCheck(ctx, entry.Path, match)
		return entry, nil
	}

	entry, err := dir.Write(name, data)
	if err != nil {
		return entry, err
	}
	r.Logger.Debug("stored icon", "path", entry.Path, "bytes", len(data), "unchanged", entry.Unchanged)
	hooks.OnWrite(ctx, entry.Path, entry.Unchanged)
	return entry, nil
}
