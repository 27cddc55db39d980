// Package observability provides hooks into icon generation.
//
// The pipeline runner reports each stage of every icon through an
// [IconHooks] value. The CLI uses this to print progress lines, and tests use
// it to observe ordering without scraping output.
//
// # Usage
//
//	runner := pipeline.NewRunner(renderer, logger)
//	runner.Hooks = observability.Multi(consoleHooks, timingHooks)
package observability

import (
	"context"
	"time"
)

// IconHooks receives events from the icon pipeline.
type IconHooks interface {
	// OnRenderStart is called before an icon is drawn.
	OnRenderStart(ctx context.Context, size int)

	// OnRenderComplete is called after an icon is drawn and encoded.
	OnRenderComplete(ctx context.Context, size int, duration time.Duration, err error)

	// OnWrite is called after a file is stored. Unchanged is set when the
	// file already held identical bytes.
	OnWrite(ctx context.Context, path string, unchanged bool)

	// OnCheck is called in check mode after a file is compared.
	OnCheck(ctx context.Context, path string, match bool)
}

// NoopIconHooks is a no-op implementation of IconHooks.
type NoopIconHooks struct{}

func (NoopIconHooks) OnRenderStart(context.Context, int)                          {}
func (NoopIconHooks) OnRenderComplete(context.Context, int, time.Duration, error) {}
func (NoopIconHooks) OnWrite(context.Context, string, bool)                       {}
func (NoopIconHooks) OnCheck(context.Context, string, bool)                       {}

// Multi fans events out to every non-nil hook in order.
func Multi(hooks ...IconHooks) IconHooks {
	var m multi
	for _, h := range hooks {
		if h != nil {
			m = append(m, h)
		}
	}
	if len(m) == 0 {
		return NoopIconHooks{}
	}
	return m
}

type multi []IconHooks

func (m multi) OnRenderStart(ctx context.Context, size int) {
	for _, h := range m {
		h.OnRenderStart(ctx, size)
	}
}

func (m multi) OnRenderComplete(ctx context.Context, size int, d time.Duration, err error) {
	for _, h := range m {
		h.OnRenderComplete(ctx, size, d, err)
	}
}

func (m multi) OnWrite(ctx context.Context, path string, unchanged bool) {
	for _, h := range m {
		h.OnWrite(ctx, path, unchanged)
	}
}

func (m multi) OnCheck(ctx context.Context, path string, match bool) {
	for _, h := range m {
		h.OnCheck(ctx, path, match)
	}
}
