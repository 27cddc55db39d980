package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/save2md/iconkit/pkg/errors"
	"github.com/save2md/iconkit/pkg/fonts"
	"github.com/save2md/iconkit/pkg/icon"
	"github.com/save2md/iconkit/pkg/preview"
)

func testRunner(t *testing.T) *Runner {
	t.Helper()
	logger := log.New(&bytes.Buffer{})
	loader := fonts.NewLoader(logger)
	loader.Paths = nil
	loader.Offline = true
	return NewRunner(icon.NewRenderer(icon.DefaultPalette(), loader, logger), logger)
}

type recordingHooks struct {
	events []string
}

func (h *recordingHooks) OnRenderStart(_ context.Context, size int) {
	h.events = append(h.events, fmt.Sprintf("start %d", size))
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, size int, _ time.Duration, err error) {
	h.events = append(h.events, fmt.Sprintf("complete %d %v", size, err))
}

func (h *recordingHooks) OnWrite(_ context.Context, path string, unchanged bool) {
	h.events = append(h.events, fmt.Sprintf("write %s %v", filepath.Base(path), unchanged))
}

func (h *recordingHooks) OnCheck(_ context.Context, path string, match bool) {
	h.events = append(h.events, fmt.Sprintf("check %s %v", filepath.Base(path), match))
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.OutDir != DefaultOutDir {
		t.Errorf("OutDir = %q, want %q", opts.OutDir, DefaultOutDir)
	}
	if !reflect.DeepEqual(opts.Sizes, icon.DefaultSizes) {
		t.Errorf("Sizes = %v, want %v", opts.Sizes, icon.DefaultSizes)
	}

	opts = Options{Sizes: []int{128, 16, 32, 16}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(opts.Sizes, []int{16, 32, 128}) {
		t.Errorf("Sizes = %v, want sorted and deduplicated", opts.Sizes)
	}

	opts = Options{Sizes: []int{16, 0}}
	if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidSize) {
		t.Errorf("zero size error = %v, want %v", err, errors.ErrCodeInvalidSize)
	}
}

func TestExecuteWritesIcons(t *testing.T) {
	out := filepath.Join(t.TempDir(), "icons")
	r := testRunner(t)

	result, err := r.Execute(context.Background(), Options{OutDir: out})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(result.Icons) != len(icon.DefaultSizes) {
		t.Fatalf("got %d icons, want %d", len(result.Icons), len(icon.DefaultSizes))
	}

	for i, size := range icon.DefaultSizes {
		got := result.Icons[i]
		wantPath := filepath.Join(out, fmt.Sprintf("icon%d.png", size))
		if got.Size != size || got.Path != wantPath {
			t.Errorf("icon %d = {%d %s}, want {%d %s}", i, got.Size, got.Path, size, wantPath)
		}

		f, err := os.Open(got.Path)
		if err != nil {
			t.Fatal(err)
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("%s is not a valid PNG: %v", got.Path, err)
		}
		if cfg.Width != size || cfg.Height != size {
			t.Errorf("%s is %dx%d, want %dx%d", got.Path, cfg.Width, cfg.Height, size, size)
		}
	}

	if result.Icons[0].Label != icon.LabelLines || result.Icons[0].FontSource != "" {
		t.Errorf("16px icon = %+v, want line label without font", result.Icons[0])
	}
	if result.Icons[3].FontSource != fonts.SourceEmbedded {
		t.Errorf("128px font = %q, want %q", result.Icons[3].FontSource, fonts.SourceEmbedded)
	}

	files, _ := os.ReadDir(out)
	if len(files) != len(icon.DefaultSizes) {
		t.Errorf("output holds %d files, want exactly one per size", len(files))
	}
}

func TestExecuteIdempotent(t *testing.T) {
	out := filepath.Join(t.TempDir(), "icons")
	r := testRunner(t)

	first, err := r.Execute(context.Background(), Options{OutDir: out})
	if err != nil {
		t.Fatal(err)
	}
	before := map[string][]byte{}
	for _, ic := range first.Icons {
		before[ic.Path], _ = os.ReadFile(ic.Path)
	}

	// The directory exists now; a second run must still succeed.
	second, err := r.Execute(context.Background(), Options{OutDir: out})
	if err != nil {
		t.Fatalf("second Execute() error: %v", err)
	}
	for i, ic := range second.Icons {
		if !ic.Unchanged {
			t.Errorf("%s should be unchanged on the second run", ic.Path)
		}
		if ic.Hash != first.Icons[i].Hash {
			t.Errorf("%s hash changed between runs", ic.Path)
		}
		after, _ := os.ReadFile(ic.Path)
		if !bytes.Equal(before[ic.Path], after) {
			t.Errorf("%s content changed between runs", ic.Path)
		}
	}
}

func TestExecuteHooksOrder(t *testing.T) {
	r := testRunner(t)
	hooks := &recordingHooks{}
	r.Hooks = hooks

	_, err := r.Execute(context.Background(), Options{OutDir: t.TempDir(), Sizes: []int{32, 16}})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"start 16", "complete 16 <nil>", "write icon16.png false",
		"start 32", "complete 32 <nil>", "write icon32.png false",
	}
	if !reflect.DeepEqual(hooks.events, want) {
		t.Errorf("events = %v, want %v", hooks.events, want)
	}
}

func TestExecuteCheck(t *testing.T) {
	out := filepath.Join(t.TempDir(), "icons")
	r := testRunner(t)

	// Nothing on disk yet: every icon drifts and no directory is created.
	_, err := r.Execute(context.Background(), Options{OutDir: out, Check: true})
	if !errors.Is(err, errors.ErrCodeOutputDrift) {
		t.Fatalf("check on empty dir error = %v, want %v", err, errors.ErrCodeOutputDrift)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("check mode must not create the output directory")
	}

	if _, err := r.Execute(context.Background(), Options{OutDir: out}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Execute(context.Background(), Options{OutDir: out, Check: true}); err != nil {
		t.Errorf("check after generate error: %v", err)
	}

	stale := filepath.Join(out, "icon48.png")
	if err := os.WriteFile(stale, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}
	result, err := r.Execute(context.Background(), Options{OutDir: out, Check: true})
	if !errors.Is(err, errors.ErrCodeOutputDrift) {
		t.Fatalf("check with stale file error = %v, want %v", err, errors.ErrCodeOutputDrift)
	}
	if !reflect.DeepEqual(result.Drift, []string{stale}) {
		t.Errorf("Drift = %v, want [%s]", result.Drift, stale)
	}
	if data, _ := os.ReadFile(stale); string(data) != "stale" {
		t.Error("check mode must not rewrite files")
	}
}

func TestExecutePreview(t *testing.T) {
	out := t.TempDir()
	r := testRunner(t)

	result, err := r.Execute(context.Background(), Options{OutDir: out, Preview: true})
	if err != nil {
		t.Fatal(err)
	}
	if result.PreviewPath != filepath.Join(out, preview.FileName) {
		t.Errorf("PreviewPath = %q", result.PreviewPath)
	}

	f, err := os.Open(result.PreviewPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}

	wantW := preview.Gutter
	for _, size := range icon.DefaultSizes {
		wantW += size + preview.Gutter
	}
	if cfg.Width != wantW || cfg.Height != 128+2*preview.Gutter {
		t.Errorf("preview is %dx%d, want %dx%d", cfg.Width, cfg.Height, wantW, 128+2*preview.Gutter)
	}
}

func TestExecuteCancelled(t *testing.T) {
	out := filepath.Join(t.TempDir(), "icons")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testRunner(t).Execute(ctx, Options{OutDir: out})
	if err != context.Canceled {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	files, _ := os.ReadDir(out)
	if len(files) != 0 {
		t.Errorf("cancelled run wrote %d files", len(files))
	}
}

func TestExecuteWriteFailure(t *testing.T) {
	out := filepath.Join(t.TempDir(), "icons")
	if err := os.WriteFile(out, nil, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := testRunner(t).Execute(context.Background(), Options{OutDir: out})
	if !errors.Is(err, errors.ErrCodeWriteFailed) {
		t.Errorf("error = %v, want %v", err, errors.ErrCodeWriteFailed)
	}
}
