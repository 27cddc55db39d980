package fonts

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font"
)

func offlineLoader(paths ...string) *Loader {
	l := NewLoader(log.New(&bytes.Buffer{}), paths...)
	l.Paths = paths
	l.Offline = true
	return l
}

func TestFaceFallsBackToEmbedded(t *testing.T) {
	l := offlineLoader(filepath.Join(t.TempDir(), "missing.ttf"))

	face, src := l.Face(42)
	if src != SourceEmbedded {
		t.Fatalf("source = %q, want %q", src, SourceEmbedded)
	}
	if face.Metrics().Height <= 0 {
		t.Errorf("embedded face has non-positive height %v", face.Metrics().Height)
	}
}

func TestFaceFallsBackToBasic(t *testing.T) {
	l := offlineLoader(filepath.Join(t.TempDir(), "missing.ttf"))
	l.Embedded = nil

	face, src := l.Face(16)
	if src != SourceBasic {
		t.Fatalf("source = %q, want %q", src, SourceBasic)
	}
	if _, adv := font.BoundString(face, "MD"); adv <= 0 {
		t.Errorf("basic face advance = %v, want positive", adv)
	}
}

func TestFaceTinySizeUsesBasic(t *testing.T) {
	l := offlineLoader()

	if _, src := l.Face(0.5); src != SourceBasic {
		t.Errorf("source = %q, want %q", src, SourceBasic)
	}
}

func TestFaceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Bold.ttf")
	if err := os.WriteFile(path, GoBoldTTF(), 0644); err != nil {
		t.Fatal(err)
	}
	l := offlineLoader(path)

	_, src := l.Face(20)
	if src != "file:"+path {
		t.Fatalf("source = %q, want file source", src)
	}

	// Parsed fonts are cached, so the file is not needed again.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if _, src := l.Face(30); src != "file:"+path {
		t.Errorf("second lookup source = %q, want cached file source", src)
	}
}

func TestFaceSkipsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.ttf")
	if err := os.WriteFile(bad, []byte("not a font"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	l := offlineLoader("", bad)
	l.Logger = log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	if _, src := l.Face(20); src != SourceEmbedded {
		t.Errorf("source = %q, want %q", src, SourceEmbedded)
	}
	if !strings.Contains(buf.String(), "FONT_UNAVAILABLE") {
		t.Errorf("debug log should mention FONT_UNAVAILABLE, got %q", buf.String())
	}
}

func TestNewLoaderDefaults(t *testing.T) {
	l := NewLoader(nil, "/custom/font.ttf")

	if len(l.Paths) != 2 || l.Paths[0] != "/custom/font.ttf" || l.Paths[1] != DefaultPath {
		t.Errorf("Paths = %v, want custom path then DefaultPath", l.Paths)
	}
	if l.Offline {
		t.Error("NewLoader should search platform fonts by default")
	}
	if len(l.Embedded) == 0 {
		t.Error("NewLoader should embed the Go Bold font")
	}
	if l.Logger == nil {
		t.Error("NewLoader should default the logger")
	}
}

func TestOfflineSkipsDefaultPath(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  string
	}{
		{"no explicit font", []string{""}, SourceEmbedded},
		{"missing explicit font", []string{filepath.Join(t.TempDir(), "missing.ttf")}, SourceEmbedded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoader(log.New(&bytes.Buffer{}), tt.paths...)
			l.Offline = true

			if _, src := l.Face(42); src != tt.want {
				t.Errorf("source = %q, want %q", src, tt.want)
			}
		})
	}
}

func TestOfflineKeepsExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Bold.ttf")
	if err := os.WriteFile(path, GoBoldTTF(), 0644); err != nil {
		t.Fatal(err)
	}
	l := NewLoader(log.New(&bytes.Buffer{}), path)
	l.Offline = true

	if _, src := l.Face(42); src != "file:"+path {
		t.Errorf("source = %q, want %q", src, "file:"+path)
	}
}
