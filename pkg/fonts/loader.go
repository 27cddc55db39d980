package fonts

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/save2md/iconkit/pkg/errors"
)

// Source identifiers reported alongside a face.
const (
	SourceEmbedded = "embedded:gobold"
	SourceBasic    = "basic"
)

// Loader resolves font faces by size.
//
// A Loader caches parsed fonts by path, so asking for several point sizes
// reads each file once. It is safe for concurrent use.
type Loader struct {
	// Paths are font files tried first, in order.
	Paths []string
	// Names are file names resolved through the platform font directories.
	Names []string
	// Offline skips DefaultPath and the platform font directory search, so
	// only explicit Paths and the embedded font are used.
	Offline bool
	// Embedded is TrueType data used when nothing on disk loads.
	// Nil falls through to the basic face.
	Embedded []byte
	Logger   *log.Logger

	mu     sync.Mutex
	parsed map[string]*truetype.Font
}

// NewLoader creates a Loader with the default search order. Extra paths are
// tried before DefaultPath.
func NewLoader(logger *log.Logger, paths ...string) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{
		Paths:    append(append([]string{}, paths...), DefaultPath),
		Names:    DefaultNames,
		Embedded: GoBoldTTF(),
		Logger:   logger,
	}
}

// Face returns a face at the given point size (72 DPI, so points equal
// pixels) and a string naming where it came from.
func (l *Loader) Face(points float64) (font.Face, string) {
	if points < 1 {
		l.logger().Debug("font size below one point, using basic face", "points", points)
		return basicfont.Face7x13, SourceBasic
	}

	for _, path := range l.Paths {
		if path == "" || (l.Offline && path == DefaultPath) {
			continue
		}
		f, err := l.loadFile(path)
		if err != nil {
			l.logger().Debug("font unavailable", "err", err)
			continue
		}
		return newFace(f, points), "file:" + path
	}

	if !l.Offline {
		for _, name := range l.Names {
			path, err := findfont.Find(name)
			if err != nil {
				l.logger().Debug("font not found", "name", name)
				continue
			}
			f, err := l.loadFile(path)
			if err != nil {
				l.logger().Debug("font unavailable", "err", err)
				continue
			}
			return newFace(f, points), "system:" + path
		}
	}

	if len(l.Embedded) > 0 {
		f, err := l.parse(SourceEmbedded, l.Embedded)
		if err == nil {
			return newFace(f, points), SourceEmbedded
		}
		l.logger().Debug("font unavailable", "err", err)
	}

	return basicfont.Face7x13, SourceBasic
}

func (l *Loader) loadFile(path string) (*truetype.Font, error) {
	if f, ok := l.cached(path); ok {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontUnavailable, err, "read %s", path)
	}
	return l.parse(path, data)
}

func (l *Loader) parse(key string, data []byte) (*truetype.Font, error) {
	if f, ok := l.cached(key); ok {
		return f, nil
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontUnavailable, err, "parse %s", key)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.parsed == nil {
		l.parsed = make(map[string]*truetype.Font)
	}
	l.parsed[key] = f
	return f, nil
}

func (l *Loader) cached(key string) (*truetype.Font, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f, ok := l.parsed[key]
	return f, ok
}

func (l *Loader) logger() *log.Logger {
	if l.Logger == nil {
		return log.Default()
	}
	return l.Logger
}

func newFace(f *truetype.Font, points float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}
