package assets

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/Aurora0201/nikon-framer/text"
)

// Family selects one of the type families the frame styles draw with.
type Family uint8

const (
	// Sans is the modern sans-serif used for models and parameters.
	Sans Family = iota

	// Script is the handwritten face used for signature lines.
	Script

	// Serif is the high-contrast serif used for master title cards.
	Serif
)

// FontWeight selects a real font file, as opposed to the synthetic
// weights the text renderer fakes by stamping.
type FontWeight uint8

const (
	Regular FontWeight = iota
	Medium
	Bold
)

type fontKey struct {
	family Family
	weight FontWeight
}

// fontFile maps a family and weight to a file name under fonts/.
// Script and serif ship in a single weight; requests for other weights
// fall through to it rather than failing.
func (k fontKey) fontFile() string {
	switch k.family {
	case Script:
		return "MrDafoe-Regular.ttf"
	case Serif:
		return "AbhayaLibre-Medium.ttf"
	default:
		switch k.weight {
		case Bold:
			return "InterDisplay-Bold.otf"
		case Medium:
			return "InterDisplay-Medium.otf"
		default:
			return "InterDisplay-Regular.otf"
		}
	}
}

// FontTable lazily parses font files and caches the parsed sources.
// Safe for concurrent use.
type FontTable struct {
	dir string

	mu    sync.Mutex
	cache map[fontKey]*text.Source
}

// NewFontTable creates a table reading from dir/fonts.
func NewFontTable(dir string) *FontTable {
	return &FontTable{
		dir:   filepath.Join(dir, "fonts"),
		cache: make(map[fontKey]*text.Source),
	}
}

// Get returns the parsed source for a family and weight, loading and
// parsing the file on first use. The returned source is shared and safe
// for concurrent use.
func (t *FontTable) Get(family Family, weight FontWeight) (*text.Source, error) {
	key := fontKey{family: family, weight: weight}

	t.mu.Lock()
	defer t.mu.Unlock()
	if src, ok := t.cache[key]; ok {
		return src, nil
	}

	path := filepath.Join(t.dir, key.fontFile())
	src, err := text.NewSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFontNotFound, path, err)
	}
	t.cache[key] = src
	return src, nil
}
