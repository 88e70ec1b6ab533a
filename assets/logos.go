package assets

import (
	"fmt"
	"image"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/Aurora0201/nikon-framer/meta"
)

// LogoKind names one visual asset of a brand.
type LogoKind uint8

const (
	// Wordmark is the standard horizontal brand lettering.
	Wordmark LogoKind = iota

	// Icon is the compact square emblem (Nikon's yellow box, Leica's
	// red dot).
	Icon

	// SymbolZ is Nikon's Z-series mark.
	SymbolZ

	// SymbolAlpha is Sony's α mark.
	SymbolAlpha

	// SymbolX is Fujifilm's X-system mark.
	SymbolX
)

type logoKey struct {
	brand meta.Brand
	kind  LogoKind
}

// logoFile maps brand and kind to a file name under logos/. Unsupported
// combinations return "".
func (k logoKey) logoFile() string {
	switch k.brand {
	case meta.BrandNikon:
		switch k.kind {
		case Wordmark:
			return "Nikon-word.png"
		case Icon:
			return "Nikon.png"
		case SymbolZ:
			return "Z.png"
		}
	case meta.BrandSony:
		switch k.kind {
		case Wordmark:
			return "Sony.png"
		case SymbolAlpha:
			return "Alpha.png"
		}
	case meta.BrandCanon:
		if k.kind == Wordmark {
			return "Canon.png"
		}
	case meta.BrandFujifilm:
		switch k.kind {
		case Wordmark:
			return "Fujifilm.png"
		case SymbolX:
			return "Fujifilm-X.png"
		}
	case meta.BrandLeica:
		switch k.kind {
		case Wordmark:
			return "Leica-word.png"
		case Icon:
			return "Leica-dot.png"
		}
	case meta.BrandHasselblad:
		if k.kind == Wordmark {
			return "Hasselblad.png"
		}
	}
	return ""
}

// LogoTable lazily decodes logo rasters and caches them. Safe for
// concurrent use; cached images are shared and must be treated as
// read-only.
type LogoTable struct {
	dir string

	mu    sync.Mutex
	cache map[logoKey]image.Image
}

// NewLogoTable creates a table reading from dir/logos.
func NewLogoTable(dir string) *LogoTable {
	return &LogoTable{
		dir:   filepath.Join(dir, "logos"),
		cache: make(map[logoKey]image.Image),
	}
}

// Get returns the decoded logo for a brand and kind, decoding the file on
// first use. Unknown combinations and missing files return
// ErrLogoNotFound; callers treat the logo as optional.
func (t *LogoTable) Get(brand meta.Brand, kind LogoKind) (image.Image, error) {
	key := logoKey{brand: brand, kind: kind}

	t.mu.Lock()
	defer t.mu.Unlock()
	if img, ok := t.cache[key]; ok {
		return img, nil
	}

	name := key.logoFile()
	if name == "" {
		return nil, fmt.Errorf("%w: %v/%d", ErrLogoNotFound, brand, kind)
	}

	img, err := imaging.Open(filepath.Join(t.dir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLogoNotFound, name, err)
	}
	t.cache[key] = img
	return img, nil
}
