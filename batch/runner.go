package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	framer "github.com/Aurora0201/nikon-framer"
	"github.com/Aurora0201/nikon-framer/assets"
	"github.com/Aurora0201/nikon-framer/meta"
	"github.com/Aurora0201/nikon-framer/styles"
)

// Format selects the output encoding.
type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
)

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("batch: unknown format %q", name)
	}
}

func (f Format) ext() string {
	if f == FormatPNG {
		return "png"
	}
	return "jpg"
}

// defaultQuality is the JPEG quality used when Options.Quality is zero.
const defaultQuality = 95

// Options configure one batch run.
type Options struct {
	Style  styles.Style
	Format Format

	// Quality is the JPEG quality (1..100); ignored for PNG. Zero means
	// defaultQuality.
	Quality int

	// TargetDir receives the exports. Empty means next to each original.
	TargetDir string
}

// Runner drives a batch. Zero Workers means one worker per CPU.
// OnEvent, when set, is called from worker goroutines and must be safe
// for concurrent use; a nil OnEvent silences progress reporting.
type Runner struct {
	Workers int
	Library *assets.Library
	OnEvent func(Event)
}

// Run processes files concurrently and blocks until all of them finished
// or ctx was canceled. Per-file errors are reported as events and do not
// abort the run; the returned error is non-nil only on cancellation.
func (r *Runner) Run(ctx context.Context, files []string, opts Options) error {
	if opts.Quality <= 0 {
		opts.Quality = defaultQuality
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	total := len(files)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			r.emit(Event{Current: i + 1, Total: total, Path: path, Status: StatusProcessing})

			start := time.Now()
			out, err := r.processOne(path, opts)
			switch {
			case errors.Is(err, meta.ErrNoExif):
				r.emit(Event{Current: i + 1, Total: total, Path: path, Status: StatusSkipped, Message: "no exif metadata"})
			case err != nil:
				r.emit(Event{Current: i + 1, Total: total, Path: path, Status: StatusFailed, Message: err.Error()})
			default:
				framer.Logger().Debug("exported frame",
					"path", path, "out", out, "elapsed", time.Since(start))
				r.emit(Event{Current: i + 1, Total: total, Path: path, Status: StatusDone, Message: out})
			}
			return nil
		})
	}

	return g.Wait()
}

// processOne runs the full pipeline for a single photo and returns the
// output path. Any error discards the whole canvas; nothing partial is
// ever written.
func (r *Runner) processOne(path string, opts Options) (string, error) {
	sc, err := meta.FromFile(path)
	if err != nil {
		return "", err
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	framed, err := styles.Render(img, sc, r.Library, opts.Style)
	if err != nil {
		return "", err
	}

	out := TargetPath(path, opts)
	var enc []imaging.EncodeOption
	if opts.Format != FormatPNG {
		enc = append(enc, imaging.JPEGQuality(opts.Quality))
	}
	if err := imaging.Save(framed, out, enc...); err != nil {
		return "", fmt.Errorf("encode %s: %w", filepath.Base(out), err)
	}
	return out, nil
}

func (r *Runner) emit(ev Event) {
	if r.OnEvent != nil {
		r.OnEvent(ev)
	}
}

// TargetPath computes the export path for src: the original stem plus the
// style suffix, with the extension of the chosen format, in the target
// dir or next to the original.
func TargetPath(src string, opts Options) string {
	dir := opts.TargetDir
	if dir == "" {
		dir = filepath.Dir(src)
	}
	base := filepath.Base(src)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, fmt.Sprintf("%s_%s.%s", stem, opts.Style.Suffix(), opts.Format.ext()))
}
