// Command framer adds camera-metadata frames to photos: white borders,
// blurred backdrops, glass panels and typographic parameter lines, driven
// by each photo's EXIF data.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	framer "github.com/Aurora0201/nikon-framer"
	"github.com/Aurora0201/nikon-framer/assets"
	"github.com/Aurora0201/nikon-framer/batch"
	"github.com/Aurora0201/nikon-framer/styles"
)

var rootCmd = &cobra.Command{
	Use:   "framer [flags] FILES...",
	Short: "Frame photos with their shooting metadata",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFrame,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringP("style", "s", "", "Frame style (classic, blur, polaroid, master, blur-master, modern)")
	rootCmd.Flags().StringP("format", "f", "", "Output format (jpeg, png)")
	rootCmd.Flags().IntP("quality", "q", 0, "JPEG quality (1-100)")
	rootCmd.Flags().StringP("out", "o", "", "Output directory (default: next to each photo)")
	rootCmd.Flags().IntP("workers", "w", 0, "Concurrent workers (default: one per CPU)")
	rootCmd.Flags().String("assets", "", "Asset directory holding fonts/ and logos/")
	rootCmd.Flags().StringP("config", "c", "", "TOML config file")
	rootCmd.Flags().BoolP("verbose", "v", false, "Debug logging to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runFrame(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	cfg := defaultConfig()
	if path, _ := flags.GetString("config"); path != "" {
		var err error
		if cfg, err = loadConfig(path); err != nil {
			return err
		}
	}

	// Flags override the config file, but only when actually set.
	if flags.Changed("style") {
		cfg.Style, _ = flags.GetString("style")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("quality") {
		cfg.Quality, _ = flags.GetInt("quality")
	}
	if flags.Changed("out") {
		cfg.Out, _ = flags.GetString("out")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("assets") {
		cfg.Assets, _ = flags.GetString("assets")
	}

	if verbose, _ := flags.GetBool("verbose"); verbose {
		framer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	style, err := styles.ParseStyle(cfg.Style)
	if err != nil {
		return err
	}
	format, err := batch.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	runner := &batch.Runner{
		Workers: cfg.Workers,
		Library: assets.NewLibrary(cfg.Assets),
		OnEvent: printEvent,
	}
	return runner.Run(cmd.Context(), args, batch.Options{
		Style:     style,
		Format:    format,
		Quality:   cfg.Quality,
		TargetDir: cfg.Out,
	})
}

func printEvent(ev batch.Event) {
	switch ev.Status {
	case batch.StatusProcessing:
		fmt.Printf("[%d/%d] %s\n", ev.Current, ev.Total, ev.Path)
	case batch.StatusDone:
		fmt.Printf("[%d/%d] %s -> %s\n", ev.Current, ev.Total, ev.Path, ev.Message)
	default:
		fmt.Printf("[%d/%d] %s: %s (%s)\n", ev.Current, ev.Total, ev.Path, ev.Status, ev.Message)
	}
}
