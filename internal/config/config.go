package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/gallery-browser/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envView       = "GALLERY_BROWSER_VIEW"
	envDataDir    = "GALLERY_BROWSER_DATA_DIR"
	envWidth      = "GALLERY_BROWSER_WIDTH"
	envHeight     = "GALLERY_BROWSER_HEIGHT"
	envCellWidth  = "GALLERY_BROWSER_CELL_WIDTH"
	envCellHeight = "GALLERY_BROWSER_CELL_HEIGHT"
	envShowFooter = "GALLERY_BROWSER_FOOTER"
	envStyle      = "GALLERY_BROWSER_STYLE"
	envVerbose    = "GALLERY_BROWSER_VERBOSE"
	envTrace      = "GALLERY_BROWSER_TRACE"
	envLogFile    = "GALLERY_BROWSER_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("gallery-browser", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	view := fs.String("view", envOrDefault(env, envView, "images"), "initial view: images or videos")
	dataDir := fs.String("data-dir", envOrDefault(env, envDataDir, ""), "directory of YAML gallery sources (empty uses the built-in data)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	cellWidth := fs.Int("cell-width", envOrInt(env, envCellWidth, 8), "pixels per terminal column used for breakpoints")
	cellHeight := fs.Int("cell-height", envOrInt(env, envCellHeight, 16), "pixels per terminal row used for scroll distances")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	style := fs.String("style", envOrDefault(env, envStyle, "dark"), "markdown style for descriptions: auto, dark, light or notty")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "log success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			View:       strings.ToLower(strings.TrimSpace(*view)),
			DataDir:    *dataDir,
			Width:      *width,
			Height:     *height,
			CellWidth:  *cellWidth,
			CellHeight: *cellHeight,
			ShowFooter: *footer,
			Verbose:    *verbose,
			Style:      *style,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"view":       *view,
			"dataDir":    *dataDir,
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"cellWidth":  strconv.Itoa(*cellWidth),
			"cellHeight": strconv.Itoa(*cellHeight),
			"footer":     strconv.FormatBool(*footer),
			"style":      *style,
			"trace":      strconv.FormatBool(*trace),
			"verbose":    strconv.FormatBool(*verbose),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values the gallery cannot work with.
func Validate(cfg Config) error {
	switch cfg.App.View {
	case "images", "videos":
	default:
		return fmt.Errorf("unknown view %q (want images or videos)", cfg.App.View)
	}
	if cfg.App.CellWidth <= 0 {
		return fmt.Errorf("cell-width must be > 0 (got %d)", cfg.App.CellWidth)
	}
	if cfg.App.CellHeight <= 0 {
		return fmt.Errorf("cell-height must be > 0 (got %d)", cfg.App.CellHeight)
	}
	if dir := cfg.App.DataDir; dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("data-dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("data-dir %s is not a directory", dir)
		}
	}
	return nil
}
