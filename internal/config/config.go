package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/scrolling-list/internal/app"
	"github.com/atomicstack/scrolling-list/internal/theme"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envTitle          = "SCROLLING_LIST_TITLE"
	envWidth          = "SCROLLING_LIST_WIDTH"
	envHeight         = "SCROLLING_LIST_HEIGHT"
	envPadX           = "SCROLLING_LIST_PAD_X"
	envPadY           = "SCROLLING_LIST_PAD_Y"
	envNormalColor    = "SCROLLING_LIST_NORMAL_COLOR"
	envHighlightColor = "SCROLLING_LIST_HIGHLIGHT_COLOR"
	envItems          = "SCROLLING_LIST_ITEMS"
	envSelect         = "SCROLLING_LIST_SELECT"
	envShowFooter     = "SCROLLING_LIST_FOOTER"
	envTrace          = "SCROLLING_LIST_TRACE"
	envLogFile        = "SCROLLING_LIST_LOG_FILE"
)

const (
	defaultNormalColor    = "249,236"
	defaultHighlightColor = "246,239"
	defaultPad            = 1
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("scrolling-list", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	title := fs.String("title", envOrDefault(env, envTitle, ""), "label shown above the list (defaults to the seed title or \"Scrollable List\")")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired height in rows (0 uses terminal height)")
	padX := fs.Int("pad-x", envOrInt(env, envPadX, defaultPad), "columns left empty on each side of the list")
	padY := fs.Int("pad-y", envOrInt(env, envPadY, defaultPad), "rows left empty above and below the list")
	normal := fs.String("normal-color", envOrDefault(env, envNormalColor, defaultNormalColor), "row background as a colour or \"light,dark\" pair")
	highlight := fs.String("highlight-color", envOrDefault(env, envHighlightColor, defaultHighlightColor), "selected row background as a colour or \"light,dark\" pair")
	items := fs.String("items", envOrDefault(env, envItems, ""), "YAML seed file (defaults to the built-in demo)")
	selectQuery := fs.String("select", envOrDefault(env, envSelect, ""), "select the best fuzzy match for this text at startup")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "show the footer hint row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
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
	normalColor, err := theme.ParseColor(*normal)
	if err != nil {
		return Config{}, fmt.Errorf("normal-color: %w", err)
	}
	highlightColor, err := theme.ParseColor(*highlight)
	if err != nil {
		return Config{}, fmt.Errorf("highlight-color: %w", err)
	}

	cfg := Config{
		App: app.Config{
			Title:      *title,
			Width:      *width,
			Height:     *height,
			PadX:       *padX,
			PadY:       *padY,
			ShowFooter: *footer,
			Colors:     theme.Colors{Normal: normalColor, Highlight: highlightColor},
			ItemsFile:  *items,
			Select:     *selectQuery,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"title":           *title,
			"width":           strconv.Itoa(*width),
			"height":          strconv.Itoa(*height),
			"pad-x":           strconv.Itoa(*padX),
			"pad-y":           strconv.Itoa(*padY),
			"normal-color":    *normal,
			"highlight-color": *highlight,
			"items":           *items,
			"select":          *selectQuery,
			"footer":          strconv.FormatBool(*footer),
			"trace":           strconv.FormatBool(*trace),
			"logFile":         *logFile,
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

// Validate rejects layouts that leave no room for the list.
func Validate(cfg Config) error {
	if cfg.App.PadX < 0 || cfg.App.PadY < 0 {
		return fmt.Errorf("padding must be >= 0 (got %d,%d)", cfg.App.PadX, cfg.App.PadY)
	}
	if cfg.App.Width > 0 && cfg.App.Width <= 2*cfg.App.PadX {
		return fmt.Errorf("width %d leaves no room inside %d columns of padding", cfg.App.Width, cfg.App.PadX)
	}
	if cfg.App.Colors.Normal == nil || cfg.App.Colors.Highlight == nil {
		return fmt.Errorf("both normal and highlight colours are required")
	}
	return nil
}
