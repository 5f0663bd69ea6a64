package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvtree/render"
)

// EnvPrefix prefixes environment overrides, e.g. LVTREE_SORT=order.
const EnvPrefix = "LVTREE"

var (
	errNoSource      = errors.New("cli: one of --input or --sqlite is required")
	errTwoSources    = errors.New("cli: --input and --sqlite are mutually exclusive")
	errQueryRequired = errors.New("cli: --sqlite needs --query")
	errInvalidFormat = errors.New("cli: invalid format")
)

// Settings is the resolved configuration of one build run.
// Precedence: explicit flag, then LVTREE_* env, then config file, then flag default.
type Settings struct {
	Format       string
	Verbose      bool
	Input        string
	SQLite       string
	Query        string
	Root         string
	WithoutRoot  bool
	Sort         string
	Locale       string
	MaxDepth     int
	NoCycleCheck bool
}

// loadSettings layers flags, environment and the optional config file.
func loadSettings(cmd *cobra.Command, configFile string) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Settings{}, fmt.Errorf("cli: bind flags: %w", err)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("cli: read config %s: %w", configFile, err)
		}
	}

	s := Settings{
		Format:       v.GetString("format"),
		Verbose:      v.GetBool("verbose"),
		Input:        v.GetString("input"),
		SQLite:       v.GetString("sqlite"),
		Query:        v.GetString("query"),
		Root:         v.GetString("root"),
		WithoutRoot:  v.GetBool("without-root"),
		Sort:         v.GetString("sort"),
		Locale:       v.GetString("locale"),
		MaxDepth:     v.GetInt("max-depth"),
		NoCycleCheck: v.GetBool("no-cycle-check"),
	}

	return s, s.validate()
}

func (s Settings) validate() error {
	if !slices.Contains(render.Formats, s.Format) {
		return fmt.Errorf("%w %q: must be one of %v", errInvalidFormat, s.Format, render.Formats)
	}
	switch {
	case s.Input == "" && s.SQLite == "":
		return errNoSource
	case s.Input != "" && s.SQLite != "":
		return errTwoSources
	case s.SQLite != "" && s.Query == "":
		return errQueryRequired
	}

	return nil
}

// source names where records come from, for logs.
func (s Settings) source() string {
	if s.SQLite != "" {
		return "sqlite:" + s.SQLite
	}

	return s.Input
}

// newLogger writes text logs to w; debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
