// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/invowk/jdesc/internal/config"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: all Cobra command handlers receive an App reference and read
	// configuration, writers and the logger through it.
	App struct {
		Config ConfigProvider
		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer
		logger *log.Logger

		// Populated by the root command's PersistentPreRunE.
		cfg     *config.Config
		cfgPath string

		// Bound to persistent flags.
		verbose    bool
		configFile string
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	// This abstraction enables testing with custom config sources or mock implementations.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
		Resolve(ctx context.Context, opts config.LoadOptions) (*config.Config, string, error)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config: deps.Config,
		stdin:  deps.Stdin,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		logger: log.NewWithOptions(deps.Stderr, log.Options{
			Prefix: config.AppName,
			Level:  log.InfoLevel,
		}),
		cfg: config.DefaultConfig(),
	}
}

// loadOptions returns the config loading inputs selected by global flags.
func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: a.configFile}
}

// initConfig loads configuration for the current invocation. Load failures are
// reported as warnings and the defaults stay in effect.
func (a *App) initConfig(ctx context.Context) {
	cfg, path, err := a.Config.Resolve(ctx, a.loadOptions())
	if err != nil {
		a.logger.Warn(formatErrorForDisplay(err, a.verbose))
	} else {
		a.cfg = cfg
		a.cfgPath = path
	}

	// Apply verbose from config if not set via flag
	if !a.verbose {
		a.verbose = a.cfg.UI.Verbose
	}
	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}

	a.logger.Debug("configuration loaded", "path", a.cfgPath, "format", a.cfg.Output.Format)
}

// glamourStyle returns the glamour style name for the configured color scheme.
func (a *App) glamourStyle() string {
	return a.cfg.UI.ColorScheme.String()
}
