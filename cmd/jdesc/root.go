// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/invowk/jdesc/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// newRootCommand builds the command tree around app.
func newRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jdesc",
		Short: "Inspect and convert JVM type descriptors",
		Long: TitleStyle.Render("jdesc") + SubtitleStyle.Render(" - Inspect and convert JVM type descriptors") + `

jdesc understands the field and method descriptors of the JVM class-file
format and converts between descriptors, internal forms and class names.

` + SubtitleStyle.Render("Examples:") + `
  jdesc render '[[Ljava/lang/String;'     java.lang.String[][]
  jdesc size J                            2
  jdesc convert --from class java.util.Map
  jdesc method '(ILjava/lang/Object;)V'
  jdesc inspect --format json '[I'
  jdesc batch descriptors.txt`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.initConfig(cmd.Context())
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.configFile, "config", "", "config file (default is $HOME/.config/jdesc/config.cue)")

	rootCmd.AddCommand(
		newRenderCommand(app),
		newSizeCommand(app),
		newClassifyCommand(app),
		newConvertCommand(app),
		newComponentCommand(app),
		newPackageCommand(app),
		newSamePackageCommand(app),
		newMethodCommand(app),
		newInspectCommand(app),
		newBatchCommand(app),
		newConstantsCommand(app),
		newConfigCommand(app),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the root command and runs it. This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd := newRootCommand(app)

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
	if err == nil {
		return
	}

	var svcErr *ServiceError
	if app.verbose && errors.As(err, &svcErr) {
		renderServiceError(app.stderr, app.logger, app.glamourStyle(), svcErr)
	}
	os.Exit(int(exitCodeFor(err)))
}

// usageArgs wraps a positional-argument validator so its failures exit
// with ExitUsage.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &ExitError{Code: ExitUsage, Err: err}
		}
		return nil
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
