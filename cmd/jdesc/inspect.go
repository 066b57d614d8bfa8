// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/invowk/jdesc/internal/config"
	"github.com/invowk/jdesc/pkg/descriptor"

	"github.com/spf13/cobra"
)

// addFormatFlag registers --format on cmd and returns a resolver that falls
// back to the configured output format.
func addFormatFlag(app *App, cmd *cobra.Command) func() (config.OutputFormat, error) {
	var format string
	cmd.Flags().StringVarP(&format, "format", "f", "", "report format: text, json or toml (default from config)")

	return func() (config.OutputFormat, error) {
		f := app.cfg.Output.Format
		if format != "" {
			f = config.OutputFormat(format)
		}
		if valid, errs := f.IsValid(); !valid {
			return "", &ExitError{Code: ExitUsage, Err: errs[0]}
		}
		return f, nil
	}
}

// reportFailure turns the first invalid report into the command error.
func reportFailure(reports []Report, operation string) error {
	failed, ok := firstFailure(reports)
	if !ok {
		return nil
	}
	invalid := 0
	for _, r := range reports {
		if !r.Valid {
			invalid++
		}
	}
	err := descriptorFailure(failed.Err(), operation, failed.Descriptor)
	if invalid > 1 {
		return &ExitError{
			Code: exitCodeFor(err),
			Err:  fmt.Errorf("%d of %d descriptors are invalid, first: %w", invalid, len(reports), err),
		}
	}
	return err
}

func newInspectCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <descriptor>...",
		Short: "Print a full report for descriptors",
		Long: `Print everything jdesc can derive from each descriptor: validity,
display form, size, class name, internal form, package, array structure,
method parts and the classification predicates.

Reports are printed for every argument; the command fails if any
descriptor is invalid.`,
		Example: `  jdesc inspect '[[Ljava/lang/String;'
  jdesc inspect --format json I '(J)V'
  jdesc inspect --format toml Ljava/util/Map;`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
	}

	resolveFormat := addFormatFlag(app, cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		format, err := resolveFormat()
		if err != nil {
			return err
		}

		reports := make([]Report, 0, len(args))
		for _, arg := range args {
			r := buildReport(descriptor.Descriptor(arg))
			app.logger.Debug("inspect", "descriptor", arg, "valid", r.Valid, "kind", r.Kind)
			reports = append(reports, r)
		}

		if err := writeReports(app.stdout, format, reports); err != nil {
			return fmt.Errorf("failed to write reports: %w", err)
		}
		return reportFailure(reports, "inspect descriptor")
	}

	return cmd
}
