// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/invowk/jdesc/internal/issue"
	"github.com/invowk/jdesc/pkg/descriptor"

	"github.com/spf13/cobra"
)

// stdinName selects standard input as the batch source.
const stdinName = "-"

// batchLine is one descriptor read from the batch input.
type batchLine struct {
	number int
	text   string
}

// readBatch reads descriptors from r, one per line. Blank lines and lines
// starting with '#' are skipped; surrounding whitespace is trimmed. Input
// larger than maxBytes is rejected.
func readBatch(ctx context.Context, r io.Reader, maxBytes int64) ([]batchLine, error) {
	// One byte past the limit tells an exact fit from an overrun.
	readLimit := maxBytes
	if readLimit < math.MaxInt64 {
		readLimit++
	}
	limited := &io.LimitedReader{R: r, N: readLimit}
	scanner := bufio.NewScanner(limited)
	scanner.Buffer(make([]byte, 0, 4096), int(min(maxBytes, 1<<26)+1))

	var lines []batchLine
	number := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		number++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, batchLine{number: number, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if limited.N <= 0 {
		return nil, fmt.Errorf("input exceeds %d bytes", maxBytes)
	}

	return lines, nil
}

// openBatchSource returns the reader for the batch argument.
func openBatchSource(app *App, args []string) (io.Reader, string, func(), error) {
	if len(args) == 0 || args[0] == stdinName {
		return app.stdin, "<stdin>", func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, args[0], nil, err
	}
	return f, args[0], func() { _ = f.Close() }, nil
}

func newBatchCommand(app *App) *cobra.Command {
	var failFast bool

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Inspect descriptors listed one per line",
		Long: `Inspect every descriptor in a file, one per line, and print the
reports like 'jdesc inspect'. Reads standard input when no file or "-" is
given. Blank lines and lines starting with '#' are skipped.

With --fail-fast (or batch.fail_fast in the config), processing stops at the
first invalid descriptor. The command fails if any descriptor is invalid.`,
		Example: `  jdesc batch descriptors.txt
  javap -s Foo.class | grep descriptor: | cut -d: -f2 | jdesc batch --format json`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
	}

	resolveFormat := addFormatFlag(app, cmd)
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop at the first invalid descriptor")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		format, err := resolveFormat()
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("fail-fast") {
			failFast = app.cfg.Batch.FailFast
		}

		src, name, closeSrc, err := openBatchSource(app, args)
		if err != nil {
			return batchInputFailure(err, name)
		}
		defer closeSrc()

		lines, err := readBatch(cmd.Context(), src, app.cfg.Batch.MaxInputBytes)
		if err != nil {
			return batchInputFailure(err, name)
		}
		app.logger.Debug("batch", "source", name, "descriptors", len(lines), "fail_fast", failFast)

		reports := make([]Report, 0, len(lines))
		for _, line := range lines {
			r := buildReport(descriptor.Descriptor(line.text))
			r.Line = line.number
			reports = append(reports, r)
			if failFast && !r.Valid {
				app.logger.Debug("batch stopped", "line", line.number, "error", r.Error)
				break
			}
		}

		if err := writeReports(app.stdout, format, reports); err != nil {
			return fmt.Errorf("failed to write reports: %w", err)
		}
		return reportFailure(reports, "inspect descriptor")
	}

	return cmd
}

// batchInputFailure wraps an input error with the read-failure issue.
func batchInputFailure(err error, name string) error {
	ae := issue.NewErrorContext().
		WithOperation("read batch input").
		WithResource(name).
		WithSuggestion("Check that the file exists and is readable").
		WithSuggestion("Raise batch.max_input_bytes in the config for larger inputs").
		Wrap(err).
		Build()
	return &ExitError{
		Code: ExitFailure,
		Err:  newServiceError(ae, issue.InputReadFailedId, ""),
	}
}
