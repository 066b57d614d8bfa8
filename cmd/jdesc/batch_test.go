// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/invowk/jdesc/internal/config"
	"github.com/invowk/jdesc/internal/issue"
	"github.com/invowk/jdesc/pkg/descriptor"
)

const batchInput = `# primitives
I
  J

# references
Ljava/lang/String;
[[Z
(II)I
`

func decodeReports(t *testing.T, out string) []Report {
	t.Helper()
	var reports []Report
	if err := json.Unmarshal([]byte(out), &reports); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	return reports
}

func TestReadBatch(t *testing.T) {
	t.Parallel()

	got, err := readBatch(context.Background(), strings.NewReader(batchInput), 1024)
	if err != nil {
		t.Fatalf("readBatch() error: %v", err)
	}
	want := []batchLine{{2, "I"}, {3, "J"}, {6, "Ljava/lang/String;"}, {7, "[[Z"}, {8, "(II)I"}}
	if len(got) != len(want) {
		t.Fatalf("readBatch() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReadBatch_Limit(t *testing.T) {
	t.Parallel()

	input := strings.Repeat("I\n", 10)
	if _, err := readBatch(context.Background(), strings.NewReader(input), int64(len(input))); err != nil {
		t.Errorf("input at the limit should be accepted, got %v", err)
	}
	if _, err := readBatch(context.Background(), strings.NewReader(input), int64(len(input)-1)); err == nil {
		t.Error("input over the limit should be rejected")
	}
}

func TestReadBatch_UnboundedLimit(t *testing.T) {
	t.Parallel()

	got, err := readBatch(context.Background(), strings.NewReader("I\n[J\n"), math.MaxInt64)
	if err != nil {
		t.Fatalf("readBatch() error: %v", err)
	}
	if len(got) != 2 || got[0].text != "I" || got[1].text != "[J" {
		t.Errorf("readBatch() = %+v, want the lines I and [J", got)
	}
}

func TestReadBatch_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := readBatch(ctx, strings.NewReader("I\n"), 1024); !errors.Is(err, context.Canceled) {
		t.Errorf("readBatch() error = %v, want context.Canceled", err)
	}
}

func TestBatchCommand_Stdin(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, batchInput, "batch", "--format", "json")
	if res.err != nil {
		t.Fatalf("batch failed: %v", res.err)
	}
	reports := decodeReports(t, res.stdout)
	if len(reports) != 5 {
		t.Fatalf("got %d reports, want 5", len(reports))
	}
	if reports[2].Line != 6 || reports[2].Display != "java.lang.String" {
		t.Errorf("third report = %+v", reports[2])
	}
	if reports[4].Method == nil || reports[4].Method.ParameterSlots != 2 {
		t.Errorf("method report = %+v", reports[4])
	}
}

func TestBatchCommand_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "descriptors.txt")
	if err := os.WriteFile(path, []byte("[I\nLFoo;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res := runCLI(t, nil, "", "batch", "-f", "json", path)
	if res.err != nil {
		t.Fatalf("batch failed: %v", res.err)
	}
	if reports := decodeReports(t, res.stdout); len(reports) != 2 || reports[1].Package != "<default>" {
		t.Errorf("reports = %+v", reports)
	}
}

func TestBatchCommand_MissingFile(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "", "batch", filepath.Join(t.TempDir(), "missing.txt"))
	if res.err == nil {
		t.Fatal("expected error for missing file")
	}
	var svcErr *ServiceError
	if !errors.As(res.err, &svcErr) || svcErr.IssueID != issue.InputReadFailedId {
		t.Errorf("error should carry the input issue, got %v", res.err)
	}
	if got := exitCodeFor(res.err); got != ExitFailure {
		t.Errorf("exit code = %d, want %d", got, ExitFailure)
	}
}

func TestBatchCommand_ReportsEveryFailure(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "I\nLbroken\n[V\nJ\n", "batch", "--format", "json")
	reports := decodeReports(t, res.stdout)
	if len(reports) != 4 {
		t.Fatalf("got %d reports, want 4", len(reports))
	}
	if got := exitCodeFor(res.err); got != ExitMalformed {
		t.Errorf("exit code = %d, want %d", got, ExitMalformed)
	}
	if !strings.Contains(res.err.Error(), "2 of 4") {
		t.Errorf("error should count failures, got %v", res.err)
	}
}

func TestBatchCommand_FailFast(t *testing.T) {
	t.Parallel()

	input := "I\nLbroken\nJ\n"

	res := runCLI(t, nil, input, "batch", "--format", "json", "--fail-fast")
	if reports := decodeReports(t, res.stdout); len(reports) != 2 {
		t.Errorf("--fail-fast: got %d reports, want 2", len(reports))
	}
	if !errors.Is(res.err, descriptor.ErrMalformedDescriptor) {
		t.Errorf("error = %v, want ErrMalformedDescriptor", res.err)
	}

	cfg := config.DefaultConfig()
	cfg.Batch.FailFast = true
	if reports := decodeReports(t, runCLI(t, cfg, input, "batch", "--format", "json").stdout); len(reports) != 2 {
		t.Errorf("batch.fail_fast: got %d reports, want 2", len(reports))
	}

	// The flag overrides the config.
	res = runCLI(t, cfg, input, "batch", "--format", "json", "--fail-fast=false")
	if reports := decodeReports(t, res.stdout); len(reports) != 3 {
		t.Errorf("--fail-fast=false: got %d reports, want 3", len(reports))
	}
}

func TestBatchCommand_MaxInputBytes(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Batch.MaxInputBytes = 4
	res := runCLI(t, cfg, "I\nJ\nD\n", "batch")
	if res.err == nil || !strings.Contains(res.err.Error(), "exceeds 4 bytes") {
		t.Errorf("expected size limit error, got %v", res.err)
	}
}

func TestInspectCommand(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "", "inspect", "--format", "json", "Ljava/util/Map$Entry;")
	if res.err != nil {
		t.Fatalf("inspect failed: %v", res.err)
	}
	reports := decodeReports(t, res.stdout)
	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}
	r := reports[0]
	if r.ClassName != "java.util.Map$Entry" || r.Package != "java.util" || r.InternalForm != "java/util/Map$Entry" {
		t.Errorf("report = %+v", r)
	}
}

func TestInspectCommand_FormatFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Output.Format = config.OutputFormatTOML
	res := runCLI(t, cfg, "", "inspect", "I")
	if res.err != nil {
		t.Fatalf("inspect failed: %v", res.err)
	}
	if !strings.Contains(res.stdout, "[[report]]") {
		t.Errorf("expected TOML output, got:\n%s", res.stdout)
	}
}

func TestInspectCommand_InvalidFormat(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "", "inspect", "--format", "yaml", "I")
	if got := exitCodeFor(res.err); got != ExitUsage {
		t.Errorf("exit code = %d, want %d (err: %v)", got, ExitUsage, res.err)
	}
	if !errors.Is(res.err, config.ErrInvalidOutputFormat) {
		t.Errorf("error = %v, want ErrInvalidOutputFormat", res.err)
	}
}

func TestInspectCommand_InvalidDescriptor(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "", "inspect", "I", "")
	if got := exitCodeFor(res.err); got != ExitPrecondition {
		t.Errorf("exit code = %d, want %d (err: %v)", got, ExitPrecondition, res.err)
	}
	if !strings.Contains(res.stdout, "int") {
		t.Errorf("valid descriptors should still be reported:\n%s", res.stdout)
	}
}
