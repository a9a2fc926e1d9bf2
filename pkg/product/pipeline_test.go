package product

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRun struct {
	cfg  Config
	logs *bytes.Buffer
	p    *Pipeline
}

func newTestRun(t *testing.T, input *string) testRun {
	t.Helper()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.InputPath = filepath.Join(dir, DefaultInputPath)
	cfg.OutputPath = filepath.Join(dir, DefaultOutputPath)
	if input != nil {
		require.NoError(t, os.WriteFile(cfg.InputPath, []byte(*input), 0o644))
	}

	logs := &bytes.Buffer{}
	logger := slog.New(tint.NewHandler(logs, &tint.Options{Level: slog.LevelDebug, NoColor: true}))
	return testRun{cfg: cfg, logs: logs, p: NewPipeline(cfg, logger)}
}

func (r testRun) output(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(r.cfg.OutputPath)
	require.NoError(t, err)
	return string(data)
}

func ptr(s string) *string { return &s }

func TestPipeline_Yes(t *testing.T) {
	t.Parallel()

	run := newTestRun(t, ptr("6 7 42"))
	report := run.p.Run(context.Background())

	assert.False(t, report.Failed())
	assert.NotEqual(t, uuid.Nil, report.RunID)
	assert.Equal(t, InputRecord{A: 6, B: 7, Product: 42}, report.Input)
	assert.Equal(t, Yes, report.Verdict)
	assert.Equal(t, "YES\n", run.output(t))
	assert.NotContains(t, run.logs.String(), "ERR")
}

func TestPipeline_No(t *testing.T) {
	t.Parallel()

	run := newTestRun(t, ptr("6 7 40"))
	report := run.p.Run(context.Background())

	assert.False(t, report.Failed())
	assert.Equal(t, No, report.Verdict)
	assert.Equal(t, "NO\n", run.output(t))
}

func TestPipeline_MissingInputContinuesWithZeros(t *testing.T) {
	t.Parallel()

	run := newTestRun(t, nil)
	report := run.p.Run(context.Background())

	var openErr *FileOpenError
	require.True(t, errors.As(report.ReadErr, &openErr), "got %v", report.ReadErr)
	assert.NoError(t, report.CheckErr)
	assert.NoError(t, report.WriteErr)
	assert.Equal(t, InputRecord{}, report.Input)
	assert.Equal(t, Yes, report.Verdict)
	assert.Equal(t, "YES\n", run.output(t))

	logs := run.logs.String()
	assert.Contains(t, logs, "Error: unable to open the file "+run.cfg.InputPath)
	assert.Contains(t, logs, "stage=read")
	assert.Contains(t, logs, "run="+report.RunID.String())
}

func TestPipeline_UnparsableInputContinuesWithZeros(t *testing.T) {
	t.Parallel()

	run := newTestRun(t, ptr("6 seven 42"))
	report := run.p.Run(context.Background())

	var readErr *FileReadError
	require.True(t, errors.As(report.ReadErr, &readErr), "got %v", report.ReadErr)
	assert.Equal(t, Yes, report.Verdict)
	assert.Equal(t, "YES\n", run.output(t))
	assert.Contains(t, run.logs.String(), "at the line 1")
}

func TestPipeline_OutOfRangeSkipsOutput(t *testing.T) {
	t.Parallel()

	run := newTestRun(t, ptr("101 1 101"))
	report := run.p.Run(context.Background())

	assert.NoError(t, report.ReadErr)

	var rangeErr *OutOfRangeError
	require.True(t, errors.As(report.CheckErr, &rangeErr), "got %v", report.CheckErr)
	assert.Equal(t, 101, rangeErr.Value)
	assert.Equal(t, Verdict(""), report.Verdict)

	var emptyErr *EmptyArgumentError
	require.True(t, errors.As(report.WriteErr, &emptyErr), "got %v", report.WriteErr)

	_, err := os.Stat(run.cfg.OutputPath)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	logs := run.logs.String()
	assert.Contains(t, logs, "Error: the argument 101 don't hit to the range [0, 100]")
	assert.Contains(t, logs, "Error: empty argument")
	assert.Contains(t, logs, "stage=check")
	assert.Contains(t, logs, "stage=write")
}

func TestPipeline_CustomRanges(t *testing.T) {
	t.Parallel()

	run := newTestRun(t, ptr("3 4 12"))
	run.cfg.Ranges = Ranges{Factor: Range{Begin: 5, End: 10}, Product: Range{Begin: 0, End: 100}}
	p := NewPipeline(run.cfg, slog.New(tint.NewHandler(run.logs, &tint.Options{NoColor: true})))

	report := p.Run(context.Background())
	var rangeErr *OutOfRangeError
	require.True(t, errors.As(report.CheckErr, &rangeErr), "got %v", report.CheckErr)
	assert.Equal(t, OutOfRangeError{Value: 3, Begin: 5, End: 10}, *rangeErr)
}

func TestPipeline_UnknownErrors(t *testing.T) {
	t.Parallel()

	run := newTestRun(t, ptr("6 7 42"))
	run.p.readInput = func(string) (InputRecord, error) {
		panic("reader exploded")
	}
	run.p.writeResult = func(string, string) error {
		return errors.New("disk on fire")
	}

	report := run.p.Run(context.Background())

	assert.Error(t, report.ReadErr)
	assert.False(t, IsKnown(report.ReadErr))
	assert.Equal(t, Yes, report.Verdict)
	assert.EqualError(t, report.WriteErr, "disk on fire")

	logs := run.logs.String()
	assert.Equal(t, 2, bytes.Count([]byte(logs), []byte(UnknownErrorMessage)), logs)
	assert.Contains(t, logs, "reader exploded")
	assert.Contains(t, logs, "disk on fire")
}

func TestNewPipeline_NilLoggerUsesDefault(t *testing.T) {
	t.Parallel()

	p := NewPipeline(DefaultConfig(), nil)
	assert.Same(t, slog.Default(), p.logger)
}

func TestPipeline_WriteStageGetsVerdictOnce(t *testing.T) {
	t.Parallel()

	run := newTestRun(t, ptr("6 7 40"))
	var calls [][2]string
	run.p.writeResult = func(path, result string) error {
		calls = append(calls, [2]string{path, result})
		return &FileWriteError{Path: path}
	}

	report := run.p.Run(context.Background())

	require.Len(t, calls, 1)
	assert.Equal(t, [2]string{run.cfg.OutputPath, "NO"}, calls[0])
	assert.Equal(t, No, report.Verdict)

	var writeErr *FileWriteError
	require.True(t, errors.As(report.WriteErr, &writeErr), "got %v", report.WriteErr)

	logs := run.logs.String()
	assert.Contains(t, logs, "Error: unable to write file "+run.cfg.OutputPath)
	assert.NotContains(t, logs, UnknownErrorMessage)
	assert.Equal(t, 2, bytes.Count([]byte(logs), []byte("stage done")), logs)
}
