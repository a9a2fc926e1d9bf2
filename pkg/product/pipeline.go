package product

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ib-77/isproduct/pkg/rop"
	"github.com/ib-77/isproduct/pkg/rop/chain"
	"github.com/ib-77/isproduct/pkg/rop/solo"
)

// UnknownErrorMessage is logged for stage errors outside the package taxonomy.
const UnknownErrorMessage = "Error: unknown exception"

type Stage string

const (
	StageRead  Stage = "read"
	StageCheck Stage = "check"
	StageWrite Stage = "write"
)

// Report describes one run. A nil stage error means the stage succeeded.
type Report struct {
	RunID    uuid.UUID
	Input    InputRecord
	Verdict  Verdict
	ReadErr  error
	CheckErr error
	WriteErr error
}

func (r Report) Failed() bool {
	return r.ReadErr != nil || r.CheckErr != nil || r.WriteErr != nil
}

type Pipeline struct {
	cfg    Config
	logger *slog.Logger

	readInput   func(path string) (InputRecord, error)
	writeResult func(path, result string) error
}

func NewPipeline(cfg Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:         cfg,
		logger:      logger,
		readInput:   ReadInput,
		writeResult: WriteResult,
	}
}

// Run executes read, check and write in order. Each stage failure is logged
// and replaced with the stage default (zero input, empty verdict); Run never
// stops early.
func (p *Pipeline) Run(ctx context.Context) Report {
	report := Report{RunID: uuid.New()}
	logger := p.logger.With("run", report.RunID.String())

	read := solo.Guard(ctx, func(ctx context.Context) rop.Result[InputRecord] {
		return solo.Try(ctx, solo.Succeed(p.cfg.InputPath),
			func(_ context.Context, path string) (InputRecord, error) {
				return p.readInput(path)
			})
	})
	report.Input, report.ReadErr = settle(ctx, logger, StageRead, read, InputRecord{})

	check := solo.Guard(ctx, func(ctx context.Context) rop.Result[Verdict] {
		return chain.Map(
			chain.ThenTry(chain.FromValue(ctx, report.Input),
				func(_ context.Context, in InputRecord) (bool, error) {
					return p.cfg.Ranges.IsProduct(in.A, in.B, in.Product)
				}),
			func(_ context.Context, ok bool) Verdict { return VerdictOf(ok) },
		).Result()
	})
	report.Verdict, report.CheckErr = settle(ctx, logger, StageCheck, check, Verdict(""))

	write := solo.Guard(ctx, func(ctx context.Context) rop.Result[Verdict] {
		return chain.FromValue(ctx, report.Verdict).
			Check(func(_ context.Context, v Verdict) error {
				return p.writeResult(p.cfg.OutputPath, string(v))
			}).
			Result()
	})
	_, report.WriteErr = settle(ctx, logger, StageWrite, write, Verdict(""))

	return report
}

func settle[T any](ctx context.Context, logger *slog.Logger, stage Stage,
	res rop.Result[T], def T) (T, error) {

	chain.Start(ctx, res).Ensure(
		func(_ context.Context, v T) {
			logger.Debug("stage done", "stage", string(stage), "value", v)
		},
		func(_ context.Context, err error) {
			if IsKnown(err) {
				logger.Error(err.Error(), "stage", string(stage))
				return
			}
			logger.Error(UnknownErrorMessage, "stage", string(stage), "err", err)
		})

	return res.OrElse(def), res.Err()
}
