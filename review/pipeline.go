package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"veridraft/gemini"
)

// Stage names one pipeline stage. Stages run in the declared order with no
// skipping and no loops.
type Stage string

const (
	StageGeneration   Stage = "generation"
	StageInspection   Stage = "inspection"
	StageCorrection   Stage = "correction"
	StageVerification Stage = "verification"
)

// StageError tags a failure with the stage that produced it. The run stops at
// the failing stage; later stages are never invoked.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("stage %s: %v", e.Stage, e.Err) }

func (e *StageError) Unwrap() error { return e.Err }

// Result summarizes one completed run. Assembled once at the end; a failed
// run yields no Result at all.
type Result struct {
	Query            string
	Draft            string
	Critique         string
	Revision         string
	VerificationText string
	Sources          []gemini.Citation
}

// Pipeline sequences the four roles over a shared executor. It holds no
// per-run state, so independent runs may proceed concurrently.
type Pipeline struct {
	generation   *GenerationAgent
	inspection   *InspectionAgent
	correction   *CorrectionAgent
	verification *VerificationAgent
	log          *zap.SugaredLogger
}

// NewPipeline wires the four roles to one executor.
func NewPipeline(exec gemini.Executor, log *zap.SugaredLogger) *Pipeline {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Pipeline{
		generation:   NewGenerationAgent(exec),
		inspection:   NewInspectionAgent(exec),
		correction:   NewCorrectionAgent(exec),
		verification: NewVerificationAgent(exec),
		log:          log,
	}
}

// Run executes generation, inspection, correction and verification in order,
// feeding each stage the prior stage's exact output. Each stage blocks until
// its exchange completes; any failure aborts the run fail-fast.
func (p *Pipeline) Run(ctx context.Context, query string) (Result, error) {
	log := p.log.With("run_id", shortID(), "query", truncate(query, 60))
	log.Infow("pipeline start")

	draft, err := p.generation.Run(ctx, query)
	if err != nil {
		return Result{}, p.fail(log, StageGeneration, err)
	}
	p.stageDone(log, StageGeneration, draft)

	critique, err := p.inspection.Run(ctx, draft)
	if err != nil {
		return Result{}, p.fail(log, StageInspection, err)
	}
	p.stageDone(log, StageInspection, critique)

	revision, err := p.correction.Run(ctx, draft, critique)
	if err != nil {
		return Result{}, p.fail(log, StageCorrection, err)
	}
	p.stageDone(log, StageCorrection, revision)

	verified, err := p.verification.Run(ctx, revision)
	if err != nil {
		return Result{}, p.fail(log, StageVerification, err)
	}
	p.stageDone(log, StageVerification, verified.Text)

	log.Infow("pipeline complete", "sources", len(verified.Sources))
	return Result{
		Query:            query,
		Draft:            draft,
		Critique:         critique,
		Revision:         revision,
		VerificationText: verified.Text,
		Sources:          verified.Sources,
	}, nil
}

func (p *Pipeline) stageDone(log *zap.SugaredLogger, stage Stage, output string) {
	log.Infow("stage done", "stage", stage, "output_bytes", len(output))
	log.Debugw("stage output", "stage", stage, "text", output)
}

func (p *Pipeline) fail(log *zap.SugaredLogger, stage Stage, err error) error {
	log.Errorw("pipeline failed", "stage", stage, "error", err)
	return &StageError{Stage: stage, Err: err}
}

func shortID() string {
	return uuid.NewString()[:8]
}

// truncate shortens a string for log fields.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
