package engine

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/strengthlab/trainadapt/internal/catalog"
	"github.com/strengthlab/trainadapt/internal/telemetry/tracing"
)

// Engine bundles all analyzers behind a single entry point. It is
// stateless and safe for concurrent use; every call works on the
// caller's data only.
type Engine struct {
	cfg          Config
	catalog      *catalog.Catalog
	plateau      *PlateauDetector
	overreaching *OverreachingAnalyzer
	volume       *VolumeOptimizer
	fatigue      *FatigueAnalyzer
	substitution *SubstitutionAdvisor
	injury       *InjuryRiskPredictor
	composer     *Composer
}

func New(cat *catalog.Catalog, cfg Config) (*Engine, error) {
	if cat == nil {
		return nil, &InvalidConfigurationError{Field: "catalog", Reason: "must not be nil"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	plateau, err := NewPlateauDetector(cfg.Plateau)
	if err != nil {
		return nil, fmt.Errorf("new plateau detector: %w", err)
	}
	overreaching, err := NewOverreachingAnalyzer(cfg.Overreaching)
	if err != nil {
		return nil, fmt.Errorf("new overreaching analyzer: %w", err)
	}
	volume, err := NewVolumeOptimizer(cfg.Volume)
	if err != nil {
		return nil, fmt.Errorf("new volume optimizer: %w", err)
	}
	fatigue, err := NewFatigueAnalyzer(cfg.Fatigue, cat)
	if err != nil {
		return nil, fmt.Errorf("new fatigue analyzer: %w", err)
	}
	substitution, err := NewSubstitutionAdvisor(cfg.Substitution, cat)
	if err != nil {
		return nil, fmt.Errorf("new substitution advisor: %w", err)
	}
	injury, err := NewInjuryRiskPredictor(cfg.InjuryRisk, cat)
	if err != nil {
		return nil, fmt.Errorf("new injury risk predictor: %w", err)
	}

	return &Engine{
		cfg:          cfg,
		catalog:      cat,
		plateau:      plateau,
		overreaching: overreaching,
		volume:       volume,
		fatigue:      fatigue,
		substitution: substitution,
		injury:       injury,
		composer:     NewComposer(plateau, overreaching, volume, fatigue, substitution, injury),
	}, nil
}

// AnalysisResult is the full output of one analysis run. Detector
// results are included alongside the composed recommendations so
// callers can show the raw signals too.
type AnalysisResult struct {
	UserID          string             `json:"userId"`
	Plateau         PlateauResult      `json:"plateau"`
	Overreaching    OverreachingResult `json:"overreaching"`
	Volume          VolumeResult       `json:"volume"`
	Fatigue         FatigueReport      `json:"fatigue"`
	InjuryRisk      InjuryRiskProfile  `json:"injuryRisk"`
	Recommendations []Recommendation   `json:"recommendations"`
}

// Analyze runs every detector over the user's history and composes the
// triggered recommendations. History may arrive in any order; it is
// sorted by timestamp before analysis. A panic in any analyzer is
// converted into an *AnalysisError instead of taking the caller down.
func (e *Engine) Analyze(
	ctx context.Context,
	userCtx UserTrainingContext,
	history []PerformanceSample,
	program Program,
) (result AnalysisResult, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "engine.analyze")
	defer func() {
		if r := recover(); r != nil {
			err = &AnalysisError{Op: "analyze", Err: fmt.Errorf("panic: %v", r)}
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	span.SetAttributes(attribute.String("user.id", userCtx.UserID))

	sorted := SortedByTime(history)
	span.SetAttributes(attribute.Int("samples", len(sorted)))

	result = AnalysisResult{
		UserID:       userCtx.UserID,
		Plateau:      e.plateau.Detect(sorted),
		Overreaching: e.overreaching.Assess(sorted),
		Volume:       e.volume.Optimize(sorted),
		Fatigue:      e.fatigue.Analyze(program.Exercises),
		InjuryRisk: e.injury.Predict(
			userCtx,
			plannedFromProgram(program),
			loadHistoryFromProgram(program, sorted),
		),
		Recommendations: e.composer.Compose(userCtx, sorted, program),
	}
	return result, nil
}

// DetectPlateau runs only the plateau detector over the sorted history.
func (e *Engine) DetectPlateau(ctx context.Context, history []PerformanceSample) PlateauResult {
	_, span := tracing.GlobalTracer.Start(ctx, "engine.detectPlateau")
	defer span.End()
	return e.plateau.Detect(SortedByTime(history))
}

// AssessOverreaching runs only the overreaching analyzer.
func (e *Engine) AssessOverreaching(ctx context.Context, history []PerformanceSample) OverreachingResult {
	_, span := tracing.GlobalTracer.Start(ctx, "engine.assessOverreaching")
	defer span.End()
	return e.overreaching.Assess(SortedByTime(history))
}

// OptimizeVolume runs only the volume optimizer.
func (e *Engine) OptimizeVolume(ctx context.Context, history []PerformanceSample) VolumeResult {
	_, span := tracing.GlobalTracer.Start(ctx, "engine.optimizeVolume")
	defer span.End()
	return e.volume.Optimize(SortedByTime(history))
}

// AnalyzeFatigue runs only the per-exercise fatigue analyzer.
func (e *Engine) AnalyzeFatigue(ctx context.Context, exercises []ProgramExercise) FatigueReport {
	_, span := tracing.GlobalTracer.Start(ctx, "engine.analyzeFatigue")
	defer span.End()
	return e.fatigue.Analyze(exercises)
}

// FindSubstitutions returns substitution candidates for the exercise.
// ErrUnknownExercise is returned when the id is not in the catalog, so
// HTTP callers can map it to a 404.
func (e *Engine) FindSubstitutions(
	ctx context.Context,
	exerciseID string,
	userCtx UserTrainingContext,
) ([]Substitution, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "engine.findSubstitutions")
	defer span.End()

	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	if _, ok := e.catalog.Get(exerciseID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownExercise, exerciseID)
	}
	return e.substitution.Find(exerciseID, userCtx, nil), nil
}

// PredictInjuryRisk scores a planned workout against recent load history.
func (e *Engine) PredictInjuryRisk(
	ctx context.Context,
	userCtx UserTrainingContext,
	workout PlannedWorkout,
	recent []LoadRecord,
) InjuryRiskProfile {
	_, span := tracing.GlobalTracer.Start(ctx, "engine.predictInjuryRisk")
	defer span.End()
	return e.injury.Predict(userCtx, workout, recent)
}

// Catalog exposes the exercise catalog the engine was built with.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}
