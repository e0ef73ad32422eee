package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/strengthlab/trainadapt/internal/engine"
	"github.com/strengthlab/trainadapt/internal/telemetry/tracing"
)

var ErrSampleNotFound = errors.New("performance sample not found")

// SamplesRepo persists weekly performance samples, one row per user per
// timestamp.
type SamplesRepo struct {
	db *pgxpool.Pool
}

func NewSamplesRepo(db *pgxpool.Pool) *SamplesRepo {
	return &SamplesRepo{
		db: db,
	}
}

func (r *SamplesRepo) Add(ctx context.Context, userID string, sample engine.PerformanceSample) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.samples.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	strengthIndexJson, err := json.Marshal(sample.StrengthIndex)
	if err != nil {
		return 0, fmt.Errorf("marshal strength index: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO performance_sample
				(user_id, taken_at, strength_index, volume_tolerance, recovery_score,
				 motivation_level, adherence_rate, rpe_accuracy, progression_rate)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;`,
		userID, sample.Timestamp, strengthIndexJson, sample.VolumeTolerance, sample.RecoveryScore,
		sample.MotivationLevel, sample.AdherenceRate, sample.RPEAccuracy, sample.ProgressionRate,
	)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return 0, err
	}

	if !rows.Next() {
		return 0, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return 0, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("sample.id", id))
	return id, nil
}

// ListForUser returns all samples for the user, oldest first.
func (r *SamplesRepo) ListForUser(ctx context.Context, userID string) (_ []engine.PerformanceSample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.samples.listForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT taken_at, strength_index, volume_tolerance, recovery_score,
				motivation_level, adherence_rate, rpe_accuracy, progression_rate
			FROM performance_sample
			WHERE user_id = $1
			ORDER BY taken_at ASC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []engine.PerformanceSample
	for rows.Next() {
		var sample engine.PerformanceSample
		var strengthIndexJson []byte
		if err := rows.Scan(
			&sample.Timestamp, &strengthIndexJson, &sample.VolumeTolerance, &sample.RecoveryScore,
			&sample.MotivationLevel, &sample.AdherenceRate, &sample.RPEAccuracy, &sample.ProgressionRate,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if err := json.Unmarshal(strengthIndexJson, &sample.StrengthIndex); err != nil {
			return nil, fmt.Errorf("unmarshal strength index: %w", err)
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("samples", len(samples)))
	return samples, nil
}

func (r *SamplesRepo) DeleteForUser(ctx context.Context, userID string) (deleted int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.samples.deleteForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM performance_sample WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return 0, err
	}
	if tag.RowsAffected() == 0 {
		return 0, ErrSampleNotFound
	}
	return tag.RowsAffected(), nil
}
