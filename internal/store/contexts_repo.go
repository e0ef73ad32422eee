package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/strengthlab/trainadapt/internal/engine"
	"github.com/strengthlab/trainadapt/internal/telemetry/tracing"
)

var ErrContextNotFound = errors.New("user training context not found")

// ContextsRepo persists one training context row per user: experience,
// goals, available equipment, injury history and current recovery
// metrics. The structured fields are stored as jsonb.
type ContextsRepo struct {
	db *pgxpool.Pool
}

func NewContextsRepo(db *pgxpool.Pool) *ContextsRepo {
	return &ContextsRepo{
		db: db,
	}
}

func (r *ContextsRepo) Upsert(ctx context.Context, userCtx engine.UserTrainingContext) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.contexts.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userCtx.UserID))

	goalsJson, err := json.Marshal(userCtx.Goals)
	if err != nil {
		return fmt.Errorf("marshal goals: %w", err)
	}
	equipmentJson, err := json.Marshal(userCtx.AvailableEquipment)
	if err != nil {
		return fmt.Errorf("marshal equipment: %w", err)
	}
	injuryHistoryJson, err := json.Marshal(userCtx.InjuryHistory)
	if err != nil {
		return fmt.Errorf("marshal injury history: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_training_context
				(user_id, experience, goals, equipment, injury_history, sleep_quality, stress_level)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (user_id) DO UPDATE SET
				experience = $2, goals = $3, equipment = $4, injury_history = $5,
				sleep_quality = $6, stress_level = $7;`,
		userCtx.UserID, string(userCtx.Experience), goalsJson, equipmentJson, injuryHistoryJson,
		userCtx.RecoveryMetrics.SleepQuality, userCtx.RecoveryMetrics.StressLevel,
	)
	return err
}

func (r *ContextsRepo) Get(ctx context.Context, userID string) (_ *engine.UserTrainingContext, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.contexts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	var (
		userCtx           engine.UserTrainingContext
		experience        string
		goalsJson         []byte
		equipmentJson     []byte
		injuryHistoryJson []byte
	)
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, experience, goals, equipment, injury_history, sleep_quality, stress_level
			FROM user_training_context
			WHERE user_id = $1;`,
		userID,
	).Scan(
		&userCtx.UserID, &experience, &goalsJson, &equipmentJson, &injuryHistoryJson,
		&userCtx.RecoveryMetrics.SleepQuality, &userCtx.RecoveryMetrics.StressLevel,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrContextNotFound
	}
	if err != nil {
		return nil, err
	}

	userCtx.Experience = engine.ExperienceLevel(experience)
	if err := json.Unmarshal(goalsJson, &userCtx.Goals); err != nil {
		return nil, fmt.Errorf("unmarshal goals: %w", err)
	}
	if err := json.Unmarshal(equipmentJson, &userCtx.AvailableEquipment); err != nil {
		return nil, fmt.Errorf("unmarshal equipment: %w", err)
	}
	if err := json.Unmarshal(injuryHistoryJson, &userCtx.InjuryHistory); err != nil {
		return nil, fmt.Errorf("unmarshal injury history: %w", err)
	}

	return &userCtx, nil
}

func (r *ContextsRepo) Delete(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.contexts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM user_training_context WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrContextNotFound
	}
	return nil
}
