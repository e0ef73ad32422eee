package rescache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/strengthlab/trainadapt/internal/engine"
	"github.com/strengthlab/trainadapt/internal/telemetry/tracing"
)

var ErrCacheMiss = errors.New("analysis result not in cache")

const keyPrefix = "trainadapt::analysis::"

// ResultsCache keeps recent full analysis results in redis, so repeated
// analyze calls for the same user within the TTL skip recomputation.
type ResultsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *ResultsCache {
	return &ResultsCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func (c *ResultsCache) Get(ctx context.Context, userID string) (_ *engine.AnalysisResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "rescache.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	resultJson, err := c.rdb.Get(ctx, keyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var result engine.AnalysisResult
	if err := json.Unmarshal(resultJson, &result); err != nil {
		return nil, fmt.Errorf("unmarshal cached result: %w", err)
	}
	return &result, nil
}

func (c *ResultsCache) Set(ctx context.Context, userID string, result engine.AnalysisResult) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "rescache.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	resultJson, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := c.rdb.Set(ctx, keyPrefix+userID, resultJson, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate drops the cached result, e.g. after a new sample arrives.
func (c *ResultsCache) Invalidate(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "rescache.invalidate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := c.rdb.Del(ctx, keyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
