package rescache_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strengthlab/trainadapt/internal/engine"
	"github.com/strengthlab/trainadapt/internal/rescache"
)

const testTTL = 5 * time.Minute

func testResult() engine.AnalysisResult {
	return engine.AnalysisResult{
		UserID: "user-77",
		Volume: engine.VolumeResult{Adjustment: 0.1, Confidence: 0.8},
		Recommendations: []engine.Recommendation{{
			ID:         "rec-1",
			Type:       engine.AdaptationStandardDeload,
			Confidence: 0.8,
			Parameters: engine.DeloadParams{VolumeCutPct: 0.3, DurationWeeks: 1},
		}},
	}
}

func TestResultsCache_GetMiss(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := rescache.New(rdb, testTTL)

	mock.ExpectGet("trainadapt::analysis::user-77").RedisNil()

	_, err := cache.Get(context.Background(), "user-77")
	assert.ErrorIs(t, err, rescache.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultsCache_SetAndGet(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := rescache.New(rdb, testTTL)

	result := testResult()
	resultJson, err := json.Marshal(result)
	require.NoError(t, err)

	mock.ExpectSet("trainadapt::analysis::user-77", resultJson, testTTL).SetVal("OK")
	mock.ExpectGet("trainadapt::analysis::user-77").SetVal(string(resultJson))

	require.NoError(t, cache.Set(context.Background(), "user-77", result))

	cached, err := cache.Get(context.Background(), "user-77")
	require.NoError(t, err)
	// the typed parameter block survives the round trip
	assert.Equal(t, result, *cached)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultsCache_GetCorruptPayload(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := rescache.New(rdb, testTTL)

	mock.ExpectGet("trainadapt::analysis::user-77").SetVal("{not json")

	_, err := cache.Get(context.Background(), "user-77")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal cached result")
}

func TestResultsCache_Invalidate(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := rescache.New(rdb, testTTL)

	mock.ExpectDel("trainadapt::analysis::user-77").SetVal(1)

	require.NoError(t, cache.Invalidate(context.Background(), "user-77"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
