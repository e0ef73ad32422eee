package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strengthlab/trainadapt/internal/engine"
)

func newPlateauDetector(t *testing.T) *engine.PlateauDetector {
	t.Helper()
	detector, err := engine.NewPlateauDetector(engine.DefaultPlateauConfig())
	require.NoError(t, err)
	return detector
}

func TestPlateauDetector_InsufficientData(t *testing.T) {
	detector := newPlateauDetector(t)

	res := detector.Detect(weeklyGains(repeatGain(0.01, 3), nil))

	assert.False(t, res.Detected)
	assert.Equal(t, "insufficient_data", res.Reason)
	assert.Equal(t, 4, res.SamplesUsed)
	assert.InDelta(t, 4.0/6.0, res.Confidence, 1e-9)
}

func TestPlateauDetector_ConfidenceGrowsWithSamples(t *testing.T) {
	detector := newPlateauDetector(t)

	prev := -1.0
	for weeks := 0; weeks <= 7; weeks++ {
		res := detector.Detect(weeklyGains(repeatGain(0.01, weeks), nil))
		assert.GreaterOrEqual(t, res.Confidence, prev, "weeks=%d", weeks)
		assert.LessOrEqual(t, res.Confidence, 1.0)
		prev = res.Confidence
	}
}

func TestPlateauDetector_SteadyProgressNotDetected(t *testing.T) {
	detector := newPlateauDetector(t)

	// 2% per week is healthy progression, well above significance
	res := detector.Detect(weeklyGains(repeatGain(0.02, 11), nil))

	assert.False(t, res.Detected)
	assert.Equal(t, engine.PlateauNone, res.Type)
	assert.InDelta(t, 0.02, res.AvgChange, 1e-9)
}

func TestPlateauDetector_VolumePlateau(t *testing.T) {
	detector := newPlateauDetector(t)

	// 8 weeks of 1% gains, then progression collapses to 0.2% for 4 weeks;
	// high volume tolerance throughout
	gains := append(repeatGain(0.01, 7), repeatGain(0.002, 4)...)
	samples := weeklyGains(gains, func(_ int, s *engine.PerformanceSample) {
		s.VolumeTolerance = 0.85
	})

	res := detector.Detect(samples)

	require.True(t, res.Detected)
	assert.Equal(t, engine.PlateauVolume, res.Type)
	assert.Equal(t, 1.0, res.Confidence)
	assert.Equal(t, 4, res.StalledSteps)
	assert.Equal(t, 6, res.SamplesUsed)
	assert.Less(t, res.AvgChange, 0.01)
}

func TestPlateauDetector_IntensityPlateau(t *testing.T) {
	detector := newPlateauDetector(t)

	gains := append(repeatGain(0.01, 7), repeatGain(0.001, 4)...)
	samples := weeklyGains(gains, func(_ int, s *engine.PerformanceSample) {
		s.VolumeTolerance = 0.5
	})

	res := detector.Detect(samples)

	require.True(t, res.Detected)
	assert.Equal(t, engine.PlateauIntensity, res.Type)
}

func TestPlateauDetector_GeneralPlateau(t *testing.T) {
	detector := newPlateauDetector(t)

	gains := append(repeatGain(0.01, 7), repeatGain(0.001, 4)...)
	samples := weeklyGains(gains, func(_ int, s *engine.PerformanceSample) {
		s.VolumeTolerance = 0.7
	})

	res := detector.Detect(samples)

	require.True(t, res.Detected)
	assert.Equal(t, engine.PlateauGeneral, res.Type)
}

func TestPlateauDetector_ErraticProgressNotAPlateau(t *testing.T) {
	detector := newPlateauDetector(t)

	// alternating big gains and losses stall the average but the
	// variance gives the instability away
	gains := []float64{0.2, -0.2, 0.2, -0.2, 0.2, -0.2, 0.2, -0.2}
	res := detector.Detect(weeklyGains(gains, nil))

	assert.False(t, res.Detected)
}

func TestNewPlateauDetector_InvalidConfig(t *testing.T) {
	cfg := engine.DefaultPlateauConfig()
	cfg.WindowSize = 1

	_, err := engine.NewPlateauDetector(cfg)
	require.Error(t, err)

	var cfgErr *engine.InvalidConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "plateau.window_size", cfgErr.Field)
}
