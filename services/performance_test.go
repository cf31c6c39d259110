package services

import (
	"errors"
	"testing"

	"github.com/LovationAdmin/buildadvisor-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tieredParts(cpuTier, gpuTier int) models.SelectedParts {
	return models.SelectedParts{
		CPU: part("cpu", models.CategoryCPU, 0, models.Specs{Tier: models.IntPtr(cpuTier)}),
		GPU: part("gpu", models.CategoryGPU, 0, models.Specs{Tier: models.IntPtr(gpuTier)}),
	}
}

func allGenres(e models.GenreEstimates) []models.FPSEstimate {
	return []models.FPSEstimate{e.AAA, e.Esports, e.Indie, e.Simulation}
}

func TestEstimateFPS_CreatorTargetRejected(t *testing.T) {
	_, err := EstimateFPS(tieredParts(6, 6), creatorTarget(32), models.ManualOverrides{})
	assert.True(t, errors.Is(err, models.ErrTargetShape))
}

func TestEstimateFPS_KnownValue(t *testing.T) {
	est, err := EstimateFPS(tieredParts(6, 9), gamingTarget("1440p", 7, 6), models.ManualOverrides{})
	require.NoError(t, err)

	// weighted tier 0.7*9 + 0.3*6 = 8.1, between the tier 8 and 9 AAA points
	assert.Equal(t, 94, est.AAA.Likely)
	assert.Equal(t, 71, est.AAA.Min)
	assert.Equal(t, 113, est.AAA.Max)
	assert.Equal(t, models.ConfidenceHigh, est.AAA.Confidence)
	assert.Equal(t, "High", est.AAA.SettingsQuality)
	assert.Len(t, est.AAA.Caveats, 3)
}

func TestEstimateFPS_RangeOrdered(t *testing.T) {
	for _, res := range []string{"1080p", "1440p", "4k"} {
		for tier := 1; tier <= 10; tier++ {
			est, err := EstimateFPS(tieredParts(tier, tier), gamingTarget(res, 5, 5), models.ManualOverrides{})
			require.NoError(t, err)
			for _, g := range allGenres(est) {
				assert.LessOrEqual(t, 0, g.Min)
				assert.LessOrEqual(t, g.Min, g.Likely, "%s tier %d", res, tier)
				assert.LessOrEqual(t, g.Likely, g.Max, "%s tier %d", res, tier)
			}
		}
	}
}

func TestEstimateFPS_MonotonicInGPUTier(t *testing.T) {
	for _, res := range []string{"1080p", "1440p", "4k"} {
		prev, err := EstimateFPS(tieredParts(6, 1), gamingTarget(res, 5, 5), models.ManualOverrides{})
		require.NoError(t, err)
		for tier := 2; tier <= 10; tier++ {
			cur, err := EstimateFPS(tieredParts(6, tier), gamingTarget(res, 5, 5), models.ManualOverrides{})
			require.NoError(t, err)
			before, after := allGenres(prev), allGenres(cur)
			for i := range before {
				assert.GreaterOrEqual(t, after[i].Likely, before[i].Likely, "%s gpu tier %d genre %d", res, tier, i)
			}
			prev = cur
		}
	}
}

func TestEstimateFPS_HigherResolutionIsSlower(t *testing.T) {
	parts := tieredParts(7, 7)
	low, _ := EstimateFPS(parts, gamingTarget("1080p", 5, 5), models.ManualOverrides{})
	mid, _ := EstimateFPS(parts, gamingTarget("1440p", 5, 5), models.ManualOverrides{})
	high, _ := EstimateFPS(parts, gamingTarget("4k", 5, 5), models.ManualOverrides{})

	lows, mids, highs := allGenres(low), allGenres(mid), allGenres(high)
	for i := range lows {
		assert.GreaterOrEqual(t, lows[i].Likely, mids[i].Likely)
		assert.GreaterOrEqual(t, mids[i].Likely, highs[i].Likely)
	}
}

func TestEstimateFPS_Confidence(t *testing.T) {
	override := models.IntPtr(8)
	tests := []struct {
		name      string
		parts     models.SelectedParts
		res       string
		overrides models.ManualOverrides
		want      models.Confidence
	}{
		{"all tiers known", tieredParts(6, 6), "1440p", models.ManualOverrides{}, models.ConfidenceHigh},
		{"gpu missing", models.SelectedParts{CPU: tieredParts(6, 6).CPU}, "1440p", models.ManualOverrides{}, models.ConfidenceLow},
		{"override counts as estimate", tieredParts(6, 6), "1440p", models.ManualOverrides{GPUTier: override}, models.ConfidenceMedium},
		{
			"tier missing on present part",
			models.SelectedParts{CPU: tieredParts(6, 6).CPU, GPU: part("gpu", models.CategoryGPU, 0, models.Specs{})},
			"1440p", models.ManualOverrides{}, models.ConfidenceMedium,
		},
		{"uncalibrated resolution", tieredParts(6, 6), "3440x1440", models.ManualOverrides{}, models.ConfidenceMedium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est, err := EstimateFPS(tt.parts, gamingTarget(tt.res, 5, 5), tt.overrides)
			require.NoError(t, err)
			for _, g := range allGenres(est) {
				assert.Equal(t, tt.want, g.Confidence)
			}
		})
	}
}

func TestSettingsQuality(t *testing.T) {
	target := models.GamingTarget{MinGPUTier: 6, MinCPUTier: 6}
	assert.Equal(t, "Ultra", settingsQuality(8, 8, target))
	assert.Equal(t, "High", settingsQuality(6, 7, target))
	assert.Equal(t, "Medium", settingsQuality(4, 7, target))
	assert.Equal(t, "Low", settingsQuality(4, 4, target))
}

func TestNormalizeResolution(t *testing.T) {
	for raw, want := range map[string]string{"1080p": "1080p", "QHD": "1440p", "3840x2160": "4k", " 4K ": "4k"} {
		got, native := normalizeResolution(raw)
		assert.Equal(t, want, got, raw)
		assert.True(t, native, raw)
	}
	got, native := normalizeResolution("720p")
	assert.Equal(t, "1080p", got)
	assert.False(t, native)
}

func TestPerformanceScore(t *testing.T) {
	assert.Equal(t, 0, PerformanceScore(models.SelectedParts{}, "1440p", models.ManualOverrides{}))
	assert.Equal(t, 81, PerformanceScore(tieredParts(6, 9), "1440p", models.ManualOverrides{}))
	assert.Equal(t, 100, PerformanceScore(tieredParts(10, 10), "4k", models.ManualOverrides{}))
	assert.Equal(t, 80, PerformanceScore(tieredParts(6, 6), "4k", models.ManualOverrides{CPUTier: models.IntPtr(8), GPUTier: models.IntPtr(8)}))
}
