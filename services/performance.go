package services

import (
	"math"
	"strings"

	"github.com/LovationAdmin/buildadvisor-api/models"
)

// ============================================================================
// PERFORMANCE MODEL
// Heuristic FPS per genre. Every number below is a tunable calibration, not
// a measured benchmark: higher tier gives more FPS, higher resolution less.
// ============================================================================

type genre string

const (
	genreAAA        genre = "aaa"
	genreEsports    genre = "esports"
	genreIndie      genre = "indie"
	genreSimulation genre = "simulation"
)

const (
	res1080p = "1080p"
	res1440p = "1440p"
	res4K    = "4k"
)

const (
	placeholderTier = 5.0
	minTier         = 1.0
	maxTier         = 10.0

	simulationMaxGPUWeight = 0.50
	fpsLowFactor           = 0.75
	fpsHighFactor          = 1.2
)

// gpuWeight is the GPU share of the weighted tier per resolution.
var gpuWeight = map[string]float64{
	res1080p: 0.55,
	res1440p: 0.70,
	res4K:    0.85,
}

// baselineFPS[resolution][genre][tier-1]
var baselineFPS = map[string]map[genre][10]float64{
	res1080p: {
		genreAAA:        {25, 35, 45, 58, 70, 85, 100, 118, 135, 155},
		genreEsports:    {90, 130, 170, 215, 260, 310, 360, 410, 460, 520},
		genreIndie:      {60, 80, 100, 125, 150, 175, 200, 230, 260, 290},
		genreSimulation: {20, 28, 36, 45, 55, 65, 76, 88, 100, 115},
	},
	res1440p: {
		genreAAA:        {18, 25, 33, 43, 53, 65, 78, 92, 108, 125},
		genreEsports:    {70, 100, 135, 170, 210, 250, 290, 335, 380, 430},
		genreIndie:      {45, 62, 80, 100, 120, 142, 165, 190, 215, 240},
		genreSimulation: {16, 22, 29, 37, 46, 55, 65, 75, 86, 98},
	},
	res4K: {
		genreAAA:        {10, 14, 19, 25, 32, 40, 49, 59, 70, 82},
		genreEsports:    {45, 65, 88, 112, 140, 168, 198, 230, 262, 295},
		genreIndie:      {30, 42, 55, 70, 85, 102, 120, 140, 160, 180},
		genreSimulation: {11, 15, 20, 26, 33, 40, 48, 56, 65, 75},
	},
}

// fpsCaveats is reproduced verbatim on every estimate.
var fpsCaveats = []string{
	"Estimates are heuristic and not based on measured benchmarks.",
	"Actual FPS varies with game version, drivers and background load.",
	"Upscaling and frame generation can push results beyond the max figure.",
}

// DefaultGamingTarget is the reference profile used when a creator build
// still needs an FPS-based comparison.
var DefaultGamingTarget = models.GamingTarget{
	Resolution:  res1440p,
	RefreshRate: 144,
	MinGPUTier:  6,
	MinCPUTier:  5,
}

type tierSource int

const (
	tierKnown tierSource = iota
	tierEstimated
	tierAbsent
)

type tierInput struct {
	value  float64
	source tierSource
}

func resolveTier(part *models.Part, override *int) tierInput {
	if part == nil {
		return tierInput{value: placeholderTier, source: tierAbsent}
	}
	if override != nil {
		return tierInput{value: clampTier(float64(*override)), source: tierEstimated}
	}
	if t, ok := models.IntValue(part.Specs.Tier); ok {
		return tierInput{value: clampTier(float64(t)), source: tierKnown}
	}
	return tierInput{value: placeholderTier, source: tierEstimated}
}

func clampTier(t float64) float64 {
	return math.Max(minTier, math.Min(maxTier, t))
}

// normalizeResolution maps user input onto a calibrated table row. The bool
// is false when the input was not one of the calibrated resolutions.
func normalizeResolution(raw string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1080p", "1920x1080", "fhd":
		return res1080p, true
	case "1440p", "2560x1440", "qhd":
		return res1440p, true
	case "4k", "2160p", "3840x2160", "uhd":
		return res4K, true
	}
	return res1080p, false
}

// EstimateFPS returns per-genre FPS ranges. Creator targets are a contract
// error: callers must use a gaming profile.
func EstimateFPS(parts models.SelectedParts, target models.Target, overrides models.ManualOverrides) (models.GenreEstimates, error) {
	gaming, err := target.GamingProfile()
	if err != nil {
		return models.GenreEstimates{}, err
	}
	return estimateGaming(parts, gaming, overrides), nil
}

func estimateGaming(parts models.SelectedParts, target models.GamingTarget, overrides models.ManualOverrides) models.GenreEstimates {
	cpu := resolveTier(parts.CPU, overrides.CPUTier)
	gpu := resolveTier(parts.GPU, overrides.GPUTier)
	resolution, native := normalizeResolution(target.Resolution)

	confidence := models.ConfidenceHigh
	switch {
	case cpu.source == tierAbsent || gpu.source == tierAbsent:
		confidence = models.ConfidenceLow
	case cpu.source == tierEstimated || gpu.source == tierEstimated || !native:
		confidence = models.ConfidenceMedium
	}
	quality := settingsQuality(cpu.value, gpu.value, target)

	build := func(g genre) models.FPSEstimate {
		weight := gpuWeight[resolution]
		if g == genreSimulation {
			weight = math.Min(weight, simulationMaxGPUWeight)
		}
		score := weight*gpu.value + (1-weight)*cpu.value
		likely := int(math.Round(interpolateFPS(baselineFPS[resolution][g], score)))
		if likely < 0 {
			likely = 0
		}
		return models.FPSEstimate{
			Min:             int(math.Round(float64(likely) * fpsLowFactor)),
			Likely:          likely,
			Max:             int(math.Round(float64(likely) * fpsHighFactor)),
			Confidence:      confidence,
			SettingsQuality: quality,
			Caveats:         append([]string(nil), fpsCaveats...),
		}
	}

	return models.GenreEstimates{
		AAA:        build(genreAAA),
		Esports:    build(genreEsports),
		Indie:      build(genreIndie),
		Simulation: build(genreSimulation),
	}
}

// interpolateFPS reads the curve at a fractional tier.
func interpolateFPS(curve [10]float64, score float64) float64 {
	score = clampTier(score)
	lo := int(math.Floor(score))
	if lo >= int(maxTier) {
		return curve[9]
	}
	frac := score - float64(lo)
	return curve[lo-1] + (curve[lo]-curve[lo-1])*frac
}

func settingsQuality(cpuTier, gpuTier float64, target models.GamingTarget) string {
	gpuMargin := gpuTier - float64(target.MinGPUTier)
	cpuMargin := cpuTier - float64(target.MinCPUTier)
	switch {
	case gpuMargin >= 2 && cpuMargin >= 2:
		return "Ultra"
	case gpuMargin >= 0 && cpuMargin >= 0:
		return "High"
	case gpuMargin >= 0 || cpuMargin >= 0:
		return "Medium"
	}
	return "Low"
}

// PerformanceScore is the weighted tier on a 0–100 scale, the same unit used
// by upgrade score deltas (one tier = 10 points).
func PerformanceScore(parts models.SelectedParts, resolution string, overrides models.ManualOverrides) int {
	if parts.CPU == nil && parts.GPU == nil {
		return 0
	}
	res, _ := normalizeResolution(resolution)
	cpu := resolveTier(parts.CPU, overrides.CPUTier)
	gpu := resolveTier(parts.GPU, overrides.GPUTier)
	w := gpuWeight[res]
	return int(math.Round((w*gpu.value + (1-w)*cpu.value) * 10))
}
