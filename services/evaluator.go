package services

import (
	"fmt"

	"github.com/LovationAdmin/buildadvisor-api/config"
	"github.com/LovationAdmin/buildadvisor-api/models"
)

// ============================================================================
// ADVISOR SERVICE
// Runs checker, performance, power and recommendations in one pass. Holds
// only read-only state and is safe for concurrent use.
// ============================================================================

type AdvisorService struct {
	catalog *models.Catalog
	region  config.Region
}

func NewAdvisorService(catalog *models.Catalog, region config.Region) *AdvisorService {
	return &AdvisorService{catalog: catalog, region: region}
}

func (s *AdvisorService) Catalog() *models.Catalog {
	return s.catalog
}

// EvaluateOptions are per-call knobs. Zero value means default region and no
// budget window.
type EvaluateOptions struct {
	Region    *config.Region
	MaxBudget *float64
}

// Evaluate derives a full evaluation from a selection and target.
func (s *AdvisorService) Evaluate(parts models.SelectedParts, target models.Target, overrides models.ManualOverrides, opts EvaluateOptions) (*models.Evaluation, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	region := s.region
	if opts.Region != nil {
		region = *opts.Region
	}

	issues := CheckCompatibility(parts)
	eval := &models.Evaluation{
		Issues:        issues,
		Verdict:       Aggregate(issues),
		Power:         PowerReport(parts, region),
		TotalPriceUSD: parts.TotalPriceUSD(),
		Upgrades:      SuggestUpgrades(parts, issues, s.catalog, opts.MaxBudget),
		Alternatives:  SuggestAlternatives(parts, issues, s.catalog, target),
	}

	resolution := DefaultGamingTarget.Resolution
	switch target.Kind {
	case models.TargetGaming:
		fps, err := EstimateFPS(parts, target, overrides)
		if err != nil {
			return nil, err
		}
		eval.FPS = &fps
		resolution = target.Gaming.Resolution
	case models.TargetCreator:
		fit, err := CreatorFitFor(parts, target)
		if err != nil {
			return nil, err
		}
		eval.CreatorFit = &fit
	}
	eval.PerformanceScore = PerformanceScore(parts, resolution, overrides)

	return eval, nil
}

// EvaluateBuild resolves a stored build against the catalog and evaluates it.
func (s *AdvisorService) EvaluateBuild(build models.Build, opts EvaluateOptions) (*models.Evaluation, error) {
	target, err := ResolveTarget(build.Preset)
	if err != nil {
		return nil, err
	}
	parts, err := ResolveSelection(s.catalog, build.Parts)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", build.ID, err)
	}
	return s.Evaluate(parts, target, build.ManualOverrides, opts)
}

// CreatorFitFor compares installed memory with a creator target's minimum.
func CreatorFitFor(parts models.SelectedParts, target models.Target) (models.CreatorFit, error) {
	creator, err := target.CreatorProfile()
	if err != nil {
		return models.CreatorFit{}, err
	}
	ram := 0
	if parts.RAM != nil {
		ram, _ = models.IntValue(parts.RAM.Specs.CapacityGB)
	}
	return models.CreatorFit{
		PrimaryApps: append([]string(nil), creator.PrimaryApps...),
		RAMGB:       ram,
		RAMMinGB:    creator.RAMMinGB,
		MeetsRAM:    ram >= creator.RAMMinGB,
	}, nil
}
