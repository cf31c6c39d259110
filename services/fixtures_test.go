package services

import (
	"testing"

	"github.com/LovationAdmin/buildadvisor-api/models"

	"github.com/stretchr/testify/require"
)

func defaultCatalog(t *testing.T) *models.Catalog {
	t.Helper()
	c, err := LoadCatalog("")
	require.NoError(t, err)
	return c
}

// selectParts resolves ids against the built-in catalog.
func selectParts(t *testing.T, c *models.Catalog, sel models.PartSelection) models.SelectedParts {
	t.Helper()
	parts, err := ResolveSelection(c, sel)
	require.NoError(t, err)
	return parts
}

func part(id string, category models.Category, price float64, specs models.Specs) *models.Part {
	return &models.Part{ID: id, Name: id, Category: category, PriceUSD: price, Specs: specs}
}

// balancedSelection is a build that raises no issue.
func balancedSelection() models.PartSelection {
	return models.PartSelection{
		CPU:         "cpu-r5-7600",
		GPU:         "gpu-rtx4060",
		Motherboard: "mb-b650",
		RAM:         "ram-ddr5-32",
		Storage:     []string{"ssd-sn770-1tb"},
		PSU:         "psu-650",
		Cooler:      "cool-ak400",
		Case:        "case-4000d",
	}
}

// applySwaps replays alternative swaps on a selection.
func applySwaps(t *testing.T, c *models.Catalog, parts models.SelectedParts, swaps []models.Swap) models.SelectedParts {
	t.Helper()
	for _, s := range swaps {
		next, ok := c.Find(s.Category, s.ToPartID)
		require.True(t, ok, "swap target %s missing from catalog", s.ToPartID)
		parts = parts.Replace(s.Category, s.FromPartID, next)
	}
	return parts
}

func issueIDs(issues []models.Issue) []models.IssueID {
	ids := []models.IssueID{}
	for _, i := range issues {
		ids = append(ids, i.ID)
	}
	return ids
}

func gamingTarget(resolution string, minGPU, minCPU int) models.Target {
	return models.Target{
		Kind: models.TargetGaming,
		Gaming: &models.GamingTarget{
			Resolution:  resolution,
			RefreshRate: 144,
			MinGPUTier:  minGPU,
			MinCPUTier:  minCPU,
		},
	}
}

func creatorTarget(ramMin int) models.Target {
	return models.Target{
		Kind:    models.TargetCreator,
		Creator: &models.CreatorTarget{PrimaryApps: []string{"Blender"}, RAMMinGB: ramMin},
	}
}
