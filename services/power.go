package services

import (
	"math"

	"github.com/LovationAdmin/buildadvisor-api/config"
	"github.com/LovationAdmin/buildadvisor-api/models"
)

const defaultHoursPerDay = 4

// CalculateTCO converts a DC load into wall draw and a yearly running cost.
// hoursPerDay <= 0 means the default daily usage.
func CalculateTCO(systemLoadW int, efficiencyMultiplier, ratePerKwh, hoursPerDay float64) models.TCO {
	if hoursPerDay <= 0 {
		hoursPerDay = defaultHoursPerDay
	}
	wall := int(math.Round(float64(systemLoadW) * efficiencyMultiplier))
	return models.TCO{
		WallDrawW:  wall,
		YearlyCost: float64(wall) / 1000 * hoursPerDay * 365 * ratePerKwh,
	}
}

// PowerReport combines load, running cost and PSU headroom for a selection.
func PowerReport(parts models.SelectedParts, region config.Region) models.PowerReport {
	load := EstimatedSystemLoadW(parts)
	tco := CalculateTCO(load, region.EfficiencyMultiplier, region.DefaultRatePerKwh, region.HoursPerDay)

	report := models.PowerReport{
		SystemLoadW: load,
		WallDrawW:   tco.WallDrawW,
		YearlyCost:  tco.YearlyCost,
	}
	if parts.PSU != nil && load > 0 {
		if wattage, ok := models.IntValue(parts.PSU.Specs.WattageW); ok {
			headroom := float64(wattage-load) / float64(load) * 100
			report.HeadroomPct = &headroom
		}
	}
	return report
}
