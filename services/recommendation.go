package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/LovationAdmin/buildadvisor-api/models"
)

// ============================================================================
// UPGRADE SUGGESTIONS
// One tier is worth tierScoreUnit points on the 0–100 performance scale.
// ============================================================================

const tierScoreUnit = 10

// tierDelta is the score difference between two parts, or 0 when either tier
// is unknown.
func tierDelta(from, to models.Part) (int, bool) {
	a, ok1 := models.IntValue(from.Specs.Tier)
	b, ok2 := models.IntValue(to.Specs.Tier)
	if !ok1 || !ok2 {
		return 0, false
	}
	return (b - a) * tierScoreUnit, true
}

// valuePerDollar is the ranking key: score per dollar spent, where savings
// and tiny spends count as one dollar.
func valuePerDollar(scoreDelta int, priceDelta float64) float64 {
	return float64(scoreDelta) / math.Max(priceDelta, 1)
}

// RankUpgrades returns every eligible single-part swap, best value first. No
// budget is applied: callers pick their own window from the full list.
func RankUpgrades(parts models.SelectedParts, issues []models.Issue, catalog *models.Catalog) []models.UpgradeSuggestion {
	out := []models.UpgradeSuggestion{}
	if parts.IsEmpty() || catalog == nil {
		return out
	}
	for _, slot := range parts.Slots() {
		out = append(out, rankSlot(parts, slot, issues, catalog)...)
	}
	sortSuggestions(out)
	return out
}

// SuggestUpgrades keeps the best suggestion per selected part, optionally
// limited to swaps costing at most maxBudget extra.
func SuggestUpgrades(parts models.SelectedParts, issues []models.Issue, catalog *models.Catalog, maxBudget *float64) []models.UpgradeSuggestion {
	ranked := RankUpgrades(parts, issues, catalog)
	return TopPerSlot(FilterByBudget(ranked, maxBudget))
}

// FilterByBudget drops suggestions whose extra cost exceeds maxBudget. A nil
// budget keeps everything.
func FilterByBudget(suggestions []models.UpgradeSuggestion, maxBudget *float64) []models.UpgradeSuggestion {
	if maxBudget == nil {
		return suggestions
	}
	out := []models.UpgradeSuggestion{}
	for _, s := range suggestions {
		if s.PriceDelta <= *maxBudget {
			out = append(out, s)
		}
	}
	return out
}

// TopPerSlot keeps the first (best ranked) suggestion for each selected part.
func TopPerSlot(ranked []models.UpgradeSuggestion) []models.UpgradeSuggestion {
	out := []models.UpgradeSuggestion{}
	seen := make(map[string]bool)
	for _, s := range ranked {
		key := string(s.Category) + "/" + s.CurrentPartID
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func rankSlot(parts models.SelectedParts, slot models.Slot, issues []models.Issue, catalog *models.Catalog) []models.UpgradeSuggestion {
	var targeted []models.Issue
	powerDriven := false
	for _, issue := range issues {
		if targetsSlot(issue, slot) {
			targeted = append(targeted, issue)
			powerDriven = powerDriven || isPowerIssue(issue.ID)
		}
	}

	current := slot.Part
	var out []models.UpgradeSuggestion
	for _, cand := range catalog.ByCategory(slot.Category) {
		if cand.ID == current.ID {
			continue
		}
		cand.Category = slot.Category

		delta, tiersKnown := tierDelta(current, cand)
		if delta < 0 {
			continue
		}
		priceDelta := cand.PriceUSD - current.PriceUSD

		next := parts.Replace(slot.Category, current.ID, cand)
		if !keepsCoverage(parts, next) {
			continue
		}
		after := CheckCompatibility(next)
		if introducesCritical(issues, after) {
			continue
		}

		var reason string
		if len(targeted) > 0 {
			if !clearsAll(targeted, after) {
				continue
			}
			if powerDriven && !higherWattage(current, cand) {
				continue
			}
			reason = fmt.Sprintf("Resolves: %s", targeted[0].Title)
			if delta > 0 {
				reason += fmt.Sprintf(" (+%d performance points)", delta)
			}
		} else {
			switch {
			case delta > 0:
				reason = fmt.Sprintf("+%d performance points over %s", delta, current.Name)
			case tiersKnown && priceDelta < 0:
				reason = "Cost optimization: same performance tier for less"
			default:
				continue
			}
		}

		out = append(out, models.UpgradeSuggestion{
			Category:        slot.Category,
			CurrentPartID:   current.ID,
			CurrentPartName: current.Name,
			SuggestedPart:   cand,
			ScoreDelta:      delta,
			PriceDelta:      priceDelta,
			Reason:          reason,
			ResolvesIssues:  clearedIssues(issues, after),
		})
	}
	return out
}

func sortSuggestions(s []models.UpgradeSuggestion) {
	sort.SliceStable(s, func(i, j int) bool {
		vi, vj := valuePerDollar(s[i].ScoreDelta, s[i].PriceDelta), valuePerDollar(s[j].ScoreDelta, s[j].PriceDelta)
		if vi != vj {
			return vi > vj
		}
		if s[i].ScoreDelta != s[j].ScoreDelta {
			return s[i].ScoreDelta > s[j].ScoreDelta
		}
		if s[i].PriceDelta != s[j].PriceDelta {
			return s[i].PriceDelta < s[j].PriceDelta
		}
		if s[i].Category != s[j].Category {
			return categoryIndex(s[i].Category) < categoryIndex(s[j].Category)
		}
		return s[i].SuggestedPart.ID < s[j].SuggestedPart.ID
	})
}

func categoryIndex(c models.Category) int {
	for i, known := range models.Categories {
		if known == c {
			return i
		}
	}
	return len(models.Categories)
}

// introducesCritical reports whether after holds a critical issue whose id
// was not already present before.
func introducesCritical(before, after []models.Issue) bool {
	for _, issue := range after {
		if issue.Severity == models.SeverityCritical && !hasIssue(before, issue.ID) {
			return true
		}
	}
	return false
}

func clearsAll(targeted, after []models.Issue) bool {
	for _, issue := range targeted {
		if hasIssue(after, issue.ID) {
			return false
		}
	}
	return true
}

func clearedIssues(before, after []models.Issue) []models.IssueID {
	var ids []models.IssueID
	for _, issue := range before {
		if !hasIssue(after, issue.ID) {
			ids = append(ids, issue.ID)
		}
	}
	return ids
}

func higherWattage(current, cand models.Part) bool {
	a, ok1 := models.IntValue(current.Specs.WattageW)
	b, ok2 := models.IntValue(cand.Specs.WattageW)
	return ok1 && ok2 && b > a
}
