package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/LovationAdmin/buildadvisor-api/models"
)

// ============================================================================
// ALTERNATIVE BUILDS
// Bundles of one or two coordinated swaps.
// ============================================================================

const (
	maxAlternatives   = 3
	pairCandidatesCap = 5
)

type swapChoice struct {
	slot models.Slot
	to   models.Part
}

type bundle struct {
	label      string
	swaps      []swapChoice
	scoreDelta int
	priceDelta float64
	result     models.SelectedParts
}

func newBundle(parts models.SelectedParts, swaps ...swapChoice) bundle {
	b := bundle{swaps: swaps, result: parts}
	for _, s := range swaps {
		delta, _ := tierDelta(s.slot.Part, s.to)
		b.scoreDelta += delta
		b.priceDelta += s.to.PriceUSD - s.slot.Part.PriceUSD
		b.result = b.result.Replace(s.slot.Category, s.slot.Part.ID, s.to)
	}
	return b
}

func (b bundle) key() string {
	ids := make([]string, 0, len(b.swaps))
	for _, s := range b.swaps {
		ids = append(ids, string(s.slot.Category)+":"+s.slot.Part.ID+">"+s.to.ID)
	}
	sort.Strings(ids)
	return strings.Join(ids, "|")
}

// betterValue orders bundles when choosing one per issue or per slot.
func betterValue(a, b bundle) bool {
	va, vb := valuePerDollar(a.scoreDelta, a.priceDelta), valuePerDollar(b.scoreDelta, b.priceDelta)
	if va != vb {
		return va > vb
	}
	if a.scoreDelta != b.scoreDelta {
		return a.scoreDelta > b.scoreDelta
	}
	if a.priceDelta != b.priceDelta {
		return a.priceDelta < b.priceDelta
	}
	return a.key() < b.key()
}

// SuggestAlternatives proposes at most three swap bundles. With issues, each
// bundle resolves one issue; without, each bundle is a meaningful upgrade
// made compatible by an optional second swap.
func SuggestAlternatives(parts models.SelectedParts, issues []models.Issue, catalog *models.Catalog, target models.Target) []models.AlternativeBuild {
	out := []models.AlternativeBuild{}
	if parts.IsEmpty() || catalog == nil {
		return out
	}

	var bundles []bundle
	if len(issues) > 0 {
		for _, issue := range issues {
			if b, ok := bundleForIssue(parts, issue, issues, catalog); ok {
				bundles = append(bundles, b)
			}
		}
	} else {
		for _, slot := range parts.Slots() {
			if b, ok := upgradeBundle(parts, slot, catalog); ok {
				bundles = append(bundles, b)
			}
		}
	}

	bundles = dedupeBundles(bundles)
	sort.SliceStable(bundles, func(i, j int) bool {
		if bundles[i].scoreDelta != bundles[j].scoreDelta {
			return bundles[i].scoreDelta > bundles[j].scoreDelta
		}
		if bundles[i].priceDelta != bundles[j].priceDelta {
			return bundles[i].priceDelta < bundles[j].priceDelta
		}
		return bundles[i].label < bundles[j].label
	})
	if len(bundles) > maxAlternatives {
		bundles = bundles[:maxAlternatives]
	}

	reference := referenceTarget(target)
	before := estimateGaming(parts, reference, models.ManualOverrides{}).AAA.Likely
	for _, b := range bundles {
		after := estimateGaming(b.result, reference, models.ManualOverrides{}).AAA.Likely
		out = append(out, models.AlternativeBuild{
			Label:       b.label,
			Swaps:       toSwaps(b.swaps),
			ScoreImpact: formatImpact(before, after),
			ScoreDelta:  b.scoreDelta,
			PriceDelta:  b.priceDelta,
		})
	}
	return out
}

// bundleForIssue finds the best single swap that clears the issue, falling
// back to a pair across the issue's fix targets.
func bundleForIssue(parts models.SelectedParts, issue models.Issue, issues []models.Issue, catalog *models.Catalog) (bundle, bool) {
	var slots []models.Slot
	for _, slot := range parts.Slots() {
		if targetsSlot(issue, slot) {
			slots = append(slots, slot)
		}
	}

	resolves := func(b bundle) bool {
		if !keepsCoverage(parts, b.result) {
			return false
		}
		after := CheckCompatibility(b.result)
		return !hasIssue(after, issue.ID) && !introducesCritical(issues, after)
	}

	var best bundle
	found := false
	consider := func(b bundle) {
		if resolves(b) && (!found || betterValue(b, best)) {
			best, found = b, true
		}
	}

	for _, slot := range slots {
		for _, cand := range alternativesFor(slot, catalog, false) {
			consider(newBundle(parts, swapChoice{slot: slot, to: cand}))
		}
	}
	if !found {
		for i := 0; i < len(slots); i++ {
			for j := i + 1; j < len(slots); j++ {
				for _, a := range capCandidates(alternativesFor(slots[i], catalog, false)) {
					for _, b := range capCandidates(alternativesFor(slots[j], catalog, false)) {
						consider(newBundle(parts,
							swapChoice{slot: slots[i], to: a},
							swapChoice{slot: slots[j], to: b},
						))
					}
				}
			}
		}
	}
	if !found {
		return bundle{}, false
	}
	best.label = "Fix: " + issue.Title
	return best, true
}

// upgradeBundle picks the best-value tier upgrade for one slot. When the
// upgrade would raise new issues a second swap must clear all of them.
func upgradeBundle(parts models.SelectedParts, slot models.Slot, catalog *models.Catalog) (bundle, bool) {
	var best bundle
	found := false

	for _, cand := range capCandidates(alternativesFor(slot, catalog, true)) {
		first := swapChoice{slot: slot, to: cand}
		single := newBundle(parts, first)
		if !keepsCoverage(parts, single.result) {
			continue
		}
		after := CheckCompatibility(single.result)
		if len(after) == 0 {
			if !found || betterValue(single, best) {
				best, found = single, true
			}
			continue
		}

		for _, other := range single.result.Slots() {
			if other.Category == slot.Category && other.Part.ID == cand.ID {
				continue
			}
			if !anyTargets(after, other) {
				continue
			}
			for _, fix := range alternativesFor(other, catalog, false) {
				pair := newBundle(parts, first, swapChoice{slot: other, to: fix})
				if !keepsCoverage(parts, pair.result) || len(CheckCompatibility(pair.result)) != 0 {
					continue
				}
				if !found || betterValue(pair, best) {
					best, found = pair, true
				}
			}
		}
	}
	if !found {
		return bundle{}, false
	}

	names := make([]string, 0, len(best.swaps))
	for _, s := range best.swaps {
		names = append(names, s.slot.Category.Label())
	}
	best.label = "Upgrade " + strings.Join(names, " + ")
	return best, true
}

// alternativesFor lists same-category parts other than the current one,
// best value first. strict keeps only tier upgrades; otherwise any part is
// a candidate (fixes may trade tier for fit).
func alternativesFor(slot models.Slot, catalog *models.Catalog, strict bool) []models.Part {
	type ranked struct {
		part  models.Part
		delta int
		price float64
	}
	var rs []ranked
	for _, cand := range catalog.ByCategory(slot.Category) {
		if cand.ID == slot.Part.ID {
			continue
		}
		cand.Category = slot.Category
		delta, known := tierDelta(slot.Part, cand)
		if strict && (!known || delta <= 0) {
			continue
		}
		rs = append(rs, ranked{part: cand, delta: delta, price: cand.PriceUSD - slot.Part.PriceUSD})
	}
	sort.SliceStable(rs, func(i, j int) bool {
		vi, vj := valuePerDollar(rs[i].delta, rs[i].price), valuePerDollar(rs[j].delta, rs[j].price)
		if vi != vj {
			return vi > vj
		}
		if rs[i].delta != rs[j].delta {
			return rs[i].delta > rs[j].delta
		}
		if rs[i].price != rs[j].price {
			return rs[i].price < rs[j].price
		}
		return rs[i].part.ID < rs[j].part.ID
	})
	out := make([]models.Part, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.part)
	}
	return out
}

func capCandidates(parts []models.Part) []models.Part {
	if len(parts) > pairCandidatesCap {
		return parts[:pairCandidatesCap]
	}
	return parts
}

func anyTargets(issues []models.Issue, slot models.Slot) bool {
	for _, issue := range issues {
		if targetsSlot(issue, slot) {
			return true
		}
	}
	return false
}

func dedupeBundles(bundles []bundle) []bundle {
	seen := make(map[string]bool)
	var out []bundle
	for _, b := range bundles {
		k := b.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, b)
	}
	return out
}

func toSwaps(choices []swapChoice) []models.Swap {
	swaps := make([]models.Swap, 0, len(choices))
	for _, c := range choices {
		swaps = append(swaps, models.Swap{
			Category:   c.slot.Category,
			From:       c.slot.Part.Name,
			To:         c.to.Name,
			FromPartID: c.slot.Part.ID,
			ToPartID:   c.to.ID,
		})
	}
	return swaps
}

// referenceTarget is the gaming profile AAA impact is measured against.
func referenceTarget(target models.Target) models.GamingTarget {
	if g, err := target.GamingProfile(); err == nil {
		return g
	}
	return DefaultGamingTarget
}

func formatImpact(before, after int) string {
	if before <= 0 {
		return "+0% performance"
	}
	pct := int(math.Round(float64(after-before) / float64(before) * 100))
	return fmt.Sprintf("%+d%% performance", pct)
}
