package services

import (
	"fmt"
	"math"

	"github.com/LovationAdmin/buildadvisor-api/models"
)

// ============================================================================
// SYSTEM LOAD
// Shared by the compatibility rules and the power model.
// ============================================================================

const (
	baselineLoadW    = 50  // motherboard + RAM + storage + fans
	loadSafetyFactor = 1.1 // real-world draw above rated TDP
	minPSUHeadroom   = 1.25
)

// EstimatedSystemLoadW estimates sustained draw in watts. Missing TDPs count
// as zero; an empty selection draws nothing.
func EstimatedSystemLoadW(parts models.SelectedParts) int {
	if parts.IsEmpty() {
		return 0
	}
	total := baselineLoadW
	if parts.CPU != nil {
		if tdp, ok := models.IntValue(parts.CPU.Specs.TDPW); ok {
			total += tdp
		}
	}
	if parts.GPU != nil {
		if tdp, ok := models.IntValue(parts.GPU.Specs.TDPW); ok {
			total += tdp
		}
	}
	return int(math.Round(float64(total) * loadSafetyFactor))
}

// ============================================================================
// RULE TABLE
// ============================================================================

// compatibilityRule pairs a predicate with its issue metadata. evaluate
// returns the implicated part ids and whether the rule fired; it must return
// false when a needed part or spec field is missing. decidable reports
// whether every part and field evaluate reads is present.
type compatibilityRule struct {
	id        models.IssueID
	title     string
	severity  models.Severity
	decidable func(p models.SelectedParts) bool
	evaluate  func(p models.SelectedParts) ([]string, bool)
	fixes     func(p models.SelectedParts) []string
}

func specSet(v *int) bool { return v != nil }

var compatibilityRules = []compatibilityRule{
	{
		id:        models.IssueSocketMismatch,
		title:     "CPU socket does not match motherboard",
		severity:  models.SeverityCritical,
		decidable: func(p models.SelectedParts) bool {
			return p.CPU != nil && p.Motherboard != nil &&
				p.CPU.Specs.Socket != "" && p.Motherboard.Specs.Socket != ""
		},
		evaluate: func(p models.SelectedParts) ([]string, bool) {
			if p.CPU == nil || p.Motherboard == nil {
				return nil, false
			}
			cpu, board := p.CPU.Specs.Socket, p.Motherboard.Specs.Socket
			if cpu == "" || board == "" || cpu == board {
				return nil, false
			}
			return []string{p.CPU.ID, p.Motherboard.ID}, true
		},
		fixes: func(p models.SelectedParts) []string {
			return []string{
				fmt.Sprintf("Choose a motherboard with the %s socket", p.CPU.Specs.Socket),
				fmt.Sprintf("Choose a CPU for the %s socket", p.Motherboard.Specs.Socket),
			}
		},
	},
	{
		id:        models.IssueRAMTypeMismatch,
		title:     "Memory type not supported by motherboard",
		severity:  models.SeverityCritical,
		decidable: func(p models.SelectedParts) bool {
			return p.RAM != nil && p.Motherboard != nil &&
				p.RAM.Specs.MemoryType != "" && p.Motherboard.Specs.MemoryType != ""
		},
		evaluate: func(p models.SelectedParts) ([]string, bool) {
			if p.RAM == nil || p.Motherboard == nil {
				return nil, false
			}
			ram, board := p.RAM.Specs.MemoryType, p.Motherboard.Specs.MemoryType
			if ram == "" || board == "" || ram == board {
				return nil, false
			}
			return []string{p.RAM.ID, p.Motherboard.ID}, true
		},
		fixes: func(p models.SelectedParts) []string {
			return []string{
				fmt.Sprintf("Choose %s memory", p.Motherboard.Specs.MemoryType),
				fmt.Sprintf("Choose a motherboard that supports %s", p.RAM.Specs.MemoryType),
			}
		},
	},
	{
		id:        models.IssueGPUTooLong,
		title:     "Graphics card is too long for the case",
		severity:  models.SeverityCritical,
		decidable: func(p models.SelectedParts) bool {
			return p.GPU != nil && p.Case != nil &&
				specSet(p.GPU.Specs.LengthMM) && specSet(p.Case.Specs.MaxGPULengthMM)
		},
		evaluate: func(p models.SelectedParts) ([]string, bool) {
			if p.GPU == nil || p.Case == nil {
				return nil, false
			}
			length, ok1 := models.IntValue(p.GPU.Specs.LengthMM)
			limit, ok2 := models.IntValue(p.Case.Specs.MaxGPULengthMM)
			if !ok1 || !ok2 || length <= limit {
				return nil, false
			}
			return []string{p.GPU.ID, p.Case.ID}, true
		},
		fixes: func(p models.SelectedParts) []string {
			return []string{
				fmt.Sprintf("Choose a case that fits a %dmm card", *p.GPU.Specs.LengthMM),
				fmt.Sprintf("Choose a graphics card no longer than %dmm", *p.Case.Specs.MaxGPULengthMM),
			}
		},
	},
	{
		id:        models.IssueCoolerTooTall,
		title:     "CPU cooler is too tall for the case",
		severity:  models.SeverityCritical,
		decidable: func(p models.SelectedParts) bool {
			return p.Cooler != nil && p.Case != nil &&
				specSet(p.Cooler.Specs.HeightMM) && specSet(p.Case.Specs.MaxCoolerHeightMM)
		},
		evaluate: func(p models.SelectedParts) ([]string, bool) {
			if p.Cooler == nil || p.Case == nil {
				return nil, false
			}
			height, ok1 := models.IntValue(p.Cooler.Specs.HeightMM)
			limit, ok2 := models.IntValue(p.Case.Specs.MaxCoolerHeightMM)
			if !ok1 || !ok2 || height <= limit {
				return nil, false
			}
			return []string{p.Cooler.ID, p.Case.ID}, true
		},
		fixes: func(p models.SelectedParts) []string {
			return []string{
				fmt.Sprintf("Choose a cooler no taller than %dmm", *p.Case.Specs.MaxCoolerHeightMM),
				"Choose a wider case or an AIO liquid cooler",
			}
		},
	},
	{
		id:        models.IssueInsufficientPower,
		title:     "Power supply cannot carry the estimated load",
		severity:  models.SeverityCritical,
		decidable: psuDecidable,
		evaluate:  func(p models.SelectedParts) ([]string, bool) {
			if p.PSU == nil {
				return nil, false
			}
			wattage, ok := models.IntValue(p.PSU.Specs.WattageW)
			if !ok || EstimatedSystemLoadW(p) <= wattage {
				return nil, false
			}
			return powerAffected(p), true
		},
		fixes: func(p models.SelectedParts) []string {
			return []string{
				fmt.Sprintf("Choose a power supply of at least %dW", recommendedPSUWattage(p)),
			}
		},
	},
	{
		id:        models.IssueLowPSUHeadroom,
		title:     "Power supply headroom below 25%",
		severity:  models.SeverityWarning,
		decidable: psuDecidable,
		evaluate:  func(p models.SelectedParts) ([]string, bool) {
			if p.PSU == nil {
				return nil, false
			}
			wattage, ok := models.IntValue(p.PSU.Specs.WattageW)
			if !ok {
				return nil, false
			}
			load := EstimatedSystemLoadW(p)
			if load > wattage || float64(wattage) >= float64(load)*minPSUHeadroom {
				return nil, false
			}
			return powerAffected(p), true
		},
		fixes: func(p models.SelectedParts) []string {
			return []string{
				fmt.Sprintf("Choose a power supply of at least %dW for comfortable headroom", recommendedPSUWattage(p)),
			}
		},
	},
	{
		id:        models.IssueNoM2Slots,
		title:     "Not enough M.2 slots for the NVMe drives",
		severity:  models.SeverityWarning,
		decidable: func(p models.SelectedParts) bool {
			if p.Motherboard == nil || !specSet(p.Motherboard.Specs.M2Slots) {
				return false
			}
			for _, d := range p.Storage {
				if d.Specs.Interface == "" {
					return false
				}
			}
			return true
		},
		evaluate: func(p models.SelectedParts) ([]string, bool) {
			if p.Motherboard == nil {
				return nil, false
			}
			slots, ok := models.IntValue(p.Motherboard.Specs.M2Slots)
			if !ok {
				return nil, false
			}
			affected := []string{p.Motherboard.ID}
			for _, d := range p.Storage {
				if d.IsNVMe() {
					affected = append(affected, d.ID)
				}
			}
			if len(affected)-1 <= slots {
				return nil, false
			}
			return affected, true
		},
		fixes: func(p models.SelectedParts) []string {
			return []string{
				fmt.Sprintf("Keep at most %d NVMe drives", *p.Motherboard.Specs.M2Slots),
				"Replace an NVMe drive with a SATA drive",
				"Choose a motherboard with more M.2 slots",
			}
		},
	},
}

// ChecksCount is the number of rules evaluated on every call.
const ChecksCount = 7

// CheckCompatibility runs every rule in table order.
func CheckCompatibility(parts models.SelectedParts) []models.Issue {
	issues := []models.Issue{}
	for _, rule := range compatibilityRules {
		affected, fired := rule.evaluate(parts)
		if !fired {
			continue
		}
		issues = append(issues, models.Issue{
			ID:             rule.id,
			Title:          rule.title,
			Severity:       rule.severity,
			AffectedParts:  affected,
			SuggestedFixes: rule.fixes(parts),
		})
	}
	return issues
}

func psuDecidable(p models.SelectedParts) bool {
	return p.PSU != nil && specSet(p.PSU.Specs.WattageW)
}

// keepsCoverage reports whether every rule decidable on before is still
// decidable on after. A rule going silent on a missing field is not a fix.
func keepsCoverage(before, after models.SelectedParts) bool {
	for _, rule := range compatibilityRules {
		if rule.decidable(before) && !rule.decidable(after) {
			return false
		}
	}
	return true
}

func powerAffected(p models.SelectedParts) []string {
	ids := []string{p.PSU.ID}
	if p.CPU != nil {
		ids = append(ids, p.CPU.ID)
	}
	if p.GPU != nil {
		ids = append(ids, p.GPU.ID)
	}
	return ids
}

// recommendedPSUWattage rounds the headroom target up to the next 50W.
func recommendedPSUWattage(p models.SelectedParts) int {
	want := float64(EstimatedSystemLoadW(p)) * minPSUHeadroom
	return int(math.Ceil(want/50) * 50)
}

func hasIssue(issues []models.Issue, id models.IssueID) bool {
	for _, i := range issues {
		if i.ID == id {
			return true
		}
	}
	return false
}

// issueFixTargets lists the categories whose swap can clear an issue. Power
// issues name the CPU and GPU for traceability but only a PSU swap is a fix.
var issueFixTargets = map[models.IssueID][]models.Category{
	models.IssueSocketMismatch:    {models.CategoryCPU, models.CategoryMotherboard},
	models.IssueRAMTypeMismatch:   {models.CategoryRAM, models.CategoryMotherboard},
	models.IssueGPUTooLong:        {models.CategoryGPU, models.CategoryCase},
	models.IssueCoolerTooTall:     {models.CategoryCooler, models.CategoryCase},
	models.IssueInsufficientPower: {models.CategoryPSU},
	models.IssueLowPSUHeadroom:    {models.CategoryPSU},
	models.IssueNoM2Slots:         {models.CategoryMotherboard, models.CategoryStorage},
}

// targetsSlot reports whether swapping the part in slot is expected to fix
// the issue.
func targetsSlot(issue models.Issue, slot models.Slot) bool {
	if !issue.Affects(slot.Part.ID) {
		return false
	}
	for _, c := range issueFixTargets[issue.ID] {
		if c == slot.Category {
			return true
		}
	}
	return false
}

func isPowerIssue(id models.IssueID) bool {
	return id == models.IssueInsufficientPower || id == models.IssueLowPSUHeadroom
}
