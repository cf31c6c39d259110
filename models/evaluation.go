package models

// ============================================================================
// COMPATIBILITY
// ============================================================================

type IssueID string

const (
	IssueSocketMismatch    IssueID = "socketMismatch"
	IssueRAMTypeMismatch   IssueID = "ramTypeMismatch"
	IssueGPUTooLong        IssueID = "gpuTooLong"
	IssueCoolerTooTall     IssueID = "coolerTooTall"
	IssueInsufficientPower IssueID = "insufficientPower"
	IssueLowPSUHeadroom    IssueID = "lowPsuHeadroom"
	IssueNoM2Slots         IssueID = "noM2Slots"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

type Issue struct {
	ID             IssueID  `json:"id" yaml:"id"`
	Title          string   `json:"title" yaml:"title"`
	Severity       Severity `json:"severity" yaml:"severity"`
	AffectedParts  []string `json:"affected_parts" yaml:"affected_parts"`
	SuggestedFixes []string `json:"suggested_fixes" yaml:"suggested_fixes"`
}

// Affects reports whether the issue names partID.
func (i Issue) Affects(partID string) bool {
	for _, id := range i.AffectedParts {
		if id == partID {
			return true
		}
	}
	return false
}

type VerdictKind string

const (
	VerdictCompatible   VerdictKind = "compatible"
	VerdictWarnings     VerdictKind = "warnings"
	VerdictIncompatible VerdictKind = "incompatible"
)

type Verdict struct {
	Verdict     VerdictKind `json:"verdict" yaml:"verdict"`
	Confidence  int         `json:"confidence" yaml:"confidence"`
	ChecksCount int         `json:"checks_count" yaml:"checks_count"`
}

// ============================================================================
// PERFORMANCE & POWER
// ============================================================================

type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

type FPSEstimate struct {
	Min             int        `json:"min" yaml:"min"`
	Likely          int        `json:"likely" yaml:"likely"`
	Max             int        `json:"max" yaml:"max"`
	Confidence      Confidence `json:"confidence" yaml:"confidence"`
	SettingsQuality string     `json:"settings_quality" yaml:"settings_quality"`
	Caveats         []string   `json:"caveats" yaml:"caveats"`
}

type GenreEstimates struct {
	AAA        FPSEstimate `json:"aaa" yaml:"aaa"`
	Esports    FPSEstimate `json:"esports" yaml:"esports"`
	Indie      FPSEstimate `json:"indie" yaml:"indie"`
	Simulation FPSEstimate `json:"simulation" yaml:"simulation"`
}

type TCO struct {
	WallDrawW  int     `json:"wall_draw_w" yaml:"wall_draw_w"`
	YearlyCost float64 `json:"yearly_cost" yaml:"yearly_cost"`
}

type PowerReport struct {
	SystemLoadW int      `json:"system_load_w" yaml:"system_load_w"`
	WallDrawW   int      `json:"wall_draw_w" yaml:"wall_draw_w"`
	YearlyCost  float64  `json:"yearly_cost" yaml:"yearly_cost"`
	HeadroomPct *float64 `json:"headroom_pct,omitempty" yaml:"headroom_pct,omitempty"`
}

// ============================================================================
// RECOMMENDATIONS
// ============================================================================

type UpgradeSuggestion struct {
	Category        Category  `json:"category" yaml:"category"`
	CurrentPartID   string    `json:"current_part_id,omitempty" yaml:"current_part_id,omitempty"`
	CurrentPartName string    `json:"current_part_name,omitempty" yaml:"current_part_name,omitempty"`
	SuggestedPart   Part      `json:"suggested_part" yaml:"suggested_part"`
	ScoreDelta      int       `json:"score_delta" yaml:"score_delta"`
	PriceDelta      float64   `json:"price_delta" yaml:"price_delta"`
	Reason          string    `json:"reason" yaml:"reason"`
	ResolvesIssues  []IssueID `json:"resolves_issues,omitempty" yaml:"resolves_issues,omitempty"`
}

type Swap struct {
	Category   Category `json:"category" yaml:"category"`
	From       string   `json:"from" yaml:"from"`
	To         string   `json:"to" yaml:"to"`
	FromPartID string   `json:"from_part_id" yaml:"from_part_id"`
	ToPartID   string   `json:"to_part_id" yaml:"to_part_id"`
}

type AlternativeBuild struct {
	Label       string  `json:"label" yaml:"label"`
	Swaps       []Swap  `json:"swaps" yaml:"swaps"`
	ScoreImpact string  `json:"score_impact" yaml:"score_impact"`
	ScoreDelta  int     `json:"score_delta" yaml:"score_delta"`
	PriceDelta  float64 `json:"price_delta" yaml:"price_delta"`
}

// ============================================================================
// EVALUATION
// ============================================================================

type CreatorFit struct {
	PrimaryApps []string `json:"primary_apps" yaml:"primary_apps"`
	RAMGB       int      `json:"ram_gb" yaml:"ram_gb"`
	RAMMinGB    int      `json:"ram_min_gb" yaml:"ram_min_gb"`
	MeetsRAM    bool     `json:"meets_ram" yaml:"meets_ram"`
}

// Evaluation is everything the advisor derives from one selection.
type Evaluation struct {
	Issues           []Issue             `json:"issues" yaml:"issues"`
	Verdict          Verdict             `json:"verdict" yaml:"verdict"`
	FPS              *GenreEstimates     `json:"fps,omitempty" yaml:"fps,omitempty"`
	CreatorFit       *CreatorFit         `json:"creator_fit,omitempty" yaml:"creator_fit,omitempty"`
	Power            PowerReport         `json:"power" yaml:"power"`
	PerformanceScore int                 `json:"performance_score" yaml:"performance_score"`
	TotalPriceUSD    float64             `json:"total_price_usd" yaml:"total_price_usd"`
	Upgrades         []UpgradeSuggestion `json:"upgrades" yaml:"upgrades"`
	Alternatives     []AlternativeBuild  `json:"alternatives" yaml:"alternatives"`
}
