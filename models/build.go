package models

import (
	"errors"
	"time"
)

// ============================================================================
// SELECTION
// ============================================================================

// SelectedParts is a (possibly partial) snapshot of the user's choices.
// Storage is ordered; every other category holds at most one part.
type SelectedParts struct {
	CPU         *Part  `json:"cpu,omitempty"`
	GPU         *Part  `json:"gpu,omitempty"`
	Motherboard *Part  `json:"motherboard,omitempty"`
	RAM         *Part  `json:"ram,omitempty"`
	Storage     []Part `json:"storage,omitempty"`
	PSU         *Part  `json:"psu,omitempty"`
	Cooler      *Part  `json:"cooler,omitempty"`
	Case        *Part  `json:"case,omitempty"`
}

// Slot is one populated position of a selection.
type Slot struct {
	Category Category
	Part     Part
}

// IsEmpty reports whether nothing has been chosen yet.
func (s SelectedParts) IsEmpty() bool {
	return len(s.Slots()) == 0
}

// Slots lists populated positions in category display order, storage drives
// in their selection order.
func (s SelectedParts) Slots() []Slot {
	var slots []Slot
	add := func(c Category, p *Part) {
		if p != nil {
			slots = append(slots, Slot{Category: c, Part: *p})
		}
	}
	add(CategoryCPU, s.CPU)
	add(CategoryGPU, s.GPU)
	add(CategoryMotherboard, s.Motherboard)
	add(CategoryRAM, s.RAM)
	for _, d := range s.Storage {
		slots = append(slots, Slot{Category: CategoryStorage, Part: d})
	}
	add(CategoryPSU, s.PSU)
	add(CategoryCooler, s.Cooler)
	add(CategoryCase, s.Case)
	return slots
}

// Replace returns a copy with the part at category swapped for next. For
// storage the drive with currentID is replaced (appended when not found).
func (s SelectedParts) Replace(category Category, currentID string, next Part) SelectedParts {
	out := s
	out.Storage = append([]Part(nil), s.Storage...)
	p := next
	switch category {
	case CategoryCPU:
		out.CPU = &p
	case CategoryGPU:
		out.GPU = &p
	case CategoryMotherboard:
		out.Motherboard = &p
	case CategoryRAM:
		out.RAM = &p
	case CategoryPSU:
		out.PSU = &p
	case CategoryCooler:
		out.Cooler = &p
	case CategoryCase:
		out.Case = &p
	case CategoryStorage:
		for i := range out.Storage {
			if out.Storage[i].ID == currentID {
				out.Storage[i] = next
				return out
			}
		}
		out.Storage = append(out.Storage, next)
	}
	return out
}

// TotalPriceUSD sums the price of every selected part.
func (s SelectedParts) TotalPriceUSD() float64 {
	total := 0.0
	for _, slot := range s.Slots() {
		total += slot.Part.PriceUSD
	}
	return total
}

// PartSelection is the id-only form used on the wire and in storage.
type PartSelection struct {
	CPU         string   `json:"cpu,omitempty" yaml:"cpu,omitempty"`
	GPU         string   `json:"gpu,omitempty" yaml:"gpu,omitempty"`
	Motherboard string   `json:"motherboard,omitempty" yaml:"motherboard,omitempty"`
	RAM         string   `json:"ram,omitempty" yaml:"ram,omitempty"`
	Storage     []string `json:"storage,omitempty" yaml:"storage,omitempty"`
	PSU         string   `json:"psu,omitempty" yaml:"psu,omitempty"`
	Cooler      string   `json:"cooler,omitempty" yaml:"cooler,omitempty"`
	Case        string   `json:"case,omitempty" yaml:"case,omitempty"`
}

// ManualOverrides lets a user assert a tier for a part the catalog rates
// poorly or not at all. Overridden tiers count as estimated inputs.
type ManualOverrides struct {
	CPUTier *int `json:"cpu_tier,omitempty" yaml:"cpu_tier,omitempty"`
	GPUTier *int `json:"gpu_tier,omitempty" yaml:"gpu_tier,omitempty"`
}

// ============================================================================
// TARGETS
// ============================================================================

type TargetKind string

const (
	TargetGaming  TargetKind = "gaming"
	TargetCreator TargetKind = "creator"
)

// ErrTargetShape is returned when a gaming-only computation is asked of a
// creator target (or the reverse).
var ErrTargetShape = errors.New("target shape mismatch")

type GamingTarget struct {
	Resolution  string `json:"resolution" yaml:"resolution"`
	RefreshRate int    `json:"refresh_rate" yaml:"refresh_rate"`
	MinGPUTier  int    `json:"min_gpu_tier" yaml:"min_gpu_tier"`
	MinCPUTier  int    `json:"min_cpu_tier" yaml:"min_cpu_tier"`
}

type CreatorTarget struct {
	PrimaryApps []string `json:"primary_apps" yaml:"primary_apps"`
	RAMMinGB    int      `json:"ram_min_gb" yaml:"ram_min_gb"`
}

// Target is a usage profile. Exactly one of Gaming / Creator matches Kind.
type Target struct {
	Kind    TargetKind     `json:"kind" yaml:"kind"`
	Gaming  *GamingTarget  `json:"gaming,omitempty" yaml:"gaming,omitempty"`
	Creator *CreatorTarget `json:"creator,omitempty" yaml:"creator,omitempty"`
}

// GamingProfile returns the gaming shape or ErrTargetShape.
func (t Target) GamingProfile() (GamingTarget, error) {
	if t.Kind != TargetGaming || t.Gaming == nil {
		return GamingTarget{}, ErrTargetShape
	}
	return *t.Gaming, nil
}

// CreatorProfile returns the creator shape or ErrTargetShape.
func (t Target) CreatorProfile() (CreatorTarget, error) {
	if t.Kind != TargetCreator || t.Creator == nil {
		return CreatorTarget{}, ErrTargetShape
	}
	return *t.Creator, nil
}

// Validate checks that the tag and the populated shape agree.
func (t Target) Validate() error {
	switch t.Kind {
	case TargetGaming:
		if t.Gaming == nil || t.Creator != nil {
			return ErrTargetShape
		}
	case TargetCreator:
		if t.Creator == nil || t.Gaming != nil {
			return ErrTargetShape
		}
	default:
		return ErrTargetShape
	}
	return nil
}

// ============================================================================
// PERSISTED BUILD
// ============================================================================

type Build struct {
	ID              string          `json:"id"`
	OwnerID         string          `json:"owner_id"`
	Name            string          `json:"name"`
	Preset          string          `json:"preset"`
	Parts           PartSelection   `json:"parts"`
	ManualOverrides ManualOverrides `json:"manual_overrides"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type SaveBuildRequest struct {
	Name            string          `json:"name" binding:"required"`
	Preset          string          `json:"preset" binding:"required"`
	Parts           PartSelection   `json:"parts"`
	ManualOverrides ManualOverrides `json:"manual_overrides"`
}
