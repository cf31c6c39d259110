package models

import "strings"

// ============================================================================
// PARTS CATALOG
// ============================================================================

type Category string

const (
	CategoryCPU         Category = "cpu"
	CategoryGPU         Category = "gpu"
	CategoryMotherboard Category = "motherboard"
	CategoryRAM         Category = "ram"
	CategoryStorage     Category = "storage"
	CategoryPSU         Category = "psu"
	CategoryCooler      Category = "cooler"
	CategoryCase        Category = "case"
)

// Categories is the canonical display order.
var Categories = []Category{
	CategoryCPU,
	CategoryGPU,
	CategoryMotherboard,
	CategoryRAM,
	CategoryStorage,
	CategoryPSU,
	CategoryCooler,
	CategoryCase,
}

// ParseCategory accepts any casing ("GPU", "gpu").
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// Part is one catalog component. IDs are unique per category, not globally.
type Part struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Manufacturer string   `json:"manufacturer" yaml:"manufacturer"`
	Category     Category `json:"category" yaml:"-"`
	PriceUSD     float64  `json:"price_usd" yaml:"price_usd"`
	Specs        Specs    `json:"specs" yaml:"specs"`
}

// Specs holds the variant-specific fields. A nil pointer or empty string
// means the catalog did not provide the value.
type Specs struct {
	Socket            string `json:"socket,omitempty" yaml:"socket,omitempty"`
	Tier              *int   `json:"tier,omitempty" yaml:"tier,omitempty"`
	TDPW              *int   `json:"tdp_w,omitempty" yaml:"tdp_w,omitempty"`
	WattageW          *int   `json:"wattage_w,omitempty" yaml:"wattage_w,omitempty"`
	CapacityGB        *int   `json:"capacity_gb,omitempty" yaml:"capacity_gb,omitempty"`
	SpeedMHz          *int   `json:"speed_mhz,omitempty" yaml:"speed_mhz,omitempty"`
	LengthMM          *int   `json:"length_mm,omitempty" yaml:"length_mm,omitempty"`
	HeightMM          *int   `json:"height_mm,omitempty" yaml:"height_mm,omitempty"`
	MemoryType        string `json:"memory_type,omitempty" yaml:"memory_type,omitempty"`
	M2Slots           *int   `json:"m2_slots,omitempty" yaml:"m2_slots,omitempty"`
	SATAPorts         *int   `json:"sata_ports,omitempty" yaml:"sata_ports,omitempty"`
	Interface         string `json:"interface,omitempty" yaml:"interface,omitempty"`
	MaxGPULengthMM    *int   `json:"max_gpu_length_mm,omitempty" yaml:"max_gpu_length_mm,omitempty"`
	MaxCoolerHeightMM *int   `json:"max_cooler_height_mm,omitempty" yaml:"max_cooler_height_mm,omitempty"`
	Efficiency        string `json:"efficiency,omitempty" yaml:"efficiency,omitempty"`
}

// IntPtr is a small helper for fixtures and catalog construction.
func IntPtr(v int) *int {
	return &v
}

// IntValue unwraps an optional spec field.
func IntValue(p *int) (int, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

// IsNVMe reports whether a storage part sits in an M.2 NVMe slot.
func (p Part) IsNVMe() bool {
	return strings.EqualFold(p.Specs.Interface, "nvme")
}

// Catalog is the read-only list of parts per category, loaded once at startup.
type Catalog struct {
	CPUs         []Part `json:"cpus" yaml:"cpus"`
	GPUs         []Part `json:"gpus" yaml:"gpus"`
	Motherboards []Part `json:"motherboards" yaml:"motherboards"`
	RAM          []Part `json:"ram" yaml:"ram"`
	Storage      []Part `json:"storage" yaml:"storage"`
	PSUs         []Part `json:"psus" yaml:"psus"`
	Coolers      []Part `json:"coolers" yaml:"coolers"`
	Cases        []Part `json:"cases" yaml:"cases"`
}

// ByCategory returns the parts of one category. The returned slice must not
// be modified.
func (c *Catalog) ByCategory(category Category) []Part {
	if c == nil {
		return nil
	}
	switch category {
	case CategoryCPU:
		return c.CPUs
	case CategoryGPU:
		return c.GPUs
	case CategoryMotherboard:
		return c.Motherboards
	case CategoryRAM:
		return c.RAM
	case CategoryStorage:
		return c.Storage
	case CategoryPSU:
		return c.PSUs
	case CategoryCooler:
		return c.Coolers
	case CategoryCase:
		return c.Cases
	}
	return nil
}

// Find looks up a part by category and id.
func (c *Catalog) Find(category Category, id string) (Part, bool) {
	for _, p := range c.ByCategory(category) {
		if p.ID == id {
			return p, true
		}
	}
	return Part{}, false
}

var categoryLabels = map[Category]string{
	CategoryCPU:         "CPU",
	CategoryGPU:         "GPU",
	CategoryMotherboard: "Motherboard",
	CategoryRAM:         "RAM",
	CategoryStorage:     "Storage",
	CategoryPSU:         "PSU",
	CategoryCooler:      "Cooler",
	CategoryCase:        "Case",
}

// Label is the display name of a category.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}
