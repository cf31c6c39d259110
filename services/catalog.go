package services

import (
	"errors"
	"fmt"
	"os"

	"github.com/LovationAdmin/buildadvisor-api/data"
	"github.com/LovationAdmin/buildadvisor-api/models"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrUnknownPart    = errors.New("unknown part")
)

// LoadCatalog reads a YAML catalog from path, or the embedded default
// catalog when path is empty.
func LoadCatalog(path string) (*models.Catalog, error) {
	raw := data.CatalogYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		raw = b
	}
	return ParseCatalog(raw)
}

// ParseCatalog decodes and validates a catalog document. Each part is stamped
// with its category; empty categories and duplicate ids are rejected.
func ParseCatalog(raw []byte) (*models.Catalog, error) {
	var c models.Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	lists := map[models.Category]*[]models.Part{
		models.CategoryCPU:         &c.CPUs,
		models.CategoryGPU:         &c.GPUs,
		models.CategoryMotherboard: &c.Motherboards,
		models.CategoryRAM:         &c.RAM,
		models.CategoryStorage:     &c.Storage,
		models.CategoryPSU:         &c.PSUs,
		models.CategoryCooler:      &c.Coolers,
		models.CategoryCase:        &c.Cases,
	}
	for _, category := range models.Categories {
		parts := *lists[category]
		if len(parts) == 0 {
			return nil, fmt.Errorf("%w: no %s parts", ErrInvalidCatalog, category)
		}
		seen := make(map[string]bool, len(parts))
		for i := range parts {
			p := &parts[i]
			if p.ID == "" {
				return nil, fmt.Errorf("%w: %s part %d has no id", ErrInvalidCatalog, category, i)
			}
			if seen[p.ID] {
				return nil, fmt.Errorf("%w: duplicate %s id %q", ErrInvalidCatalog, category, p.ID)
			}
			if p.PriceUSD < 0 {
				return nil, fmt.Errorf("%w: %s %q has a negative price", ErrInvalidCatalog, category, p.ID)
			}
			seen[p.ID] = true
			p.Category = category
		}
	}
	return &c, nil
}

// ResolveSelection maps part ids onto catalog parts. Empty ids are skipped;
// unknown ids are an error.
func ResolveSelection(catalog *models.Catalog, sel models.PartSelection) (models.SelectedParts, error) {
	var parts models.SelectedParts

	lookup := func(category models.Category, id string) (*models.Part, error) {
		if id == "" {
			return nil, nil
		}
		p, ok := catalog.Find(category, id)
		if !ok {
			return nil, fmt.Errorf("%w: %s %q", ErrUnknownPart, category, id)
		}
		return &p, nil
	}

	var err error
	if parts.CPU, err = lookup(models.CategoryCPU, sel.CPU); err != nil {
		return parts, err
	}
	if parts.GPU, err = lookup(models.CategoryGPU, sel.GPU); err != nil {
		return parts, err
	}
	if parts.Motherboard, err = lookup(models.CategoryMotherboard, sel.Motherboard); err != nil {
		return parts, err
	}
	if parts.RAM, err = lookup(models.CategoryRAM, sel.RAM); err != nil {
		return parts, err
	}
	if parts.PSU, err = lookup(models.CategoryPSU, sel.PSU); err != nil {
		return parts, err
	}
	if parts.Cooler, err = lookup(models.CategoryCooler, sel.Cooler); err != nil {
		return parts, err
	}
	if parts.Case, err = lookup(models.CategoryCase, sel.Case); err != nil {
		return parts, err
	}
	for _, id := range sel.Storage {
		d, err := lookup(models.CategoryStorage, id)
		if err != nil {
			return parts, err
		}
		if d != nil {
			parts.Storage = append(parts.Storage, *d)
		}
	}
	return parts, nil
}
