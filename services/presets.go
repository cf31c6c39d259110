package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/LovationAdmin/buildadvisor-api/models"
)

var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named usage profile offered to users.
type Preset struct {
	Key         string        `json:"key"`
	Description string        `json:"description"`
	Target      models.Target `json:"target"`
}

func gamingPreset(key, desc, resolution string, refresh, minGPU, minCPU int) Preset {
	return Preset{
		Key:         key,
		Description: desc,
		Target: models.Target{
			Kind: models.TargetGaming,
			Gaming: &models.GamingTarget{
				Resolution:  resolution,
				RefreshRate: refresh,
				MinGPUTier:  minGPU,
				MinCPUTier:  minCPU,
			},
		},
	}
}

func creatorPreset(key, desc string, ramMin int, apps ...string) Preset {
	return Preset{
		Key:         key,
		Description: desc,
		Target: models.Target{
			Kind:    models.TargetCreator,
			Creator: &models.CreatorTarget{PrimaryApps: apps, RAMMinGB: ramMin},
		},
	}
}

var presets = map[string]Preset{
	"budget-1080p":  gamingPreset("budget-1080p", "Entry level 1080p gaming at 60 Hz", res1080p, 60, 3, 3),
	"esports-1080p": gamingPreset("esports-1080p", "Competitive shooters at 1080p and high refresh", res1080p, 240, 5, 6),
	"aaa-1440p":     gamingPreset("aaa-1440p", "Modern AAA titles at 1440p", res1440p, 144, 7, 6),
	"ultra-4k":      gamingPreset("ultra-4k", "4K with ultra settings", res4K, 120, 9, 7),
	"creator-video": creatorPreset("creator-video", "Video editing and colour grading", 32, "Premiere Pro", "DaVinci Resolve"),
	"creator-3d":    creatorPreset("creator-3d", "3D modelling and rendering", 64, "Blender", "Cinema 4D"),
}

// ResolveTarget maps a preset key to its target.
func ResolveTarget(preset string) (models.Target, error) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(preset))]
	if !ok {
		return models.Target{}, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
	return p.Target, nil
}

// ListPresets returns every preset sorted by key.
func ListPresets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
