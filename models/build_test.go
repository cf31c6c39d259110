package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectedParts_Slots(t *testing.T) {
	parts := SelectedParts{
		Case:    &Part{ID: "case"},
		CPU:     &Part{ID: "cpu"},
		Storage: []Part{{ID: "d1"}, {ID: "d2"}},
	}
	var got []string
	for _, s := range parts.Slots() {
		got = append(got, string(s.Category)+":"+s.Part.ID)
	}
	assert.Equal(t, []string{"cpu:cpu", "storage:d1", "storage:d2", "case:case"}, got)
	assert.False(t, parts.IsEmpty())
	assert.True(t, SelectedParts{}.IsEmpty())
}

func TestSelectedParts_ReplaceCopies(t *testing.T) {
	orig := SelectedParts{
		GPU:     &Part{ID: "gpu-a", PriceUSD: 300},
		Storage: []Part{{ID: "d1", PriceUSD: 50}, {ID: "d2", PriceUSD: 70}},
	}

	swapped := orig.Replace(CategoryGPU, "gpu-a", Part{ID: "gpu-b", PriceUSD: 500})
	assert.Equal(t, "gpu-a", orig.GPU.ID)
	assert.Equal(t, "gpu-b", swapped.GPU.ID)

	drives := orig.Replace(CategoryStorage, "d2", Part{ID: "d3", PriceUSD: 90})
	assert.Equal(t, "d2", orig.Storage[1].ID)
	assert.Equal(t, []string{"d1", "d3"}, []string{drives.Storage[0].ID, drives.Storage[1].ID})

	added := orig.Replace(CategoryStorage, "", Part{ID: "d4"})
	assert.Len(t, added.Storage, 3)
	assert.Len(t, orig.Storage, 2)

	assert.Equal(t, 420.0, orig.TotalPriceUSD())
	assert.Equal(t, 620.0, swapped.TotalPriceUSD())
}

func TestTarget_Validate(t *testing.T) {
	gaming := Target{Kind: TargetGaming, Gaming: &GamingTarget{Resolution: "1440p"}}
	creator := Target{Kind: TargetCreator, Creator: &CreatorTarget{RAMMinGB: 32}}

	assert.NoError(t, gaming.Validate())
	assert.NoError(t, creator.Validate())
	assert.ErrorIs(t, Target{Kind: TargetGaming}.Validate(), ErrTargetShape)
	assert.ErrorIs(t, Target{Kind: "office", Gaming: gaming.Gaming}.Validate(), ErrTargetShape)
	assert.ErrorIs(t, Target{Kind: TargetCreator, Creator: creator.Creator, Gaming: gaming.Gaming}.Validate(), ErrTargetShape)

	_, err := creator.GamingProfile()
	assert.ErrorIs(t, err, ErrTargetShape)
	_, err = gaming.CreatorProfile()
	assert.ErrorIs(t, err, ErrTargetShape)
}

func TestCatalog_Lookup(t *testing.T) {
	c := &Catalog{GPUs: []Part{{ID: "g1"}}}
	p, ok := c.Find(CategoryGPU, "g1")
	assert.True(t, ok)
	assert.Equal(t, "g1", p.ID)

	_, ok = c.Find(CategoryCPU, "g1")
	assert.False(t, ok)

	var nilCatalog *Catalog
	assert.Nil(t, nilCatalog.ByCategory(CategoryGPU))

	cat, ok := ParseCategory(" GPU ")
	assert.True(t, ok)
	assert.Equal(t, CategoryGPU, cat)
	assert.Equal(t, "Motherboard", CategoryMotherboard.Label())
}
