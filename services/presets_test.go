package services

import (
	"errors"
	"sort"
	"testing"

	"github.com/LovationAdmin/buildadvisor-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTarget(t *testing.T) {
	target, err := ResolveTarget(" AAA-1440p ")
	require.NoError(t, err)
	gaming, err := target.GamingProfile()
	require.NoError(t, err)
	assert.Equal(t, "1440p", gaming.Resolution)
	assert.Equal(t, 7, gaming.MinGPUTier)

	creator, err := ResolveTarget("creator-3d")
	require.NoError(t, err)
	assert.Equal(t, models.TargetCreator, creator.Kind)
	assert.Equal(t, 64, creator.Creator.RAMMinGB)

	_, err = ResolveTarget("office")
	assert.True(t, errors.Is(err, ErrUnknownPreset))
}

func TestListPresets(t *testing.T) {
	list := ListPresets()
	require.Len(t, list, 6)
	assert.True(t, sort.SliceIsSorted(list, func(i, j int) bool { return list[i].Key < list[j].Key }))
	for _, p := range list {
		assert.NoError(t, p.Target.Validate(), p.Key)
		assert.NotEmpty(t, p.Description, p.Key)
	}
}
