//go:build integration

package services

import (
	"context"
	"os"
	"testing"

	"github.com/LovationAdmin/buildadvisor-api/config"
	"github.com/LovationAdmin/buildadvisor-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildService_Postgres(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := config.InitDB(dbURL)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, config.RunMigrations(db))

	ctx := context.Background()
	svc := NewBuildService(db)

	created, err := svc.Create(ctx, "owner-1", models.SaveBuildRequest{
		Name:   "Test rig",
		Preset: "aaa-1440p",
		Parts:  balancedSelection(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Delete(ctx, created.ID, "owner-1") })

	got, err := svc.GetByID(ctx, created.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, created.Parts, got.Parts)

	_, err = svc.GetByID(ctx, created.ID, "someone-else")
	assert.ErrorIs(t, err, ErrBuildNotFound)

	updated, err := svc.Update(ctx, created.ID, "owner-1", models.SaveBuildRequest{
		Name:   "Renamed",
		Preset: "ultra-4k",
		Parts:  lowHeadroomSelection(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	list, err := svc.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.NotEmpty(t, list)

	require.NoError(t, svc.Delete(ctx, created.ID, "owner-1"))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID, "owner-1"), ErrBuildNotFound)
}
