package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/LovationAdmin/buildadvisor-api/models"
	"github.com/LovationAdmin/buildadvisor-api/utils"

	"github.com/google/uuid"
)

var ErrBuildNotFound = errors.New("build not found")

type BuildService struct {
	db *sql.DB
}

func NewBuildService(db *sql.DB) *BuildService {
	return &BuildService{db: db}
}

// Create stores a new build owned by ownerID.
func (s *BuildService) Create(ctx context.Context, ownerID string, req models.SaveBuildRequest) (*models.Build, error) {
	now := time.Now().UTC()
	build := &models.Build{
		ID:              uuid.New().String(),
		OwnerID:         ownerID,
		Name:            req.Name,
		Preset:          req.Preset,
		Parts:           req.Parts,
		ManualOverrides: req.ManualOverrides,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	partsJSON, overridesJSON, err := marshalBuildPayload(build)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO builds (id, owner_id, name, preset, parts, manual_overrides, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := s.db.ExecContext(ctx, query,
		build.ID, build.OwnerID, build.Name, build.Preset,
		partsJSON, overridesJSON, build.CreatedAt, build.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert build: %w", err)
	}

	utils.LogBuildAction("Created", build.ID, ownerID)
	return build, nil
}

// GetByID returns a build if ownerID owns it. An empty ownerID skips the
// ownership check (admin and websocket paths).
func (s *BuildService) GetByID(ctx context.Context, id, ownerID string) (*models.Build, error) {
	if !validBuildID(id) {
		return nil, ErrBuildNotFound
	}
	query := `
		SELECT id, owner_id, name, preset, parts, manual_overrides, created_at, updated_at
		FROM builds
		WHERE id = $1 AND ($2 = '' OR owner_id = $2)
	`
	build, err := scanBuild(s.db.QueryRowContext(ctx, query, id, ownerID))
	if err == sql.ErrNoRows {
		return nil, ErrBuildNotFound
	}
	if err != nil {
		return nil, err
	}
	return build, nil
}

// ListByOwner returns the owner's builds, most recently updated first.
func (s *BuildService) ListByOwner(ctx context.Context, ownerID string) ([]models.Build, error) {
	query := `
		SELECT id, owner_id, name, preset, parts, manual_overrides, created_at, updated_at
		FROM builds
		WHERE owner_id = $1
		ORDER BY updated_at DESC
	`
	return s.list(ctx, query, ownerID)
}

// ListAll returns every stored build (admin rescoring).
func (s *BuildService) ListAll(ctx context.Context) ([]models.Build, error) {
	query := `
		SELECT id, owner_id, name, preset, parts, manual_overrides, created_at, updated_at
		FROM builds
		ORDER BY created_at
	`
	return s.list(ctx, query)
}

func (s *BuildService) list(ctx context.Context, query string, args ...interface{}) ([]models.Build, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	builds := []models.Build{}
	for rows.Next() {
		build, err := scanBuild(rows)
		if err != nil {
			return nil, err
		}
		builds = append(builds, *build)
	}
	return builds, rows.Err()
}

// Update replaces name, preset, parts and overrides of an owned build.
func (s *BuildService) Update(ctx context.Context, id, ownerID string, req models.SaveBuildRequest) (*models.Build, error) {
	if !validBuildID(id) {
		return nil, ErrBuildNotFound
	}
	var updated *models.Build

	err := utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		current, err := scanBuild(tx.QueryRowContext(ctx, `
			SELECT id, owner_id, name, preset, parts, manual_overrides, created_at, updated_at
			FROM builds
			WHERE id = $1 AND owner_id = $2
			FOR UPDATE
		`, id, ownerID))
		if err == sql.ErrNoRows {
			return ErrBuildNotFound
		}
		if err != nil {
			return err
		}

		current.Name = req.Name
		current.Preset = req.Preset
		current.Parts = req.Parts
		current.ManualOverrides = req.ManualOverrides
		current.UpdatedAt = time.Now().UTC()

		partsJSON, overridesJSON, err := marshalBuildPayload(current)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE builds
			SET name = $1, preset = $2, parts = $3, manual_overrides = $4, updated_at = $5
			WHERE id = $6
		`, current.Name, current.Preset, partsJSON, overridesJSON, current.UpdatedAt, id); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.LogBuildAction("Updated", id, ownerID)
	return updated, nil
}

// Delete removes an owned build.
func (s *BuildService) Delete(ctx context.Context, id, ownerID string) error {
	if !validBuildID(id) {
		return ErrBuildNotFound
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM builds WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBuildNotFound
	}
	utils.LogBuildAction("Deleted", id, ownerID)
	return nil
}

// validBuildID keeps malformed ids away from the UUID column.
func validBuildID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBuild(row rowScanner) (*models.Build, error) {
	var build models.Build
	var partsJSON, overridesJSON []byte
	if err := row.Scan(
		&build.ID,
		&build.OwnerID,
		&build.Name,
		&build.Preset,
		&partsJSON,
		&overridesJSON,
		&build.CreatedAt,
		&build.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(partsJSON) > 0 {
		if err := json.Unmarshal(partsJSON, &build.Parts); err != nil {
			return nil, fmt.Errorf("decode parts of build %s: %w", build.ID, err)
		}
	}
	if len(overridesJSON) > 0 {
		if err := json.Unmarshal(overridesJSON, &build.ManualOverrides); err != nil {
			return nil, fmt.Errorf("decode overrides of build %s: %w", build.ID, err)
		}
	}
	return &build, nil
}

func marshalBuildPayload(build *models.Build) ([]byte, []byte, error) {
	partsJSON, err := json.Marshal(build.Parts)
	if err != nil {
		return nil, nil, err
	}
	overridesJSON, err := json.Marshal(build.ManualOverrides)
	if err != nil {
		return nil, nil, err
	}
	return partsJSON, overridesJSON, nil
}
