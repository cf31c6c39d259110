package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/LovationAdmin/buildadvisor-api/config"
	"github.com/LovationAdmin/buildadvisor-api/models"
	"github.com/LovationAdmin/buildadvisor-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memoryStore is a BuildStore backed by a map.
type memoryStore struct {
	mu     sync.Mutex
	builds map[string]models.Build
}

func newMemoryStore() *memoryStore {
	return &memoryStore{builds: map[string]models.Build{}}
}

func (s *memoryStore) Create(_ context.Context, ownerID string, req models.SaveBuildRequest) (*models.Build, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	b := models.Build{
		ID: uuid.New().String(), OwnerID: ownerID, Name: req.Name, Preset: req.Preset,
		Parts: req.Parts, ManualOverrides: req.ManualOverrides, CreatedAt: now, UpdatedAt: now,
	}
	s.builds[b.ID] = b
	return &b, nil
}

func (s *memoryStore) GetByID(_ context.Context, id, ownerID string) (*models.Build, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.builds[id]
	if !ok || (ownerID != "" && b.OwnerID != ownerID) {
		return nil, services.ErrBuildNotFound
	}
	return &b, nil
}

func (s *memoryStore) ListByOwner(_ context.Context, ownerID string) ([]models.Build, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Build{}
	for _, b := range s.builds {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *memoryStore) ListAll(_ context.Context) ([]models.Build, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Build{}
	for _, b := range s.builds {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memoryStore) Update(_ context.Context, id, ownerID string, req models.SaveBuildRequest) (*models.Build, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.builds[id]
	if !ok || b.OwnerID != ownerID {
		return nil, services.ErrBuildNotFound
	}
	b.Name, b.Preset, b.Parts, b.ManualOverrides = req.Name, req.Preset, req.Parts, req.ManualOverrides
	b.UpdatedAt = time.Now().UTC()
	s.builds[id] = b
	return &b, nil
}

func (s *memoryStore) Delete(_ context.Context, id, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.builds[id]
	if !ok || b.OwnerID != ownerID {
		return services.ErrBuildNotFound
	}
	delete(s.builds, id)
	return nil
}

type broadcast struct {
	buildID, updateType, userID string
}

type recordingBroadcaster struct {
	mu   sync.Mutex
	sent []broadcast
}

func (r *recordingBroadcaster) BroadcastUpdate(buildID, updateType, userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, broadcast{buildID, updateType, userID})
}

func newAdvisor(t *testing.T) *services.AdvisorService {
	t.Helper()
	catalog, err := services.LoadCatalog("")
	require.NoError(t, err)
	region, err := config.LookupRegion("US")
	require.NoError(t, err)
	return services.NewAdvisorService(catalog, region)
}

func balancedParts() models.PartSelection {
	return models.PartSelection{
		CPU:         "cpu-r5-7600",
		GPU:         "gpu-rtx4060",
		Motherboard: "mb-b650",
		RAM:         "ram-ddr5-32",
		Storage:     []string{"ssd-sn770-1tb"},
		PSU:         "psu-650",
		Cooler:      "cool-ak400",
		Case:        "case-4000d",
	}
}

// withUser stands in for the auth middleware.
func withUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}
