package handlers

import (
	"net/http"
	"sync"

	"github.com/LovationAdmin/buildadvisor-api/models"
	"github.com/LovationAdmin/buildadvisor-api/services"
	"github.com/LovationAdmin/buildadvisor-api/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const rescoreWorkers = 8

type AdminHandler struct {
	Store   BuildStore
	Advisor *services.AdvisorService
}

func NewAdminHandler(store BuildStore, advisor *services.AdvisorService) *AdminHandler {
	return &AdminHandler{Store: store, Advisor: advisor}
}

// RescoreStats summarises a rescore run.
type RescoreStats struct {
	Processed int                        `json:"processed"`
	Failed    int                        `json:"failed"`
	Verdicts  map[models.VerdictKind]int `json:"verdicts"`
	Failures  []string                   `json:"failures,omitempty"`
}

// Rescore evaluates every stored build against the current catalog. Builds
// that no longer resolve (removed parts, renamed presets) count as failures.
func (h *AdminHandler) Rescore(c *gin.Context) {
	builds, err := h.Store.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	stats := h.rescore(c, builds)
	utils.SafeInfo("🔁 Rescored %d builds (%d failed)", stats.Processed, stats.Failed)
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) rescore(c *gin.Context, builds []models.Build) RescoreStats {
	stats := RescoreStats{Verdicts: map[models.VerdictKind]int{}}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.SetLimit(rescoreWorkers)
	for _, build := range builds {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			eval, err := h.Advisor.EvaluateBuild(build, services.EvaluateOptions{})

			mu.Lock()
			defer mu.Unlock()
			stats.Processed++
			if err != nil {
				stats.Failed++
				stats.Failures = append(stats.Failures, build.ID)
				return nil
			}
			stats.Verdicts[eval.Verdict.Verdict]++
			return nil
		})
	}
	_ = g.Wait()
	return stats
}
