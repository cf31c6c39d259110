package handlers

import (
	"context"
	"net/http"

	"github.com/LovationAdmin/buildadvisor-api/config"
	"github.com/LovationAdmin/buildadvisor-api/middleware"
	"github.com/LovationAdmin/buildadvisor-api/models"
	"github.com/LovationAdmin/buildadvisor-api/services"
	"github.com/LovationAdmin/buildadvisor-api/utils"

	"github.com/gin-gonic/gin"
)

// BuildStore is the persistence the build endpoints need.
type BuildStore interface {
	Create(ctx context.Context, ownerID string, req models.SaveBuildRequest) (*models.Build, error)
	GetByID(ctx context.Context, id, ownerID string) (*models.Build, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Build, error)
	ListAll(ctx context.Context) ([]models.Build, error)
	Update(ctx context.Context, id, ownerID string, req models.SaveBuildRequest) (*models.Build, error)
	Delete(ctx context.Context, id, ownerID string) error
}

// Broadcaster notifies live clients that a build changed.
type Broadcaster interface {
	BroadcastUpdate(buildID, updateType, userID string)
}

type BuildHandler struct {
	Store   BuildStore
	Advisor *services.AdvisorService
	WS      Broadcaster
}

func NewBuildHandler(store BuildStore, advisor *services.AdvisorService, ws Broadcaster) *BuildHandler {
	return &BuildHandler{Store: store, Advisor: advisor, WS: ws}
}

// validate rejects unknown presets and part ids before anything is stored.
func (h *BuildHandler) validate(req models.SaveBuildRequest) error {
	if _, err := services.ResolveTarget(req.Preset); err != nil {
		return err
	}
	_, err := services.ResolveSelection(h.Advisor.Catalog(), req.Parts)
	return err
}

// List returns the caller's builds.
func (h *BuildHandler) List(c *gin.Context) {
	builds, err := h.Store.ListByOwner(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, builds)
}

// Create stores a new build for the caller.
func (h *BuildHandler) Create(c *gin.Context) {
	var req models.SaveBuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validate(req); err != nil {
		respondError(c, err)
		return
	}

	build, err := h.Store.Create(c.Request.Context(), middleware.GetUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, build)
}

// Get returns one of the caller's builds.
func (h *BuildHandler) Get(c *gin.Context) {
	build, err := h.Store.GetByID(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, build)
}

// Update replaces a build and pings everyone watching it.
func (h *BuildHandler) Update(c *gin.Context) {
	var req models.SaveBuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validate(req); err != nil {
		respondError(c, err)
		return
	}

	userID := middleware.GetUserID(c)
	build, err := h.Store.Update(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.WS != nil {
		h.WS.BroadcastUpdate(build.ID, "build_updated", userID)
	}
	c.JSON(http.StatusOK, build)
}

// Delete removes one of the caller's builds.
func (h *BuildHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")
	if err := h.Store.Delete(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}
	if h.WS != nil {
		h.WS.BroadcastUpdate(id, "build_deleted", userID)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Build deleted"})
}

// Evaluate scores a stored build. ?region= and ?max_budget= are optional.
func (h *BuildHandler) Evaluate(c *gin.Context) {
	build, err := h.Store.GetByID(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	var query struct {
		Region    string   `form:"region"`
		MaxBudget *float64 `form:"max_budget"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := services.EvaluateOptions{MaxBudget: query.MaxBudget}
	if query.Region != "" {
		region, err := config.LookupRegion(query.Region)
		if err != nil {
			respondError(c, err)
			return
		}
		opts.Region = &region
	}

	eval, err := h.Advisor.EvaluateBuild(*build, opts)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.LogEvaluation("build", string(eval.Verdict.Verdict), len(eval.Issues), len(eval.Upgrades))
	c.JSON(http.StatusOK, gin.H{"build": build, "evaluation": eval})
}
