package handlers

import (
	"errors"
	"net/http"

	"github.com/LovationAdmin/buildadvisor-api/config"
	"github.com/LovationAdmin/buildadvisor-api/models"
	"github.com/LovationAdmin/buildadvisor-api/services"
	"github.com/LovationAdmin/buildadvisor-api/utils"

	"github.com/gin-gonic/gin"
)

type AdvisorHandler struct {
	Advisor *services.AdvisorService
}

func NewAdvisorHandler(advisor *services.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{Advisor: advisor}
}

// EvaluateRequest carries an unsaved selection. Exactly one of Preset or
// Target is expected; Target wins when both are sent.
type EvaluateRequest struct {
	Parts     models.PartSelection   `json:"parts"`
	Preset    string                 `json:"preset"`
	Target    *models.Target         `json:"target"`
	Overrides models.ManualOverrides `json:"overrides"`
	Region    string                 `json:"region"`
	MaxBudget *float64               `json:"max_budget"`
}

var errNoTarget = errors.New("preset or target is required")

type evaluationInput struct {
	parts     models.SelectedParts
	target    models.Target
	overrides models.ManualOverrides
	opts      services.EvaluateOptions
}

func (h *AdvisorHandler) bindEvaluation(c *gin.Context) (*evaluationInput, bool) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	var target models.Target
	switch {
	case req.Target != nil:
		if err := req.Target.Validate(); err != nil {
			respondError(c, err)
			return nil, false
		}
		target = *req.Target
	case req.Preset != "":
		t, err := services.ResolveTarget(req.Preset)
		if err != nil {
			respondError(c, err)
			return nil, false
		}
		target = t
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": errNoTarget.Error()})
		return nil, false
	}

	parts, err := services.ResolveSelection(h.Advisor.Catalog(), req.Parts)
	if err != nil {
		respondError(c, err)
		return nil, false
	}

	in := &evaluationInput{
		parts:     parts,
		target:    target,
		overrides: req.Overrides,
		opts:      services.EvaluateOptions{MaxBudget: req.MaxBudget},
	}
	if req.Region != "" {
		region, err := config.LookupRegion(req.Region)
		if err != nil {
			respondError(c, err)
			return nil, false
		}
		in.opts.Region = &region
	}
	return in, true
}

// Evaluate returns issues, verdict, estimates, power and recommendations.
func (h *AdvisorHandler) Evaluate(c *gin.Context) {
	in, ok := h.bindEvaluation(c)
	if !ok {
		return
	}

	eval, err := h.Advisor.Evaluate(in.parts, in.target, in.overrides, in.opts)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.LogEvaluation("api", string(eval.Verdict.Verdict), len(eval.Issues), len(eval.Upgrades))
	c.JSON(http.StatusOK, eval)
}

// Upgrades returns the best swap per part plus the full ranked list inside
// the budget window.
func (h *AdvisorHandler) Upgrades(c *gin.Context) {
	in, ok := h.bindEvaluation(c)
	if !ok {
		return
	}

	issues := services.CheckCompatibility(in.parts)
	ranked := services.FilterByBudget(services.RankUpgrades(in.parts, issues, h.Advisor.Catalog()), in.opts.MaxBudget)

	c.JSON(http.StatusOK, gin.H{
		"upgrades": services.TopPerSlot(ranked),
		"ranked":   ranked,
	})
}

// Alternatives returns up to three swap bundles.
func (h *AdvisorHandler) Alternatives(c *gin.Context) {
	in, ok := h.bindEvaluation(c)
	if !ok {
		return
	}

	issues := services.CheckCompatibility(in.parts)
	c.JSON(http.StatusOK, gin.H{
		"alternatives": services.SuggestAlternatives(in.parts, issues, h.Advisor.Catalog(), in.target),
	})
}

// GetCatalog returns the full catalog.
func (h *AdvisorHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.Advisor.Catalog())
}

// GetCatalogCategory returns the parts of one category.
func (h *AdvisorHandler) GetCatalogCategory(c *gin.Context) {
	category, ok := models.ParseCategory(c.Param("category"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown category"})
		return
	}
	c.JSON(http.StatusOK, h.Advisor.Catalog().ByCategory(category))
}

// GetPresets lists the usage presets and regions.
func (h *AdvisorHandler) GetPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"presets": services.ListPresets(),
		"regions": config.RegionKeys(),
	})
}
