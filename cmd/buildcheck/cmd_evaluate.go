package main

import (
	"fmt"
	"os"

	"github.com/LovationAdmin/buildadvisor-api/config"
	"github.com/LovationAdmin/buildadvisor-api/models"
	"github.com/LovationAdmin/buildadvisor-api/services"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var evaluateFlags struct {
	buildPath string
	region    string
	format    string
	budget    float64
	rate      float64
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a build file",
	RunE:  runEvaluate,
}

func init() {
	f := evaluateCmd.Flags()
	f.StringVarP(&evaluateFlags.buildPath, "build", "b", "", "Build YAML file (required)")
	f.StringVar(&evaluateFlags.region, "region", config.DefaultRegionKey, "Electricity region ("+fmt.Sprint(config.RegionKeys())+")")
	f.StringVarP(&evaluateFlags.format, "format", "o", "human", "Output format: human, json or yaml")
	f.Float64Var(&evaluateFlags.budget, "budget", 0, "Only suggest upgrades costing at most this much extra")
	f.Float64Var(&evaluateFlags.rate, "rate", 0, "Electricity price per kWh (overrides the region default)")

	_ = evaluateCmd.MarkFlagRequired("build")
}

// buildFile is the on-disk shape of a build. Target, when present, takes
// precedence over Preset.
type buildFile struct {
	Name      string                 `yaml:"name"`
	Preset    string                 `yaml:"preset"`
	Target    *models.Target         `yaml:"target"`
	Parts     models.PartSelection   `yaml:"parts"`
	Overrides models.ManualOverrides `yaml:"overrides"`
}

func loadBuildFile(path string) (*buildFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read build: %w", err)
	}
	var bf buildFile
	if err := yaml.Unmarshal(raw, &bf); err != nil {
		return nil, fmt.Errorf("parse build %s: %w", path, err)
	}
	return &bf, nil
}

func (bf *buildFile) target() (models.Target, error) {
	if bf.Target != nil {
		return *bf.Target, bf.Target.Validate()
	}
	if bf.Preset == "" {
		return models.Target{}, fmt.Errorf("build needs a preset or a target")
	}
	return services.ResolveTarget(bf.Preset)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	catalog, err := services.LoadCatalog(rootFlags.catalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	region, err := config.LookupRegion(evaluateFlags.region)
	if err != nil {
		return err
	}
	region = region.WithRate(evaluateFlags.rate)

	bf, err := loadBuildFile(evaluateFlags.buildPath)
	if err != nil {
		return err
	}
	target, err := bf.target()
	if err != nil {
		return err
	}
	parts, err := services.ResolveSelection(catalog, bf.Parts)
	if err != nil {
		return err
	}

	opts := services.EvaluateOptions{}
	if cmd.Flags().Changed("budget") {
		budget := evaluateFlags.budget
		opts.MaxBudget = &budget
	}

	advisor := services.NewAdvisorService(catalog, region)
	eval, err := advisor.Evaluate(parts, target, bf.Overrides, opts)
	if err != nil {
		return err
	}

	title := bf.Name
	if title == "" {
		title = evaluateFlags.buildPath
	}
	return displayEvaluation(cmd.OutOrStdout(), title, eval, region, evaluateFlags.format)
}
