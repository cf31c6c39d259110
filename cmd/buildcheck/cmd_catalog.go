package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/LovationAdmin/buildadvisor-api/models"
	"github.com/LovationAdmin/buildadvisor-api/services"

	"github.com/spf13/cobra"
)

var catalogFlags struct {
	category string
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List catalog parts",
	RunE:  runCatalog,
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List usage presets",
	RunE:  runPresets,
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogFlags.category, "category", "c", "", "Only list one category (cpu, gpu, ...)")
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	catalog, err := services.LoadCatalog(rootFlags.catalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	categories := models.Categories
	if catalogFlags.category != "" {
		c, ok := models.ParseCategory(catalogFlags.category)
		if !ok {
			return fmt.Errorf("unknown category %q", catalogFlags.category)
		}
		categories = []models.Category{c}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tID\tNAME\tTIER\tPRICE")
	for _, c := range categories {
		for _, p := range catalog.ByCategory(c) {
			tier := "-"
			if t, ok := models.IntValue(p.Specs.Tier); ok {
				tier = fmt.Sprint(t)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%.2f\n", c, p.ID, p.Name, tier, p.PriceUSD)
		}
	}
	return w.Flush()
}

func runPresets(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tKIND\tDESCRIPTION")
	for _, p := range services.ListPresets() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Key, p.Target.Kind, p.Description)
	}
	return w.Flush()
}
