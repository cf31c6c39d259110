package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/LovationAdmin/buildadvisor-api/config"
	"github.com/LovationAdmin/buildadvisor-api/models"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// displayEvaluation writes eval in the requested format.
func displayEvaluation(w io.Writer, title string, eval *models.Evaluation, region config.Region, format string) error {
	switch format {
	case "json":
		return displayJSON(w, eval)
	case "yaml":
		return displayYAML(w, eval)
	case "human", "":
		displayHuman(w, title, eval, region)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want human, json or yaml)", format)
	}
}

func displayJSON(w io.Writer, eval *models.Evaluation) error {
	output, err := json.MarshalIndent(eval, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(output))
	return nil
}

func displayYAML(w io.Writer, eval *models.Evaluation) error {
	output, err := yaml.Marshal(eval)
	if err != nil {
		return err
	}
	fmt.Fprint(w, string(output))
	return nil
}

func displayHuman(w io.Writer, title string, eval *models.Evaluation, region config.Region) {
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Fprintln(w)
	white.Fprintf(w, "🖥️  %s\n", title)
	fmt.Fprintf(w, "   Total: $%.2f   Performance score: %d/100\n\n", eval.TotalPriceUSD, eval.PerformanceScore)

	verdictColor := green
	switch eval.Verdict.Verdict {
	case models.VerdictIncompatible:
		verdictColor = red
	case models.VerdictWarnings:
		verdictColor = yellow
	}
	verdictColor.Fprintf(w, "VERDICT: %s", strings.ToUpper(string(eval.Verdict.Verdict)))
	fmt.Fprintf(w, " (confidence %d%%, %d checks)\n\n", eval.Verdict.Confidence, eval.Verdict.ChecksCount)

	if len(eval.Issues) > 0 {
		white.Fprintln(w, "⚠️  ISSUES:")
		for _, issue := range eval.Issues {
			c := yellow
			if issue.Severity == models.SeverityCritical {
				c = red
			}
			c.Fprintf(w, "   [%s] ", issue.Severity)
			fmt.Fprintf(w, "%s (%s)\n", issue.Title, strings.Join(issue.AffectedParts, ", "))
			for _, fix := range issue.SuggestedFixes {
				fmt.Fprintf(w, "      → %s\n", fix)
			}
		}
		fmt.Fprintln(w)
	}

	if eval.FPS != nil {
		cyan.Fprintln(w, "🎮 ESTIMATED FPS:")
		genres := []struct {
			name string
			est  models.FPSEstimate
		}{
			{"AAA", eval.FPS.AAA},
			{"Esports", eval.FPS.Esports},
			{"Indie", eval.FPS.Indie},
			{"Simulation", eval.FPS.Simulation},
		}
		for _, g := range genres {
			fmt.Fprintf(w, "   %-11s %4d fps (%d–%d) %s, %s confidence\n",
				g.name, g.est.Likely, g.est.Min, g.est.Max, g.est.SettingsQuality, g.est.Confidence)
		}
		fmt.Fprintln(w)
	}

	if eval.CreatorFit != nil {
		cyan.Fprintln(w, "🎬 CREATOR FIT:")
		fit := eval.CreatorFit
		status := green.Sprint("meets minimum")
		if !fit.MeetsRAM {
			status = red.Sprint("below minimum")
		}
		fmt.Fprintf(w, "   RAM %d GB of %d GB: %s\n", fit.RAMGB, fit.RAMMinGB, status)
		if len(fit.PrimaryApps) > 0 {
			fmt.Fprintf(w, "   Apps: %s\n", strings.Join(fit.PrimaryApps, ", "))
		}
		fmt.Fprintln(w)
	}

	cyan.Fprintf(w, "🔌 POWER (%s, %dV):\n", region.Key, region.Voltage)
	fmt.Fprintf(w, "   Load %d W, wall draw %d W, about %.2f per year\n", eval.Power.SystemLoadW, eval.Power.WallDrawW, eval.Power.YearlyCost)
	if eval.Power.HeadroomPct != nil {
		fmt.Fprintf(w, "   PSU headroom %.0f%%\n", *eval.Power.HeadroomPct)
	}
	fmt.Fprintln(w)

	if len(eval.Upgrades) > 0 {
		green.Fprintln(w, "⬆️  UPGRADES:")
		for _, u := range eval.Upgrades {
			fmt.Fprintf(w, "   %s: %s → %s (%+d pts, %+.2f)\n", u.Category.Label(), u.CurrentPartName, u.SuggestedPart.Name, u.ScoreDelta, u.PriceDelta)
			fmt.Fprintf(w, "      %s\n", u.Reason)
		}
		fmt.Fprintln(w)
	}

	if len(eval.Alternatives) > 0 {
		green.Fprintln(w, "🔁 ALTERNATIVES:")
		for _, alt := range eval.Alternatives {
			fmt.Fprintf(w, "   %s (%s, %+.2f)\n", alt.Label, alt.ScoreImpact, alt.PriceDelta)
			for _, s := range alt.Swaps {
				fmt.Fprintf(w, "      %s: %s → %s\n", s.Category.Label(), s.From, s.To)
			}
		}
		fmt.Fprintln(w)
	}
}
