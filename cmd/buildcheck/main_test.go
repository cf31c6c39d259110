package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LovationAdmin/buildadvisor-api/models"
	"github.com/LovationAdmin/buildadvisor-api/utils"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const socketMismatchBuild = `
name: Mixed platform
preset: aaa-1440p
parts:
  cpu: cpu-r5-7600
  gpu: gpu-rtx4060
  motherboard: mb-z790
  ram: ram-ddr5-32
  storage: [ssd-sn770-1tb]
  psu: psu-650
  cooler: cool-ak400
  case: case-4000d
`

const creatorBuild = `
name: Edit bay
target:
  kind: creator
  creator:
    primary_apps: [DaVinci Resolve]
    ram_min_gb: 64
parts:
  cpu: cpu-r9-7950x
  motherboard: mb-x670e
  ram: ram-ddr5-32
  psu: psu-850
`

func writeBuild(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "build.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEvaluateJSON(t *testing.T) {
	out, err := run(t, "evaluate", "--build", writeBuild(t, socketMismatchBuild), "--format", "json", "--region", "US")
	require.NoError(t, err)

	var eval models.Evaluation
	require.NoError(t, json.Unmarshal([]byte(out), &eval), out)
	assert.Equal(t, models.VerdictIncompatible, eval.Verdict.Verdict)
	require.Len(t, eval.Issues, 1)
	assert.Equal(t, models.IssueSocketMismatch, eval.Issues[0].ID)
	assert.Len(t, eval.Alternatives, 1)
}

func TestEvaluateYAMLKeysMatchJSON(t *testing.T) {
	out, err := run(t, "evaluate", "--build", writeBuild(t, socketMismatchBuild), "--format", "yaml", "--region", "US")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc), out)
	assert.Contains(t, doc, "performance_score")
	assert.Contains(t, doc, "total_price_usd")

	verdict, ok := doc["verdict"].(map[string]interface{})
	require.True(t, ok, out)
	assert.Contains(t, verdict, "checks_count")

	issues, ok := doc["issues"].([]interface{})
	require.True(t, ok, out)
	require.Len(t, issues, 1)
	issue := issues[0].(map[string]interface{})
	assert.Contains(t, issue, "affected_parts")
	assert.Contains(t, issue, "suggested_fixes")

	var eval models.Evaluation
	require.NoError(t, yaml.Unmarshal([]byte(out), &eval))
	assert.Equal(t, []string{"cpu-r5-7600", "mb-z790"}, eval.Issues[0].AffectedParts)
	assert.NotContains(t, out, "affectedparts")
	assert.NotContains(t, out, "scoredelta")
}

func TestEvaluateHuman(t *testing.T) {
	color.NoColor = true
	out, err := run(t, "evaluate", "--build", writeBuild(t, creatorBuild), "--format", "human", "--region", "EU")
	require.NoError(t, err)

	assert.Contains(t, out, "Edit bay")
	assert.Contains(t, out, "VERDICT: COMPATIBLE")
	assert.Contains(t, out, "below minimum")
	assert.Contains(t, out, "POWER (EU, 230V)")
	assert.NotContains(t, out, "ESTIMATED FPS")
}

func TestEvaluateErrors(t *testing.T) {
	_, err := run(t, "evaluate", "--build", writeBuild(t, "name: x\nparts: {cpu: cpu-r5-7600}\n"), "--format", "json", "--region", "US")
	assert.ErrorContains(t, err, "preset or a target")

	_, err = run(t, "evaluate", "--build", writeBuild(t, socketMismatchBuild), "--format", "xml", "--region", "US")
	assert.ErrorContains(t, err, "unknown format")

	_, err = run(t, "evaluate", "--build", writeBuild(t, socketMismatchBuild), "--format", "json", "--region", "mars")
	assert.Error(t, err)
}

func TestCatalogCommand(t *testing.T) {
	out, err := run(t, "catalog", "--category", "psu")
	require.NoError(t, err)
	assert.Contains(t, out, "psu-850")
	assert.NotContains(t, out, "gpu-rtx4090")

	_, err = run(t, "catalog", "--category", "monitor")
	assert.Error(t, err)
}

func TestPresetsCommand(t *testing.T) {
	out, err := run(t, "presets")
	require.NoError(t, err)
	assert.Equal(t, 7, strings.Count(out, "\n"), out)
	assert.Contains(t, out, "creator-video")
}

func TestTokenCommand(t *testing.T) {
	out, err := run(t, "token", "--user", "cli-user", "--secret", "cli-secret")
	require.NoError(t, err)

	userID, err := utils.ParseAccessToken("cli-secret", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "cli-user", userID)
}
