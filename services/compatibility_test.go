package services

import (
	"testing"

	"github.com/LovationAdmin/buildadvisor-api/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleTableSize(t *testing.T) {
	assert.Len(t, compatibilityRules, ChecksCount)
}

func TestEstimatedSystemLoadW(t *testing.T) {
	tests := []struct {
		name  string
		parts models.SelectedParts
		want  int
	}{
		{name: "empty", parts: models.SelectedParts{}, want: 0},
		{
			name: "cpu and gpu",
			parts: models.SelectedParts{
				CPU: part("cpu", models.CategoryCPU, 0, models.Specs{TDPW: models.IntPtr(125)}),
				GPU: part("gpu", models.CategoryGPU, 0, models.Specs{TDPW: models.IntPtr(320)}),
			},
			want: 545,
		},
		{
			name:  "baseline only",
			parts: models.SelectedParts{Case: part("case", models.CategoryCase, 0, models.Specs{})},
			want:  55,
		},
		{
			name: "missing tdp counts as zero",
			parts: models.SelectedParts{
				CPU: part("cpu", models.CategoryCPU, 0, models.Specs{}),
				GPU: part("gpu", models.CategoryGPU, 0, models.Specs{TDPW: models.IntPtr(200)}),
			},
			want: 275,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimatedSystemLoadW(tt.parts))
		})
	}
}

func TestCheckCompatibility_Empty(t *testing.T) {
	issues := CheckCompatibility(models.SelectedParts{})
	require.NotNil(t, issues)
	assert.Empty(t, issues)
}

func TestCheckCompatibility_SocketMismatch(t *testing.T) {
	parts := models.SelectedParts{
		CPU:         part("cpu-am5", models.CategoryCPU, 300, models.Specs{Socket: "AM5"}),
		Motherboard: part("mb-lga", models.CategoryMotherboard, 200, models.Specs{Socket: "LGA1700"}),
	}

	issues := CheckCompatibility(parts)
	require.Len(t, issues, 1)
	assert.Equal(t, models.IssueSocketMismatch, issues[0].ID)
	assert.Equal(t, models.SeverityCritical, issues[0].Severity)
	assert.Equal(t, []string{"cpu-am5", "mb-lga"}, issues[0].AffectedParts)
	assert.NotEmpty(t, issues[0].SuggestedFixes)
}

func TestCheckCompatibility_GPUTooLong(t *testing.T) {
	parts := models.SelectedParts{
		GPU:  part("gpu-long", models.CategoryGPU, 900, models.Specs{LengthMM: models.IntPtr(340)}),
		Case: part("case-small", models.CategoryCase, 90, models.Specs{MaxGPULengthMM: models.IntPtr(320)}),
	}

	issues := CheckCompatibility(parts)
	require.Len(t, issues, 1)
	assert.Equal(t, models.IssueGPUTooLong, issues[0].ID)
	assert.ElementsMatch(t, []string{"gpu-long", "case-small"}, issues[0].AffectedParts)

	parts.Case.Specs.MaxGPULengthMM = models.IntPtr(340)
	assert.Empty(t, CheckCompatibility(parts), "equal length fits")
}

func TestCheckCompatibility_LowHeadroomIsNotInsufficient(t *testing.T) {
	parts := models.SelectedParts{
		CPU: part("cpu", models.CategoryCPU, 0, models.Specs{TDPW: models.IntPtr(125)}),
		GPU: part("gpu", models.CategoryGPU, 0, models.Specs{TDPW: models.IntPtr(320)}),
		PSU: part("psu-550", models.CategoryPSU, 60, models.Specs{WattageW: models.IntPtr(550)}),
	}

	issues := CheckCompatibility(parts)
	if diff := cmp.Diff([]models.IssueID{models.IssueLowPSUHeadroom}, issueIDs(issues)); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, models.SeverityWarning, issues[0].Severity)
	assert.Equal(t, []string{"psu-550", "cpu", "gpu"}, issues[0].AffectedParts)
	assert.Contains(t, issues[0].SuggestedFixes[0], "700W")
}

func TestCheckCompatibility_InsufficientPower(t *testing.T) {
	parts := models.SelectedParts{
		CPU: part("cpu", models.CategoryCPU, 0, models.Specs{TDPW: models.IntPtr(125)}),
		GPU: part("gpu", models.CategoryGPU, 0, models.Specs{TDPW: models.IntPtr(320)}),
		PSU: part("psu-450", models.CategoryPSU, 40, models.Specs{WattageW: models.IntPtr(450)}),
	}

	assert.Equal(t, []models.IssueID{models.IssueInsufficientPower}, issueIDs(CheckCompatibility(parts)))
}

func TestCheckCompatibility_RAMAndCooler(t *testing.T) {
	parts := models.SelectedParts{
		Motherboard: part("mb", models.CategoryMotherboard, 0, models.Specs{MemoryType: "DDR5"}),
		RAM:         part("ram", models.CategoryRAM, 0, models.Specs{MemoryType: "DDR4"}),
		Cooler:      part("tower", models.CategoryCooler, 0, models.Specs{HeightMM: models.IntPtr(170)}),
		Case:        part("itx", models.CategoryCase, 0, models.Specs{MaxCoolerHeightMM: models.IntPtr(155)}),
	}

	assert.Equal(t,
		[]models.IssueID{models.IssueRAMTypeMismatch, models.IssueCoolerTooTall},
		issueIDs(CheckCompatibility(parts)),
	)
}

func TestCheckCompatibility_NoM2Slots(t *testing.T) {
	parts := models.SelectedParts{
		Motherboard: part("mb", models.CategoryMotherboard, 0, models.Specs{M2Slots: models.IntPtr(1)}),
		Storage: []models.Part{
			*part("nvme-a", models.CategoryStorage, 0, models.Specs{Interface: "nvme"}),
			*part("sata", models.CategoryStorage, 0, models.Specs{Interface: "sata"}),
			*part("nvme-b", models.CategoryStorage, 0, models.Specs{Interface: "NVMe"}),
		},
	}

	issues := CheckCompatibility(parts)
	require.Len(t, issues, 1)
	assert.Equal(t, models.IssueNoM2Slots, issues[0].ID)
	assert.Equal(t, []string{"mb", "nvme-a", "nvme-b"}, issues[0].AffectedParts)
}

func TestCheckCompatibility_MissingSpecsSkipRules(t *testing.T) {
	parts := models.SelectedParts{
		CPU:         part("cpu", models.CategoryCPU, 0, models.Specs{}),
		Motherboard: part("mb", models.CategoryMotherboard, 0, models.Specs{Socket: "AM5"}),
		GPU:         part("gpu", models.CategoryGPU, 0, models.Specs{}),
		Case:        part("case", models.CategoryCase, 0, models.Specs{MaxGPULengthMM: models.IntPtr(100)}),
		PSU:         part("psu", models.CategoryPSU, 0, models.Specs{}),
	}

	assert.Empty(t, CheckCompatibility(parts))
}

func TestCheckCompatibility_Deterministic(t *testing.T) {
	c := defaultCatalog(t)
	parts := selectParts(t, c, models.PartSelection{
		CPU:         "cpu-r7-7800x3d",
		Motherboard: "mb-z790",
		RAM:         "ram-ddr4-32",
		GPU:         "gpu-rtx4090",
		PSU:         "psu-550",
		Case:        "case-nr200",
	})

	first := CheckCompatibility(parts)
	second := CheckCompatibility(parts)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated checks differ:\n%s", diff)
	}
	assert.Equal(t, []models.IssueID{
		models.IssueSocketMismatch,
		models.IssueRAMTypeMismatch,
		models.IssueGPUTooLong,
		models.IssueInsufficientPower,
	}, issueIDs(first))
}

func TestCheckCompatibility_BalancedBuild(t *testing.T) {
	c := defaultCatalog(t)
	assert.Empty(t, CheckCompatibility(selectParts(t, c, balancedSelection())))
}

func TestKeepsCoverage(t *testing.T) {
	c := missingFieldCatalog()
	board := &c.Motherboards[0]
	withSocket := models.SelectedParts{CPU: &c.CPUs[1], Motherboard: board}
	withoutSocket := models.SelectedParts{CPU: &c.CPUs[2], Motherboard: board}

	assert.True(t, keepsCoverage(withSocket, withSocket))
	assert.False(t, keepsCoverage(withSocket, withoutSocket))
	assert.True(t, keepsCoverage(withoutSocket, withSocket))

	// the socket check never ran without a board, so nothing is lost
	assert.True(t, keepsCoverage(models.SelectedParts{CPU: &c.CPUs[1]}, models.SelectedParts{CPU: &c.CPUs[2]}))

	psu := models.SelectedParts{PSU: &c.PSUs[0]}
	assert.False(t, keepsCoverage(psu, psu.Replace(models.CategoryPSU, "psu-450", c.PSUs[2])))
}
