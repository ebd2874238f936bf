package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/croberts/resume-builder/internal/rendering"
	"github.com/croberts/resume-builder/internal/types"
)

var seedFixture = filepath.Join("..", "..", "testdata", "valid", "seed.json")

// seededConfig returns a config path whose database holds the seed fixture
func seededConfig(t *testing.T) string {
	t.Helper()
	cfgPath := writeTestConfig(t)
	_, err := runCLI(t, "seed", "--config", cfgPath, "--in", seedFixture)
	require.NoError(t, err)
	return cfgPath
}

func TestSeedCommand(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := runCLI(t, "seed", "--config", cfgPath, "--in", seedFixture)
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 2 companies, 2 jobs, 5 accomplishments")
	assert.Contains(t, out, "Seeded 4 skills, 1 projects, 2 education entries")
}

func TestSeedCommand_MissingInputFlag(t *testing.T) {
	_, err := runCLI(t, "seed", "--config", writeTestConfig(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestSeedCommand_InvalidSeed(t *testing.T) {
	invalid := filepath.Join("..", "..", "testdata", "invalid", "seed_missing_title.json")

	_, err := runCLI(t, "seed", "--config", writeTestConfig(t), "--in", invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load seed")
}

func TestMatchCommand_JSON(t *testing.T) {
	cfgPath := seededConfig(t)

	out, err := runCLI(t, "match", "--config", cfgPath, "--text", "Excel and UiPath")
	require.NoError(t, err)

	var result types.MatchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []string{"excel", "uipath"}, result.Keywords)
	assert.Equal(t, []string{
		"Built UiPath bots to automate manual reconciliation tasks",
		"Developed Excel macros that cut month-end close by two days",
	}, result.MatchedBullets)
}

func TestMatchCommand_Verbose(t *testing.T) {
	cfgPath := seededConfig(t)

	out, err := runCLI(t, "match", "--config", cfgPath, "--jd", "rpa-uipath", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "KEYWORDS")
	assert.Contains(t, out, "MATCHED ACCOMPLISHMENTS")
	assert.Contains(t, out, "RPA Developer @ ERT")
}

func TestMatchCommand_UnknownJobDescription(t *testing.T) {
	_, err := runCLI(t, "match", "--config", seededConfig(t), "--jd", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown job description "nope"`)
}

func TestRenderCommand_DOCX(t *testing.T) {
	cfgPath := seededConfig(t)
	outPath := filepath.Join(t.TempDir(), "out", "resume.docx")

	out, err := runCLI(t, "render", "--config", cfgPath, "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Output: "+outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}

func TestRenderCommand_HTML(t *testing.T) {
	cfgPath := seededConfig(t)
	outPath := filepath.Join(t.TempDir(), "resume.html")

	out, err := runCLI(t, "render", "--config", cfgPath, "--format", "html", "--out", outPath, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "ASSEMBLED RESUME")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Test Candidate")
	assert.Contains(t, string(data), "Built UiPath bots to automate manual reconciliation tasks")
}

func TestRenderCommand_XLSX(t *testing.T) {
	cfgPath := seededConfig(t)
	outPath := filepath.Join(t.TempDir(), "match.xlsx")

	_, err := runCLI(t, "render", "--config", cfgPath, "--format", "xlsx", "--out", outPath, "--text", "Excel")
	require.NoError(t, err)

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	company, err := f.GetCellValue(rendering.MatchSheet, "A8")
	require.NoError(t, err)
	assert.Equal(t, "Vanguard", company)
}

func TestRenderCommand_UnsupportedFormat(t *testing.T) {
	_, err := runCLI(t, "render", "--config", seededConfig(t), "--format", "pdf", "--out", filepath.Join(t.TempDir(), "x.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "pdf"`)
}

func TestRenderCommand_MissingOutFlag(t *testing.T) {
	_, err := runCLI(t, "render", "--config", writeTestConfig(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}
