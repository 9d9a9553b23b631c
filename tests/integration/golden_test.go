package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flextime/internal/adapters"
	"flextime/internal/app"
	"flextime/tests/testutil"
)

var pinnedNow = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func runFixtureBatch(t *testing.T, outDir string) app.BatchResult {
	t.Helper()
	service := app.NewService()
	service.Clock = testutil.PinnedClock(pinnedNow)
	result, err := service.Batch(t.Context(), app.BatchRequest{
		Catalog:   app.CatalogOptions{CatalogPath: testutil.FixturePath(t, "catalog-product.yaml")},
		InputPath: testutil.FixturePath(t, "inputs.txt"),
		OutputDir: outDir,
		Workers:   4,
	})
	require.NoError(t, err)
	return result
}

// TestGoldenBatchReport runs a batch over the fixture catalog and inputs
// and compares the report against a committed golden file. If the golden
// file does not exist yet (first run), it is written so it can be
// committed.
//
// To update the golden file after an intentional change, delete the
// testdata/golden/ directory and re-run the test.
func TestGoldenBatchReport(t *testing.T) {
	root := testutil.RepoRoot(t)
	goldenPath := filepath.Join(root, "tests", "integration", "testdata", "golden", adapters.ParseReportFile)

	result := runFixtureBatch(t, t.TempDir())
	actual, err := os.ReadFile(result.ReportPath)
	require.NoError(t, err)

	if _, statErr := os.Stat(goldenPath); os.IsNotExist(statErr) {
		require.NoError(t, os.MkdirAll(filepath.Dir(goldenPath), 0o755))
		require.NoError(t, os.WriteFile(goldenPath, actual, 0o644))
		t.Logf("golden file written: %s (commit it)", goldenPath)
		return
	}
	expected, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(actual),
		"golden mismatch -- delete testdata/golden/ and re-run to regenerate")
}

// TestGoldenBatchStructure checks the report independent of its exact
// encoding.
func TestGoldenBatchStructure(t *testing.T) {
	result := runFixtureBatch(t, t.TempDir())
	report, err := adapters.NewReportReaderAdapter().ReadParseReport(result.ReportPath)
	require.NoError(t, err)

	t.Run("records follow input order", func(t *testing.T) {
		inputs, err := adapters.NewInputFileAdapter().ReadInputs(testutil.FixturePath(t, "inputs.txt"))
		require.NoError(t, err)
		require.Len(t, report.Records, len(inputs))
		for i, record := range report.Records {
			assert.Equal(t, inputs[i], record.Input)
		}
	})

	t.Run("every match names its pattern", func(t *testing.T) {
		for _, record := range report.Records {
			if record.OK {
				assert.NotEmpty(t, record.Pattern, record.Input)
				assert.GreaterOrEqual(t, record.PatternIndex, 0, record.Input)
				continue
			}
			assert.True(t, record.Fallback, record.Input)
			assert.Equal(t, -1, record.PatternIndex, record.Input)
			assert.Equal(t, pinnedNow.Format(time.RFC3339Nano), record.Timestamp)
		}
	})

	t.Run("inspect agrees with batch counts", func(t *testing.T) {
		inspected, err := app.NewService().Inspect(app.InspectRequest{OutputDir: filepath.Dir(result.ReportPath)})
		require.NoError(t, err)
		assert.Equal(t, result.Total, inspected.Total)
		assert.Equal(t, result.Matched, inspected.Matched)
		assert.Equal(t, result.Missed, len(inspected.Misses))
		assert.Equal(t, []string{"not-a-date"}, inspected.Misses)
	})
}
