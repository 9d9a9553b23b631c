package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flextime/internal/types"
)

func TestWriteAndReadParseReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	report := types.ParseReport{
		Catalog:     "api-timestamps",
		Timezone:    "UTC",
		GeneratedAt: "2024-01-02T03:04:05Z",
		Records: []types.ParseRecord{
			{Input: "2023-06-15", OK: true, Pattern: "date", PatternIndex: 7, Timestamp: "2023-06-15T00:00:00Z"},
			{Input: "nope", Fallback: true, PatternIndex: -1, Timestamp: "2024-01-02T03:04:05Z", Error: "no candidate pattern matched: \"nope\""},
		},
	}
	path, err := NewReportFileAdapter(dir).WriteParseReport(report)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ParseReportFile), path)

	read, err := NewReportReaderAdapter().ReadParseReport(path)
	require.NoError(t, err)
	if diff := cmp.Diff(report, read); diff != "" {
		t.Fatalf("unexpected report (-want +got):\n%s", diff)
	}
}

func TestWriteParseReportRequiresDir(t *testing.T) {
	_, err := NewReportFileAdapter("").WriteParseReport(types.ParseReport{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestReadParseReportErrors(t *testing.T) {
	reader := NewReportReaderAdapter()
	_, err := reader.ReadParseReport(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))

	path := filepath.Join(t.TempDir(), ParseReportFile)
	require.NoError(t, os.WriteFile(path, []byte("records: {broken"), 0644))
	_, err = reader.ReadParseReport(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
