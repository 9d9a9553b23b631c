package app

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"flextime/internal/adapters"
	"flextime/internal/types"
)

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	report, err := s.ReportReader.ReadParseReport(filepath.Join(outputDir, adapters.ParseReportFile))
	if err != nil {
		return InspectResult{}, err
	}

	counts := summarizePatterns(report.Records)
	summaries := make([]InspectPatternSummary, 0, len(counts))
	for _, name := range sortedKeys(counts) {
		summaries = append(summaries, InspectPatternSummary{Pattern: name, Count: counts[name]})
	}
	result := InspectResult{
		Catalog:  report.Catalog,
		Total:    len(report.Records),
		Patterns: summaries,
	}
	for _, record := range report.Records {
		if record.OK {
			result.Matched++
			continue
		}
		if record.Fallback {
			result.Fallbacks++
		}
		result.Misses = append(result.Misses, record.Input)
	}
	return result, nil
}

func summarizePatterns(records []types.ParseRecord) map[string]int {
	counts := map[string]int{}
	for _, record := range records {
		if !record.OK {
			continue
		}
		counts[record.Pattern]++
	}
	return counts
}

func sortedKeys[V any](input map[string]V) []string {
	keys := make([]string, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
