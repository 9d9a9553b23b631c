package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"flextime/internal/core"
	"flextime/internal/types"
)

const defaultBatchWorkers = 4

// Batch parses many inputs concurrently and writes a parse report. Records
// keep input order regardless of worker scheduling.
func (s Service) Batch(ctx context.Context, req BatchRequest) (BatchResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return BatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	inputs := req.Inputs
	if strings.TrimSpace(req.InputPath) != "" {
		loaded, err := s.InputSource.ReadInputs(req.InputPath)
		if err != nil {
			return BatchResult{}, err
		}
		inputs = append(append([]string(nil), inputs...), loaded...)
	}
	if len(inputs) == 0 {
		return BatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no inputs to parse")
	}
	setup, err := s.setupParser(ctx, req.Catalog)
	if err != nil {
		return BatchResult{}, err
	}

	records, err := parseConcurrently(ctx, setup.Parser, inputs, req.Workers, req.Strict)
	if err != nil {
		return BatchResult{}, err
	}
	report := types.ParseReport{
		Catalog:     setup.Catalog.Metadata.Name,
		Timezone:    setup.Parser.Location().String(),
		GeneratedAt: timeNow(s.Clock).UTC().Format(time.RFC3339),
		Records:     records,
	}
	openWriter := s.ReportWriter
	if openWriter == nil {
		openWriter = newReportFileWriter
	}
	path, err := openWriter(outputDir).WriteParseReport(report)
	if err != nil {
		return BatchResult{}, err
	}

	result := BatchResult{ReportPath: path, Total: len(records)}
	for _, record := range records {
		if record.OK {
			result.Matched++
		} else {
			result.Missed++
		}
	}
	log.Ctx(ctx).Info().
		Int("total", result.Total).
		Int("matched", result.Matched).
		Int("missed", result.Missed).
		Str("report", path).
		Msg("batch parse complete")
	return result, nil
}

func parseConcurrently(ctx context.Context, parser core.Parser, inputs []string, workerCount int, strict bool) ([]types.ParseRecord, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if workerCount <= 0 {
		workerCount = defaultBatchWorkers
	}
	if len(inputs) < workerCount {
		workerCount = len(inputs)
	}
	records := make([]types.ParseRecord, len(inputs))
	var errMu sync.Mutex
	var firstErr error
	sem := make(chan struct{}, workerCount)
	var wg sync.WaitGroup
	for i, input := range inputs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			if ctx.Err() != nil {
				return
			}
			record, err := parseRecord(parser, input, strict)
			if err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
					cancel()
				}
				errMu.Unlock()
				return
			}
			records[i] = record
		}()
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("batch parse canceled").
			WithCause(err)
	}
	return records, nil
}

func parseRecord(parser core.Parser, input string, strict bool) (types.ParseRecord, error) {
	match, err := parser.ParseMatch(input)
	if err == nil {
		return types.ParseRecord{
			Input:        input,
			OK:           true,
			Pattern:      match.Pattern.Label(),
			PatternIndex: match.Index,
			Timestamp:    match.Time.Format(time.RFC3339Nano),
		}, nil
	}
	if strict {
		return types.ParseRecord{}, err
	}
	return types.ParseRecord{
		Input:        input,
		OK:           false,
		Fallback:     true,
		PatternIndex: -1,
		Timestamp:    parser.ParseOrNow(input).Format(time.RFC3339Nano),
		Error:        fmt.Sprint(core.ErrNoPatternMatched),
	}, nil
}
