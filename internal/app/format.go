package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"flextime/internal/core"
	"flextime/internal/types"
)

// Format parses the input with the candidate list and renders it under
// one explicit pattern. The output zone is the request's, then the
// catalog's format_timezone, then the local zone.
func (s Service) Format(ctx context.Context, req FormatRequest) (FormatResult, error) {
	if strings.TrimSpace(req.Pattern) == "" {
		return FormatResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("format pattern is required")
	}
	setup, err := s.setupParser(ctx, req.Catalog)
	if err != nil {
		return FormatResult{}, err
	}
	compiled, err := core.CompilePattern(types.Pattern{Value: req.Pattern})
	if err != nil {
		return FormatResult{}, err
	}
	parsed, err := setup.Parser.Parse(req.Input)
	if err != nil {
		return FormatResult{}, err
	}
	location, err := core.ResolveLocation(req.Timezone, setup.FormatLocation)
	if err != nil {
		return FormatResult{}, err
	}
	return FormatResult{
		Output: core.FormatCompiled(parsed, compiled, location),
		Layout: compiled.FormatLayout,
	}, nil
}
