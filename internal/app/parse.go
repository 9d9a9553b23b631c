package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

// Parse runs every input through the candidate list. Misses fall back to
// the service clock unless Strict is set, in which case the first miss is
// returned as an error.
func (s Service) Parse(ctx context.Context, req ParseRequest) (ParseResult, error) {
	if len(req.Inputs) == 0 {
		return ParseResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one input is required")
	}
	setup, err := s.setupParser(ctx, req.Catalog)
	if err != nil {
		return ParseResult{}, err
	}
	entries := make([]ParseEntry, 0, len(req.Inputs))
	for _, input := range req.Inputs {
		match, err := setup.Parser.ParseMatch(input)
		if err != nil {
			if req.Strict {
				return ParseResult{}, err
			}
			log.Ctx(ctx).Debug().Str("input", input).Msg("no pattern matched, using current time")
			entries = append(entries, ParseEntry{
				Input:    input,
				Time:     setup.Parser.ParseOrNow(input),
				Index:    -1,
				Fallback: true,
			})
			continue
		}
		entries = append(entries, ParseEntry{
			Input:   input,
			Time:    match.Time,
			Pattern: match.Pattern.Label(),
			Index:   match.Index,
		})
	}
	return ParseResult{Entries: entries}, nil
}
