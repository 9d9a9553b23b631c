package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	catalogPath := strings.TrimSpace(req.CatalogPath)
	if catalogPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog path is required")
	}
	composed, err := s.loadCatalog(ctx, catalogPath, req.Profiles)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		CatalogName:  composed.Metadata.Name,
		PatternCount: len(composed.Patterns),
	}, nil
}
