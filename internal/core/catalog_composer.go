package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"flextime/internal/types"
)

type CatalogComposer struct{}

func NewCatalogComposer() CatalogComposer {
	return CatalogComposer{}
}

// Compose flattens a product and its profiles into one catalog. Profile
// patterns come first in compose order, then the product's own; a pattern
// already present keeps its earlier position.
func (c CatalogComposer) Compose(ctx context.Context, product types.Catalog, profiles []types.Catalog) (types.Catalog, error) {
	if product.Kind != types.CatalogKindProduct {
		return types.Catalog{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("compose requires product catalog")
	}
	if err := validateComposeRefs(product.Compose); err != nil {
		return types.Catalog{}, err
	}

	composed := types.Catalog{
		APIVersion: product.APIVersion,
		Kind:       types.CatalogKindProduct,
		Metadata:   product.Metadata,
		Defaults:   product.Defaults,
		Compose:    product.Compose,
		Patterns:   []types.Pattern{},
		Source:     product.Source,
	}
	seen := map[string]struct{}{}
	for _, profile := range profiles {
		if profile.Kind != types.CatalogKindProfile {
			return types.Catalog{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid profile catalog kind: %s", profile.Metadata.Name))
		}
		mergePatterns(ctx, &composed, profile, seen)
	}
	mergePatterns(ctx, &composed, product, seen)

	log.Ctx(ctx).Debug().
		Str("catalog", product.Metadata.Name).
		Int("patterns", len(composed.Patterns)).
		Msg("catalog composed")
	return composed, nil
}

func mergePatterns(ctx context.Context, target *types.Catalog, incoming types.Catalog, seen map[string]struct{}) {
	for _, pattern := range incoming.Patterns {
		if _, ok := seen[pattern.Value]; ok {
			log.Ctx(ctx).Debug().
				Str("pattern", pattern.Value).
				Str("catalog", incoming.Metadata.Name).
				Msg("duplicate pattern skipped")
			continue
		}
		seen[pattern.Value] = struct{}{}
		target.Patterns = append(target.Patterns, pattern)
	}
}

func validateComposeRefs(refs []types.ComposeRef) error {
	names := map[string]struct{}{}
	for _, ref := range refs {
		if ref.Name == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("compose entry name must be set")
		}
		if _, ok := names[ref.Name]; ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("duplicate compose entry: %s", ref.Name))
		}
		names[ref.Name] = struct{}{}
	}
	return nil
}
