package app

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"flextime/internal/core"
	"flextime/internal/types"
)

const builtinCatalogName = "builtin"

// parseSetup is everything a use case needs after the catalog has been
// loaded, composed and validated.
type parseSetup struct {
	Catalog        types.Catalog
	Parser         core.Parser
	FormatLocation *time.Location
}

func (s Service) loadCatalog(ctx context.Context, catalogPath string, profiles []string) (types.Catalog, error) {
	product, err := s.CatalogLoader.LoadProduct(catalogPath)
	if err != nil {
		return types.Catalog{}, err
	}
	loaded, err := s.CatalogSource.LoadProfiles(product, profiles)
	if err != nil {
		return types.Catalog{}, err
	}
	composed, err := core.NewCatalogComposer().Compose(ctx, product, loaded)
	if err != nil {
		return types.Catalog{}, err
	}
	if err := core.NewCatalogValidator().Validate(ctx, composed); err != nil {
		return types.Catalog{}, err
	}
	return composed, nil
}

func (s Service) setupParser(ctx context.Context, opts CatalogOptions) (parseSetup, error) {
	catalog := types.Catalog{
		APIVersion: "v1",
		Kind:       types.CatalogKindProduct,
		Metadata:   types.Metadata{Name: builtinCatalogName},
		Patterns:   append([]types.Pattern(nil), core.DefaultPatterns...),
	}
	if path := strings.TrimSpace(opts.CatalogPath); path != "" {
		loaded, err := s.loadCatalog(ctx, path, opts.Profiles)
		if err != nil {
			return parseSetup{}, err
		}
		catalog = loaded
	}

	location, err := core.ResolveLocation(firstNonEmpty(opts.Timezone, catalog.Defaults.Timezone), time.UTC)
	if err != nil {
		return parseSetup{}, err
	}
	formatLocation, err := core.ResolveLocation(catalog.Defaults.FormatTimezone, time.Local)
	if err != nil {
		return parseSetup{}, err
	}
	locale, err := core.ResolveLocale(firstNonEmpty(opts.Locale, catalog.Defaults.Locale))
	if err != nil {
		return parseSetup{}, err
	}
	parser, err := core.NewParser(core.ParserConfig{
		Patterns: catalog.Patterns,
		Location: location,
		Locale:   locale,
		Clock:    s.Clock,
	})
	if err != nil {
		return parseSetup{}, err
	}
	log.Ctx(ctx).Debug().
		Str("catalog", catalog.Metadata.Name).
		Str("timezone", location.String()).
		Str("locale", locale.String()).
		Int("patterns", len(parser.Patterns())).
		Msg("parser configured")
	return parseSetup{Catalog: catalog, Parser: parser, FormatLocation: formatLocation}, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
