package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"flextime/internal/types"
)

type CatalogValidator struct {
	assertOpts []assert.Option
}

var supportedAPIVersions = map[string]struct{}{
	"v1": {},
}

// NewCatalogValidator accepts assert options so callers can route
// metadata assertion reports away from stderr.
func NewCatalogValidator(opts ...assert.Option) CatalogValidator {
	return CatalogValidator{assertOpts: opts}
}

// Validate checks a loaded or composed catalog: metadata, kind, defaults
// and that every pattern compiles into a parser.
func (v CatalogValidator) Validate(ctx context.Context, catalog types.Catalog) error {
	assert.NotEmpty(ctx, catalog.APIVersion, "api_version must be set", v.assertOpts...)
	assert.NotEmpty(ctx, string(catalog.Kind), "kind must be set", v.assertOpts...)
	assert.NotEmpty(ctx, catalog.Metadata.Name, "metadata.name must be set", v.assertOpts...)
	assert.NotEmpty(ctx, catalog.Metadata.Version, "metadata.version must be set", v.assertOpts...)

	if _, ok := supportedAPIVersions[strings.TrimSpace(catalog.APIVersion)]; !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported api_version: %q", catalog.APIVersion))
	}
	if catalog.Kind != types.CatalogKindProduct && catalog.Kind != types.CatalogKindProfile {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog kind must be product or profile")
	}
	if strings.TrimSpace(catalog.Metadata.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("metadata.name must be set")
	}
	if strings.TrimSpace(catalog.Metadata.Version) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("metadata.version must be set")
	}
	if len(catalog.Metadata.Owners) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("metadata.owners must not be empty")
	}
	if catalog.Kind == types.CatalogKindProfile && len(catalog.Compose) > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("profile catalog must not include compose")
	}
	if catalog.Kind == types.CatalogKindProfile && len(catalog.Patterns) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("profile catalog must list patterns")
	}
	for i, pattern := range catalog.Patterns {
		if strings.TrimSpace(pattern.Value) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("patterns[%d].pattern must be set", i))
		}
	}
	if _, err := ResolveLocation(catalog.Defaults.Timezone, nil); err != nil {
		return err
	}
	if _, err := ResolveLocation(catalog.Defaults.FormatTimezone, nil); err != nil {
		return err
	}
	locale, err := ResolveLocale(catalog.Defaults.Locale)
	if err != nil {
		return err
	}
	if _, err := NewParser(ParserConfig{Patterns: catalog.Patterns, Locale: locale}); err != nil {
		return err
	}
	log.Ctx(ctx).Debug().
		Str("catalog", catalog.Metadata.Name).
		Int("patterns", len(catalog.Patterns)).
		Msg("catalog validated")
	return nil
}
