package adapters

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"flextime/internal/core"
	"flextime/internal/ports"
	"flextime/internal/types"
)

type CatalogSourceAdapter struct {
	Catalog CatalogFileAdapter
}

func NewCatalogSourceAdapter(catalog CatalogFileAdapter) CatalogSourceAdapter {
	return CatalogSourceAdapter{Catalog: catalog}
}

// LoadProfiles returns the explicit profile paths when given, otherwise
// the profiles named by the product's compose list, in order.
func (a CatalogSourceAdapter) LoadProfiles(product types.Catalog, explicit []string) ([]types.Catalog, error) {
	if len(explicit) > 0 {
		return a.loadProfilePaths(explicit)
	}
	var profiles []types.Catalog
	for _, ref := range product.Compose {
		profile, err := a.loadComposeProfile(product, ref)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (a CatalogSourceAdapter) loadProfilePaths(paths []string) ([]types.Catalog, error) {
	var profiles []types.Catalog
	for _, path := range paths {
		profile, err := a.Catalog.LoadProfile(path)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (a CatalogSourceAdapter) loadComposeProfile(product types.Catalog, ref types.ComposeRef) (types.Catalog, error) {
	switch types.ComposeSource(strings.ToLower(strings.TrimSpace(ref.Source))) {
	case types.ComposeSourceLocal:
		if strings.TrimSpace(ref.Path) == "" {
			return types.Catalog{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("compose path is required for local sources")
		}
		profile, err := a.Catalog.LoadProfile(resolveComposePath(product.Source, ref.Path))
		if err != nil {
			return types.Catalog{}, err
		}
		if err := core.CheckComposeVersion(ref, profile); err != nil {
			return types.Catalog{}, err
		}
		return profile, nil
	case types.ComposeSourceInline:
		return loadInlineProfile(ref)
	default:
		return types.Catalog{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported compose source: %s", ref.Source))
	}
}

func loadInlineProfile(ref types.ComposeRef) (types.Catalog, error) {
	if len(ref.Patterns) == 0 {
		return types.Catalog{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("compose source is 'inline' but no patterns provided")
	}
	name := strings.TrimSpace(ref.Name)
	if name == "" {
		name = "inline"
	}
	return types.Catalog{
		APIVersion: "v1",
		Kind:       types.CatalogKindProfile,
		Metadata: types.Metadata{
			Name:    name,
			Version: "0.0.0",
		},
		Patterns: append([]types.Pattern(nil), ref.Patterns...),
	}, nil
}

func resolveComposePath(productPath string, path string) string {
	if filepath.IsAbs(path) || productPath == "" {
		return path
	}
	return filepath.Join(filepath.Dir(productPath), path)
}

var _ ports.CatalogSourcePort = CatalogSourceAdapter{}
