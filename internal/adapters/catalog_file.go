package adapters

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"flextime/internal/ports"
	"flextime/internal/types"
)

// CatalogFileAdapter reads catalogs from YAML or TOML files, picked by
// file extension.
type CatalogFileAdapter struct{}

func NewCatalogFileAdapter() CatalogFileAdapter {
	return CatalogFileAdapter{}
}

func (a CatalogFileAdapter) LoadProduct(path string) (types.Catalog, error) {
	catalog, err := a.load(path)
	if err != nil {
		return types.Catalog{}, err
	}
	if catalog.Kind != types.CatalogKindProduct {
		return types.Catalog{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog kind is not product")
	}
	return catalog, nil
}

func (a CatalogFileAdapter) LoadProfile(path string) (types.Catalog, error) {
	catalog, err := a.load(path)
	if err != nil {
		return types.Catalog{}, err
	}
	if catalog.Kind != types.CatalogKindProfile {
		return types.Catalog{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog kind is not profile")
	}
	return catalog, nil
}

func (a CatalogFileAdapter) load(path string) (types.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Catalog{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("catalog file not found").
			WithCause(err)
	}
	var catalog types.Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&catalog); err != nil {
			return types.Catalog{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse catalog toml").
				WithCause(err)
		}
	default:
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return types.Catalog{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse catalog yaml").
				WithCause(err)
		}
	}
	catalog.Source = path
	return catalog, nil
}

var (
	_ ports.ProductCatalogPort = CatalogFileAdapter{}
	_ ports.ProfileCatalogPort = CatalogFileAdapter{}
)
