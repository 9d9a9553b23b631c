package ports

import "flextime/internal/types"

type ProductCatalogPort interface {
	LoadProduct(path string) (types.Catalog, error)
}

type ProfileCatalogPort interface {
	LoadProfile(path string) (types.Catalog, error)
}

type CatalogSourcePort interface {
	LoadProfiles(product types.Catalog, explicit []string) ([]types.Catalog, error)
}
