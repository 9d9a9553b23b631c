package types

type CatalogKind string

const (
	CatalogKindProfile CatalogKind = "profile"
	CatalogKindProduct CatalogKind = "product"
)

type ComposeSource string

const (
	ComposeSourceLocal  ComposeSource = "local"
	ComposeSourceInline ComposeSource = "inline"
)
