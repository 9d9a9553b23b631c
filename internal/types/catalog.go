package types

type Metadata struct {
	Name        string   `yaml:"name" toml:"name"`
	Version     string   `yaml:"version" toml:"version"`
	Owners      []string `yaml:"owners" toml:"owners"`
	Description string   `yaml:"description,omitempty" toml:"description,omitempty"`
}

// CatalogDefaults carries the parser and formatter settings a catalog
// wants when nothing is passed via flags or environment variables.
type CatalogDefaults struct {
	Timezone       string `yaml:"timezone,omitempty" toml:"timezone,omitempty"`
	FormatTimezone string `yaml:"format_timezone,omitempty" toml:"format_timezone,omitempty"`
	Locale         string `yaml:"locale,omitempty" toml:"locale,omitempty"`
}

type ComposeRef struct {
	Name string `yaml:"name" toml:"name"`
	// Version is a PEP 440 specifier ("~=1.2", ">=1.0,<2") the composed
	// profile's metadata.version must satisfy. Empty accepts any version.
	Version string `yaml:"version,omitempty" toml:"version,omitempty"`
	Source  string `yaml:"source" toml:"source"`
	Path    string `yaml:"path,omitempty" toml:"path,omitempty"`

	// Patterns holds an inline profile body when Source is "inline".
	Patterns []Pattern `yaml:"patterns,omitempty" toml:"patterns,omitempty"`
}

type Catalog struct {
	APIVersion string          `yaml:"api_version" toml:"api_version"`
	Kind       CatalogKind     `yaml:"kind" toml:"kind"`
	Metadata   Metadata        `yaml:"metadata" toml:"metadata"`
	Defaults   CatalogDefaults `yaml:"defaults,omitempty" toml:"defaults,omitempty"`
	Compose    []ComposeRef    `yaml:"compose,omitempty" toml:"compose,omitempty"`
	Patterns   []Pattern       `yaml:"patterns" toml:"patterns"`

	// Source is the file the catalog was read from. Local compose paths
	// are resolved relative to it.
	Source string `yaml:"-" toml:"-"`
}
