package types

// Pattern is one entry of the ordered candidate list. Value holds an LDML
// style pattern such as "yyyy-MM-dd'T'HH:mm:ss.SSSZ"; Name is optional and
// only used for reporting.
type Pattern struct {
	Name  string `yaml:"name,omitempty" toml:"name,omitempty"`
	Value string `yaml:"pattern" toml:"pattern"`
}

// Label returns the name when set, otherwise the raw pattern.
func (p Pattern) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Value
}

// TimeOfDay is the hour and minute extracted from a parsed timestamp.
type TimeOfDay struct {
	Hour   int
	Minute int
}
