package types

// ParseRecord is one line of a batch parse report.
type ParseRecord struct {
	Input        string `yaml:"input"`
	OK           bool   `yaml:"ok"`
	Fallback     bool   `yaml:"fallback,omitempty"`
	Pattern      string `yaml:"pattern,omitempty"`
	PatternIndex int    `yaml:"pattern_index"`
	Timestamp    string `yaml:"timestamp,omitempty"`
	Error        string `yaml:"error,omitempty"`
}

type ParseReport struct {
	Catalog     string        `yaml:"catalog"`
	Timezone    string        `yaml:"timezone"`
	GeneratedAt string        `yaml:"generated_at"`
	Records     []ParseRecord `yaml:"records"`
}
