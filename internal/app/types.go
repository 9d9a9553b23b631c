package app

import "time"

// CatalogOptions selects the candidate patterns and parse settings. An
// empty CatalogPath uses the built-in patterns; Timezone and Locale
// override the catalog defaults when set.
type CatalogOptions struct {
	CatalogPath string
	Profiles    []string
	Timezone    string
	Locale      string
}

type ParseRequest struct {
	Catalog CatalogOptions
	Inputs  []string
	Strict  bool
}

type ParseEntry struct {
	Input    string
	Time     time.Time
	Pattern  string
	Index    int
	Fallback bool
}

type ParseResult struct {
	Entries []ParseEntry
}

type FormatRequest struct {
	Catalog  CatalogOptions
	Input    string
	Pattern  string
	Timezone string
}

type FormatResult struct {
	Output string
	Layout string
}

type TimeOfDayRequest struct {
	Catalog CatalogOptions
	Input   string
	Fixed   bool
}

type TimeOfDayResult struct {
	Hour    int
	Minute  int
	Display string
}

type ElapsedRequest struct {
	Seconds float64
}

type ElapsedResult struct {
	Display string
}

type PatternsRequest struct {
	Catalog CatalogOptions
}

type PatternSummary struct {
	Index   int
	Name    string
	Pattern string
	Layout  string
}

type PatternsResult struct {
	CatalogName string
	Timezone    string
	Locale      string
	Patterns    []PatternSummary
}

type ValidateRequest struct {
	CatalogPath string
	Profiles    []string
}

type ValidateResult struct {
	CatalogName  string
	PatternCount int
}

type BatchRequest struct {
	Catalog   CatalogOptions
	InputPath string
	Inputs    []string
	OutputDir string
	Workers   int
	Strict    bool
}

type BatchResult struct {
	ReportPath string
	Total      int
	Matched    int
	Missed     int
}

type InspectRequest struct {
	OutputDir string
}

type InspectPatternSummary struct {
	Pattern string
	Count   int
}

type InspectResult struct {
	Catalog   string
	Total     int
	Matched   int
	Fallbacks int
	Misses    []string
	Patterns  []InspectPatternSummary
}
