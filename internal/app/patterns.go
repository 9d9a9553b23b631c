package app

import "context"

func (s Service) Patterns(ctx context.Context, req PatternsRequest) (PatternsResult, error) {
	setup, err := s.setupParser(ctx, req.Catalog)
	if err != nil {
		return PatternsResult{}, err
	}
	compiled := setup.Parser.Patterns()
	summaries := make([]PatternSummary, 0, len(compiled))
	for i, entry := range compiled {
		summaries = append(summaries, PatternSummary{
			Index:   i,
			Name:    entry.Pattern.Name,
			Pattern: entry.Pattern.Value,
			Layout:  entry.Layout,
		})
	}
	return PatternsResult{
		CatalogName: setup.Catalog.Metadata.Name,
		Timezone:    setup.Parser.Location().String(),
		Locale:      setup.Parser.Locale().String(),
		Patterns:    summaries,
	}, nil
}
