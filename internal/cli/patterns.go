package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"flextime/internal/app"
)

type patternsOptions struct {
	Catalog catalogFlags
}

func newPatternsCommand() *cobra.Command {
	opts := patternsOptions{}
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the effective candidate patterns in priority order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPatterns(cmd.Context(), cmd, opts)
		},
	}
	bindCatalogFlags(cmd, &opts.Catalog)
	return cmd
}

func runPatterns(ctx context.Context, cmd *cobra.Command, opts patternsOptions) error {
	service := newAppService()
	result, err := service.Patterns(ctx, app.PatternsRequest{
		Catalog: resolveCatalogOptions(cmd, opts.Catalog),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "catalog: %s (timezone=%s locale=%s)\n", result.CatalogName, result.Timezone, result.Locale)
	for _, summary := range result.Patterns {
		name := summary.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(out, "%2d. %-24s %-40s %s\n", summary.Index+1, name, summary.Pattern, summary.Layout)
	}
	return nil
}
