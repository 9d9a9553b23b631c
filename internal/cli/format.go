package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"flextime/internal/app"
)

type formatOptions struct {
	Catalog        catalogFlags
	Pattern        string
	FormatTimezone string
}

func newFormatCommand() *cobra.Command {
	opts := formatOptions{}
	cmd := &cobra.Command{
		Use:   "format <timestamp>",
		Short: "Render a timestamp under an explicit pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd.Context(), cmd, opts, args[0])
		},
	}
	bindCatalogFlags(cmd, &opts.Catalog)
	cmd.Flags().StringVar(&opts.Pattern, "pattern", "yyyy-MM-dd", "Output pattern")
	cmd.Flags().StringVar(&opts.FormatTimezone, "format-timezone", "", "Output timezone (default local)")
	return cmd
}

func runFormat(ctx context.Context, cmd *cobra.Command, opts formatOptions, input string) error {
	service := newAppService()
	result, err := service.Format(ctx, app.FormatRequest{
		Catalog:  resolveCatalogOptions(cmd, opts.Catalog),
		Input:    input,
		Pattern:  opts.Pattern,
		Timezone: resolveString(cmd, opts.FormatTimezone, "format_timezone", "format-timezone"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Output)
	return nil
}
