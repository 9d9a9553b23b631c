package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"flextime/internal/app"
)

type parseOptions struct {
	Catalog catalogFlags
	Strict  bool
}

func newParseCommand() *cobra.Command {
	opts := parseOptions{}
	cmd := &cobra.Command{
		Use:   "parse <input>...",
		Short: "Parse timestamps with the first matching catalog pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.Context(), cmd, opts, args)
		},
	}
	bindCatalogFlags(cmd, &opts.Catalog)
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail instead of falling back to the current time")
	_ = viper.BindPFlag("strict", cmd.Flags().Lookup("strict"))
	return cmd
}

func runParse(ctx context.Context, cmd *cobra.Command, opts parseOptions, args []string) error {
	service := newAppService()
	result, err := service.Parse(ctx, app.ParseRequest{
		Catalog: resolveCatalogOptions(cmd, opts.Catalog),
		Inputs:  args,
		Strict:  resolveBool(cmd, opts.Strict, "strict", "strict"),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, entry := range result.Entries {
		if entry.Fallback {
			fmt.Fprintf(out, "%s -> %s (no match, current time)\n", entry.Input, entry.Time.Format(time.RFC3339Nano))
			continue
		}
		fmt.Fprintf(out, "%s -> %s (%s)\n", entry.Input, entry.Time.Format(time.RFC3339Nano), entry.Pattern)
	}
	return nil
}
