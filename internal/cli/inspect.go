package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"flextime/internal/app"
)

type inspectOptions struct {
	OutputDir string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a batch parse report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "catalog: %s\n", result.Catalog)
	fmt.Fprintf(out, "records: %d (matched=%d fallback=%d)\n", result.Total, result.Matched, result.Fallbacks)
	fmt.Fprintln(out, "matches by pattern:")
	for _, summary := range result.Patterns {
		fmt.Fprintf(out, "- %s: %d\n", summary.Pattern, summary.Count)
	}
	if len(result.Misses) > 0 {
		fmt.Fprintf(out, "unmatched: %s\n", strings.Join(result.Misses, ", "))
	}
	return nil
}
