package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"flextime/internal/app"
)

type batchOptions struct {
	Catalog   catalogFlags
	InputPath string
	OutputDir string
	Workers   int
	Strict    bool
}

func newBatchCommand() *cobra.Command {
	opts := batchOptions{}
	cmd := &cobra.Command{
		Use:   "batch [input]...",
		Short: "Parse many inputs and write a parse report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.Context(), cmd, opts, args)
		},
	}
	bindCatalogFlags(cmd, &opts.Catalog)
	cmd.Flags().StringVar(&opts.InputPath, "input", "", "File with one input per line (- for stdin)")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	cmd.Flags().IntVar(&opts.Workers, "workers", 4, "Parallel parse workers")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail on the first input no pattern matches")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("strict", cmd.Flags().Lookup("strict"))
	return cmd
}

func runBatch(ctx context.Context, cmd *cobra.Command, opts batchOptions, args []string) error {
	service := newAppService()
	result, err := service.Batch(ctx, app.BatchRequest{
		Catalog:   resolveCatalogOptions(cmd, opts.Catalog),
		InputPath: opts.InputPath,
		Inputs:    args,
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
		Workers:   resolveInt(cmd, opts.Workers, "workers", "workers"),
		Strict:    resolveBool(cmd, opts.Strict, "strict", "strict"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "parsed %d inputs: %d matched, %d missed\nreport: %s\n",
		result.Total, result.Matched, result.Missed, result.ReportPath)
	return nil
}
