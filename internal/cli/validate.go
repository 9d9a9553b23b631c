package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"flextime/internal/app"
)

type validateOptions struct {
	Catalog  string
	Profiles []string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a pattern catalog and its profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "Pattern catalog path")
	cmd.Flags().StringSliceVar(&opts.Profiles, "profile", nil, "Profile catalog paths")
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		CatalogPath: resolveString(cmd, opts.Catalog, "catalog", "catalog"),
		Profiles:    resolveStrings(cmd, opts.Profiles, "profiles", "profile"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "validated: %s (%d patterns)\n", result.CatalogName, result.PatternCount)
	return nil
}
