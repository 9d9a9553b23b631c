package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"flextime/internal/app"
)

type clockOptions struct {
	Catalog catalogFlags
	Fixed   bool
}

func newClockCommand() *cobra.Command {
	opts := clockOptions{}
	cmd := &cobra.Command{
		Use:   "clock <input>",
		Short: "Print the hour and minute of a timestamp as H:MM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClock(cmd.Context(), cmd, opts, args[0])
		},
	}
	bindCatalogFlags(cmd, &opts.Catalog)
	cmd.Flags().BoolVar(&opts.Fixed, "fixed", false, "Only accept yyyy-MM-dd HH:mm:ss and print zero values on failure")
	return cmd
}

func runClock(ctx context.Context, cmd *cobra.Command, opts clockOptions, input string) error {
	service := newAppService()
	result, err := service.TimeOfDay(ctx, app.TimeOfDayRequest{
		Catalog: resolveCatalogOptions(cmd, opts.Catalog),
		Input:   input,
		Fixed:   opts.Fixed,
	})
	if err != nil {
		return err
	}
	display := result.Display
	if display == "" {
		display = "-"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s hour=%d minute=%d\n", display, result.Hour, result.Minute)
	return nil
}

func newElapsedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "elapsed <seconds>",
		Short: "Render a duration in seconds as a playback clock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("invalid seconds value: %s", args[0])).
					WithCause(err)
			}
			result := newAppService().Elapsed(app.ElapsedRequest{Seconds: seconds})
			fmt.Fprintln(cmd.OutOrStdout(), result.Display)
			return nil
		},
	}
}
