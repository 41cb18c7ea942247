package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/countrytable/internal/config"
	"github.com/rshade/countrytable/internal/country"
	"github.com/rshade/countrytable/internal/logging"
	"github.com/rshade/countrytable/internal/pipeline"
)

// listOptions holds the flags of the list command.
type listOptions struct {
	size   string
	region string
	sort   string
	page   int
	output string
}

// NewListCmd creates the one-shot "list" command. It fetches the countries,
// applies the optional sort, both filters and the page, and prints the page.
func NewListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of countries",
		Long: `Fetch all countries and print one page of ten.

The size filter only ever applies to Lithuania: it is kept when its area is
smaller than the given number. Every other country is subject to the region
filter (case-insensitive exact match) when one is given.`,
		Example: `  countrytable list --region europe
  countrytable list --size 70000 --sort desc --page 2
  countrytable list --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.size, "size", "", "size filter: keep Lithuania only when its area is smaller")
	cmd.Flags().StringVar(&opts.region, "region", "", "region filter (case-insensitive exact match)")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "sort by name before paging: asc or desc")
	cmd.Flags().IntVar(&opts.page, "page", 1, "page number (ten countries per page)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", string(OutputTable), "output format: table, json or yaml")

	return cmd
}

func runList(cmd *cobra.Command, opts listOptions) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format, err := ParseOutputFormat(opts.output)
	if err != nil {
		return err
	}

	cfg := config.GetGlobalConfig()
	locale, err := cfg.Display.Tag()
	if err != nil {
		return err
	}

	ctrlOpts := []pipeline.Option{
		pipeline.WithLogger(logging.ComponentLogger(log, "pipeline")),
		pipeline.WithLocale(locale),
	}
	sorting := opts.sort != ""
	if sorting {
		order, parseErr := pipeline.ParseSortOrder(opts.sort)
		if parseErr != nil {
			return parseErr
		}
		ctrlOpts = append(ctrlOpts, pipeline.WithSortOrder(order))
	}
	ctrl := pipeline.New(ctrlOpts...)

	provider := newProvider(cmd, cfg)
	log.Debug().Ctx(ctx).Str("url", provider.AllURL()).Msg("fetching countries")

	// A failed fetch is logged by the controller and leaves an empty table.
	if loadErr := ctrl.Load(ctx, provider); loadErr != nil {
		var fetchErr *country.FetchError
		if !errors.As(loadErr, &fetchErr) {
			return fmt.Errorf("loading countries: %w", loadErr)
		}
	}

	if sorting {
		ctrl.Sort()
	}
	ctrl.SetSizeFilter(opts.size)
	ctrl.SetRegionFilter(opts.region)
	ctrl.SetPage(opts.page)

	view := ctrl.View()
	log.Debug().Ctx(ctx).
		Int("total", view.Total).
		Int("filtered", view.Filtered).
		Int("rows", len(view.Rows)).
		Msg("rendering country page")

	return renderView(cmd.OutOrStdout(), format, view, country.NewAreaFormatter(locale))
}
