package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"travelgo/internal/app/dto"
	"travelgo/internal/domain/i18n"
	"travelgo/internal/domain/tours"
	"travelgo/internal/infra/config"
	mongostore "travelgo/internal/infra/db/mongo"
	"travelgo/internal/infra/obs"
	"travelgo/internal/infra/resources"
)

type catalogFlags struct {
	state  tours.FilterState
	lang   string
	asJSON bool
}

func newCatalogCommand(s *settings) *cobra.Command {
	var f catalogFlags
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the tours matching the given filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.load()
			if err != nil {
				return err
			}
			logger := obs.NewLogger(cfg.Env, obs.LogOptions{Level: cfg.LogLevel, File: cfg.LogFile})
			loader, closeFn, err := toursLoader(cfg, logger)
			if err != nil {
				return err
			}
			defer closeFn()

			list, err := loader(cmd.Context())
			if err != nil {
				return err
			}
			lang := f.lang
			if lang == "" {
				lang = cfg.DefaultLang
			}
			lang = i18n.Normalize(lang)
			result := dto.MapCatalog(list, tours.ApplyFilters(list, f.state), f.state, lang)
			if f.asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			return printCatalog(cmd.OutOrStdout(), result)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&f.state.Country, "country", "", "country key")
	flags.Float64Var(&f.state.Price, "price", 0, "maximum price in EUR (0 = any)")
	flags.StringVar(&f.state.Days, "days", "", "duration bucket: 4-6, 7-8 or 9+")
	flags.StringVar(&f.state.PeriodStart, "start", "", "travel period start (YYYY-MM-DD)")
	flags.StringVar(&f.state.PeriodEnd, "end", "", "travel period end (YYYY-MM-DD)")
	flags.StringVar(&f.state.People, "people", "", "minimum traveler capacity")
	flags.StringVar(&f.state.Rating, "rating", "", "minimum rating")
	flags.StringVar(&f.lang, "lang", "", "display language (uk, en, ru)")
	flags.BoolVar(&f.asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func printCatalog(out io.Writer, result dto.TourCatalog) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCOUNTRY\tDAYS\tPRICE\tRATING")
	for _, item := range result.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t€%s\t%.1f\n", item.ID, item.Title, item.Country, item.Days, strconv.FormatFloat(item.PriceEUR, 'f', -1, 64), item.Rating)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%d of %d tours\n", result.Count, result.Total)
	return err
}

// toursLoader returns a loader for the configured source and a function releasing it.
func toursLoader(cfg config.Config, logger *slog.Logger) (resources.Loader[[]tours.Tour], func(), error) {
	if cfg.ResourceSource == config.SourceMongo {
		client, err := mongostore.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, fmt.Errorf("connect mongo: %w", err)
		}
		closeFn := func() { _ = client.Close(context.Background()) }
		return mongostore.NewTourSource(client.DB).LoadTours, closeFn, nil
	}
	toursFetcher, _, err := resourceFetchers(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return resources.ToursLoader(toursFetcher), func() {}, nil
}
