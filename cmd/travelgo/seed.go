package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"travelgo/internal/infra/config"
	mongostore "travelgo/internal/infra/db/mongo"
	"travelgo/internal/infra/obs"
	"travelgo/internal/infra/resources"
)

type seedFlags struct {
	toursPath string
	copyPath  string
	target    string
}

// newSeedCommand publishes local resource files to the remote source the service reads from.
func newSeedCommand(s *settings) *cobra.Command {
	var f seedFlags
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upload the tour collection and copy document to S3 or MongoDB",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.load()
			if err != nil {
				return err
			}
			logger := obs.NewLogger(cfg.Env, obs.LogOptions{Level: cfg.LogLevel, File: cfg.LogFile})
			if f.toursPath == "" {
				f.toursPath = cfg.ToursPath
			}
			if f.copyPath == "" {
				f.copyPath = cfg.CopyPath
			}
			ctx := cmd.Context()

			switch f.target {
			case config.SourceS3:
				client, err := newS3Client(cfg, logger)
				if err != nil {
					return err
				}
				uploads := map[string]string{cfg.ToursKey: f.toursPath, cfg.CopyKey: f.copyPath}
				for key, path := range uploads {
					data, err := resources.FileFetcher{Path: path}.Fetch(ctx)
					if err != nil {
						return err
					}
					url, err := client.Upload(ctx, key, bytes.NewReader(data), "application/json")
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s -> %s\n", path, url)
				}
				return nil
			case config.SourceMongo:
				if cfg.MongoURI == "" {
					return fmt.Errorf("MONGO_URI is required for %s target", config.SourceMongo)
				}
				list, err := resources.ToursLoader(resources.FileFetcher{Path: f.toursPath})(ctx)
				if err != nil {
					return err
				}
				client, err := mongostore.New(cfg.MongoURI, cfg.MongoDB)
				if err != nil {
					return fmt.Errorf("connect mongo: %w", err)
				}
				defer client.Close(ctx)
				if err := mongostore.NewTourSource(client.DB).ReplaceAll(ctx, list); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "stored %d tours in %s\n", len(list), cfg.MongoDB)
				return nil
			default:
				return fmt.Errorf("unknown seed target %q (want %s or %s)", f.target, config.SourceS3, config.SourceMongo)
			}
		},
	}
	cmd.Flags().StringVar(&f.toursPath, "tours", "", "tour collection file (JSON or YAML)")
	cmd.Flags().StringVar(&f.copyPath, "copy", "", "copy document file (JSON or YAML)")
	cmd.Flags().StringVar(&f.target, "target", config.SourceS3, "destination: s3 or mongo")
	return cmd
}
