package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"travelgo/internal/infra/config"
)

type versionInfo struct {
	Version string
	Commit  string
}

// settings resolves configuration keys from flags, the optional config file and the environment.
type settings struct {
	v *viper.Viper
}

func (s *settings) load() (config.Config, error) {
	return config.LoadFrom(func(key string) string {
		return s.v.GetString(strings.ToLower(key))
	})
}

func newRootCommand(info versionInfo) *cobra.Command {
	var path string
	s := &settings{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "travelgo",
		Short:         "Tour catalog service",
		Long:          "travelgo serves the tour catalog: filtering, availability checks, the date-range picker and localized copy.",
		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(s.v, path)
		},
	}

	cmd.PersistentFlags().StringVar(&path, "config", "", "config file (default is ./config.yaml)")
	cmd.PersistentFlags().String("env", "", "environment name (dev, local, prod)")
	cmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	_ = s.v.BindPFlag("app_env", cmd.PersistentFlags().Lookup("env"))
	_ = s.v.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.Version = fmt.Sprintf("%s.%s", info.Version, info.Commit)

	cmd.AddCommand(
		newServeCommand(s),
		newCatalogCommand(s),
		newSeedCommand(s),
		newVersionCommand(info),
	)
	return cmd
}

func initConfig(v *viper.Viper, path string) error {
	config.LoadDotEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

func newVersionCommand(info versionInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "travelgo %s (%s)\n", info.Version, info.Commit)
		},
	}
}
