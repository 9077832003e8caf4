// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/formgen/internal/session"
	"github.com/pdiddy/formgen/internal/theme"
	"github.com/pdiddy/formgen/internal/update"
	"github.com/pdiddy/formgen/pkg/types"
)

const (
	defaultOutputDir = "form_blackrussia"
	defaultStateFile = "last_update_check.txt"
	defaultLogLevel  = "warn"
)

func setDefaults() {
	viper.SetDefault("output_dir", defaultOutputDir)
	viper.SetDefault("state_file", defaultStateFile)
	viper.SetDefault("log_level", defaultLogLevel)
	viper.SetDefault("update.url", update.DefaultURL)
	viper.SetDefault("update.page_url", update.DefaultPageURL)
	viper.SetDefault("update.timeout", update.DefaultTimeout)
	viper.SetDefault("update.interval", update.DefaultInterval)
	viper.SetDefault("update.on_start", true)
}

// loadConfig resolves flags, environment, and config file into a Config.
func loadConfig() types.Config {
	return types.Config{
		Version:    version,
		OutputDir:  viper.GetString("output_dir"),
		StateFile:  viper.GetString("state_file"),
		ThemesFile: viper.GetString("themes_file"),
		NoColor:    viper.GetBool("no_color"),
		Update: types.UpdateConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("update.timeout"),
				UserAgent: update.DefaultUserAgent,
			},
			URL:      viper.GetString("update.url"),
			PageURL:  viper.GetString("update.page_url"),
			Interval: viper.GetDuration("update.interval"),
			OnStart:  viper.GetBool("update.on_start"),
		},
	}
}

// newSession builds an interactive session on the command's streams. SIGINT
// is delivered to the session instead of killing the process; stop restores
// the default behavior.
func newSession(cmd *cobra.Command) (*session.Session, func(), error) {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	stop := func() { signal.Stop(interrupts) }

	cfg := loadConfig()
	catalog, err := loadCatalog(cfg)
	if err != nil {
		stop()
		return nil, nil, err
	}
	s, err := session.New(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), interrupts, session.WithCatalog(catalog))
	if err != nil {
		stop()
		return nil, nil, err
	}
	return s, stop, nil
}

// loadCatalog returns the built-in themes merged with the configured themes
// file, if any.
func loadCatalog(cfg types.Config) (*theme.Catalog, error) {
	c := theme.Builtin()
	if cfg.ThemesFile != "" {
		if err := c.LoadFile(cfg.ThemesFile); err != nil {
			return nil, err
		}
	}
	return c, nil
}
