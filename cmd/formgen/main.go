// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the formgen CLI.
//
// Running formgen without a subcommand opens the interactive menu. The
// subcommands expose single steps of the same workflow for scripting.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/formgen/internal/logger"
)

// version is set at build time via ldflags.
var version = "1.1.0"

// rootCmd is the base command for the formgen CLI.
var rootCmd = &cobra.Command{
	Use:   "formgen",
	Short: "Turn a pasted forum application form into styled BB-code",
	Long: `formgen reads an application form copied from a forum topic, finds its
questions, asks for an answer to each one, and renders the filled form as
BB-code in one of several color themes.

Without a subcommand formgen opens the interactive menu. Saved results are
written to the output directory as a .txt markup file and a .json record.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		if err := logger.Init(viper.GetString("log_level")); err != nil {
			return err
		}
		if viper.GetBool("no_color") {
			logger.DisableColors()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, stop, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer stop()
		return s.Run(cmd.Context())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./formgen.yaml or ~/.config/formgen/formgen.yaml)")
	flags.String("output-dir", "", "directory for saved forms (default form_blackrussia)")
	flags.String("themes-file", "", "YAML file with additional themes")
	flags.String("log-level", "", "log level: debug, info, warn, error (default warn)")
	flags.Bool("no-color", false, "disable colors and screen clearing")

	viper.BindPFlag("output_dir", flags.Lookup("output-dir"))
	viper.BindPFlag("themes_file", flags.Lookup("themes-file"))
	viper.BindPFlag("log_level", flags.Lookup("log-level"))
	viper.BindPFlag("no_color", flags.Lookup("no-color"))
}

func initConfig() {
	setDefaults()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("formgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "formgen"))
		}
	}

	viper.SetEnvPrefix("FORMGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Info("using config file", logger.Fields{"file": viper.ConfigFileUsed()})
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
