// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/formgen/internal/form"
	"github.com/pdiddy/formgen/internal/theme"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Paste a form, answer it, and render it as BB-code",
	Long: `Create skips the main menu and starts the form workflow directly: paste
the form, prune questions, answer them, pick a theme, and save the result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, stop, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer stop()
		return s.RunCreate()
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print an example form in the expected format",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), form.ExampleForm)
	},
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the available color themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, e := range catalog.Entries() {
			fmt.Fprintf(out, "[%s] %s\n", e.Key, theme.Describe(e.Theme, cfg.NoColor))
		}
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check whether a newer formgen release is available",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, stop, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer stop()
		return s.CheckUpdates(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(updateCmd)
}
