// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/formgen/internal/archive"
	"github.com/pdiddy/formgen/internal/bbcode"
)

var renderCmd = &cobra.Command{
	Use:   "render <record.json>",
	Short: "Render a saved form again, optionally with another theme",
	Long: `Render loads a saved JSON record and prints its BB-code. With --theme the
answers are rendered in a different theme from the catalog; with --save the
new markup is stored as a separate record unless it was saved before.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("theme", "", "theme key from the catalog (default: the record's own theme)")
	renderCmd.Flags().Bool("save", false, "save the rendered form to the output directory")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	themeKey, _ := cmd.Flags().GetString("theme")
	save, _ := cmd.Flags().GetBool("save")
	cfg := loadConfig()

	rec, err := archive.Load(args[0])
	if err != nil {
		return err
	}

	th := rec.Design
	if themeKey != "" {
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		var ok bool
		if th, ok = catalog.Lookup(themeKey); !ok {
			return fmt.Errorf("unknown theme %q", themeKey)
		}
	}

	markup := bbcode.Render(rec.Title, rec.Questions, th)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, markup)

	if !save {
		return nil
	}
	saved, err := archive.New(cfg.OutputDir).Save(archive.NewRecord(rec.Title, rec.Questions, th, markup))
	var dup *archive.DuplicateError
	switch {
	case errors.As(err, &dup):
		fmt.Fprintf(cmd.ErrOrStderr(), "already saved as %s\n", dup.File)
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "saved %s\n", saved.RecordPath)
	return nil
}
