// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/pdiddy/formgen/internal/archive"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved forms, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := archive.New(loadConfig().OutputDir).List()
		if err != nil {
			return err
		}
		writeHistory(cmd.OutOrStdout(), entries)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

const historyTimeLayout = "2006-01-02 15:04:05"

func writeHistory(w io.Writer, entries []archive.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No saved forms.")
		return
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		generated := e.Record.Generated
		if t := e.Record.GeneratedAt(); !t.IsZero() {
			generated = t.Format(historyTimeLayout)
		}
		rows = append(rows, []string{
			generated,
			e.Record.Title,
			strconv.Itoa(len(e.Record.Questions)),
			e.Record.Design.Name,
			filepath.Base(e.Path),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SAVED", "TITLE", "QUESTIONS", "THEME", "FILE").
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}
