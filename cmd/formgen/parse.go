// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/formgen/internal/form"
	"github.com/pdiddy/formgen/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Extract the questions from a form without answering it",
	Long: `Parse reads form text from a file (or stdin when no file is given),
extracts the title and questions, and prints them with their detected field
types. Use --format to choose table, json, or yaml output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "table", "output format: table, json, yaml")
	rootCmd.AddCommand(parseCmd)
}

// parsedForm is the machine-readable output of parse.
type parsedForm struct {
	Title     string           `json:"title" yaml:"title"`
	Questions []types.Question `json:"questions" yaml:"questions"`
}

func runParse(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	raw, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	title, questions, err := form.Parse(string(raw))
	if err != nil {
		return err
	}
	return writeParsed(cmd.OutOrStdout(), parsedForm{Title: title, Questions: questions}, format)
}

// readInput returns the contents of args[0], or stdin when args is empty.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading form: %w", err)
	}
	return data, nil
}

func writeParsed(w io.Writer, p parsedForm, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(p)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()

	case "table", "":
		rows := make([][]string, 0, len(p.Questions))
		for _, q := range p.Questions {
			rows = append(rows, []string{strconv.Itoa(q.Number), string(q.Type), q.Clean})
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("#", "TYPE", "QUESTION").
			Rows(rows...)
		fmt.Fprintf(w, "%s\n%s\n", p.Title, t.Render())
		return nil

	default:
		return fmt.Errorf("unknown format %q (expected table|json|yaml)", format)
	}
}
