package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/julien-sobczak/zenpad/internal/core"
	"github.com/julien-sobczak/zenpad/pkg/highlight"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
)

func init() {
	rootCmd.AddCommand(languagesCmd)
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the supported languages",
	Long:  `List the supported languages with their file extensions, including the ones declared in the config file.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(languagesTable(core.CurrentConfig().Registry()))
	},
}

// languagesTable renders the languages, their short names, extensions and pattern counts.
func languagesTable(registry *highlight.Registry) string {
	rows := [][]string{{"LANGUAGE", "NAME", "EXTENSIONS", "PATTERNS"}}
	for _, language := range highlight.Languages() {
		rows = append(rows, []string{
			language.String(),
			language.ShortName(),
			strings.Join(registry.Extensions(language), ", "),
			fmt.Sprint(len(highlight.PatternsFor(language))),
		})
	}
	return renderTable(rows)
}

// renderTable aligns the columns. The first row is the header.
func renderTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	columns := make([]string, len(rows[0]))
	for c := range columns {
		var cells []string
		for r, row := range rows {
			style := cellStyle
			if r == 0 {
				style = cellStyle.Copy().Inherit(headerStyle)
			}
			cells = append(cells, style.Render(row[c]))
		}
		columns[c] = lipgloss.JoinVertical(lipgloss.Left, cells...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}
