package main

import (
	"fmt"
	"os"

	"github.com/julien-sobczak/zenpad/internal/core"
	"github.com/julien-sobczak/zenpad/pkg/highlight"
	"github.com/spf13/cobra"
)

var highlightLanguage string
var highlightAppearance string
var highlightFormat string
var highlightQuery string

func init() {
	highlightCmd.Flags().StringVarP(&highlightLanguage, "language", "l", "", "language to use instead of detecting it from the file extension")
	highlightCmd.Flags().StringVarP(&highlightAppearance, "appearance", "a", "", "system, light or dark")
	highlightCmd.Flags().StringVarP(&highlightFormat, "format", "f", "ansi", "output format: ansi, html or json")
	highlightCmd.Flags().StringVarP(&highlightQuery, "query", "q", "", "jq expression applied to the json output")
	rootCmd.AddCommand(highlightCmd)
}

var highlightCmd = &cobra.Command{
	Use:   "highlight FILE",
	Short: "Highlight a file",
	Long:  `Color a file using the patterns of its language and the current theme.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if highlightQuery != "" && highlightFormat != "json" {
			fmt.Println("--query requires --format json")
			os.Exit(1)
		}

		doc := mustLoadDocument(args[0])
		applyAppearance(highlightAppearance)
		language := documentLanguage(doc, highlightLanguage)
		core.CurrentLogger().Debugf("Highlighting %q as %s", doc.Path, language)

		h := highlight.NewHighlighter(
			highlight.WithFont(core.CurrentConfig().Font()),
			highlight.OnInvalidPattern(func(err *highlight.InvalidPatternError) {
				core.CurrentLogger().Warnf("Skipping pattern: %v", err)
			}),
		)
		output := h.Highlight(doc.Content, language, currentTheme())

		var err error
		switch highlightFormat {
		case "ansi":
			err = highlight.RenderANSI(os.Stdout, output)
		case "html":
			err = highlight.RenderHTML(os.Stdout, output)
			fmt.Println()
		case "json":
			err = printJSON(os.Stdout, output, highlightQuery)
		default:
			err = fmt.Errorf("unknown format %q", highlightFormat)
		}
		exitOnError(err)
	},
}
