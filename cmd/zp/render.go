package main

import (
	"fmt"

	"github.com/julien-sobczak/zenpad/internal/core"
	"github.com/julien-sobczak/zenpad/pkg/markdown"
	"github.com/spf13/cobra"
)

var renderOutput string
var renderStandalone bool
var renderEngine string
var renderAppearance string

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write the exported page to this file")
	renderCmd.Flags().BoolVarP(&renderStandalone, "standalone", "s", false, "print a complete HTML page instead of a fragment")
	renderCmd.Flags().StringVarP(&renderEngine, "engine", "e", "", "builtin or commonmark (default from config)")
	renderCmd.Flags().StringVarP(&renderAppearance, "appearance", "a", "", "system, light or dark")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Convert a note to HTML",
	Long: `Convert a note to HTML.

Markdown notes are converted using the configured engine. Plain text notes are escaped.
With --output, the page is exported with its title, dates and footer.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc := mustLoadDocument(args[0])
		applyAppearance(renderAppearance)

		engine := core.CurrentConfig().Engine()
		if renderEngine != "" {
			var err error
			engine, err = markdown.ParseEngine(renderEngine)
			exitOnError(err)
		}

		opts := core.PageOptions{
			Dark:   core.CurrentConfig().Dark(),
			Engine: engine,
		}

		if renderOutput != "" {
			exitOnError(core.ExportHTML(doc, renderOutput, opts))
			fmt.Printf("Exported %s\n", renderOutput)
			return
		}

		if !renderStandalone {
			fmt.Println(core.BodyHTML(doc, engine))
			return
		}
		page, err := core.RenderPage(doc, opts)
		exitOnError(err)
		fmt.Print(page)
	},
}
