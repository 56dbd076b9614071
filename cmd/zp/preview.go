package main

import (
	"fmt"
	"os"

	"github.com/julien-sobczak/zenpad/internal/core"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var previewAppearance string

func init() {
	previewCmd.Flags().StringVarP(&previewAppearance, "appearance", "a", "", "system, light or dark")
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview FILE",
	Short: "Open the preview of a note in the browser",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc := mustLoadDocument(args[0])
		applyAppearance(previewAppearance)
		if !doc.IsMarkdown() {
			warn("%s is not a Markdown file, previewing as plain text", doc.Path)
		}

		path, err := core.PreviewFile(doc, core.PageOptions{
			Dark:   core.CurrentConfig().Dark(),
			Engine: core.CurrentConfig().Engine(),
		})
		exitOnError(err)

		err = browser.OpenFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to open %s: %v\n", path, err)
			os.Exit(1)
		}
	},
}
