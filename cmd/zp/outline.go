package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var outlineFormat string
var outlineInteractive bool

func init() {
	outlineCmd.Flags().StringVarP(&outlineFormat, "format", "f", "text", "output format: text or json")
	outlineCmd.Flags().BoolVarP(&outlineInteractive, "interactive", "i", false, "choose a heading and open the file in $EDITOR at its line")
	rootCmd.AddCommand(outlineCmd)
}

var outlineCmd = &cobra.Command{
	Use:   "outline FILE",
	Short: "List the headings of a Markdown note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc := mustLoadDocument(args[0])
		if !doc.IsMarkdown() {
			warn("%s is not a Markdown file", doc.Path)
			return
		}

		headings := doc.Outline()
		if len(headings) == 0 {
			fmt.Println("No headings")
			return
		}

		if outlineInteractive {
			heading := ChooseHeading(doc.Title, headings)
			if heading == nil {
				return
			}
			exitOnError(OpenInEditor(doc.Path, heading.Line))
			return
		}

		switch outlineFormat {
		case "json":
			exitOnError(printJSON(os.Stdout, headings, ""))
		case "text":
			for _, heading := range headings {
				fmt.Printf("%4d  %s\n", heading.Line, heading.Indented())
			}
		default:
			exitOnError(fmt.Errorf("unknown format %q", outlineFormat))
		}
	},
}
