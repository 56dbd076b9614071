package main

import (
	"fmt"
	"os"

	"github.com/julien-sobczak/zenpad/pkg/text"
	"github.com/spf13/cobra"
)

var formatSort bool
var formatDedupe bool
var formatTrim bool
var formatJSON bool
var formatWrite bool

func init() {
	formatCmd.Flags().BoolVarP(&formatSort, "sort", "", false, "sort lines")
	formatCmd.Flags().BoolVarP(&formatDedupe, "dedupe", "", false, "remove duplicate lines")
	formatCmd.Flags().BoolVarP(&formatTrim, "trim", "", false, "trim whitespace at both ends of every line")
	formatCmd.Flags().BoolVarP(&formatJSON, "json", "", false, "pretty-print a JSON document")
	formatCmd.Flags().BoolVarP(&formatWrite, "write", "w", false, "write the result to the file instead of stdout")
	rootCmd.AddCommand(formatCmd)
}

var formatCmd = &cobra.Command{
	Use:   "format FILE",
	Short: "Apply text tools to a file",
	Long: `Apply text tools to a file.

The tools run in this order: --json, --trim, --dedupe, --sort.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc := mustLoadDocument(args[0])

		result, err := formatText(doc.Content, formatOptions{
			JSON:   formatJSON,
			Trim:   formatTrim,
			Dedupe: formatDedupe,
			Sort:   formatSort,
		})
		exitOnError(err)

		if !formatWrite {
			fmt.Println(result)
			return
		}
		doc.SetContent(result)
		if !doc.Modified {
			fmt.Fprintf(os.Stderr, "%s unchanged\n", doc.Path)
			return
		}
		exitOnError(doc.Save())
	},
}

type formatOptions struct {
	JSON   bool
	Trim   bool
	Dedupe bool
	Sort   bool
}

func formatText(content string, opts formatOptions) (string, error) {
	if opts.JSON {
		formatted, err := text.FormatJSON(content)
		if err != nil {
			return "", err
		}
		content = formatted
	}
	if opts.Trim {
		content = text.TrimLines(content)
	}
	if opts.Dedupe {
		content = text.RemoveDuplicateLines(content)
	}
	if opts.Sort {
		content = text.SortLines(content)
	}
	return content, nil
}
