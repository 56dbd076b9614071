package main

import (
	"fmt"
	"os"

	"github.com/julien-sobczak/zenpad/pkg/markdown"
	"github.com/julien-sobczak/zenpad/pkg/text"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var statsFormat string
var statsStripMarkup bool

func init() {
	statsCmd.Flags().StringVarP(&statsFormat, "format", "f", "text", "output format: text, json or yaml")
	statsCmd.Flags().BoolVarP(&statsStripMarkup, "strip-markup", "", false, "ignore the Markdown syntax when counting")
	rootCmd.AddCommand(statsCmd)
}

// StatsReport is the output of the stats command.
type StatsReport struct {
	text.Statistics `yaml:",inline"`
	ReadingTime     string `json:"readingTime" yaml:"readingTime"`
	SpeakingTime    string `json:"speakingTime" yaml:"speakingTime"`
}

func NewStatsReport(content string) StatsReport {
	stats := text.Analyze(content)
	return StatsReport{
		Statistics:   stats,
		ReadingTime:  stats.ReadingTime(),
		SpeakingTime: stats.SpeakingTime(),
	}
}

var statsCmd = &cobra.Command{
	Use:   "stats FILE",
	Short: "Count words, characters and lines",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc := mustLoadDocument(args[0])

		content := doc.Content
		if statsStripMarkup && doc.IsMarkdown() {
			content = markdown.ToText(content)
		}
		report := NewStatsReport(content)

		switch statsFormat {
		case "json":
			exitOnError(printJSON(os.Stdout, report, ""))
		case "yaml":
			out, err := yaml.Marshal(report)
			exitOnError(err)
			fmt.Print(string(out))
		case "text":
			p := localePrinter()
			p.Printf("Words:       %d\n", report.Words)
			p.Printf("Characters:  %d (%d without spaces)\n", report.Characters, report.CharactersWithoutSpaces)
			p.Printf("Lines:       %d\n", report.Lines)
			p.Printf("Paragraphs:  %d\n", report.Paragraphs)
			p.Printf("Reading:     %s\n", report.ReadingTime)
			p.Printf("Speaking:    %s\n", report.SpeakingTime)
		default:
			exitOnError(fmt.Errorf("unknown format %q", statsFormat))
		}
	},
}
