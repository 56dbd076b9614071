package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/julien-sobczak/zenpad/internal/core"
	"github.com/julien-sobczak/zenpad/pkg/highlight"
	"github.com/spf13/cobra"
)

var themesDump string

func init() {
	themesCmd.Flags().StringVarP(&themesDump, "dump", "", "", "print a preset (light or dark) as a YAML theme file")
	rootCmd.AddCommand(themesCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Show the color themes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if themesDump != "" {
			theme, err := highlight.ThemeByName(themesDump)
			exitOnError(err)
			dump, err := core.DumpThemeFile(theme, theme.Name)
			exitOnError(err)
			fmt.Println(dump)
			return
		}

		themes := []highlight.Theme{highlight.Light(), highlight.Dark()}
		if core.CurrentConfig().ConfigFile.Editor.ThemeFile != "" {
			custom, err := core.CurrentConfig().Theme()
			if err != nil {
				warn("Unable to load the custom theme: %v", err)
			} else {
				themes = append(themes, custom)
			}
		}
		var blocks []string
		for _, theme := range themes {
			blocks = append(blocks, themeSwatch(theme))
		}
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	},
}

// themeSwatch renders every token kind in its color on the theme background.
func themeSwatch(theme highlight.Theme) string {
	background := lipgloss.Color(theme.Background.Hex())
	var lines []string
	for _, kind := range highlight.TokenKinds() {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Color(kind).Hex())).
			Background(background)
		lines = append(lines, style.Render(fmt.Sprintf("%-12s %s", kind, theme.Color(kind).Hex())))
	}
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Foreground.Hex())).
		Background(background).
		Render(fmt.Sprintf("%-20s", strings.ToUpper(theme.Name)))
	return lipgloss.NewStyle().
		Padding(0, 2, 1, 0).
		Render(lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, lines...)...))
}
