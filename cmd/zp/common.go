package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
	"github.com/itchyny/gojq"
	"github.com/julien-sobczak/zenpad/internal/core"
	"github.com/julien-sobczak/zenpad/pkg/highlight"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func CheckConfig() {
	err := core.CurrentConfig().Check()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// exitOnError prints the error and stops the command.
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// warn prints a warning on stderr, in yellow when supported.
func warn(format string, a ...any) {
	color.New(color.FgYellow).Fprintf(os.Stderr, format+"\n", a...)
}

// mustLoadDocument reads the document passed as argument.
func mustLoadDocument(path string) *core.Document {
	doc, err := core.LoadDocument(path)
	exitOnError(err)
	return doc
}

// applyAppearance overrides the configured appearance when the flag is set.
func applyAppearance(appearance string) {
	if appearance == "" {
		return
	}
	exitOnError(core.CurrentConfig().OverrideAppearance(appearance))
}

// currentTheme returns the theme for the configured appearance.
func currentTheme() highlight.Theme {
	theme, err := core.CurrentConfig().Theme()
	exitOnError(err)
	return theme
}

// documentLanguage resolves the language from the flag or the document path.
func documentLanguage(doc *core.Document, name string) highlight.Language {
	if name == "" {
		return doc.Language(core.CurrentConfig().Registry())
	}
	lang, err := highlight.ParseLanguage(name)
	exitOnError(err)
	return lang
}

// query evaluates a jq expression against a value serialized in JSON.
func query(value any, expr string) ([]any, error) {
	q, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}

	// gojq only accepts the types produced by encoding/json
	b, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var data any
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, err
	}

	var values []any
	iter := q.Run(data)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// printJSON writes every value as indented JSON.
// When a query is present, only its results are printed.
func printJSON(w io.Writer, value any, expr string) error {
	values := []any{value}
	if expr != "" {
		var err error
		values, err = query(value, expr)
		if err != nil {
			return err
		}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	for _, v := range values {
		if err := encoder.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

// localePrinter formats numbers using the locale of $LANG.
func localePrinter() *message.Printer {
	return message.NewPrinter(localeTag(os.Getenv("LANG")))
}

// localeTag converts a POSIX locale (ex: "fr_FR.UTF-8") to a language tag.
func localeTag(locale string) language.Tag {
	locale, _, _ = strings.Cut(locale, ".")
	locale, _, _ = strings.Cut(locale, "@")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return language.English
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.English
	}
	return tag
}

// OpenInEditor opens the file in $EDITOR, at the given line when possible.
func OpenInEditor(path string, line int) error {
	editor, ok := os.LookupEnv("EDITOR")
	if !ok || editor == "" {
		editor = "vi"
	}

	var cmdStr string
	if editor == "code" {
		cmdStr = fmt.Sprintf("code -g %q:%d", path, line)
	} else {
		cmdStr = fmt.Sprintf("$EDITOR +%d %q", line, path)
	}
	core.CurrentLogger().Debugf("Running %s", cmdStr)

	cmd := exec.Command("sh", "-c", cmdStr)
	cmd.Env = append(os.Environ(), "EDITOR="+editor)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
