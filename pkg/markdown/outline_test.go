package markdown_test

import (
	"testing"

	"github.com/julien-sobczak/zenpad/pkg/markdown"
	"github.com/stretchr/testify/assert"
)

func TestIsHeading(t *testing.T) {
	var tests = []struct {
		line  string
		ok    bool
		title string
		level int
	}{
		{"# Title", true, "Title", 1},
		{"### Sub title", true, "Sub title", 3},
		{"#NoSpace", false, "", 0},
		{"####### Seven", false, "", 0},
		{"#", false, "", 0},
		{"Not # a heading", false, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			ok, title, level := markdown.IsHeading(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.title, title)
			assert.Equal(t, tt.level, level)
		})
	}
}

func TestOutline(t *testing.T) {
	md := "# Intro\n" +
		"text\n" +
		"## Setup\n" +
		"```\n" +
		"# not a heading\n" +
		"```\n" +
		"## Setup\n" +
		"#NoSpace\n" +
		"### Done!"

	headings := markdown.Outline(md)
	assert.Equal(t, []markdown.Heading{
		{Level: 1, Title: "Intro", Line: 1, Anchor: "intro"},
		{Level: 2, Title: "Setup", Line: 3, Anchor: "setup"},
		{Level: 2, Title: "Setup", Line: 7, Anchor: "setup-1"},
		{Level: 3, Title: "Done!", Line: 9, Anchor: "done"},
	}, headings)

	assert.Equal(t, "    Done!", headings[3].Indented())
	assert.Empty(t, markdown.Outline("no heading here"))
}

func TestToText(t *testing.T) {
	md := "# Title\n" +
		"\n" +
		"Some **bold** and [link](http://x).\n" +
		"\n" +
		"- [x] task\n" +
		"- item\n" +
		"\n" +
		"```\n" +
		"code *x*\n" +
		"```"

	assert.Equal(t, "Title\n\nSome bold and link.\n\ntask\nitem\n\ncode *x*", markdown.ToText(md))
	assert.Equal(t, "quoted ~ text", markdown.ToText("> quoted ~ text"))
	assert.Equal(t, "", markdown.ToText(""))
}
