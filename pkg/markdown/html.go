package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

// ToHTML converts Markdown to an HTML fragment.
//
// The conversion is a fixed sequence of substitution passes, each one working on
// the output of the previous. It is not a CommonMark parser: consecutive quoted
// lines are not merged and ordered lists are rendered inside <ul>.
// The input is escaped first so user text never produces live tags.
// ToHTML never fails and keeps no state between calls.
func ToHTML(md string) string {
	var s stash

	html := escapeHTML(md)
	html = fencedCodeBlocks(html, &s)
	html = inlineCode(html, &s)
	html = headings(html)
	html = emphasis(html)
	html = strikethrough(html)
	html = images(html)
	html = links(html)
	html = horizontalRules(html)
	html = blockquotes(html)
	html = taskListItems(html)
	html = listItems(html)
	html = wrapLists(html)
	html = paragraphs(html)

	return s.restore(html)
}

var (
	reFencedCode = regexp.MustCompile("```([\\s\\S]*?)```")
	reFenceInfo  = regexp.MustCompile(`^([A-Za-z0-9_+#.-]*)\n`)
	reInlineCode = regexp.MustCompile("`([^`]+)`")

	// From ###### down to # so a shorter prefix never captures a longer one
	reHeadings = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^###### (.+)$`),
		regexp.MustCompile(`(?m)^##### (.+)$`),
		regexp.MustCompile(`(?m)^#### (.+)$`),
		regexp.MustCompile(`(?m)^### (.+)$`),
		regexp.MustCompile(`(?m)^## (.+)$`),
		regexp.MustCompile(`(?m)^# (.+)$`),
	}

	reEmphasis = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile(`\*\*\*(.+?)\*\*\*`), "<strong><em>${1}</em></strong>"},
		{regexp.MustCompile(`\*\*(.+?)\*\*`), "<strong>${1}</strong>"},
		{regexp.MustCompile(`\*(.+?)\*`), "<em>${1}</em>"},
		{regexp.MustCompile(`__(.+?)__`), "<strong>${1}</strong>"},
		{regexp.MustCompile(`_(.+?)_`), "<em>${1}</em>"},
	}

	reStrikethrough = regexp.MustCompile(`~~(.+?)~~`)
	reImage         = regexp.MustCompile(`!\[([^\]]*?)\]\(([^)]+)\)`)
	reLink          = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	reStarRule = regexp.MustCompile(`^\*\*\*+$`)
	reAnyRule  = regexp.MustCompile(`(?m)^(?:---+|\*\*\*+)$`)

	reBlockquote = regexp.MustCompile(`(?m)^&gt; (.+)$`)
	reTaskDone   = regexp.MustCompile(`(?m)^- \[x\] (.+)$`)
	reTaskTodo   = regexp.MustCompile(`(?m)^- \[ \] (.+)$`)
	reDashItem   = regexp.MustCompile(`(?m)^- (.+)$`)
	reStarItem   = regexp.MustCompile(`(?m)^\* (.+)$`)
	reNumberItem = regexp.MustCompile(`(?m)^\d+\. (.+)$`)
	reListRun    = regexp.MustCompile(`<li[ >].*?</li>(?:\n<li[ >].*?</li>)*`)
)

func fencedCodeBlocks(html string, s *stash) string {
	return reFencedCode.ReplaceAllStringFunc(html, func(match string) string {
		content := reFencedCode.FindStringSubmatch(match)[1]
		class := ""
		if info := reFenceInfo.FindStringSubmatch(content); info != nil {
			content = content[len(info[0]):]
			if info[1] != "" {
				class = ` class="language-` + info[1] + `"`
			}
		}
		return s.block("<pre><code" + class + ">" + content + "</code></pre>")
	})
}

func inlineCode(html string, s *stash) string {
	return reInlineCode.ReplaceAllStringFunc(html, func(match string) string {
		content := reInlineCode.FindStringSubmatch(match)[1]
		return s.inline("<code>" + content + "</code>")
	})
}

func headings(html string) string {
	for i, re := range reHeadings {
		level := strconv.Itoa(len(reHeadings) - i)
		html = re.ReplaceAllString(html, "<h"+level+">${1}</h"+level+">")
	}
	return html
}

// emphasis works line by line: every pattern is single-line and lines made
// only of stars are rules, not emphasis.
func emphasis(html string) string {
	lines := strings.Split(html, "\n")
	for i, line := range lines {
		if reStarRule.MatchString(line) {
			continue
		}
		for _, e := range reEmphasis {
			line = e.re.ReplaceAllString(line, e.repl)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func strikethrough(html string) string {
	return reStrikethrough.ReplaceAllString(html, "<del>${1}</del>")
}

// images run before links: once converted, an image no longer contains the
// bracket syntax the link pattern looks for.
func images(html string) string {
	return reImage.ReplaceAllString(html, `<img src="${2}" alt="${1}">`)
}

func links(html string) string {
	return reLink.ReplaceAllString(html, `<a href="${2}">${1}</a>`)
}

func horizontalRules(html string) string {
	return reAnyRule.ReplaceAllString(html, "<hr>")
}

func blockquotes(html string) string {
	return reBlockquote.ReplaceAllString(html, "<blockquote>${1}</blockquote>")
}

func taskListItems(html string) string {
	html = reTaskDone.ReplaceAllString(html, `<li class="task-list-item"><input type="checkbox" checked disabled> ${1}</li>`)
	return reTaskTodo.ReplaceAllString(html, `<li class="task-list-item"><input type="checkbox" disabled> ${1}</li>`)
}

func listItems(html string) string {
	html = reDashItem.ReplaceAllString(html, "<li>${1}</li>")
	html = reStarItem.ReplaceAllString(html, "<li>${1}</li>")
	return reNumberItem.ReplaceAllString(html, "<li>${1}</li>")
}

func wrapLists(html string) string {
	return reListRun.ReplaceAllString(html, "<ul>${0}</ul>")
}
