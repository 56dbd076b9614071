package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/julien-sobczak/zenpad/pkg/markdown"
)

/*
 * All BubbleTea-related code is present in this file to make easy to switch to another library someday.
 */

var (
	listWidth             = 40
	listHeight            = 16
	listTitleStyle        = lipgloss.NewStyle().MarginLeft(2)
	listItemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	listSelectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	listLineStyle         = lipgloss.NewStyle().Faint(true)

	helpStyle = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

/*
 * Heading Selection
 */

// ChooseHeading lets the user pick a heading. It returns nil when the user quits.
func ChooseHeading(title string, headings []markdown.Heading) *markdown.Heading {
	res, err := tea.NewProgram(NewHeadingModel(title, headings)).Run()
	if err != nil {
		log.Fatal(err)
	}
	model := res.(HeadingModel)
	if model.choice < 0 {
		return nil
	}
	return &headings[model.choice]
}

func NewHeadingModel(title string, headings []markdown.Heading) HeadingModel {
	items := []list.Item{}
	for i, heading := range headings {
		items = append(items, HeadingItem{
			index:   i,
			heading: heading,
		})
	}

	l := list.New(items, headingDelegate{}, listWidth, listHeight)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowPagination(len(items) > listHeight)
	l.Styles.Title = listTitleStyle
	l.Styles.HelpStyle = helpStyle

	return HeadingModel{list: l, choice: -1}
}

type HeadingItem struct {
	index   int
	heading markdown.Heading
}

func (i HeadingItem) FilterValue() string { return i.heading.Title }

type headingDelegate struct{}

func (d headingDelegate) Height() int                             { return 1 }
func (d headingDelegate) Spacing() int                            { return 0 }
func (d headingDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d headingDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(HeadingItem)
	if !ok {
		return
	}

	label := i.heading.Indented() + " " + listLineStyle.Render(fmt.Sprintf(":%d", i.heading.Line))
	fn := listItemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return listSelectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(label))
}

type HeadingModel struct {
	list   list.Model
	choice int
}

func (m HeadingModel) Init() tea.Cmd {
	return nil
}

func (m HeadingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch keypress := msg.String(); keypress {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "enter":
			i, ok := m.list.SelectedItem().(HeadingItem)
			if ok {
				m.choice = i.index
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m HeadingModel) View() string {
	if m.choice >= 0 {
		return ""
	}
	return "\n" + m.list.View()
}
