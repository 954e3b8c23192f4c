package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/evanschultz/rfc-glossary/pkg/logger"
	"github.com/evanschultz/rfc-glossary/pkg/tags"
)

type FacetKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Clear  key.Binding
}

var DefaultFacetKeyMap = FacetKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "toggle tag"),
	),
	Clear: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear tags"),
	),
}

// FacetPanel shows the tag groups as toggleable chips.
type FacetPanel struct {
	groups     []tags.Group
	order      []tags.Tag // cursor order: groups flattened
	cursor     int
	controller *tags.Controller
	focused    bool

	headerStyle lipgloss.Style
	cursorStyle lipgloss.Style
	dimStyle    lipgloss.Style
}

// NewFacetPanel builds the panel over groups with an initial selection.
func NewFacetPanel(groups []tags.Group, selected tags.Selection) *FacetPanel {
	p := &FacetPanel{
		groups: groups,
		controller: tags.NewController(selected, func(s tags.Selection) {
			logger.Logger.Debugw("facet selection changed", logger.FieldSelection, s.IDs())
		}),
		headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")),
		cursorStyle: lipgloss.NewStyle().Reverse(true),
		dimStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
	for _, g := range groups {
		p.order = append(p.order, g.Tags...)
	}
	return p
}

func (p *FacetPanel) Focus() tea.Cmd {
	p.focused = true
	return nil
}

func (p *FacetPanel) Blur() tea.Cmd {
	p.focused = false
	return nil
}

func (p *FacetPanel) Focused() bool {
	return p.focused
}

// Selection returns the selection last passed in by the parent.
func (p *FacetPanel) Selection() tags.Selection {
	return p.controller.Value()
}

// SetSelection stores the parent's current selection.
func (p *FacetPanel) SetSelection(sel tags.Selection) {
	p.controller.SetValue(sel)
}

// Current returns the tag under the cursor.
func (p *FacetPanel) Current() (tags.Tag, bool) {
	if p.cursor < 0 || p.cursor >= len(p.order) {
		return tags.Tag{}, false
	}
	return p.order[p.cursor], true
}

// Update handles navigation and toggling. When a key changes the selection
// it returns the computed value and true; the parent stores it and hands it
// back with SetSelection before the next key arrives.
func (p *FacetPanel) Update(msg tea.Msg) (tags.Selection, bool) {
	if !p.focused {
		return nil, false
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false
	}

	switch {
	case key.Matches(keyMsg, DefaultFacetKeyMap.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(keyMsg, DefaultFacetKeyMap.Down):
		if p.cursor < len(p.order)-1 {
			p.cursor++
		}
	case key.Matches(keyMsg, DefaultFacetKeyMap.Toggle):
		if tag, ok := p.Current(); ok {
			return p.controller.Toggle(tag.ID), true
		}
	case key.Matches(keyMsg, DefaultFacetKeyMap.Clear):
		return p.controller.Clear(), true
	}
	return nil, false
}

// View renders every group with its chips.
func (p *FacetPanel) View() string {
	var b strings.Builder
	sel := p.controller.Value()
	i := 0
	for gi, g := range p.groups {
		if gi > 0 {
			b.WriteString("\n")
		}
		b.WriteString(p.headerStyle.Render(g.Category.Label()))
		b.WriteString("\n")
		for _, t := range g.Tags {
			mark := "[ ]"
			if sel.Contains(t.ID) {
				mark = "[x]"
			}
			chip := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color)).Render(t.Name)
			line := fmt.Sprintf("%s %s", mark, chip)
			if p.focused && i == p.cursor {
				line = p.cursorStyle.Render(fmt.Sprintf("%s %s", mark, t.Name))
			}
			b.WriteString(line)
			b.WriteString("\n")
			i++
		}
	}
	if sel.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(p.dimStyle.Render(fmt.Sprintf("%d selected • x clears", sel.Len())))
	}
	return b.String()
}
