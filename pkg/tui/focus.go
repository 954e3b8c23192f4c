package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FocusableComponent represents a component that can receive focus
type FocusableComponent interface {
	// Focus gives focus to the component
	Focus() tea.Cmd
	// Blur removes focus from the component
	Blur() tea.Cmd
	// Focused returns whether the component currently has focus
	Focused() bool
}

// panelFocus gives bubbles components without their own focus state
// (list, viewport) something the FocusManager can drive.
type panelFocus struct {
	focused bool
}

func (p *panelFocus) Focus() tea.Cmd {
	p.focused = true
	return nil
}

func (p *panelFocus) Blur() tea.Cmd {
	p.focused = false
	return nil
}

func (p *panelFocus) Focused() bool {
	return p.focused
}

// FocusManager cycles focus through the panels of one view
type FocusManager struct {
	components []FocusableComponent
	current    int
}

// NewFocusManager focuses the first component
func NewFocusManager(components ...FocusableComponent) *FocusManager {
	fm := &FocusManager{components: components}
	if len(components) > 0 {
		components[0].Focus()
	}
	return fm
}

// Next moves focus to the next component
func (fm *FocusManager) Next() tea.Cmd {
	if len(fm.components) == 0 {
		return nil
	}
	return fm.SetFocus((fm.current + 1) % len(fm.components))
}

// Previous moves focus to the previous component
func (fm *FocusManager) Previous() tea.Cmd {
	if len(fm.components) == 0 {
		return nil
	}
	return fm.SetFocus((fm.current - 1 + len(fm.components)) % len(fm.components))
}

// SetFocus sets focus to a specific component index
func (fm *FocusManager) SetFocus(index int) tea.Cmd {
	if index < 0 || index >= len(fm.components) {
		return nil
	}
	fm.components[fm.current].Blur()
	fm.current = index
	return fm.components[fm.current].Focus()
}

// Current returns the currently focused component index
func (fm *FocusManager) Current() int {
	return fm.current
}

// FocusStyles defines styles for focused/unfocused states
type FocusStyles struct {
	Focused   lipgloss.Style
	Unfocused lipgloss.Style
}

// DefaultFocusStyles returns the rounded-border pane styles
func DefaultFocusStyles() FocusStyles {
	return FocusStyles{
		Focused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		Unfocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}

// Pane renders content in the focused or unfocused style.
func (s FocusStyles) Pane(c FocusableComponent, width, height int, content string) string {
	style := s.Unfocused
	if c.Focused() {
		style = s.Focused
	}
	return style.Width(max(0, width-4)).Height(max(0, height-2)).Render(content)
}
