package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/evanschultz/rfc-glossary/pkg/article"
	"github.com/evanschultz/rfc-glossary/pkg/logger"
)

type EditorMode int

const (
	ModeEdit EditorMode = iota
	ModePreview
)

type AnnotatorKeyMap struct {
	TogglePreview key.Binding
	Mention       key.Binding
	Reset         key.Binding
}

var DefaultAnnotatorKeyMap = AnnotatorKeyMap{
	TogglePreview: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "toggle preview"),
	),
	Mention: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "insert [[mention]]"),
	),
	Reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reset sample"),
	),
}

// SampleDraft seeds the scratchpad.
const SampleDraft = `# Scratchpad

Type [[keywords]] in double brackets. A [[TCP]] segment rides inside an
[[IP]] packet; [[tls|TLS]] sits on top. Misses like [[gopher]] stay plain.
`

// Annotator is a markdown scratchpad whose preview is the annotated render.
type Annotator struct {
	textarea textarea.Model
	preview  string
	mode     EditorMode
	width    int
	height   int
	renderer *article.Renderer
	resolver article.TermResolver
	last     article.Result

	titleStyle lipgloss.Style
	modeStyle  lipgloss.Style
	helpStyle  lipgloss.Style
	missStyle  lipgloss.Style
}

func NewAnnotator(resolver article.TermResolver, renderer *article.Renderer) Annotator {
	ta := textarea.New()
	ta.Placeholder = "Write markdown with [[mentions]]..."
	ta.ShowLineNumbers = false
	ta.SetValue(SampleDraft)

	return Annotator{
		textarea: ta,
		mode:     ModeEdit,
		renderer: renderer,
		resolver: resolver,
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")),
		modeStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		missStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")),
	}
}

func (m Annotator) Init() tea.Cmd {
	return textarea.Blink
}

func (m *Annotator) Focus() tea.Cmd {
	return m.textarea.Focus()
}

func (m *Annotator) Blur() tea.Cmd {
	m.textarea.Blur()
	return nil
}

func (m *Annotator) Focused() bool {
	return m.textarea.Focused()
}

// Mode reports whether the scratchpad is editing or previewing.
func (m Annotator) Mode() EditorMode {
	return m.mode
}

func (m Annotator) Update(msg tea.Msg) (Annotator, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultAnnotatorKeyMap.TogglePreview):
			if m.mode == ModeEdit {
				m.mode = ModePreview
				m.updatePreview()
			} else {
				m.mode = ModeEdit
			}

		case key.Matches(msg, DefaultAnnotatorKeyMap.Mention):
			if m.mode == ModeEdit {
				m.insertMention()
			}

		case key.Matches(msg, DefaultAnnotatorKeyMap.Reset):
			m.SetValue(SampleDraft)

		default:
			if m.mode == ModeEdit {
				var cmd tea.Cmd
				m.textarea, cmd = m.textarea.Update(msg)
				cmds = append(cmds, cmd)
			}
		}

	default:
		if m.mode == ModeEdit {
			var cmd tea.Cmd
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Annotator) View() string {
	var content, modeText string
	if m.mode == ModeEdit {
		content = m.textarea.View()
		modeText = "Edit Mode"
	} else {
		content = m.preview
		modeText = "Preview Mode"
	}

	title := m.titleStyle.Render("Annotate")
	mode := m.modeStyle.Render(modeText)
	titleBar := lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		strings.Repeat(" ", max(0, m.width-lipgloss.Width(title)-lipgloss.Width(mode))),
		mode,
	)

	status := m.helpStyle.Render("ctrl+p: preview • ctrl+k: mention • ctrl+r: reset")
	if m.mode == ModePreview {
		status = m.helpStyle.Render(fmt.Sprintf("%d resolved", len(m.last.Annotations)))
		if n := len(m.last.Unresolved); n > 0 {
			status += m.missStyle.Render(fmt.Sprintf(" • %d unresolved", n))
		}
		status += m.helpStyle.Render(" • ctrl+p: edit")
	}

	return lipgloss.JoinVertical(lipgloss.Left, titleBar, content, status)
}

// SetSize sets the inner area the annotator may draw in.
func (m *Annotator) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.textarea.SetWidth(width)
	m.textarea.SetHeight(max(1, height-2))

	if m.renderer != nil && width > 0 {
		r, err := m.renderer.Resize(width)
		if err != nil {
			logger.Logger.Warnw("resize renderer", logger.FieldError, err)
			return
		}
		m.renderer = r
	}
	if m.mode == ModePreview {
		m.updatePreview()
	}
}

func (m *Annotator) SetValue(value string) {
	m.textarea.SetValue(value)
	if m.mode == ModePreview {
		m.updatePreview()
	}
}

func (m Annotator) Value() string {
	return m.textarea.Value()
}

// Result is the annotation computed for the last preview.
func (m Annotator) Result() article.Result {
	return m.last
}

func (m *Annotator) updatePreview() {
	m.last = article.Annotate(m.textarea.Value(), m.resolver)
	for _, miss := range m.last.Unresolved {
		logger.Logger.Debugw("unresolved mention", logger.FieldKeyword, miss.Keyword)
	}

	if m.renderer == nil {
		m.preview = m.last.Markdown
		return
	}
	rendered, err := m.renderer.Render(m.last.Markdown)
	if err != nil {
		m.preview = "Error rendering markdown: " + err.Error()
		return
	}
	m.preview = rendered
}

// insertMention appends an empty mention and parks the cursor inside it.
func (m *Annotator) insertMention() {
	m.textarea.InsertString("[[]]")
	info := m.textarea.LineInfo()
	m.textarea.SetCursor(max(0, info.StartColumn+info.ColumnOffset-2))
}
