package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"github.com/evanschultz/rfc-glossary/pkg/glossary"
	"github.com/evanschultz/rfc-glossary/pkg/models"
)

// Messages
// The key names what was rendered so a slow render cannot overwrite a
// newer selection.
type detailRenderedMsg struct {
	key     string
	content string
}

type articleRenderedMsg struct {
	slug    string
	content string
}

type errMsg struct {
	err error
}

type listID int

const (
	termListID listID = iota
	articleListID
)

// listMsg carries a message produced by one list's command back to that
// list only. list.FilterMatchesMsg does not say which list it belongs to.
type listMsg struct {
	target listID
	msg    tea.Msg
}

// routeTo wraps cmd so every message it yields comes back as a listMsg for
// target. Batches are unpacked so each inner command is wrapped too.
func routeTo(target listID, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		switch msg := cmd().(type) {
		case nil:
			return nil
		case tea.QuitMsg:
			return msg
		case tea.BatchMsg:
			out := make(tea.BatchMsg, 0, len(msg))
			for _, c := range msg {
				if c != nil {
					out = append(out, routeTo(target, c))
				}
			}
			return out
		default:
			return listMsg{target: target, msg: msg}
		}
	}
}

// List items
type termItem struct {
	term glossary.Term
}

func (i termItem) FilterValue() string { return i.term.Term + " " + i.term.ID }
func (i termItem) Title() string       { return i.term.Term }
func (i termItem) Description() string {
	return fmt.Sprintf("%s • %s", i.term.Category, shorten(i.term.Definition, 90))
}

type articleItem struct {
	article models.Article
}

func (i articleItem) FilterValue() string { return i.article.Title }
func (i articleItem) Title() string       { return i.article.Title }
func (i articleItem) Description() string {
	return fmt.Sprintf("%s • %d", i.article.RFCLabel(), i.article.Year)
}

func termKey(t glossary.Term) string {
	return t.ID + "\x00" + t.Definition
}

// shorten collapses whitespace and cuts s to at most n terminal cells.
func shorten(s string, n int) string {
	return truncate.StringWithTail(strings.Join(strings.Fields(s), " "), uint(n), "...")
}
