package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/evanschultz/rfc-glossary/pkg/article"
	"github.com/evanschultz/rfc-glossary/pkg/glossary"
	"github.com/evanschultz/rfc-glossary/pkg/logger"
	"github.com/evanschultz/rfc-glossary/pkg/models"
	"github.com/evanschultz/rfc-glossary/pkg/tags"
	"github.com/evanschultz/rfc-glossary/pkg/tui/components"
)

type view int

const (
	viewGlossary view = iota
	viewArticles
	viewAnnotate
)

var viewNames = []string{"Glossary", "Articles", "Annotate"}

const (
	headerHeight = 1
	helpHeight   = 1
	facetWidth   = 30
)

type Model struct {
	glossary   *glossary.Glossary
	tagCatalog *tags.Catalog
	articles   *article.Index

	// Each detail pane wraps at its own width.
	renderer        *article.Renderer
	articleRenderer *article.Renderer

	view          view
	width         int
	height        int
	contentHeight int
	ready         bool
	help          help.Model
	styles        FocusStyles

	// Glossary view
	termList       list.Model
	detail         viewport.Model
	categories     []glossary.Category
	categoryFilter int // 0 is "all", otherwise categories[categoryFilter-1]
	shownTerm      string
	termPanel      *panelFocus
	detailPanel    *panelFocus
	glossaryFocus  *FocusManager
	termPaneWidth  int
	detailPaneWide int

	// Articles view
	facets             *components.FacetPanel
	selection          tags.Selection
	articleList        list.Model
	articleDetail      viewport.Model
	shownArticle       string
	articlePanel       *panelFocus
	articleDetailPanel *panelFocus
	articlesFocus      *FocusManager
	articlePaneWidth   int
	articleDetailWide  int

	// Annotate view
	annotator components.Annotator

	err error
}

type keyMap struct {
	NextPanel    key.Binding
	PrevPanel    key.Binding
	PrevCategory key.Binding
	NextCategory key.Binding
	Open         key.Binding
	Back         key.Binding
	Edit         key.Binding
	Glossary     key.Binding
	Articles     key.Binding
	Annotate     key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
}

var keys = keyMap{
	NextPanel: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next panel"),
	),
	PrevPanel: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous panel"),
	),
	PrevCategory: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev category"),
	),
	NextCategory: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next category"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "stop editing"),
	),
	Edit: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "edit"),
	),
	Glossary: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "glossary"),
	),
	Articles: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "articles"),
	),
	Annotate: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "annotate"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

// NewModel builds the browser over an already constructed glossary, tag
// catalog and article index.
func NewModel(g *glossary.Glossary, tagCatalog *tags.Catalog, articles *article.Index, renderer *article.Renderer) Model {
	m := Model{
		glossary:        g,
		tagCatalog:      tagCatalog,
		articles:        articles,
		renderer:        renderer,
		articleRenderer: renderer,
		view:            viewGlossary,
		help:            help.New(),
		styles:          DefaultFocusStyles(),
		categories:      g.Categories.Categories(),
		selection:       tags.Selection{},
	}

	m.termList = list.New(nil, list.NewDefaultDelegate(), 0, 0)
	m.termList.SetShowHelp(false)
	m.termList.SetFilteringEnabled(true)
	m.detail = viewport.New(0, 0)
	m.termPanel = &panelFocus{}
	m.detailPanel = &panelFocus{}
	m.glossaryFocus = NewFocusManager(m.termPanel, m.detailPanel)
	m.setTermItems()

	m.facets = components.NewFacetPanel(tagCatalog.Groups(), m.selection)
	m.articleList = list.New(nil, list.NewDefaultDelegate(), 0, 0)
	m.articleList.SetShowHelp(false)
	m.articleList.SetFilteringEnabled(true)
	m.articleDetail = viewport.New(0, 0)
	m.articlePanel = &panelFocus{}
	m.articleDetailPanel = &panelFocus{}
	m.articlesFocus = NewFocusManager(m.facets, m.articlePanel, m.articleDetailPanel)
	m.setArticleItems()

	m.annotator = components.NewAnnotator(g.Resolver, renderer)

	return m
}

func (m Model) Init() tea.Cmd {
	return m.annotator.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.calculateLayout()
		m.updateComponentSizes()
		// Wrap width changed, so both details render again.
		m.shownTerm, m.shownArticle = "", ""
		return m, tea.Batch(m.syncTermDetail(), m.syncArticleDetail())

	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			return m, tea.Quit
		}
		if !m.capturingInput() {
			switch {
			case key.Matches(msg, keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, keys.Glossary):
				return m, m.switchView(viewGlossary)
			case key.Matches(msg, keys.Articles):
				return m, m.switchView(viewArticles)
			case key.Matches(msg, keys.Annotate):
				return m, m.switchView(viewAnnotate)
			case key.Matches(msg, keys.NextPanel) && m.view != viewAnnotate:
				return m, m.focusNext()
			case key.Matches(msg, keys.PrevPanel) && m.view != viewAnnotate:
				return m, m.focusPrevious()
			}
		}
		return m.updateView(msg)

	case detailRenderedMsg:
		if msg.key == m.shownTerm {
			m.detail.SetContent(msg.content)
			m.detail.GotoTop()
		}
		return m, nil

	case articleRenderedMsg:
		if msg.slug == m.shownArticle {
			m.articleDetail.SetContent(msg.content)
			m.articleDetail.GotoTop()
		}
		return m, nil

	case listMsg:
		var cmd tea.Cmd
		switch msg.target {
		case termListID:
			m.termList, cmd = m.termList.Update(msg.msg)
			return m, tea.Batch(routeTo(termListID, cmd), m.syncTermDetail())
		case articleListID:
			m.articleList, cmd = m.articleList.Update(msg.msg)
			return m, tea.Batch(routeTo(articleListID, cmd), m.syncArticleDetail())
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		logger.Logger.Errorw("tui error", logger.FieldError, msg.err)
		return m, nil
	}

	// List messages arrive wrapped in listMsg; what is left (cursor blink)
	// belongs to the scratchpad.
	var cmd tea.Cmd
	m.annotator, cmd = m.annotator.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.view {
	case viewGlossary:
		if m.termList.FilterState() != list.Filtering {
			switch {
			case key.Matches(msg, keys.PrevCategory):
				return m, m.cycleCategory(-1)
			case key.Matches(msg, keys.NextCategory):
				return m, m.cycleCategory(1)
			case key.Matches(msg, keys.Open) && m.termPanel.Focused():
				return m, m.glossaryFocus.SetFocus(1)
			}
		}
		if m.termPanel.Focused() {
			m.termList, cmd = m.termList.Update(msg)
			return m, tea.Batch(routeTo(termListID, cmd), m.syncTermDetail())
		}
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd

	case viewArticles:
		switch {
		case m.facets.Focused():
			if sel, changed := m.facets.Update(msg); changed {
				return m, m.applySelection(sel)
			}
			return m, nil
		case m.articlePanel.Focused():
			if key.Matches(msg, keys.Open) && m.articleList.FilterState() != list.Filtering {
				return m, m.articlesFocus.SetFocus(2)
			}
			m.articleList, cmd = m.articleList.Update(msg)
			return m, tea.Batch(routeTo(articleListID, cmd), m.syncArticleDetail())
		default:
			m.articleDetail, cmd = m.articleDetail.Update(msg)
			return m, cmd
		}

	case viewAnnotate:
		switch {
		case key.Matches(msg, keys.Back) && m.annotator.Focused():
			return m, m.annotator.Blur()
		case key.Matches(msg, keys.Edit) && !m.annotator.Focused():
			return m, m.annotator.Focus()
		}
		m.annotator, cmd = m.annotator.Update(msg)
		return m, cmd
	}

	return m, nil
}

// capturingInput reports whether keystrokes belong to a text input, in
// which case the global shortcuts stay out of the way.
func (m Model) capturingInput() bool {
	switch m.view {
	case viewGlossary:
		return m.termList.FilterState() == list.Filtering
	case viewArticles:
		return m.articleList.FilterState() == list.Filtering
	case viewAnnotate:
		return m.annotator.Focused() && m.annotator.Mode() == components.ModeEdit
	}
	return false
}

func (m *Model) switchView(v view) tea.Cmd {
	if m.view == v {
		return nil
	}
	if m.view == viewAnnotate {
		m.annotator.Blur()
	}
	m.view = v
	if v == viewAnnotate {
		return m.annotator.Focus()
	}
	return nil
}

func (m *Model) focusNext() tea.Cmd {
	if m.view == viewArticles {
		return m.articlesFocus.Next()
	}
	return m.glossaryFocus.Next()
}

func (m *Model) focusPrevious() tea.Cmd {
	if m.view == viewArticles {
		return m.articlesFocus.Previous()
	}
	return m.glossaryFocus.Previous()
}

// applySelection stores the selection the facet panel computed and refilters
// the article list in the same update, so the next toggle starts from it.
func (m *Model) applySelection(sel tags.Selection) tea.Cmd {
	m.selection = sel
	m.facets.SetSelection(sel)
	return tea.Batch(m.setArticleItems(), m.syncArticleDetail())
}

// cycleCategory steps the category filter through "all" and every populated
// category.
func (m *Model) cycleCategory(delta int) tea.Cmd {
	n := len(m.categories) + 1
	m.categoryFilter = ((m.categoryFilter+delta)%n + n) % n
	cmd := m.setTermItems()
	logger.Logger.Debugw("category filter", logger.FieldCategory, m.categoryLabel())
	return tea.Batch(cmd, m.syncTermDetail())
}

func (m Model) categoryLabel() string {
	if m.categoryFilter == 0 {
		return "All"
	}
	return m.categories[m.categoryFilter-1].Label()
}

func (m *Model) setTermItems() tea.Cmd {
	var terms []glossary.Term
	if m.categoryFilter == 0 {
		terms = m.glossary.Catalog.Terms()
	} else {
		terms = m.glossary.Categories.ByCategory(m.categories[m.categoryFilter-1])
	}

	items := make([]list.Item, len(terms))
	for i, t := range terms {
		items[i] = termItem{term: t}
	}
	m.termList.Title = fmt.Sprintf("Glossary · %s (%d)", m.categoryLabel(), len(terms))
	m.termList.ResetSelected()
	return routeTo(termListID, m.termList.SetItems(items))
}

func (m *Model) setArticleItems() tea.Cmd {
	matched := m.articles.Filter(m.selection)
	items := make([]list.Item, len(matched))
	for i, a := range matched {
		items[i] = articleItem{article: a}
	}
	m.articleList.Title = fmt.Sprintf("Articles (%d/%d)", len(matched), len(m.articles.Articles()))
	m.articleList.ResetSelected()
	return routeTo(articleListID, m.articleList.SetItems(items))
}

// syncTermDetail renders the selected term if it is not the one on screen.
func (m *Model) syncTermDetail() tea.Cmd {
	item, ok := m.termList.SelectedItem().(termItem)
	if !ok {
		if m.shownTerm != "" || len(m.termList.Items()) == 0 {
			m.shownTerm = ""
			m.detail.SetContent("No term selected.")
		}
		return nil
	}
	k := termKey(item.term)
	if k == m.shownTerm || !m.ready {
		return nil
	}
	m.shownTerm = k
	return m.renderTerm(item.term, k)
}

func (m *Model) syncArticleDetail() tea.Cmd {
	item, ok := m.articleList.SelectedItem().(articleItem)
	if !ok {
		m.shownArticle = ""
		m.articleDetail.SetContent("No article carries every selected tag.")
		return nil
	}
	if item.article.Slug == m.shownArticle || !m.ready {
		return nil
	}
	m.shownArticle = item.article.Slug
	return m.renderArticle(item.article)
}

// Commands
func (m Model) renderTerm(t glossary.Term, k string) tea.Cmd {
	renderer := m.renderer
	related := m.glossary.Relations.RelatedOf(t)
	return func() tea.Msg {
		out, err := renderer.Render(article.TermCard(t, related))
		if err != nil {
			return errMsg{err}
		}
		return detailRenderedMsg{key: k, content: out}
	}
}

func (m Model) renderArticle(a models.Article) tea.Cmd {
	renderer := m.articleRenderer
	catalog := m.tagCatalog
	resolver := m.glossary.Resolver
	return func() tea.Msg {
		out, err := renderer.Render(article.ArticleCard(a, catalog, resolver))
		if err != nil {
			return errMsg{err}
		}
		return articleRenderedMsg{slug: a.Slug, content: out}
	}
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress ctrl+c to quit.", m.err)
	}
	if !m.ready || m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var content string
	switch m.view {
	case viewGlossary:
		content = lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.styles.Pane(m.termPanel, m.termPaneWidth, m.contentHeight, m.termList.View()),
			m.styles.Pane(m.detailPanel, m.detailPaneWide, m.contentHeight, m.detail.View()),
		)
	case viewArticles:
		content = lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.styles.Pane(m.facets, facetWidth, m.contentHeight, m.facets.View()),
			m.styles.Pane(m.articlePanel, m.articlePaneWidth, m.contentHeight, m.articleList.View()),
			m.styles.Pane(m.articleDetailPanel, m.articleDetailWide, m.contentHeight, m.articleDetail.View()),
		)
	case viewAnnotate:
		content = m.styles.Pane(&m.annotator, m.width, m.contentHeight, m.annotator.View())
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Align(lipgloss.Center).
		Width(m.width)

	return lipgloss.JoinVertical(
		lipgloss.Top,
		m.renderTabs(),
		content,
		helpStyle.Render(m.help.ShortHelpView(m.helpKeys())),
	)
}

func (m Model) renderTabs() string {
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
	inactive := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1)

	tabs := make([]string, len(viewNames))
	for i, name := range viewNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if view(i) == m.view {
			tabs[i] = active.Render(label)
		} else {
			tabs[i] = inactive.Render(label)
		}
	}
	if m.view == viewArticles && m.selection.Len() > 0 {
		tabs = append(tabs, inactive.Render("tags: "+strings.Join(m.selection.IDs(), ", ")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) helpKeys() []key.Binding {
	switch m.view {
	case viewGlossary:
		return []key.Binding{keys.NextPanel, keys.PrevCategory, keys.NextCategory, keys.Open, keys.Articles, keys.Annotate, keys.Quit}
	case viewArticles:
		if m.articlesFocus.Current() == 0 {
			return []key.Binding{
				keys.NextPanel,
				components.DefaultFacetKeyMap.Toggle,
				components.DefaultFacetKeyMap.Clear,
				keys.Glossary,
				keys.Annotate,
				keys.Quit,
			}
		}
		return []key.Binding{keys.NextPanel, keys.PrevPanel, keys.Open, keys.Glossary, keys.Annotate, keys.Quit}
	default:
		if m.annotator.Focused() {
			return []key.Binding{keys.Back, components.DefaultAnnotatorKeyMap.TogglePreview, components.DefaultAnnotatorKeyMap.Mention}
		}
		return []key.Binding{keys.Edit, components.DefaultAnnotatorKeyMap.TogglePreview, keys.Glossary, keys.Articles, keys.Quit}
	}
}

func (m *Model) calculateLayout() {
	m.contentHeight = m.height - headerHeight - helpHeight

	m.termPaneWidth = m.width * 2 / 5
	m.detailPaneWide = m.width - m.termPaneWidth

	remaining := m.width - facetWidth
	m.articlePaneWidth = remaining * 2 / 5
	m.articleDetailWide = remaining - m.articlePaneWidth
}

func (m *Model) updateComponentSizes() {
	inner := m.contentHeight - 2

	m.termList.SetSize(max(0, m.termPaneWidth-6), max(0, inner))
	m.detail.Width = max(0, m.detailPaneWide-6)
	m.detail.Height = max(0, inner)

	m.articleList.SetSize(max(0, m.articlePaneWidth-6), max(0, inner))
	m.articleDetail.Width = max(0, m.articleDetailWide-6)
	m.articleDetail.Height = max(0, inner)

	m.annotator.SetSize(max(0, m.width-6), max(0, inner))

	m.renderer = resized(m.renderer, m.detail.Width)
	m.articleRenderer = resized(m.articleRenderer, m.articleDetail.Width)
}

// resized returns r wrapped at width, or r unchanged if that fails.
func resized(r *article.Renderer, width int) *article.Renderer {
	if r == nil || width <= 0 {
		return r
	}
	next, err := r.Resize(width)
	if err != nil {
		logger.Logger.Warnw("resize renderer", logger.FieldError, err)
		return r
	}
	return next
}
