package threadview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/threadlet/threadlet/internal/api"
	"github.com/threadlet/threadlet/internal/cache"
	"github.com/threadlet/threadlet/internal/config"
	"github.com/threadlet/threadlet/internal/render"
	"github.com/threadlet/threadlet/internal/thread"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1)
	metaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")).Padding(0, 1)
	authorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF")).Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	opBadgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#5FAFFF")).Bold(true)
	selectedStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#333333"))
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	statusStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#333333")).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1)
	statusModeOn   = lipgloss.NewStyle().Background(lipgloss.Color("#5FAFFF")).Foreground(lipgloss.Color("#000000")).Bold(true).Padding(0, 1)
	statusModeOff  = lipgloss.NewStyle().Background(lipgloss.Color("#555555")).Foreground(lipgloss.Color("#CCCCCC")).Padding(0, 1)
)

type rowOffset struct {
	startLine int
	endLine   int
}

// threadLoadedMsg delivers a fetched post and its comment records.
type threadLoadedMsg struct {
	post    *api.Post
	records []thread.CommentRecord
	err     error
}

// Model is the comment thread view.
type Model struct {
	viewport viewport.Model

	postID  string
	post    *api.Post
	records []thread.CommentRecord
	flat    []thread.FlatNode
	offsets []rowOffset

	sortMode    thread.SortMode
	collapse    map[string]bool
	selectedIdx int

	client *api.Client
	cache  *cache.DB
	cfg    config.Config

	loading bool
	err     error
	width   int
	height  int
}

// New creates a thread view that fetches the post on Init.
func New(postID string, cfg config.Config, client *api.Client, db *cache.DB, mode thread.SortMode) Model {
	vp := viewport.New(0, 0)
	vp.SetContent("Loading...")

	return Model{
		viewport: vp,
		postID:   postID,
		sortMode: mode,
		collapse: make(map[string]bool),
		client:   client,
		cache:    db,
		cfg:      cfg,
		loading:  true,
	}
}

// NewFromRecords creates a thread view over preloaded records, with no
// network or cache behind it.
func NewFromRecords(post *api.Post, records []thread.CommentRecord, mode thread.SortMode) Model {
	m := Model{
		viewport: viewport.New(0, 0),
		post:     post,
		records:  records,
		sortMode: mode,
		collapse: make(map[string]bool),
	}
	m.rebuild()
	return m
}

// Init starts loading the thread unless records were preloaded.
func (m Model) Init() tea.Cmd {
	if m.records != nil {
		return nil
	}
	return m.load(false)
}

// load fetches the post and its comments, serving from cache when fresh.
func (m Model) load(force bool) tea.Cmd {
	postID, cfg, client, db := m.postID, m.cfg, m.client, m.cache
	return func() tea.Msg {
		ctx := context.Background()

		post, postFresh, _ := db.GetPost(postID, cfg.PostTTL)
		records, commentsFresh, _ := db.GetComments(postID, cfg.CommentTTL)

		if force || post == nil || !postFresh {
			fetched, err := client.GetPost(ctx, postID)
			if err != nil {
				if post == nil {
					return threadLoadedMsg{err: err}
				}
			} else {
				post = fetched
				db.PutPost(post)
			}
		}
		if force || records == nil || !commentsFresh {
			fetched, err := client.GetComments(ctx, postID)
			if err != nil {
				if records == nil {
					return threadLoadedMsg{err: err}
				}
			} else {
				records = fetched
				db.PutComments(postID, records)
			}
		}

		return threadLoadedMsg{post: post, records: records}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - m.chromeHeight()
		m.rebuildContent()

	case threadLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.rebuildContent()
			return m, nil
		}
		m.err = nil
		m.post = msg.post
		m.records = msg.records
		m.rebuild()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Down):
		if m.selectedIdx < len(m.flat)-1 {
			m.selectedIdx++
			m.rebuildContent()
		}

	case key.Matches(msg, keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
			m.rebuildContent()
		}

	case key.Matches(msg, keys.Home):
		m.selectedIdx = 0
		m.rebuildContent()

	case key.Matches(msg, keys.End):
		if len(m.flat) > 0 {
			m.selectedIdx = len(m.flat) - 1
			m.rebuildContent()
		}

	case key.Matches(msg, keys.PageDown):
		m.viewport.HalfViewDown()

	case key.Matches(msg, keys.PageUp):
		m.viewport.HalfViewUp()

	case key.Matches(msg, keys.Collapse):
		if m.selectedIdx < len(m.flat) {
			id := m.flat[m.selectedIdx].Node.ID
			m.collapse[id] = !m.collapse[id]
			m.rebuild()
		}

	case key.Matches(msg, keys.Refresh):
		if m.client != nil {
			m.loading = true
			return m, m.load(true)
		}

	case key.Matches(msg, keys.SortNext):
		m.setSortMode(nextMode(m.sortMode))

	case key.Matches(msg, keys.Sort1):
		m.setSortMode(thread.SortBest)
	case key.Matches(msg, keys.Sort2):
		m.setSortMode(thread.SortNew)
	case key.Matches(msg, keys.Sort3):
		m.setSortMode(thread.SortTop)
	case key.Matches(msg, keys.Sort4):
		m.setSortMode(thread.SortControversial)
	}
	return m, nil
}

func nextMode(mode thread.SortMode) thread.SortMode {
	modes := thread.Modes()
	for i, c := range modes {
		if c == mode {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}

func (m *Model) setSortMode(mode thread.SortMode) {
	if m.sortMode == mode {
		return
	}
	m.sortMode = mode
	m.rebuild()
}

// rebuild recomputes the flattened thread from the raw records. The engine
// is pure and cheap, so every state change just runs it again.
func (m *Model) rebuild() {
	roots := thread.BuildTree(m.records)
	sorted, err := thread.SortTree(roots, m.sortMode)
	if err != nil {
		// Only reachable with a mode outside thread.Modes().
		m.err = err
		sorted = roots
	}
	m.flat = thread.FlattenTree(sorted, m.collapse)

	if m.selectedIdx >= len(m.flat) {
		m.selectedIdx = len(m.flat) - 1
	}
	if m.selectedIdx < 0 {
		m.selectedIdx = 0
	}
	m.rebuildContent()
}

func (m *Model) rebuildContent() {
	if m.err != nil {
		m.viewport.SetContent(fmt.Sprintf("  Error: %v", m.err))
		return
	}
	if len(m.flat) == 0 {
		if m.loading {
			m.viewport.SetContent("  Loading comments...")
		} else {
			m.viewport.SetContent("  No comments yet.")
		}
		return
	}

	availWidth := m.width - 4
	if availWidth < 20 {
		availWidth = 20
	}

	var sb strings.Builder
	m.offsets = make([]rowOffset, len(m.flat))
	lineCount := 0

	for i, fn := range m.flat {
		startLine := lineCount
		selected := i == m.selectedIdx

		prefix := render.LinePrefix(fn)
		contPrefix := render.ContinuationPrefix(fn)
		prefixWidth := 2 * fn.VisualDepth

		// Header: author + age + points + badges.
		header := authorStyle.Render(fn.Node.Author)
		header += " " + dimStyle.Render(render.TimeAgo(fn.Node.CreatedAt))
		if fn.Node.Score != 0 {
			header += " " + dimStyle.Render(fmt.Sprintf("%d points", fn.Node.Score))
		}
		if m.post != nil && fn.Node.Author != "" && fn.Node.Author == m.post.Author {
			header += " " + opBadgeStyle.Render(" OP ")
		}
		if fn.IsCollapsed {
			header += " " + dimStyle.Render(fmt.Sprintf("[+%d]", fn.CollapsedCount))
		}
		if fn.Depth > thread.MaxVisualDepth {
			header += " " + dimStyle.Render(fmt.Sprintf("↳ %d", fn.Depth))
		}

		headerLine := prefix + header
		if selected {
			headerLine = selectedStyle.Render(headerLine)
		}
		sb.WriteString(headerLine + "\n")
		lineCount++

		if !fn.IsCollapsed {
			bodyWidth := availWidth - prefixWidth
			if bodyWidth < 20 {
				bodyWidth = 20
			}
			body := render.BodyToText(fn.Node.Body, bodyWidth)
			for _, line := range strings.Split(body, "\n") {
				bodyLine := contPrefix + line
				if selected {
					bodyLine = selectedStyle.Render(bodyLine)
				}
				sb.WriteString(bodyLine + "\n")
				lineCount++
			}
		}
		sb.WriteString("\n")
		lineCount++

		m.offsets[i] = rowOffset{startLine: startLine, endLine: lineCount - 1}
	}

	m.viewport.SetContent(sb.String())
	m.ensureVisible()
}

// ensureVisible scrolls the viewport so the selected comment is on screen.
func (m *Model) ensureVisible() {
	if m.selectedIdx >= len(m.offsets) || m.viewport.Height <= 0 {
		return
	}
	off := m.offsets[m.selectedIdx]
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height - 1
	if off.startLine < top {
		m.viewport.SetYOffset(off.startLine)
	} else if off.endLine > bottom {
		m.viewport.SetYOffset(off.endLine - m.viewport.Height + 1)
	}
}

func (m Model) chromeHeight() int {
	// Post header, separator, status bar.
	return 4
}

// View renders the screen.
func (m Model) View() string {
	var sb strings.Builder

	if m.post != nil {
		sb.WriteString(titleStyle.Render(m.post.Title) + "\n")
		meta := fmt.Sprintf("%s · %d points · %d comments · %s",
			m.post.Author, m.post.Score, m.post.CommentCount, render.TimeAgo(m.post.CreatedAt))
		sb.WriteString(metaStyle.Render(meta) + "\n")
	} else {
		sb.WriteString(titleStyle.Render("threadlet") + "\n")
		sb.WriteString(metaStyle.Render("loading post...") + "\n")
	}
	sb.WriteString(separatorStyle.Render(strings.Repeat("─", max(m.width, 1))) + "\n")

	sb.WriteString(m.viewport.View() + "\n")
	sb.WriteString(m.statusBar())
	return sb.String()
}

func (m Model) statusBar() string {
	var tabs []string
	for _, mode := range thread.Modes() {
		if mode == m.sortMode {
			tabs = append(tabs, statusModeOn.Render(string(mode)))
		} else {
			tabs = append(tabs, statusModeOff.Render(string(mode)))
		}
	}
	pos := ""
	if len(m.flat) > 0 {
		pos = fmt.Sprintf("%d/%d", m.selectedIdx+1, len(m.flat))
	}
	return statusStyle.Render("sort:") + strings.Join(tabs, "") + statusStyle.Render(pos)
}

// Selected returns the currently selected row, if any.
func (m Model) Selected() (thread.FlatNode, bool) {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.flat) {
		return thread.FlatNode{}, false
	}
	return m.flat[m.selectedIdx], true
}

// Rows returns the current flattened thread.
func (m Model) Rows() []thread.FlatNode {
	return m.flat
}

// SortModeName returns the active sort mode.
func (m Model) SortModeName() thread.SortMode {
	return m.sortMode
}
