// Package tui hosts a pagination bar in a bubbletea program.
//
// The model keeps one focusable cell per rendered element (prev button,
// page triggers, next button) and binds itself to a pagebar.Root as its
// Surface. Navigation keys are forwarded to Root.HandleKeyDown; activation
// clicks the focused cell.
package tui

import (
	"slices"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Alp4ka/pagebar"
)

type cellKind int

const (
	cellPrev cellKind = iota
	cellPage
	cellNext
)

type cellKey struct {
	kind  cellKind
	value int
}

// cell is one focusable element of the bar.
type cell struct {
	m     *Model
	kind  cellKind
	value int
}

// Focus - implements pagebar.Element.
func (c *cell) Focus() {
	c.m.focus = c
}

func (c *cell) label() string {
	switch c.kind {
	case cellPrev:
		return "prev"
	case cellNext:
		return "next"
	default:
		return strconv.Itoa(c.value)
	}
}

// Model is a bubbletea model around a pagebar.Root.
type Model struct {
	root   *pagebar.Root
	keys   KeyMap
	styles Styles
	dir    pagebar.TextDirection

	cells map[cellKey]*cell
	focus *cell
}

// New binds a terminal surface to root and focuses the current page.
func New(root *pagebar.Root) *Model {
	m := &Model{
		root:   root,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		dir:    pagebar.DirectionLTR,
		cells:  make(map[cellKey]*cell),
	}
	root.Bind(surface{m: m})
	m.ensureFocus()

	return m
}

// WithKeyMap replaces the key bindings.
func (m *Model) WithKeyMap(keys KeyMap) *Model {
	m.keys = keys
	return m
}

// WithStyles replaces the view styles.
func (m *Model) WithStyles(styles Styles) *Model {
	m.styles = styles
	return m
}

// WithDirection sets the text direction reported to the root. Right-to-left
// also mirrors a horizontal bar in the view.
func (m *Model) WithDirection(dir pagebar.TextDirection) *Model {
	if dir.Valid() {
		m.dir = dir
	}

	return m
}

// Root returns the pagination state driven by the model.
func (m *Model) Root() *pagebar.Root {
	return m.root
}

// KeyMap returns the active key bindings, e.g. for a bubbles help view.
func (m *Model) KeyMap() KeyMap {
	return m.keys
}

// Focused returns "prev", "next" or the page number of the focused cell.
func (m *Model) Focused() string {
	if m.focus == nil {
		return ""
	}

	return m.focus.label()
}

func (m *Model) cell(kind cellKind, value int) *cell {
	k := cellKey{kind: kind, value: value}
	if c, ok := m.cells[k]; ok {
		return c
	}

	c := &cell{m: m, kind: kind, value: value}
	m.cells[k] = c

	return c
}

// Init - implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update - implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.root.Unbind()
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Activate):
		m.activate()
	default:
		if name, ok := m.keys.navigationKey(keyMsg); ok && m.focus != nil {
			m.root.HandleKeyDown(pagebar.NewKeyboardEvent(name), m.focus)
		}
	}
	m.ensureFocus()

	return m, nil
}

func (m *Model) activate() {
	if m.focus == nil {
		return
	}

	switch m.focus.kind {
	case cellPrev:
		m.root.PrevPage()
	case cellNext:
		m.root.NextPage()
	default:
		m.root.SetPage(m.focus.value)
	}
}

// ensureFocus moves focus to the current page when the focused cell is no
// longer rendered, e.g. after the page list shifted. Cells that are neither
// rendered nor focused are dropped.
func (m *Model) ensureFocus() {
	order := m.root.FocusOrder()
	if m.focus == nil || !slices.Contains(order, pagebar.Element(m.focus)) {
		m.focus = m.cell(cellPage, m.root.Page())
		if !slices.Contains(order, pagebar.Element(m.focus)) && len(order) > 0 {
			order[0].Focus()
		}
	}

	for k, c := range m.cells {
		if c != m.focus && !slices.Contains(order, pagebar.Element(c)) {
			delete(m.cells, k)
		}
	}
}

// View - implements tea.Model.
func (m *Model) View() string {
	parts := []string{m.render(m.cell(cellPrev, 0), "‹", m.styles.Button)}
	for _, item := range m.root.Pages() {
		if item.IsEllipsis() {
			parts = append(parts, m.styles.Ellipsis.Render("…"))
			continue
		}

		style := m.styles.Page
		if item.Value == m.root.Page() {
			style = m.styles.Selected
		}
		parts = append(parts, m.render(m.cell(cellPage, item.Value), strconv.Itoa(item.Value), style))
	}
	parts = append(parts, m.render(m.cell(cellNext, 0), "›", m.styles.Button))

	if m.root.Orientation() == pagebar.OrientationVertical {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	if m.dir == pagebar.DirectionRTL {
		slices.Reverse(parts)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) render(c *cell, text string, style lipgloss.Style) string {
	if c == m.focus {
		style = m.styles.Focused
	}

	return style.Render(text)
}

// surface adapts the model's cells to pagebar.Surface.
type surface struct {
	m *Model
}

// PageTriggers - implements pagebar.Surface.
func (s surface) PageTriggers() []pagebar.Element {
	var ret []pagebar.Element
	for _, item := range s.m.root.Pages() {
		if !item.IsEllipsis() {
			ret = append(ret, s.m.cell(cellPage, item.Value))
		}
	}

	return ret
}

// Button - implements pagebar.Surface.
func (s surface) Button(kind pagebar.ButtonKind) pagebar.Element {
	if kind == pagebar.ButtonPrev {
		return s.m.cell(cellPrev, 0)
	}

	return s.m.cell(cellNext, 0)
}

// Direction - implements pagebar.Surface.
func (s surface) Direction() pagebar.TextDirection {
	return s.m.dir
}

var (
	_ tea.Model       = (*Model)(nil)
	_ pagebar.Surface = surface{}
	_ pagebar.Element = (*cell)(nil)
)
