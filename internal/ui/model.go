package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/atomicstack/tabstrip/internal/logging/events"
	"github.com/atomicstack/tabstrip/internal/panel"
	"github.com/atomicstack/tabstrip/internal/tabs"
	"github.com/atomicstack/tabstrip/internal/theme"
	uistate "github.com/atomicstack/tabstrip/internal/ui/state"
)

// DefaultSort is the tab selected at startup.
const DefaultSort = SortRanked

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures NewModel. Zero values pick defaults.
type Options struct {
	// Width fixes the layout width; 0 follows the terminal.
	Width int
	// InitialWidth lays out the bar and cards before the first
	// tea.WindowSizeMsg when Width is 0.
	InitialWidth  int
	Height        int
	Accent        *colorful.Color
	PreferUnicode bool
	MaxRows       int
	Sets          []panel.BeatmapSet
	Clock         func() time.Time
}

// Model implements the Bubble Tea model for the beatmap browser: a sort tab
// bar above a scrolling list of beatmap cards.
type Model struct {
	bar     *tabs.Model[SortCriteria]
	cards   []*panel.Card
	list    *uistate.List
	keys    keyMap
	help    help.Model
	clock   func() time.Time
	palette theme.Palette

	width         int
	height        int
	fixedWidth    bool
	preferUnicode bool
	sortBy        SortCriteria
	accentIndex   int

	playing      *panel.Card
	previewStart time.Time
	previewSeq   int
	frameSeq     int
	framing      bool

	infoMsg      string
	cancelAccent func()
	quitting     bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the browser over opts.Sets, or SampleSets when empty.
func NewModel(opts Options) *Model {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	sets := opts.Sets
	if len(sets) == 0 {
		sets = SampleSets()
	}
	palette := theme.DefaultPalette()

	ctlOpts := []tabs.Option[SortCriteria]{
		tabs.WithVariants(AllSortCriteria()),
		tabs.WithClock[SortCriteria](clock),
		tabs.WithPalette[SortCriteria](palette),
	}
	if opts.MaxRows > 0 {
		ctlOpts = append(ctlOpts, tabs.WithMaxRows[SortCriteria](opts.MaxRows))
	}
	if opts.Accent != nil {
		ctlOpts = append(ctlOpts, tabs.WithAccentColor[SortCriteria](*opts.Accent))
	}
	ctl := tabs.New(ctlOpts...)

	m := &Model{
		bar:           tabs.NewModel(ctl),
		list:          uistate.NewList(len(sets)),
		keys:          defaultKeyMap(),
		help:          help.New(),
		clock:         clock,
		palette:       palette,
		height:        opts.Height,
		preferUnicode: opts.PreferUnicode,
		sortBy:        DefaultSort,
	}
	for _, set := range sets {
		card := panel.New(set, palette)
		card.SetPreferUnicode(opts.PreferUnicode)
		m.cards = append(m.cards, card)
	}
	m.cancelAccent = ctl.Accent().Subscribe(func(col colorful.Color) {
		now := m.clock()
		for _, card := range m.cards {
			card.SetAccentColor(col, now)
		}
	})
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		ctl.SetWidth(opts.Width)
	} else {
		m.bar.SetAutoWidth(true)
		if opts.InitialWidth > 0 {
			m.width = opts.InitialWidth
			m.help.Width = opts.InitialWidth
			ctl.SetWidth(opts.InitialWidth)
		}
	}
	_ = ctl.Select(DefaultSort)
	sortCards(m.cards, DefaultSort)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages. Messages without a handler belong
// to the tab bar.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	} else if cmd := m.bar.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):                     m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):              m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):                   m.handleMouseMsg,
		reflect.TypeOf(tabs.SelectedMsg[SortCriteria]{}): m.handleSortSelectedMsg,
		reflect.TypeOf(previewTickMsg{}):                 m.handlePreviewTickMsg,
		reflect.TypeOf(cardFrameMsg{}):                   m.handleCardFrameMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if cmd := m.cardFrameCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
	}
	m.height = size.Height
	m.help.Width = m.width
	events.UI.Resize(size.Width, size.Height)
	cmd := m.bar.Update(size)
	m.list.EnsureCursorVisible(m.visibleCards())
	return cmd
}

func (m *Model) handleSortSelectedMsg(msg tea.Msg) tea.Cmd {
	selected := msg.(tabs.SelectedMsg[SortCriteria])
	m.applySort(selected.Value)
	return nil
}

// applySort re-orders the cards and keeps the hovered card under the cursor.
func (m *Model) applySort(by SortCriteria) {
	hovered := m.hoveredCard()
	m.sortBy = by
	sortCards(m.cards, by)
	if hovered != nil {
		for i, card := range m.cards {
			if card == hovered {
				m.list.SetCursor(i)
				break
			}
		}
	}
	m.list.EnsureCursorVisible(m.visibleCards())
	events.UI.Sort(by.String(), len(m.cards))
}

// Close releases the accent subscriptions held by the bar and the cards.
func (m *Model) Close() {
	if m.cancelAccent != nil {
		m.cancelAccent()
		m.cancelAccent = nil
	}
	m.bar.Control().Close()
}

// Sort reports the active sort criterion.
func (m *Model) Sort() SortCriteria { return m.sortBy }

// Cards returns the cards in display order.
func (m *Model) Cards() []*panel.Card { return m.cards }

// Bar exposes the sort tab bar.
func (m *Model) Bar() *tabs.Model[SortCriteria] { return m.bar }

// Quitting reports whether a quit was requested.
func (m *Model) Quitting() bool { return m.quitting }
