package tui

import (
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/algoscout/internal/catalog"
	"github.com/csheth/algoscout/internal/compare"
	"github.com/csheth/algoscout/internal/detail"
	"github.com/csheth/algoscout/internal/listing"
	"github.com/csheth/algoscout/internal/logging"
	"github.com/csheth/algoscout/internal/nav"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Catalog *catalog.Catalog
	Logger  *slog.Logger
	// Clipboard receives the code listing on copy. Defaults to the system
	// clipboard.
	Clipboard  func(string) error
	ExportPath string
	StartView  nav.View
	// StartAlgorithm is opened in the detail view when StartView is Detail.
	StartAlgorithm string
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.Catalog == nil {
		cat, err := catalog.Default()
		if err != nil {
			panic(fmt.Sprintf("tui: embedded catalog: %v", err))
		}
		config.Catalog = cat
	}
	if config.Logger == nil {
		config.Logger = logging.Discard()
	}
	if config.Clipboard == nil {
		config.Clipboard = clipboard.WriteAll
	}

	searchInput := textinput.New()
	searchInput.Placeholder = searchPlaceholder
	searchInput.Prompt = "検索 › "
	searchInput.CharLimit = 80
	searchInput.Width = 48

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	m := &model{
		config:    config,
		catalog:   config.Catalog,
		logger:    config.Logger,
		shell:     nav.NewShell(),
		keys:      newKeyMap(),
		help:      help.New(),
		jobs:      newJobBus(config.Logger),
		jobStates: map[jobKind]jobSnapshot{},
		layout:    newPageLayout(),
		viewport:  vp,
		search:    searchInput,
	}
	switch config.StartView {
	case nav.Detail:
		m.selectAlgorithm(config.StartAlgorithm)
	case "":
		m.enterView()
	default:
		m.shell.Navigate(config.StartView)
		m.enterView()
	}
	return m
}

type model struct {
	config  Config
	catalog *catalog.Catalog
	logger  *slog.Logger
	shell   *nav.Shell

	keys      keyMap
	help      help.Model
	jobs      *jobBus
	jobStates map[jobKind]jobSnapshot
	layout    pageLayout
	viewport  viewport.Model
	search    textinput.Model

	// epoch changes on every view entry so late async results for a
	// previous view are dropped.
	epoch int

	listState  listing.State
	listCursor int

	detailState detail.State
	page        *detail.Page

	selection    compare.Selection
	pickerCursor int
	columnFocus  int

	infoMessage  string
	errorMessage string
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.viewport.Width = m.layout.viewportWidth
		m.viewport.Height = m.layout.viewportHeight
		m.help.Width = msg.Width
		m.refreshDetailContent()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.shell.Current() == nav.Detail {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	case jobSignalMsg:
		m.jobStates[msg.Snapshot.Kind] = msg.Snapshot
		return m, nil
	case jobResultEnvelope:
		m.jobStates[msg.Snapshot.Kind] = msg.Snapshot
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case copyResultMsg:
		return m, m.handleCopyResult(msg)
	case copiedExpiredMsg:
		if msg.epoch == m.epoch {
			m.detailState.ExpireCopied(msg.token)
			m.refreshDetailContent()
		}
		return m, nil
	case exportResultMsg:
		if msg.err != nil {
			m.errorMessage = fmt.Sprintf("エクスポートに失敗しました: %v", msg.err)
			return m, nil
		}
		m.errorMessage = ""
		m.infoMessage = fmt.Sprintf("%d 件の比較を %s に保存しました", len(msg.table.Columns), msg.path)
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Home):
		m.navigate(nav.Home)
		return m, nil
	case key.Matches(msg, m.keys.List):
		m.navigate(nav.List)
		return m, nil
	case key.Matches(msg, m.keys.Compare):
		m.navigate(nav.Compare)
		return m, nil
	}

	switch m.shell.Current() {
	case nav.List:
		return m.handleListKey(msg)
	case nav.Detail:
		return m.handleDetailKey(msg)
	case nav.Compare:
		return m.handleCompareKey(msg)
	default:
		return m.handleHomeKey(msg)
	}
}

func (m *model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Open) {
		m.navigate(nav.List)
	}
	return m, nil
}

// navigate switches top-level views. Re-selecting the active view keeps its
// state, mirroring a nav link that points at the current page.
func (m *model) navigate(target nav.View) {
	if target == m.shell.Current() && target != nav.Detail {
		return
	}
	m.shell.Navigate(target)
	m.enterView()
}

func (m *model) selectAlgorithm(id string) {
	m.shell.SelectAlgorithm(id)
	m.enterView()
}

func (m *model) backToList() {
	m.shell.BackToList()
	m.enterView()
}

// enterView resets the state owned by the view that just became active.
func (m *model) enterView() {
	m.epoch++
	m.infoMessage = ""
	m.errorMessage = ""
	m.search.Blur()
	current := m.shell.Current()
	switch current {
	case nav.List:
		m.listState = listing.NewState()
		m.listCursor = 0
		m.search.SetValue("")
	case nav.Detail:
		m.detailState = detail.NewState()
		m.page = nil
		id, _ := m.shell.SelectedID()
		page, err := detail.Resolve(m.catalog, id)
		if err != nil {
			m.logger.Info("detail unavailable", slog.String("id", id), slog.Any("err", err))
		} else {
			m.page = &page
		}
		m.refreshDetailContent()
		m.viewport.GotoTop()
	case nav.Compare:
		m.selection = compare.Selection{}
		m.pickerCursor = 0
		m.columnFocus = 0
	}
	m.refreshKeyHints()
	m.logger.Debug("view entered", slog.String("view", string(current)))
}

func (m *model) refreshKeyHints() {
	k := &m.keys
	k.Picker.SetEnabled(!m.selection.Full())
	switch m.shell.Current() {
	case nav.List:
		k.viewHints = []key.Binding{k.Search, k.Up, k.Down, k.Open, k.NextCat, k.Reset}
	case nav.Detail:
		if m.page == nil {
			k.viewHints = []key.Binding{k.Back}
			return
		}
		k.viewHints = []key.Binding{k.NextTab, k.JumpTab, k.Copy, k.Back}
	case nav.Compare:
		if m.selection.SelectorOpen() {
			k.viewHints = []key.Binding{k.Up, k.Down, k.Open, k.Picker}
			return
		}
		k.viewHints = []key.Binding{k.Picker, k.Left, k.Right, k.Remove, k.Export}
	default:
		k.viewHints = []key.Binding{k.Open, k.List, k.Compare}
	}
}
