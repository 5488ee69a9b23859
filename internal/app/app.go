package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/henri123lemoine/pawprint/internal/config"
	"github.com/henri123lemoine/pawprint/internal/content"
	"github.com/henri123lemoine/pawprint/internal/debug"
	"github.com/henri123lemoine/pawprint/internal/motion"
	"github.com/henri123lemoine/pawprint/internal/panel"
	"github.com/henri123lemoine/pawprint/internal/ui"
)

// titleDrop is how far above its resting place the title starts, in pixels.
const titleDrop = -50

// mount is one appearance of the active panel. A zero start means the
// mount has not seen a frame yet.
type mount struct {
	gen   int
	start time.Time
}

// Model is the main application model.
type Model struct {
	// Configuration
	config *config.Config

	// Panels
	renderers panel.Set
	active    content.Panel
	mount     mount

	// Lifecycle
	loaded   bool
	loadedAt time.Time

	// Animation
	animator motion.Animator
	timing   motion.Timing
	title    motion.Spring
	now      time.Time
	ticking  bool

	// Filter
	filtering   bool
	filterInput textinput.Model

	// UI
	theme    ui.Theme
	viewport viewport.Model
	help     help.Model
	width    int
	height   int
	keys     KeyMap

	// Exit behavior
	shouldQuit bool
}

// New creates a new Model showing the breeds panel.
func New(cfg *config.Config) Model {
	filterInput := textinput.New()
	filterInput.Prompt = ui.SymbolFilter + " "
	filterInput.Placeholder = "filter..."
	filterInput.CharLimit = 50

	a := cfg.Animation
	title := motion.NewSpring(a.FPS, a.TitleStiffness, a.TitleDamping, a.TitleMass, titleDrop, 0)
	if !a.Enabled {
		title = title.Snap()
	}

	return Model{
		config: cfg,
		renderers: panel.NewSet(panel.Options{
			Timing:       a.Timing(),
			ImageService: cfg.ImageService(),
		}),
		active:      content.PanelBreeds,
		animator:    motion.For(a.Enabled),
		timing:      a.Timing(),
		title:       title,
		ticking:     true, // Init schedules the first frame
		filterInput: filterInput,
		theme:       ui.ThemeFor(cfg.UI.Theme),
		viewport:    viewport.New(0, 0),
		help:        help.New(),
		keys:        KeyMapFromConfig(&cfg.Keys),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		mounted,
		m.tick(),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.sync()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MountedMsg:
		return m, m.onMounted()

	case FrameMsg:
		return m.onFrame(time.Time(msg))

	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKeys(msg)
		}
		return m.handleKeys(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.filtering {
		// Cursor blinks
		m.filterInput, cmd = m.filterInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// handleKeys handles key presses while browsing.
func (m Model) handleKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shouldQuit = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Breeds):
		return m.SelectPanel(content.PanelBreeds)
	case key.Matches(msg, m.keys.Facts):
		return m.SelectPanel(content.PanelFacts)
	case key.Matches(msg, m.keys.Care):
		return m.SelectPanel(content.PanelCare)
	case key.Matches(msg, m.keys.Next):
		return m.SelectPanel(cycle(m.active, 1))
	case key.Matches(msg, m.keys.Prev):
		return m.SelectPanel(cycle(m.active, -1))
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filterInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case msg.Type == tea.KeyEsc && m.filterInput.Value() != "":
		m.clearFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleFilterKeys handles key presses in filter mode.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.shouldQuit = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.clearFilter()
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.viewport.GotoTop()
	return m, cmd
}

func (m *Model) clearFilter() {
	m.filtering = false
	m.filterInput.Reset()
	m.filterInput.Blur()
	m.viewport.GotoTop()
}

// cycle returns the panel delta tabs away from p, wrapping around.
func cycle(p content.Panel, delta int) content.Panel {
	panels := content.Panels()
	n := len(panels)
	return panels[((int(p)+delta)%n+n)%n]
}

// SelectPanel makes p the active panel. Every switch is a fresh mount:
// the panel transition and all item entrances start over. Selecting the
// active panel changes nothing, and unknown panels are ignored.
func (m Model) SelectPanel(p content.Panel) (Model, tea.Cmd) {
	if !p.Valid() {
		debug.Log("Ignoring unknown panel %s", p)
		return m, nil
	}
	if p == m.active {
		return m, nil
	}

	debug.Log("Switching panel %s -> %s (mount %d)", m.active, p, m.mount.gen+1)
	m.active = p
	m.mount = mount{gen: m.mount.gen + 1}
	m.clearFilter()
	return m, m.ensureTicking()
}

// onMounted sets the loaded flag. Later calls do nothing.
func (m *Model) onMounted() tea.Cmd {
	if m.loaded {
		return nil
	}
	m.loaded = true
	debug.Log("Mounted")
	return m.ensureTicking()
}

// onFrame records the frame time, stamps pending start times and keeps
// ticking while anything is still moving.
func (m Model) onFrame(now time.Time) (Model, tea.Cmd) {
	m.now = now
	if m.mount.start.IsZero() {
		m.mount.start = now
	}
	if m.loaded && m.loadedAt.IsZero() {
		m.loadedAt = now
	}
	m.title = m.title.Step()

	if m.animating() {
		return m, m.tick()
	}
	m.ticking = false
	debug.Log("Animations settled (mount %d)", m.mount.gen)
	return m, nil
}

// animating reports whether another frame would change the picture.
func (m Model) animating() bool {
	if !m.loaded || m.loadedAt.IsZero() || m.mount.start.IsZero() {
		return true
	}
	if !m.title.Settled() {
		return true
	}
	if !m.animator.Done(m.pageTransition(), m.elapsed(m.loadedAt)) {
		return true
	}

	el := m.elapsed(m.mount.start)
	if !m.animator.Done(m.wrapperTransition(), el) {
		return true
	}
	for it := range m.renderer().Items() {
		if !m.animator.Done(it.Enter, el) {
			return true
		}
	}
	return false
}

func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.config.Animation.FrameInterval(), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func mounted() tea.Msg {
	return MountedMsg{}
}

// elapsed is the time since start as of the latest frame. It is zero
// until start has been stamped by a frame.
func (m Model) elapsed(start time.Time) time.Duration {
	if start.IsZero() || m.now.Before(start) {
		return 0
	}
	return m.now.Sub(start)
}

func (m Model) pageTransition() motion.Transition {
	return motion.Transition{
		From:     motion.Hidden,
		To:       motion.Rest,
		Duration: m.timing.Page,
		Ease:     motion.EaseOut,
	}
}

func (m Model) wrapperTransition() motion.Transition {
	return motion.Enter(motion.Props{Y: 20}, 0, m.timing.Panel)
}

func (m Model) renderer() panel.Renderer {
	return m.renderers.For(m.active)
}

// Frame is the visual state of the page at the latest frame.
type Frame struct {
	Loaded bool
	Page   motion.Props
	TitleY float64

	Active content.Panel
	// Key identifies the transition; it changes exactly when the
	// active panel does.
	Key   string
	Mount int

	Wrapper motion.Props
	Heading panel.Heading
	Items   []panel.Placed
}

// Frame samples every animation at the latest frame time.
func (m Model) Frame() Frame {
	f := Frame{
		Loaded: m.loaded,
		Page:   motion.Hidden,
		TitleY: m.title.Pos,
		Active: m.active,
		Key:    m.active.String(),
		Mount:  m.mount.gen,
	}
	if m.loaded {
		f.Page = m.animator.Sample(m.pageTransition(), m.elapsed(m.loadedAt))
	}

	r := m.renderer()
	el := m.elapsed(m.mount.start)
	f.Wrapper = m.animator.Sample(m.wrapperTransition(), el)
	f.Heading = r.Heading()
	for _, it := range m.visibleItems(panel.Collect(r)) {
		f.Items = append(f.Items, panel.Placed{
			Item:  it,
			Props: m.animator.Sample(it.Enter, el),
		})
	}
	return f
}

// itemSource implements fuzzy.Source over panel items.
type itemSource []panel.Item

func (s itemSource) String(i int) string {
	return s[i].Content.Search()
}

func (s itemSource) Len() int {
	return len(s)
}

// visibleItems filters items by the filter input using fuzzy matching.
// Matches keep table order so the layout does not jump while typing.
func (m Model) visibleItems(items []panel.Item) []panel.Item {
	filter := m.filterInput.Value()
	if filter == "" {
		return items
	}

	matched := make(map[int]bool)
	for _, match := range fuzzy.FindFrom(filter, itemSource(items)) {
		matched[match.Index] = true
	}

	var out []panel.Item
	for i, it := range items {
		if matched[i] {
			out = append(out, it)
		}
	}
	return out
}

// sync resizes the viewport around the header and footer and repaints
// the active panel into it.
func (m *Model) sync() {
	p := m.renderParams("")
	height := max(p.Height, ui.MinHeight) - ui.ChromeHeight(p)

	m.viewport.Width = ui.ContentWidth(p.Width, p.MaxWidth)
	m.viewport.Height = max(1, height)
	m.viewport.SetContent(m.body())
}

// body paints the active panel. The page fade multiplies into the
// panel's own transition.
func (m Model) body() string {
	f := m.Frame()
	wrapper := motion.Props{Opacity: f.Page.Opacity}.Compose(f.Wrapper)
	return panel.Compose(m.renderer(), m.theme, ui.ContentWidth(m.width, m.config.UI.MaxWidth), wrapper, f.Items)
}

func (m Model) renderParams(body string) ui.RenderParams {
	f := m.Frame()

	tabs := make([]ui.Tab, 0, len(content.Panels()))
	for _, p := range content.Panels() {
		tabs = append(tabs, ui.Tab{Icon: p.Icon(), Label: p.Label(), Active: p == m.active})
	}

	var helpView string
	if m.config.UI.ShowHelp {
		helpView = m.helpAt(f.Page.Opacity).View(m.keys)
	}

	return ui.RenderParams{
		Width:       m.width,
		Height:      m.height,
		MaxWidth:    m.config.UI.MaxWidth,
		Theme:       m.theme,
		Page:        f.Page,
		TitleY:      f.TitleY,
		Tabs:        tabs,
		Body:        body,
		Filtering:   m.filtering,
		FilterInput: m.filterInput.View(),
		FilterValue: m.filterInput.Value(),
		Help:        helpView,
	}
}

// helpAt returns the help model styled to fade with the page.
func (m Model) helpAt(opacity float64) help.Model {
	st := m.theme.At(opacity).Help
	h := m.help
	h.Styles.ShortKey = st.Bold(true)
	h.Styles.ShortDesc = st
	h.Styles.ShortSeparator = st
	h.Styles.FullKey = st.Bold(true)
	h.Styles.FullDesc = st
	h.Styles.FullSeparator = st
	h.Styles.Ellipsis = st
	return h
}

// View renders the UI.
func (m Model) View() string {
	return ui.Render(m.renderParams(m.viewport.View()))
}

// ShouldQuit returns true if the app should quit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}
