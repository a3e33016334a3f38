package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/pawprint/internal/adopt"
	"github.com/five82/pawprint/internal/catalog"
	"github.com/five82/pawprint/internal/config"
	"github.com/five82/pawprint/internal/debounce"
	"github.com/five82/pawprint/internal/paging"
	"github.com/five82/pawprint/internal/prefs"
	"github.com/five82/pawprint/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewPets View = iota
	ViewBreeds
	ViewDetail
)

// Catalog answers the queries the UI makes. *catalog.Service implements it.
type Catalog interface {
	LoadPets(ctx context.Context, q adopt.PetQuery) catalog.Listing
	Pet(ctx context.Context, id string) (adopt.Pet, error)
	Breeds(ctx context.Context, species adopt.Species) ([]adopt.BreedData, error)
	BreedInfo(ctx context.Context, species adopt.Species, breed string) (adopt.BreedData, bool)
	Images(ctx context.Context, pets []adopt.Pet) map[string]string
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Catalog   Catalog
	Store     *state.Store
	Log       *zap.Logger
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string // empty disables saving preferences
	PollTick  time.Duration
}

// pusher accepts raw input; the settled value comes back later as a message.
type pusher interface {
	Push(value string)
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	catalog   Catalog
	store     *state.Store
	log       *zap.Logger
	cfg       config.Config
	prefs     prefs.Prefs
	prefsPath string
	pollTick  time.Duration
	keys      keyMap

	// UI state
	theme    Theme
	view     View
	width    int
	height   int
	ready    bool
	showHelp bool

	// Pet listing
	snapshot   state.Snapshot
	query      adopt.PetQuery
	petsGen    uint64
	loading    bool
	selected   int
	images     map[string]string
	search     textinput.Model
	searching  bool
	nameSearch pusher
	form       filterForm
	editing    bool

	// Breeds
	breeds         *paging.Pager[adopt.BreedData]
	breedGen       *state.Tracker
	breedsFor      adopt.Species
	breedsLoading  bool
	breedsErr      error
	breedSearch    textinput.Model
	breedSearching bool
	breedTerm      pusher
	breedSelected  int

	// Detail
	detail    detailState
	detailGen *state.Tracker
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}

	cfg := opts.Config
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	if cfg.BreedPageSize <= 0 {
		cfg.BreedPageSize = 12
	}

	themeName := opts.Prefs.Theme
	if themeName == "" {
		themeName = defaultThemeName
	}

	query := adopt.PetQuery{
		Size:    cfg.PageSize,
		Sort:    opts.Prefs.SortOr(cfg.Sort),
		Filters: opts.Prefs.SavedFilters(),
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "pet name"
	search.CharLimit = 64
	search.SetValue(query.Filters.Name)

	breedSearch := textinput.New()
	breedSearch.Prompt = "/ "
	breedSearch.Placeholder = "breed name"
	breedSearch.CharLimit = 64

	breeds := paging.NewPager(cfg.BreedPageSize, func(b adopt.BreedData) string { return b.Name })
	breeds.SetCategory(string(adopt.SpeciesDog))

	return Model{
		ctx:         ctx,
		catalog:     opts.Catalog,
		store:       store,
		log:         log,
		cfg:         cfg,
		prefs:       opts.Prefs,
		prefsPath:   opts.PrefsPath,
		pollTick:    pollTick,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(themeName),
		view:        ViewPets,
		query:       query,
		loading:     true,
		images:      map[string]string{},
		search:      search,
		form:        newFilterForm(),
		breeds:      breeds,
		breedGen:    &state.Tracker{},
		breedSearch: breedSearch,
		detailGen:   &state.Tracker{},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
		m.loadPetsCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(m.pollTick))

	case snapshotMsg:
		return m.handleSnapshot(state.Snapshot(msg))

	case petsLoadedMsg:
		return m.handlePetsLoaded(msg)

	case imagesLoadedMsg:
		if msg.gen != m.snapshot.Generation {
			m.log.Debug("dropped stale breed images", zap.Uint64("generation", msg.gen))
			return m, nil
		}
		m.images = msg.images
		return m, nil

	case nameSettledMsg:
		return m.applyNameSearch(string(msg))

	case breedsLoadedMsg:
		return m.handleBreedsLoaded(msg)

	case breedTermSettledMsg:
		m.applyBreedTerm(string(msg))
		return m, nil

	case detailLoadedMsg:
		return m.handleDetailLoaded(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

func (m Model) renderContent() string {
	switch m.view {
	case ViewBreeds:
		return m.renderBreeds()
	case ViewDetail:
		return m.renderDetail()
	default:
		if m.editing {
			return m.renderFilterForm()
		}
		return m.renderPets()
	}
}

// handleKey processes keyboard input. Text inputs and modal states see keys
// before the global bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.editing {
		return m.handleFilterFormKey(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.breedSearching {
		return m.handleBreedSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.view = ViewPets
		return m, nil
	}

	switch m.view {
	case ViewBreeds:
		return m.handleBreedsKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handlePetsKey(msg)
	}
}

// savePrefs persists theme, sort and filters. Failures are logged only.
func (m *Model) savePrefs() {
	m.prefs.Theme = m.theme.Name
	m.prefs.Sort = m.query.Sort.String()
	m.prefs.Filters = m.query.Filters.Encode()
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.log.Warn("save preferences failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// petsLoadedMsg reports that a listing fetch finished. The result itself is
// already in the store when applied is true.
type petsLoadedMsg struct {
	gen     uint64
	applied bool
}

type imagesLoadedMsg struct {
	gen    uint64
	images map[string]string
}

type nameSettledMsg string

type breedsLoadedMsg struct {
	gen     uint64
	species adopt.Species
	breeds  []adopt.BreedData
	err     error
}

type breedTermSettledMsg string

type detailLoadedMsg struct {
	gen      uint64
	pet      adopt.Pet
	err      error
	breed    adopt.BreedData
	hasBreed bool
	image    string
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := New(opts)

	var p *tea.Program
	if opts.Config.Debounce > 0 {
		names := debounce.New(opts.Config.Debounce, func(v string) { p.Send(nameSettledMsg(v)) })
		defer names.Stop()
		terms := debounce.New(opts.Config.Debounce, func(v string) { p.Send(breedTermSettledMsg(v)) })
		defer terms.Stop()
		m.nameSearch = names
		m.breedTerm = terms
	}

	p = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
