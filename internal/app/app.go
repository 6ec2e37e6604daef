// internal/app/app.go
package app

import (
	"log"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slider/internal/config"
	"github.com/llehouerou/slider/internal/errmsg"
	"github.com/llehouerou/slider/internal/keymap"
	"github.com/llehouerou/slider/internal/resize"
	"github.com/llehouerou/slider/internal/state"
	"github.com/llehouerou/slider/internal/ui/helpbindings"
	"github.com/llehouerou/slider/internal/ui/slider"
	"github.com/llehouerou/slider/internal/ui/textinput"
)

// Model is the mixer: a vertical stack of sliders with one focused at a time.
type Model struct {
	Sliders  []*slider.Model
	Layout   *LayoutManager
	Values   *ValueStore
	Hub      *resize.Hub
	StateMgr state.Interface
	Keys     *keymap.Resolver
	Help     help.Model
	HelpKeys helpbindings.KeyMap
	Entry    textinput.Model
	ErrorMsg string
	Quitting bool
}

// New creates the mixer from the configured sliders. Saved values win over
// configured initial values; values of sliders no longer configured are
// pruned.
func New(cfg *config.Config, stateMgr state.Interface) (Model, error) {
	m := Model{
		Layout:   NewLayoutManager(len(cfg.Sliders)),
		Hub:      resize.NewHub(),
		StateMgr: stateMgr,
		Keys:     keymap.GlobalResolver(),
		Help:     help.New(),
		HelpKeys: helpbindings.New(),
		Entry:    textinput.New(),
	}

	saved, err := stateMgr.GetValues()
	if err != nil {
		m.setError(errmsg.Format(errmsg.OpStateLoad, err))
	}

	names := make([]string, 0, len(cfg.Sliders))
	initial := make(map[string]float64, len(cfg.Sliders))
	for _, sc := range cfg.Sliders {
		names = append(names, sc.Name)
		if v, ok := saved[sc.Name]; ok {
			initial[sc.Name] = v
		} else {
			initial[sc.Name] = sc.Initial()
		}
	}
	if err := stateMgr.DeleteValues(names); err != nil {
		m.setError(errmsg.Format(errmsg.OpStatePrune, err))
	}
	m.Values = NewValueStore(stateMgr, initial)

	timing := cfg.GetTiming()
	for i, sc := range cfg.Sliders {
		s, err := slider.New(
			slider.WithName(sc.Name),
			slider.WithLabel(sc.Label),
			slider.WithRange(sc.Range()),
			slider.WithDiscrete(sc.Discrete),
			slider.WithDisabled(sc.Disabled),
			slider.WithBinding(m.Values.Binding(sc.Name)),
			slider.WithMeasurer(m.Layout.Measurer(i)),
			slider.WithPointerSource(cfg.PointerSource()),
			slider.WithResizeHub(m.Hub),
			slider.WithRefreshInterval(timing.RefreshInterval),
			slider.WithResizeDebounce(timing.ResizeDebounce),
		)
		if err != nil {
			m.destroySliders()
			return Model{}, err
		}
		m.Sliders = append(m.Sliders, s)
	}

	focused, err := stateMgr.GetFocus()
	if err == nil && focused != "" {
		if i := slices.Index(names, focused); i >= 0 {
			m.Layout.Jump(i)
		}
	}
	if s := m.focused(); s != nil {
		s.SetFocused(true)
	}

	return m, nil
}

// Init starts every slider.
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.Sliders))
	for _, s := range m.Sliders {
		cmds = append(cmds, s.Init())
	}
	return tea.Batch(cmds...)
}

// focused returns the focused slider, or nil when there is none.
func (m Model) focused() *slider.Model {
	i := m.Layout.Focus()
	if i < 0 || i >= len(m.Sliders) {
		return nil
	}
	return m.Sliders[i]
}

// sliderIndex returns the index of the slider named name, or -1.
func (m Model) sliderIndex(name string) int {
	return slices.IndexFunc(m.Sliders, func(s *slider.Model) bool {
		return s.Name() == name
	})
}

// destroySliders releases every slider's timers and subscriptions.
func (m Model) destroySliders() {
	for _, s := range m.Sliders {
		s.Destroy()
	}
}

func (m *Model) setError(msg string) {
	m.ErrorMsg = msg
	log.Print(msg)
}
