// Package slider provides a range slider bound to an external numeric value.
//
// The slider accepts mouse (or touch) drags, keyboard steps, and an optional
// discrete mode that marks every reachable value with a tick. All mutations
// go through SetValue, which clamps the proposed value to the range and
// quantizes it to the step before writing it to the Binding.
//
// Pointer positions are not applied inside the event handler: they are
// coalesced and applied when the flush message comes back through Update,
// so a burst of motion events costs one write and one render.
package slider

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slider/internal/keymap"
	"github.com/llehouerou/slider/internal/resize"
	"github.com/llehouerou/slider/internal/sched"
	"github.com/llehouerou/slider/internal/ui"
	"github.com/llehouerou/slider/internal/ui/action"
)

// DefaultResizeDebounce coalesces bursts of terminal resize notifications.
const DefaultResizeDebounce = 50 * time.Millisecond

// Frame is the result of the last render: the displayed value and where the
// thumb sits.
type Frame struct {
	Value    float64
	Fraction float64
	Thumb    int // thumb column relative to the track's left edge
}

type config struct {
	name            string
	label           string
	rng             Range
	discrete        bool
	disabled        bool
	binding         Binding
	measure         Measurer
	source          PointerSource
	hub             *resize.Hub
	refreshInterval time.Duration
	resizeDebounce  time.Duration
	pageSteps       int
	keys            *keymap.Resolver
	onRender        func(Frame)
}

// Option configures a slider.
type Option func(*config)

// WithName sets the identifier carried by the slider's actions.
func WithName(name string) Option { return func(c *config) { c.name = name } }

// WithLabel sets the label shown by hosts next to the track.
func WithLabel(label string) Option { return func(c *config) { c.label = label } }

// WithMin sets the lower bound.
func WithMin(v float64) Option { return func(c *config) { c.rng.Min = v } }

// WithMax sets the upper bound.
func WithMax(v float64) Option { return func(c *config) { c.rng.Max = v } }

// WithStep sets the distance between selectable values.
func WithStep(v float64) Option { return func(c *config) { c.rng.Step = v } }

// WithRange sets all three bounds at once.
func WithRange(r Range) Option { return func(c *config) { c.rng = r } }

// WithDiscrete enables discrete mode.
func WithDiscrete(discrete bool) Option { return func(c *config) { c.discrete = discrete } }

// WithDisabled starts the slider disabled.
func WithDisabled(disabled bool) Option { return func(c *config) { c.disabled = disabled } }

// WithBinding binds the slider to an external value.
func WithBinding(b Binding) Option { return func(c *config) { c.binding = b } }

// WithMeasurer sets how the track's geometry is read from the live layout.
func WithMeasurer(m Measurer) Option { return func(c *config) { c.measure = m } }

// WithPointerSource selects mouse or touch input.
func WithPointerSource(s PointerSource) Option { return func(c *config) { c.source = s } }

// WithResizeHub subscribes the slider to size notifications from hub.
// Without a hub the slider reacts to tea.WindowSizeMsg passed to Update.
func WithResizeHub(hub *resize.Hub) Option { return func(c *config) { c.hub = hub } }

// WithRefreshInterval sets the background geometry refresh delay.
func WithRefreshInterval(d time.Duration) Option {
	return func(c *config) { c.refreshInterval = d }
}

// WithResizeDebounce sets the resize coalescing delay.
func WithResizeDebounce(d time.Duration) Option {
	return func(c *config) { c.resizeDebounce = d }
}

// WithPageSteps sets how many steps pgup/pgdown move.
func WithPageSteps(n int) Option { return func(c *config) { c.pageSteps = n } }

// WithKeys replaces the keyboard bindings.
func WithKeys(r *keymap.Resolver) Option { return func(c *config) { c.keys = r } }

// WithRenderHook registers a callback invoked once per render pass.
func WithRenderHook(fn func(Frame)) Option { return func(c *config) { c.onRender = fn } }

// Model is a slider instance.
type Model struct {
	ui.Base

	name     string
	label    string
	rng      Range
	discrete bool
	ticks    []float64
	disabled bool
	binding  Binding
	source   PointerSource
	err      error

	gesture    gesture
	indicators Indicators
	frame      Frame
	renders    int

	geometry    *Tracker
	moves       *sched.Coalescer[int]
	resizeTimer *sched.Timer
	resizeDelay time.Duration
	sub         *resize.Subscription

	keys      *keymap.Resolver
	pageSteps int
	onRender  func(Frame)
	destroyed bool
}

// New creates a slider. It fails when the configured range is invalid.
func New(opts ...Option) (*Model, error) {
	cfg := config{
		rng:            DefaultRange(),
		resizeDebounce: DefaultResizeDebounce,
		pageSteps:      DefaultPageSteps,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.rng.Validate(); err != nil {
		return nil, fmt.Errorf("slider %q: %w", cfg.name, err)
	}
	if cfg.binding == nil {
		cfg.binding = NewFloat(cfg.rng.Min)
	}
	if cfg.keys == nil {
		cfg.keys = keymap.SliderResolver()
	}
	if cfg.pageSteps <= 0 {
		cfg.pageSteps = DefaultPageSteps
	}

	m := &Model{
		name:        cfg.name,
		label:       cfg.label,
		rng:         cfg.rng,
		discrete:    cfg.discrete,
		disabled:    cfg.disabled,
		binding:     cfg.binding,
		source:      cfg.source,
		geometry:    NewTracker(cfg.measure, cfg.refreshInterval),
		moves:       sched.NewCoalescer[int](),
		resizeTimer: sched.NewTimer(),
		resizeDelay: cfg.resizeDebounce,
		keys:        cfg.keys,
		pageSteps:   cfg.pageSteps,
		onRender:    cfg.onRender,
	}
	if cfg.hub != nil {
		m.sub = cfg.hub.Subscribe()
	}

	m.geometry.Refresh()
	m.regenerateTicks()
	m.frame = Frame{Value: m.rng.Min}
	if v := m.binding.Get(); isFinite(v) {
		m.paint(v, m.geometry.Box())
	}
	return m, nil
}

// Init starts listening for resize notifications and arms the background
// geometry refresh.
func (m *Model) Init() tea.Cmd {
	if m.destroyed {
		return nil
	}
	var wait tea.Cmd
	if m.sub != nil {
		wait = m.sub.Wait()
	}
	_, refresh := m.geometry.Get()
	return tea.Batch(wait, refresh)
}

// Update routes a message to the slider. Messages addressed to other
// components are ignored. After Destroy, Update does nothing.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.destroyed {
		return nil
	}
	switch msg := msg.(type) {
	case sched.FlushMsg:
		if x, ok := m.moves.Take(msg); ok {
			return m.applyPosition(x)
		}
	case sched.FiredMsg:
		if m.geometry.Handle(msg) {
			return nil
		}
		if m.resizeTimer.Fired(msg) {
			return m.resized()
		}
	case resize.Msg:
		if m.sub != nil && msg.ID == m.sub.ID {
			return tea.Batch(m.resizeTimer.Reset(m.resizeDelay), m.sub.Wait())
		}
	case tea.WindowSizeMsg:
		if m.sub == nil {
			return m.resizeTimer.Reset(m.resizeDelay)
		}
	case tea.KeyMsg:
		return m.HandleKey(msg).Cmd
	case tea.MouseMsg:
		return m.HandleMouse(msg).Cmd
	case TouchMsg:
		return m.HandleTouch(msg).Cmd
	case tea.BlurMsg:
		// Losing the terminal's focus means the release will never arrive.
		m.pointerUp()
	}
	return nil
}

// resized re-measures and re-renders the current value. The gesture, if any,
// carries on against the new geometry.
func (m *Model) resized() tea.Cmd {
	m.geometry.Refresh()
	cmd, _ := m.Render(m.binding.Get())
	return cmd
}

// SetValue is the single mutation entry point. It normalizes raw, writes it
// to the binding when it differs from the current value, renders once, and
// returns a command announcing the change. Non-finite input and an invalid
// range leave everything untouched.
func (m *Model) SetValue(raw float64) tea.Cmd {
	if m.destroyed || !isFinite(raw) || m.err != nil {
		return nil
	}
	v := m.rng.Normalize(raw)
	if v == m.binding.Get() {
		return nil
	}
	m.binding.Set(v)
	refresh := m.render(v)
	return tea.Batch(refresh, m.changed(v))
}

// Render reflects v, typically a value the host changed itself. The value is
// displayed normalized but not written back. Non-finite values are ignored.
func (m *Model) Render(v float64) (tea.Cmd, error) {
	if m.destroyed {
		return nil, ErrDestroyed
	}
	if m.err != nil {
		return nil, m.err
	}
	if !isFinite(v) {
		return nil, nil
	}
	return m.render(v), nil
}

func (m *Model) render(v float64) tea.Cmd {
	box, refresh := m.geometry.Get()
	m.paint(v, box)
	return refresh
}

func (m *Model) paint(v float64, box Box) {
	shown := m.rng.Normalize(v)
	fraction, _ := m.rng.Fraction(shown)
	m.frame = Frame{
		Value:    shown,
		Fraction: fraction,
		Thumb:    box.Column(fraction),
	}
	m.indicators.AtMin = fraction == 0
	m.renders++
	if m.onRender != nil {
		m.onRender(m.frame)
	}
}

func (m *Model) changed(v float64) tea.Cmd {
	name := m.name
	return func() tea.Msg {
		return action.Msg{Source: Source, Action: Changed{Name: name, Value: v}}
	}
}

func (m *Model) focus() tea.Cmd {
	if m.IsFocused() {
		return nil
	}
	m.SetFocused(true)
	name := m.name
	return func() tea.Msg {
		return action.Msg{Source: Source, Action: Focused{Name: name}}
	}
}

// SetRange replaces the range atomically. An invalid range is rejected and
// the previous one kept.
func (m *Model) SetRange(r Range) error {
	if err := r.Validate(); err != nil {
		return err
	}
	m.rng = r
	return m.rangeChanged()
}

// SetMin updates the lower bound. The bounds are updated independently, so
// the range may be transiently invalid; the returned error says so, and the
// slider ignores values until a later update makes the range valid again.
func (m *Model) SetMin(v float64) error {
	m.rng.Min = v
	return m.rangeChanged()
}

// SetMax updates the upper bound. See SetMin.
func (m *Model) SetMax(v float64) error {
	m.rng.Max = v
	return m.rangeChanged()
}

// SetStep updates the step. See SetMin.
func (m *Model) SetStep(v float64) error {
	m.rng.Step = v
	return m.rangeChanged()
}

func (m *Model) rangeChanged() error {
	m.err = m.rng.Validate()
	m.regenerateTicks()
	if m.err == nil {
		if v := m.binding.Get(); isFinite(v) {
			m.paint(v, m.geometry.Box())
		}
	}
	return m.err
}

// SetDiscrete toggles discrete mode.
func (m *Model) SetDiscrete(discrete bool) {
	m.discrete = discrete
	m.regenerateTicks()
}

func (m *Model) regenerateTicks() {
	if !m.discrete || m.err != nil {
		m.ticks = nil
		return
	}
	m.ticks = m.rng.Ticks()
}

// SetDisabled enables or disables input. Disabling ends a gesture in progress.
func (m *Model) SetDisabled(disabled bool) {
	m.disabled = disabled
	if disabled {
		m.pointerUp()
	}
}

// SetBinding rebinds the slider and renders the new value.
func (m *Model) SetBinding(b Binding) {
	m.binding = b
	if v := b.Get(); isFinite(v) && m.err == nil {
		m.paint(v, m.geometry.Box())
	}
}

// RefreshGeometry re-measures the track immediately, as after a layout
// change the slider cannot observe itself.
func (m *Model) RefreshGeometry() {
	m.geometry.Refresh()
	if m.err == nil {
		m.paint(m.frame.Value, m.geometry.Box())
	}
}

// Destroy releases every listener and timer. Pending pointer work is dropped
// and later messages are ignored.
func (m *Model) Destroy() {
	if m.destroyed {
		return
	}
	m.pointerUp()
	m.geometry.Stop()
	m.resizeTimer.Cancel()
	if m.sub != nil {
		m.sub.Unsubscribe()
	}
	m.destroyed = true
}

// Name returns the slider's identifier.
func (m *Model) Name() string { return m.name }

// Label returns the slider's display label.
func (m *Model) Label() string { return m.label }

// Range returns the current range.
func (m *Model) Range() Range { return m.rng }

// Err returns the configuration error left by the last bound update.
func (m *Model) Err() error { return m.err }

// Discrete reports whether discrete mode is enabled.
func (m *Model) Discrete() bool { return m.discrete }

// Ticks returns the discrete tick values, nil in continuous mode.
func (m *Model) Ticks() []float64 { return m.ticks }

// Disabled reports whether input is ignored.
func (m *Model) Disabled() bool { return m.disabled }

// Value returns the bound value.
func (m *Model) Value() float64 { return m.binding.Get() }

// Frame returns the last rendered frame.
func (m *Model) Frame() Frame { return m.frame }

// Renders returns how many render passes have run.
func (m *Model) Renders() int { return m.renders }

// Indicators returns the current visual state flags.
func (m *Model) Indicators() Indicators { return m.indicators }

// Geometry returns the cached track box.
func (m *Model) Geometry() Box { return m.geometry.Box() }

// Source returns the pointer source the slider listens to.
func (m *Model) Source() PointerSource { return m.source }

// State returns the pointer state.
func (m *Model) State() PointerState {
	if m.gesture.active {
		return Dragging
	}
	return Idle
}

// Moving reports whether the current gesture has moved.
func (m *Model) Moving() bool { return m.gesture.moving }

// Destroyed reports whether Destroy was called.
func (m *Model) Destroyed() bool { return m.destroyed }
