package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/golfsim/internal/dynamo"
	"github.com/san-kum/golfsim/internal/report"
)

const (
	width       = 64
	height      = 20
	defaultRate = time.Second / 10
)

type TickMsg time.Time

// Launcher starts a fresh flight. It is called again on reset.
type Launcher func() (*dynamo.Flight, error)

type view int

const (
	sideView view = iota
	topView
)

func (v view) String() string {
	if v == topView {
		return "top"
	}
	return "side"
}

// Model steps a flight on a timer and draws it. Past ticks can be scrubbed
// through once recorded.
type Model struct {
	launch   Launcher
	flight   *dynamo.Flight
	initial  dynamo.State
	history  []dynamo.Snapshot
	playHead int
	running  bool
	rate     time.Duration
	units    report.Units
	theme    Theme
	view     view
	canvas   *Canvas
	showHelp bool
	err      error
}

type Option func(*Model)

func WithRate(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.rate = d
		}
	}
}

func WithTheme(name string) Option {
	return func(m *Model) { m.theme = GetTheme(name) }
}

func NewModel(launch Launcher, units report.Units, opts ...Option) (Model, error) {
	m := Model{
		launch:   launch,
		playHead: -1,
		running:  true,
		rate:     defaultRate,
		units:    units,
		theme:    ThemeFairway,
		canvas:   NewCanvas(width, height),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if err := m.reset(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.rate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n", "right":
			if !m.running && m.playHead == -1 {
				m.step()
			}
		case "[":
			m.scrub(-1)
		case "]":
			m.scrub(1)
		case "r":
			if err := m.reset(); err != nil {
				m.err = err
			}
		case "v":
			m.view = (m.view + 1) % 2
		case "t":
			m.theme = NextTheme(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			if m.playHead == -1 {
				m.step()
			} else {
				m.playHead++
				if m.playHead >= len(m.history) {
					m.playHead = -1
				}
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// step advances the live flight by one tick. It pauses when the flight ends.
func (m *Model) step() {
	if m.err != nil || m.flight.Status().Terminal() {
		m.running = false
		return
	}
	snap, err := m.flight.Step()
	if err != nil {
		m.err = err
		m.running = false
		return
	}
	m.history = append(m.history, snap)
	if snap.Status.Terminal() {
		m.running = false
	}
}

// scrub moves the replay head. Moving past the last tick returns to live.
func (m *Model) scrub(dir int) {
	if len(m.history) == 0 {
		return
	}
	if m.playHead == -1 {
		m.playHead = len(m.history) - 1
		m.running = false
	}
	m.playHead += dir
	if m.playHead < 0 {
		m.playHead = 0
	}
	if m.playHead >= len(m.history) {
		m.playHead = -1
	}
}

func (m *Model) reset() error {
	f, err := m.launch()
	if err != nil {
		return err
	}
	m.flight = f
	m.initial = f.Initial()
	m.history = m.history[:0]
	m.playHead = -1
	m.running = true
	m.err = nil
	return nil
}

// current is the snapshot under the replay head, or the latest live one.
func (m Model) current() (dynamo.Snapshot, bool) {
	if m.playHead >= 0 && m.playHead < len(m.history) {
		return m.history[m.playHead], true
	}
	if len(m.history) > 0 {
		return m.history[len(m.history)-1], true
	}
	return dynamo.Snapshot{State: m.initial}, false
}

func (m Model) Tick() int                  { return len(m.history) }
func (m Model) Running() bool              { return m.running }
func (m Model) PlayHead() int              { return m.playHead }
func (m Model) Theme() Theme               { return m.theme }
func (m Model) History() []dynamo.Snapshot { return m.history }
func (m Model) Err() error                 { return m.err }

// path returns the recorded positions up to the replay head in view axes.
func (m Model) path() ([]float64, []float64) {
	n := len(m.history)
	if m.playHead >= 0 {
		n = m.playHead + 1
	}
	us := make([]float64, 0, n+1)
	vs := make([]float64, 0, n+1)
	add := func(p dynamo.State) {
		if m.view == topView {
			us = append(us, p.Position.Y())
			vs = append(vs, p.Position.X())
		} else {
			us = append(us, p.Position.Y())
			vs = append(vs, p.Position.Z())
		}
	}
	add(m.initial)
	for _, s := range m.history[:n] {
		add(s.State)
	}
	return us, vs
}

func (m Model) draw() {
	m.canvas.Clear()
	us, vs := m.path()
	vp := Fit(us, vs)
	if m.view == topView {
		vp.MinV = min(vp.MinV, -1)
		vp.MaxV = max(vp.MaxV, 1)
	}
	m.canvas.DrawGround(vp)
	m.canvas.DrawPath(vp, us, vs)
}

func (m Model) status(st styles) string {
	snap, _ := m.current()
	switch {
	case m.err != nil:
		return st.warn.Render("ERROR")
	case m.playHead >= 0:
		return st.warn.Render(fmt.Sprintf("REPLAY %d/%d", m.playHead+1, len(m.history)))
	case snap.Status == dynamo.Landed:
		return st.landed.Render("LANDED")
	case snap.Status == dynamo.MaxTicksExceeded:
		return st.warn.Render("MAX TICKS")
	case !m.running:
		return st.warn.Render("PAUSED")
	default:
		return st.landed.Render("IN FLIGHT")
	}
}

func (m Model) View() string {
	st := m.theme.styles()
	m.draw()
	snap, _ := m.current()
	u := m.units

	var s strings.Builder
	s.WriteString(st.header.Render("GOLF BALL FLIGHT") + "\n")
	s.WriteString(m.status(st) + "\n\n")

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Tick", fmt.Sprintf("%d", snap.Tick))
	row("Time", fmt.Sprintf("%.2fs", snap.State.Time))
	row("Distance", fmt.Sprintf("%.2f %s", u.FromMeters(snap.Distance), u.Abbrev()))
	row("Height", fmt.Sprintf("%.2f %s", u.FromMeters(snap.State.Position.Z()), u.Abbrev()))
	row("Speed", fmt.Sprintf("%.2f m/s", snap.State.Velocity.Length()))
	row("Spin", fmt.Sprintf("%.1f rad/s", snap.State.Spin.Length()))
	row("View", m.view.String())
	if m.err != nil {
		s.WriteString("\n" + st.warn.Render(m.err.Error()) + "\n")
	}

	if len(m.history) > 1 {
		heights := make([]float64, len(m.history))
		for i, h := range m.history {
			heights[i] = u.FromMeters(h.State.Position.Z())
		}
		chart := asciigraph.Plot(heights, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Height"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	s.WriteString(st.help.Render("SP:Pause N:Step R:Reset Q:Quit\n[ ]:Replay V:View T:Theme ?:Help"))

	main := lipgloss.JoinHorizontal(lipgloss.Top, st.canvas.Render(m.canvas.String()), st.stats.Render(s.String()))
	if m.showHelp {
		return helpText + "\n" + main
	}
	return main
}

const helpText = `
  Space   pause or resume
  N / ->  advance one tick while paused
  [ ]     step back and forward through recorded ticks
  R       relaunch the ball
  V       switch between side and top view
  T       cycle colour themes
  Q       quit
`

// Run starts the viewer in the alternate screen.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
