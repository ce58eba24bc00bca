// Package tui is the interactive form: every edit re-runs the pipeline and
// the result line shows either the net area or the rejection message.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/netarea/montecarlo"
	"github.com/katalvlaran/netarea/pipeline"
)

// field is a focusable row of the form.
type field int

const (
	fieldEquation field = iota
	fieldMethod
	fieldEndpoint
	fieldLower
	fieldUpper
	fieldPoints
	fieldCount
)

var labels = [fieldCount]string{
	fieldEquation: "f(x)",
	fieldMethod:   "Method",
	fieldEndpoint: "Endpoint",
	fieldLower:    "Lower bound",
	fieldUpper:    "Upper bound",
	fieldPoints:   "Points",
}

// Choice lists; index 0 means "not selected".
var (
	methodChoices   = []string{"", pipeline.MonteCarlo.String(), pipeline.RiemannSum.String()}
	endpointChoices = []string{"", "Left", "Right", "Midpoint"}
)

// resultMsg carries the outcome of cycle seq.
type resultMsg struct {
	seq     int
	result  pipeline.Result
	summary string
	curve   string
}

// runner serializes cycles so Last always belongs to the cycle that just ran.
type runner struct {
	mu   sync.Mutex
	pipe *pipeline.Pipeline
}

// run skips cycles already superseded when they get the lock, so a stale
// cycle never clears the snapshot of a newer one. ok is false when skipped.
func (r *runner) run(ctx context.Context, in pipeline.Input, width int) (res pipeline.Result, summary, curve string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ctx.Err() != nil {
		return pipeline.Result{}, "", "", false
	}
	res = r.pipe.Run(ctx, in)
	snap, found := r.pipe.Last()
	if !found {
		return res, "", "", true
	}
	return res, summarize(snap), sparkline(snap.Curve, width), true
}

func (r *runner) reset() {
	r.mu.Lock()
	r.pipe.Reset()
	r.mu.Unlock()
}

// Model is the form state.
type Model struct {
	parent context.Context
	run    *runner

	inputs   [fieldCount]textinput.Model // choice rows leave theirs unused
	method   int
	endpoint int
	focus    field

	seq     int
	cancel  context.CancelFunc
	result  pipeline.Result
	summary string
	curve   string

	width    int
	quitting bool
}

// New builds the form around p. ctx bounds every cycle.
func New(ctx context.Context, p *pipeline.Pipeline) Model {
	m := Model{parent: ctx, run: &runner{pipe: p}, width: 80}
	for f := field(0); f < fieldCount; f++ {
		if f.isChoice() {
			continue
		}
		ti := textinput.New()
		ti.CharLimit = 200
		ti.Width = 40
		ti.Prompt = ""
		ti.Cursor.SetMode(cursor.CursorStatic)
		m.inputs[f] = ti
	}
	m.inputs[fieldEquation].Placeholder = "e.g. x^2 - 4x + 1"
	m.inputs[fieldPoints].Placeholder = "1 to 100,000"
	m.inputs[fieldEquation].Focus()

	return m
}

func (f field) isChoice() bool { return f == fieldMethod || f == fieldEndpoint }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit

		case "ctrl+r":
			return m.clear(), nil

		case "tab", "down":
			m.moveFocus(1)
			return m, nil

		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, nil
		}

		if m.focus.isChoice() {
			return m.updateChoice(msg)
		}

		before := m.inputs[m.focus].Value()
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		if m.inputs[m.focus].Value() != before {
			return m.revalidate()
		}
		return m, cmd

	case resultMsg:
		if msg.seq == m.seq {
			m.result = msg.result
			m.summary = msg.summary
			m.curve = msg.curve
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m Model) updateChoice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := 0
	switch msg.String() {
	case "right", "l", " ", "enter":
		step = 1
	case "left", "h":
		step = -1
	default:
		return m, nil
	}

	if m.focus == fieldMethod {
		m.method = cycle(m.method, step, len(methodChoices))
	} else {
		m.endpoint = cycle(m.endpoint, step, len(endpointChoices))
	}

	return m.revalidate()
}

func cycle(i, step, n int) int { return ((i+step)%n + n) % n }

// visible reports whether f is shown; the endpoint only applies to Riemann sums.
func (m Model) visible(f field) bool {
	return f != fieldEndpoint || methodChoices[m.method] == pipeline.RiemannSum.String()
}

func (m *Model) moveFocus(dir int) {
	if !m.focus.isChoice() {
		m.inputs[m.focus].Blur()
	}
	next := m.focus
	for {
		next = field(cycle(int(next), dir, int(fieldCount)))
		if m.visible(next) {
			break
		}
	}
	m.focus = next
	if !next.isChoice() {
		m.inputs[next].Focus()
	}
}

// Input returns the form as raw pipeline input.
func (m Model) Input() pipeline.Input {
	in := pipeline.Input{
		Equation: m.inputs[fieldEquation].Value(),
		Method:   methodChoices[m.method],
		Lower:    m.inputs[fieldLower].Value(),
		Upper:    m.inputs[fieldUpper].Value(),
		Points:   m.inputs[fieldPoints].Value(),
	}
	if m.visible(fieldEndpoint) {
		in.Endpoint = endpointChoices[m.endpoint]
	}

	return in
}

// Result returns the outcome of the latest finished cycle.
func (m Model) Result() pipeline.Result { return m.result }

// revalidate cancels any cycle in flight and starts a new one.
func (m Model) revalidate() (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(m.parent)
	m.cancel = cancel
	m.seq++

	seq, in, width, r := m.seq, m.Input(), m.sparkWidth(), m.run
	return m, func() tea.Msg {
		res, summary, curve, ok := r.run(ctx, in, width)
		if !ok {
			return nil
		}
		return resultMsg{seq: seq, result: res, summary: summary, curve: curve}
	}
}

// clear empties every field and forgets the last snapshot.
func (m Model) clear() Model {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.seq++ // drop results still in flight
	for f := field(0); f < fieldCount; f++ {
		if !f.isChoice() {
			m.inputs[f].Reset()
			m.inputs[f].Blur()
		}
	}
	m.method, m.endpoint = 0, 0
	m.result, m.summary, m.curve = pipeline.Result{}, "", ""
	m.focus = fieldEquation
	m.inputs[fieldEquation].Focus()
	m.run.reset()

	return m
}

func (m Model) sparkWidth() int {
	return max(10, min(m.width-4, 72))
}

// summarize describes the rendering geometry of an accepted cycle.
func summarize(s pipeline.Snapshot) string {
	switch s.Request.Method {
	case pipeline.RiemannSum:
		return fmt.Sprintf("%d %s rectangles", len(s.Rects), strings.ToLower(s.Request.Endpoint.String()))
	default:
		c := montecarlo.CountRegions(s.Regions)
		return fmt.Sprintf("%d samples: %d above, %d below, %d outside; box %.4g × %.4g",
			len(s.Samples), c.Positive, c.Negative, c.Outside,
			s.Bounds.X1-s.Bounds.X0, s.Bounds.Y1-s.Bounds.Y0)
	}
}
