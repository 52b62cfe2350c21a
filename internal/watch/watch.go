// Package watch renders live matrix progress while the engine runs:
// one line per environment, updated as stages begin and finish. The
// final summary is printed by the caller once the program exits.
package watch

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/matrun/matrun/internal/engine"
	"github.com/matrun/matrun/internal/matrix"
	"github.com/matrun/matrun/internal/report"
	"github.com/matrun/matrun/internal/ui/theme"
)

// row tracks one environment's visible state. The report is set once
// the environment finished.
type row struct {
	env    matrix.Environment
	stage  string
	report *report.EnvReport
}

// Model is the root Bubble Tea model for run --watch.
type Model struct {
	project string
	rows    []*row
	index   map[string]int

	events <-chan engine.Event
	exec   func() *report.MatrixRun
	cancel context.CancelFunc

	spin       spinner.Model
	final      *report.MatrixRun
	cancelling bool
	width      int
}

func newModel(project string, envs []matrix.Environment, events <-chan engine.Event, cancel context.CancelFunc, exec func() *report.MatrixRun) Model {
	rows := make([]*row, len(envs))
	index := make(map[string]int, len(envs))
	for i, env := range envs {
		rows[i] = &row{env: env}
		index[env.Name] = i
	}
	return Model{
		project: project,
		rows:    rows,
		index:   index,
		events:  events,
		exec:    exec,
		cancel:  cancel,
		spin: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.start(), m.listen())
}

// start runs the matrix and reports back once every environment
// finished.
func (m Model) start() tea.Cmd {
	exec := m.exec
	return func() tea.Msg {
		return runDoneMsg{run: exec()}
	}
}

// listen delivers the next engine event.
func (m Model) listen() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return progressMsg(ev)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.cancelling {
				// Second interrupt: stop waiting for the engine.
				return m, tea.Quit
			}
			m.cancelling = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
		return m, nil

	case progressMsg:
		if i, ok := m.index[msg.Env]; ok {
			m.rows[i].stage = msg.Stage
			m.rows[i].report = msg.Report
		}
		return m, m.listen()

	case runDoneMsg:
		m.final = msg.run
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// Run drives the matrix under the live view and returns the finished
// run. Interrupting cancels the engine context; the partial run is
// still returned so its reports can be saved. A nil run means the
// user bailed out before the engine wound down.
func Run(ctx context.Context, eng *engine.Engine, project string, envs []matrix.Environment) (*report.MatrixRun, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Each environment emits at most one event per stage plus one on
	// finish, so the engine never blocks on a slow redraw.
	events := make(chan engine.Event, 4*len(envs)+1)
	eng.Notify = func(ev engine.Event) { events <- ev }

	m := newModel(project, envs, events, cancel, func() *report.MatrixRun {
		return eng.Run(ctx, envs)
	})
	out, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, err
	}
	return out.(Model).final, nil
}
