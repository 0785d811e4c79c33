package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"

	progressbar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/gsearch/internal/adapters/driving/styles"
	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
)

const (
	barPadding  = 2
	barMaxWidth = 60
)

type advanceMsg struct {
	outcome domain.DownloadOutcome
}

type finishMsg struct{}

// barModel renders the progress bar. Failure lines accumulate above it.
type barModel struct {
	bar      progressbar.Model
	styles   *styles.Styles
	total    int
	done     int
	errors   []string
	finished bool
}

func newBarModel(w io.Writer, total int) barModel {
	st := styles.NewStyles(w, nil)
	theme := st.Theme()

	return barModel{
		bar: progressbar.New(
			progressbar.WithGradient(string(theme.Primary), string(theme.Secondary)),
			progressbar.WithWidth(40),
		),
		styles: st,
		total:  total,
	}
}

func (m barModel) Init() tea.Cmd {
	return nil
}

func (m barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		m.done++
		if msg.outcome.Status == domain.DownloadFailed {
			m.errors = append(m.errors, fmt.Sprintf("%s: %s", msg.outcome.Result.Title, errorLine(msg.outcome)))
		}
		return m, nil

	case finishMsg:
		m.finished = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.bar.Width = max(min(msg.Width-barPadding*2, barMaxWidth), 10)
		return m, nil
	}

	return m, nil
}

func (m barModel) percent() float64 {
	if m.total <= 0 {
		return 1
	}
	return float64(m.done) / float64(m.total)
}

func (m barModel) View() string {
	var b strings.Builder

	for _, line := range m.errors {
		b.WriteString(m.styles.Error.Render(line))
		b.WriteString("\n")
	}

	pad := strings.Repeat(" ", barPadding)
	b.WriteString(pad)
	b.WriteString(m.bar.ViewAs(m.percent()))
	b.WriteString(" ")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d/%d", m.done, m.total)))
	b.WriteString("\n")

	return b.String()
}

var _ driven.ProgressReporter = (*BarReporter)(nil)

// BarReporter drives a bubbletea program that renders a progress bar.
type BarReporter struct {
	mu      sync.Mutex
	out     io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewBar creates a bar reporter rendering to w.
func NewBar(w io.Writer) *BarReporter {
	return &BarReporter{out: w}
}

// Start launches the program. It does not read from the terminal.
func (r *BarReporter) Start(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.program = tea.NewProgram(
		newBarModel(r.out, total),
		tea.WithOutput(r.out),
		tea.WithInput(nil),
	)
	r.done = make(chan struct{})

	go func(p *tea.Program, done chan struct{}) {
		defer close(done)
		_, _ = p.Run()
	}(r.program, r.done)
}

// Advance sends one outcome to the program.
func (r *BarReporter) Advance(outcome domain.DownloadOutcome) {
	r.mu.Lock()
	p := r.program
	r.mu.Unlock()

	if p != nil {
		p.Send(advanceMsg{outcome: outcome})
	}
}

// Finish renders the final frame and waits for the program to exit.
func (r *BarReporter) Finish() {
	r.mu.Lock()
	p, done := r.program, r.done
	r.program = nil
	r.mu.Unlock()

	if p == nil {
		return
	}
	p.Send(finishMsg{})
	<-done
}
