package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/xvierd/turskmind/internal/config"
	"github.com/xvierd/turskmind/internal/domain"
	"github.com/xvierd/turskmind/internal/ports"
)

// getTerminalWidth returns the current terminal width, defaulting to 80.
func getTerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w < 40 {
		return 80
	}
	return w
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(os.Stdout.Fd())
}

// InlineModel is a compact countdown rendered below the shell prompt.
type InlineModel struct {
	ctx       context.Context
	runner    ports.PracticeRunner
	session   domain.PracticeSession
	ticks     <-chan domain.Tick
	lastTick  domain.Tick
	progress  progress.Model
	width     int
	styles    styles
	completed bool
	stopped   bool
}

// NewInlineModel creates an inline model subscribed to a started countdown.
func NewInlineModel(ctx context.Context, runner ports.PracticeRunner, sub *ports.Subscription, theme *config.ThemeConfig) InlineModel {
	resolved := resolveTheme(theme)
	w := getTerminalWidth()
	pbar := progress.New(progress.WithGradient(resolved.ProgressGradientStart, resolved.ProgressGradientEnd))
	pbar.Width = max(w-16, 20)

	return InlineModel{
		ctx:      ctx,
		runner:   runner,
		session:  sub.Session,
		ticks:    sub.Ticks,
		lastTick: domain.Tick{Remaining: sub.Session.Duration},
		progress: pbar,
		width:    w,
		styles:   newStyles(resolved),
	}
}

func (m InlineModel) Init() tea.Cmd {
	return waitForTick(m.ticks)
}

func (m InlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.stopped = true
			return m, cancelPracticeCmd(m.ctx, m.runner)
		}
	case cancelledMsg:
		if msg.err != nil {
			return m, tea.Quit
		}
		// The closed channel ends the program.
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = max(msg.Width-16, 20)
	case tickMsg:
		if msg.ch != m.ticks {
			return m, nil
		}
		m.lastTick = msg.tick
		return m, waitForTick(m.ticks)
	case ticksClosedMsg:
		m.completed = m.lastTick.Done
		return m, tea.Quit
	}
	return m, nil
}

func (m InlineModel) View() string {
	var b strings.Builder

	if m.completed {
		b.WriteString("  " + m.progress.ViewAs(1.0) + "\n")
		b.WriteString(m.styles.success.Render("  "+domain.CompletionMessage(m.session.Label)) + "\n")
		return b.String()
	}
	if m.stopped {
		b.WriteString(m.styles.dim.Render(fmt.Sprintf("  Stopped '%s'.", m.session.Label)) + "\n")
		return b.String()
	}

	b.WriteString(m.styles.active.Render("  "+domain.StartMessage(m.session.Label)) + "\n")
	b.WriteString(renderBigTime(m.lastTick.Clock(), m.styles.practice, m.width) + "\n")
	b.WriteString("  " + m.progress.ViewAs(m.lastTick.Progress))
	b.WriteString(m.styles.dim.Render(fmt.Sprintf("  %d%%", int(m.lastTick.Progress*100))) + "\n")
	b.WriteString(m.styles.help.Render("  [esc] stop") + "\n")
	return b.String()
}

// RunInline starts the practice and renders its countdown until it ends.
// It returns the finished session.
func RunInline(ctx context.Context, runner ports.PracticeRunner, key string, theme *config.ThemeConfig) (*domain.PracticeSession, error) {
	sub, err := runner.StartPractice(ctx, key)
	if err != nil {
		return nil, err
	}

	p := tea.NewProgram(NewInlineModel(ctx, runner, sub, theme))
	final, runErr := p.Run()

	var last domain.Tick
	if fm, ok := final.(InlineModel); ok {
		last = fm.lastTick
	}

	session, err := finalSession(runner, sub, last)
	if runErr != nil {
		return session, fmt.Errorf("failed to run countdown: %w", runErr)
	}
	return session, err
}

// RunPlain prints the countdown as text lines, for output that is not a
// terminal.
func RunPlain(ctx context.Context, runner ports.PracticeRunner, key string, w io.Writer) (*domain.PracticeSession, error) {
	sub, err := runner.StartPractice(ctx, key)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(w, domain.StartMessage(sub.Session.Label))
	var last domain.Tick
	for tick := range sub.Ticks {
		last = tick
		fmt.Fprintf(w, "%s %3d%%\n", tick.Clock(), int(tick.Progress*100))
	}
	if last.Done {
		fmt.Fprintln(w, domain.CompletionMessage(sub.Session.Label))
	}

	return finalSession(runner, sub, last)
}

// finalSession stops the countdown if it is still running and returns the
// session in its final state.
func finalSession(runner ports.PracticeRunner, sub *ports.Subscription, last domain.Tick) (*domain.PracticeSession, error) {
	session, err := runner.CancelPractice(context.Background())
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, domain.ErrNoActiveSession) {
		return nil, err
	}

	final := sub.Session
	end := final.StartedAt.Add(last.Elapsed)
	if last.Done {
		final.Complete(end)
	} else {
		final.Cancel(end)
	}
	return &final, nil
}
