package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hrkit/leavechat/internal/engine"
	"github.com/hrkit/leavechat/internal/metrics"
)

// turnTimeout bounds a single engine turn.
const turnTimeout = 10 * time.Second

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with the leave assistant.

Type messages naturally; when the assistant offers numbered options you
can reply with just the number. Ctrl+C or /quit ends the session.

Examples:
  leavechat chat
  leavechat chat -v`,
	RunE: runChat,
}

// Theme holds the color scheme for the chat display.
type Theme struct {
	Prompt  lipgloss.Color
	Bot     lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Hint    lipgloss.Color
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	Prompt:  lipgloss.Color("#5FAFD7"), // light blue
	Bot:     lipgloss.Color("#D7D7D7"), // light gray
	Success: lipgloss.Color("#00D787"), // green
	Error:   lipgloss.Color("#FF005F"), // red
	Hint:    lipgloss.Color("#6C6C6C"), // dim gray
}

// Style functions for dynamic theming
func (t Theme) promptStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Prompt).Bold(true)
}

func (t Theme) botStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Bot)
}

func (t Theme) actionStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success)
}

func (t Theme) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error).Bold(true)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

// turnDoneMsg carries the engine's answer for one processed turn.
type turnDoneMsg struct {
	resp    *engine.Response
	label   string
	elapsed time.Duration
	err     error
}

// chatModel is the bubbletea model for the chat session. The engine is
// single-threaded, so at most one turn is in flight; input submitted while
// busy is queued and replayed in order.
type chatModel struct {
	eng      *engine.Engine
	stats    *metrics.Collector
	input    textinput.Model
	theme    Theme
	lines    []string
	actions  []engine.Action
	busy     bool
	queue    []string
	quitting bool
}

// newChatModel creates the chat model and seeds the transcript with the
// engine's opening greeting.
func newChatModel(eng *engine.Engine) chatModel {
	input := textinput.New()
	input.Placeholder = "Type a message..."
	input.Focus()

	m := chatModel{
		eng:   eng,
		stats: metrics.NewCollector(),
		input: input,
		theme: defaultTheme,
	}
	m.appendResponse(eng.Reset())
	return m
}

// Init returns the initial command.
func (m chatModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and returns the updated model.
func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.SetValue("")

			if text == "/quit" || text == "/exit" {
				m.quitting = true
				return m, tea.Quit
			}

			if m.busy {
				// Keep order: the turn in flight finishes first.
				m.queue = append(m.queue, text)
				m.lines = append(m.lines, m.theme.hintStyle().Render("(queued) ")+text)
				return m, nil
			}
			return m.startTurn(text)
		}

	case turnDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.lines = append(m.lines, m.theme.errorStyle().Render(fmt.Sprintf("✗ %v", msg.err)))
		} else {
			m.stats.RecordTurn(msg.label, msg.elapsed)
			m.appendResponse(msg.resp)
		}

		// Replay queued input in arrival order.
		if len(m.queue) > 0 {
			next := m.queue[0]
			m.queue = m.queue[1:]
			return m.startTurn(next)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startTurn echoes the user's input and kicks off one engine turn. A bare
// number picks the matching action button from the last response.
func (m chatModel) startTurn(text string) (tea.Model, tea.Cmd) {
	m.lines = append(m.lines, m.theme.promptStyle().Render("You › ")+text)
	m.busy = true

	if n, err := strconv.Atoi(text); err == nil && n >= 1 && n <= len(m.actions) {
		action := m.actions[n-1]
		return m, m.dispatchCmd(action.Command)
	}
	return m, m.respondCmd(text)
}

// respondCmd runs a free-text turn off the update loop.
func (m chatModel) respondCmd(text string) tea.Cmd {
	eng := m.eng
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
		defer cancel()

		start := time.Now()
		resp, err := eng.Respond(ctx, text)
		return turnDoneMsg{
			resp:    resp,
			label:   string(engine.DetectIntent(text)),
			elapsed: time.Since(start),
			err:     err,
		}
	}
}

// dispatchCmd runs an action-button command off the update loop.
func (m chatModel) dispatchCmd(command engine.Command) tea.Cmd {
	eng := m.eng
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
		defer cancel()

		start := time.Now()
		resp, err := eng.Dispatch(ctx, command)
		return turnDoneMsg{
			resp:    resp,
			label:   string(command.Kind),
			elapsed: time.Since(start),
			err:     err,
		}
	}
}

// appendResponse renders one engine response into the transcript and
// replaces the active action set.
func (m *chatModel) appendResponse(resp *engine.Response) {
	if resp == nil {
		return
	}

	m.lines = append(m.lines, m.theme.botStyle().Render(resp.Message))

	if resp.ShowCalendar {
		m.lines = append(m.lines, m.theme.hintStyle().Render(monthCalendar(time.Now())))
	}

	m.actions = resp.Actions
	for i, action := range resp.Actions {
		m.lines = append(m.lines, m.theme.actionStyle().Render(fmt.Sprintf("  [%d] %s", i+1, action.Label)))
	}

	if len(resp.Suggestions) > 0 {
		m.lines = append(m.lines, m.theme.hintStyle().Render("Try: "+strings.Join(resp.Suggestions, " · ")))
	}
}

// monthCalendar renders the current month as a Monday-first grid so dates
// can be picked by eye and typed in DD/MM/YYYY form.
func monthCalendar(now time.Time) string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	offset := (int(first.Weekday()) + 6) % 7

	var b strings.Builder
	b.WriteString(first.Format("January 2006"))
	b.WriteString("\n")
	b.WriteString("Mo Tu We Th Fr Sa Su\n")
	b.WriteString(strings.Repeat("   ", offset))
	for day := 1; day <= daysInMonth; day++ {
		b.WriteString(fmt.Sprintf("%2d", day))
		switch {
		case (offset+day)%7 == 0:
			b.WriteString("\n")
		case day < daysInMonth:
			b.WriteString(" ")
		}
	}
	if (offset+daysInMonth)%7 != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// View renders the chat display.
func (m chatModel) View() tea.View {
	return tea.NewView(m.renderContent())
}

// renderContent builds the display string.
func (m chatModel) renderContent() string {
	var b strings.Builder

	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	hint := "Enter to send · number picks an option · Ctrl+C to quit"
	if m.busy {
		hint = "Thinking..."
	}
	b.WriteString(m.theme.hintStyle().Render(hint))
	b.WriteString("\n")

	return b.String()
}

func runChat(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("chat needs a terminal; use 'leavechat say' for scripted input")
	}

	model := newChatModel(newEngine())
	p := tea.NewProgram(model)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("chat UI error: %w", err)
	}

	if m, ok := finalModel.(chatModel); ok {
		printSessionStats(m.stats.Snapshot())
	}
	return nil
}

// printSessionStats displays per-intent turn statistics for the session.
func printSessionStats(snap metrics.Snapshot) {
	if snap.TotalTurns == 0 {
		return
	}

	fmt.Printf("Session statistics\n")
	fmt.Printf("═══════════════════════════════════════\n")
	fmt.Printf("Turns: %d, Duration: %.1f seconds\n", snap.TotalTurns, snap.UptimeSeconds)
	for _, turn := range snap.Intents {
		fmt.Printf("  %-15s %4d calls, avg %.1fms, min %dms, max %dms\n",
			turn.Intent, turn.Count, turn.AvgTimeMs, turn.MinTimeMs, turn.MaxTimeMs)
	}
}
