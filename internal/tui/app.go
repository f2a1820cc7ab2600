// Package tui provides the interactive session browser.
package tui

import (
	"fmt"
	"sort"

	"hooklog/internal/cli"
	"hooklog/internal/model"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	appTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.ColorText).
			Padding(0, 1)

	detailBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(cli.ColorBorder).
				Padding(0, 1)

	detailLabelStyle = lipgloss.NewStyle().
				Foreground(cli.ColorAccent)

	helpStyle = lipgloss.NewStyle().
			Foreground(cli.ColorTextDim)
)

// App is the root Bubble Tea model: a session table with a detail pane for
// the selected row.
type App struct {
	sessions []*model.Session
	table    table.Model
	width    int
	height   int
}

// Run starts the browser over the given log and blocks until the user quits.
func Run(log *model.UsageLog) error {
	app := newApp(log)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newApp(log *model.UsageLog) *App {
	sessions := make([]*model.Session, len(log.Sessions))
	copy(sessions, log.Sessions)
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})

	columns := []table.Column{
		{Title: "Start", Width: 14},
		{Title: "Project", Width: 28},
		{Title: "Duration", Width: 10},
		{Title: "Events", Width: 7},
		{Title: "Tools", Width: 7},
		{Title: "Errors", Width: 7},
	}

	rows := make([]table.Row, 0, len(sessions))
	for _, s := range sessions {
		duration := "active"
		if s.TotalDurationMs != nil {
			duration = cli.FormatDurationMs(*s.TotalDurationMs)
		}
		rows = append(rows, table.Row{
			s.StartedAt.Local().Format("Jan 02 15:04"),
			cli.Truncate(s.ProjectDir, 28),
			duration,
			fmt.Sprintf("%d", s.SessionStats.TotalEvents),
			fmt.Sprintf("%d", s.SessionStats.TotalToolCalls),
			fmt.Sprintf("%d", s.SessionStats.ErrorsCount),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(cli.ColorAccent)
	styles.Selected = styles.Selected.Foreground(cli.ColorText).Background(cli.ColorBorder).Bold(true)
	t.SetStyles(styles)

	return &App{sessions: sessions, table: t}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return a, tea.Quit
		}
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		tableHeight := msg.Height - 14
		if tableHeight < 5 {
			tableHeight = 5
		}
		a.table.SetHeight(tableHeight)
	}

	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	title := appTitleStyle.Render(fmt.Sprintf("hooklog — %d sessions", len(a.sessions)))
	help := helpStyle.Render("  ↑/↓ select · q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		a.table.View(),
		a.detailView(),
		help,
	)
}

func (a *App) detailView() string {
	idx := a.table.Cursor()
	if idx < 0 || idx >= len(a.sessions) {
		return ""
	}
	s := a.sessions[idx]
	ss := s.SessionStats

	mostUsed := "-"
	if ss.MostUsedTool != nil {
		mostUsed = *ss.MostUsedTool
	}
	slowest := "-"
	if ss.SlowestTool != nil {
		slowest = *ss.SlowestTool
	}

	lines := []string{
		fmt.Sprintf("%s %s", detailLabelStyle.Render("Session:"), s.SessionID),
		fmt.Sprintf("%s %s", detailLabelStyle.Render("Project:"), s.ProjectDir),
		fmt.Sprintf("%s %s   %s %s",
			detailLabelStyle.Render("Most used:"), mostUsed,
			detailLabelStyle.Render("Slowest:"), slowest),
		fmt.Sprintf("%s %s   %s %d   %s %d",
			detailLabelStyle.Render("Tool time:"), cli.FormatDurationMs(ss.TotalProcessingTimeMs),
			detailLabelStyle.Render("Prompts:"), ss.UserPromptsCount,
			detailLabelStyle.Render("Errors:"), ss.ErrorsCount),
	}

	return detailBorderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
