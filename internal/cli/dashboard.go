package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/davrell/taskdeck/pkg/models"
)

// Dashboard panel indices.
const (
	panelTasks = iota
	panelSummary
	panelCount
)

type dashboardModel struct {
	activePanel int
	width       int
	height      int

	// Data.
	tasks        []models.Task
	workload     models.WorkloadCategory
	overdueCount int

	loading bool
}

// dashboardDataMsg carries a fresh snapshot back to the model.
type dashboardDataMsg struct {
	tasks        []models.Task
	workload     models.WorkloadCategory
	overdueCount int
}

// Style definitions.
var (
	dashTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	dashPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	dashActivePanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(1, 2)

	dashHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			MarginBottom(1)

	dashDoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	dashPendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	dashOverdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dashHelpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newDashboardModel() dashboardModel {
	return dashboardModel{activePanel: panelTasks, loading: true}
}

func loadDashboardData() tea.Msg {
	tasks := Store.List()
	count, _ := Store.Overdue(time.Now())
	return dashboardDataMsg{
		tasks:        tasks,
		workload:     Store.Workload(),
		overdueCount: count,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return loadDashboardData
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.activePanel = (m.activePanel + 1) % panelCount
			return m, nil
		case "r":
			m.loading = true
			return m, loadDashboardData
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dashboardDataMsg:
		m.loading = false
		m.tasks = msg.tasks
		m.workload = msg.workload
		m.overdueCount = msg.overdueCount
		return m, nil
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := dashTitleStyle.Render(" taskdeck ")
	help := dashHelpStyle.Render("tab: switch panel | r: refresh | q: quit")

	if m.loading {
		return fmt.Sprintf("%s\n\n  Loading tasks...\n\n%s", title, help)
	}

	tasksPanel := m.renderTasksPanel()
	summaryPanel := m.renderSummaryPanel()

	panelWidth := m.width - 6
	if panelWidth < 20 {
		panelWidth = 20
	}
	tasksPanel = m.applyPanelStyle(panelTasks, tasksPanel, panelWidth)
	summaryPanel = m.applyPanelStyle(panelSummary, summaryPanel, panelWidth)
	body := lipgloss.JoinVertical(lipgloss.Left, tasksPanel, summaryPanel)

	return fmt.Sprintf("%s\n\n%s\n\n%s", title, body, help)
}

func (m dashboardModel) applyPanelStyle(panel int, content string, width int) string {
	style := dashPanelStyle
	if m.activePanel == panel {
		style = dashActivePanelStyle
	}
	return style.Width(width).Render(content)
}

func (m dashboardModel) renderTasksPanel() string {
	var b strings.Builder
	b.WriteString(dashHeaderStyle.Render("Tasks"))
	b.WriteString("\n")

	if len(m.tasks) == 0 {
		b.WriteString("  No tasks found.")
		return b.String()
	}

	for _, t := range m.tasks {
		due := "no due date"
		if t.Due != nil {
			due = t.Due.Format("2006-01-02")
		}
		state := dashPendingStyle.Render("pending")
		if t.Completed {
			state = dashDoneStyle.Render("done")
		}
		b.WriteString(fmt.Sprintf("  %-4d %-30s %-12s %-8s %s\n",
			t.ID, truncate(t.Description, 30), due, t.Priority, state))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m dashboardModel) renderSummaryPanel() string {
	var b strings.Builder
	b.WriteString(dashHeaderStyle.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %-14s %d\n", "Tasks", len(m.tasks)))
	b.WriteString(fmt.Sprintf("  %-14s %s\n", "Workload", m.workload))

	overdue := fmt.Sprintf("%d", m.overdueCount)
	if m.overdueCount > 0 {
		overdue = dashOverdueStyle.Render(overdue)
	}
	b.WriteString(fmt.Sprintf("  %-14s %s", "Overdue", overdue))

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show a live terminal dashboard of tasks and workload",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}
		p := tea.NewProgram(newDashboardModel(), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running dashboard: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
