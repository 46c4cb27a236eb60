package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/PANATARA/chorebank/internal/chore"
	"github.com/PANATARA/chorebank/internal/completion"
	"github.com/PANATARA/chorebank/internal/user"
)

type choresState int

const (
	choresStateBrowse choresState = iota
	choresStateMessage
)

// ChoresModel is the chore board: the family's active chores with the
// option to claim one as done.
type ChoresModel struct {
	CommonModel
	choreService      *chore.Service
	completionService *completion.Service
	currentUser       *user.User

	state        choresState
	table        table.Model
	chores       []*chore.Chore
	messageInput textinput.Model

	loading bool
	status  string
	err     error
}

func NewChoresModel(choreSvc *chore.Service, completionSvc *completion.Service, u *user.User) ChoresModel {
	columns := []table.Column{
		{Title: "Chore", Width: 30},
		{Title: "Valuation", Width: 10},
		{Title: "Description", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = "Optional message for reviewers"
	ti.Width = 50

	return ChoresModel{
		choreService:      choreSvc,
		completionService: completionSvc,
		currentUser:       u,
		table:             t,
		messageInput:      ti,
	}
}

func (m ChoresModel) Title() string { return "Chore Board" }
func (m ChoresModel) ShortHelp() string {
	if m.state == choresStateMessage {
		return "Enter: submit | Esc: cancel"
	}

	return "Esc: back | Enter: mark done | r: refresh"
}

func (m ChoresModel) Init() tea.Cmd {
	return m.loadChoresCmd()
}

func (m ChoresModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case loadChoresMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.chores = msg.chores
		m.refreshTable()

		return m, nil

	case completionResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else if msg.completion.Status == completion.StatusApproved {
			m.status = "Done! Approved and rewarded right away."
		} else {
			m.status = "Done! Waiting for the family to confirm."
		}

		m.state = choresStateBrowse
		m.messageInput.SetValue("")
		m.table.Focus()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		if m.state == choresStateMessage {
			switch msg.Type {
			case tea.KeyEsc:
				m.state = choresStateBrowse
				m.messageInput.Blur()
				m.table.Focus()

				return m, nil
			case tea.KeyEnter:
				return m, m.completeCmd(m.messageInput.Value())
			}

			m.messageInput, cmd = m.messageInput.Update(msg)

			return m, cmd
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadChoresCmd()
		case "enter":
			if len(m.chores) == 0 {
				return m, nil
			}

			m.state = choresStateMessage
			m.table.Blur()
			m.messageInput.Focus()

			return m, textinput.Blink
		}
	}

	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ChoresModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Error loading chores: %v\n\n(Esc to back)", m.err))
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading chores...")
	}

	if m.state == choresStateMessage {
		selected := m.chores[m.table.Cursor()]

		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf(
			"Marking %q as done.\n\n%s\n\n(%s)",
			selected.Name, m.messageInput.View(), m.ShortHelp()))
	}

	content := m.table.View()
	if m.status != "" {
		content += "\n\n" + m.status
	}

	content += "\n\n" + m.ShortHelp()

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ChoresModel) refreshTable() {
	rows := make([]table.Row, len(m.chores))
	for i, c := range m.chores {
		rows[i] = table.Row{c.Name, FormatCoins(c.Valuation), c.Description}
	}

	m.table.SetRows(rows)
}

type loadChoresMsg struct {
	chores []*chore.Chore
	err    error
}

func (m ChoresModel) loadChoresCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		chores, err := m.choreService.ListFamily(ctx, *m.currentUser.FamilyID)

		return loadChoresMsg{chores: chores, err: err}
	}
}

type completionResultMsg struct {
	completion *completion.ChoreCompletion
	err        error
}

func (m ChoresModel) completeCmd(message string) tea.Cmd {
	selected := m.chores[m.table.Cursor()]

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		c, err := m.completionService.Create(ctx, m.currentUser, selected, message)

		return completionResultMsg{completion: c, err: err}
	}
}
