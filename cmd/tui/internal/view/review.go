package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/PANATARA/chorebank/internal/completion"
	"github.com/PANATARA/chorebank/internal/user"
)

// ReviewModel walks the user's pending confirmations one at a time and
// records an approve or cancel vote for each.
type ReviewModel struct {
	CommonModel
	completionService *completion.Service
	currentUser       *user.User

	queue      []*completion.PendingConfirmation
	current    *completion.PendingConfirmation
	totalCount int

	loading bool
	status  string
}

func NewReviewModel(completionSvc *completion.Service, u *user.User) ReviewModel {
	return ReviewModel{
		completionService: completionSvc,
		currentUser:       u,
		loading:           true,
		status:            "Loading review queue...",
	}
}

func (m ReviewModel) Title() string     { return "Review Queue" }
func (m ReviewModel) ShortHelp() string { return "a: approve | c: cancel | s: skip | Esc: back" }

func (m ReviewModel) Init() tea.Cmd {
	return m.loadQueueCmd()
}

func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadQueueMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error loading queue: %v", msg.err)
			break
		}

		m.queue = msg.pending
		m.totalCount = len(m.queue)

		if len(m.queue) > 0 {
			m.next()
			break
		}

		m.status = "Nothing to review."

	case voteResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error voting: %v", msg.err)
			break
		}

		if len(m.queue) > 0 {
			m.next()
			break
		}

		m.current = nil
		m.status = "All done!"

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "a":
			if m.current != nil {
				return m, m.voteCmd(completion.StatusApproved)
			}
		case "c":
			if m.current != nil {
				return m, m.voteCmd(completion.StatusCanceled)
			}
		case "s":
			if m.current != nil {
				if len(m.queue) > 0 {
					m.next()
				} else {
					m.current = nil
					m.status = "All done!"
				}
			}
		}
	}

	return m, nil
}

func (m ReviewModel) View() string {
	content := ""

	if m.loading {
		content = m.status
	} else if m.current != nil {
		info := fmt.Sprintf(
			"Chore:   %s (%s coins)\nDone by: %s\nDate:    %s\nMessage: %s\n",
			m.current.ChoreName,
			FormatCoins(m.current.ChoreValuation),
			m.current.CompletedBy,
			m.current.CreatedAt.Format("2006-01-02"),
			m.current.Message,
		)
		content = fmt.Sprintf("%s\n%s\n(%s)", m.status, info, m.ShortHelp())
	} else {
		content = m.status + "\n\n(Esc to back)"
	}

	return lipgloss.NewStyle().Padding(2).Render(content)
}

func (m *ReviewModel) next() {
	m.current = m.queue[0]
	m.queue = m.queue[1:]

	currentIdx := m.totalCount - len(m.queue)
	m.status = fmt.Sprintf("Reviewing %d/%d", currentIdx, m.totalCount)
}

type loadQueueMsg struct {
	pending []*completion.PendingConfirmation
	err     error
}

func (m ReviewModel) loadQueueCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		status := completion.StatusAwaits
		pending, err := m.completionService.UserConfirmations(ctx, m.currentUser.ID, &status)

		return loadQueueMsg{pending: pending, err: err}
	}
}

type voteResultMsg struct {
	err error
}

func (m ReviewModel) voteCmd(status completion.Status) tea.Cmd {
	confirmationID := m.current.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		err := m.completionService.SetConfirmationStatus(ctx, m.currentUser.ID, confirmationID, status)

		return voteResultMsg{err: err}
	}
}
