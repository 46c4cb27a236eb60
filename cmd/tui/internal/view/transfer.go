package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/PANATARA/chorebank/internal/user"
	"github.com/PANATARA/chorebank/internal/wallet"
)

// TransferModel is the coin transfer form: recipient username and amount.
type TransferModel struct {
	CommonModel
	walletService *wallet.Service
	userService   *user.Service
	currentUser   *user.User

	form   *huh.Form
	status string
	done   bool

	// Form bindings
	formUsername string
	formAmount   string
}

func NewTransferModel(walletSvc *wallet.Service, userSvc *user.Service, u *user.User) TransferModel {
	m := TransferModel{
		walletService: walletSvc,
		userService:   userSvc,
		currentUser:   u,
	}
	m.form = m.newForm()

	return m
}

func (m TransferModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("username").
				Title("Recipient username").
				Value(&m.formUsername).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("username cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("10.00").
				Value(&m.formAmount).
				Validate(func(s string) error {
					d, err := decimal.NewFromString(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("amount must be a number")
					}
					if !d.IsPositive() {
						return fmt.Errorf("amount must be positive")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m TransferModel) Title() string     { return "Transfer Coins" }
func (m TransferModel) ShortHelp() string { return "Navigate form | Esc: back" }

func (m TransferModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m TransferModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.done {
			if keyMsg.String() == "n" {
				m.done = false
				m.status = ""
				m.formUsername = ""
				m.formAmount = ""
				m.form = m.newForm()

				return m, m.form.Init()
			}

			return m, nil
		}
	}

	if resultMsg, ok := msg.(transferResultMsg); ok {
		m.done = true

		if resultMsg.err != nil {
			m.status = fmt.Sprintf("Transfer failed: %v", resultMsg.err)
		} else {
			m.status = fmt.Sprintf("Sent %s coins to %s.",
				FormatCoins(resultMsg.sent), m.formUsername)
		}

		return m, nil
	}

	if m.done {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.transferCmd()
}

func (m TransferModel) View() string {
	if m.done {
		return lipgloss.NewStyle().Padding(2).Render(
			m.status + "\n\n(n: new transfer, Esc: back)")
	}

	return lipgloss.NewStyle().Padding(2).Render(
		"Transfer Coins\n\n" + m.form.View() + "\n" + m.ShortHelp())
}

type transferResultMsg struct {
	sent decimal.Decimal
	err  error
}

func (m TransferModel) transferCmd() tea.Cmd {
	username := strings.TrimSpace(m.form.GetString("username"))
	amount, _ := decimal.NewFromString(strings.TrimSpace(m.form.GetString("amount")))

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		to, err := m.userService.GetByUsername(ctx, username)
		if err != nil {
			return transferResultMsg{err: err}
		}

		tx, err := m.walletService.Transfer(ctx, m.currentUser, to, amount)
		if err != nil {
			return transferResultMsg{err: err}
		}

		return transferResultMsg{sent: tx.Coins}
	}
}
