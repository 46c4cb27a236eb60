package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/PANATARA/chorebank/internal/user"
	"github.com/PANATARA/chorebank/internal/wallet"
)

const historyPageSize = 50

// WalletModel shows the user's balance and transaction history.
type WalletModel struct {
	CommonModel
	walletService *wallet.Service
	currentUser   *user.User

	table   table.Model
	balance decimal.Decimal

	loading bool
	err     error
}

func NewWalletModel(walletSvc *wallet.Service, u *user.User) WalletModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Direction", Width: 10},
		{Title: "Coins", Width: 10},
		{Title: "Type", Width: 10},
		{Title: "Detail", Width: 40},
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

	return WalletModel{
		walletService: walletSvc,
		currentUser:   u,
		table:         t,
		loading:       true,
	}
}

func (m WalletModel) Title() string     { return "Wallet" }
func (m WalletModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m WalletModel) Init() tea.Cmd {
	return m.loadWalletCmd()
}

func (m WalletModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case loadWalletMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.balance = msg.balance

		rows := make([]table.Row, len(msg.entries))
		for i, e := range msg.entries {
			rows[i] = table.Row{
				e.CreatedAt.Format("2006-01-02"),
				e.Direction,
				FormatCoins(e.Coins),
				e.Type,
				e.Detail,
			}
		}

		m.table.SetRows(rows)

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadWalletCmd()
		}
	}

	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m WalletModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Error loading wallet: %v\n\n(Esc to back)", m.err))
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading wallet...")
	}

	header := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("Balance: %s coins", FormatCoins(m.balance)))

	return lipgloss.NewStyle().Padding(1).Render(
		header + "\n\n" + m.table.View() + "\n\n" + m.ShortHelp())
}

type loadWalletMsg struct {
	balance decimal.Decimal
	entries []*wallet.Entry
	err     error
}

func (m WalletModel) loadWalletCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		balance, err := m.walletService.Balance(ctx, m.currentUser.ID)
		if err != nil {
			return loadWalletMsg{err: err}
		}

		entries, err := m.walletService.Transactions(ctx, m.currentUser.ID, 0, historyPageSize)

		return loadWalletMsg{balance: balance, entries: entries, err: err}
	}
}
