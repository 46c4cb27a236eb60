package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/PANATARA/chorebank/cmd/tui/internal/view"
	"github.com/PANATARA/chorebank/internal/cache"
	"github.com/PANATARA/chorebank/internal/chore"
	choreStore "github.com/PANATARA/chorebank/internal/chore/store"
	"github.com/PANATARA/chorebank/internal/completion"
	completionStore "github.com/PANATARA/chorebank/internal/completion/store"
	"github.com/PANATARA/chorebank/internal/config"
	"github.com/PANATARA/chorebank/internal/database"
	"github.com/PANATARA/chorebank/internal/family"
	familyStore "github.com/PANATARA/chorebank/internal/family/store"
	"github.com/PANATARA/chorebank/internal/user"
	userStore "github.com/PANATARA/chorebank/internal/user/store"
	"github.com/PANATARA/chorebank/internal/wallet"
	walletStore "github.com/PANATARA/chorebank/internal/wallet/store"
)

type model struct {
	userService       *user.Service
	choreService      *chore.Service
	completionService *completion.Service
	walletService     *wallet.Service

	currentView View
	currentUser *user.User

	usernameInput textinput.Model
	loginStatus   string

	choresView   view.ChoresModel
	reviewView   view.ReviewModel
	walletView   view.WalletModel
	transferView view.TransferModel
}

type View int

const (
	ViewLogin    View = 0
	ViewMenu     View = 1
	ViewChores   View = 2
	ViewReview   View = 3
	ViewWallet   View = 4
	ViewTransfer View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	redisCache, err := cache.New(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.TTL)
	if err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}

	transferRate, err := cfg.TransferRate()
	if err != nil {
		slog.Error("invalid transfer rate", "error", err)
		os.Exit(1)
	}

	purchaseRate, err := cfg.PurchaseRate()
	if err != nil {
		slog.Error("invalid purchase rate", "error", err)
		os.Exit(1)
	}

	userSvc := user.NewService(userStore.New(db))
	choreSvc := chore.NewService(choreStore.New(db))
	walletSvc := wallet.NewService(walletStore.New(db), choreStore.New(db), db, transferRate, purchaseRate)
	familySvc := family.NewService(familyStore.New(db), userStore.New(db), walletSvc, choreSvc, redisCache, db)
	completionSvc := completion.NewService(completionStore.New(db), walletSvc, familySvc, db)

	ti := textinput.New()
	ti.Placeholder = "Username"
	ti.Width = 30
	ti.Focus()

	return model{
		userService:       userSvc,
		choreService:      choreSvc,
		completionService: completionSvc,
		walletService:     walletSvc,
		currentView:       ViewLogin,
		usernameInput:     ti,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewLogin {
			switch msg.Type {
			case tea.KeyCtrlC, tea.KeyEsc:
				return m, tea.Quit
			case tea.KeyEnter:
				return m.login()
			}

			m.usernameInput, cmd = m.usernameInput.Update(msg)

			return m, cmd
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewChores
				m.choresView = view.NewChoresModel(m.choreService, m.completionService, m.currentUser)

				return m, m.choresView.Init()
			case "2":
				m.currentView = ViewReview
				m.reviewView = view.NewReviewModel(m.completionService, m.currentUser)

				return m, m.reviewView.Init()
			case "3":
				m.currentView = ViewWallet
				m.walletView = view.NewWalletModel(m.walletService, m.currentUser)

				return m, m.walletView.Init()
			case "4":
				m.currentView = ViewTransfer
				m.transferView = view.NewTransferModel(m.walletService, m.userService, m.currentUser)

				return m, m.transferView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewChores:
		var newModel tea.Model
		newModel, cmd = m.choresView.Update(msg)
		m.choresView = newModel.(view.ChoresModel)
	case ViewReview:
		var newModel tea.Model
		newModel, cmd = m.reviewView.Update(msg)
		m.reviewView = newModel.(view.ReviewModel)
	case ViewWallet:
		var newModel tea.Model
		newModel, cmd = m.walletView.Update(msg)
		m.walletView = newModel.(view.WalletModel)
	case ViewTransfer:
		var newModel tea.Model
		newModel, cmd = m.transferView.Update(msg)
		m.transferView = newModel.(view.TransferModel)
	}

	return m, cmd
}

func (m model) login() (tea.Model, tea.Cmd) {
	ctx, cancel := view.DbCtx()
	defer cancel()

	u, err := m.userService.GetByUsername(ctx, m.usernameInput.Value())
	if err != nil {
		m.loginStatus = fmt.Sprintf("User not found: %v", err)
		return m, nil
	}

	if u.FamilyID == nil {
		m.loginStatus = "That user is not in a family yet."
		return m, nil
	}

	m.currentUser = u
	m.currentView = ViewMenu

	return m, nil
}

func (m model) View() string {
	switch m.currentView {
	case ViewLogin:
		content := "Who is using ChoreBank?\n\n" + m.usernameInput.View()
		if m.loginStatus != "" {
			content += "\n\n" + m.loginStatus
		}

		content += "\n\n(Enter to continue, Esc to quit)"

		return lipgloss.NewStyle().Padding(2).Render(content)
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("ChoreBank TUI (%s)\n\n", m.currentUser.Name) +
				"1. Chore Board\n" +
				"2. Review Queue\n" +
				"3. Wallet\n" +
				"4. Transfer Coins\n\n" +
				"q. Quit",
		)
	case ViewChores:
		return m.choresView.View()
	case ViewReview:
		return m.reviewView.View()
	case ViewWallet:
		return m.walletView.View()
	case ViewTransfer:
		return m.transferView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
