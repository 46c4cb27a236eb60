package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/PANATARA/chorebank/internal/auth"
	"github.com/PANATARA/chorebank/internal/cache"
	"github.com/PANATARA/chorebank/internal/chore"
	choreStore "github.com/PANATARA/chorebank/internal/chore/store"
	"github.com/PANATARA/chorebank/internal/completion"
	completionStore "github.com/PANATARA/chorebank/internal/completion/store"
	"github.com/PANATARA/chorebank/internal/config"
	"github.com/PANATARA/chorebank/internal/database"
	"github.com/PANATARA/chorebank/internal/family"
	familyStore "github.com/PANATARA/chorebank/internal/family/store"
	chorebankHttp "github.com/PANATARA/chorebank/internal/http"
	choreHandler "github.com/PANATARA/chorebank/internal/http/chore"
	completionHandler "github.com/PANATARA/chorebank/internal/http/completion"
	confirmationHandler "github.com/PANATARA/chorebank/internal/http/confirmation"
	familyHandler "github.com/PANATARA/chorebank/internal/http/family"
	"github.com/PANATARA/chorebank/internal/http/middleware"
	productHandler "github.com/PANATARA/chorebank/internal/http/product"
	userHandler "github.com/PANATARA/chorebank/internal/http/user"
	walletHandler "github.com/PANATARA/chorebank/internal/http/wallet"
	"github.com/PANATARA/chorebank/internal/logging"
	"github.com/PANATARA/chorebank/internal/product"
	productStore "github.com/PANATARA/chorebank/internal/product/store"
	"github.com/PANATARA/chorebank/internal/user"
	userStore "github.com/PANATARA/chorebank/internal/user/store"
	"github.com/PANATARA/chorebank/internal/wallet"
	walletStore "github.com/PANATARA/chorebank/internal/wallet/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.App.LogLevel)

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	redisCache, err := cache.New(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.TTL)
	if err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisCache.Close()

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

	tokens := auth.NewTokens(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL, cfg.JWT.InviteTokenTTL)

	var (
		userService   = user.NewService(userStore.New(db))
		choreService  = chore.NewService(choreStore.New(db))
		walletService = wallet.NewService(walletStore.New(db), choreStore.New(db), db, transferRate, purchaseRate)
		familyService = family.NewService(
			familyStore.New(db), userStore.New(db), walletService, choreService, redisCache, db,
		)
		completionService = completion.NewService(completionStore.New(db), walletService, familyService, db)
		productService    = product.NewService(productStore.New(db), walletService, db)
	)

	var (
		userH         = userHandler.NewHandler(userService, tokens)
		walletH       = walletHandler.NewHandler(walletService, userService)
		choreH        = choreHandler.NewHandler(choreService)
		completionH   = completionHandler.NewHandler(completionService, choreService)
		confirmationH = confirmationHandler.NewHandler(completionService)
		familyH       = familyHandler.NewHandler(familyService, tokens)
		productH      = productHandler.NewHandler(productService)
	)

	router := chorebankHttp.New(
		userH, walletH, choreH, completionH, confirmationH, familyH, productH,
		middleware.RequireUser(tokens, userService),
		middleware.RequireFamily,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
