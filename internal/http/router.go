package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/PANATARA/chorebank/internal/http/chore"
	"github.com/PANATARA/chorebank/internal/http/completion"
	"github.com/PANATARA/chorebank/internal/http/confirmation"
	"github.com/PANATARA/chorebank/internal/http/family"
	authmw "github.com/PANATARA/chorebank/internal/http/middleware"
	"github.com/PANATARA/chorebank/internal/http/product"
	"github.com/PANATARA/chorebank/internal/http/user"
	"github.com/PANATARA/chorebank/internal/http/wallet"
)

func New(
	usersV1 *user.Handler,
	walletsV1 *wallet.Handler,
	choresV1 *chore.Handler,
	completionsV1 *completion.Handler,
	confirmationsV1 *confirmation.Handler,
	familiesV1 *family.Handler,
	productsV1 *product.Handler,
	requireUser, requireFamily authmw.Middleware,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			usersV1.Routes(r)
		})

		r.Route("/auth", usersV1.AuthRoutes)

		r.Group(func(r chi.Router) {
			r.Use(requireUser)

			r.Route("/families", familiesV1.Routes)

			r.Group(func(r chi.Router) {
				r.Use(requireFamily)

				r.Route("/wallets", walletsV1.Routes)

				r.Route("/chores", func(r chi.Router) {
					choresV1.Routes(r)
					r.Route("/completions", completionsV1.Routes)
					r.Route("/confirmations", confirmationsV1.Routes)
				})

				r.Route("/products", productsV1.Routes)
			})
		})
	})

	return router
}
