package app

import (
	authAPI "bingo_backend/internal/api/auth"
	drawAPI "bingo_backend/internal/api/draw"
	"bingo_backend/internal/middleware"
	"bingo_backend/internal/service"
	"bingo_backend/pkg/resp"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type routerDeps struct {
	draw   *drawAPI.Handler
	auth   *authAPI.Handler
	gate   service.AuthService
	logger *log.Logger
}

func newRouter(deps routerDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(deps.logger))

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp.WriteJSONResponse(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
		})
	})

	r.Route("/api", func(rr chi.Router) {
		// Игроки опрашивают статус без пароля
		rr.Get("/status", deps.draw.Status)
		rr.Post("/caller/login", deps.auth.Login)

		// Пульт ведущего
		rr.Group(func(gr chi.Router) {
			gr.Use(middleware.RequireCaller(deps.gate))
			gr.Post("/draw", deps.draw.Draw)
			gr.Delete("/draw", deps.draw.Reset)
		})
	})

	return r
}
