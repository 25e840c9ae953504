package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/tunequiz/tunequiz/internal/auth"
	"github.com/tunequiz/tunequiz/internal/config"
	"github.com/tunequiz/tunequiz/internal/middlewares"
	"github.com/tunequiz/tunequiz/internal/playback"
	"github.com/tunequiz/tunequiz/internal/preference"
	"github.com/tunequiz/tunequiz/internal/quizgen"
	"github.com/tunequiz/tunequiz/internal/quizhistory"
	"github.com/tunequiz/tunequiz/internal/quizsession"
	"github.com/tunequiz/tunequiz/internal/user"
)

type RouterConfig struct {
	UserHandler        *user.Handler
	QuizGenHandler     *quizgen.Handler
	QuizHistoryHandler *quizhistory.Handler
	SessionHandler     *quizsession.Handler
	PlaybackHandler    *playback.Handler
	PreferenceHandler  *preference.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Get("/login", cfg.UserHandler.SpotifyLogin)
		r.Get("/callback", cfg.UserHandler.SpotifyCallback)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	// Counter updates carry the email in the body so the quiz page can
	// record plays before the session cookie round-trips.
	r.Post("/users/artists", cfg.PreferenceHandler.UpdateArtists)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Route("/quizzes", func(r chi.Router) {
			r.Post("/generate", cfg.QuizGenHandler.GenerateQuiz)
			r.Get("/", cfg.QuizHistoryHandler.ListQuizzes)
			r.Get("/{id}", cfg.QuizHistoryHandler.GetQuiz)
			r.Delete("/{id}", cfg.QuizHistoryHandler.DeleteQuiz)
		})

		r.Mount("/session", quizsession.Routes(cfg.SessionHandler))
		r.Mount("/playback", playback.Routes(cfg.PlaybackHandler))
		r.Mount("/users", user.Routes(cfg.UserHandler))

		r.Get("/users/top-artists", cfg.PreferenceHandler.TopArtists)
	})
	return r
}
