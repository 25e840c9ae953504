package container

import (
	"context"
	"log"
	"os"

	"github.com/tunequiz/tunequiz/internal/auth"
	"github.com/tunequiz/tunequiz/internal/config"
	"github.com/tunequiz/tunequiz/internal/playback"
	"github.com/tunequiz/tunequiz/internal/preference"
	"github.com/tunequiz/tunequiz/internal/quizgen"
	"github.com/tunequiz/tunequiz/internal/quizhistory"
	"github.com/tunequiz/tunequiz/internal/quizsession"
	"github.com/tunequiz/tunequiz/internal/user"
)

type Container struct {
	UserContainer        *user.UserContainer
	QuizGenContainer     *quizgen.QuizGenContainer
	QuizHistoryContainer *quizhistory.QuizHistoryContainer
	SessionContainer     *quizsession.SessionContainer
	PlaybackContainer    *playback.PlaybackContainer
	PreferenceContainer  *preference.PreferenceContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.DB.AutoMigrate(&user.User{}, &quizhistory.Quiz{}, &quizhistory.QuizQuestion{}); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	if err := config.ConnectMongo(ctx); err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}

	cache := config.NewRedis(ctx)

	authenticator := user.NewSpotifyAuthenticator()

	userContainer := user.NewUserContainer(config.DB, authenticator)
	sessionContainer := quizsession.NewSessionContainer()
	preferenceContainer := preference.NewPreferenceContainer(config.MongoDatabase, userContainer.Service)
	quizHistoryContainer := quizhistory.NewQuizHistoryContainer(config.DB)
	playbackContainer := playback.NewPlaybackContainer(
		userContainer.Repo,
		authenticator,
		cache,
		sessionContainer.Store,
	)
	quizGenContainer := quizgen.NewQuizGenContainer(
		sessionContainer.Store,
		preferenceContainer.Service,
		quizHistoryContainer.Service,
		userContainer.Service,
	)

	return &Container{
		UserContainer:        userContainer,
		QuizGenContainer:     quizGenContainer,
		QuizHistoryContainer: quizHistoryContainer,
		SessionContainer:     sessionContainer,
		PlaybackContainer:    playbackContainer,
		PreferenceContainer:  preferenceContainer,
	}
}
