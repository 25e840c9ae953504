package quizgen

import (
	"context"
	"log"
)

type QuizGenContainer struct {
	Service Service
	Handler *Handler
}

func NewQuizGenContainer(sessions SessionSetter, prefs PreferenceRecorder, archive Archiver, directory UserDirectory) *QuizGenContainer {
	ctx := context.Background()
	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		log.Fatalf("failed to initialize generation provider: %v", err)
	}
	service := NewService(provider)
	handler := NewHandler(service, sessions, prefs, archive, directory)

	return &QuizGenContainer{
		Service: service,
		Handler: handler,
	}
}
