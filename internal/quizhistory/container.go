package quizhistory

import "gorm.io/gorm"

type QuizHistoryContainer struct {
	Service QuizHistoryService
	Handler *Handler
}

func NewQuizHistoryContainer(db *gorm.DB) *QuizHistoryContainer {
	repo := NewRepository(db)
	service := NewService(db, repo)
	handler := NewHandler(service)

	return &QuizHistoryContainer{
		Service: service,
		Handler: handler,
	}
}
