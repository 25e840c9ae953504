package quizhistory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/tunequiz/tunequiz/internal/config"
	"github.com/tunequiz/tunequiz/internal/quizgen"
	"gorm.io/gorm"
)

type QuizHistoryService interface {
	ArchiveGenerated(ctx context.Context, userID string, artists []string, doc *quizgen.QuizDocument) error
	GetQuiz(ctx context.Context, quizID string) (*Quiz, error)
	ListQuizzesByUser(ctx context.Context, userID string) ([]*Quiz, error)
	DeleteQuiz(ctx context.Context, quizID string) error
}

type quizHistoryService struct {
	repo QuizRepository
	db   *gorm.DB
}

func NewService(db *gorm.DB, repo QuizRepository) QuizHistoryService {
	return &quizHistoryService{
		repo: repo,
		db:   db,
	}
}

// ArchiveGenerated stores a generated document so the user can replay it
// later. Satisfies quizgen.Archiver.
func (s *quizHistoryService) ArchiveGenerated(ctx context.Context, userID string, artists []string, doc *quizgen.QuizDocument) error {
	log := config.WithContext(ctx)

	uid, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	artistsJSON, err := json.Marshal(artists)
	if err != nil {
		return err
	}

	quiz := &Quiz{
		ID:             uuid.New(),
		UserID:         uid,
		Artists:        artistsJSON,
		Summary:        doc.Summary,
		TotalQuestions: len(doc.Questions),
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			log.Errorf("Failed to archive quiz: %v", err)
			return err
		}

		questions := make([]*QuizQuestion, 0, len(doc.Questions))
		for i, q := range doc.Questions {
			optionsJSON, err := json.Marshal(q.Options)
			if err != nil {
				return err
			}
			row := &QuizQuestion{
				ID:            uuid.New(),
				QuizID:        quiz.ID,
				Content:       q.QuestionText,
				Options:       optionsJSON,
				CorrectOption: q.CorrectOption,
				OrderIndex:    i,
			}
			if q.Artist != "" {
				artist := q.Artist
				row.Artist = &artist
			}
			questions = append(questions, row)
		}

		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				log.Errorf("Failed to archive quiz questions: %v", err)
				return err
			}
		}

		log.Infof("Archived quiz %s with %d questions", quiz.ID, len(questions))
		return nil
	})
}

func (s *quizHistoryService) GetQuiz(ctx context.Context, quizID string) (*Quiz, error) {
	return s.repo.GetByID(quizID)
}

func (s *quizHistoryService) ListQuizzesByUser(ctx context.Context, userID string) ([]*Quiz, error) {
	return s.repo.ListByUser(userID)
}

func (s *quizHistoryService) DeleteQuiz(ctx context.Context, quizID string) error {
	log := config.WithContext(ctx)

	if err := s.repo.Delete(quizID); err != nil {
		log.Errorf("Failed to delete quiz: %v", err)
		return err
	}
	return nil
}
