package quizhistory

import (
	"errors"

	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(q *Quiz) error
	GetByID(id string) (*Quiz, error)
	ListByUser(userID string) ([]*Quiz, error)
	Delete(id string) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(q *Quiz) error {
	return r.db.Create(q).Error
}

func (r *quizRepository) GetByID(id string) (*Quiz, error) {
	var quiz Quiz
	if err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&quiz, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) ListByUser(userID string) ([]*Quiz, error) {
	var quizzes []*Quiz
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) Delete(id string) error {
	return r.db.Delete(&Quiz{}, "id = ?", id).Error
}
