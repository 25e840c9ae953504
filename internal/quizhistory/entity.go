package quizhistory

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Quiz struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Artists        datatypes.JSON `gorm:"type:jsonb;not null" json:"artists"`
	Summary        string         `gorm:"type:text;not null" json:"summary"`
	TotalQuestions int            `gorm:"not null;default:0" json:"total_questions"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`

	Questions []QuizQuestion `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type QuizQuestion struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Content       string         `gorm:"type:text;not null" json:"content"`
	Options       datatypes.JSON `gorm:"type:jsonb;not null" json:"options"`
	CorrectOption string         `gorm:"type:text;not null" json:"correct_option"`
	Artist        *string        `gorm:"type:text" json:"artist,omitempty"`
	OrderIndex    int            `gorm:"not null" json:"order_index"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
