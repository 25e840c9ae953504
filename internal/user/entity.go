package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email       string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	DisplayName string    `gorm:"type:text" json:"display_name"`
	SpotifyID   string    `gorm:"type:text;index" json:"spotify_id"`

	// Spotify tokens are stored AES-GCM encrypted (config.Encrypt).
	EncryptedSpotifyAccessToken  string    `gorm:"type:text" json:"-"`
	EncryptedSpotifyRefreshToken string    `gorm:"type:text" json:"-"`
	SpotifyTokenExpiry           time.Time `json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
