package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	GetByID(id string) (*User, error)
	GetByEmail(email string) (*User, error)
	Upsert(u *User) error
	UpdateTokens(id string, encryptedAccess, encryptedRefresh string, expiry time.Time) error
}

type userRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(id string) (*User, error) {
	var u User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(email string) (*User, error) {
	var u User
	if err := r.db.First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Upsert(u *User) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"display_name",
			"spotify_id",
			"encrypted_spotify_access_token",
			"encrypted_spotify_refresh_token",
			"spotify_token_expiry",
			"updated_at",
		}),
	}).Create(u).Error
}

func (r *userRepository) UpdateTokens(id string, encryptedAccess, encryptedRefresh string, expiry time.Time) error {
	updates := map[string]interface{}{
		"encrypted_spotify_access_token": encryptedAccess,
		"spotify_token_expiry":           expiry,
	}
	if encryptedRefresh != "" {
		updates["encrypted_spotify_refresh_token"] = encryptedRefresh
	}
	return r.db.Model(&User{}).Where("id = ?", id).Updates(updates).Error
}
