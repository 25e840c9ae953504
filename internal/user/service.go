package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tunequiz/tunequiz/internal/auth"
	"github.com/tunequiz/tunequiz/internal/config"
	"github.com/zmb3/spotify"
)

const SessionDuration = 24 * time.Hour

var ErrUserNotFound = errors.New("user not found")

type Service interface {
	LoginURL(state string) string
	HandleCallback(ctx context.Context, code string) (*User, string, error)
	GetByID(ctx context.Context, id string) (*User, error)
	EmailByID(ctx context.Context, id string) (string, error)
}

type service struct {
	repo          UserRepository
	authenticator spotify.Authenticator
}

func NewService(repo UserRepository, authenticator spotify.Authenticator) Service {
	return &service{
		repo:          repo,
		authenticator: authenticator,
	}
}

func (s *service) LoginURL(state string) string {
	return s.authenticator.AuthURL(state)
}

// HandleCallback exchanges the authorization code, stores the encrypted
// Spotify tokens on the user row and returns the user plus a session JWT.
func (s *service) HandleCallback(ctx context.Context, code string) (*User, string, error) {
	log := config.WithContext(ctx)

	token, err := s.authenticator.Exchange(code)
	if err != nil {
		log.WithError(err).Error("Failed to exchange Spotify authorization code")
		return nil, "", fmt.Errorf("code exchange failed: %w", err)
	}

	client := s.authenticator.NewClient(token)
	me, err := client.CurrentUser()
	if err != nil {
		log.WithError(err).Error("Failed to fetch Spotify profile")
		return nil, "", fmt.Errorf("profile fetch failed: %w", err)
	}
	if me.Email == "" {
		return nil, "", errors.New("spotify profile has no email")
	}

	encAccess, err := config.Encrypt(token.AccessToken)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encrypt access token: %w", err)
	}
	encRefresh := ""
	if token.RefreshToken != "" {
		if encRefresh, err = config.Encrypt(token.RefreshToken); err != nil {
			return nil, "", fmt.Errorf("failed to encrypt refresh token: %w", err)
		}
	}

	u, err := s.repo.GetByEmail(me.Email)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		u = &User{ID: uuid.New(), Email: me.Email}
	}
	u.DisplayName = me.DisplayName
	u.SpotifyID = me.ID
	u.EncryptedSpotifyAccessToken = encAccess
	if encRefresh != "" {
		u.EncryptedSpotifyRefreshToken = encRefresh
	}
	u.SpotifyTokenExpiry = token.Expiry

	if err := s.repo.Upsert(u); err != nil {
		log.WithError(err).Error("Failed to persist user after Spotify login")
		return nil, "", err
	}

	sessionToken, err := auth.GenerateJWT(u.ID.String(), "user", SessionDuration)
	if err != nil {
		return nil, "", err
	}

	log.Infof("User %s logged in via Spotify", u.Email)
	return u, sessionToken, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(id)
}

func (s *service) EmailByID(ctx context.Context, id string) (string, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}
	return u.Email, nil
}
