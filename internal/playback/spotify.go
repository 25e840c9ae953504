package playback

import (
	"context"
	"errors"

	"github.com/tunequiz/tunequiz/internal/config"
	"github.com/tunequiz/tunequiz/internal/user"
	"github.com/zmb3/spotify"
	"golang.org/x/oauth2"
)

const topTracksMarket = "US"

var (
	ErrUserNotFound     = errors.New("user not found for playback")
	ErrNotConnected     = errors.New("user has no spotify access token")
	ErrDecryptionFailed = errors.New("failed to decrypt user's spotify token")
)

type spotifyFactory struct {
	users         user.UserRepository
	authenticator spotify.Authenticator
}

func NewSpotifyFactory(users user.UserRepository, authenticator spotify.Authenticator) ProviderFactory {
	return &spotifyFactory{
		users:         users,
		authenticator: authenticator,
	}
}

// ForUser decrypts the stored Spotify tokens and builds an auto-refreshing
// client. A refreshed access token is re-encrypted and written back so the
// next request starts from the fresh one.
func (f *spotifyFactory) ForUser(ctx context.Context, userID string) (Provider, error) {
	log := config.WithContext(ctx)

	u, err := f.users.GetByID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load user for playback client")
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if u.EncryptedSpotifyAccessToken == "" {
		return nil, ErrNotConnected
	}

	accessToken, err := config.Decrypt(u.EncryptedSpotifyAccessToken)
	if err != nil {
		log.WithError(err).Error("Failed to decrypt access token")
		return nil, ErrDecryptionFailed
	}
	refreshToken := ""
	if u.EncryptedSpotifyRefreshToken != "" {
		if refreshToken, err = config.Decrypt(u.EncryptedSpotifyRefreshToken); err != nil {
			log.WithError(err).Error("Failed to decrypt refresh token")
			return nil, ErrDecryptionFailed
		}
	}

	token := &oauth2.Token{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		Expiry:       u.SpotifyTokenExpiry,
	}

	client := f.authenticator.NewClient(token)
	client.AutoRetry = true

	if fresh, err := client.Token(); err == nil && fresh.AccessToken != accessToken {
		if encAccess, encErr := config.Encrypt(fresh.AccessToken); encErr == nil {
			if saveErr := f.users.UpdateTokens(userID, encAccess, "", fresh.Expiry); saveErr != nil {
				log.WithError(saveErr).Warn("Failed to persist refreshed Spotify token")
			}
		}
	}

	return &spotifyProvider{client: client}, nil
}

type spotifyProvider struct {
	client spotify.Client
}

func (p *spotifyProvider) Devices(ctx context.Context) ([]Device, error) {
	playerDevices, err := p.client.PlayerDevices()
	if err != nil {
		return nil, err
	}

	devices := make([]Device, 0, len(playerDevices))
	for _, d := range playerDevices {
		devices = append(devices, Device{
			ID:     string(d.ID),
			Name:   d.Name,
			Active: d.Active,
		})
	}
	return devices, nil
}

func (p *spotifyProvider) SearchArtistID(ctx context.Context, name string) (string, error) {
	limit := 1
	result, err := p.client.SearchOpt(name, spotify.SearchTypeArtist, &spotify.Options{Limit: &limit})
	if err != nil {
		return "", err
	}
	if result.Artists == nil || len(result.Artists.Artists) == 0 {
		return "", nil
	}
	return string(result.Artists.Artists[0].ID), nil
}

func (p *spotifyProvider) TopTrack(ctx context.Context, artistID string) (*Track, error) {
	tracks, err := p.client.GetArtistsTopTracks(spotify.ID(artistID), topTracksMarket)
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, nil
	}
	return &Track{
		Name: tracks[0].Name,
		URI:  string(tracks[0].URI),
	}, nil
}

func (p *spotifyProvider) Play(ctx context.Context, deviceID string, trackURI string) error {
	opts := &spotify.PlayOptions{URIs: []spotify.URI{spotify.URI(trackURI)}}
	if deviceID != "" {
		id := spotify.ID(deviceID)
		opts.DeviceID = &id
	}
	return p.client.PlayOpt(opts)
}

func (p *spotifyProvider) Pause(ctx context.Context, deviceID string) error {
	if deviceID == "" {
		return p.client.Pause()
	}
	id := spotify.ID(deviceID)
	return p.client.PauseOpt(&spotify.PlayOptions{DeviceID: &id})
}
