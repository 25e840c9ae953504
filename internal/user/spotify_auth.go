package user

import (
	"os"

	"github.com/zmb3/spotify"
)

// NewSpotifyAuthenticator builds the authorization-code flow config shared
// by the login handler and the playback client.
func NewSpotifyAuthenticator() spotify.Authenticator {
	a := spotify.NewAuthenticator(
		os.Getenv("SPOTIFY_REDIRECT_URL"),
		spotify.ScopeUserReadEmail,
		spotify.ScopeUserReadPrivate,
		spotify.ScopeUserTopRead,
		spotify.ScopeUserLibraryRead,
		spotify.ScopeUserReadRecentlyPlayed,
		spotify.ScopePlaylistReadPrivate,
		spotify.ScopePlaylistReadCollaborative,
		spotify.ScopePlaylistModifyPublic,
		spotify.ScopeUserReadPlaybackState,
		spotify.ScopeUserModifyPlaybackState,
	)
	a.SetAuthInfo(os.Getenv("SPOTIFY_CLIENT_ID"), os.Getenv("SPOTIFY_CLIENT_SECRET"))
	return a
}
