package playback

import (
	"github.com/redis/go-redis/v9"
	"github.com/tunequiz/tunequiz/internal/quizsession"
	"github.com/tunequiz/tunequiz/internal/user"
	"github.com/zmb3/spotify"
)

type PlaybackContainer struct {
	Coordinator *Coordinator
	Handler     *Handler
}

func NewPlaybackContainer(
	users user.UserRepository,
	authenticator spotify.Authenticator,
	cache *redis.Client,
	sessions *quizsession.Store,
) *PlaybackContainer {
	factory := NewSpotifyFactory(users, authenticator)
	coordinator := NewCoordinator(factory, cache)
	handler := NewHandler(coordinator, sessions)

	return &PlaybackContainer{
		Coordinator: coordinator,
		Handler:     handler,
	}
}
