package playback

import "context"

type Device struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type Track struct {
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// Provider is the slice of the music provider's REST surface the
// coordinator needs: device list, artist search, top tracks and transport
// commands.
type Provider interface {
	Devices(ctx context.Context) ([]Device, error)
	// SearchArtistID resolves a name to the provider's artist ID via a
	// top-1 search. Empty ID with nil error means no match.
	SearchArtistID(ctx context.Context, name string) (string, error)
	// TopTrack returns the artist's first top track for the fixed market,
	// or nil when the artist has none.
	TopTrack(ctx context.Context, artistID string) (*Track, error)
	Play(ctx context.Context, deviceID string, trackURI string) error
	Pause(ctx context.Context, deviceID string) error
}

// ProviderFactory builds a Provider bound to one user's credentials.
type ProviderFactory interface {
	ForUser(ctx context.Context, userID string) (Provider, error)
}
