package playback

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tunequiz/tunequiz/internal/config"
	"github.com/tunequiz/tunequiz/internal/quizsession"
)

const trackCacheTTL = 24 * time.Hour

// Result is what the playback endpoints return. Failures never propagate as
// errors out of the coordinator; they come back as a user-visible notice.
type Result struct {
	Notice   string                     `json:"notice,omitempty"`
	Playback *quizsession.PlaybackState `json:"playback,omitempty"`
}

type Coordinator struct {
	factory ProviderFactory
	cache   *redis.Client // nil disables the track-resolution cache
}

func NewCoordinator(factory ProviderFactory, cache *redis.Client) *Coordinator {
	return &Coordinator{
		factory: factory,
		cache:   cache,
	}
}

func notice(format string, args ...interface{}) Result {
	return Result{Notice: fmt.Sprintf(format, args...)}
}

// PlayTopTrackForArtist resolves artistName to its top track and starts
// playback on the user's active device. The three provider calls are
// strictly sequential; each depends on the previous result. The observed
// session state is updated only when this request is still the latest one.
func (c *Coordinator) PlayTopTrackForArtist(ctx context.Context, session *quizsession.Session, userID, artistName string) Result {
	log := config.WithContext(ctx)
	token := session.BeginPlayback()

	provider, err := c.factory.ForUser(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Could not build playback client")
		return notice("Spotify account not connected. Please log in again.")
	}

	device, err := c.activeDevice(ctx, provider)
	if err != nil {
		log.WithError(err).Warn("Device discovery failed")
		return notice("Could not reach Spotify. Try again.")
	}
	if device == nil {
		return notice("No active Spotify device found. Open Spotify on a device first.")
	}

	track, err := c.resolveTopTrack(ctx, provider, artistName)
	if err != nil {
		log.WithError(err).Warnf("Track resolution failed for %q", artistName)
		return notice("Failed to look up a track for %q.", artistName)
	}
	if track == nil {
		return notice("No playable track found for %q.", artistName)
	}

	if err := provider.Play(ctx, device.ID, track.URI); err != nil {
		log.WithError(err).Warnf("Play command failed on device %s", device.Name)
		return notice("Failed to start playback on %s.", device.Name)
	}

	state := quizsession.PlaybackState{
		IsPlaying:    true,
		CurrentTrack: track.Name,
		Device:       device.Name,
	}
	if !session.ApplyPlayback(token, state) {
		// A newer playback request started while this one was in flight.
		log.Debug("Discarding stale playback result")
		return Result{Notice: "Superseded by a newer playback request."}
	}

	log.Infof("Playing %q by %s on %s", track.Name, artistName, device.Name)
	return Result{Playback: &state}
}

// PausePlayback issues a pause on the current device context.
func (c *Coordinator) PausePlayback(ctx context.Context, session *quizsession.Session, userID string) Result {
	log := config.WithContext(ctx)
	token := session.BeginPlayback()

	provider, err := c.factory.ForUser(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Could not build playback client")
		return notice("Spotify account not connected. Please log in again.")
	}

	if err := provider.Pause(ctx, ""); err != nil {
		log.WithError(err).Warn("Pause command failed")
		return notice("Failed to pause playback.")
	}

	state := session.Playback()
	state.IsPlaying = false
	if !session.ApplyPlayback(token, state) {
		return Result{Notice: "Superseded by a newer playback request."}
	}
	return Result{Playback: &state}
}

// activeDevice picks the device flagged active, else the first one, else nil.
func (c *Coordinator) activeDevice(ctx context.Context, provider Provider) (*Device, error) {
	devices, err := provider.Devices(ctx)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, nil
	}
	for i := range devices {
		if devices[i].Active {
			return &devices[i], nil
		}
	}
	return &devices[0], nil
}

// resolveTopTrack is the search → top-tracks chain, with a TTL cache on the
// final result keyed by artist name. Device lookup and play commands are
// never cached.
func (c *Coordinator) resolveTopTrack(ctx context.Context, provider Provider, artistName string) (*Track, error) {
	cacheKey := "playback:track:" + strings.ToLower(strings.TrimSpace(artistName))

	if c.cache != nil {
		if raw, err := c.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var track Track
			if json.Unmarshal(raw, &track) == nil && track.URI != "" {
				return &track, nil
			}
		}
	}

	artistID, err := provider.SearchArtistID(ctx, artistName)
	if err != nil {
		return nil, err
	}
	if artistID == "" {
		return nil, nil
	}

	track, err := provider.TopTrack(ctx, artistID)
	if err != nil || track == nil {
		return track, err
	}

	if c.cache != nil {
		if raw, err := json.Marshal(track); err == nil {
			if err := c.cache.Set(ctx, cacheKey, raw, trackCacheTTL).Err(); err != nil {
				config.WithContext(ctx).WithError(err).Debug("Failed to cache track resolution")
			}
		}
	}
	return track, nil
}
