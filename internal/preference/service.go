package preference

import (
	"context"
	"sort"
	"time"

	"github.com/tunequiz/tunequiz/internal/config"
)

const maxTopArtists = 5

type Service interface {
	RecordArtists(ctx context.Context, email string, names []string) error
	UpdateArtists(ctx context.Context, email string, names []string) (*Preference, error)
	TopArtists(ctx context.Context, email string) ([]string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// RecordArtists satisfies quizgen.PreferenceRecorder.
func (s *service) RecordArtists(ctx context.Context, email string, names []string) error {
	_, err := s.UpdateArtists(ctx, email, names)
	return err
}

// UpdateArtists increments the counter for each named artist (insert with
// count 1 on first mention), then trims the document to the top 5 by count.
// Names repeated within one batch are counted once.
func (s *service) UpdateArtists(ctx context.Context, email string, names []string) (*Preference, error) {
	log := config.WithContext(ctx)

	pref, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if pref == nil {
		pref = &Preference{Email: email}
	}

	now := time.Now()
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		found := false
		for i := range pref.Artists {
			if pref.Artists[i].Name == name {
				pref.Artists[i].Count++
				pref.Artists[i].UpdatedAt = now
				found = true
				break
			}
		}
		if !found {
			pref.Artists = append(pref.Artists, ArtistCount{Name: name, Count: 1, UpdatedAt: now})
		}
	}

	// Highest count first; on ties the most recently updated artist wins.
	sort.SliceStable(pref.Artists, func(i, j int) bool {
		a, b := pref.Artists[i], pref.Artists[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.UpdatedAt.After(b.UpdatedAt)
	})
	if len(pref.Artists) > maxTopArtists {
		pref.Artists = pref.Artists[:maxTopArtists]
	}

	updated, err := s.repo.Upsert(ctx, pref)
	if err != nil {
		log.WithError(err).Errorf("Failed to persist preferences for %s", email)
		return nil, err
	}
	return updated, nil
}

// TopArtists returns up to 5 artist names, descending by count.
func (s *service) TopArtists(ctx context.Context, email string) ([]string, error) {
	pref, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	names := []string{}
	if pref == nil {
		return names, nil
	}
	for _, a := range pref.Artists {
		names = append(names, a.Name)
		if len(names) == maxTopArtists {
			break
		}
	}
	return names, nil
}
