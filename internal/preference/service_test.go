package preference

import (
	"context"
	"testing"
	"time"
)

type fakeRepository struct {
	prefs map[string]*Preference
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{prefs: make(map[string]*Preference)}
}

func (r *fakeRepository) FindByEmail(ctx context.Context, email string) (*Preference, error) {
	pref, ok := r.prefs[email]
	if !ok {
		return nil, nil
	}
	copied := *pref
	copied.Artists = append([]ArtistCount(nil), pref.Artists...)
	return &copied, nil
}

func (r *fakeRepository) Upsert(ctx context.Context, pref *Preference) (*Preference, error) {
	copied := *pref
	copied.Artists = append([]ArtistCount(nil), pref.Artists...)
	r.prefs[pref.Email] = &copied
	return pref, nil
}

func TestUpdateArtists(t *testing.T) {
	ctx := context.Background()
	const email = "user@example.com"

	t.Run("IncrementExistingAndInsertNew", func(t *testing.T) {
		repo := newFakeRepository()
		repo.prefs[email] = &Preference{
			Email:   email,
			Artists: []ArtistCount{{Name: "Adele", Count: 2, UpdatedAt: time.Now().Add(-time.Hour)}},
		}
		svc := NewService(repo)

		pref, err := svc.UpdateArtists(ctx, email, []string{"Adele", "Coldplay"})
		if err != nil {
			t.Fatalf("UpdateArtists failed: %v", err)
		}

		if len(pref.Artists) != 2 {
			t.Fatalf("expected 2 artists, got %d", len(pref.Artists))
		}
		if pref.Artists[0].Name != "Adele" || pref.Artists[0].Count != 3 {
			t.Errorf("expected Adele first with count 3, got %s/%d", pref.Artists[0].Name, pref.Artists[0].Count)
		}
		if pref.Artists[1].Name != "Coldplay" || pref.Artists[1].Count != 1 {
			t.Errorf("expected Coldplay with count 1, got %s/%d", pref.Artists[1].Name, pref.Artists[1].Count)
		}
	})

	t.Run("CapsAtTopFive", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)

		if _, err := svc.UpdateArtists(ctx, email, []string{"A1", "A2"}); err != nil {
			t.Fatal(err)
		}
		pref, err := svc.UpdateArtists(ctx, email, []string{"A1", "B1", "B2", "B3", "B4"})
		if err != nil {
			t.Fatal(err)
		}

		if len(pref.Artists) != 5 {
			t.Fatalf("expected exactly 5 retained artists, got %d", len(pref.Artists))
		}
		if pref.Artists[0].Name != "A1" || pref.Artists[0].Count != 2 {
			t.Errorf("highest-count artist should lead, got %s/%d", pref.Artists[0].Name, pref.Artists[0].Count)
		}
		for _, a := range pref.Artists {
			if a.Name == "A2" {
				t.Error("the lowest-ranked entrant should have been dropped")
			}
		}
	})

	t.Run("TieBreakPrefersMostRecentlyUpdated", func(t *testing.T) {
		repo := newFakeRepository()
		old := time.Now().Add(-time.Hour)
		repo.prefs[email] = &Preference{
			Email:   email,
			Artists: []ArtistCount{{Name: "Old", Count: 1, UpdatedAt: old}},
		}
		svc := NewService(repo)

		pref, err := svc.UpdateArtists(ctx, email, []string{"Fresh"})
		if err != nil {
			t.Fatal(err)
		}

		if pref.Artists[0].Name != "Fresh" {
			t.Errorf("on equal counts the most recently updated artist should sort first, got %s", pref.Artists[0].Name)
		}
	})

	t.Run("DuplicateNamesCountOncePerBatch", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)

		pref, err := svc.UpdateArtists(ctx, email, []string{"Adele", "Adele"})
		if err != nil {
			t.Fatal(err)
		}
		if pref.Artists[0].Count != 1 {
			t.Errorf("a name repeated in one batch should count once, got %d", pref.Artists[0].Count)
		}
	})
}

func TestTopArtists(t *testing.T) {
	ctx := context.Background()
	const email = "user@example.com"

	t.Run("NoRecord", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		names, err := svc.TopArtists(ctx, email)
		if err != nil {
			t.Fatal(err)
		}
		if len(names) != 0 {
			t.Errorf("expected no names for a missing record, got %v", names)
		}
	})

	t.Run("DescendingByCount", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)

		for i := 0; i < 3; i++ {
			if _, err := svc.UpdateArtists(ctx, email, []string{"Adele"}); err != nil {
				t.Fatal(err)
			}
		}
		if _, err := svc.UpdateArtists(ctx, email, []string{"Coldplay"}); err != nil {
			t.Fatal(err)
		}

		names, err := svc.TopArtists(ctx, email)
		if err != nil {
			t.Fatal(err)
		}
		if len(names) != 2 || names[0] != "Adele" || names[1] != "Coldplay" {
			t.Errorf("expected [Adele Coldplay], got %v", names)
		}
	})
}
