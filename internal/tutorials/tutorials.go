// Package tutorials serves the built-in video tutorial library: tutorial categories, single
// tutorials and the playlist detail pages.
package tutorials

import (
	"context"
	"fmt"

	"nextskill/internal/models"
	"nextskill/internal/qerrors"
	"nextskill/internal/repository"
)

// DefaultPlaylist is shown for unknown playlist slugs.
const DefaultPlaylist = "web-dev"

// Library is read-only after Load.
type Library struct {
	categories []models.TutorialCategory
	tutorials  []models.Tutorial
	playlists  map[string]models.Playlist
}

// Load reads the tutorial categories, tutorials and playlists from src. The default playlist
// must be present.
func Load(ctx context.Context, src repository.Source) (*Library, error) {
	lib := &Library{
		playlists: make(map[string]models.Playlist),
	}

	if err := fetchList(ctx, src, models.TutorialCategoriesResource, &lib.categories); err != nil {
		return nil, err
	}
	if err := fetchList(ctx, src, models.TutorialsResource, &lib.tutorials); err != nil {
		return nil, err
	}

	var playlists []models.Playlist
	if err := fetchList(ctx, src, models.PlaylistsResource, &playlists); err != nil {
		return nil, err
	}
	for _, p := range playlists {
		lib.playlists[p.Slug] = p
	}

	if _, ok := lib.playlists[DefaultPlaylist]; !ok {
		return nil, fmt.Errorf("%w: default playlist %q", qerrors.PlaylistNotFoundError, DefaultPlaylist)
	}

	return lib, nil
}

func fetchList(ctx context.Context, src repository.Source, name string, out interface{}) error {
	raw, err := src.Fetch(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", name, err)
	}

	if err := repository.DecodeList(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}

	return nil
}

// Categories returns a copy of the tutorial categories.
func (l *Library) Categories() []models.TutorialCategory {
	return append([]models.TutorialCategory{}, l.categories...)
}

// Tutorials returns the tutorials of a category id, or all of them for an empty id.
func (l *Library) Tutorials(category string) []models.Tutorial {
	tutorials := make([]models.Tutorial, 0, len(l.tutorials))
	for _, t := range l.tutorials {
		if category == "" || t.Category == category {
			tutorials = append(tutorials, t)
		}
	}

	return tutorials
}

// Playlist returns the playlist for slug. Unknown slugs get the default playlist, and found is
// false.
func (l *Library) Playlist(slug string) (playlist models.Playlist, found bool) {
	if p, ok := l.playlists[slug]; ok {
		return p, true
	}

	return l.playlists[DefaultPlaylist], false
}

// Featured returns the playlist of the first tutorial category that has one.
func (l *Library) Featured() models.Playlist {
	for _, c := range l.categories {
		if p, ok := l.playlists[c.ID]; ok {
			return p
		}
	}

	return l.playlists[DefaultPlaylist]
}
