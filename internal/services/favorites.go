package services

import (
	"context"
	"strings"
	"sync"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

// FavoritesState is the favorites list lifecycle state.
type FavoritesState string

const (
	FavoritesIdle       FavoritesState = "idle"
	FavoritesLoading    FavoritesState = "loading"
	FavoritesLoaded     FavoritesState = "loaded"
	FavoritesFailed     FavoritesState = "failed"
	FavoritesMutating   FavoritesState = "mutating"
	FavoritesRefreshing FavoritesState = "refreshing"
)

// ProfileClient is the profile backend surface the favorites manager needs.
type ProfileClient interface {
	ListFavorites(ctx context.Context, s models.Settings) ([]models.FavoriteEntry, error)
	AddFavorite(ctx context.Context, s models.Settings, code string) (*models.FavoriteEntry, error)
	DeleteFavorite(ctx context.Context, s models.Settings, id string) error
}

// FavoritesService manages the per-client favorites list. The displayed list
// is only ever replaced wholesale by a fresh server read: no entry is spliced
// in or out locally, trading an extra round trip for guaranteed consistency
// with server state.
type FavoritesService struct {
	profile  ProfileClient
	settings SettingsReader

	mu      sync.Mutex
	state   FavoritesState
	entries []models.FavoriteEntry
}

// NewFavoritesService creates a manager in the idle state.
func NewFavoritesService(profile ProfileClient, settings SettingsReader) *FavoritesService {
	return &FavoritesService{
		profile:  profile,
		settings: settings,
		state:    FavoritesIdle,
	}
}

// List loads the full favorites list for the configured client.
func (f *FavoritesService) List(ctx context.Context) ([]models.FavoriteEntry, error) {
	s, err := f.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	f.setState(FavoritesLoading)
	entries, err := f.profile.ListFavorites(ctx, s)
	if err != nil {
		f.setState(FavoritesFailed)
		return nil, err
	}
	f.replace(entries)
	return entries, nil
}

// Add validates the code locally before any network call, upper-cases it for
// consistency and, on success, refreshes the list from the server.
func (f *FavoritesService) Add(ctx context.Context, code string) ([]models.FavoriteEntry, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, &models.ValidationError{Message: "currency code is required"}
	}

	s, err := f.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	f.setState(FavoritesMutating)
	if _, err := f.profile.AddFavorite(ctx, s, code); err != nil {
		f.setState(FavoritesFailed)
		return nil, err
	}
	return f.refresh(ctx, s)
}

// Delete removes a favorite by its server-assigned id and, on success,
// refreshes the list from the server.
func (f *FavoritesService) Delete(ctx context.Context, id string) ([]models.FavoriteEntry, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &models.ValidationError{Message: "favorite id is required"}
	}

	s, err := f.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	f.setState(FavoritesMutating)
	if err := f.profile.DeleteFavorite(ctx, s, id); err != nil {
		f.setState(FavoritesFailed)
		return nil, err
	}
	return f.refresh(ctx, s)
}

// State returns the current lifecycle state.
func (f *FavoritesService) State() FavoritesState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Entries returns the last list read from the server.
func (f *FavoritesService) Entries() []models.FavoriteEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries
}

func (f *FavoritesService) refresh(ctx context.Context, s models.Settings) ([]models.FavoriteEntry, error) {
	f.setState(FavoritesRefreshing)
	entries, err := f.profile.ListFavorites(ctx, s)
	if err != nil {
		logger.Log.Errorw("favorites refresh after mutation failed", "error", err)
		f.setState(FavoritesFailed)
		return nil, err
	}
	f.replace(entries)
	return entries, nil
}

func (f *FavoritesService) setState(st FavoritesState) {
	f.mu.Lock()
	f.state = st
	f.mu.Unlock()
}

func (f *FavoritesService) replace(entries []models.FavoriteEntry) {
	f.mu.Lock()
	f.state = FavoritesLoaded
	f.entries = entries
	f.mu.Unlock()
}
