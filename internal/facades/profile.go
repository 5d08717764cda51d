package facades

import (
	"context"
	"net/url"
	"strconv"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

// ProfileFacade calls the profile backend holding favorites and usage history.
type ProfileFacade struct {
	client HTTPDoer
}

// NewProfileFacade creates a facade over the given HTTP client.
func NewProfileFacade(client HTTPDoer) *ProfileFacade {
	return &ProfileFacade{client: client}
}

// ListFavorites fetches the full favorites list for the configured client.
func (f *ProfileFacade) ListFavorites(ctx context.Context, s models.Settings) ([]models.FavoriteEntry, error) {
	u := s.ProfileURL + "/favorites?client_id=" + url.QueryEscape(s.ClientID)

	var entries []models.FavoriteEntry
	if err := getJSON(ctx, f.client, "list favorites", u, &entries); err != nil {
		logger.Log.Errorw("failed to list favorites", "client_id", s.ClientID, "error", err)
		return nil, err
	}
	return entries, nil
}

// AddFavorite creates a favorite; the server assigns the id.
func (f *ProfileFacade) AddFavorite(ctx context.Context, s models.Settings, code string) (*models.FavoriteEntry, error) {
	in := map[string]string{
		"client_id": s.ClientID,
		"code":      code,
	}

	var entry models.FavoriteEntry
	if err := postJSON(ctx, f.client, "add favorite", s.ProfileURL+"/favorites", in, &entry); err != nil {
		logger.Log.Errorw("failed to add favorite", "code", code, "error", err)
		return nil, err
	}
	return &entry, nil
}

// DeleteFavorite destroys a favorite by its server-assigned id.
func (f *ProfileFacade) DeleteFavorite(ctx context.Context, s models.Settings, id string) error {
	req, err := newRequest(ctx, "DELETE", s.ProfileURL+"/favorites/"+url.PathEscape(id))
	if err != nil {
		return err
	}
	if err := doJSON(f.client, "delete favorite", req, nil); err != nil {
		logger.Log.Errorw("failed to delete favorite", "id", id, "error", err)
		return err
	}
	return nil
}

// AddHistoryEvent records a usage event. Callers treat this as best effort.
func (f *ProfileFacade) AddHistoryEvent(ctx context.Context, s models.Settings, event, payload string) error {
	in := map[string]string{
		"client_id": s.ClientID,
		"event":     event,
		"payload":   payload,
	}
	return postJSON(ctx, f.client, "add history event", s.ProfileURL+"/history", in, nil)
}

// ListHistory fetches the most recent usage events for the configured client.
func (f *ProfileFacade) ListHistory(ctx context.Context, s models.Settings, limit int) ([]models.HistoryEvent, error) {
	q := url.Values{}
	q.Set("client_id", s.ClientID)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var events []models.HistoryEvent
	u := s.ProfileURL + "/history?" + q.Encode()
	if err := getJSON(ctx, f.client, "list history", u, &events); err != nil {
		logger.Log.Errorw("failed to list history", "client_id", s.ClientID, "error", err)
		return nil, err
	}
	return events, nil
}
