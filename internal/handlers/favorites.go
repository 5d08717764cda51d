package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

// FavoritesReader defines the interface for listing favorites.
type FavoritesReader interface {
	List(ctx context.Context) ([]models.FavoriteEntry, error)
}

// FavoritesWriter defines the interface for mutating favorites. Every
// mutation returns the refreshed list fetched after the change.
type FavoritesWriter interface {
	Add(ctx context.Context, code string) ([]models.FavoriteEntry, error)
	Delete(ctx context.Context, id string) ([]models.FavoriteEntry, error)
}

// FavoritesResponse wraps the favorites list
// swagger:model FavoritesResponse
type FavoritesResponse struct {
	Favorites []models.FavoriteEntry `json:"favorites"`
}

// NewListFavoritesHandler returns an HTTP handler for listing the client's
// favorite currencies.
// @Summary List favorites
// @Tags favorites
// @Produce json
// @Success 200 {object} handlers.FavoritesResponse "Favorites list"
// @Failure 502 {object} handlers.ErrorResponse "Backend failure"
// @Router /api/favorites [get]
func NewListFavoritesHandler(svc FavoritesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		entries, err := svc.List(ctx)
		if err != nil {
			writeServiceError(w, "failed to list favorites", err)
			return
		}

		writeJSON(w, http.StatusOK, FavoritesResponse{Favorites: entries})
	}
}

// AddFavoriteRequest represents the JSON body for adding a favorite
// swagger:model AddFavoriteRequest
type AddFavoriteRequest struct {
	// Currency code
	// required: true
	// default: USD
	Code string `json:"code"`
}

// NewAddFavoriteHandler returns an HTTP handler for adding a currency to the
// client's favorites. The response carries the list refreshed after the
// mutation, never a locally patched copy.
// @Summary Add a favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body handlers.AddFavoriteRequest true "Add Favorite Request"
// @Success 200 {object} handlers.FavoritesResponse "Refreshed favorites list"
// @Failure 400 {object} handlers.ErrorResponse "Missing currency code"
// @Failure 502 {object} handlers.ErrorResponse "Backend failure"
// @Router /api/favorites [post]
func NewAddFavoriteHandler(svc FavoritesWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req AddFavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode add favorite request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		entries, err := svc.Add(ctx, req.Code)
		if err != nil {
			writeServiceError(w, "failed to add favorite", err)
			return
		}

		writeJSON(w, http.StatusOK, FavoritesResponse{Favorites: entries})
	}
}

// NewDeleteFavoriteHandler returns an HTTP handler for removing a favorite by
// its server-assigned id.
// @Summary Delete a favorite
// @Tags favorites
// @Produce json
// @Param id path string true "Favorite id"
// @Success 200 {object} handlers.FavoritesResponse "Refreshed favorites list"
// @Failure 400 {object} handlers.ErrorResponse "Missing favorite id"
// @Failure 502 {object} handlers.ErrorResponse "Backend failure"
// @Router /api/favorites/{id} [delete]
func NewDeleteFavoriteHandler(svc FavoritesWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		entries, err := svc.Delete(ctx, chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, "failed to delete favorite", err)
			return
		}

		writeJSON(w, http.StatusOK, FavoritesResponse{Favorites: entries})
	}
}
