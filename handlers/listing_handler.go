package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/upb/solid-lab/app"
	"github.com/upb/solid-lab/services"
	"github.com/upb/solid-lab/utils"
)

// ListResponse is the response body for the list endpoints.
type ListResponse struct {
	Name     string   `json:"name"`
	Provider string   `json:"provider"`
	Items    []string `json:"items"`
}

// ListIndexResponse enumerates the exposed lists.
type ListIndexResponse struct {
	Lists []string `json:"lists"`
}

// ListsHandler handles GET /api/v1/lists
func ListsHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteOK(w, ListIndexResponse{Lists: deps.ListNames()})
	}
}

// ListItemsHandler handles GET /api/v1/lists/{name}/items
func ListItemsHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		svc, ok := deps.ListConsumer(name)
		if !ok {
			HandleServiceError(w, fmt.Errorf("%q: %w", name, services.ErrListNotFound), deps.Logger)
			return
		}

		items, err := svc.Items(r.Context())
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}

		_ = utils.WriteOK(w, ListResponse{
			Name:     name,
			Provider: svc.ProviderName(),
			Items:    items,
		})
	}
}
