package handlers

import (
	"net/http"

	"github.com/upb/solid-lab/app"
	"github.com/upb/solid-lab/utils"
)

// ProvidersResponse reports the registered providers per contract and
// the current consumer bindings.
type ProvidersResponse struct {
	Arithmetic []string          `json:"arithmetic"`
	ListSource []string          `json:"listsource"`
	Bindings   map[string]string `json:"bindings"`
}

// ProvidersHandler handles GET /api/v1/providers
func ProvidersHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteOK(w, ProvidersResponse{
			Arithmetic: deps.ArithmeticProviders.Names(),
			ListSource: deps.ListProviders.Names(),
			Bindings:   deps.Bindings(),
		})
	}
}
