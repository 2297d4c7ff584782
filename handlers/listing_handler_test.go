package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upb/solid-lab/config"
	"github.com/upb/solid-lab/utils"
)

func getListItems(t *testing.T, handler http.HandlerFunc, name string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lists/"+name+"/items", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("name", name)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeListResponse(t *testing.T, body []byte) ListResponse {
	t.Helper()

	var envelope struct {
		Data ListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope.Data
}

func TestListItemsHandler(t *testing.T) {
	deps := newTestDeps(t, testConfig())
	handler := ListItemsHandler(deps)

	tests := []struct {
		name         string
		list         string
		wantProvider string
		wantItems    []string
	}{
		{
			name:         "directory serves employees",
			list:         "directory",
			wantProvider: "employees",
			wantItems:    []string{"Josh", "Kathy"},
		},
		{
			name:         "catalog serves products",
			list:         "catalog",
			wantProvider: "products",
			wantItems:    []string{"Widget", "Gadget"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := getListItems(t, handler, tt.list)

			require.Equal(t, http.StatusOK, rec.Code)
			resp := decodeListResponse(t, rec.Body.Bytes())
			assert.Equal(t, tt.list, resp.Name)
			assert.Equal(t, tt.wantProvider, resp.Provider)
			assert.Equal(t, tt.wantItems, resp.Items)
		})
	}
}

func TestListItemsHandler_UnknownListIs404(t *testing.T) {
	deps := newTestDeps(t, testConfig())

	rec := getListItems(t, ListItemsHandler(deps), "inventory")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Error)
	assert.Contains(t, resp.Message, "inventory")
}

// Rebinding the directory list to the products source swaps what the
// endpoint serves without touching the handler.
func TestListItemsHandler_RespectsBinding(t *testing.T) {
	cfg := testConfig()
	cfg.Bindings.Directory = config.SourceProducts
	deps := newTestDeps(t, cfg)

	rec := getListItems(t, ListItemsHandler(deps), "directory")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeListResponse(t, rec.Body.Bytes())
	assert.Equal(t, "products", resp.Provider)
	assert.Equal(t, []string{"Widget", "Gadget"}, resp.Items)
}

func TestListsHandler(t *testing.T) {
	deps := newTestDeps(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lists", nil)
	rec := httptest.NewRecorder()

	ListsHandler(deps)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data ListIndexResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, []string{"catalog", "directory"}, envelope.Data.Lists)
}
