package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvidersHandler(t *testing.T) {
	deps := newTestDeps(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/providers", nil)
	rec := httptest.NewRecorder()

	ProvidersHandler(deps)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data ProvidersResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.Equal(t, []string{"inverted", "sensible"}, envelope.Data.Arithmetic)
	assert.Equal(t, []string{"employees", "products"}, envelope.Data.ListSource)
	assert.Equal(t, map[string]string{
		"calculator": "sensible",
		"directory":  "employees",
		"catalog":    "products",
	}, envelope.Data.Bindings)
}
