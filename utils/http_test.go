package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOK(t *testing.T) {
	w := httptest.NewRecorder()

	err := WriteOK(w, map[string]string{"hello": "world"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp SuccessResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "world", data["hello"])
}

func TestWriteJSONNilBody(t *testing.T) {
	w := httptest.NewRecorder()

	require.NoError(t, WriteJSON(w, http.StatusNoContent, nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestWriteErrors(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter) error
		wantStatus int
		wantError  string
	}{
		{
			name: "bad request",
			write: func(w http.ResponseWriter) error {
				return WriteBadRequest(w, "x is required", map[string]interface{}{"x": "missing"})
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "bad_request",
		},
		{
			name: "not found with default message",
			write: func(w http.ResponseWriter) error {
				return WriteNotFound(w, "")
			},
			wantStatus: http.StatusNotFound,
			wantError:  "not_found",
		},
		{
			name: "bad gateway",
			write: func(w http.ResponseWriter) error {
				return WriteBadGateway(w, "redis down", nil)
			},
			wantStatus: http.StatusBadGateway,
			wantError:  "bad_gateway",
		},
		{
			name: "internal error",
			write: func(w http.ResponseWriter) error {
				return WriteInternalServerError(w, "")
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			require.NoError(t, tt.write(w))
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}
