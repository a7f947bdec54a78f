package respond

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophbook/pkg/api"
)

func TestError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := httptest.NewRecorder()

	Error(w, logger, http.StatusPreconditionFailed, "etag does not match")

	assert.Equal(t, http.StatusPreconditionFailed, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Precondition Failed", resp.Error)
	assert.Equal(t, "etag does not match", resp.Message)
}

func TestJSON(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := httptest.NewRecorder()

	JSON(w, logger, http.StatusCreated, api.ContactGroup{Name: "Friends"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"name":"Friends"}`, w.Body.String())
}
