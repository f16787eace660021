package handle

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeta(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/meta", nil)
	w := httptest.NewRecorder()
	newTestHandle(newFakeEngine()).Meta(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var out metaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, []string{"CBSE", "ICSE", "SSLC"}, out.Boards)
	assert.Contains(t, out.Chapters["Physics"], "Light")
}

func TestMeta_PostRejected(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/meta", nil)
	w := httptest.NewRecorder()
	newTestHandle(newFakeEngine()).Meta(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
