package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/fitstreak/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteErrorResponse(rr, http.StatusBadRequest, "invalid request body", errors.New("unexpected EOF"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp httputil.ErrorResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, httputil.ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "invalid request body",
		Details: "unexpected EOF",
	}, resp)
}

func TestReadJSON(t *testing.T) {
	var body struct {
		UserID string `json:"user_id"`
	}
	r := httptest.NewRequest(http.MethodPost, "/stats", strings.NewReader(`{"user_id":"abc"}`))
	require.NoError(t, httputil.ReadJSON(r, &body))
	assert.Equal(t, "abc", body.UserID)

	r = httptest.NewRequest(http.MethodPost, "/stats", strings.NewReader(`corrupted`))
	assert.Error(t, httputil.ReadJSON(r, &body))
}
