//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_Healthz(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.GET("/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", testutil.ReadBody(t, resp))
}

func TestSystem_Readyz(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.GET("/readyz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestSystem_Version(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.GET("/version")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Version string `json:"version"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.NotEmpty(t, result.Version)
}

func TestSystem_CORSPreflight(t *testing.T) {
	req, err := http.NewRequest(http.MethodOptions, testServer.URL+"/menu", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://bistro-boss.example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "https://bistro-boss.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}
