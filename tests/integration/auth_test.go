//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_IssueToken(t *testing.T) {
	client := newTestClient(t)

	token := tokenFor(t, client, testutil.RandomEmail())
	assert.NotEmpty(t, token)
}

func TestAuth_IssueToken_InvalidEmail(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.POST("/jwt", map[string]string{"email": "not-an-email"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestAuth_IssueToken_MalformedBody(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.POST("/jwt", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestAuth_ProtectedRoute_RequiresToken(t *testing.T) {
	client := newTestClient(t)
	email := testutil.RandomEmail()

	resp, err := client.GET("/users/admin/" + email)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestAuth_ProtectedRoute_RejectsMalformedHeader(t *testing.T) {
	client := newTestClient(t).WithToken("not-a-jwt")

	resp, err := client.GET("/users/admin/" + testutil.RandomEmail())
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestAuth_ProtectedRoute_RejectsForeignToken(t *testing.T) {
	// Signed with a different secret than the server's.
	const foreignToken = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJlbWFpbCI6ImFkbWluQGV4YW1wbGUuY29tIn0." +
		"4Adcj3UFYzPUVaVF43FmMab6RlaQD8A9V8wFzzht-KQ"

	client := newTestClient(t).WithToken(foreignToken)

	resp, err := client.GET("/users/admin/" + adminEmail)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestAuth_AdminCheck_SelfOnly(t *testing.T) {
	client := newTestClient(t)
	email := testutil.RandomEmail()
	registerUser(t, client, email)

	authed := asUser(t, client, email)

	// Asking about someone else is rejected before any lookup.
	resp, err := authed.GET("/users/admin/" + adminEmail)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp, err = authed.GET("/users/admin/" + email)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Admin bool `json:"admin"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.False(t, result.Admin)
}

func TestAuth_AdminCheck_AdminAccount(t *testing.T) {
	client := newTestClient(t)
	admin := asAdmin(t, client)

	resp, err := admin.GET("/users/admin/" + adminEmail)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Admin bool `json:"admin"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.True(t, result.Admin)
}

func TestAuth_AdminCheck_UnknownEmailIsNotAdmin(t *testing.T) {
	client := newTestClient(t)
	email := testutil.RandomEmail()

	// Token issued for an email with no user document at all.
	authed := asUser(t, client, email)

	resp, err := authed.GET("/users/admin/" + email)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Admin bool `json:"admin"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.False(t, result.Admin)
}
