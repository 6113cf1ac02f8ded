//go:build integration

package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/domain"
	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/testutil"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// tokenFor issues an access token for the email through the public /jwt
// endpoint, the same way the frontend does after a Firebase sign-in.
func tokenFor(t *testing.T, client *testutil.Client, email string) string {
	t.Helper()

	resp, err := client.POST("/jwt", map[string]string{"email": email})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Token string `json:"token"`
	}
	testutil.DecodeJSON(t, resp, &result)
	require.NotEmpty(t, result.Token)
	return result.Token
}

// asUser returns a client authenticated as the email.
func asUser(t *testing.T, client *testutil.Client, email string) *testutil.Client {
	t.Helper()
	return client.WithToken(tokenFor(t, client, email))
}

// asAdmin returns a client authenticated as the seeded admin account.
func asAdmin(t *testing.T, client *testutil.Client) *testutil.Client {
	t.Helper()
	return asUser(t, client, adminEmail)
}

// registerUser creates a user through the public registration endpoint and
// returns its inserted id.
func registerUser(t *testing.T, client *testutil.Client, email string) string {
	t.Helper()

	resp, err := client.POST("/users", map[string]string{
		"name":  "Test User",
		"email": email,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result struct {
		Acknowledged bool   `json:"acknowledged"`
		InsertedID   string `json:"insertedId"`
	}
	testutil.DecodeJSON(t, resp, &result)
	require.True(t, result.Acknowledged)
	require.NotEmpty(t, result.InsertedID)
	return result.InsertedID
}

// findUser reads a user document straight from the store.
func findUser(t *testing.T, email string) *domain.User {
	t.Helper()

	var user domain.User
	err := testDB.Collection("users").FindOne(context.Background(), bson.M{"email": email}).Decode(&user)
	require.NoError(t, err)
	return &user
}
