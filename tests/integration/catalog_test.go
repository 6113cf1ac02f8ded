//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/domain"
	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_Greeting(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.GET("/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Restaurant is Open now!", testutil.ReadBody(t, resp))
}

func TestCatalog_ListMenu(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.GET("/menu")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var items []domain.MenuItem
	testutil.DecodeJSON(t, resp, &items)
	require.NotEmpty(t, items)

	names := make([]string, 0, len(items))
	for _, item := range items {
		assert.False(t, item.ID.IsZero())
		names = append(names, item.Name)
	}
	assert.Contains(t, names, "Roast Duck Breast")
}

func TestCatalog_ListReviews(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.GET("/reviews")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var reviews []domain.Review
	testutil.DecodeJSON(t, resp, &reviews)
	require.NotEmpty(t, reviews)

	for _, review := range reviews {
		assert.NotEmpty(t, review.Name)
		assert.GreaterOrEqual(t, review.Rating, float64(1))
	}
}
