//go:build integration

package integration

import (
	"context"
	"log"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/app"
	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/config"
	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/domain"
	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	testServer    *httptest.Server
	testValidator *testutil.OpenAPIValidator
	testDB        *mongo.Database
)

// Admin account seeded directly into the users collection before the suite
// runs; there is no HTTP path that creates the first admin.
const adminEmail = "admin@example.com"

// OpenAPI spec path relative to the tests/integration directory.
const openAPISpecPath = "../../api/openapi/openapi.yaml"

// newTestClient creates a new test client with OpenAPI validation enabled.
// Use this at the beginning of each test that makes API calls.
func newTestClient(t *testing.T) *testutil.Client {
	t.Helper()
	client := testutil.NewClientWithValidator(testServer.URL, testValidator)
	client.SetT(t)
	return client
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	mongoContainer, err := testutil.NewMongoContainer(ctx)
	if err != nil {
		log.Fatalf("start mongo: %v", err)
	}
	defer func() {
		if err := mongoContainer.Terminate(ctx); err != nil {
			log.Printf("terminate mongo: %v", err)
		}
	}()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            "0",
			MetricsPort:     "0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Mongo: config.MongoConfig{
			URI:             mongoContainer.URI,
			Database:        "BistroTestDB",
			ConnectTimeout:  30 * time.Second,
			ConnectAttempts: 3,
		},
		JWT: config.JWTConfig{
			Secret:         "test-secret-key",
			AccessTokenTTL: 15 * time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Log: config.LogConfig{
			Level:  "error",
			Format: "text",
		},
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("create app: %v", err)
	}

	testDB = application.Database()

	if err := seedFixtures(ctx); err != nil {
		log.Fatalf("seed fixtures: %v", err)
	}

	testServer = httptest.NewServer(application.Router())

	testValidator, err = testutil.LoadOpenAPIValidator(openAPISpecPath)
	if err != nil {
		log.Fatalf("load OpenAPI validator: %v", err)
	}

	code := m.Run()

	testServer.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := application.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown app: %v", err)
	}

	os.Exit(code)
}

// seedFixtures inserts the admin account and a small catalog. The menu and
// reviews collections are read-only through the API, so tests rely on these
// documents being present.
func seedFixtures(ctx context.Context) error {
	if _, err := testDB.Collection("users").InsertOne(ctx, domain.User{
		Name:      "Bistro Boss",
		Email:     adminEmail,
		Role:      domain.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return err
	}

	menu := []interface{}{
		domain.MenuItem{Name: "Roast Duck Breast", Recipe: "Roasted duck breast, black truffle sauce", Category: "salad", Price: 14.5},
		domain.MenuItem{Name: "Tuna Niçoise", Recipe: "Seared tuna, potatoes, olives", Category: "salad", Price: 22.5},
		domain.MenuItem{Name: "Escalope de Veau", Recipe: "Veal escalope, butter sauce", Category: "soup", Price: 12.5},
	}
	if _, err := testDB.Collection("menu").InsertMany(ctx, menu); err != nil {
		return err
	}

	reviews := []interface{}{
		domain.Review{Name: "Alice", Details: "Wonderful food", Rating: 5},
		domain.Review{Name: "Bob", Details: "Good portions", Rating: 4},
	}
	if _, err := testDB.Collection("reviews").InsertMany(ctx, reviews); err != nil {
		return err
	}

	return nil
}
