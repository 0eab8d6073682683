package archive

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sectionkit/core/snapshot"
	"sectionkit/core/storage/mocks"
)

type staticSource struct {
	snap *snapshot.Snapshot
}

func (s staticSource) Snapshot(context.Context) (*snapshot.Snapshot, error) {
	return s.snap, nil
}

func setupTestApp(t *testing.T, source Source) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	client := new(mocks.Client)
	svc := NewService(client, "test-bucket", zap.NewNop())
	NewHandler(svc, source).RegisterRoutes(app)
	return app, client
}

func TestHandleExport(t *testing.T) {
	app, client := setupTestApp(t, staticSource{snap: fixtureSnapshot()})
	client.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	client.On("PutObject", mock.Anything, "test-bucket", "snapshots/home.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/archive/home", nil))
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var body Manifest
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3, body.Sections())
}

func TestHandleExportWithoutSource(t *testing.T) {
	app, _ := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/archive/home", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestHandleLoad(t *testing.T) {
	data, err := json.Marshal(NewManifest("home", fixtureSnapshot()))
	require.NoError(t, err)

	app, client := setupTestApp(t, nil)
	client.On("GetObject", mock.Anything, "test-bucket", "snapshots/home.json", mock.Anything).
		Return(mocks.Body(data), nil)
	client.On("GetObject", mock.Anything, "test-bucket", "snapshots/missing.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

	tests := []struct {
		path   string
		status int
	}{
		{"/archive/home", 200},
		{"/archive/missing", 404},
		{"/archive/-bad", 400},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestHandleListDeletePurge(t *testing.T) {
	app, client := setupTestApp(t, nil)
	client.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
		Return(mocks.Snapshots("home"))
	client.On("RemoveObject", mock.Anything, "test-bucket", "snapshots/home.json", mock.Anything).Return(nil)
	client.On("RemoveObjects", mock.Anything, "test-bucket", mock.Anything, mock.Anything).Return(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/archive", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	var entries []Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	assert.Len(t, entries, 1)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/archive/home", nil))
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/archive", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
