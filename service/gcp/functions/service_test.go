package gcpfunctions

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elC0mpa/gcf-provisioner/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

const functionPath = "/v1/projects/slack-cleaner-42/locations/us-central1/functions/slack-cleaner"

func newTestService(t *testing.T, handler http.HandlerFunc) *service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := NewService(context.Background(), "slack-cleaner-42", "us-central1", "slack-cleaner",
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	return svc
}

func TestGetStatus_Active(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, functionPath, r.URL.Path)
		fmt.Fprint(w, `{
			"name": "projects/slack-cleaner-42/locations/us-central1/functions/slack-cleaner",
			"status": "ACTIVE",
			"runtime": "python37",
			"httpsTrigger": {"url": "https://us-central1-slack-cleaner-42.cloudfunctions.net/slack-cleaner"}
		}`)
	})

	got, err := svc.GetStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", got.State)
	assert.Equal(t, "python37 https://us-central1-slack-cleaner-42.cloudfunctions.net/slack-cleaner", got.Detail)
}

func TestGetStatus_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":{"code":404,"message":"function not found"}}`)
	})

	got, err := svc.GetStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.StateNotFound, got.State)
	assert.Equal(t, "Function", got.Kind)
}
