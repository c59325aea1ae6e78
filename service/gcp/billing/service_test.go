package gcpbilling

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

func newTestService(t *testing.T, handler http.HandlerFunc) *service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := NewService(context.Background(), "slack-cleaner-42",
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	return svc
}

func TestGetStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantState string
		wantName  string
	}{
		{
			name:      "billing enabled",
			body:      `{"name":"projects/slack-cleaner-42/billingInfo","billingAccountName":"billingAccounts/012345-ABCDEF","billingEnabled":true}`,
			wantState: "ENABLED",
			wantName:  "012345-ABCDEF",
		},
		{
			name:      "billing not linked",
			body:      `{"name":"projects/slack-cleaner-42/billingInfo"}`,
			wantState: "DISABLED",
			wantName:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/projects/slack-cleaner-42/billingInfo", r.URL.Path)
				fmt.Fprint(w, tt.body)
			})

			got, err := svc.GetStatus(context.Background())

			require.NoError(t, err)
			assert.Equal(t, "Billing", got.Kind)
			assert.Equal(t, tt.wantState, got.State)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestGetStatus_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":{"code":404,"message":"not found"}}`)
	})

	got, err := svc.GetStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.StateNotFound, got.State)
}
