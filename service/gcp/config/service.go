package gcpconfig

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/cloudbilling/v1"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func NewService() *service {
	return &service{}
}

func (s *service) GetCredentials(ctx context.Context) (*google.Credentials, error) {
	// Use Application Default Credentials
	// This supports:
	// - GOOGLE_APPLICATION_CREDENTIALS environment variable
	// - gcloud auth application-default login
	// - Service account on GCE/Cloud Run/Cloud Functions
	// Secret Manager only accepts the full cloud-platform scope.
	return google.FindDefaultCredentials(ctx,
		cloudresourcemanager.CloudPlatformScope,
		cloudbilling.CloudBillingReadonlyScope,
	)
}

// IsNotFound reports whether err is a 404 from a REST client or a NotFound
// status from a gRPC client.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusNotFound
	}

	return status.Code(err) == codes.NotFound
}
