package gcpscheduler

import (
	"context"
	"fmt"
	"unicode"

	"github.com/elC0mpa/gcf-provisioner/model"
	gcpconfig "github.com/elC0mpa/gcf-provisioner/service/gcp/config"
	"google.golang.org/api/cloudscheduler/v1"
	"google.golang.org/api/option"
)

func NewService(ctx context.Context, projectID, appRegion, jobName string, opts ...option.ClientOption) (*service, error) {
	client, err := cloudscheduler.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Scheduler client: %w", err)
	}

	return &service{
		name:   fmt.Sprintf("projects/%s/locations/%s/jobs/%s", projectID, Location(appRegion), jobName),
		client: client,
	}, nil
}

// Location maps an App Engine region to the Cloud Scheduler location that
// serves it. The two legacy regions "us-central" and "europe-west" have no
// numeric suffix in App Engine but do in Cloud Scheduler.
func Location(appRegion string) string {
	if appRegion == "" {
		return appRegion
	}
	if last := rune(appRegion[len(appRegion)-1]); !unicode.IsDigit(last) {
		return appRegion + "1"
	}
	return appRegion
}

func (s *service) Kind() string {
	return "Scheduler job"
}

// GetStatus implements service.ResourceService
func (s *service) GetStatus(ctx context.Context) (*model.ResourceStatus, error) {
	job, err := s.client.Projects.Locations.Jobs.Get(s.name).Context(ctx).Do()
	if gcpconfig.IsNotFound(err) {
		return &model.ResourceStatus{Kind: s.Kind(), Name: s.name, State: model.StateNotFound}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scheduler job %s: %w", s.name, err)
	}

	detail := fmt.Sprintf("%q %s", job.Schedule, job.TimeZone)
	if job.HttpTarget != nil {
		detail += fmt.Sprintf(" %s %s", job.HttpTarget.HttpMethod, job.HttpTarget.Uri)
	}

	return &model.ResourceStatus{
		Kind:   s.Kind(),
		Name:   job.Name,
		State:  job.State,
		Detail: detail,
	}, nil
}
