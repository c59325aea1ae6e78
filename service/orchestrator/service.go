package orchestrator

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/elC0mpa/gcf-provisioner/model"
	"github.com/elC0mpa/gcf-provisioner/service/gcloud"
	"github.com/elC0mpa/gcf-provisioner/service/timezone"
	"github.com/elC0mpa/gcf-provisioner/utils"
)

func NewService(gcloudService gcloud.GcloudService, timezoneService timezone.TimezoneService, out io.Writer) *service {
	return &service{
		gcloud:   gcloudService,
		timezone: timezoneService,
		out:      out,
	}
}

// Orchestrate implements OrchestratorService
func (s *service) Orchestrate(ctx context.Context, cfg model.Config) (*model.Report, error) {
	start := time.Now()
	report := &model.Report{}

	path, err := s.gcloud.CheckInstalled()
	if err != nil {
		return report, err
	}
	log.Debug("using gcloud", "path", path)

	r := &run{cfg: cfg}
	steps := s.steps()

	for i, st := range steps {
		if err := ctx.Err(); err != nil {
			report.Duration = time.Since(start)
			return report, fmt.Errorf("provisioning interrupted before %s: %w", st.name, err)
		}

		utils.DrawStepStart(s.out, i+1, len(steps), st.name)

		stepStart := time.Now()
		before := r.invocations
		err := st.run(ctx, r)

		result := model.StepResult{
			Index:       i + 1,
			Name:        st.name,
			Invocations: r.invocations - before,
			Duration:    time.Since(stepStart),
			Err:         err,
		}
		report.Steps = append(report.Steps, result)
		report.Invocations = r.invocations

		if err != nil {
			utils.DrawStepFailed(s.out, i+1, len(steps), st.name, err)
			report.Duration = time.Since(start)
			return report, fmt.Errorf("%s step failed: %w", st.name, err)
		}

		utils.DrawStepDone(s.out, i+1, len(steps), st.name, result.Duration)
	}

	report.BillingAccount = r.billingAccount
	report.FunctionURI = r.functionURI
	report.TimeZone = r.timeZone
	report.Duration = time.Since(start)

	log.Info("provisioning completed", "project", cfg.ProjectName, "calls", report.Invocations, "duration", report.Duration.Round(time.Millisecond))
	return report, nil
}

func (s *service) call(ctx context.Context, r *run, inv model.Invocation) (string, error) {
	r.invocations++
	return s.gcloud.Run(ctx, inv)
}
