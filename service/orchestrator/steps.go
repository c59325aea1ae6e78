package orchestrator

import (
	"context"
	"fmt"

	"github.com/elC0mpa/gcf-provisioner/model"
	"github.com/elC0mpa/gcf-provisioner/service/derive"
	"github.com/elC0mpa/gcf-provisioner/utils"
)

const (
	// python37 is the last runtime that still sets GCP_PROJECT, which the function reads.
	functionRuntime    = "python37"
	functionEntryPoint = "main"
	functionMemory     = "256MB"
	functionTimeout    = "300s"
	secretEnvVar       = "SLACK_TOKEN_SECRET"
	secretAccessorRole = "roles/secretmanager.secretAccessor"
	smokeTestPayload   = `{"days": "5"}`
)

var requiredAPIs = []string{
	"secretmanager.googleapis.com",
	"cloudfunctions.googleapis.com",
	"cloudbuild.googleapis.com",
	"cloudscheduler.googleapis.com",
}

type step struct {
	name string
	run  func(ctx context.Context, r *run) error
}

// run carries the configuration and the values derived as steps complete.
type run struct {
	cfg model.Config

	billingAccount   string
	deploymentOutput string
	functionURI      string
	timeZone         string

	invocations int
}

func (s *service) steps() []step {
	return []step{
		{name: "Create project", run: s.createProject},
		{name: "Find billing account", run: s.findBillingAccount},
		{name: "Link billing account", run: s.linkBillingAccount},
		{name: "Create service account", run: s.createServiceAccount},
		{name: "Enable APIs", run: s.enableAPIs},
		{name: "Store Slack token secret", run: s.createSecret},
		{name: "Grant secret access", run: s.grantSecretAccess},
		{name: "Deploy function", run: s.deployFunction},
		{name: "Smoke test function", run: s.callFunction},
		{name: "Resolve schedule target", run: s.resolveScheduleTarget},
		{name: "Schedule function", run: s.scheduleFunction},
	}
}

func (s *service) createProject(ctx context.Context, r *run) error {
	_, err := s.call(ctx, r, model.Invocation{
		Args: []string{"projects", "create", r.cfg.ProjectName, "--set-as-default"},
	})
	return err
}

func (s *service) findBillingAccount(ctx context.Context, r *run) error {
	listing, err := s.call(ctx, r, model.Invocation{
		Args:         []string{"beta", "billing", "accounts", "list"},
		Capture:      true,
		DryRunOutput: "ACCOUNT_ID NAME OPEN MASTER_ACCOUNT_ID\n<billing-account> dry-run True\n",
	})
	if err != nil {
		return err
	}

	account, err := derive.BillingAccount(listing)
	if err != nil {
		return err
	}

	r.billingAccount = account
	utils.DrawDerivedValue(s.out, "Billing account", account)
	return nil
}

func (s *service) linkBillingAccount(ctx context.Context, r *run) error {
	_, err := s.call(ctx, r, model.Invocation{
		Args: []string{"beta", "billing", "projects", "link", r.cfg.ProjectName, "--billing-account", r.billingAccount},
	})
	return err
}

func (s *service) createServiceAccount(ctx context.Context, r *run) error {
	_, err := s.call(ctx, r, model.Invocation{
		Args: []string{"iam", "service-accounts", "create", r.cfg.ServiceAccount},
	})
	return err
}

func (s *service) enableAPIs(ctx context.Context, r *run) error {
	_, err := s.call(ctx, r, model.Invocation{
		Args: append([]string{"services", "enable"}, requiredAPIs...),
	})
	return err
}

func (s *service) createSecret(ctx context.Context, r *run) error {
	_, err := s.call(ctx, r, model.Invocation{
		Args:  []string{"secrets", "create", r.cfg.SecretName, "--replication-policy", "automatic", "--data-file", "-"},
		Stdin: r.cfg.SlackToken,
	})
	return err
}

func (s *service) grantSecretAccess(ctx context.Context, r *run) error {
	_, err := s.call(ctx, r, model.Invocation{
		Args: []string{
			"projects", "add-iam-policy-binding", r.cfg.ProjectName,
			"--member", "serviceAccount:" + r.cfg.ServiceAccountEmail(),
			"--role", secretAccessorRole,
		},
	})
	return err
}

func (s *service) deployFunction(ctx context.Context, r *run) error {
	output, err := s.call(ctx, r, model.Invocation{
		Args: []string{
			"functions", "deploy", r.cfg.FunctionName,
			"--region", r.cfg.FunctionRegion,
			"--trigger-http",
			"--allow-unauthenticated",
			"--runtime", functionRuntime,
			"--entry-point", functionEntryPoint,
			"--memory", functionMemory,
			"--timeout", functionTimeout,
			"--set-env-vars", secretEnvVar + "=" + r.cfg.SecretName,
			"--source", r.cfg.FunctionSourcePath,
			"--service-account", r.cfg.ServiceAccountEmail(),
		},
		Capture: true,
		DryRunOutput: fmt.Sprintf("httpsTrigger:\n  url: https://%s-%s.cloudfunctions.net/%s\n",
			r.cfg.FunctionRegion, r.cfg.ProjectName, r.cfg.FunctionName),
	})
	if err != nil {
		return err
	}

	r.deploymentOutput = output
	utils.DrawCapturedOutput(s.out, output)
	return nil
}

func (s *service) callFunction(ctx context.Context, r *run) error {
	_, err := s.call(ctx, r, model.Invocation{
		Args: []string{"functions", "call", r.cfg.FunctionName, "--region", r.cfg.FunctionRegion, "--data", smokeTestPayload},
	})
	return err
}

func (s *service) resolveScheduleTarget(_ context.Context, r *run) error {
	functionURL, err := derive.FunctionURL(r.deploymentOutput)
	if err != nil {
		return err
	}
	r.functionURI = derive.InvocationURI(functionURL, r.cfg.Days)

	tz, err := s.timezone.Resolve()
	if err != nil {
		return err
	}
	r.timeZone = tz

	utils.DrawDerivedValue(s.out, "Function URI", r.functionURI)
	utils.DrawDerivedValue(s.out, "Time zone", r.timeZone)
	return nil
}

func (s *service) scheduleFunction(ctx context.Context, r *run) error {
	// App Engine must exist once per project before Cloud Scheduler can be used.
	_, err := s.call(ctx, r, model.Invocation{
		Args: []string{"app", "create", "--region", r.cfg.AppRegion},
	})
	if err != nil {
		return err
	}

	_, err = s.call(ctx, r, model.Invocation{
		Args: []string{
			"scheduler", "jobs", "create", "http", r.cfg.JobName,
			"--schedule", r.cfg.JobSchedule,
			"--uri", r.functionURI,
			"--http-method", "GET",
			"--time-zone", r.timeZone,
		},
	})
	return err
}
