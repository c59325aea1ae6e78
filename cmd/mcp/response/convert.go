package response

import (
	"github.com/elC0mpa/gcf-provisioner/model"
	"github.com/elC0mpa/gcf-provisioner/service/gcloud"
)

// ConvertStatus converts model.ProvisioningStatus to response.Status
func ConvertStatus(status *model.ProvisioningStatus) *Status {
	if status == nil {
		return nil
	}

	resp := &Status{
		ProjectID: status.ProjectID,
		Resources: make([]Resource, 0, len(status.Resources)),
	}

	for _, r := range status.Resources {
		resp.Resources = append(resp.Resources, Resource{
			Kind:   r.Kind,
			Name:   r.Name,
			State:  r.State,
			Detail: r.Detail,
		})
		if r.State == model.StateNotFound {
			resp.Missing = append(resp.Missing, r.Kind)
		}
	}

	return resp
}

// ConvertPlan pairs each recorded invocation with the step that issued it
func ConvertPlan(projectID, binary string, report *model.Report, invocations []model.Invocation) *Plan {
	plan := &Plan{
		ProjectID: projectID,
		Commands:  make([]PlannedCommand, 0, len(invocations)),
	}
	if report == nil {
		return plan
	}

	plan.FunctionURI = report.FunctionURI
	plan.TimeZone = report.TimeZone

	next := 0
	for _, step := range report.Steps {
		for i := 0; i < step.Invocations && next < len(invocations); i++ {
			inv := invocations[next]
			plan.Commands = append(plan.Commands, PlannedCommand{
				Step:    step.Index,
				Command: gcloud.Render(binary, inv),
				Stdin:   inv.Stdin != "",
			})
			next++
		}
	}

	return plan
}
