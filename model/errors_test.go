package model

import (
	"fmt"
	"os/exec"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	runErr := exec.Command("sh", "-c", "exit 3").Run()
	require.Error(t, runErr)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain error", err: errors.New("boom"), want: 1},
		{name: "derivation failure", err: fmt.Errorf("Read billing account step failed: %w", ErrBillingAccountNotFound), want: 1},
		{name: "exit error", err: runErr, want: 3},
		{name: "wrapped exit error", err: fmt.Errorf("Enable APIs step failed: %w", fmt.Errorf("gcloud services enable: %w", runErr)), want: 3},
		{name: "cockroach wrapped exit error", err: errors.Wrap(runErr, "deploy"), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestConfig_ServiceAccountEmail(t *testing.T) {
	cfg := Config{ProjectName: "demo-project", ServiceAccount: "cleaner"}

	assert.Equal(t, "cleaner@demo-project.iam.gserviceaccount.com", cfg.ServiceAccountEmail())
}
