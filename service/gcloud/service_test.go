package gcloud

import (
	"bytes"
	"context"
	"testing"

	"github.com/elC0mpa/gcf-provisioner/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		inv  model.Invocation
		want string
	}{
		{
			name: "plain arguments",
			inv:  model.Invocation{Args: []string{"projects", "create", "my-project", "--set-as-default"}},
			want: "gcloud projects create my-project --set-as-default",
		},
		{
			name: "arguments needing quotes",
			inv:  model.Invocation{Args: []string{"functions", "call", "fn", "--data", `{"days": "5"}`}},
			want: `gcloud functions call fn --data '{"days": "5"}'`,
		},
		{
			name: "stdin is redacted",
			inv:  model.Invocation{Args: []string{"secrets", "create", "token"}, Stdin: "xoxb-secret"},
			want: "gcloud secrets create token <<< <redacted>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Render("gcloud", tt.inv)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "xoxb-secret")
		})
	}
}

func TestSubcommand(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "functions deploy fn", subcommand([]string{"functions", "deploy", "fn", "--region", "x"}))
	assert.Equal(t, "beta billing accounts", subcommand([]string{"beta", "billing", "accounts", "list"}))
	assert.Equal(t, "app create", subcommand([]string{"app", "create", "--region", "us-central"}))
	assert.Empty(t, subcommand(nil))
}

func TestDryRunService(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	svc := NewDryRunService("gcloud", &out)

	path, err := svc.CheckInstalled()
	require.NoError(t, err)
	assert.Equal(t, "gcloud", path)

	got, err := svc.Run(context.Background(), model.Invocation{
		Args:         []string{"beta", "billing", "accounts", "list"},
		Capture:      true,
		DryRunOutput: "ACCOUNT_ID NAME\n<billing-account> dry-run\n",
	})
	require.NoError(t, err)
	assert.Equal(t, "ACCOUNT_ID NAME\n<billing-account> dry-run\n", got)

	_, err = svc.Run(context.Background(), model.Invocation{Args: []string{"services", "enable", "a", "b"}})
	require.NoError(t, err)

	require.Len(t, svc.Invocations(), 2)
	assert.Equal(t, "$ gcloud beta billing accounts list\n$ gcloud services enable a b\n", out.String())
}

func TestService_Run(t *testing.T) {
	t.Parallel()

	t.Run("captures stdout", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		svc := NewService("sh", &stdout, &stderr)

		got, err := svc.Run(context.Background(), model.Invocation{Args: []string{"-c", "echo hello"}, Capture: true})

		require.NoError(t, err)
		assert.Equal(t, "hello\n", got)
		assert.Empty(t, stdout.String())
	})

	t.Run("streams stdout when not capturing", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		svc := NewService("sh", &stdout, &stderr)

		got, err := svc.Run(context.Background(), model.Invocation{Args: []string{"-c", "echo streamed"}})

		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Equal(t, "streamed\n", stdout.String())
	})

	t.Run("pipes stdin", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		svc := NewService("sh", &stdout, &stderr)

		got, err := svc.Run(context.Background(), model.Invocation{Args: []string{"-c", "cat"}, Stdin: "xoxb-token", Capture: true})

		require.NoError(t, err)
		assert.Equal(t, "xoxb-token", got)
	})

	t.Run("propagates exit status", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		svc := NewService("sh", &stdout, &stderr)

		_, err := svc.Run(context.Background(), model.Invocation{Args: []string{"-c", "echo denied >&2; exit 3"}})

		require.Error(t, err)
		assert.Equal(t, 3, model.ExitCode(err))
		assert.Equal(t, "denied\n", stderr.String())
	})
}

func TestService_CheckInstalled(t *testing.T) {
	t.Parallel()

	_, err := NewService("definitely-not-a-real-gcloud-binary", nil, nil).CheckInstalled()
	require.Error(t, err)

	path, err := NewService("sh", nil, nil).CheckInstalled()
	require.NoError(t, err)
	assert.NotEmpty(t, path)
}
