package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/elC0mpa/gcf-provisioner/model"
	"github.com/go-viper/mapstructure/v2"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// NewService returns a loader that evaluates configuration files with the
// given environment visible to them, typically os.Environ().
func NewService(environ []string) *service {
	return &service{
		environ: environ,
	}
}

// Load implements ConfigService.
//
// The file is evaluated as a shell script, so quoting, comments and
// references to environment variables behave as they would when sourced.
// Running external commands is refused. Keys the file does not set are left
// empty and reported as warnings.
func (s *service) Load(ctx context.Context, path string) (model.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to open configuration file: %w", err)
	}
	defer f.Close()

	file, err := syntax.NewParser().Parse(f, path)
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	runner, err := interp.New(
		interp.Dir(filepath.Dir(path)),
		interp.Env(expand.ListEnviron(s.environ...)),
		interp.StdIO(nil, io.Discard, io.Discard),
		interp.ExecHandlers(refuseExec),
	)
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to create shell interpreter: %w", err)
	}

	if err := runner.Run(ctx, file); err != nil {
		return model.Config{}, fmt.Errorf("failed to evaluate configuration file %s: %w", path, err)
	}

	values := make(map[string]string, len(model.ConfigKeys))
	for _, key := range model.ConfigKeys {
		v, ok := runner.Vars[key]
		if !ok || !v.IsSet() {
			log.Warn("configuration key is not set, using empty value", "key", key, "file", path)
			continue
		}
		values[key] = v.String()
	}

	var cfg model.Config
	if err := mapstructure.Decode(values, &cfg); err != nil {
		return model.Config{}, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return cfg, nil
}

func refuseExec(_ interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(_ context.Context, args []string) error {
		return fmt.Errorf("%w: %s", model.ErrConfigCommand, args[0])
	}
}
