package main

import (
	"testing"

	"github.com/elC0mpa/gcf-provisioner/service/timezone"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("GCF_PROVISIONER_CONFIG", "")
	t.Setenv("GCF_PROVISIONER_GCLOUD", "")
	t.Setenv("GCF_PROVISIONER_LOCALTIME", "")
	t.Setenv("GCF_PROVISIONER_ZONEINFO", "")

	cfg := LoadConfig()

	assert.Empty(t, cfg.ConfigPath)
	assert.Equal(t, "gcloud", cfg.GcloudPath)
	assert.Equal(t, timezone.DefaultLocaltime, cfg.LocaltimePath)
	assert.Equal(t, timezone.DefaultZoneinfo, cfg.ZoneinfoPath)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("GCF_PROVISIONER_CONFIG", "/etc/gcf/slack-cleaner.sh")
	t.Setenv("GCF_PROVISIONER_GCLOUD", "/opt/google-cloud-sdk/bin/gcloud")
	t.Setenv("GCF_PROVISIONER_LOCALTIME", "/tmp/localtime")
	t.Setenv("GCF_PROVISIONER_ZONEINFO", "/tmp/zoneinfo")

	cfg := LoadConfig()

	assert.Equal(t, "/etc/gcf/slack-cleaner.sh", cfg.ConfigPath)
	assert.Equal(t, "/opt/google-cloud-sdk/bin/gcloud", cfg.GcloudPath)
	assert.Equal(t, "/tmp/localtime", cfg.LocaltimePath)
	assert.Equal(t, "/tmp/zoneinfo", cfg.ZoneinfoPath)
}
