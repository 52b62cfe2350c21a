package artifacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Endpoint:  "localhost:9000",
		AccessKey: "matrun",
		SecretKey: "matrun-secret",
		Region:    "us-east-1",
		Bucket:    "matrun-reports",
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing endpoint",
			mutate:  func(c *Config) { c.Endpoint = "  " },
			wantErr: "endpoint is required",
		},
		{
			name:    "endpoint with scheme",
			mutate:  func(c *Config) { c.Endpoint = "https://localhost:9000" },
			wantErr: "must not include scheme",
		},
		{
			name:    "missing access key",
			mutate:  func(c *Config) { c.AccessKey = "" },
			wantErr: "access key is required",
		},
		{
			name:    "missing secret key",
			mutate:  func(c *Config) { c.SecretKey = "" },
			wantErr: "secret key is required",
		},
		{
			name:    "missing region",
			mutate:  func(c *Config) { c.Region = "" },
			wantErr: "region is required",
		},
		{
			name:    "missing bucket",
			mutate:  func(c *Config) { c.Bucket = "" },
			wantErr: "bucket is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MATRUN_S3_ENDPOINT", "minio.internal:9000")
	t.Setenv("MATRUN_S3_ACCESS_KEY", "ak")
	t.Setenv("MATRUN_S3_SECRET_KEY", "sk")
	t.Setenv("MATRUN_S3_BUCKET", "reports")
	t.Setenv("MATRUN_S3_USE_SSL", "true")
	t.Setenv("MATRUN_S3_PREFIX", "ci")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "minio.internal:9000", cfg.Endpoint)
	assert.Equal(t, "ak", cfg.AccessKey)
	assert.Equal(t, "sk", cfg.SecretKey)
	assert.Equal(t, "us-east-1", cfg.Region, "region should default")
	assert.Equal(t, "reports", cfg.Bucket)
	assert.Equal(t, "ci", cfg.Prefix)
	assert.True(t, cfg.UseSSL)
}

func TestConfigFromEnvRejectsIncomplete(t *testing.T) {
	t.Setenv("MATRUN_S3_ENDPOINT", "minio.internal:9000")
	t.Setenv("MATRUN_S3_ACCESS_KEY", "")
	t.Setenv("MATRUN_S3_SECRET_KEY", "sk")

	_, err := ConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access key")
}

func TestConfigFromEnvBadBool(t *testing.T) {
	t.Setenv("MATRUN_S3_ACCESS_KEY", "ak")
	t.Setenv("MATRUN_S3_SECRET_KEY", "sk")
	t.Setenv("MATRUN_S3_USE_SSL", "not-a-bool")

	_, err := ConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MATRUN_S3_USE_SSL")
}

func TestObjectKey(t *testing.T) {
	tests := []struct {
		prefix string
		runID  string
		name   string
		want   string
	}{
		{"", "a1b2c3", "report.json", "runs/a1b2c3/report.json"},
		{"ci", "a1b2c3", "cover-go1.out", "ci/runs/a1b2c3/cover-go1.out"},
		{"ci/", "a1b2c3", "report.json", "ci/runs/a1b2c3/report.json"},
	}
	for _, tt := range tests {
		got := ObjectKey(tt.prefix, tt.runID, tt.name)
		assert.Equal(t, tt.want, got)
	}
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/json", contentType("report.json"))
	assert.Equal(t, "application/octet-stream", contentType("coverprofile"))
}
