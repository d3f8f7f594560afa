package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"engine": map[string]any{
			"openOfferRadiusMiles": 3.0,
			"eligibilityCacheTTL":  "30s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "ENGINE_OPENOFFERRADIUSMILES", want: "engine.openOfferRadiusMiles"},
		{envKey: "ENGINE_ELIGIBILITYCACHETTL", want: "engine.eligibilityCacheTTL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsEngineTunables(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	assert.InDelta(t, 3.0, cfg.Engine.OpenOfferRadiusMiles, 1e-9)
	assert.True(t, cfg.Engine.SameCategoryExcluded())
	assert.Equal(t, 30*time.Second, cfg.Engine.EligibilityCacheTTL)
	assert.Equal(t, 5*time.Second, cfg.Engine.OperationTimeout)
	assert.Equal(t, 8, cfg.Engine.CodeLength)
	assert.Equal(t, 4, cfg.Engine.ImpressionWorkers)
	assert.Equal(t, 1024, cfg.Engine.ImpressionQueueSize)
	assert.Equal(t, 8, cfg.Engine.MaxGeocodeWorkers)
	assert.Equal(t, "goose_db_version", cfg.Migration.Table)
	assert.Equal(t, 256, cfg.QRCode.Size)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	excluded := false
	cfg := &Config{}
	cfg.Engine.OpenOfferRadiusMiles = 5
	cfg.Engine.ExcludeSameCategory = &excluded
	cfg.Engine.CodeLength = 12

	applyDefaults(cfg)

	assert.InDelta(t, 5.0, cfg.Engine.OpenOfferRadiusMiles, 1e-9)
	assert.False(t, cfg.Engine.SameCategoryExcluded())
	assert.Equal(t, 12, cfg.Engine.CodeLength)
}
