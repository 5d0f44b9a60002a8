package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, SkillPolicyStrict, cfg.SkillIDPolicy)
	assert.Equal(t, int64(5<<20), cfg.UploadMaxBytes)
	assert.Equal(t, 1600, cfg.UploadMaxDimension)
	assert.False(t, cfg.StorageEnabled())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("SKILL_ID_POLICY", " Lenient ")
	t.Setenv("MESSAGE_RATE_LIMIT", "5")
	t.Setenv("EMAIL_DOMAIN_CHECK", "true")
	t.Setenv("S3_ACCESS_KEY_ID", "key")
	t.Setenv("S3_SECRET_ACCESS_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
	assert.Equal(t, SkillPolicyLenient, cfg.SkillIDPolicy)
	assert.Equal(t, 5, cfg.MessageRateLimit)
	assert.True(t, cfg.EmailDomainCheck)
	assert.True(t, cfg.StorageEnabled())
}

func TestLoad_RejectsBadPolicy(t *testing.T) {
	t.Setenv("SKILL_ID_POLICY", "whatever")

	_, err := Load()
	assert.ErrorContains(t, err, "SKILL_ID_POLICY")
}
