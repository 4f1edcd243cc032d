package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("PORT", "")
	t.Setenv("WECHAT_API_URL", "")
	t.Setenv("MAX_UPLOAD_MB", "")

	cfg := LoadConfig()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "https://api.weixin.qq.com", cfg.WeChatApiURL)
	assert.Equal(t, 5*time.Second, cfg.ModerationTimeout)
	assert.True(t, cfg.ModerationEnabled)
	assert.EqualValues(t, 2<<20, cfg.MaxUploadSize)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("SALT_ROUND", "not-a-number")
	t.Setenv("MODERATION_ENABLED", "false")
	t.Setenv("WECHAT_API_URL", "http://127.0.0.1:9000/")
	t.Setenv("REDIS_DB", "3")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 10, cfg.SaltRound)
	assert.False(t, cfg.ModerationEnabled)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.WeChatApiURL)
	assert.Equal(t, 3, cfg.RedisDB)
}
