package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp 切换到空目录，避免读到仓库里的配置文件
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("BOOKSTORE_DATABASE_URL", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_DefaultsAndEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DATABASE_URL", "sqlite://books.db")
	t.Setenv("BOOKSTORE_SERVER_PORT", "8081")
	t.Setenv("BOOKSTORE_RATE_LIMIT_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sqlite://books.db", cfg.Database.URL)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, ":8081", cfg.Server.Addr())
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 20.0, cfg.RateLimit.RPS)

	// 默认值
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.Seed.OnStartup)
	assert.Equal(t, 30, cfg.Seed.Target)
	assert.Equal(t, "books.json", cfg.Seed.File)
	assert.False(t, cfg.Listing.RequeryClampedPage)
	assert.False(t, cfg.MQ.Enabled)
	assert.Equal(t, uint32(5), cfg.MQ.BreakerFailures)
}

func TestLoad_PrefixedURLWins(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DATABASE_URL", "sqlite://a.db")
	t.Setenv("BOOKSTORE_DATABASE_URL", "sqlite://b.db")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite://b.db", cfg.Database.URL)
}

func TestLoad_File(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("BOOKSTORE_DATABASE_URL", "")

	path := filepath.Join(dir, "custom.yaml")
	content := `
server:
  port: 9000
database:
  url: ":memory:"
listing:
  requery_clamped_page: true
mq:
  breaker_timeout: 1m
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, ":memory:", cfg.Database.URL)
	assert.True(t, cfg.Listing.RequeryClampedPage)
	assert.Equal(t, time.Minute, cfg.MQ.BreakerTimeout)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_SampleConfig(t *testing.T) {
	sample, err := filepath.Abs(filepath.Join("..", "..", "..", "config", "config.yaml"))
	require.NoError(t, err)
	chdirTemp(t)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("BOOKSTORE_DATABASE_URL", "")

	// 示例配置不带数据库地址,缺少DATABASE_URL时必须启动失败
	_, err = Load(sample)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")

	t.Setenv("DATABASE_URL", "sqlite://books.db")
	t.Setenv("BOOKSTORE_SERVER_TRUSTED_PROXIES", "10.0.0.0/8,127.0.0.1")
	cfg, err := Load(sample)
	require.NoError(t, err)
	assert.Equal(t, "sqlite://books.db", cfg.Database.URL)
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.Server.TrustedProxies)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 5000},
			Database: DatabaseConfig{URL: ":memory:"},
		}
	}

	assert.NoError(t, validate(base()))

	cfg := base()
	cfg.Server.Port = 70000
	assert.Error(t, validate(cfg))

	cfg = base()
	cfg.RateLimit = RateLimitConfig{Enabled: true, RPS: 0, Burst: 1}
	assert.Error(t, validate(cfg))

	cfg = base()
	cfg.MQ = MQConfig{Enabled: true}
	assert.Error(t, validate(cfg))
}
