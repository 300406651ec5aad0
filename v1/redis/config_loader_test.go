package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CACHE_DRIVER", "redigo")
	t.Setenv("CACHE_HOST", "redis.internal")
	t.Setenv("CACHE_PORT", "6380")
	t.Setenv("CACHE_DB", "2")
	t.Setenv("CACHE_READ_TIMEOUT", "750ms")
	t.Setenv("CACHE_TLS_ENABLED", "true")
	t.Setenv("CACHE_TLS_SERVER_NAME", "redis.example.com")

	cfg, err := LoadConfigFromEnv("CACHE")
	require.NoError(t, err)

	assert.Equal(t, "redigo", cfg.Driver)
	assert.Equal(t, "redis.internal", cfg.Host)
	assert.Equal(t, 6380, cfg.Port)
	assert.Equal(t, 2, cfg.DB)
	assert.Equal(t, 750*time.Millisecond, cfg.ReadTimeout)
	assert.True(t, cfg.TLS.Enabled)
	assert.Equal(t, "redis.example.com", cfg.TLS.ServerName)
	assert.Equal(t, "redis.internal:6380", cfg.Addr())
}

func TestLoadConfigFromEnvInvalid(t *testing.T) {
	t.Setenv("CACHE_PORT", "not-a-port")

	_, err := LoadConfigFromEnv("CACHE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load redis config from env")
}

func TestLoadDeploymentFromEnv(t *testing.T) {
	t.Run("defaults to standalone", func(t *testing.T) {
		t.Setenv("KV_HOST", "10.0.0.1")

		d, err := LoadDeploymentFromEnv("KV")
		require.NoError(t, err)
		assert.Equal(t, ModeStandalone, d.Mode)
		assert.Equal(t, "10.0.0.1", d.Standalone.Host)
	})

	t.Run("cluster", func(t *testing.T) {
		t.Setenv("KV_MODE", "Cluster")
		t.Setenv("KV_ADDRS", "n1:7000,n2:7001")

		d, err := LoadDeploymentFromEnv("KV")
		require.NoError(t, err)
		assert.Equal(t, ModeCluster, d.Mode)
		assert.Equal(t, []string{"n1:7000", "n2:7001"}, d.Cluster.Addrs)
	})

	t.Run("failover alias", func(t *testing.T) {
		t.Setenv("KV_MODE", "failover")
		t.Setenv("KV_MASTER_NAME", "mymaster")
		t.Setenv("KV_SENTINEL_ADDRS", "s1:26379")

		d, err := LoadDeploymentFromEnv("KV")
		require.NoError(t, err)
		assert.Equal(t, ModeSentinel, d.Mode)
		assert.Equal(t, "mymaster", d.Failover.MasterName)
		assert.Equal(t, []string{"s1:26379"}, d.Failover.SentinelAddrs)
	})

	t.Run("unknown mode", func(t *testing.T) {
		t.Setenv("KV_MODE", "ring")

		_, err := LoadDeploymentFromEnv("KV")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestDecodeConfig(t *testing.T) {
	d, err := DecodeConfig(map[string]interface{}{
		"host":         "cache",
		"port":         "6390",
		"dial_timeout": "2s",
		"tls": map[string]interface{}{
			"enabled": true,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, ModeStandalone, d.Mode)
	assert.Equal(t, "cache", d.Standalone.Host)
	assert.Equal(t, 6390, d.Standalone.Port)
	assert.Equal(t, 2*time.Second, d.Standalone.DialTimeout)
	assert.True(t, d.Standalone.TLS.Enabled)

	d, err = DecodeConfig(map[string]interface{}{
		"mode":          "cluster",
		"addrs":         []interface{}{"n1:7000", "n2:7001"},
		"max_redirects": 5,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"n1:7000", "n2:7001"}, d.Cluster.Addrs)
	assert.Equal(t, 5, d.Cluster.MaxRedirects)

	d, err = DecodeConfig(map[string]interface{}{
		"mode":           "sentinel",
		"master_name":    "mymaster",
		"sentinel_addrs": "s1:26379,s2:26379",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"s1:26379", "s2:26379"}, d.Failover.SentinelAddrs)
}

func TestDecodeConfigErrors(t *testing.T) {
	_, err := DecodeConfig(map[string]interface{}{"mode": "ring"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = DecodeConfig(map[string]interface{}{"hots": "typo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode redis standalone config")
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{MaxRetries: -1}.WithDefaults()

	assert.Equal(t, DefaultDriver, cfg.Driver)
	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, -1, cfg.MaxRetries)
	assert.Equal(t, DefaultMinRetryBackoff, cfg.MinRetryBackoff)
	assert.Equal(t, DefaultIdleTimeout, cfg.IdleTimeout)

	cluster := ClusterConfig{MaxRedirects: 8}.WithDefaults()
	assert.Equal(t, 8, cluster.MaxRedirects)
	assert.Equal(t, DefaultProtocol, cluster.Protocol)
}
