package redis

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/mstoykov/envconfig"
)

// Deployment modes understood by DecodeConfig and LoadDeploymentFromEnv.
const (
	ModeStandalone = "standalone"
	ModeCluster    = "cluster"
	ModeSentinel   = "sentinel"
)

// DeploymentConfig is the configuration of one deployment mode. Only the
// section matching Mode is meaningful.
type DeploymentConfig struct {
	Mode       string
	Standalone Config
	Cluster    ClusterConfig
	Failover   FailoverConfig
}

// LoadConfigFromEnv reads a standalone Config from environment variables
// named <prefix>_<FIELD>, e.g. REDIS_HOST or REDIS_TLS_ENABLED.
func LoadConfigFromEnv(prefix string) (Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load redis config from env: %w", err)
	}
	return cfg, nil
}

// LoadClusterConfigFromEnv reads a ClusterConfig from environment variables.
// REDIS_ADDRS takes a comma separated list.
func LoadClusterConfigFromEnv(prefix string) (ClusterConfig, error) {
	var cfg ClusterConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return ClusterConfig{}, fmt.Errorf("failed to load redis cluster config from env: %w", err)
	}
	return cfg, nil
}

// LoadFailoverConfigFromEnv reads a FailoverConfig from environment variables.
func LoadFailoverConfigFromEnv(prefix string) (FailoverConfig, error) {
	var cfg FailoverConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return FailoverConfig{}, fmt.Errorf("failed to load redis failover config from env: %w", err)
	}
	return cfg, nil
}

// LoadDeploymentFromEnv reads <prefix>_MODE and then the config of that mode.
// An unset mode means standalone.
func LoadDeploymentFromEnv(prefix string) (DeploymentConfig, error) {
	var head struct {
		Mode string `envconfig:"MODE"`
	}
	if err := envconfig.Process(prefix, &head); err != nil {
		return DeploymentConfig{}, fmt.Errorf("failed to load redis mode from env: %w", err)
	}

	d := DeploymentConfig{Mode: normalizeMode(head.Mode)}
	var err error
	switch d.Mode {
	case ModeStandalone:
		d.Standalone, err = LoadConfigFromEnv(prefix)
	case ModeCluster:
		d.Cluster, err = LoadClusterConfigFromEnv(prefix)
	case ModeSentinel:
		d.Failover, err = LoadFailoverConfigFromEnv(prefix)
	default:
		err = fmt.Errorf("%w: unknown redis mode %q", ErrInvalidArgument, head.Mode)
	}
	if err != nil {
		return DeploymentConfig{}, err
	}
	return d, nil
}

// DecodeConfig decodes a generic configuration map, as read from YAML or
// JSON, into a DeploymentConfig. The "mode" key selects standalone, cluster
// or sentinel; the remaining keys use the yaml names of the config fields.
// Durations may be given as strings such as "3s".
func DecodeConfig(raw map[string]interface{}) (DeploymentConfig, error) {
	mode, _ := raw["mode"].(string)
	d := DeploymentConfig{Mode: normalizeMode(mode)}

	var result interface{}
	switch d.Mode {
	case ModeStandalone:
		result = &d.Standalone
	case ModeCluster:
		result = &d.Cluster
	case ModeSentinel:
		result = &d.Failover
	default:
		return DeploymentConfig{}, fmt.Errorf("%w: unknown redis mode %q", ErrInvalidArgument, mode)
	}

	body := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		if k != "mode" {
			body[k] = v
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "yaml",
		Result:           result,
	})
	if err != nil {
		return DeploymentConfig{}, fmt.Errorf("failed to create redis config decoder: %w", err)
	}
	if err := decoder.Decode(body); err != nil {
		return DeploymentConfig{}, fmt.Errorf("failed to decode redis %s config: %w", d.Mode, err)
	}
	return d, nil
}

func normalizeMode(mode string) string {
	mode = strings.ToLower(strings.TrimSpace(mode))
	switch mode {
	case "":
		return ModeStandalone
	case "failover":
		return ModeSentinel
	}
	return mode
}
