package redis

import "time"

// Config defines the configuration of a client for a standalone Redis server.
// Zero values are replaced by the defaults below when the client is created.
type Config struct {
	// Driver selects the registered driver, "goredis" or "redigo".
	// Default: "goredis"
	Driver string `yaml:"driver" envconfig:"DRIVER"`

	// Host is the Redis server hostname or IP address
	// Default: "localhost"
	Host string `yaml:"host" envconfig:"HOST"`

	// Port is the Redis server port
	// Default: 6379
	Port int `yaml:"port" envconfig:"PORT"`

	// Username is the ACL user (Redis 6.0+). Leave empty for the default user.
	Username string `yaml:"username" envconfig:"USERNAME"`

	// Password is the Redis password for authentication
	// Leave empty for no authentication
	Password string `yaml:"password" envconfig:"PASSWORD"`

	// DB is the database selected on every new connection
	// Default: 0
	DB int `yaml:"db" envconfig:"DB"`

	// ClientName is sent with CLIENT SETNAME on every new connection.
	ClientName string `yaml:"client_name" envconfig:"CLIENT_NAME"`

	// Protocol is the RESP version negotiated by drivers that support it.
	// Replies are normalized to the RESP2 shapes either way.
	// Default: 2
	Protocol int `yaml:"protocol" envconfig:"PROTOCOL"`

	// PoolSize is the maximum number of socket connections
	// Default: 10 per CPU
	PoolSize int `yaml:"pool_size" envconfig:"POOL_SIZE"`

	// MinIdleConns is the minimum number of idle connections to maintain
	MinIdleConns int `yaml:"min_idle_conns" envconfig:"MIN_IDLE_CONNS"`

	// MaxConnAge is the maximum duration a connection can be reused
	// Default: 0 (no maximum age)
	MaxConnAge time.Duration `yaml:"max_conn_age" envconfig:"MAX_CONN_AGE"`

	// PoolTimeout is the amount of time to wait for a connection from the pool
	// Default: ReadTimeout + 1 second
	PoolTimeout time.Duration `yaml:"pool_timeout" envconfig:"POOL_TIMEOUT"`

	// IdleTimeout is the amount of time after which idle connections are closed
	// Default: 5 minutes
	IdleTimeout time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`

	// MaxRetries is the maximum number of retries before giving up.
	// Set to -1 to disable retries.
	// Default: 3
	MaxRetries int `yaml:"max_retries" envconfig:"MAX_RETRIES"`

	// MinRetryBackoff is the minimum backoff between each retry
	// Default: 8 milliseconds
	MinRetryBackoff time.Duration `yaml:"min_retry_backoff" envconfig:"MIN_RETRY_BACKOFF"`

	// MaxRetryBackoff is the maximum backoff between each retry
	// Default: 512 milliseconds
	MaxRetryBackoff time.Duration `yaml:"max_retry_backoff" envconfig:"MAX_RETRY_BACKOFF"`

	// DialTimeout is the timeout for establishing new connections
	// Default: 5 seconds
	DialTimeout time.Duration `yaml:"dial_timeout" envconfig:"DIAL_TIMEOUT"`

	// ReadTimeout is the timeout for socket reads
	// Default: 3 seconds
	ReadTimeout time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`

	// WriteTimeout is the timeout for socket writes
	// Default: ReadTimeout
	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`

	// KeyPrefix is prepended to every key passed to the object helpers
	// (SetObject, GetObject, ...). Plain commands are sent unchanged.
	KeyPrefix string `yaml:"key_prefix" envconfig:"KEY_PREFIX"`

	// EnableTracing turns on driver level OpenTelemetry instrumentation
	// where the driver supports it.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"ENABLE_TRACING"`

	// TLS contains TLS/SSL configuration
	TLS TLSConfig `yaml:"tls" envconfig:"TLS"`

	// Logger is an optional logger from v1/logger package.
	// If nil, errors are logged through the global zap logger.
	Logger Logger `yaml:"-" ignored:"true"`
}

// Addr returns the host:port address of the server.
func (c Config) Addr() string {
	return joinHostPort(c.Host, c.Port)
}

// TLSConfig contains TLS/SSL configuration parameters.
type TLSConfig struct {
	// Enabled determines whether to use TLS/SSL for the connection
	Enabled bool `yaml:"enabled" envconfig:"ENABLED"`

	// CACertPath is the file path to the CA certificate for verifying the server
	CACertPath string `yaml:"ca_cert_path" envconfig:"CA_CERT_PATH"`

	// ClientCertPath is the file path to the client certificate
	ClientCertPath string `yaml:"client_cert_path" envconfig:"CLIENT_CERT_PATH"`

	// ClientKeyPath is the file path to the client certificate's private key
	ClientKeyPath string `yaml:"client_key_path" envconfig:"CLIENT_KEY_PATH"`

	// InsecureSkipVerify skips verification of the server certificate.
	// Only use it in tests.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify" envconfig:"INSECURE_SKIP_VERIFY"`

	// ServerName is used to verify the hostname on the returned certificates
	// If empty, the Host from the main config is used
	ServerName string `yaml:"server_name" envconfig:"SERVER_NAME"`
}

// ClusterConfig defines the configuration for Redis Cluster mode.
type ClusterConfig struct {
	// Driver selects the registered driver, "goredis" or "redigo".
	// Default: "goredis"
	Driver string `yaml:"driver" envconfig:"DRIVER"`

	// Addrs is a seed list of cluster nodes
	// Example: []string{"localhost:7000", "localhost:7001", "localhost:7002"}
	Addrs []string `yaml:"addrs" envconfig:"ADDRS"`

	// Username is the ACL user (Redis 6.0+)
	Username string `yaml:"username" envconfig:"USERNAME"`

	// Password is the Redis password for authentication
	Password string `yaml:"password" envconfig:"PASSWORD"`

	// ClientName is sent with CLIENT SETNAME on every new connection.
	ClientName string `yaml:"client_name" envconfig:"CLIENT_NAME"`

	// Protocol is the RESP version negotiated by drivers that support it.
	// Default: 2
	Protocol int `yaml:"protocol" envconfig:"PROTOCOL"`

	// MaxRedirects is the maximum number of retries for MOVED/ASK redirects
	// Default: 3
	MaxRedirects int `yaml:"max_redirects" envconfig:"MAX_REDIRECTS"`

	// ReadOnly enables read-only mode (read from replicas)
	ReadOnly bool `yaml:"read_only" envconfig:"READ_ONLY"`

	// RouteByLatency routes read-only commands to the closest master or replica
	RouteByLatency bool `yaml:"route_by_latency" envconfig:"ROUTE_BY_LATENCY"`

	// RouteRandomly routes read-only commands to random master or replica nodes
	RouteRandomly bool `yaml:"route_randomly" envconfig:"ROUTE_RANDOMLY"`

	// PoolSize is the maximum number of socket connections per node
	// Default: 10 per CPU
	PoolSize int `yaml:"pool_size" envconfig:"POOL_SIZE"`

	// MinIdleConns is the minimum number of idle connections per node
	MinIdleConns int `yaml:"min_idle_conns" envconfig:"MIN_IDLE_CONNS"`

	// MaxConnAge is the maximum duration a connection can be reused
	MaxConnAge time.Duration `yaml:"max_conn_age" envconfig:"MAX_CONN_AGE"`

	// PoolTimeout is the amount of time to wait for a connection from the pool
	PoolTimeout time.Duration `yaml:"pool_timeout" envconfig:"POOL_TIMEOUT"`

	// IdleTimeout is the amount of time after which idle connections are closed
	// Default: 5 minutes
	IdleTimeout time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`

	// MaxRetries is the maximum number of retries before giving up
	// Default: 3
	MaxRetries int `yaml:"max_retries" envconfig:"MAX_RETRIES"`

	// MinRetryBackoff is the minimum backoff between each retry
	// Default: 8 milliseconds
	MinRetryBackoff time.Duration `yaml:"min_retry_backoff" envconfig:"MIN_RETRY_BACKOFF"`

	// MaxRetryBackoff is the maximum backoff between each retry
	// Default: 512 milliseconds
	MaxRetryBackoff time.Duration `yaml:"max_retry_backoff" envconfig:"MAX_RETRY_BACKOFF"`

	// DialTimeout is the timeout for establishing new connections
	// Default: 5 seconds
	DialTimeout time.Duration `yaml:"dial_timeout" envconfig:"DIAL_TIMEOUT"`

	// ReadTimeout is the timeout for socket reads
	// Default: 3 seconds
	ReadTimeout time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`

	// WriteTimeout is the timeout for socket writes
	// Default: ReadTimeout
	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`

	// KeyPrefix is prepended to every key passed to the object helpers.
	KeyPrefix string `yaml:"key_prefix" envconfig:"KEY_PREFIX"`

	// EnableTracing turns on driver level OpenTelemetry instrumentation.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"ENABLE_TRACING"`

	// TLS contains TLS/SSL configuration
	TLS TLSConfig `yaml:"tls" envconfig:"TLS"`

	// Logger is an optional logger from v1/logger package
	Logger Logger `yaml:"-" ignored:"true"`
}

// FailoverConfig defines the configuration for Redis Sentinel (failover) mode.
// Not every driver supports it; redigo returns ErrNotSupported.
type FailoverConfig struct {
	// Driver selects the registered driver.
	// Default: "goredis"
	Driver string `yaml:"driver" envconfig:"DRIVER"`

	// MasterName is the name of the master instance as configured in Sentinel
	MasterName string `yaml:"master_name" envconfig:"MASTER_NAME"`

	// SentinelAddrs is a list of Sentinel node addresses
	// Example: []string{"localhost:26379", "localhost:26380", "localhost:26381"}
	SentinelAddrs []string `yaml:"sentinel_addrs" envconfig:"SENTINEL_ADDRS"`

	// SentinelUsername is the username for Sentinel authentication (Redis 6.0+)
	SentinelUsername string `yaml:"sentinel_username" envconfig:"SENTINEL_USERNAME"`

	// SentinelPassword is the password for Sentinel authentication
	SentinelPassword string `yaml:"sentinel_password" envconfig:"SENTINEL_PASSWORD"`

	// Username is the ACL user (Redis 6.0+)
	Username string `yaml:"username" envconfig:"USERNAME"`

	// Password is the Redis password for authentication
	Password string `yaml:"password" envconfig:"PASSWORD"`

	// DB is the database selected on every new connection
	DB int `yaml:"db" envconfig:"DB"`

	// ClientName is sent with CLIENT SETNAME on every new connection.
	ClientName string `yaml:"client_name" envconfig:"CLIENT_NAME"`

	// Protocol is the RESP version negotiated by drivers that support it.
	// Default: 2
	Protocol int `yaml:"protocol" envconfig:"PROTOCOL"`

	// ReplicaOnly forces read-only queries to go to replica nodes
	ReplicaOnly bool `yaml:"replica_only" envconfig:"REPLICA_ONLY"`

	// UseDisconnectedReplicas allows using replicas that are disconnected from master
	UseDisconnectedReplicas bool `yaml:"use_disconnected_replicas" envconfig:"USE_DISCONNECTED_REPLICAS"`

	// PoolSize is the maximum number of socket connections
	// Default: 10 per CPU
	PoolSize int `yaml:"pool_size" envconfig:"POOL_SIZE"`

	// MinIdleConns is the minimum number of idle connections
	MinIdleConns int `yaml:"min_idle_conns" envconfig:"MIN_IDLE_CONNS"`

	// MaxConnAge is the maximum duration a connection can be reused
	MaxConnAge time.Duration `yaml:"max_conn_age" envconfig:"MAX_CONN_AGE"`

	// PoolTimeout is the amount of time to wait for a connection from the pool
	PoolTimeout time.Duration `yaml:"pool_timeout" envconfig:"POOL_TIMEOUT"`

	// IdleTimeout is the amount of time after which idle connections are closed
	// Default: 5 minutes
	IdleTimeout time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`

	// MaxRetries is the maximum number of retries before giving up
	// Default: 3
	MaxRetries int `yaml:"max_retries" envconfig:"MAX_RETRIES"`

	// MinRetryBackoff is the minimum backoff between each retry
	// Default: 8 milliseconds
	MinRetryBackoff time.Duration `yaml:"min_retry_backoff" envconfig:"MIN_RETRY_BACKOFF"`

	// MaxRetryBackoff is the maximum backoff between each retry
	// Default: 512 milliseconds
	MaxRetryBackoff time.Duration `yaml:"max_retry_backoff" envconfig:"MAX_RETRY_BACKOFF"`

	// DialTimeout is the timeout for establishing new connections
	// Default: 5 seconds
	DialTimeout time.Duration `yaml:"dial_timeout" envconfig:"DIAL_TIMEOUT"`

	// ReadTimeout is the timeout for socket reads
	// Default: 3 seconds
	ReadTimeout time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`

	// WriteTimeout is the timeout for socket writes
	// Default: ReadTimeout
	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`

	// KeyPrefix is prepended to every key passed to the object helpers.
	KeyPrefix string `yaml:"key_prefix" envconfig:"KEY_PREFIX"`

	// EnableTracing turns on driver level OpenTelemetry instrumentation.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"ENABLE_TRACING"`

	// TLS contains TLS/SSL configuration
	TLS TLSConfig `yaml:"tls" envconfig:"TLS"`

	// Logger is an optional logger from v1/logger package
	Logger Logger `yaml:"-" ignored:"true"`
}

// Logger is an interface that matches the v1/logger.Logger
//
//go:generate mockgen -source=configs.go -destination=mock_logger.go -package=redis
type Logger interface {
	Error(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
}

// Default values for configuration
const (
	DefaultDriver              = "goredis"
	DefaultHost                = "localhost"
	DefaultPort                = 6379
	DefaultDB                  = 0
	DefaultProtocol            = 2
	DefaultPoolSize            = 0 // 10 per CPU (set by the driver)
	DefaultMinIdleConns        = 0
	DefaultMaxConnAge          = 0
	DefaultPoolTimeout         = 0 // ReadTimeout + 1 second (set by the driver)
	DefaultIdleTimeout         = 5 * time.Minute
	DefaultMaxRetries          = 3
	DefaultMinRetryBackoff     = 8 * time.Millisecond
	DefaultMaxRetryBackoff     = 512 * time.Millisecond
	DefaultDialTimeout         = 5 * time.Second
	DefaultReadTimeout         = 3 * time.Second
	DefaultWriteTimeout        = 0 // ReadTimeout (set by the driver)
	DefaultClusterMaxRedirects = 3
)

// WithDefaults returns a copy of c with zero values replaced by the defaults.
// Drivers receive configs that already went through it.
func (c Config) WithDefaults() Config {
	if c.Driver == "" {
		c.Driver = DefaultDriver
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Protocol == 0 {
		c.Protocol = DefaultProtocol
	}
	c.MaxRetries, c.MinRetryBackoff, c.MaxRetryBackoff = retryDefaults(c.MaxRetries, c.MinRetryBackoff, c.MaxRetryBackoff)
	c.DialTimeout, c.ReadTimeout, c.IdleTimeout = timeoutDefaults(c.DialTimeout, c.ReadTimeout, c.IdleTimeout)
	return c
}

// WithDefaults returns a copy of c with zero values replaced by the defaults.
func (c ClusterConfig) WithDefaults() ClusterConfig {
	if c.Driver == "" {
		c.Driver = DefaultDriver
	}
	if c.Protocol == 0 {
		c.Protocol = DefaultProtocol
	}
	if c.MaxRedirects == 0 {
		c.MaxRedirects = DefaultClusterMaxRedirects
	}
	c.MaxRetries, c.MinRetryBackoff, c.MaxRetryBackoff = retryDefaults(c.MaxRetries, c.MinRetryBackoff, c.MaxRetryBackoff)
	c.DialTimeout, c.ReadTimeout, c.IdleTimeout = timeoutDefaults(c.DialTimeout, c.ReadTimeout, c.IdleTimeout)
	return c
}

// WithDefaults returns a copy of c with zero values replaced by the defaults.
func (c FailoverConfig) WithDefaults() FailoverConfig {
	if c.Driver == "" {
		c.Driver = DefaultDriver
	}
	if c.Protocol == 0 {
		c.Protocol = DefaultProtocol
	}
	c.MaxRetries, c.MinRetryBackoff, c.MaxRetryBackoff = retryDefaults(c.MaxRetries, c.MinRetryBackoff, c.MaxRetryBackoff)
	c.DialTimeout, c.ReadTimeout, c.IdleTimeout = timeoutDefaults(c.DialTimeout, c.ReadTimeout, c.IdleTimeout)
	return c
}

func retryDefaults(retries int, minBackoff, maxBackoff time.Duration) (int, time.Duration, time.Duration) {
	if retries == 0 {
		retries = DefaultMaxRetries
	}
	if minBackoff == 0 {
		minBackoff = DefaultMinRetryBackoff
	}
	if maxBackoff == 0 {
		maxBackoff = DefaultMaxRetryBackoff
	}
	return retries, minBackoff, maxBackoff
}

func timeoutDefaults(dial, read, idle time.Duration) (time.Duration, time.Duration, time.Duration) {
	if dial == 0 {
		dial = DefaultDialTimeout
	}
	if read == 0 {
		read = DefaultReadTimeout
	}
	if idle == 0 {
		idle = DefaultIdleTimeout
	}
	return dial, read, idle
}
