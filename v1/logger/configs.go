package logger

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config defines the logger settings.
type Config struct {
	// Level is the minimum level written: debug, info, warning or error.
	// Anything else means info.
	Level string `yaml:"level" envconfig:"ZAP_LOGGER_LEVEL"`

	// EnableTracing adds trace_id and span_id to entries written through the
	// *WithContext methods when the context carries a valid span.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"LOGGER_ENABLE_TRACING"`

	// ServiceName is added to every entry as the "service" field.
	ServiceName string `yaml:"service_name" envconfig:"LOGGER_SERVICE_NAME"`

	// Encoding is "json" (default) or "console".
	Encoding string `yaml:"encoding" envconfig:"LOGGER_ENCODING"`

	// OutputPaths lists zap sinks, e.g. "stdout" or a file path.
	// Defaults to stderr.
	OutputPaths []string `yaml:"output_paths" envconfig:"LOGGER_OUTPUT_PATHS"`
}
