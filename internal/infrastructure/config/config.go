package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the signalgraph service.
type Config struct {
	Kafka       KafkaConfig   `yaml:"kafka"`
	Tracing     TracingConfig `yaml:"tracing"`
	GRPC        GRPCConfig    `yaml:"grpc"`
	HTTPPort    string        `yaml:"http_port"`
	GRPCPort    string        `yaml:"grpc_port"`
	Environment string        `yaml:"environment"`
	LogLevel    string        `yaml:"log_level"`
	LogFormat   string        `yaml:"log_format"`
}

// KafkaConfig configures event publishing. No brokers means events are logged.
type KafkaConfig struct {
	Brokers       []string `yaml:"brokers"`
	Topic         string   `yaml:"topic"`
	ClientID      string   `yaml:"client_id"`
	SASLMechanism string   `yaml:"sasl_mechanism"`
	SASLUsername  string   `yaml:"sasl_username"`
	SASLPassword  string   `yaml:"sasl_password"`
	TLS           bool     `yaml:"tls"`
	SASLEnabled   bool     `yaml:"sasl_enabled"`
}

// TracingConfig selects the trace exporter: otlp, stdout or none.
type TracingConfig struct {
	Exporter string `yaml:"exporter"`
	Endpoint string `yaml:"endpoint"`
	Insecure bool   `yaml:"insecure"`
}

// GRPCConfig holds optional gRPC server features.
type GRPCConfig struct {
	TLSCertFile string `yaml:"tls_cert_file"`
	TLSKeyFile  string `yaml:"tls_key_file"`
	Reflection  bool   `yaml:"reflection"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		HTTPPort:    "9090",
		GRPCPort:    "8090",
		Environment: "development",
		LogLevel:    "info",
		LogFormat:   "json",
		Kafka: KafkaConfig{
			Topic:    "signalgraph.events",
			ClientID: "signalgraph",
		},
		Tracing: TracingConfig{
			Exporter: "none",
			Endpoint: "localhost:4317",
			Insecure: true,
		},
	}
}

// Load reads the optional YAML file at path, then applies environment
// overrides. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.HTTPPort = getEnv("HTTP_PORT", cfg.HTTPPort)
	cfg.GRPCPort = getEnv("GRPC_PORT", cfg.GRPCPort)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.Kafka.Brokers = splitList(brokers)
	}
	cfg.Kafka.Topic = getEnv("EVENTS_TOPIC", cfg.Kafka.Topic)
	cfg.Kafka.TLS = getEnvBool("KAFKA_TLS", cfg.Kafka.TLS)
	cfg.Kafka.SASLEnabled = getEnvBool("KAFKA_SASL_ENABLED", cfg.Kafka.SASLEnabled)
	cfg.Kafka.SASLMechanism = getEnv("KAFKA_SASL_MECHANISM", cfg.Kafka.SASLMechanism)
	cfg.Kafka.SASLUsername = getEnv("KAFKA_SASL_USERNAME", cfg.Kafka.SASLUsername)
	cfg.Kafka.SASLPassword = getEnv("KAFKA_SASL_PASSWORD", cfg.Kafka.SASLPassword)

	cfg.Tracing.Exporter = getEnv("OTEL_TRACES_EXPORTER", cfg.Tracing.Exporter)
	cfg.Tracing.Endpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Tracing.Endpoint)
	cfg.Tracing.Insecure = getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", cfg.Tracing.Insecure)

	cfg.GRPC.Reflection = getEnvBool("GRPC_REFLECTION", cfg.GRPC.Reflection)
	cfg.GRPC.TLSCertFile = getEnv("GRPC_TLS_CERT_FILE", cfg.GRPC.TLSCertFile)
	cfg.GRPC.TLSKeyFile = getEnv("GRPC_TLS_KEY_FILE", cfg.GRPC.TLSKeyFile)
}

func (c *Config) validate() error {
	if c.HTTPPort == "" || c.GRPCPort == "" {
		return fmt.Errorf("http_port and grpc_port are required")
	}
	if c.HTTPPort == c.GRPCPort {
		return fmt.Errorf("http_port and grpc_port must differ, both are %s", c.HTTPPort)
	}
	if (c.GRPC.TLSCertFile == "") != (c.GRPC.TLSKeyFile == "") {
		return fmt.Errorf("grpc tls_cert_file and tls_key_file must be set together")
	}
	return nil
}

// GRPCAddress returns the full gRPC listen address.
func (c *Config) GRPCAddress() string {
	return fmt.Sprintf(":%s", c.GRPCPort)
}

// HTTPAddress returns the full HTTP listen address.
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.HTTPPort)
}

// EventsEnabled reports whether events go to Kafka rather than the log.
func (c *Config) EventsEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}

// GRPCTLSEnabled reports whether the gRPC server terminates TLS.
func (c *Config) GRPCTLSEnabled() bool {
	return c.GRPC.TLSCertFile != "" && c.GRPC.TLSKeyFile != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
