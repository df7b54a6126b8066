// Package config loads the server configuration: defaults first, then a
// yaml file when one exists, then environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultListen matches the daemon's well-known local endpoint. The
// abstract socket keeps the trust boundary on the local machine.
const DefaultListen = "unix-abstract:numbers-daemon.sock"

type Config struct {
	Listen  string        `yaml:"listen"`
	Metrics MetricsConfig `yaml:"metrics"`
	Kafka   KafkaConfig   `yaml:"kafka"`
}

type MetricsConfig struct {
	// Addr is the HTTP listen address for /metrics. Empty disables it.
	Addr string `yaml:"addr"`
}

type KafkaConfig struct {
	// Brokers enables the event broadcaster when non-empty.
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

func Default() Config {
	return Config{
		Listen: DefaultListen,
		Kafka: KafkaConfig{
			Topic: "numberd.events",
		},
	}
}

// Load reads path when it is non-empty and exists; a missing default
// file is not an error. Environment overrides apply last.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("NUMBERD_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("NUMBERD_METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
	if v := os.Getenv("NUMBERD_KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("NUMBERD_KAFKA_TOPIC"); v != "" {
		cfg.Kafka.Topic = v
	}
}

// Listener translates the configured address into arguments for
// net.Listen. Supported forms:
//
//	unix-abstract:NAME  abstract unix socket (Linux)
//	unix://PATH         filesystem unix socket
//	tcp://HOST:PORT     TCP
//	HOST:PORT           TCP
func (c Config) Listener() (network, address string, err error) {
	switch {
	case strings.HasPrefix(c.Listen, "unix-abstract:"):
		return "unix", "@" + strings.TrimPrefix(c.Listen, "unix-abstract:"), nil
	case strings.HasPrefix(c.Listen, "unix://"):
		return "unix", strings.TrimPrefix(c.Listen, "unix://"), nil
	case strings.HasPrefix(c.Listen, "tcp://"):
		return "tcp", strings.TrimPrefix(c.Listen, "tcp://"), nil
	case c.Listen == "":
		return "", "", fmt.Errorf("config: empty listen address")
	default:
		return "tcp", c.Listen, nil
	}
}
