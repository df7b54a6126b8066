package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Listen != DefaultListen {
		t.Fatalf("listen = %q, want %q", cfg.Listen, DefaultListen)
	}
	if cfg.Metrics.Addr != "" {
		t.Fatalf("metrics enabled by default: %q", cfg.Metrics.Addr)
	}
	if len(cfg.Kafka.Brokers) != 0 {
		t.Fatalf("kafka enabled by default: %v", cfg.Kafka.Brokers)
	}
	if cfg.Kafka.Topic != "numberd.events" {
		t.Fatalf("topic = %q", cfg.Kafka.Topic)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
listen: tcp://127.0.0.1:7070
metrics:
  addr: 127.0.0.1:9090
kafka:
  brokers: [localhost:9092, localhost:9093]
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Listen != "tcp://127.0.0.1:7070" {
		t.Fatalf("listen = %q", cfg.Listen)
	}
	if cfg.Metrics.Addr != "127.0.0.1:9090" {
		t.Fatalf("metrics addr = %q", cfg.Metrics.Addr)
	}
	if len(cfg.Kafka.Brokers) != 2 {
		t.Fatalf("brokers = %v", cfg.Kafka.Brokers)
	}
	// Unset file fields keep their defaults.
	if cfg.Kafka.Topic != "numberd.events" {
		t.Fatalf("topic = %q", cfg.Kafka.Topic)
	}
}

func TestLoad_MissingFileIsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NUMBERD_LISTEN", "tcp://0.0.0.0:6000")
	t.Setenv("NUMBERD_KAFKA_BROKERS", "a:9092,b:9092")
	t.Setenv("NUMBERD_KAFKA_TOPIC", "events.numbers")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Listen != "tcp://0.0.0.0:6000" {
		t.Fatalf("listen = %q", cfg.Listen)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "b:9092" {
		t.Fatalf("brokers = %v", cfg.Kafka.Brokers)
	}
	if cfg.Kafka.Topic != "events.numbers" {
		t.Fatalf("topic = %q", cfg.Kafka.Topic)
	}
}

func TestListener(t *testing.T) {
	cases := []struct {
		listen  string
		network string
		address string
		wantErr bool
	}{
		{"unix-abstract:numbers-daemon.sock", "unix", "@numbers-daemon.sock", false},
		{"unix:///var/run/numberd.sock", "unix", "/var/run/numberd.sock", false},
		{"tcp://127.0.0.1:7070", "tcp", "127.0.0.1:7070", false},
		{"127.0.0.1:7070", "tcp", "127.0.0.1:7070", false},
		{"", "", "", true},
	}

	for _, tc := range cases {
		network, address, err := Config{Listen: tc.listen}.Listener()
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tc.listen)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", tc.listen, err)
		}
		if network != tc.network || address != tc.address {
			t.Fatalf("%q -> %s %s, want %s %s", tc.listen, network, address, tc.network, tc.address)
		}
	}
}
