// v0
// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	BindAddr string // e.g. ":8080"

	// Series generation
	Seed         int64
	SeriesLength int
	SampleStep   time.Duration

	// Refresh cadence of the background evaluation loop
	RefreshInterval time.Duration

	// Minimum interval between repeats of the same alert rule; 0 disables suppression
	SuppressionInterval time.Duration

	// Snapshot publisher: "kafka", "mqtt" or "none"
	Publisher    string
	KafkaBrokers []string
	KafkaTopic   string
	MQTTBroker   string
	MQTTTopic    string
}

func FromEnv() Config {
	return Config{
		BindAddr:            getenv("MONITOR_BIND_ADDR", ":8080"),
		Seed:                geti64("MONITOR_SEED", 42),
		SeriesLength:        geti("MONITOR_SERIES_LENGTH", 1000),
		SampleStep:          getd("MONITOR_SAMPLE_STEP", 5*time.Minute),
		RefreshInterval:     getd("MONITOR_REFRESH_INTERVAL", 5*time.Second),
		SuppressionInterval: getd("MONITOR_ALERT_SUPPRESSION", 0),
		Publisher:           getenv("MONITOR_PUBLISHER", "none"),
		KafkaBrokers:        splitCSV(getenv("KAFKA_BROKERS", "kafka:9092")),
		KafkaTopic:          getenv("MONITOR_KAFKA_TOPIC", "microgrid.snapshots"),
		MQTTBroker:          getenv("MQTT_BROKER", "tcp://mosquitto:1883"),
		MQTTTopic:           getenv("MONITOR_MQTT_TOPIC", "microgrid/snapshots"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func geti(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func geti64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getd(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
