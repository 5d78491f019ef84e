package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of
// the system: HTTP server settings, InfluxDB connection details, and the
// optional Redis cache.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	INFLUXDB_URL=http://localhost:8086
//	INFLUXDB_TOKEN=dev-token
//	INFLUXDB_ORG=timeseries
//	INFLUXDB_BUCKET=stock_data
//	REDIS_ADDR=localhost:6379
type Config struct {
	Server ServerConfig // HTTP server configuration
	Influx InfluxConfig // InfluxDB connection settings
	Redis  RedisConfig  // Optional Redis cache settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// InfluxConfig defines connection details for InfluxDB 2.x.
//
// Fields:
//   - URL: base URL of the InfluxDB server.
//   - Token: API token with read/write access to the bucket.
//   - Org: organization name.
//   - Bucket: bucket holding the stock_data measurement.
type InfluxConfig struct {
	URL    string
	Token  string
	Org    string
	Bucket string
}

// RedisConfig defines the optional result cache. An empty Addr disables
// caching entirely; the service then always queries InfluxDB.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read throughout the
// application instead of reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() terminates the
//     app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("INFLUXDB_URL", "http://localhost:8086")
	viper.SetDefault("INFLUXDB_TOKEN", "dev-token")
	viper.SetDefault("INFLUXDB_ORG", "timeseries")
	viper.SetDefault("INFLUXDB_BUCKET", "stock_data")

	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Influx: InfluxConfig{
			URL:    viper.GetString("INFLUXDB_URL"),
			Token:  viper.GetString("INFLUXDB_TOKEN"),
			Org:    viper.GetString("INFLUXDB_ORG"),
			Bucket: viper.GetString("INFLUXDB_BUCKET"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Influx.URL == "" {
		missing = append(missing, "INFLUXDB_URL")
	}
	if AppConfig.Influx.Token == "" {
		missing = append(missing, "INFLUXDB_TOKEN")
	}
	if AppConfig.Influx.Org == "" {
		missing = append(missing, "INFLUXDB_ORG")
	}
	if AppConfig.Influx.Bucket == "" {
		missing = append(missing, "INFLUXDB_BUCKET")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
