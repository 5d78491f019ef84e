package config

import (
	"os"
	"os/exec"
	"testing"
)

// TestLoadConfig_Defaults verifies that defaults are loaded.
func TestLoadConfig_Defaults(t *testing.T) {
	// Clear relevant env vars to ensure defaults are used
	_ = os.Unsetenv("SERVER_PORT")
	_ = os.Unsetenv("INFLUXDB_URL")
	_ = os.Unsetenv("INFLUXDB_TOKEN")
	_ = os.Unsetenv("INFLUXDB_ORG")
	_ = os.Unsetenv("INFLUXDB_BUCKET")
	_ = os.Unsetenv("REDIS_ADDR")

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Influx.URL != "http://localhost:8086" ||
		AppConfig.Influx.Token != "dev-token" ||
		AppConfig.Influx.Org != "timeseries" ||
		AppConfig.Influx.Bucket != "stock_data" {
		t.Fatalf("unexpected defaults: %+v", AppConfig.Influx)
	}
	if AppConfig.Redis.Addr != "" || AppConfig.Redis.DB != 0 {
		t.Fatalf("redis should default to disabled: %+v", AppConfig.Redis)
	}
}

// TestLoadConfig_EnvOverride verifies environment variables win over defaults.
func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("INFLUXDB_BUCKET", "ticks")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	LoadConfig()

	if AppConfig.Server.Port != "9090" {
		t.Fatalf("expected SERVER_PORT override, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Influx.Bucket != "ticks" {
		t.Fatalf("expected bucket override, got %q", AppConfig.Influx.Bucket)
	}
	if AppConfig.Redis.Addr != "localhost:6379" {
		t.Fatalf("expected redis addr override, got %q", AppConfig.Redis.Addr)
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig
// triggers a fatal exit when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		// In child process: empty AppConfig triggers log.Fatalf (os.Exit)
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
