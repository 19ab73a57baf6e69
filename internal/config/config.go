package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Config carries all runtime settings for the POS service.
type Config struct {
	Environment string

	// NodeID seeds snowflake ID generation; each deployed instance
	// needs a distinct value.
	NodeID int64

	HTTP     HTTPConfig
	Database DatabaseConfig
	Store    StoreConfig
	Tracing  TracingConfig
	Reports  ReportsConfig
	Limits   LimitsConfig
}

type HTTPConfig struct {
	Addr string
}

type DatabaseConfig struct {
	// Driver is "sqlite" or "postgres".
	Driver string
	DSN    string
}

// StoreConfig identifies the pharmacy printed on every bill.
type StoreConfig struct {
	Name    string
	Address string
	Phone   string
	GSTIN   string
	DLNo    string
}

type TracingConfig struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	SamplingRatio    float64
}

type ReportsConfig struct {
	// RollupSchedule is a cron spec for the daily sales rollup.
	RollupSchedule string
}

type LimitsConfig struct {
	WriteLimit  int
	WriteWindow time.Duration
}

// Load reads configuration from the environment.
func Load() Config {
	cfg := Config{
		Environment: getenv("POS_ENV", "development"),
	}
	cfg.NodeID = cast.ToInt64(getenv("POS_NODE_ID", "1"))
	cfg.HTTP.Addr = getenv("POS_HTTP_ADDR", ":8080")
	cfg.Database.Driver = strings.ToLower(getenv("POS_DB_DRIVER", "sqlite"))
	cfg.Database.DSN = getenv("POS_DB_DSN", "pos.db")
	cfg.Store.Name = getenv("POS_STORE_NAME", "Aushadhi Pharmacy")
	cfg.Store.Address = getenv("POS_STORE_ADDRESS", "")
	cfg.Store.Phone = getenv("POS_STORE_PHONE", "")
	cfg.Store.GSTIN = getenv("POS_STORE_GSTIN", "")
	cfg.Store.DLNo = getenv("POS_STORE_DL_NO", "")
	cfg.Tracing.Enabled = cast.ToBool(getenv("POS_TRACING_ENABLED", "false"))
	cfg.Tracing.ExporterEndpoint = getenv("POS_TRACING_ENDPOINT", "")
	cfg.Tracing.ExporterProtocol = getenv("POS_TRACING_PROTOCOL", "grpc")
	cfg.Tracing.SamplingRatio = cast.ToFloat64(getenv("POS_TRACING_SAMPLING_RATIO", "0.1"))
	cfg.Reports.RollupSchedule = getenv("POS_REPORT_ROLLUP_SCHEDULE", "5 0 * * *")
	cfg.Limits.WriteLimit = cast.ToInt(getenv("POS_WRITE_RATE_LIMIT", "120"))
	cfg.Limits.WriteWindow = cast.ToDuration(getenv("POS_WRITE_RATE_WINDOW", "1m"))
	return cfg
}

// IsProduction reports whether the service runs in production mode.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func getenv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
