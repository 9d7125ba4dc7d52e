package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	API     APIConfig
	Log     LogConfig
	Swap    SwapConfig
	Exports ExportsConfig
	Stub    StubConfig
}

// APIConfig locates the scheduling backend the client talks to.
type APIConfig struct {
	BaseURL         string
	Timeout         time.Duration
	UploadTimeout   time.Duration
	DownloadRetries int
	DownloadWorkers int
}

type LogConfig struct {
	Level  string
	Format string
}

// SwapConfig tunes the assignment-exchange interaction core.
type SwapConfig struct {
	ToastTTL      time.Duration
	ScrollMargin  int
	ScrollSpeed   int
	FrameInterval time.Duration
}

// ExportsConfig controls where local CSV/PDF/JSON exports land.
type ExportsConfig struct {
	Dir string
}

// StubConfig configures the bundled development backend.
type StubConfig struct {
	Port int
	Seed bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.API = APIConfig{
		BaseURL:         strings.TrimRight(v.GetString("SURVEIL_API_URL"), "/"),
		Timeout:         parseDuration(v.GetString("SURVEIL_API_TIMEOUT"), 15*time.Second),
		UploadTimeout:   parseDuration(v.GetString("SURVEIL_UPLOAD_TIMEOUT"), 2*time.Minute),
		DownloadRetries: v.GetInt("SURVEIL_DOWNLOAD_RETRIES"),
		DownloadWorkers: v.GetInt("SURVEIL_DOWNLOAD_WORKERS"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Swap = SwapConfig{
		ToastTTL:      parseDuration(v.GetString("SWAP_TOAST_TTL"), 5*time.Second),
		ScrollMargin:  v.GetInt("SWAP_SCROLL_MARGIN"),
		ScrollSpeed:   v.GetInt("SWAP_SCROLL_SPEED"),
		FrameInterval: parseDuration(v.GetString("SWAP_FRAME_INTERVAL"), 16*time.Millisecond),
	}

	cfg.Exports = ExportsConfig{
		Dir: v.GetString("SURVEIL_EXPORTS_DIR"),
	}

	cfg.Stub = StubConfig{
		Port: v.GetInt("STUB_PORT"),
		Seed: v.GetBool("STUB_SEED"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("SURVEIL_API_URL", "http://127.0.0.1:5000")
	v.SetDefault("SURVEIL_API_TIMEOUT", "15s")
	v.SetDefault("SURVEIL_UPLOAD_TIMEOUT", "2m")
	v.SetDefault("SURVEIL_DOWNLOAD_RETRIES", 3)
	v.SetDefault("SURVEIL_DOWNLOAD_WORKERS", 4)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("SWAP_TOAST_TTL", "5s")
	v.SetDefault("SWAP_SCROLL_MARGIN", 80)
	v.SetDefault("SWAP_SCROLL_SPEED", 8)
	v.SetDefault("SWAP_FRAME_INTERVAL", "16ms")

	v.SetDefault("SURVEIL_EXPORTS_DIR", "./exports")

	v.SetDefault("STUB_PORT", 5000)
	v.SetDefault("STUB_SEED", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}
