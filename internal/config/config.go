// internal/config/config.go
package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL         string `mapstructure:"url"`
		AutoMigrate bool   `mapstructure:"auto_migrate"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	App struct {
		// スキップ時に翌日の pending を自動作成するか
		SkipForward bool `mapstructure:"skip_forward"`
		// 曜日・期間を変更したときの扱い (reconcile / reject)
		ScheduleUpdatePolicy string `mapstructure:"schedule_update_policy"`
		MaxCalendarDays      int    `mapstructure:"max_calendar_days"`
		RematerializeWorkers int    `mapstructure:"rematerialize_workers"`
	} `mapstructure:"app"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"auth"`
	JWT struct {
		SecretKey       string        `mapstructure:"secret_key"`
		Issuer          string        `mapstructure:"issuer"`
		AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
		RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`
	} `mapstructure:"jwt"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	RateLimit struct {
		Enabled           bool    `mapstructure:"enabled"`
		RequestsPerSecond float64 `mapstructure:"requests_per_second"`
		Burst             int     `mapstructure:"burst"`
	} `mapstructure:"rate_limit"`
}

var Cfg Config

func LoadConfig(paths ...string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath(".")

	// APP_DATABASE_URL のように接頭辞付きの環境変数で上書きできる
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("database.url", "APP_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("auth.enabled", "APP_AUTH_ENABLED", "AUTH_ENABLED")
	_ = v.BindEnv("jwt.secret_key", "APP_JWT_SECRET_KEY", "JWT_SECRET_KEY")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}
	applyFallbacks(&cfg)
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)
	log.Printf("Skip Forward: %t, Schedule Update Policy: %s", Cfg.App.SkipForward, Cfg.App.ScheduleUpdatePolicy)

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("auth.enabled", DefaultAuthEnabled)
	v.SetDefault("app.skip_forward", DefaultSkipForward)
	v.SetDefault("app.schedule_update_policy", PolicyReconcile)
	v.SetDefault("app.max_calendar_days", DefaultMaxCalendarDays)
	v.SetDefault("app.rematerialize_workers", DefaultRematerializeWorkers)
	v.SetDefault("jwt.issuer", AppName)
	v.SetDefault("jwt.access_token_ttl", DefaultAccessTokenTTL)
	v.SetDefault("jwt.refresh_token_ttl", DefaultRefreshTokenTTL)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Accept", "Authorization", "Content-Type", "X-Profile-ID"})
	v.SetDefault("cors.max_age", 300)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_second", DefaultRateLimitRPS)
	v.SetDefault("rate_limit.burst", DefaultRateLimitBurst)
}

// applyFallbacks は不正値を既定値に戻す
func applyFallbacks(cfg *Config) {
	if cfg.App.ScheduleUpdatePolicy != PolicyReconcile && cfg.App.ScheduleUpdatePolicy != PolicyReject {
		log.Printf("Unknown schedule_update_policy %q, using default %q", cfg.App.ScheduleUpdatePolicy, PolicyReconcile)
		cfg.App.ScheduleUpdatePolicy = PolicyReconcile
	}
	if cfg.App.MaxCalendarDays <= 0 {
		log.Printf("App max_calendar_days not set or invalid, using default '%d'", DefaultMaxCalendarDays)
		cfg.App.MaxCalendarDays = DefaultMaxCalendarDays
	}
	if cfg.App.RematerializeWorkers <= 0 {
		cfg.App.RematerializeWorkers = DefaultRematerializeWorkers
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set. Tokens cannot be issued or verified.")
	}
}
