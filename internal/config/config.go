package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultAPIBaseURL = "http://localhost:3001"

type Config struct {
	API     APIConfig     `yaml:"api"`
	HTTP    HTTPConfig    `yaml:"http"`
	Log     LogConfig     `yaml:"log"`
	Session SessionConfig `yaml:"session"`
	Redis   RedisConfig   `yaml:"redis"`
	S3      S3Config      `yaml:"s3"`
	View    ViewConfig    `yaml:"view"`
}

type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	// Timeout of zero leaves requests bounded only by the network stack.
	Timeout   time.Duration `yaml:"timeout"`
	LoginPath string        `yaml:"login_path"`
}

type HTTPConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type SessionConfig struct {
	File       string        `yaml:"file"`
	CookieName string        `yaml:"cookie_name"`
	TTL        time.Duration `yaml:"ttl"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type S3Config struct {
	Endpoint   string        `yaml:"endpoint"`
	AccessKey  string        `yaml:"access_key"`
	SecretKey  string        `yaml:"secret_key"`
	Bucket     string        `yaml:"bucket"`
	UseSSL     bool          `yaml:"use_ssl"`
	PresignTTL time.Duration `yaml:"presign_ttl"`
}

type ViewConfig struct {
	Width             float64       `yaml:"width"`
	Height            float64       `yaml:"height"`
	Touch             bool          `yaml:"touch"`
	OrientationSettle time.Duration `yaml:"orientation_settle"`
}

func (c S3Config) Enabled() bool {
	return strings.TrimSpace(c.Endpoint) != "" && strings.TrimSpace(c.Bucket) != ""
}

func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:   defaultAPIBaseURL,
			LoginPath: "/admin-login",
		},
		HTTP: HTTPConfig{
			Addr:         ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Log: LogConfig{Level: "info"},
		Session: SessionConfig{
			File:       defaultSessionFile(),
			CookieName: "zt_console_sid",
			TTL:        12 * time.Hour,
		},
		S3: S3Config{
			PresignTTL: 15 * time.Minute,
		},
		View: ViewConfig{
			Width:             1280,
			Height:            800,
			OrientationSettle: 100 * time.Millisecond,
		},
	}
}

// Load builds the config from defaults, the optional YAML file at path, an optional
// .env file and finally the process environment. Missing files are not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := loadDotEnv(getString("DOTENV_FILE", ".env")); err != nil {
		return Config{}, err
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}

	cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.API.BaseURL), "/")
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = defaultAPIBaseURL
	}
	if cfg.API.Timeout < 0 {
		return Config{}, fmt.Errorf("api.timeout must not be negative")
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = 12 * time.Hour
	}

	return cfg, nil
}

func loadFromYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("unmarshal config yaml: %w", err)
	}

	return nil
}

func loadDotEnv(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load dotenv %s: %w", path, err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) error {
	// NEXT_PUBLIC_API_BASE_URL is the name the browser console used; keep honouring it.
	if v := firstEnv("API_BASE_URL", "NEXT_PUBLIC_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if err := overrideDuration("API_TIMEOUT", &cfg.API.Timeout); err != nil {
		return err
	}
	if v := os.Getenv("LOGIN_PATH"); v != "" {
		cfg.API.LoginPath = v
	}

	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	if v := os.Getenv("SESSION_FILE"); v != "" {
		cfg.Session.File = v
	}
	if v := os.Getenv("SESSION_COOKIE_NAME"); v != "" {
		cfg.Session.CookieName = v
	}
	if err := overrideDuration("SESSION_TTL", &cfg.Session.TTL); err != nil {
		return err
	}

	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if err := overrideInt("REDIS_DB", &cfg.Redis.DB); err != nil {
		return err
	}

	if v := os.Getenv("S3_ENDPOINT"); v != "" {
		cfg.S3.Endpoint = v
	}
	if v := os.Getenv("S3_ACCESS_KEY"); v != "" {
		cfg.S3.AccessKey = v
	}
	if v := os.Getenv("S3_SECRET_KEY"); v != "" {
		cfg.S3.SecretKey = v
	}
	if v := os.Getenv("S3_BUCKET"); v != "" {
		cfg.S3.Bucket = v
	}
	if err := overrideBool("S3_USE_SSL", &cfg.S3.UseSSL); err != nil {
		return err
	}
	if err := overrideDuration("S3_PRESIGN_TTL", &cfg.S3.PresignTTL); err != nil {
		return err
	}

	if err := overrideFloat("VIEW_WIDTH", &cfg.View.Width); err != nil {
		return err
	}
	if err := overrideFloat("VIEW_HEIGHT", &cfg.View.Height); err != nil {
		return err
	}
	if err := overrideBool("VIEW_TOUCH", &cfg.View.Touch); err != nil {
		return err
	}
	if err := overrideDuration("VIEW_ORIENTATION_SETTLE", &cfg.View.OrientationSettle); err != nil {
		return err
	}

	return nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".zetra-admin", "session.json")
	}
	return filepath.Join(home, ".zetra-admin", "session.json")
}

func getString(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}

func overrideDuration(key string, target *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("parse %s duration: %w", key, err)
	}
	*target = d
	return nil
}

func overrideInt(key string, target *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parse %s int: %w", key, err)
	}
	*target = n
	return nil
}

func overrideFloat(key string, target *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("parse %s float: %w", key, err)
	}
	*target = f
	return nil
}

func overrideBool(key string, target *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("parse %s bool: %w", key, err)
	}
	*target = b
	return nil
}
