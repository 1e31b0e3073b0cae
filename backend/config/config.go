package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// DevJWTSecret signs tokens when no secret is configured. Fine for local runs only.
const DevJWTSecret = "dev-secret"

type DB struct {
	Driver string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	// Path is the database file when Driver is "sqlite".
	Path string
}

type HTTP struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type Redis struct {
	Addr string
	Pass string
	DB   int
}

type Auth struct {
	RequireSession bool
	BcryptCost     int
}

type Log struct {
	Level string
	Path  string
}

type Assistant struct {
	URL     string
	Timeout time.Duration
}

type Summarizer struct {
	// SourcePath is the textbook PDF, or a text export with form-feed page breaks.
	SourcePath string
	// Endpoint is the Gemini API base URL; the client appends version and method.
	Endpoint   string
	Model      string
	APIKey     string
	Timeout    time.Duration
}

type Config struct {
	HTTP HTTP
	DB   DB
	JWT  struct {
		Secret string
		Issuer string
		ExpMin int
	}
	Redis      Redis
	Auth       Auth
	CORSOrigin string
	Log        Log
	Assistant  Assistant
	Summarizer Summarizer
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("edurev")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("backend.host", "127.0.0.1")
	v.SetDefault("backend.port", 5000)
	v.SetDefault("backend.http.read_timeout", 15*time.Second)
	v.SetDefault("backend.http.write_timeout", 15*time.Minute)
	v.SetDefault("backend.http.shutdown_timeout", 10*time.Second)
	v.SetDefault("backend.db.driver", "mysql")
	v.SetDefault("backend.db.host", "127.0.0.1")
	v.SetDefault("backend.db.port", 3306)
	v.SetDefault("backend.db.user", "root")
	v.SetDefault("backend.db.pass", "")
	v.SetDefault("backend.db.name", "edurev")
	v.SetDefault("backend.db.path", "edurev.db")
	v.SetDefault("backend.redis.addr", "127.0.0.1:6379")
	v.SetDefault("backend.redis.db", 0)
	v.SetDefault("backend.auth.require_session", true)
	v.SetDefault("backend.auth.bcrypt_cost", 10)
	v.SetDefault("backend.cors.origin", "*")
	v.SetDefault("backend.log.level", "info")
	v.SetDefault("backend.assistant.timeout", 10*time.Minute)
	v.SetDefault("backend.summarizer.source_path", "data/Econ.pdf")
	v.SetDefault("backend.summarizer.endpoint", "https://generativelanguage.googleapis.com/")
	v.SetDefault("backend.summarizer.model", "gemini-1.5-flash")
	v.SetDefault("backend.summarizer.timeout", 2*time.Minute)
	return v
}

func Load(path string) (*Config, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return fromViper(v), nil
}

// Watch reloads the file on change and hands the new config to onChange.
// Only settings that are safe to swap at runtime should be applied by the callback.
func Watch(path string, onChange func(*Config)) error {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(fromViper(v))
	})
	v.WatchConfig()
	return nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		HTTP: HTTP{
			Host:            v.GetString("backend.host"),
			Port:            v.GetInt("backend.port"),
			ReadTimeout:     v.GetDuration("backend.http.read_timeout"),
			WriteTimeout:    v.GetDuration("backend.http.write_timeout"),
			ShutdownTimeout: v.GetDuration("backend.http.shutdown_timeout"),
		},
		DB: DB{
			Driver: strings.ToLower(v.GetString("backend.db.driver")),
			Host:   v.GetString("backend.db.host"),
			Port:   v.GetInt("backend.db.port"),
			User:   v.GetString("backend.db.user"),
			Pass:   v.GetString("backend.db.pass"),
			Name:   v.GetString("backend.db.name"),
			Path:   v.GetString("backend.db.path"),
		},
		Redis: Redis{
			Addr: v.GetString("backend.redis.addr"),
			Pass: v.GetString("backend.redis.pass"),
			DB:   v.GetInt("backend.redis.db"),
		},
		Auth: Auth{
			RequireSession: v.GetBool("backend.auth.require_session"),
			BcryptCost:     v.GetInt("backend.auth.bcrypt_cost"),
		},
		CORSOrigin: v.GetString("backend.cors.origin"),
		Log: Log{
			Level: v.GetString("backend.log.level"),
			Path:  v.GetString("backend.log.path"),
		},
		Assistant: Assistant{
			URL:     v.GetString("backend.assistant.url"),
			Timeout: v.GetDuration("backend.assistant.timeout"),
		},
		Summarizer: Summarizer{
			SourcePath: v.GetString("backend.summarizer.source_path"),
			Endpoint:   strings.TrimRight(v.GetString("backend.summarizer.endpoint"), "/"),
			Model:      v.GetString("backend.summarizer.model"),
			APIKey:     v.GetString("backend.summarizer.api_key"),
			Timeout:    v.GetDuration("backend.summarizer.timeout"),
		},
	}
	cfg.JWT.Secret = v.GetString("backend.jwt.secret")
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = DevJWTSecret
	}
	cfg.JWT.Issuer = v.GetString("backend.jwt.issuer")
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "edurev"
	}
	cfg.JWT.ExpMin = v.GetInt("backend.jwt.exp_min")
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60 * 24
	}
	if cfg.Auth.BcryptCost <= 0 {
		cfg.Auth.BcryptCost = 10
	}
	return cfg
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}
