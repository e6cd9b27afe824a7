package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}

	return *conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr     string        `toml:"addr"`
	Log      Log           `toml:"log"`
	Postgres PGConfig      `toml:"postgres"`
	Redis    RedisConfig   `toml:"redis"`
	Session  SessionConfig `toml:"session"`
	Site     Site          `toml:"site"`
}

type Site struct {
	// OwnerEmail 唯一允许注册的邮箱，为空则不限制
	OwnerEmail string `toml:"owner_email"`
	SiteTitle  string `toml:"site_title"`
}

func (s *Site) FromENV() {
	s.OwnerEmail = os.Getenv("JOURNEY_SITE_OWNER_EMAIL")
	s.SiteTitle = os.Getenv("JOURNEY_SITE_TITLE")
}

type SessionConfig struct {
	CookieName   string `toml:"cookie_name"`
	TTLHour      int    `toml:"ttl_hour"`
	CookieSecure bool   `toml:"cookie_secure"`
	CookieDomain string `toml:"cookie_domain"`
}

func (s *SessionConfig) FromENV() {
	s.CookieName = os.Getenv("JOURNEY_SESSION_COOKIE_NAME")
	if ttlStr := os.Getenv("JOURNEY_SESSION_TTL_HOUR"); ttlStr != "" {
		if ttl, err := strconv.Atoi(ttlStr); err == nil {
			s.TTLHour = ttl
		}
	}
	s.CookieSecure = os.Getenv("JOURNEY_SESSION_COOKIE_SECURE") == "true"
	s.CookieDomain = os.Getenv("JOURNEY_SESSION_COOKIE_DOMAIN")
}

func (s SessionConfig) Name() string {
	if s.CookieName == "" {
		return "journey_session"
	}
	return s.CookieName
}

func (s SessionConfig) TTL() time.Duration {
	if s.TTLHour <= 0 {
		return time.Hour * 24 * 7
	}
	return time.Hour * time.Duration(s.TTLHour)
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("JOURNEY_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Postgres.FromENV()
	c.Redis.FromENV()
	c.Session.FromENV()
	c.Site.FromENV()
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("JOURNEY_POSTGRESQL_DSN")
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`

	PoolSize     int `toml:"pool_size"`
	MinIdleConns int `toml:"min_idle_conns"`
	MaxRetries   int `toml:"max_retries"`
}

func (r *RedisConfig) FromENV() {
	r.Addr = os.Getenv("JOURNEY_REDIS_ADDR")
	r.Password = os.Getenv("JOURNEY_REDIS_PASSWORD")
	if dbStr := os.Getenv("JOURNEY_REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			r.DB = db
		}
	}
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("JOURNEY_LOG_LEVEL")
	l.Path = os.Getenv("JOURNEY_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
