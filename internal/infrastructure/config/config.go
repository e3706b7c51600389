// Package config loads the process configuration from the environment.
package config

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=production"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret     string   `env:"JWT_SECRET, required"`
	TokenLifetime Lifetime `env:"JWT_EXPIRES_IN, default=7d"`

	CORSOrigins    []string `env:"CORS_ORIGINS, default=http://localhost:5173"`
	UploadMaxBytes int64    `env:"UPLOAD_MAX_BYTES, default=10485760"`
	// RolePolicy overrides route policy entries, e.g.
	// "content.write:admin|member,uploads:admin|member".
	RolePolicy map[string]string `env:"ROLE_POLICY"`
	// TrustedProxies lists the reverse proxies whose X-Forwarded-For entries
	// are believed. Empty means the peer address is the client address.
	TrustedProxies Proxies `env:"TRUSTED_PROXIES"`

	Mongo      MongoConfig
	Redis      RedisConfig
	Cloudinary CloudinaryConfig
	RateLimit  RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=bandsite"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type CloudinaryConfig struct {
	CloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `env:"CLOUDINARY_API_KEY"`
	APISecret string `env:"CLOUDINARY_API_SECRET"`
	Folder    string `env:"CLOUDINARY_FOLDER, default=bandsite"`
}

type RateLimitConfig struct {
	Requests int           `env:"RATE_LIMIT_REQUESTS, default=5"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW,   default=15m"`
}

// Development reports whether debug details may be exposed to clients.
// Only an explicit ENV=development enables it.
func (c *Config) Development() bool {
	return c.Env == EnvDevelopment
}

// Proxies is a comma separated list of CIDR ranges or single addresses.
type Proxies []*net.IPNet

// EnvDecode implements envconfig.Decoder.
func (p *Proxies) EnvDecode(val string) error {
	nets, err := ParseProxies(val)
	if err != nil {
		return err
	}
	*p = nets
	return nil
}

// ParseProxies parses "10.0.0.0/8,192.0.2.10". A bare address becomes a
// single-host range.
func ParseProxies(s string) (Proxies, error) {
	var out Proxies
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.Contains(part, "/") {
			_, n, err := net.ParseCIDR(part)
			if err != nil {
				return nil, fmt.Errorf("invalid proxy range %q: %w", part, err)
			}
			out = append(out, n)
			continue
		}
		ip := net.ParseIP(part)
		if ip == nil {
			return nil, fmt.Errorf("invalid proxy address %q", part)
		}
		bits := 128
		if v4 := ip.To4(); v4 != nil {
			ip, bits = v4, 32
		}
		out = append(out, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
	}
	return out, nil
}

// Lifetime is a duration that also accepts a day suffix ("7d").
type Lifetime time.Duration

// EnvDecode implements envconfig.Decoder.
func (l *Lifetime) EnvDecode(val string) error {
	d, err := ParseLifetime(val)
	if err != nil {
		return err
	}
	*l = Lifetime(d)
	return nil
}

func (l Lifetime) Duration() time.Duration { return time.Duration(l) }

// ParseLifetime parses "7d", "12h", "90m" or any time.ParseDuration input.
// A bare number is taken as seconds.
func ParseLifetime(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty lifetime")
	}
	if n, err := strconv.Atoi(s); err == nil {
		return lifetimeOf(time.Duration(n) * time.Second)
	}
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, fmt.Errorf("invalid lifetime %q", s)
		}
		return lifetimeOf(time.Duration(n) * 24 * time.Hour)
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid lifetime %q: %w", s, err)
	}
	return lifetimeOf(d)
}

func lifetimeOf(d time.Duration) (time.Duration, error) {
	if d < 0 {
		return 0, fmt.Errorf("lifetime must not be negative")
	}
	return d, nil
}

// Load reads configuration from environment variables using go-envconfig.
// A missing JWT_SECRET is an error.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Env != EnvDevelopment && cfg.Env != EnvProduction {
		return nil, fmt.Errorf("config: ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, cfg.Env)
	}
	return &cfg, nil
}
