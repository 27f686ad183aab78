package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Config struct {
	Port            string
	LogMode         string
	ContentPath     string
	ContentDB       string
	ImagesDir       string
	StaticDir       string
	ResumePath      string
	ResumeFilename  string
	SessionTTL      time.Duration
	PointerThrottle time.Duration
	AllowedOrigins  []string
}

// Load reads the environment. Unset values fall back to development defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		LogMode:        getEnv("LOG_MODE", "development"),
		ContentPath:    getEnv("CONTENT_PATH", ""),
		ContentDB:      getEnv("CONTENT_DB", ""),
		ImagesDir:      getEnv("IMAGES_DIR", "./images"),
		StaticDir:      getEnv("STATIC_DIR", "./static"),
		ResumePath:     getEnv("RESUME_PATH", "./static/resume.pdf"),
		ResumeFilename: getEnv("RESUME_FILENAME", ""),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "")),
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "30m"))
	if err != nil {
		return Config{}, errors.Wrap(err, "SESSION_TTL")
	}
	if ttl <= 0 {
		return Config{}, errors.Errorf("SESSION_TTL must be positive, got %s", ttl)
	}
	cfg.SessionTTL = ttl

	throttle, err := getEnvInt("POINTER_THROTTLE_MS", 0)
	if err != nil {
		return Config{}, errors.Wrap(err, "POINTER_THROTTLE_MS")
	}
	if throttle < 0 {
		throttle = 0
	}
	cfg.PointerThrottle = time.Duration(throttle) * time.Millisecond

	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(name string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
