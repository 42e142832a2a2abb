package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

type Config struct {
	Addr           string
	AllowedOrigins []string
	LogLevel       log.Level
	WSBufferSize   int
}

var levels = map[string]log.Level{
	"trace": log.LevelTrace,
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

// Load reads the server settings from the environment.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:           ":3000",
		AllowedOrigins: []string{"http://localhost:5173"},
		LogLevel:       log.LevelInfo,
		WSBufferSize:   1024,
	}

	if v := getenv("CHESS_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("CHESS_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) == 0 {
			return Config{}, fmt.Errorf("config: CHESS_ALLOWED_ORIGINS %q names no origin", v)
		}
		cfg.AllowedOrigins = origins
	}
	if v := getenv("CHESS_LOG_LEVEL"); v != "" {
		level, ok := levels[strings.ToLower(v)]
		if !ok {
			return Config{}, fmt.Errorf("config: unknown CHESS_LOG_LEVEL %q", v)
		}
		cfg.LogLevel = level
	}
	if v := getenv("CHESS_WS_BUFFER"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("config: CHESS_WS_BUFFER must be a positive integer, got %q", v)
		}
		cfg.WSBufferSize = n
	}
	return cfg, nil
}
