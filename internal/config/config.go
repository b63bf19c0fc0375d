package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config корневая конфигурация сервиса.
// Загружается из config.toml, секреты и порт затем перекрываются
// переменными окружения (совместимо с деплоем через .env)
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	ElevenLabs  ElevenLabsConfig  `toml:"elevenlabs"`
	GoHighLevel GoHighLevelConfig `toml:"gohighlevel"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort           int `toml:"http_port"`
	ReadTimeout        int `toml:"read_timeout"`  // секунды
	WriteTimeout       int `toml:"write_timeout"` // секунды
	IdleTimeout        int `toml:"idle_timeout"`  // секунды
	ShutdownTimeout    int `toml:"shutdown_timeout"`
	RateLimitPerMinute int `toml:"rate_limit_per_minute"` // 0 = без лимита
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// ElevenLabsConfig настройки TTS провайдера
type ElevenLabsConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
	VoiceID string `toml:"voice_id"`
	Timeout int    `toml:"timeout"` // секунды
}

// GoHighLevelConfig настройки CRM провайдера
type GoHighLevelConfig struct {
	BaseURL    string `toml:"base_url"`
	APIKey     string `toml:"api_key"`
	LocationID string `toml:"location_id"`
	CalendarID string `toml:"calendar_id"`
	Timeout    int    `toml:"timeout"` // секунды
}

// Load читает конфигурацию из TOML файла и применяет переменные
// окружения. Отсутствующий файл не является ошибкой: сервис умеет
// подниматься только на окружении, как исходный деплой
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        5000,
			ReadTimeout:     15,
			WriteTimeout:    60,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			ServiceName: "voicebot-backend",
			Path:        "/metrics",
		},
		ElevenLabs: ElevenLabsConfig{
			BaseURL: "https://api.elevenlabs.io",
			Timeout: 30,
		},
		GoHighLevel: GoHighLevelConfig{
			BaseURL: "https://rest.gohighlevel.com",
			Timeout: 30,
		},
	}
}

// applyEnv перекрывает секреты и порт значениями из окружения.
// Имена переменных совпадают с исходным деплоем сервиса
func (c *Config) applyEnv() {
	setEnvString(&c.ElevenLabs.APIKey, "ELEVENLABS_API_KEY")
	setEnvString(&c.ElevenLabs.VoiceID, "ELEVENLABS_VOICE_ID")
	setEnvString(&c.GoHighLevel.APIKey, "GHL_API_KEY")
	setEnvString(&c.GoHighLevel.LocationID, "GHL_LOCATION_ID")
	setEnvString(&c.GoHighLevel.CalendarID, "GHL_CALENDAR_ID")

	if port, ok := envPort("PORT"); ok {
		c.Server.HTTPPort = port
	} else if port, ok := envPort("RAILWAY_PORT"); ok {
		c.Server.HTTPPort = port
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http_port: %d", c.Server.HTTPPort)
	}
	if c.ElevenLabs.Timeout <= 0 {
		return fmt.Errorf("invalid elevenlabs timeout: %d", c.ElevenLabs.Timeout)
	}
	if c.GoHighLevel.Timeout <= 0 {
		return fmt.Errorf("invalid gohighlevel timeout: %d", c.GoHighLevel.Timeout)
	}
	return nil
}

func setEnvString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envPort(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	port, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return port, true
}
