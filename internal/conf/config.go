package conf

import "strings"

// Upstream holds the Streamtape account identity and address. Values are
// loaded once at startup and never change afterwards; the login and key are
// only ever written into outbound requests, never into logs or responses.
type Upstream struct {
	BaseURL string `json:"base_url" env:"STREAMTAPE_BASE_URL" envDefault:"https://api.streamtape.com"`
	Login   string `json:"login" env:"STREAMTAPE_LOGIN"`
	Key     string `json:"key" env:"STREAMTAPE_KEY"`
	// TimeoutSeconds bounds every upstream call. There is no retry, so this
	// is also the worst case a caller can be held.
	TimeoutSeconds int `json:"timeout_seconds" env:"AURAHUB_UPSTREAM_TIMEOUT" envDefault:"30"`
}

type Scheme struct {
	Address  string `json:"address" env:"AURAHUB_ADDR" envDefault:"0.0.0.0"`
	HttpPort int    `json:"http_port" env:"AURAHUB_PORT" envDefault:"5244"`
}

type LogConfig struct {
	Enable     bool   `json:"enable" env:"AURAHUB_LOG_ENABLE" envDefault:"true"`
	Level      string `json:"level" env:"AURAHUB_LOG_LEVEL" envDefault:"info"`
	Name       string `json:"name" env:"AURAHUB_LOG_NAME"`
	MaxSize    int    `json:"max_size" env:"AURAHUB_LOG_MAX_SIZE" envDefault:"50"`
	MaxBackups int    `json:"max_backups" env:"AURAHUB_LOG_MAX_BACKUPS" envDefault:"30"`
	MaxAge     int    `json:"max_age" env:"AURAHUB_LOG_MAX_AGE" envDefault:"28"`
	Compress   bool   `json:"compress" env:"AURAHUB_LOG_COMPRESS"`
}

type Config struct {
	Upstream       Upstream  `json:"upstream"`
	Scheme         Scheme    `json:"scheme"`
	Log            LogConfig `json:"log"`
	AllowedOrigins string    `json:"allowed_origins" env:"ALLOWED_ORIGINS" envDefault:"*"`
}

// Origins splits AllowedOrigins into the list handed to the CORS layer.
func (c *Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}

func DefaultConfig() *Config {
	return &Config{
		Upstream: Upstream{
			BaseURL:        "https://api.streamtape.com",
			TimeoutSeconds: 30,
		},
		Scheme: Scheme{
			Address:  "0.0.0.0",
			HttpPort: 5244,
		},
		Log: LogConfig{
			Enable:     true,
			Level:      "info",
			MaxSize:    50,
			MaxBackups: 30,
			MaxAge:     28,
		},
		AllowedOrigins: "*",
	}
}
