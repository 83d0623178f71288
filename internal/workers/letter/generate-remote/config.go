// internal/workers/letter/generate-remote/config.go
package generateremote

import "time"

type Config struct {
	BaseURL string
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 20 * time.Second,
	}
}
