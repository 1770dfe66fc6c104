package config

import "time"

// DefaultFile is the config path used when --config is not given.
const DefaultFile = ".iphase.yml"

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		Site: SiteConfig{
			Title:     "iPhase Technologies",
			OutputDir: "public",
		},
		Spy: SpyConfig{
			Margin: 100,
		},
		Counter: CounterConfig{
			Duration: 2 * time.Second,
			Tick:     16 * time.Millisecond,
		},
		Contact: ContactConfig{
			ResetDelay: 3 * time.Second,
			RateLimit:  1,
			Burst:      5,
		},
		Log: LogConfig{
			Level: LogInfo,
		},
	}
}
