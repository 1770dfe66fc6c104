package config

import "time"

// LogLevel selects the minimum level the zap logger emits.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Config is the top-level iphase configuration, corresponding to .iphase.yml.
type Config struct {
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Site    SiteConfig    `yaml:"site" koanf:"site"`
	Spy     SpyConfig     `yaml:"spy" koanf:"spy"`
	Counter CounterConfig `yaml:"counter" koanf:"counter"`
	Contact ContactConfig `yaml:"contact" koanf:"contact"`
	Log     LogConfig     `yaml:"log" koanf:"log"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// SiteConfig controls rendering and static builds.
type SiteConfig struct {
	Title       string `yaml:"title" koanf:"title"`
	OutputDir   string `yaml:"output_dir" koanf:"output_dir"`
	ContentFile string `yaml:"content_file" koanf:"content_file"`
	Watch       bool   `yaml:"watch" koanf:"watch"`
}

// SpyConfig tunes active-section detection.
type SpyConfig struct {
	Margin float64 `yaml:"margin" koanf:"margin"`
}

// CounterConfig tunes the statistic count-up animation.
type CounterConfig struct {
	Duration time.Duration `yaml:"duration" koanf:"duration"`
	Tick     time.Duration `yaml:"tick" koanf:"tick"`
}

// ContactConfig tunes the contact form stub.
type ContactConfig struct {
	ResetDelay time.Duration `yaml:"reset_delay" koanf:"reset_delay"`
	RateLimit  float64       `yaml:"rate_limit" koanf:"rate_limit"`
	Burst      int           `yaml:"burst" koanf:"burst"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level LogLevel `yaml:"level" koanf:"level"`
}
