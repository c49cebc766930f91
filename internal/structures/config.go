package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type HistoryConfig struct {
	Dir        string `yaml:"dir" validate:"required|unixPath"`
	StorageKey string `yaml:"storageKey"`
	MaxRecords int    `yaml:"maxRecords"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type RemoteConfig struct {
	BaseURL    string        `yaml:"baseUrl" validate:"required"`
	Timeout    time.Duration `yaml:"timeout" validate:"required|min:1"`
	MaxRetries uint64        `yaml:"maxRetries"`
	RetryDelay time.Duration `yaml:"retryDelay"`
	Backoff    float64       `yaml:"backoff"`
}

type RecommendConfig struct {
	DefaultRangeDays int `yaml:"defaultRangeDays"`
	DefaultTopN      int `yaml:"defaultTopN"`
}

type MaintenanceConfig struct {
	Interval time.Duration `yaml:"interval" validate:"required|min:1"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
	TTL     int  `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	History     HistoryConfig     `yaml:"history"`
	WebServer   Server            `yaml:"webServer"`
	Remote      RemoteConfig      `yaml:"remote"`
	Recommend   RecommendConfig   `yaml:"recommend"`
	Maintenance MaintenanceConfig `yaml:"maintenance"`
	Logger      LoggerConfig      `yaml:"logger"`
	Cache       CacheConfig       `yaml:"cache"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}
