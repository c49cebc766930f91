package providers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"fortuned/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "FORTUNED_LOG_LEVEL")
	viper.BindEnv("remote.baseUrl", "FORTUNED_REMOTE_BASE_URL")
	viper.BindEnv("remote.maxRetries", "FORTUNED_REMOTE_MAX_RETRIES")
	viper.BindEnv("history.dir", "FORTUNED_HISTORY_DIR")
	viper.BindEnv("cache.enabled", "FORTUNED_CACHE_ENABLED")
	viper.BindEnv("cache.size", "FORTUNED_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	applyDefaults(&conf)

	conf.AppName = "FortuneAnalyticsDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

// applyDefaults fills the optional knobs the YAML may omit. Values mirror
// the limits enforced by the remote recommendation service.
func applyDefaults(conf *structures.Config) {
	if conf.History.StorageKey == "" {
		conf.History.StorageKey = "fortune_history"
	}
	if conf.History.MaxRecords <= 0 {
		conf.History.MaxRecords = 30
	}
	if conf.Remote.MaxRetries == 0 {
		conf.Remote.MaxRetries = 2
	}
	if conf.Remote.RetryDelay <= 0 {
		conf.Remote.RetryDelay = 800 * time.Millisecond
	}
	if conf.Remote.Backoff <= 1 {
		conf.Remote.Backoff = 1.5
	}
	if conf.Recommend.DefaultRangeDays <= 0 {
		conf.Recommend.DefaultRangeDays = 14
	}
	if conf.Recommend.DefaultTopN <= 0 {
		conf.Recommend.DefaultTopN = 10
	}
	if conf.Cache.TTL <= 0 {
		conf.Cache.TTL = 5
	}
}
