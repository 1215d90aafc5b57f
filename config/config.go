package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type SchedulerConfig struct {
	Port                                     int
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
	LogLevel                                 string
	LogDevelopment                           bool
}

const envPrefix = "SCHEDULER"

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 3)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{5, 8})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Load reads config.yaml from configPath, or from the working directory when
// configPath is empty. A missing file in the working directory is not an
// error; defaults and SCHEDULER_* environment variables still apply. Flags
// in flags, when non-nil, take precedence over everything else.
func Load(configPath string, flags *pflag.FlagSet) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if flags != nil {
		bindings := map[string]string{
			"port":                "port",
			"time-quantum":        "scheduler.round_robin.time_quantum",
			"levels-time-quantum": "scheduler.multilevel_feedback_queue.levels_time_quantum",
			"log-level":           "log.level",
		}
		for name, key := range bindings {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	levelsTimeQuantum, err := getIntSlice(v, "scheduler.multilevel_feedback_queue.levels_time_quantum")
	if err != nil {
		return nil, err
	}

	config := &SchedulerConfig{
		Port:                                     v.GetInt("port"),
		RoundRobinTimeQuantum:                    v.GetInt("scheduler.round_robin.time_quantum"),
		MultilevelFeedbackQueueLevelsTimeQuantum: levelsTimeQuantum,
		LogLevel:                                 v.GetString("log.level"),
		LogDevelopment:                           v.GetBool("log.development"),
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// getIntSlice reads key as a list of ints. Environment variables arrive as
// strings such as "2,4" or "[2, 4]", which viper does not split on its own.
func getIntSlice(v *viper.Viper, key string) ([]int, error) {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetIntSlice(key), nil
	}
	raw = strings.Trim(strings.TrimSpace(raw), "[]")
	if strings.TrimSpace(raw) == "" {
		return []int{}, nil
	}
	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))
	for i, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		values = append(values, value)
	}
	return values, nil
}

func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("scheduler.round_robin.time_quantum must be > 0, got %d", c.RoundRobinTimeQuantum)
	}
	for i, timeQuantum := range c.MultilevelFeedbackQueueLevelsTimeQuantum {
		if timeQuantum <= 0 {
			return fmt.Errorf("scheduler.multilevel_feedback_queue.levels_time_quantum[%d] must be > 0, got %d", i, timeQuantum)
		}
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

func (c *SchedulerConfig) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	zapConfig := zap.NewProductionConfig()
	if c.LogDevelopment {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	return zapConfig.Build()
}
