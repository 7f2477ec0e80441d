package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	CORS      CORSConfig
	Log       LogConfig
	Server    ServerConfig
	Scheduler SchedulerConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// ServerConfig tunes HTTP server lifecycle behaviour.
type ServerConfig struct {
	ShutdownTimeout time.Duration
}

// SchedulerConfig carries solver defaults applied when a generation request
// leaves the corresponding config keys unset. Nil propagation toggles mean
// "not configured"; the built-in solver defaults then apply.
type SchedulerConfig struct {
	DefaultAlgorithm string
	PopulationSize   int
	Generations      int
	MutationRate     float64
	CrossoverRate    float64
	EliteSize        int
	ArcConsistency   *bool
	ForwardChecking  *bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Server = ServerConfig{
		ShutdownTimeout: parseDuration(v.GetString("SHUTDOWN_TIMEOUT"), 10*time.Second),
	}

	cfg.Scheduler = SchedulerConfig{
		DefaultAlgorithm: v.GetString("SCHEDULER_DEFAULT_ALGORITHM"),
		PopulationSize:   v.GetInt("SCHEDULER_POPULATION_SIZE"),
		Generations:      v.GetInt("SCHEDULER_GENERATIONS"),
		MutationRate:     v.GetFloat64("SCHEDULER_MUTATION_RATE"),
		CrossoverRate:    v.GetFloat64("SCHEDULER_CROSSOVER_RATE"),
		EliteSize:        v.GetInt("SCHEDULER_ELITE_SIZE"),
		ArcConsistency:   boolPtr(v.GetBool("SCHEDULER_ARC_CONSISTENCY")),
		ForwardChecking:  boolPtr(v.GetBool("SCHEDULER_FORWARD_CHECKING")),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.SetDefault("SCHEDULER_DEFAULT_ALGORITHM", "constraint_satisfaction")
	v.SetDefault("SCHEDULER_POPULATION_SIZE", 50)
	v.SetDefault("SCHEDULER_GENERATIONS", 100)
	v.SetDefault("SCHEDULER_MUTATION_RATE", 0.1)
	v.SetDefault("SCHEDULER_CROSSOVER_RATE", 0.8)
	v.SetDefault("SCHEDULER_ELITE_SIZE", 5)
	v.SetDefault("SCHEDULER_ARC_CONSISTENCY", true)
	v.SetDefault("SCHEDULER_FORWARD_CHECKING", true)
}

func boolPtr(b bool) *bool {
	return &b
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
