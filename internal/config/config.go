package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type CountryConfig struct {
	Env          string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	GRPCServer   `yaml:"grpc_server"`
	CountryDB    `yaml:"country_db"`
	LogConfig    `yaml:"log_config"`
	Sources      `yaml:"sources"`
	Summary      `yaml:"summary"`
	KafkaService `yaml:"kafka-service"`
	Refresh      `yaml:"refresh"`
}

type HTTPServer struct {
	Host string `yaml:"host" env:"HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"PORT" env-default:"8080"`
}

type GRPCServer struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"9090"`
}

type CountryDB struct {
	Dsn            string `yaml:"dsn" env:"DATABASE_URL" env-required:"true"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"migrations"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"text"`
	LogOutput string `yaml:"log_output" env:"LOG_OUTPUT" env-default:"stdout"`
}

type Sources struct {
	CountriesURL     string        `yaml:"countries_url" env:"COUNTRIES_API_URL" env-required:"true"`
	ExchangeRatesURL string        `yaml:"exchange_rates_url" env:"EXCHANGE_RATE_API_URL" env-required:"true"`
	Timeout          time.Duration `yaml:"timeout" env:"SOURCES_TIMEOUT" env-default:"15s"`
}

type Summary struct {
	ArtifactPath string `yaml:"artifact_path" env:"SUMMARY_ARTIFACT_PATH" env-default:"cache/summary.png"`
	TopN         int    `yaml:"top_n" env:"SUMMARY_TOP_N" env-default:"5"`
}

type KafkaService struct {
	Host  string `yaml:"host" env:"KAFKA_HOST"`
	Port  string `yaml:"port" env:"KAFKA_PORT" env-default:"9092"`
	Topic string `yaml:"topic" env:"KAFKA_TOPIC" env-default:"country-events"`
}

// Enabled reports whether refresh events should be published at all.
func (k KafkaService) Enabled() bool {
	return k.Host != ""
}

type Refresh struct {
	// Interval of the background refresh; zero disables it.
	Interval time.Duration `yaml:"interval" env:"REFRESH_INTERVAL" env-default:"0s"`
}

func MustLoad() *CountryConfig {
	cfg, err := Load(os.Getenv("COUNTRY_CONFIG_PATH"))
	if err != nil {
		log.Fatalf("failed to load config: %v\n", err)
	}
	return cfg
}

// Load reads the YAML file at configPath, with environment overrides.
// An empty path reads the environment only.
func Load(configPath string) (*CountryConfig, error) {
	var cfg CountryConfig

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	if _, err := os.Stat(configPath); err != nil {
		return nil, err
	}

	// YAML to struct object
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
